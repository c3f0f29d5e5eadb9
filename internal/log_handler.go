package internal

// LogHandler receives events from the message registry and the checker.
// feature is the OCPP action, id the correlation id of the message it concerns.
type LogHandler interface {
	FeatureEvent(feature, id, text string)
	Debug(text string)
	Warn(text string)
	Error(text string, err error)
}
