package ocpp

import (
	"errors"

	"ocpp16/types"
	"ocpp16/validation"
)

// ErrorCode is an OCPP-J CallError code.
type ErrorCode string

const (
	NotImplemented                ErrorCode = "NotImplemented"
	NotSupported                  ErrorCode = "NotSupported"
	InternalError                 ErrorCode = "InternalError"
	ProtocolError                 ErrorCode = "ProtocolError"
	SecurityError                 ErrorCode = "SecurityError"
	FormationViolation            ErrorCode = "FormationViolation"
	PropertyConstraintViolation   ErrorCode = "PropertyConstraintViolation"
	OccurrenceConstraintViolation ErrorCode = "OccurenceConstraintViolation" // sic, as spelled by OCPP 1.6
	TypeConstraintViolation       ErrorCode = "TypeConstraintViolation"
	GenericError                  ErrorCode = "GenericError"
)

// ErrorCodeFor classifies an error returned while decoding, building or validating a message.
func ErrorCodeFor(err error) ErrorCode {
	var decodeErr *types.DecodeError
	var violation *validation.ConstraintViolation
	var violations validation.Errors
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedFeature):
		return NotImplemented
	case errors.As(err, &decodeErr):
		if decodeErr.TypeMismatch() {
			return TypeConstraintViolation
		}
		return FormationViolation
	case errors.As(err, &violations):
		if violations.HasMissing() {
			return OccurrenceConstraintViolation
		}
		return PropertyConstraintViolation
	case errors.As(err, &violation):
		if violation.Missing() {
			return OccurrenceConstraintViolation
		}
		return PropertyConstraintViolation
	}
	return GenericError
}
