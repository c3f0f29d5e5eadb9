package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocpp16/ocpp"
	"ocpp16/ocpp/core"
	"ocpp16/ocpp/reservation"
	"ocpp16/types"
	"ocpp16/validation"
)

const ts = `"2024-04-05T06:07:08.009Z"`

type exchange struct {
	request  string
	response string
}

var minimal = map[string]exchange{
	"Authorize":                     {`{"idTag":"TAG"}`, `{"idTagInfo":{"status":"Accepted"}}`},
	"BootNotification":              {`{"chargePointVendor":"V","chargePointModel":"M"}`, `{"currentTime":` + ts + `,"interval":300,"status":"Accepted"}`},
	"ChangeAvailability":            {`{"connectorId":0,"type":"Operative"}`, `{"status":"Scheduled"}`},
	"ChangeConfiguration":           {`{"key":"HeartbeatInterval","value":"60"}`, `{"status":"RebootRequired"}`},
	"ClearCache":                    {`{}`, `{"status":"Accepted"}`},
	"DataTransfer":                  {`{"vendorId":"com.example"}`, `{"status":"UnknownMessageId"}`},
	"GetConfiguration":              {`{}`, `{}`},
	"Heartbeat":                     {`{}`, `{"currentTime":` + ts + `}`},
	"MeterValues":                   {`{"connectorId":1,"meterValue":[{"timestamp":` + ts + `,"sampledValue":[{"value":"1"}]}]}`, `{}`},
	"RemoteStartTransaction":        {`{"idTag":"TAG"}`, `{"status":"Accepted"}`},
	"RemoteStopTransaction":         {`{"transactionId":1}`, `{"status":"Rejected"}`},
	"Reset":                         {`{"type":"Hard"}`, `{"status":"Accepted"}`},
	"StartTransaction":              {`{"connectorId":1,"idTag":"TAG","meterStart":0,"timestamp":` + ts + `}`, `{"idTagInfo":{"status":"Accepted"},"transactionId":1}`},
	"StatusNotification":            {`{"connectorId":1,"errorCode":"NoError","status":"Available"}`, `{}`},
	"StopTransaction":               {`{"meterStop":10,"timestamp":` + ts + `,"transactionId":1}`, `{}`},
	"UnlockConnector":               {`{"connectorId":1}`, `{"status":"Unlocked"}`},
	"DiagnosticsStatusNotification": {`{"status":"Idle"}`, `{}`},
	"FirmwareStatusNotification":    {`{"status":"Installed"}`, `{}`},
	"GetDiagnostics":                {`{"location":"ftp://example.com/diag"}`, `{}`},
	"UpdateFirmware":                {`{"location":"https://example.com/fw.bin","retrieveDate":` + ts + `}`, `{}`},
	"GetLocalListVersion":           {`{}`, `{"listVersion":1}`},
	"SendLocalList":                 {`{"listVersion":1,"updateType":"Full"}`, `{"status":"Accepted"}`},
	"TriggerMessage":                {`{"requestedMessage":"Heartbeat"}`, `{"status":"Accepted"}`},
	"ReserveNow":                    {`{"connectorId":0,"expiryDate":` + ts + `,"idTag":"TAG","reservationId":1}`, `{"status":"Accepted"}`},
	"CancelReservation":             {`{"reservationId":1}`, `{"status":"Accepted"}`},
	"SetChargingProfile":            {`{"connectorId":1,"csChargingProfiles":{"chargingProfileId":1,"stackLevel":0,"chargingProfilePurpose":"TxDefaultProfile","chargingProfileKind":"Absolute","chargingSchedule":{"chargingRateUnit":"A","chargingSchedulePeriod":[{"startPeriod":0,"limit":16}]}}}`, `{"status":"Accepted"}`},
	"ClearChargingProfile":          {`{}`, `{"status":"Accepted"}`},
	"GetCompositeSchedule":          {`{"connectorId":0,"duration":60}`, `{"status":"Accepted"}`},
}

type recordingLogger struct {
	debug []string
}

func (l *recordingLogger) FeatureEvent(feature, id, text string) {}
func (l *recordingLogger) Debug(text string)                     { l.debug = append(l.debug, text) }
func (l *recordingLogger) Warn(text string)                      {}
func (l *recordingLogger) Error(text string, err error)          {}

func counterValue(t *testing.T, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		for _, metric := range family.GetMetric() {
			matched := 0
			for _, pair := range metric.GetLabel() {
				if labels[pair.GetName()] == pair.GetValue() {
					matched++
				}
			}
			if matched == len(labels) {
				return metric.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func TestDefaultRegistryActions(t *testing.T) {
	r := NewDefault()
	actions := r.Actions()
	assert.Len(t, actions, 28)
	for _, action := range actions {
		_, ok := minimal[action]
		assert.True(t, ok, "no payload for %s", action)
	}
	assert.Equal(t, []string{"Core", "FirmwareManagement", "LocalAuthListManagement", "RemoteTrigger", "Reservation", "SmartCharging"}, r.ProfileNames())
}

func TestRoundTripEveryAction(t *testing.T) {
	r := NewDefault()
	for action, payloads := range minimal {
		t.Run(action, func(t *testing.T) {
			request, err := r.ParseRequest(action, []byte(payloads.request))
			require.NoError(t, err)
			assert.Equal(t, action, request.GetFeatureName())
			encoded, err := r.Marshal(request)
			require.NoError(t, err)
			assert.JSONEq(t, payloads.request, string(encoded))

			again, err := r.ParseRequest(action, encoded)
			require.NoError(t, err)
			reencoded, err := r.Marshal(again)
			require.NoError(t, err)
			assert.Equal(t, string(encoded), string(reencoded))

			response, err := r.ParseResponse(action, []byte(payloads.response))
			require.NoError(t, err)
			encoded, err = r.Marshal(response)
			require.NoError(t, err)
			assert.JSONEq(t, payloads.response, string(encoded))
		})
	}
}

func TestUnknownAction(t *testing.T) {
	r := NewDefault()
	labels := map[string]string{"action": unknownAction, "kind": "request", "code": string(ocpp.NotImplemented)}
	before := counterValue(t, "ocpp_messages_rejected_total", labels)

	_, err := r.ParseRequest("SignCertificate", []byte(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ocpp.ErrUnsupportedFeature)
	assert.Equal(t, ocpp.NotImplemented, ocpp.ErrorCodeFor(err))
	assert.Equal(t, before+1, counterValue(t, "ocpp_messages_rejected_total", labels))
}

func TestRestrictedProfiles(t *testing.T) {
	r, err := NewForProfiles([]string{reservation.ProfileName})
	require.NoError(t, err)
	assert.Equal(t, []string{"CancelReservation", "ReserveNow"}, r.Actions())

	_, err = r.ParseRequest(core.HeartbeatFeatureName, []byte(`{}`))
	assert.ErrorIs(t, err, ocpp.ErrUnsupportedFeature)

	_, err = NewForProfiles([]string{"Security"})
	assert.Error(t, err)

	r, err = NewForProfiles(nil)
	require.NoError(t, err)
	assert.Len(t, r.Actions(), 28)
}

func TestDuplicateActionPanics(t *testing.T) {
	assert.Panics(t, func() {
		New(core.Profile, core.Profile)
	})
}

func TestParseRejections(t *testing.T) {
	r := NewDefault()
	logger := &recordingLogger{}
	r.SetLogger(logger)

	tests := []struct {
		name    string
		payload string
		code    ocpp.ErrorCode
	}{
		{"missing fields", `{"connectorId":1}`, ocpp.OccurrenceConstraintViolation},
		{"bad connector", `{"connectorId":0,"idTag":"T","meterStart":0,"timestamp":` + ts + `}`, ocpp.PropertyConstraintViolation},
		{"wrong type", `{"connectorId":true}`, ocpp.TypeConstraintViolation},
		{"malformed", `{"connectorId":`, ocpp.FormationViolation},
		{"null", `null`, ocpp.OccurrenceConstraintViolation},
		{"upper case keys", `{"CONNECTORID":1,"IDTAG":"T","METERSTART":0,"TIMESTAMP":` + ts + `}`, ocpp.FormationViolation},
		{"duplicate key differing in case", `{"connectorId":1,"connectorid":5,"idTag":"T","meterStart":0,"timestamp":` + ts + `}`, ocpp.FormationViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			labels := map[string]string{"action": core.StartTransactionFeatureName, "kind": "request", "code": string(tt.code)}
			before := counterValue(t, "ocpp_messages_rejected_total", labels)
			_, err := r.ParseRequest(core.StartTransactionFeatureName, []byte(tt.payload))
			require.Error(t, err)
			assert.Equal(t, tt.code, ocpp.ErrorCodeFor(err))
			assert.Equal(t, before+1, counterValue(t, "ocpp_messages_rejected_total", labels))
		})
	}
	assert.Len(t, logger.debug, len(tests))
}

func TestParseMissingFieldsListsAll(t *testing.T) {
	_, err := NewDefault().ParseRequest(core.StartTransactionFeatureName, []byte(`{}`))
	var violations validation.Errors
	require.True(t, errors.As(err, &violations))
	assert.Equal(t, []string{"connectorId", "idTag", "meterStart", "timestamp"}, violations.Fields())
}

func TestDecodedCounter(t *testing.T) {
	labels := map[string]string{"action": core.HeartbeatFeatureName, "kind": "response"}
	before := counterValue(t, "ocpp_messages_decoded_total", labels)
	_, err := NewDefault().ParseResponse(core.HeartbeatFeatureName, []byte(`{"currentTime":`+ts+`}`))
	require.NoError(t, err)
	assert.Equal(t, before+1, counterValue(t, "ocpp_messages_decoded_total", labels))
}

func TestMarshalRejectsInvalidMessage(t *testing.T) {
	r := NewDefault()
	_, err := r.Marshal(&core.StartTransactionRequest{})
	var violations validation.Errors
	require.True(t, errors.As(err, &violations))
	assert.True(t, violations.HasMissing())
	assert.Contains(t, err.Error(), "StartTransaction request")

	restricted := New(reservation.Profile)
	_, err = restricted.Marshal(core.NewHeartbeatRequest())
	assert.ErrorIs(t, err, ocpp.ErrUnsupportedFeature)
}

func TestMarshalRejectsUnreadableTimestamp(t *testing.T) {
	token, err := types.NewIdToken("TAG")
	require.NoError(t, err)
	request, err := core.NewStartTransactionRequest(1, token, 0, time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	data, err := NewDefault().Marshal(request)
	assert.Nil(t, data)
	assert.Equal(t, ocpp.PropertyConstraintViolation, ocpp.ErrorCodeFor(err))
}

func TestMarshalEncodesResponse(t *testing.T) {
	info, err := types.NewIdTagInfo(types.AuthorizationStatusInvalid)
	require.NoError(t, err)
	labels := map[string]string{"action": core.AuthorizeFeatureName, "kind": "response"}
	before := counterValue(t, "ocpp_messages_encoded_total", labels)

	data, err := NewDefault().Marshal(core.NewAuthorizeResponse(info))
	require.NoError(t, err)
	assert.Equal(t, `{"idTagInfo":{"status":"Invalid"}}`, string(data))
	assert.Equal(t, before+1, counterValue(t, "ocpp_messages_encoded_total", labels))
}

func TestConcurrentParse(t *testing.T) {
	r := NewDefault()
	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		go func(i int) {
			payload := fmt.Sprintf(`{"transactionId":%d}`, i)
			request, err := r.ParseRequest(core.RemoteStopTransactionFeatureName, []byte(payload))
			if err == nil {
				_, err = json.Marshal(request)
			}
			done <- err
		}(i)
	}
	for i := 0; i < 16; i++ {
		assert.NoError(t, <-done)
	}
}
