package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocpp16/ocpp"
	"ocpp16/types"
	"ocpp16/validation"
)

func mustIdToken(t *testing.T, value string) *types.IdToken {
	t.Helper()
	token, err := types.NewIdToken(value)
	require.NoError(t, err)
	return token
}

func TestStartTransactionConnectorIdRejectsNonPositive(t *testing.T) {
	request := &StartTransactionRequest{}
	require.NoError(t, request.SetConnectorId(2))

	for _, connectorId := range []int{0, -1, -100} {
		err := request.SetConnectorId(connectorId)
		var violation *validation.ConstraintViolation
		require.True(t, errors.As(err, &violation), "connectorId %d", connectorId)
		assert.Equal(t, "connectorId", violation.Field)
		assert.Equal(t, "gt=0", violation.Rule)
		assert.Equal(t, ocpp.PropertyConstraintViolation, ocpp.ErrorCodeFor(err))
		assert.Equal(t, 2, request.ConnectorId())
	}
}

func TestStartTransactionConnectorIdRoundTrip(t *testing.T) {
	for _, connectorId := range []int{1, 2, 10, 1 << 20} {
		request := &StartTransactionRequest{}
		require.NoError(t, request.SetConnectorId(connectorId))
		assert.Equal(t, connectorId, request.ConnectorId())
	}
}

func TestStartTransactionMissingFields(t *testing.T) {
	request := &StartTransactionRequest{}
	assert.False(t, request.Validate())
	assert.Equal(t, []string{"connectorId", "idTag", "meterStart", "timestamp"}, request.Violations().Fields())
	assert.True(t, request.Violations().HasMissing())

	require.NoError(t, request.SetConnectorId(1))
	request.SetMeterStart(0)
	assert.Equal(t, []string{"idTag", "timestamp"}, request.Violations().Fields())

	request.SetIdTag(mustIdToken(t, "TAG"))
	request.SetTimestamp(time.Time{})
	assert.Equal(t, []string{"timestamp"}, request.Violations().Fields())

	request.SetTimestamp(time.Now())
	assert.True(t, request.Validate())
	assert.Empty(t, request.Violations())
}

func TestStartTransactionTimestampYearRange(t *testing.T) {
	for _, year := range []int{-1, 10000} {
		request, err := NewStartTransactionRequest(1, mustIdToken(t, "TAG"), 0, time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.False(t, request.Validate(), "year %d", year)
		violations := request.Violations()
		require.Len(t, violations, 1)
		assert.Equal(t, "timestamp", violations[0].Field)
		assert.Equal(t, types.RuleDateTimeRange, violations[0].Rule)
		assert.Equal(t, ocpp.PropertyConstraintViolation, ocpp.ErrorCodeFor(violations))

		_, err = json.Marshal(request)
		assert.ErrorIs(t, err, types.ErrInvalidDateTime)
	}
}

func TestStartTransactionGetters(t *testing.T) {
	request := &StartTransactionRequest{}
	assert.Equal(t, 0, request.ConnectorId())
	assert.Equal(t, 0, request.MeterStart())
	assert.Nil(t, request.IdTag())
	assert.Nil(t, request.ReservationId())
	assert.Nil(t, request.Timestamp())

	request.SetReservationId(7)
	require.NotNil(t, request.ReservationId())
	assert.Equal(t, 7, *request.ReservationId())
	assert.Equal(t, StartTransactionFeatureName, request.GetFeatureName())
}

func TestNewStartTransactionRequest(t *testing.T) {
	_, err := NewStartTransactionRequest(0, mustIdToken(t, "TAG"), 100, time.Now())
	require.Error(t, err)

	request, err := NewStartTransactionRequest(1, mustIdToken(t, "TAG"), 100, time.Now())
	require.NoError(t, err)
	assert.True(t, request.Validate())

	request, err = NewStartTransactionRequest(1, nil, 100, time.Now())
	require.NoError(t, err)
	assert.Equal(t, []string{"idTag"}, request.Violations().Fields())
}

func TestStartTransactionJSON(t *testing.T) {
	data := []byte(`{"connectorId":1,"idTag":"B4A63CDF","meterStart":1500,"reservationId":3,"timestamp":"2024-02-03T04:05:06.789Z"}`)

	var request StartTransactionRequest
	require.NoError(t, json.Unmarshal(data, &request))
	assert.True(t, request.Validate())
	assert.Equal(t, 1, request.ConnectorId())
	assert.Equal(t, "B4A63CDF", request.IdTag().Value())
	assert.Equal(t, 1500, request.MeterStart())
	assert.Equal(t, "2024-02-03T04:05:06.789Z", request.Timestamp().String())

	encoded, err := json.Marshal(request)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(encoded))

	var again StartTransactionRequest
	require.NoError(t, json.Unmarshal(encoded, &again))
	reencoded, err := json.Marshal(again)
	require.NoError(t, err)
	assert.Equal(t, string(encoded), string(reencoded))
}

func TestStartTransactionJSONZeroMeterStart(t *testing.T) {
	request, err := NewStartTransactionRequest(3, mustIdToken(t, "TAG"), 0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	encoded, err := json.Marshal(request)
	require.NoError(t, err)
	assert.Equal(t, `{"connectorId":3,"idTag":"TAG","meterStart":0,"timestamp":"2024-01-01T00:00:00.000Z"}`, string(encoded))
}

func TestStartTransactionDecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		code    ocpp.ErrorCode
	}{
		{"connector zero", `{"connectorId":0,"idTag":"T","meterStart":0,"timestamp":"2024-01-01T00:00:00.000Z"}`, ocpp.PropertyConstraintViolation},
		{"long idTag", `{"connectorId":1,"idTag":"ABCDEFGHIJKLMNOPQRSTU","meterStart":0,"timestamp":"2024-01-01T00:00:00.000Z"}`, ocpp.PropertyConstraintViolation},
		{"bad timestamp", `{"connectorId":1,"idTag":"T","meterStart":0,"timestamp":"2024-01-01T00:00:00Z"}`, ocpp.FormationViolation},
		{"wrong type", `{"connectorId":"1","idTag":"T","meterStart":0,"timestamp":"2024-01-01T00:00:00.000Z"}`, ocpp.TypeConstraintViolation},
		{"unknown field", `{"connectorId":1,"idTag":"T","meterStart":0,"timestamp":"2024-01-01T00:00:00.000Z","extra":true}`, ocpp.FormationViolation},
		{"not an object", `[1,2]`, ocpp.TypeConstraintViolation},
		{"upper case keys", `{"CONNECTORID":1,"IDTAG":"T","METERSTART":0,"TIMESTAMP":"2024-01-01T00:00:00.000Z"}`, ocpp.FormationViolation},
		{"miscased optional key", `{"connectorId":1,"idTag":"T","meterStart":0,"ReservationID":9,"timestamp":"2024-01-01T00:00:00.000Z"}`, ocpp.FormationViolation},
		{"duplicate key differing in case", `{"connectorId":1,"connectorid":5,"idTag":"T","meterStart":0,"timestamp":"2024-01-01T00:00:00.000Z"}`, ocpp.FormationViolation},
		{"duplicate key", `{"connectorId":1,"idTag":"T","meterStart":0,"meterStart":900,"timestamp":"2024-01-01T00:00:00.000Z"}`, ocpp.FormationViolation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var request StartTransactionRequest
			err := json.Unmarshal([]byte(tt.payload), &request)
			require.Error(t, err)
			assert.Equal(t, tt.code, ocpp.ErrorCodeFor(err))
		})
	}
}

func TestStartTransactionResponse(t *testing.T) {
	response := &StartTransactionResponse{}
	assert.Equal(t, []string{"idTagInfo", "transactionId"}, response.Violations().Fields())

	info, err := types.NewIdTagInfo(types.AuthorizationStatusAccepted)
	require.NoError(t, err)
	response = NewStartTransactionResponse(info, 42)
	assert.True(t, response.Validate())

	encoded, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Equal(t, `{"idTagInfo":{"status":"Accepted"},"transactionId":42}`, string(encoded))

	var decoded StartTransactionResponse
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, 42, decoded.TransactionId())
	assert.Equal(t, types.AuthorizationStatusAccepted, decoded.IdTagInfo().Status())
}
