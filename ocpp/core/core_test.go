package core

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocpp16/ocpp"
	"ocpp16/types"
	"ocpp16/validation"
)

func TestProfileFeatures(t *testing.T) {
	names := make([]string, 0)
	for _, feature := range Profile.Features() {
		names = append(names, feature.GetFeatureName())
		request := ocpp.NewRequest(feature)
		response := ocpp.NewResponse(feature)
		assert.Equal(t, feature.GetFeatureName(), request.GetFeatureName())
		assert.Equal(t, feature.GetFeatureName(), response.GetFeatureName())
	}
	assert.Equal(t, []string{
		AuthorizeFeatureName,
		BootNotificationFeatureName,
		ChangeAvailabilityFeatureName,
		ChangeConfigurationFeatureName,
		ClearCacheFeatureName,
		DataTransferFeatureName,
		GetConfigurationFeatureName,
		HeartbeatFeatureName,
		MeterValuesFeatureName,
		RemoteStartTransactionFeatureName,
		RemoteStopTransactionFeatureName,
		ResetFeatureName,
		StartTransactionFeatureName,
		StatusNotificationFeatureName,
		StopTransactionFeatureName,
		UnlockConnectorFeatureName,
	}, names)
	assert.Equal(t, "Core", Profile.Name)
}

func TestBootNotificationRequest(t *testing.T) {
	_, err := NewBootNotificationRequest("", "Model")
	var violation *validation.ConstraintViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "chargePointVendor", violation.Field)
	assert.True(t, violation.Missing())

	request, err := NewBootNotificationRequest("Vendor", "Model")
	require.NoError(t, err)
	require.Error(t, request.SetFirmwareVersion(strings.Repeat("1", 51)))
	assert.Empty(t, request.FirmwareVersion())
	require.NoError(t, request.SetFirmwareVersion("1.2.3"))
	assert.True(t, request.Validate())

	encoded, err := json.Marshal(request)
	require.NoError(t, err)
	assert.Equal(t, `{"chargePointVendor":"Vendor","chargePointModel":"Model","firmwareVersion":"1.2.3"}`, string(encoded))

	var decoded BootNotificationRequest
	err = json.Unmarshal([]byte(`{"chargePointVendor":"Vendor","chargePointModel":"ABCDEFGHIJKLMNOPQRSTU"}`), &decoded)
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "chargePointModel", violation.Field)

	require.NoError(t, json.Unmarshal([]byte(`{"chargePointModel":"Model"}`), &decoded))
	assert.Equal(t, []string{"chargePointVendor"}, decoded.Violations().Fields())
}

func TestBootNotificationResponse(t *testing.T) {
	_, err := NewBootNotificationResponse(time.Now(), -1, RegistrationStatusAccepted)
	require.Error(t, err)
	_, err = NewBootNotificationResponse(time.Now(), 60, "Unknown")
	require.Error(t, err)

	response, err := NewBootNotificationResponse(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC), 0, RegistrationStatusPending)
	require.NoError(t, err)
	assert.True(t, response.Validate())
	encoded, err := json.Marshal(response)
	require.NoError(t, err)
	assert.JSONEq(t, `{"currentTime":"2024-01-01T12:00:00.000Z","interval":0,"status":"Pending"}`, string(encoded))

	assert.Equal(t, []string{"currentTime", "interval", "status"}, (&BootNotificationResponse{}).Violations().Fields())
}

func TestChangeAvailability(t *testing.T) {
	request, err := NewChangeAvailabilityRequest(0, AvailabilityTypeInoperative)
	require.NoError(t, err)
	assert.True(t, request.Validate())
	assert.Equal(t, 0, request.ConnectorId())

	_, err = NewChangeAvailabilityRequest(-1, AvailabilityTypeOperative)
	require.Error(t, err)
	_, err = NewChangeAvailabilityRequest(1, "Broken")
	require.Error(t, err)

	response, err := NewChangeAvailabilityResponse(AvailabilityStatusScheduled)
	require.NoError(t, err)
	assert.True(t, response.Validate())
}

func TestChangeConfiguration(t *testing.T) {
	request, err := NewChangeConfigurationRequest("HeartbeatInterval", "")
	require.NoError(t, err)
	assert.True(t, request.Validate())
	encoded, err := json.Marshal(request)
	require.NoError(t, err)
	assert.Equal(t, `{"key":"HeartbeatInterval","value":""}`, string(encoded))

	_, err = NewChangeConfigurationRequest(strings.Repeat("k", 51), "1")
	require.Error(t, err)
	_, err = NewChangeConfigurationRequest("Key", strings.Repeat("v", 501))
	require.Error(t, err)

	var decoded ChangeConfigurationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"key":"MeterValueSampleInterval"}`), &decoded))
	assert.Equal(t, []string{"value"}, decoded.Violations().Fields())
}

func TestDataTransfer(t *testing.T) {
	_, err := NewDataTransferRequest(strings.Repeat("v", 256))
	require.Error(t, err)

	request, err := NewDataTransferRequest("com.example")
	require.NoError(t, err)
	require.Error(t, request.SetMessageId(strings.Repeat("m", 51)))
	require.NoError(t, request.SetMessageId("Ping"))
	request.SetData(`{"free":"form"}`)
	assert.True(t, request.Validate())

	response, err := NewDataTransferResponse(DataTransferStatusUnknownVendorId)
	require.NoError(t, err)
	assert.True(t, response.Validate())
	assert.Equal(t, []string{"status"}, (&DataTransferResponse{}).Violations().Fields())
}

func TestGetConfiguration(t *testing.T) {
	request, err := NewGetConfigurationRequest()
	require.NoError(t, err)
	assert.True(t, request.Validate())
	encoded, err := json.Marshal(request)
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(encoded))

	_, err = NewGetConfigurationRequest("A", "A")
	require.Error(t, err)
	_, err = NewGetConfigurationRequest("A", "")
	require.Error(t, err)

	key, err := NewConfigurationKey("HeartbeatInterval", false)
	require.NoError(t, err)
	require.NoError(t, key.SetValue("300"))
	response, err := NewGetConfigurationResponse([]*ConfigurationKey{key}, []string{"Unknown"})
	require.NoError(t, err)
	assert.True(t, response.Validate())

	encoded, err = json.Marshal(response)
	require.NoError(t, err)
	assert.Equal(t, `{"configurationKey":[{"key":"HeartbeatInterval","readonly":false,"value":"300"}],"unknownKey":["Unknown"]}`, string(encoded))

	response.SetConfigurationKey([]*ConfigurationKey{{}})
	assert.Equal(t, []string{"configurationKey[0].key"}, response.Violations().Fields())
}

func TestHeartbeat(t *testing.T) {
	var request HeartbeatRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &request))
	err := json.Unmarshal([]byte(`{"unexpected":1}`), &request)
	assert.Equal(t, ocpp.FormationViolation, ocpp.ErrorCodeFor(err))
	encoded, err := json.Marshal(NewHeartbeatRequest())
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(encoded))

	assert.Equal(t, []string{"currentTime"}, (&HeartbeatResponse{}).Violations().Fields())
	assert.True(t, NewHeartbeatResponse(time.Now()).Validate())
}

func TestMeterValuesRequest(t *testing.T) {
	_, err := NewMeterValuesRequest(1)
	require.Error(t, err)

	mv, err := types.NewMeterValue(time.Now(), types.NewSampledValue("12.5"))
	require.NoError(t, err)
	request, err := NewMeterValuesRequest(0, mv)
	require.NoError(t, err)
	assert.True(t, request.Validate())
	assert.Nil(t, request.TransactionId())

	request, err = NewMeterValuesRequest(1, &types.MeterValue{})
	require.NoError(t, err)
	assert.Equal(t, []string{"meterValue[0].timestamp", "meterValue[0].sampledValue"}, request.Violations().Fields())
}

func TestRemoteStartTransaction(t *testing.T) {
	request := NewRemoteStartTransactionRequest(mustIdToken(t, "TAG"))
	assert.True(t, request.Validate())
	require.Error(t, request.SetConnectorId(0))
	assert.Nil(t, request.ConnectorId())

	schedule, err := types.NewChargingSchedule(types.ChargingRateUnitAmperes, mustPeriod(t))
	require.NoError(t, err)
	profile, err := types.NewChargingProfile(1, 0, types.ChargingProfilePurposeTxDefaultProfile, types.ChargingProfileKindAbsolute, schedule)
	require.NoError(t, err)
	request.SetChargingProfile(profile)
	assert.Equal(t, []string{"chargingProfile.chargingProfilePurpose"}, request.Violations().Fields())

	require.NoError(t, profile.SetChargingProfilePurpose(types.ChargingProfilePurposeTxProfile))
	assert.True(t, request.Validate())

	assert.Equal(t, []string{"idTag"}, (&RemoteStartTransactionRequest{}).Violations().Fields())
}

func mustPeriod(t *testing.T) *types.ChargingSchedulePeriod {
	t.Helper()
	period, err := types.NewChargingSchedulePeriod(0, 16)
	require.NoError(t, err)
	return period
}

func TestRemoteStopTransaction(t *testing.T) {
	assert.True(t, NewRemoteStopTransactionRequest(5).Validate())
	assert.Equal(t, []string{"transactionId"}, (&RemoteStopTransactionRequest{}).Violations().Fields())

	response, err := NewRemoteStopTransactionResponse(RemoteStartStopStatusRejected)
	require.NoError(t, err)
	encoded, err := json.Marshal(response)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"Rejected"}`, string(encoded))
}

func TestReset(t *testing.T) {
	request, err := NewResetRequest(ResetTypeSoft)
	require.NoError(t, err)
	assert.True(t, request.Validate())
	_, err = NewResetRequest("Warm")
	require.Error(t, err)

	var decoded ResetRequest
	err = json.Unmarshal([]byte(`{"type":"Warm"}`), &decoded)
	assert.Equal(t, ocpp.PropertyConstraintViolation, ocpp.ErrorCodeFor(err))
}

func TestStatusNotification(t *testing.T) {
	request, err := NewStatusNotificationRequest(0, NoError, ChargePointStatusAvailable)
	require.NoError(t, err)
	assert.True(t, request.Validate())
	require.Error(t, request.SetInfo(strings.Repeat("i", 51)))
	require.Error(t, request.SetVendorId(strings.Repeat("v", 256)))
	require.Error(t, request.SetErrorCode("Smoke"))
	assert.Equal(t, NoError, request.ErrorCode())

	_, err = NewStatusNotificationRequest(-1, NoError, ChargePointStatusAvailable)
	require.Error(t, err)

	var decoded StatusNotificationRequest
	require.NoError(t, json.Unmarshal([]byte(`{"connectorId":1,"errorCode":"GroundFailure","status":"Faulted","timestamp":"2024-01-01T00:00:00.000Z"}`), &decoded))
	assert.True(t, decoded.Validate())
	assert.Equal(t, ChargePointStatusFaulted, decoded.Status())

	assert.Equal(t, []string{"connectorId", "errorCode", "status"}, (&StatusNotificationRequest{}).Violations().Fields())
}

func TestStopTransaction(t *testing.T) {
	request := NewStopTransactionRequest(2000, time.Now(), 7)
	assert.True(t, request.Validate())
	require.Error(t, request.SetReason("Bored"))
	require.NoError(t, request.SetReason(ReasonEVDisconnected))

	request.SetTransactionData([]*types.MeterValue{{}})
	assert.Equal(t, []string{"transactionData[0].timestamp", "transactionData[0].sampledValue"}, request.Violations().Fields())

	assert.Equal(t, []string{"meterStop", "timestamp", "transactionId"}, (&StopTransactionRequest{}).Violations().Fields())
	assert.True(t, NewStopTransactionResponse().Validate())
}

func TestUnlockConnector(t *testing.T) {
	_, err := NewUnlockConnectorRequest(0)
	require.Error(t, err)
	request, err := NewUnlockConnectorRequest(1)
	require.NoError(t, err)
	assert.True(t, request.Validate())

	response, err := NewUnlockConnectorResponse(UnlockStatusUnlockFailed)
	require.NoError(t, err)
	assert.True(t, response.Validate())
}

func TestAuthorizeAndClearCache(t *testing.T) {
	assert.Equal(t, []string{"idTag"}, (&AuthorizeRequest{}).Violations().Fields())
	assert.True(t, NewAuthorizeRequest(mustIdToken(t, "TAG")).Validate())
	assert.Equal(t, []string{"idTagInfo"}, (&AuthorizeResponse{}).Violations().Fields())

	assert.True(t, NewClearCacheRequest().Validate())
	_, err := NewClearCacheResponse("Maybe")
	require.Error(t, err)
}
