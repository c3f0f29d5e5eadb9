package firmware

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocpp16/validation"
)

func TestProfile(t *testing.T) {
	assert.Equal(t, "FirmwareManagement", Profile.Name)
	assert.Len(t, Profile.Features(), 4)
	_, ok := Profile.Feature(FirmwareStatusNotificationFeatureName)
	assert.True(t, ok)
}

func TestGetDiagnosticsLocation(t *testing.T) {
	_, err := NewGetDiagnosticsRequest("not a uri")
	var violation *validation.ConstraintViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "location", violation.Field)
	assert.Equal(t, "uri", violation.Rule)

	request, err := NewGetDiagnosticsRequest("ftp://diagnostics.example.com/upload")
	require.NoError(t, err)
	assert.True(t, request.Validate())
	require.Error(t, request.SetRetries(-1))
	require.NoError(t, request.SetRetries(3))
	require.Error(t, request.SetRetryInterval(-5))
}

func TestGetDiagnosticsWindow(t *testing.T) {
	request, err := NewGetDiagnosticsRequest("https://example.com/logs")
	require.NoError(t, err)
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	request.SetStartTime(start)
	request.SetStopTime(start.Add(-time.Minute))
	assert.Equal(t, []string{"stopTime"}, request.Violations().Fields())

	request.SetStopTime(start)
	assert.True(t, request.Validate())
}

func TestGetDiagnosticsJSON(t *testing.T) {
	data := []byte(`{"location":"https://example.com/logs","retries":2,"startTime":"2024-05-01T00:00:00.000Z"}`)
	var request GetDiagnosticsRequest
	require.NoError(t, json.Unmarshal(data, &request))
	assert.Equal(t, "https://example.com/logs", request.Location())
	encoded, err := json.Marshal(request)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(encoded))

	assert.True(t, NewGetDiagnosticsResponse().Validate())
}

func TestUpdateFirmware(t *testing.T) {
	request, err := NewUpdateFirmwareRequest("https://example.com/fw.bin", time.Now())
	require.NoError(t, err)
	assert.True(t, request.Validate())

	assert.Equal(t, []string{"location", "retrieveDate"}, (&UpdateFirmwareRequest{}).Violations().Fields())
	assert.True(t, NewUpdateFirmwareResponse().Validate())
}

func TestStatusNotifications(t *testing.T) {
	_, err := NewFirmwareStatusNotificationRequest("Exploded")
	require.Error(t, err)
	firmwareStatus, err := NewFirmwareStatusNotificationRequest(FirmwareStatusInstalled)
	require.NoError(t, err)
	assert.True(t, firmwareStatus.Validate())

	_, err = NewDiagnosticsStatusNotificationRequest("Lost")
	require.Error(t, err)
	diagnosticsStatus, err := NewDiagnosticsStatusNotificationRequest(DiagnosticsStatusUploaded)
	require.NoError(t, err)
	encoded, err := json.Marshal(diagnosticsStatus)
	require.NoError(t, err)
	assert.Equal(t, `{"status":"Uploaded"}`, string(encoded))

	assert.True(t, NewFirmwareStatusNotificationResponse().Validate())
	assert.True(t, NewDiagnosticsStatusNotificationResponse().Validate())
}
