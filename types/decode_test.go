package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ocpp16/validation"
)

func TestUnmarshalRejectsUnknownField(t *testing.T) {
	var info IdTagInfo
	err := Unmarshal([]byte(`{"status":"Accepted","colour":"blue"}`), &info)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.ErrorIs(t, err, ErrMalformed)
	assert.False(t, decodeErr.TypeMismatch())
}

func TestUnmarshalKeysAreCaseSensitive(t *testing.T) {
	for _, payload := range []string{
		`{"STATUS":"Accepted"}`,
		`{"Status":"Accepted"}`,
		`{"status":"Accepted","ExpiryDate":"2024-01-01T00:00:00.000Z"}`,
	} {
		var info IdTagInfo
		err := Unmarshal([]byte(payload), &info)
		var decodeErr *DecodeError
		require.Truef(t, errors.As(err, &decodeErr), "%s should be rejected", payload)
		assert.ErrorIs(t, err, ErrMalformed)
		assert.False(t, decodeErr.TypeMismatch())
	}
}

func TestUnmarshalRejectsDuplicateKeys(t *testing.T) {
	var info IdTagInfo
	err := Unmarshal([]byte(`{"status":"Accepted","status":"Blocked"}`), &info)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "status", decodeErr.Field)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestUnmarshalChecksNestedKeys(t *testing.T) {
	var schedule ChargingSchedule
	err := Unmarshal([]byte(`{"chargingRateUnit":"W","chargingSchedulePeriod":[{"startPeriod":0,"LIMIT":1}]}`), &schedule)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "LIMIT", decodeErr.Field)
}

func TestUnmarshalTypeMismatch(t *testing.T) {
	var period ChargingSchedulePeriod
	err := Unmarshal([]byte(`{"startPeriod":"zero","limit":1}`), &period)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.True(t, decodeErr.TypeMismatch())
	assert.Equal(t, "startPeriod", decodeErr.Field)
}

func TestUnmarshalTrailingData(t *testing.T) {
	var info IdTagInfo
	err := Unmarshal([]byte(`{"status":"Accepted"} {}`), &info)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestUnmarshalEmptyPayload(t *testing.T) {
	var info IdTagInfo
	err := Unmarshal(nil, &info)
	assert.ErrorIs(t, err, ErrMalformed)

	err = Unmarshal([]byte(`{"status":`), &info)
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestUnmarshalPassesViolationsThrough(t *testing.T) {
	var info IdTagInfo
	err := Unmarshal([]byte(`{"status":"Unknown"}`), &info)
	var violation *validation.ConstraintViolation
	require.True(t, errors.As(err, &violation))
	var decodeErr *DecodeError
	assert.False(t, errors.As(err, &decodeErr))
}

func TestUnmarshalEmpty(t *testing.T) {
	require.NoError(t, UnmarshalEmpty([]byte(`{}`)))
	require.NoError(t, UnmarshalEmpty([]byte(` { } `)))
	assert.ErrorIs(t, UnmarshalEmpty([]byte(`{"extra":1}`)), ErrMalformed)

	var decodeErr *DecodeError
	require.True(t, errors.As(UnmarshalEmpty([]byte(`[]`)), &decodeErr))
	assert.True(t, decodeErr.TypeMismatch())
}

func TestDecodeErrorMessage(t *testing.T) {
	err := &DecodeError{Field: "timestamp", Value: "yesterday", Err: ErrInvalidDateTime}
	assert.Equal(t, `decode timestamp "yesterday": invalid dateTime`, err.Error())
	assert.Equal(t, "decode: malformed payload", (&DecodeError{Err: ErrMalformed}).Error())
}
