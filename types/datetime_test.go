package types

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestFormatDateTime(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)
	assert.Equal(t, "2024-01-02T03:04:05.006Z", FormatDateTime(ts))

	plusTwo := time.FixedZone("UTC+2", 2*60*60)
	assert.Equal(t, "2024-01-02T03:04:05.006Z", FormatDateTime(ts.In(plusTwo)))
	assert.Equal(t, "2024-01-02T01:04:05.006Z", FormatDateTime(time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, plusTwo)))
}

func TestFormatDateTimeTruncatesToMillis(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 6_999_999, time.UTC)
	assert.Equal(t, "2024-01-02T03:04:05.006Z", FormatDateTime(ts))
}

func TestParseDateTime(t *testing.T) {
	parsed, err := ParseDateTime("2024-01-02T03:04:05.006Z")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC)))
	assert.Equal(t, time.UTC, parsed.Location())
}

func TestParseDateTimeRejects(t *testing.T) {
	for _, value := range []string{
		"",
		"2024-01-02T03:04:05Z",
		"2024-01-02T03:04:05.006+02:00",
		"2024-01-02T3:04:05.006Z",
		"2024-01-02T03:04:05.0061Z",
		"2024-01-02 03:04:05.006Z",
		"2024-13-02T03:04:05.006Z",
		"not a date",
	} {
		_, err := ParseDateTime(value)
		var decodeErr *DecodeError
		require.Truef(t, errors.As(err, &decodeErr), "%q should be rejected", value)
		assert.ErrorIs(t, err, ErrInvalidDateTime)
	}
}

func TestDateTimeJSON(t *testing.T) {
	dt := NewDateTime(time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.FixedZone("CET", 3600)))
	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"2024-01-02T02:04:05.006Z"`, string(data))

	var decoded DateTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(dt.Time))

	err = json.Unmarshal([]byte(`"2024-01-02T02:04:05Z"`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidDateTime)

	err = json.Unmarshal([]byte(`12`), &decoded)
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

func TestDateTimeIsSet(t *testing.T) {
	var missing *DateTime
	assert.False(t, missing.IsSet())
	assert.False(t, (&DateTime{}).IsSet())
	assert.True(t, NewDateTime(time.Now()).IsSet())
}

func TestDateTimeOutOfRangeYears(t *testing.T) {
	for _, year := range []int{-1, 10000, 12345} {
		dt := NewDateTime(time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC))
		assert.False(t, dt.Representable(), "year %d", year)
		violations := dt.Violations()
		require.Len(t, violations, 1, "year %d", year)
		assert.Equal(t, RuleDateTimeRange, violations[0].Rule)
		assert.False(t, violations.HasMissing())

		_, err := json.Marshal(dt)
		assert.ErrorIs(t, err, ErrInvalidDateTime, "year %d", year)
	}

	var missing *DateTime
	assert.Empty(t, missing.Violations())
	for _, year := range []int{0, 1, 9999} {
		assert.Empty(t, NewDateTime(time.Date(year, 12, 31, 23, 59, 59, 0, time.UTC)).Violations(), "year %d", year)
	}
}

func TestDateTimeLastRepresentableYearRoundTrip(t *testing.T) {
	dt := NewDateTime(time.Date(9999, 12, 31, 23, 59, 59, 999_000_000, time.UTC))
	data, err := json.Marshal(dt)
	require.NoError(t, err)
	assert.Equal(t, `"9999-12-31T23:59:59.999Z"`, string(data))

	var decoded DateTime
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Equal(dt.Time))
}

func TestDateTimeBSON(t *testing.T) {
	type document struct {
		Timestamp *DateTime `bson:"timestamp"`
	}
	source := document{Timestamp: NewDateTime(time.Date(2024, 1, 2, 3, 4, 5, 6_000_000, time.UTC))}
	data, err := bson.Marshal(source)
	require.NoError(t, err)

	raw := bson.Raw(data)
	assert.Equal(t, bson.TypeDateTime, raw.Lookup("timestamp").Type)

	var decoded document
	require.NoError(t, bson.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Timestamp)
	assert.Equal(t, "2024-01-02T03:04:05.006Z", decoded.Timestamp.String())
}
