package types

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"ocpp16/validation"
)

// DateTimeLayout is the only dateTime shape accepted on the wire: UTC, millisecond precision.
const DateTimeLayout = "2006-01-02T15:04:05.000Z"

// RuleDateTimeRange marks an instant whose year does not fit the four digits of DateTimeLayout.
const RuleDateTimeRange = "datetime_range"

// resolved once, never looked up by name
var utc = time.UTC

// DateTime wraps a time.Time struct, allowing for improved dateTime JSON compatibility.
type DateTime struct {
	time.Time
}

// NewDateTime Creates a new DateTime struct, embedding a time.Time struct.
func NewDateTime(time time.Time) *DateTime {
	return &DateTime{Time: time}
}

// FormatDateTime renders t in UTC using DateTimeLayout, whatever location t carries.
func FormatDateTime(t time.Time) string {
	return t.In(utc).Format(DateTimeLayout)
}

// ParseDateTime is the exact inverse of FormatDateTime.
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return time.Time{}, &DecodeError{Value: value, Err: fmt.Errorf("%w: %v", ErrInvalidDateTime, err)}
	}
	// time.Parse tolerates single-digit hours and similar; the wire form must be exact
	if FormatDateTime(t) != value {
		return time.Time{}, &DecodeError{Value: value, Err: fmt.Errorf("%w: expected %s", ErrInvalidDateTime, DateTimeLayout)}
	}
	return t, nil
}

// IsSet reports whether dt carries an instant. A nil or zero DateTime counts as absent.
func (dt *DateTime) IsSet() bool {
	return dt != nil && !dt.IsZero()
}

// Representable reports whether the instant can be written in DateTimeLayout and read back.
func (dt DateTime) Representable() bool {
	year := dt.In(utc).Year()
	return year >= 0 && year <= 9999
}

// Violations reports an instant outside the years 0000-9999. A nil DateTime has none.
func (dt *DateTime) Violations() validation.Errors {
	if dt == nil || dt.Representable() {
		return nil
	}
	return validation.Errors{{Value: FormatDateTime(dt.Time), Rule: RuleDateTimeRange}}
}

func (dt DateTime) String() string {
	return FormatDateTime(dt.Time)
}

func (dt DateTime) MarshalJSON() ([]byte, error) {
	if !dt.Representable() {
		return nil, fmt.Errorf("%w: year %d out of range", ErrInvalidDateTime, dt.In(utc).Year())
	}
	return json.Marshal(FormatDateTime(dt.Time))
}

func (dt *DateTime) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return &DecodeError{Value: string(data), Err: fmt.Errorf("%w: not a string", ErrInvalidDateTime)}
	}
	t, err := ParseDateTime(value)
	if err != nil {
		return err
	}
	dt.Time = t
	return nil
}

// MarshalBSONValue stores the instant as a BSON datetime (millisecond precision).
func (dt DateTime) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.DateTime, bsoncore.AppendDateTime(nil, dt.Time.UnixMilli()), nil
}

func (dt *DateTime) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	if t != bsontype.DateTime {
		return &DecodeError{Value: t.String(), Err: fmt.Errorf("%w: bson type %s", ErrInvalidDateTime, t)}
	}
	ms, _, ok := bsoncore.ReadDateTime(data)
	if !ok {
		return &DecodeError{Err: fmt.Errorf("%w: truncated bson datetime", ErrInvalidDateTime)}
	}
	dt.Time = time.UnixMilli(ms).In(utc)
	return nil
}
