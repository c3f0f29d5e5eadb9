package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"ocpp16/validation"
)

var (
	ErrInvalidDateTime = errors.New("invalid dateTime")
	ErrMalformed       = errors.New("malformed payload")
)

// DecodeError is a wire-shape failure: malformed JSON, unknown fields, wrong types
// or a timestamp that is not in DateTimeLayout. It is never a constraint violation.
type DecodeError struct {
	Field string
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	switch {
	case e.Field != "" && e.Value != "":
		return fmt.Sprintf("decode %s %q: %v", e.Field, e.Value, e.Err)
	case e.Field != "":
		return fmt.Sprintf("decode %s: %v", e.Field, e.Err)
	case e.Value != "":
		return fmt.Sprintf("decode %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("decode: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TypeMismatch reports whether the failure was a JSON value of the wrong type.
func (e *DecodeError) TypeMismatch() bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(e.Err, &typeErr)
}

// Unmarshal decodes a single JSON object into v, rejecting unknown fields and trailing data.
// Object keys must match the wire names of v exactly and appear once.
// Constraint violations raised by setters while decoding are returned unchanged.
func Unmarshal(data []byte, v interface{}) error {
	if err := checkKeys(data, wireNames(v)); err != nil {
		return err
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return decodeError(err)
	}
	if _, err := decoder.Token(); err != io.EOF {
		return &DecodeError{Err: fmt.Errorf("%w: trailing data after object", ErrMalformed)}
	}
	return nil
}

func decodeError(err error) error {
	var violation *validation.ConstraintViolation
	var decodeErr *DecodeError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.As(err, &violation), errors.As(err, &decodeErr):
		return err
	case errors.As(err, &typeErr):
		return &DecodeError{Field: typeErr.Field, Value: typeErr.Value, Err: err}
	case errors.Is(err, io.EOF):
		return &DecodeError{Err: fmt.Errorf("%w: empty payload", ErrMalformed)}
	}
	return &DecodeError{Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
}

var (
	unmarshalerType = reflect.TypeOf((*json.Unmarshaler)(nil)).Elem()
	wireNamesCache  sync.Map
)

// wireNames returns the json keys of the struct v points to, nil when v is not a plain struct.
// Types with their own UnmarshalJSON are checked when they call back into Unmarshal.
func wireNames(v interface{}) map[string]struct{} {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct || t.Implements(unmarshalerType) {
		return nil
	}
	if names, ok := wireNamesCache.Load(t); ok {
		return names.(map[string]struct{})
	}
	elem := t.Elem()
	names := make(map[string]struct{}, elem.NumField())
	for i := 0; i < elem.NumField(); i++ {
		field := elem.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = field.Name
		}
		names[name] = struct{}{}
	}
	wireNamesCache.Store(t, names)
	return names
}

// checkKeys walks the top-level object of data. encoding/json matches keys case-insensitively
// and keeps the last duplicate, so both are rejected here. Anything that is not a well-formed
// object is left for the decoder to report.
func checkKeys(data []byte, names map[string]struct{}) error {
	if names == nil {
		return nil
	}
	decoder := json.NewDecoder(bytes.NewReader(data))
	if tok, err := decoder.Token(); err != nil || tok != json.Delim('{') {
		return nil
	}
	seen := make(map[string]struct{}, len(names))
	for decoder.More() {
		tok, err := decoder.Token()
		if err != nil {
			return nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil
		}
		if _, ok = names[key]; !ok {
			return &DecodeError{Field: key, Err: fmt.Errorf("%w: unknown field", ErrMalformed)}
		}
		if _, ok = seen[key]; ok {
			return &DecodeError{Field: key, Err: fmt.Errorf("%w: duplicate field", ErrMalformed)}
		}
		seen[key] = struct{}{}
		var value json.RawMessage
		if err = decoder.Decode(&value); err != nil {
			return nil
		}
	}
	return nil
}

// UnmarshalEmpty decodes the payload of a message that carries no fields.
func UnmarshalEmpty(data []byte) error {
	var raw struct{}
	return Unmarshal(data, &raw)
}
