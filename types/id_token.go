package types

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"

	"ocpp16/validation"
)

const idTokenRules = "required,max=20"

// IdToken is a case-insensitive identifier of at most 20 characters, as used for idTag fields.
// The zero value is not a valid token.
type IdToken struct {
	value string
}

// NewIdToken returns a token for value, or a constraint violation if value is empty or too long.
func NewIdToken(value string) (*IdToken, error) {
	if err := validation.Check("idToken", value, idTokenRules); err != nil {
		return nil, err
	}
	return &IdToken{value: value}, nil
}

func (t *IdToken) Value() string {
	return t.value
}

func (t *IdToken) String() string {
	return t.value
}

func (t *IdToken) Violations() validation.Errors {
	var c validation.Collector
	c.Check("", t.value, idTokenRules)
	return c.Result()
}

func (t *IdToken) Validate() bool {
	return validation.Valid(t)
}

func (t IdToken) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.value)
}

func (t *IdToken) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return &DecodeError{Field: "idToken", Value: string(data), Err: fmt.Errorf("%w: not a string", ErrMalformed)}
	}
	token, err := NewIdToken(value)
	if err != nil {
		return err
	}
	*t = *token
	return nil
}

func (t IdToken) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bsontype.String, bsoncore.AppendString(nil, t.value), nil
}

func (t *IdToken) UnmarshalBSONValue(bt bsontype.Type, data []byte) error {
	if bt != bsontype.String {
		return &DecodeError{Field: "idToken", Value: bt.String(), Err: fmt.Errorf("%w: bson type %s", ErrMalformed, bt)}
	}
	value, _, ok := bsoncore.ReadString(data)
	if !ok {
		return &DecodeError{Field: "idToken", Err: fmt.Errorf("%w: truncated bson string", ErrMalformed)}
	}
	token, err := NewIdToken(value)
	if err != nil {
		return err
	}
	*t = *token
	return nil
}
