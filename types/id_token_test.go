package types

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"ocpp16/validation"
)

func TestNewIdToken(t *testing.T) {
	token, err := NewIdToken("B4A63CDF")
	require.NoError(t, err)
	assert.Equal(t, "B4A63CDF", token.Value())
	assert.True(t, token.Validate())

	token, err = NewIdToken(strings.Repeat("x", 20))
	require.NoError(t, err)
	assert.Len(t, token.Value(), 20)
}

func TestNewIdTokenRejects(t *testing.T) {
	_, err := NewIdToken(strings.Repeat("x", 21))
	var violation *validation.ConstraintViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "idToken", violation.Field)
	assert.Equal(t, "max=20", violation.Rule)

	_, err = NewIdToken("")
	require.True(t, errors.As(err, &violation))
	assert.True(t, violation.Missing())
}

func TestIdTokenZeroValueInvalid(t *testing.T) {
	assert.False(t, (&IdToken{}).Validate())
}

func TestIdTokenJSON(t *testing.T) {
	token, err := NewIdToken("TAG-1")
	require.NoError(t, err)
	data, err := json.Marshal(token)
	require.NoError(t, err)
	assert.Equal(t, `"TAG-1"`, string(data))

	var decoded IdToken
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "TAG-1", decoded.Value())

	err = json.Unmarshal([]byte(`"`+strings.Repeat("y", 21)+`"`), &decoded)
	var violation *validation.ConstraintViolation
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, "TAG-1", decoded.Value())

	err = json.Unmarshal([]byte(`42`), &decoded)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "idToken", decodeErr.Field)
}

func TestIdTokenBSON(t *testing.T) {
	type document struct {
		IdTag *IdToken `bson:"id_tag"`
	}
	token, err := NewIdToken("TAG-2")
	require.NoError(t, err)
	data, err := bson.Marshal(document{IdTag: token})
	require.NoError(t, err)
	assert.Equal(t, "TAG-2", bson.Raw(data).Lookup("id_tag").StringValue())

	var decoded document
	require.NoError(t, bson.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.IdTag)
	assert.Equal(t, "TAG-2", decoded.IdTag.Value())
}
