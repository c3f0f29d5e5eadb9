package ocpp

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"ocpp16/types"
	"ocpp16/validation"
)

func TestErrorCodeFor(t *testing.T) {
	typeErr := &json.UnmarshalTypeError{Value: "string", Field: "connectorId"}

	tests := []struct {
		name string
		err  error
		code ErrorCode
	}{
		{"nil", nil, ""},
		{"unsupported", fmt.Errorf("action %q: %w", "Fly", ErrUnsupportedFeature), NotImplemented},
		{"malformed", &types.DecodeError{Err: types.ErrMalformed}, FormationViolation},
		{"bad timestamp", &types.DecodeError{Value: "now", Err: types.ErrInvalidDateTime}, FormationViolation},
		{"wrong type", &types.DecodeError{Field: "connectorId", Err: typeErr}, TypeConstraintViolation},
		{"missing field", validation.Errors{{Field: "idTag", Rule: validation.RuleRequired}}, OccurrenceConstraintViolation},
		{"bad values", validation.Errors{{Field: "connectorId", Value: 0, Rule: "gt=0"}}, PropertyConstraintViolation},
		{"setter missing", &validation.ConstraintViolation{Field: "vendorId", Rule: validation.RuleRequired}, OccurrenceConstraintViolation},
		{"setter range", fmt.Errorf("wrapped: %w", &validation.ConstraintViolation{Field: "connectorId", Value: -1, Rule: "gt=0"}), PropertyConstraintViolation},
		{"other", errors.New("boom"), GenericError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ErrorCodeFor(tt.err))
		})
	}
}

func TestOccurrenceCodeSpelling(t *testing.T) {
	assert.Equal(t, "OccurenceConstraintViolation", string(OccurrenceConstraintViolation))
}
