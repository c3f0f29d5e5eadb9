package validation

import (
	"fmt"
	"strings"
)

const RuleRequired = "required"

// ConstraintViolation reports a single field whose value does not satisfy its contract.
type ConstraintViolation struct {
	Field string
	Value interface{}
	Rule  string
}

func (v *ConstraintViolation) Error() string {
	field := v.Field
	if field == "" {
		field = "value"
	}
	if v.Missing() && v.Value == nil {
		return fmt.Sprintf("field %s is required", field)
	}
	return fmt.Sprintf("field %s: value %v violates %s", field, v.Value, v.Rule)
}

// Missing reports whether the violation is an absent required field.
func (v *ConstraintViolation) Missing() bool {
	return v.Rule == RuleRequired
}

// Errors is the ordered list of violations found by aggregate validation.
type Errors []*ConstraintViolation

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, v := range e {
		parts[i] = v.Error()
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the names of the violated fields in evaluation order.
func (e Errors) Fields() []string {
	fields := make([]string, len(e))
	for i, v := range e {
		fields[i] = v.Field
	}
	return fields
}

// HasMissing reports whether any violation is an absent required field.
func (e Errors) HasMissing() bool {
	for _, v := range e {
		if v.Missing() {
			return true
		}
	}
	return false
}

// Validatable is implemented by messages and value objects that can validate themselves.
type Validatable interface {
	Violations() Errors
}

// Valid reports whether v has no violations.
func Valid(v Validatable) bool {
	return len(v.Violations()) == 0
}
