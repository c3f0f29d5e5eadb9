package validation

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate = validator.New()
	enumsMux sync.Mutex
	enums    = make(map[string]struct{})
)

// RegisterEnum registers a validator tag accepting exactly the given values.
// Intended to be called from package init, before any Check runs.
func RegisterEnum(tag string, values ...string) {
	enumsMux.Lock()
	defer enumsMux.Unlock()
	if _, ok := enums[tag]; ok {
		panic(fmt.Sprintf("validation: enum %s registered twice", tag))
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	enums[tag] = struct{}{}
	err := validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		_, ok := set[fl.Field().String()]
		return ok
	})
	if err != nil {
		panic(fmt.Sprintf("validation: register %s: %v", tag, err))
	}
}

// Check validates a single value against validator rules, e.g. "gt=0" or "required,max=20".
// The returned error is a *ConstraintViolation naming the field and the rejected value.
func Check(field string, value interface{}, rules string) error {
	err := validate.Var(value, rules)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		rule := fieldErrors[0].Tag()
		if param := fieldErrors[0].Param(); param != "" {
			rule = rule + "=" + param
		}
		return &ConstraintViolation{Field: field, Value: value, Rule: rule}
	}
	// invalid rules string, a programming error in the caller
	panic(fmt.Sprintf("validation: check %s with %q: %v", field, rules, err))
}
