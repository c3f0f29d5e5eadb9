package validation

import (
	"fmt"
	"reflect"
)

// Collector accumulates violations. Every rule is evaluated, earlier failures never skip
// later checks.
type Collector struct {
	errs Errors
}

// Require records a missing field when present is false.
func (c *Collector) Require(field string, present bool) {
	if !present {
		c.errs = append(c.errs, &ConstraintViolation{Field: field, Rule: RuleRequired})
	}
}

// Check re-applies a value rule, see Check.
func (c *Collector) Check(field string, value interface{}, rules string) {
	if err := Check(field, value, rules); err != nil {
		c.errs = append(c.errs, err.(*ConstraintViolation))
	}
}

// Rule records a cross-field violation when ok is false.
func (c *Collector) Rule(field string, ok bool, value interface{}, rule string) {
	if !ok {
		c.errs = append(c.errs, &ConstraintViolation{Field: field, Value: value, Rule: rule})
	}
}

// Nested validates a required nested value, reporting its violations under field.
func (c *Collector) Nested(field string, v Validatable) {
	if isNil(v) {
		c.Require(field, false)
		return
	}
	c.add(field, v.Violations())
}

// Optional validates a nested value only when it is present.
func (c *Collector) Optional(field string, v Validatable) {
	if isNil(v) {
		return
	}
	c.add(field, v.Violations())
}

// Each validates every element of a list, reporting violations as field[i].
func Each[T Validatable](c *Collector, field string, items []T) {
	for i, item := range items {
		c.Nested(fmt.Sprintf("%s[%d]", field, i), item)
	}
}

// Result returns the accumulated violations, nil when there are none.
func (c *Collector) Result() Errors {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

func (c *Collector) add(prefix string, errs Errors) {
	for _, v := range errs {
		field := prefix
		if v.Field != "" {
			field = prefix + "." + v.Field
		}
		c.errs = append(c.errs, &ConstraintViolation{Field: field, Value: v.Value, Rule: v.Rule})
	}
}

func isNil(v Validatable) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
