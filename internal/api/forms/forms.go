// Package forms implements declarative per-field validation for the HTML
// form endpoints. Each form is an ordered list of fields; each field an
// ordered list of independent rule+message pairs. Rules are evaluated
// eagerly and violations accumulated, so one pass reports every broken rule
// and the re-rendered form can show them all at once.
package forms

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError is one violated rule, in declaration order.
type FieldError struct {
	Field   string
	Message string
}

// Rule checks a single value. Tag is a go-playground/validator tag
// expression ("required", "min=2", "datetime=2006-01-02", ...); Fn covers
// shapes a tag cannot express. Exactly one of the two is set.
type Rule struct {
	Tag     string
	Fn      func(value string) bool
	Message string
}

// Field binds a form field name to its rules. Optional fields skip their
// rules entirely when submitted empty.
type Field struct {
	Name     string
	Optional bool
	Rules    []Rule
}

var validate = validator.New()

// Check runs every rule of every field against the submitted values and
// returns the accumulated violations. values is typically echo.Context's
// FormValue. Leading and trailing whitespace is trimmed before checking,
// matching what the handlers store.
func Check(values func(name string) string, fields []Field) []FieldError {
	var errs []FieldError
	for _, field := range fields {
		value := strings.TrimSpace(values(field.Name))
		if field.Optional && value == "" {
			continue
		}
		for _, rule := range field.Rules {
			ok := true
			if rule.Fn != nil {
				ok = rule.Fn(value)
			} else {
				ok = validate.Var(value, rule.Tag) == nil
			}
			if !ok {
				errs = append(errs, FieldError{Field: field.Name, Message: rule.Message})
			}
		}
	}
	return errs
}
