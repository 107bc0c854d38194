// Package validation checks request structs and flattens failures into a
// field path to message map that forms can show next to each input.
package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps a validator.Validate that reports field names taken from
// a struct tag, "json" unless configured otherwise.
type Validator struct {
	validate *validator.Validate
}

// Option configures a Validator.
type Option func(*options)

type options struct {
	tag string
}

// WithTagName names fields after the given struct tag, e.g. "mapstructure".
func WithTagName(tag string) Option {
	return func(o *options) {
		o.tag = tag
	}
}

// New creates a Validator.
func New(opts ...Option) *Validator {
	o := options{tag: "json"}
	for _, opt := range opts {
		opt(&o)
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get(o.tag), ",")
		switch name {
		case "-":
			return ""
		case "":
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

var std = New()

// Struct validates s with the shared validator.
func Struct(s any) error { return std.Struct(s) }

// Struct validates s. Types implementing Validate() error validate themselves.
func (v *Validator) Struct(s any) error {
	if self, ok := s.(interface{ Validate() error }); ok {
		return self.Validate()
	}
	return v.validate.Struct(s)
}

// Errors maps each failing field path to a message. Errors that did not
// come from field validation land under the empty key; nil yields nil.
func Errors(err error) map[string]string {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return map[string]string{"": err.Error()}
	}

	out := make(map[string]string, len(fieldErrs))
	for _, fe := range fieldErrs {
		path := fieldPath(fe)
		if _, seen := out[path]; seen {
			continue
		}
		out[path] = Message(fe)
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

// Message returns a human readable message for one field failure.
func Message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "gt", "gte", "lt", "lte":
		return fmt.Sprintf("%s must be %s %s", field, comparisons[fe.Tag()], fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

var comparisons = map[string]string{
	"gt":  "greater than",
	"gte": "at least",
	"lt":  "less than",
	"lte": "at most",
}
