// Package validate runs struct-tag validation for every client-supplied input.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// ErrInvalid is matched by every validation failure.
var ErrInvalid = errors.New("validation failed")

// Enum is implemented by closed string enumerations.
type Enum interface {
	Valid() bool
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error lists the offending fields. It unwraps to ErrInvalid.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation: " + strings.Join(parts, "; ")
}

func (e *Error) Unwrap() error { return ErrInvalid }

// Field builds a single-field validation error.
func Field(name, message string) error {
	return &Error{Fields: []FieldError{{Field: name, Message: message}}}
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
			e, ok := fl.Field().Interface().(Enum)
			return ok && e.Valid()
		})
		instance = v
	})
	return instance
}

// Struct validates s and converts failures into *Error.
func Struct(s any) error {
	return convert(get().Struct(s), "")
}

// Enumeration checks a single enum value, typically one read from a query string.
func Enumeration(field string, e Enum) error {
	if !e.Valid() {
		return Field(field, fmt.Sprintf("unsupported value %q", fmt.Sprint(e)))
	}
	return nil
}

// Email trims addr and lowercases its domain part, the text after the last "@".
// The local part is kept as sent.
func Email(addr string) string {
	addr = strings.TrimSpace(addr)
	at := strings.LastIndex(addr, "@")
	if at < 0 {
		return addr
	}
	return addr[:at+1] + strings.ToLower(addr[at+1:])
}

func convert(err error, prefix string) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field:   prefix + fieldPath(fe),
			Message: message(fe),
		})
	}
	return out
}

// fieldPath drops the top-level struct name from the namespace, e.g. "CreateInput.items[0].quantity".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "enum", "oneof":
		return fmt.Sprintf("unsupported value %q", fmt.Sprint(fe.Value()))
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "min":
		return "must contain at least " + fe.Param() + " element(s)"
	default:
		return "failed on " + fe.Tag()
	}
}
