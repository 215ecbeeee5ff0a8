package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yritu05/Scholar-Connect/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call c.Validate(form).
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
// Besides the built-in rules it knows "category", which accepts exactly one
// of the fixed paper categories.
func NewValidator() *echoValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return domain.Category(fl.Field().String()).IsValid()
	})
	return &echoValidator{v: v}
}

const msgInvalidForm = "Please fill in all fields with valid values."

// formError lists the rules a form failed. It unwraps to domain.ErrValidation.
type formError struct {
	fields []validator.FieldError
}

func (e *formError) Error() string {
	msgs := make([]string, 0, len(e.fields))
	for _, fe := range e.fields {
		msgs = append(msgs, fieldError(fe))
	}
	return strings.Join(msgs, "; ")
}

func (e *formError) Unwrap() error { return domain.ErrValidation }

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	if err := ev.v.Struct(i); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			return &formError{fields: ve}
		}
		return err
	}
	return nil
}

// failedRule reports whether err is a validation failure on the given tag.
func failedRule(err error, tag string) bool {
	var fe *formError
	if !errors.As(err, &fe) {
		return false
	}
	for _, f := range fe.fields {
		if f.Tag() == tag {
			return true
		}
	}
	return false
}

// validationMessage turns a validation failure into a sentence for a flash.
func validationMessage(err error) string {
	var fe *formError
	if !errors.As(err, &fe) || len(fe.fields) == 0 {
		return msgInvalidForm
	}
	msg := fe.Error()
	return strings.ToUpper(msg[:1]) + msg[1:] + "."
}

// fieldError converts a single ValidationError into a human-readable message.
func fieldError(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "category":
		return field + " must be one of the listed categories"
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}
