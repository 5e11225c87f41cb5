package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Rajshri-Priya/fundoo-notes/models"
)

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

// StructValidator validates request models through their validate tags and
// adds the rules tags cannot express.
type StructValidator struct {
	validate *validator.Validate
}

func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// username: letters, digits and _ . - only
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})

	return &StructValidator{validate: v}
}

// Validate checks obj. When fields are given only those struct fields are
// validated.
func (v *StructValidator) Validate(_ context.Context, obj any, fields ...string) error {
	if obj == nil {
		return ErrUnsupportedType
	}

	rv := reflect.ValueOf(obj)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return ErrUnsupportedType
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartial(obj, fields...)
	} else {
		err = v.validate.Struct(obj)
	}
	if err != nil {
		return translate(err)
	}

	return validateRules(rv.Interface())
}

func validateRules(obj any) error {
	switch value := obj.(type) {
	case models.NoteUpdate:
		if value.Empty() {
			return fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoFieldsToUpdate)
		}
	case models.LabelUpdate:
		if value.Name == nil && value.Color == nil {
			return fmt.Errorf("%w: %w", ErrInvalidInput, ErrNoFieldsToUpdate)
		}
	}
	return nil
}

// translate flattens validator errors into one readable ErrInvalidInput.
func translate(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Field()
		if ns := fe.Namespace(); strings.Contains(ns, ".") {
			field = ns[strings.Index(ns, ".")+1:]
		}

		msg := field + ": " + fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		msgs = append(msgs, msg)
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, ", "))
}
