package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"customer-contract-portal/internal/platform/apperr"

	"github.com/go-playground/validator/v10"
)

var (
	once sync.Once
	v    *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		// Reportar el nombre del tag json (o `field`) en vez del campo Go.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if name := f.Tag.Get("field"); name != "" {
				return name
			}
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
	})
	return v
}

// Struct valida tags `validate:"..."` y devuelve apperr.Validation con detalle por campo.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation(err.Error())
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return apperr.Validation(strings.Join(msgs, "; "))
}

// Var valida un valor suelto (p.ej. un campo de PATCH).
func Var(field string, value any, tag string) error {
	err := instance().Var(value, tag)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperr.Validation(field + ": " + describeTag(verrs[0].Tag(), verrs[0].Param()))
	}
	return apperr.Validation(field + ": invalid")
}

func describe(fe validator.FieldError) string {
	return fe.Field() + ": " + describeTag(fe.Tag(), fe.Param())
}

func describeTag(tag, param string) string {
	switch tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email"
	case "max":
		return fmt.Sprintf("must be at most %s characters", param)
	case "min":
		return fmt.Sprintf("must be at least %s characters", param)
	case "ip":
		return "must be a valid IP address"
	default:
		return "failed " + tag
	}
}
