// Package validation envuelve go-playground/validator con las reglas
// propias del dominio: fechas "2006-01-02", horas "15:04" y teléfonos.
package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse("2006-01-02", value)
		return err == nil
	})

	v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		_, err := time.Parse("15:04", value)
		return err == nil
	})

	phoneRegex := regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return phoneRegex.MatchString(value)
	})

	return &Validator{v: v}
}

func (v *Validator) Struct(s any) error {
	return v.v.Struct(s)
}

// Describe convierte los errores del validator en mensajes cortos por
// campo, aptos para mostrar inline en la UI.
func Describe(err error) string {
	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s es obligatorio", strings.ToLower(fe.Field())))
		case "email":
			parts = append(parts, fmt.Sprintf("%s no es un email válido", strings.ToLower(fe.Field())))
		case "date":
			parts = append(parts, fmt.Sprintf("%s debe ser YYYY-MM-DD", strings.ToLower(fe.Field())))
		case "clock":
			parts = append(parts, fmt.Sprintf("%s debe ser HH:MM", strings.ToLower(fe.Field())))
		case "phone":
			parts = append(parts, fmt.Sprintf("%s no es un teléfono válido", strings.ToLower(fe.Field())))
		default:
			parts = append(parts, fmt.Sprintf("%s no es válido (%s)", strings.ToLower(fe.Field()), fe.Tag()))
		}
	}
	return strings.Join(parts, "; ")
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}
