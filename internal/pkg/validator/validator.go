package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - validación de una estructura según sus tags.
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - acceso al validador para configuración adicional.
func GetValidator() *validator.Validate {
	return validate
}
