package http

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate es la instancia compartida del validador de structs; es segura para
// uso concurrente y cachea la metadata de los tags.
var validate = validator.New(validator.WithRequiredStructEnabled())

// validateStruct valida los tags `validate` de un DTO y devuelve un mensaje
// legible con el primer error, o "" si el struct es válido.
func validateStruct(in any) string {
	err := validate.Struct(in)
	if err == nil {
		return ""
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return "entrada inválida"
	}
	fe := verrs[0]
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required", "required_without":
		return fmt.Sprintf("%s es requerido", field)
	case "uuid":
		return fmt.Sprintf("%s debe ser un UUID válido", field)
	case "email":
		return fmt.Sprintf("%s debe ser un email válido", field)
	case "min":
		return fmt.Sprintf("%s debe tener un mínimo de %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s supera el máximo de %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s debe ser uno de: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s no cumple la regla '%s'", field, fe.Tag())
	}
}
