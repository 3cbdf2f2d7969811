package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse describe una violación de una regla declarada en tags `validate`.
type ErrorResponse struct {
	FailedField string // nombre del campo como lo ve el cliente (tag json)
	Tag         string // required, oneof, gt, ...
	Value       string // parámetro de la regla, si aplica
}

var validate = validator.New()

func init() {
	// Reportar los nombres de campo según el tag json, no el nombre del struct
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// ValidateStruct aplica las reglas declaradas en los tags `validate` y devuelve
// todas las violaciones encontradas (slice vacío si el struct es válido).
func ValidateStruct(data interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	if err := validate.Struct(data); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			errs = append(errs, &ErrorResponse{
				FailedField: fe.Field(),
				Tag:         fe.Tag(),
				Value:       fe.Param(),
			})
		}
	}
	return errs
}
