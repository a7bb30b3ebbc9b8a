package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	MsgCorpoInvalido = "Corpo da requisição inválido"
	MsgDataInvalida  = "Data inválida: %s. Use AAAA-MM-DD, AAAA-MM-DDTHH:MM:SS ou RFC3339"
)

// UseJSONFieldNames makes validation errors report the JSON name of a field
// instead of the Go one. It must run before the first request is bound.
func UseJSONFieldNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
}

// Messages turns a binding error into the list of messages sent back in the
// "errors" field of a 400 response.
func Messages(err error) []string {
	var dateErr *DateTimeError
	if errors.As(err, &dateErr) {
		return []string{fmt.Sprintf(MsgDataInvalida, dateErr.Value)}
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []string{fmt.Sprintf("O campo %s possui um tipo inválido", typeErr.Field)}
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{MsgCorpoInvalido}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório", field)
	case "email":
		return fmt.Sprintf("O campo %s deve ser um email válido", field)
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um dos valores: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("O campo %s deve ter no máximo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("O campo %s deve ser no máximo %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres", field, fe.Param())
		}
		return fmt.Sprintf("O campo %s deve ser no mínimo %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("O campo %s deve ser maior ou igual a %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("O campo %s deve ser menor ou igual a %s", field, fe.Param())
	default:
		return fmt.Sprintf("O campo %s é inválido", field)
	}
}
