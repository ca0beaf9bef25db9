package handlers

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// В ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct проверяет теги validate у запроса
func ValidateStruct(v interface{}) error {
	return validate.Struct(v)
}

// ValidationMessage собирает сообщение вида "field: tag; ..." из ошибки валидатора
func ValidationMessage(prefix string, err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return prefix
	}

	parts := make([]string, 0, len(ve))
	for _, fe := range ve {
		parts = append(parts, fe.Field()+": "+fe.Tag())
	}
	sort.Strings(parts)
	return prefix + " (" + strings.Join(parts, "; ") + ")"
}
