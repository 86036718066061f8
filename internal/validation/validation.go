// Package validation binds request payloads and turns validator errors
// into field errors the client can act on.
package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gosnews/gosnews/internal/lib/i18n"
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by the name the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param", "form"} {
			name, _, _ := strings.Cut(fld.Tag.Get(tag), ",")
			if name != "" && name != "-" {
				return name
			}
		}
		return fld.Name
	})

	_ = v.RegisterValidation("lang", func(fl validator.FieldLevel) bool {
		return i18n.IsSupported(fl.Field().String())
	})
	_ = v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRegex.MatchString(fl.Field().String())
	})

	return v
}

// Struct validates s against its `validate` tags.
func Struct(s interface{}) error {
	return validate.Struct(s)
}

// UniqueLanguages rejects a list with the same language twice.
func UniqueLanguages(field string, langs []string) error {
	seen := make(map[string]bool, len(langs))
	for _, lang := range langs {
		if seen[lang] {
			return CustomValidationErrors{
				{Field: field, Message: "duplicate language: " + lang},
			}
		}
		seen[lang] = true
	}
	return nil
}
