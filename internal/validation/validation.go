// Package validation checks request values before they are sent.
package validation

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/fivetwenty-io/paymill-go/pkg/paymill"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Service holds a singleton validator and translator.
type Service struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	once    sync.Once
	service *Service
)

// Get returns the validator singleton, initializing on first use. Field
// names in messages are the form keys sent on the wire.
func Get() *Service {
	once.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("form")
			if tag == "-" || tag == "" {
				return fld.Name
			}

			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}

			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerRequiredWithout(v, trans)

		service = &Service{Validator: v, Translator: trans}
	})

	return service
}

// Struct validates a request. The first failing field is returned as a
// *paymill.ValidationError.
func Struct(value interface{}) error {
	if value == nil || (reflect.ValueOf(value).Kind() == reflect.Ptr && reflect.ValueOf(value).IsNil()) {
		return &paymill.ValidationError{Message: "request is required"}
	}

	err := Get().Validator.Struct(value)
	if err == nil {
		return nil
	}

	field, message := FieldAndMessage(err)

	return &paymill.ValidationError{Field: field, Message: message}
}

// Required fails when value is empty.
func Required(field, value string) error {
	if strings.TrimSpace(value) != "" {
		return nil
	}

	return &paymill.ValidationError{Field: field, Message: field + " is a required field"}
}

// FieldAndMessage returns the first field and translated message.
func FieldAndMessage(err error) (string, string) {
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return "", invalid.Error()
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}

	return "", err.Error()
}

func registerRequiredWithout(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("required_without", trans,
		func(ut ut.Translator) error {
			return ut.Add("required_without", "{0} is required when {1} is not set", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("required_without", fe.Field(), strings.ToLower(fe.Param()))

			return msg
		},
	)
}
