package dto

import (
	"html"
	"reflect"
	"strings"

	"vcard-payments/internal/card"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("card_number", validateCardNumber)
		_ = v.RegisterValidation("cvv", validateCVV)
	}
}

// validateCardNumber accepts a 16-digit Luhn-valid card number, with
// spaces and dashes allowed as grouping.
func validateCardNumber(fl validator.FieldLevel) bool {
	return card.ValidNumber(fl.Field().String())
}

// validateCVV accepts a 3 or 4 digit CVV.
func validateCVV(fl validator.FieldLevel) bool {
	return card.ValidCVV(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				s := sanitize(elem.String())
				elem.SetString(s)
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
