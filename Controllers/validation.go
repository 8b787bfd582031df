package Controllers

import (
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(validate, trans)
}

// validateRequest runs the struct's validate tags and returns the translated
// messages, or "" when the request is valid.
func validateRequest(req interface{}) string {
	err := validate.Struct(req)
	if err == nil {
		return ""
	}
	if errs, ok := err.(validator.ValidationErrors); ok {
		var messages []string
		for _, e := range errs {
			messages = append(messages, e.Translate(trans))
		}
		return strings.Join(messages, "; ")
	}
	return err.Error()
}

// isUniqueViolation reports whether the storage layer rejected a write
// because of a duplicate unique field (phone, license plate, template name).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "Duplicate entry")
}
