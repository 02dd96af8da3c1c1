package dialogs

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Errors maps a form field name to the first message for it.
type Errors map[string]string

func (e Errors) Has(field string) bool {
	_, found := e[field]
	return found
}

func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for field, message := range e {
		parts = append(parts, field+": "+message)
	}
	return strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("validate")
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// check validates form and translates failures with messages keyed by "field.tag".
func check(form interface{}, messages map[string]string) (Errors, error) {
	err := validate.Struct(form)
	if err == nil {
		return nil, nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return nil, errors.Wrap(err, "Failed to validate form")
	}

	res := make(Errors)
	for _, fe := range fieldErrors {
		if res.Has(fe.Field()) {
			continue
		}
		message, found := messages[fe.Field()+"."+fe.Tag()]
		if !found {
			message = "Invalid value"
		}
		res[fe.Field()] = message
	}
	return res, nil
}
