package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// humanize turns a json field name into a label, present_dates -> Present Dates.
func humanize(field string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(field, "_", " "))
}

// MapValidationError reports the first field a gin binding error complains
// about. Anything that is not a validator error, such as malformed JSON,
// becomes a generic validation error.
func MapValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return New(CodeValidation, "Invalid input", http.StatusBadRequest)
	}

	fe := verrs[0]
	label := humanize(fe.Field())
	details := map[string]string{"field": fe.Field(), "rule": fe.Tag()}
	if fe.Tag() == "required" {
		return RequiredField(label).WithDetails(details)
	}
	return InvalidField(label).WithDetails(details)
}
