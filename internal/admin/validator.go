package admin

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"bookstore/internal/httpx"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterValidation("isbn", validateISBN)
}

func validateISBN(fl validator.FieldLevel) bool {
	isbn := fl.Field().String()
	isbn = strings.ReplaceAll(isbn, "-", "")
	isbn = strings.ReplaceAll(isbn, " ", "")

	if len(isbn) == 10 {
		matched, _ := regexp.MatchString(`^\d{9}[\dX]$`, isbn)
		return matched
	}
	if len(isbn) == 13 {
		matched, _ := regexp.MatchString(`^\d{13}$`, isbn)
		return matched
	}
	return false
}

// validationDetails flattens validator errors into the response shape.
func validationDetails(err error) []httpx.ErrorDetail {
	var details []httpx.ErrorDetail
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	for _, fe := range verrs {
		details = append(details, httpx.ErrorDetail{
			Field:   strings.ToLower(fe.Field()),
			Message: fmt.Sprintf("failed on the '%s' rule", fe.Tag()),
		})
	}
	return details
}
