package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	contactNoPattern = regexp.MustCompile(`^[0-9]{10}$`)
	htmlTagPattern   = regexp.MustCompile(`<[^>]*>`)
	pageURLPattern   = regexp.MustCompile(`^[a-z0-9\-@.]+$`)
)

type Validation struct {
	validator *validator.Validate
}

func NewValidation() *Validation {
	v := validator.New()
	v.RegisterValidation("contactno", validateContactNo)
	v.RegisterValidation("nohtml", validateNoHTML)
	v.RegisterValidation("pageurl", validatePageURL)
	return &Validation{validator: v}
}

// contact numbers are exactly ten digits
func validateContactNo(fl validator.FieldLevel) bool {
	return contactNoPattern.MatchString(fl.Field().String())
}

func validateNoHTML(fl validator.FieldLevel) bool {
	return !htmlTagPattern.MatchString(fl.Field().String())
}

func validatePageURL(fl validator.FieldLevel) bool {
	return pageURLPattern.MatchString(fl.Field().String())
}

// ValidationError wraps the validator's FieldError
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (v ValidationError) Error() string {
	return fmt.Sprintf("Field '%s': %s", v.Field, v.Message)
}

// ValidationErrors is a slice of ValidationError
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	return strings.Join(v.Messages(), "; ")
}

// Unwrap classifies every validation failure as invalid input
func (v ValidationErrors) Unwrap() error {
	return ErrInvalid
}

// Messages returns one human readable line per failed field
func (v ValidationErrors) Messages() []string {
	msgs := make([]string, 0, len(v))
	for _, ve := range v {
		msgs = append(msgs, ve.Error())
	}
	return msgs
}

// Validate checks i against its `validate` struct tags. It returns nil when
// the value is valid.
func (v *Validation) Validate(i interface{}) ValidationErrors {
	var errs ValidationErrors

	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: "", Message: err.Error()}}
	}

	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Field(),
			Message: fmt.Sprintf("failed on the '%s' tag", fe.Tag()),
		})
	}

	return errs
}
