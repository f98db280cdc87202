package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/simplehiit-backend/internal/domain"
)

type userInput struct {
	ID       int64  `validate:"gte=0"`
	Name     string `validate:"required,max=64,printable"`
	Selected bool
}

// sessionInput leaves an empty Users list to the repository, which reports NO_USER_PROVIDED.
type sessionInput struct {
	Timestamp time.Time     `validate:"required"`
	Duration  time.Duration `validate:"gt=0"`
	Users     []int64       `validate:"dive,gt=0"`
}

type settingInput struct {
	Field string `validate:"required,setting"`
	Value string `validate:"required"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("printable", func(fl validator.FieldLevel) bool {
		return !strings.ContainsFunc(fl.Field().String(), func(r rune) bool { return r < ' ' })
	})
	_ = v.RegisterValidation("setting", func(fl validator.FieldLevel) bool {
		_, ok := settingFields[fl.Field().String()]
		return ok
	})
	return v
}

// check validates in and turns validator errors into a domain.ValidationError.
func check(v *validator.Validate, in any) error {
	err := v.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	out := make([]domain.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, domain.FieldError{Field: strings.ToLower(fe.Field()), Message: msgForTag(fe)})
	}
	return domain.NewValidationErrors(out)
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", fe.Param())
	case "printable":
		return "must not contain control characters"
	case "setting":
		return fmt.Sprintf("must be one of: %s", strings.Join(settingNames(), ", "))
	default:
		return fmt.Sprintf("failed validation (%s)", fe.Tag())
	}
}
