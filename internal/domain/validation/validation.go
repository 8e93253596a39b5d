// Package validation holds the field rules shared by the use cases and the
// dashboard server, built on go-playground/validator.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	domainerrors "planner/internal/domain/errors"
	"planner/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]{3,30}$`)
	telegramPattern = regexp.MustCompile(`^@?[A-Za-z0-9_]{5,32}$`)
	clockPattern    = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
)

var (
	once     sync.Once
	instance *validator.Validate
)

// Validator returns the shared validator with the custom tags registered:
// username, telegram and clock.
func Validator() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)
		_ = v.RegisterValidation("username", matches(usernamePattern))
		_ = v.RegisterValidation("telegram", matches(telegramPattern))
		_ = v.RegisterValidation("clock", matches(clockPattern))
		instance = v
	})

	return instance
}

func matches(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return fld.Name
	}

	return name
}

// ValidateEmail reports whether s is a non-empty, well-formed email address.
func ValidateEmail(s string) bool {
	return Validator().Var(s, "required,email") == nil
}

// ValidatePhone reports whether s is an E.164 phone number.
func ValidatePhone(s string) bool {
	return Validator().Var(s, "required,e164") == nil
}

// ValidateUsername reports whether s is 3-30 letters, digits or underscores.
func ValidateUsername(s string) bool {
	return usernamePattern.MatchString(s)
}

// ValidateTelegramHandle reports whether s is a messaging handle, with or without the leading @.
func ValidateTelegramHandle(s string) bool {
	return telegramPattern.MatchString(s)
}

// ValidateClock reports whether s is a 24h HH:MM time.
func ValidateClock(s string) bool {
	return clockPattern.MatchString(s)
}

// Struct validates v and converts any failure into a validation APIError
// carrying one FieldError per offending field.
func Struct(v any) error {
	err := Validator().Struct(v)
	if err == nil {
		return nil
	}

	verrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return domainerrors.NewValidationError(domainerrors.FieldError{Message: err.Error()})
	}

	fields := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domainerrors.FieldError{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "e164":
		return "must be a phone number in international format"
	case "username":
		return "must be 3-30 letters, digits or underscores"
	case "telegram":
		return "must be a valid Telegram username"
	case "clock":
		return "must be a time in HH:MM format"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "url":
		return "must be a valid URL"
	case "hexcolor":
		return "must be a hex color"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	}

	return "is invalid"
}
