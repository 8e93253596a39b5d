// Package validator adapts the shared go-playground validator to echo.
package validator

import (
	"planner/internal/domain/validation"

	"github.com/labstack/echo/v4"
)

type echoValidator struct{}

// New returns the echo.Validator used by c.Validate. Failures are validation APIErrors.
func New() echo.Validator {
	return echoValidator{}
}

func (echoValidator) Validate(i any) error {
	return validation.Struct(i)
}
