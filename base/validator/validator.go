package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

var (
	addressRegex  = regexp.MustCompile(`^0x[a-fA-F0-9]{40}$`)
	bytecodeRegex = regexp.MustCompile(`^0x([a-fA-F0-9]{2})+$`)
)

// IsValidAddress reports whether address is a 0x prefixed 20 bytes hex string
func IsValidAddress(address string) bool {
	return addressRegex.MatchString(address)
}

// IsValidBytecode reports whether code is a non-empty 0x prefixed hex string of whole bytes
func IsValidBytecode(code string) bool {
	return bytecodeRegex.MatchString(code)
}

// IsPositiveDecimal reports whether s is a decimal number greater than zero
func IsPositiveDecimal(s string) bool {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return false
	}
	return d.IsPositive()
}

// NewCustomValidator registers the `address`, `bytecode` and `positive_decimal` tags on v
func NewCustomValidator(v *validator.Validate) echo.Validator {
	v.RegisterValidation("address", func(fl validator.FieldLevel) bool {
		return IsValidAddress(fl.Field().String())
	})
	v.RegisterValidation("bytecode", func(fl validator.FieldLevel) bool {
		return IsValidBytecode(fl.Field().String())
	})
	v.RegisterValidation("positive_decimal", func(fl validator.FieldLevel) bool {
		return IsPositiveDecimal(fl.Field().String())
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
