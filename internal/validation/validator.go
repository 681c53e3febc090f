package validation

import (
	"reflect"
	"strings"
	"sync"

	"budget-engine/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("currency_code", validateCurrencyCode)
	_ = v.RegisterValidation("start_day", validateStartDay)
	_ = v.RegisterValidation("time_unit", validateTimeUnit)
	_ = v.RegisterValidation("decimal_amount", validateDecimalAmount)
	_ = v.RegisterValidation("positive_decimal", validatePositiveDecimal)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// validateCurrencyCode accepts ISO-4217 style codes such as "EUR"
func validateCurrencyCode(fl validator.FieldLevel) bool {
	return models.IsValidCurrencyCode(fl.Field().String())
}

// validateStartDay validates the first day of a budget month
func validateStartDay(fl validator.FieldLevel) bool {
	switch fl.Field().Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return models.ValidateStartDayOfMonth(int(fl.Field().Int())) == nil
	default:
		return false
	}
}

func validateTimeUnit(fl validator.FieldLevel) bool {
	return models.IsValidTimeUnit(models.TimeUnit(strings.ToLower(fl.Field().String())))
}

// validateDecimalAmount validates a non-negative decimal string with at most 4 decimal places
func validateDecimalAmount(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	if amount.IsNegative() {
		return false
	}
	return amount.Exponent() >= -4
}

// validatePositiveDecimal validates a decimal string greater than zero
func validatePositiveDecimal(fl validator.FieldLevel) bool {
	amount, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return amount.IsPositive()
}
