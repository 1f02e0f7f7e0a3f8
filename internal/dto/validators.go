package dto

import (
	"reflect"

	"github.com/SscSPs/finops_core/internal/core/period"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators adds the custom binding tags used by the request DTOs:
//
//	granularity  WEEK, MONTH, SEMESTER, YEAR or ALL (case-insensitive)
//	money        non-negative decimal with at most two fractional digits
//
// decimal.Decimal fields are validated through their string form.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	if err := v.RegisterValidation("granularity", validateGranularity); err != nil {
		return err
	}
	return v.RegisterValidation("money", validateMoney)
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func validateGranularity(fl validator.FieldLevel) bool {
	_, err := period.ParseGranularity(fl.Field().String())
	return err == nil
}

func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return !d.IsNegative() && d.Equal(d.Round(2))
}
