// Package validation runs the same struct rules gin applies at binding time,
// so core operations can validate their input explicitly before running.
package validation

import (
	"reflect"
	"sync"

	"github.com/SscSPs/erp_backoffice/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// TagName matches gin's binding tag so request DTOs carry one set of rules.
const TagName = "binding"

var (
	once     sync.Once
	validate *validator.Validate
)

// Validator returns the shared validator instance.
func Validator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.SetTagName(TagName)
		Register(validate)
	})
	return validate
}

// Register installs the decimal rules on v. It is also applied to gin's engine.
// dgte0 accepts a decimal.Decimal that is zero or positive.
func Register(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalAsString, decimal.Decimal{})
	_ = v.RegisterValidation("dgte0", func(fl validator.FieldLevel) bool {
		d, ok := fieldDecimal(fl)
		return ok && !d.IsNegative()
	})
}

// Struct validates s and converts failures to a BadRequest AppError.
func Struct(s any) error {
	if err := Validator().Struct(s); err != nil {
		return apperrors.NewValidationFailedError(err)
	}
	return nil
}

func decimalAsString(field reflect.Value) any {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		return d.String()
	}
	return nil
}

func fieldDecimal(fl validator.FieldLevel) (decimal.Decimal, bool) {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}
