package validation

import (
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/fuel_station_app/internal/core/domain"
)

// New returns a validator that reads the same `binding` tags gin uses, so
// request structs are checked identically at the edge and in services.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	Register(v)
	return v
}

// Register teaches v to compare decimal fields numerically (gt, gte, lt ...)
// and to report json field names.
func Register(v *validator.Validate) {
	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
	_ = v.RegisterValidation("liters", storedDecimal(domain.LiterScale))
	_ = v.RegisterValidation("money", storedDecimal(domain.MoneyScale))
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}

// FitsStored reports whether d survives a NUMERIC(DecimalDigits, scale)
// column without rounding or overflow.
func FitsStored(d decimal.Decimal, scale int32) bool {
	if !d.Equal(d.Truncate(scale)) {
		return false
	}
	return len(d.Abs().Truncate(0).String()) <= domain.DecimalDigits-int(scale)
}

// storedDecimal validates the field's original decimal; the custom type func
// hands tags a float64, so the value is read back from the parent struct.
func storedDecimal(scale int32) validator.Func {
	return func(fl validator.FieldLevel) bool {
		var d decimal.Decimal
		switch {
		case fl.Field().Type() == reflect.TypeOf(decimal.Decimal{}):
			d = fl.Field().Interface().(decimal.Decimal)
		case fl.Parent().Kind() == reflect.Struct:
			f := fl.Parent().FieldByName(fl.StructFieldName())
			if !f.IsValid() {
				return false
			}
			v, ok := f.Interface().(decimal.Decimal)
			if !ok {
				return false
			}
			d = v
		default:
			return false
		}
		return FitsStored(d, scale)
	}
}

// Describe flattens validator errors into one readable line.
func Describe(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "liters" || fe.Tag() == "money" {
			parts = append(parts, fe.Field()+" has too many digits for "+fe.Tag())
			continue
		}
		if fe.Param() != "" {
			parts = append(parts, fe.Field()+" failed "+fe.Tag()+"="+fe.Param())
		} else {
			parts = append(parts, fe.Field()+" failed "+fe.Tag())
		}
	}
	return strings.Join(parts, "; ")
}

// RegisterGinBinding applies Register to gin's default binding validator.
func RegisterGinBinding() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}
