package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator"
	"github.com/shopspring/decimal"

	apperror "gosupply/internal/errors"
)

// Valores monetários cabem em NUMERIC(15,2).
const (
	moneyScale     = 2
	moneyIntDigits = 13
)

var moneyLimit = decimal.New(1, moneyIntDigits)

// Validator valida payloads de entrada usando as tags `validate` das structs de domínio.
// Apenas a primeira falha é reportada, com o nome JSON do campo.
type Validator struct {
	validate *validator.Validate
}

// New cria um Validator que usa os nomes das tags json nas mensagens.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// decimal.Decimal é validado pela sua representação textual.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})
	_ = v.RegisterValidation("money", validateMoney)

	return &Validator{validate: v}
}

// validateMoney aceita no máximo duas casas decimais e treze dígitos inteiros.
func validateMoney(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	return d.Equal(d.Round(moneyScale)) && d.Abs().LessThan(moneyLimit)
}

// Struct valida s e devolve um *errors.ValidationError com a primeira mensagem, ou nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return apperror.NewValidationError(message(fieldErrs[0]))
	}
	return apperror.NewValidationError(err.Error())
}

// message traduz o erro de campo para o formato `"campo" is required`.
func message(fe validator.FieldError) string {
	field := fieldPath(fe.Namespace())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "gte":
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%q must be greater than %s", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q length must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%q length must be less than or equal to %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%q must be less than or equal to %s", field, fe.Param())
	case "money":
		return fmt.Sprintf("%q must have at most %d decimal places and %d integer digits", field, moneyScale, moneyIntDigits)
	default:
		return fmt.Sprintf("%q failed on the %q rule", field, fe.Tag())
	}
}

// fieldPath remove o nome da struct raiz do namespace ("PurchaseRequest.detail[0].qty" -> "detail[0].qty").
func fieldPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}
