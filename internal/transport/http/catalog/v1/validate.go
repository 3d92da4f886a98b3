package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	catalogv1 "github.com/Leonardostavares/Catalogo-Carro/pkg/api/catalog/v1"
)

// fieldMessages maps a JSON field and a failed tag to the message returned to clients.
var fieldMessages = map[string]map[string]string{
	"nomeMarca": {
		"required": "Nome da marca é obrigatório",
		"notblank": "Nome da marca é obrigatório",
		"min":      "Nome da marca deve ter entre 2 e 100 caracteres",
		"max":      "Nome da marca deve ter entre 2 e 100 caracteres",
	},
	"nome": {
		"required": "Nome do modelo é obrigatório",
		"notblank": "Nome do modelo é obrigatório",
		"min":      "Nome do modelo deve ter entre 2 e 100 caracteres",
		"max":      "Nome do modelo deve ter entre 2 e 100 caracteres",
	},
	"nomeModelo": {
		"min": "Nome do modelo deve ter entre 2 e 100 caracteres",
		"max": "Nome do modelo deve ter entre 2 e 100 caracteres",
	},
	"marcaId": {
		"required": "ID da marca é obrigatório",
	},
	"valorFipe": {
		"required":  "Valor FIPE é obrigatório",
		"money_gte": "Valor FIPE deve ser maior que zero",
		"money_lte": "Valor FIPE deve ser menor ou igual a 999999999999.99",
	},
	"ano": {
		"required": "Ano é obrigatório",
		"gte":      "Ano deve ser maior ou igual a 1900",
		"lte":      "Ano deve ser menor ou igual a 2030",
	},
	"combustivel": {
		"required": "Combustível é obrigatório",
		"notblank": "Combustível é obrigatório",
	},
	"numPortas": {
		"required": "Número de portas é obrigatório",
		"gte":      "Número de portas deve ser maior ou igual a 2",
		"lte":      "Número de portas deve ser menor ou igual a 5",
	},
	"cor": {
		"required": "Cor é obrigatória",
		"notblank": "Cor é obrigatória",
	},
	"valor": {
		"required":  "Valor é obrigatório",
		"money_gte": "Valor deve ser maior que zero",
		"money_lte": "Valor deve ser menor ou igual a 999999999999.99",
	},
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// Money reaches validation as its exact decimal text.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if m, ok := field.Interface().(catalogv1.Money); ok {
			return m.String()
		}
		return nil
	}, catalogv1.Money{})

	for tag, fn := range map[string]validator.Func{
		"notblank":  validators.NotBlank,
		"money_gte": moneyBound(decimal.Decimal.GreaterThanOrEqual),
		"money_lte": moneyBound(decimal.Decimal.LessThanOrEqual),
	} {
		if err := v.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	return v
}

// moneyBound compares the field amount against the tag parameter without
// going through float64.
func moneyBound(cmp func(amount, bound decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		amount, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(amount, bound)
	}
}

// validationFields returns nil when err is not a validator error.
func validationFields(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}

		msg, ok := fieldMessages[fe.Field()][fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		fields[fe.Field()] = msg
	}

	return fields
}
