package converter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	catalogv1 "github.com/Leonardostavares/Catalogo-Carro/pkg/api/catalog/v1"
)

func onixPlus() model.CarView {
	return model.CarView{
		Car: model.Car{
			ID:           1000,
			ModelID:      12,
			Year:         2015,
			Fuel:         "FLEX",
			Doors:        4,
			Color:        "BEGE",
			Value:        decimal.NewFromInt(50000),
			RegisteredAt: 1696539488,
		},
		ModelName: "Onix Plus",
		BrandID:   3,
		BrandName: "Chevrolet",
	}
}

func TestCarsToExport(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(CarsToExport([]model.CarView{onixPlus()}))
	require.NoError(t, err)

	assert.JSONEq(t, `{"cars":[{
		"id":1000,
		"timestamp_cadastro":1696539488,
		"modelo_id":12,
		"ano":2015,
		"combustivel":"FLEX",
		"num_portas":4,
		"cor":"BEGE",
		"nome_modelo":"ONIX PLUS",
		"valor":50000,
		"marca":"Chevrolet"
	}]}`, string(b))
}

func TestCarsToExportKeepsCents(t *testing.T) {
	t.Parallel()

	car := onixPlus()
	car.Value = decimal.RequireFromString("50000.50")

	b, err := json.Marshal(CarsToExport([]model.CarView{car}))
	require.NoError(t, err)
	assert.Contains(t, string(b), `"valor":50000.5`)
}

func TestCarsToExportEmpty(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(CarsToExport(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"cars":[]}`, string(b))
}

func TestCarToResponse(t *testing.T) {
	t.Parallel()

	car := onixPlus()
	car.CreatedAt = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	car.UpdatedAt = car.CreatedAt

	res := CarToResponse(car)
	assert.Equal(t, "Onix Plus", res.NomeModelo)
	assert.Equal(t, "Chevrolet", res.NomeMarca)
	assert.Equal(t, int64(1696539488), res.TimestampCadastro)
	assert.True(t, res.Valor.Equal(decimal.NewFromInt(50000)))
}

func TestModelToResponseWithoutPrice(t *testing.T) {
	t.Parallel()

	res := ModelToResponse(model.CarModel{ID: 1, BrandID: 2, BrandName: "Fiat", Name: "Uno"})
	assert.Nil(t, res.ValorFipe)

	b, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"valorFipe":null`)
}

func TestCarRequestToUpdateParams(t *testing.T) {
	t.Parallel()

	modelID := int64(12)
	v := catalogv1.NewMoney(decimal.NewFromInt(1))
	params := CarRequestToUpdateParams(catalogv1.CarRequest{ModeloID: &modelID, Ano: lo.ToPtr(2020), Valor: &v})

	require.NotNil(t, params.ModelID)
	assert.Equal(t, modelID, *params.ModelID)
	assert.Empty(t, params.ModelName)
	assert.True(t, params.Value.Equal(decimal.NewFromInt(1)))
}
