package converter

import (
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	catalogv1 "github.com/Leonardostavares/Catalogo-Carro/pkg/api/catalog/v1"
)

func BrandRequestToParams(req catalogv1.BrandRequest) model.BrandParams {
	return model.BrandParams{Name: req.NomeMarca}
}

func BrandToResponse(b model.Brand) catalogv1.BrandResponse {
	return catalogv1.BrandResponse{
		ID:              b.ID,
		NomeMarca:       b.Name,
		DataCriacao:     b.CreatedAt,
		DataAtualizacao: b.UpdatedAt,
	}
}

func BrandsToResponse(brands []model.Brand) []catalogv1.BrandResponse {
	return lo.Map(brands, func(b model.Brand, _ int) catalogv1.BrandResponse {
		return BrandToResponse(b)
	})
}

func ModelRequestToParams(req catalogv1.ModelRequest) model.CarModelParams {
	params := model.CarModelParams{Name: req.Nome}
	if req.MarcaID != nil {
		params.BrandID = *req.MarcaID
	}
	if req.ValorFipe != nil {
		params.ReferencePrice = req.ValorFipe.Round(2)
	}
	return params
}

func ModelToResponse(m model.CarModel) catalogv1.ModelResponse {
	res := catalogv1.ModelResponse{
		ID:              m.ID,
		MarcaID:         m.BrandID,
		NomeMarca:       m.BrandName,
		Nome:            m.Name,
		DataCriacao:     m.CreatedAt,
		DataAtualizacao: m.UpdatedAt,
	}
	if m.ReferencePrice != nil {
		res.ValorFipe = lo.ToPtr(catalogv1.NewMoney(*m.ReferencePrice))
	}
	return res
}

func ModelsToResponse(models []model.CarModel) []catalogv1.ModelResponse {
	return lo.Map(models, func(m model.CarModel, _ int) catalogv1.ModelResponse {
		return ModelToResponse(m)
	})
}

func CarRequestToCreateParams(req catalogv1.CarRequest) model.CreateCarParams {
	return model.CreateCarParams{
		BrandName: req.NomeMarca,
		ModelName: req.NomeModelo,
		Year:      lo.FromPtr(req.Ano),
		Fuel:      req.Combustivel,
		Doors:     lo.FromPtr(req.NumPortas),
		Color:     req.Cor,
		Value:     moneyValue(req.Valor),
	}
}

func CarRequestToUpdateParams(req catalogv1.CarRequest) model.UpdateCarParams {
	return model.UpdateCarParams{
		ModelID:   req.ModeloID,
		ModelName: req.NomeModelo,
		BrandName: req.NomeMarca,
		Year:      lo.FromPtr(req.Ano),
		Fuel:      req.Combustivel,
		Doors:     lo.FromPtr(req.NumPortas),
		Color:     req.Cor,
		Value:     moneyValue(req.Valor),
	}
}

func CarToResponse(c model.CarView) catalogv1.CarResponse {
	return catalogv1.CarResponse{
		ID:                c.ID,
		NomeModelo:        c.ModelName,
		NomeMarca:         c.BrandName,
		Ano:               c.Year,
		Combustivel:       c.Fuel,
		NumPortas:         c.Doors,
		Cor:               c.Color,
		Valor:             catalogv1.NewMoney(c.Value),
		TimestampCadastro: c.RegisteredAt,
		DataCriacao:       c.CreatedAt,
		DataAtualizacao:   c.UpdatedAt,
	}
}

func CarsToResponse(cars []model.CarView) []catalogv1.CarResponse {
	return lo.Map(cars, func(c model.CarView, _ int) catalogv1.CarResponse {
		return CarToResponse(c)
	})
}

// CarsToExport builds the fixed export document. Model names are upper-cased.
func CarsToExport(cars []model.CarView) catalogv1.ExportResponse {
	return catalogv1.ExportResponse{
		Cars: lo.Map(cars, func(c model.CarView, _ int) catalogv1.ExportCar {
			return catalogv1.ExportCar{
				ID:                c.ID,
				TimestampCadastro: c.RegisteredAt,
				ModeloID:          c.ModelID,
				Ano:               c.Year,
				Combustivel:       c.Fuel,
				NumPortas:         c.Doors,
				Cor:               c.Color,
				NomeModelo:        strings.ToUpper(c.ModelName),
				Valor:             catalogv1.NewMoney(c.Value),
				Marca:             c.BrandName,
			}
		}),
	}
}

func moneyValue(m *catalogv1.Money) decimal.Decimal {
	if m == nil {
		return decimal.Zero
	}
	return m.Decimal
}
