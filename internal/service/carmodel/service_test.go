package service

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/internal/service/mocks"
)

type deps struct {
	models *mocks.MockCarModelRepository
	brands *mocks.MockBrandRepository
	tx     *mocks.MockTxManager
	events *mocks.MockEventSender
}

func newDeps(t *testing.T) deps {
	return deps{
		models: mocks.NewMockCarModelRepository(t),
		brands: mocks.NewMockBrandRepository(t),
		tx:     mocks.NewMockTxManager(t),
		events: mocks.NewMockEventSender(t),
	}
}

func newSvc(d deps) *service {
	return NewCarModelService(d.models, d.brands, d.tx, d.events, time.Second, time.Second)
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	brand := model.Brand{ID: 4, Name: gofakeit.CarMaker()}
	price := decimal.NewFromFloat(gofakeit.Price(20000, 300000)).Round(2)
	params := model.CarModelParams{BrandID: brand.ID, Name: gofakeit.CarModel(), ReferencePrice: price}
	created := model.CarModel{ID: 40, BrandID: brand.ID, BrandName: brand.Name, Name: params.Name, ReferencePrice: &price}

	type testCase struct {
		name   string
		params model.CarModelParams
		setup  func(d deps)
		assert func(t *testing.T, res model.CarModel, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: missing reference price",
			params: model.CarModelParams{BrandID: brand.ID, Name: params.Name},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res model.CarModel, err error, d deps) {
				var vErr *model.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Contains(t, vErr.Fields, "valorFipe")
			},
		},
		{
			name:   "validation error: reference price beyond NUMERIC(14,2)",
			params: model.CarModelParams{BrandID: brand.ID, Name: params.Name, ReferencePrice: decimal.RequireFromString("1000000000000")},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res model.CarModel, err error, d deps) {
				var vErr *model.ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, "Valor FIPE deve ser menor ou igual a 999999999999.99", vErr.Fields["valorFipe"])
				d.tx.AssertNotCalled(t, "ReadCommitted", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "brand not found",
			params: params,
			setup: func(d deps) {
				d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
				d.brands.On("BrandByID", mock.Anything, brand.ID).Return(model.Brand{}, model.ErrBrandNotFound).Once()
			},
			assert: func(t *testing.T, res model.CarModel, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrBrandNotFound)
				d.models.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "conflict: model name already used by the brand",
			params: params,
			setup: func(d deps) {
				d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
				d.brands.On("BrandByID", mock.Anything, brand.ID).Return(brand, nil).Once()
				d.models.On("ModelByBrandAndName", mock.Anything, brand.ID, params.Name).Return(created, nil).Once()
			},
			assert: func(t *testing.T, res model.CarModel, err error, d deps) {
				assert.ErrorIs(t, err, model.ErrModelConflict)
			},
		},
		{
			name:   "success",
			params: params,
			setup: func(d deps) {
				d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
				d.brands.On("BrandByID", mock.Anything, brand.ID).Return(brand, nil).Once()
				d.models.On("ModelByBrandAndName", mock.Anything, brand.ID, params.Name).Return(model.CarModel{}, model.ErrModelNotFound).Once()
				d.models.On("Create", mock.Anything, params).Return(created, nil).Once()
				d.events.On("SendCatalogEvent", mock.Anything, mock.MatchedBy(func(e model.CatalogEvent) bool {
					return e.Type == model.EventModelCreated && e.EntityID == created.ID
				})).Return(nil).Once()
			},
			assert: func(t *testing.T, res model.CarModel, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, created, res)
				assert.Equal(t, brand.Name, res.BrandName)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			res, err := newSvc(d).Create(context.Background(), tt.params)
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceUpdate(t *testing.T) {
	t.Parallel()

	const id int64 = 40
	price := decimal.NewFromInt(90000)
	params := model.CarModelParams{BrandID: 4, Name: "Argo", ReferencePrice: price}

	t.Run("model not found", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
		d.models.On("ModelByID", mock.Anything, id).Return(model.CarModel{}, model.ErrModelNotFound).Once()

		_, err := newSvc(d).Update(context.Background(), id, params)
		assert.ErrorIs(t, err, model.ErrModelNotFound)
	})

	t.Run("conflict with another model of the brand", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
		d.models.On("ModelByID", mock.Anything, id).Return(model.CarModel{ID: id}, nil).Once()
		d.brands.On("BrandByID", mock.Anything, int64(4)).Return(model.Brand{ID: 4}, nil).Once()
		d.models.On("ModelByBrandAndName", mock.Anything, int64(4), "Argo").Return(model.CarModel{ID: 41}, nil).Once()

		_, err := newSvc(d).Update(context.Background(), id, params)
		assert.ErrorIs(t, err, model.ErrModelConflict)
	})
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
	d.models.On("HasCars", mock.Anything, int64(40)).Return(true, nil).Once()

	err := newSvc(d).Delete(context.Background(), 40)
	assert.ErrorIs(t, err, model.ErrHasDependents)
}

func TestServiceSearchByName(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.models.On("SearchByName", mock.Anything, "onix").Return([]model.CarModel{{ID: 1, Name: "Onix Plus"}}, nil).Once()

	models, err := newSvc(d).SearchByName(context.Background(), " onix ")
	require.NoError(t, err)
	assert.Len(t, models, 1)
}
