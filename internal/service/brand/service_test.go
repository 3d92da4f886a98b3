package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
	"github.com/Leonardostavares/Catalogo-Carro/internal/service/mocks"
)

type deps struct {
	repository *mocks.MockBrandRepository
	tx         *mocks.MockTxManager
	events     *mocks.MockEventSender
}

func newDeps(t *testing.T) deps {
	return deps{
		repository: mocks.NewMockBrandRepository(t),
		tx:         mocks.NewMockTxManager(t),
		events:     mocks.NewMockEventSender(t),
	}
}

func newSvc(d deps) *service {
	return NewBrandService(d.repository, d.tx, d.events, time.Second, time.Second)
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	name := gofakeit.CarMaker()
	brand := model.Brand{ID: 3, Name: name, CreatedAt: time.Now(), UpdatedAt: time.Now()}

	type testCase struct {
		name   string
		params model.BrandParams
		setup  func(d deps)
		assert func(t *testing.T, res model.Brand, err error, d deps)
	}

	tests := []testCase{
		{
			name:   "validation error: blank name",
			params: model.BrandParams{Name: "  "},
			setup:  func(d deps) {},
			assert: func(t *testing.T, res model.Brand, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				d.tx.AssertNotCalled(t, "ReadCommitted", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "conflict: name already taken",
			params: model.BrandParams{Name: name},
			setup: func(d deps) {
				d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
				d.repository.On("BrandByName", mock.Anything, name).Return(brand, nil).Once()
			},
			assert: func(t *testing.T, res model.Brand, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrBrandConflict)
				assert.ErrorIs(t, err, model.ErrConflict)
				d.repository.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			},
		},
		{
			name:   "success: trimmed name is stored and event sent",
			params: model.BrandParams{Name: " " + name + " "},
			setup: func(d deps) {
				d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
				d.repository.On("BrandByName", mock.Anything, name).Return(model.Brand{}, model.ErrBrandNotFound).Once()
				d.repository.On("Create", mock.Anything, model.BrandParams{Name: name}).Return(brand, nil).Once()
				d.events.On("SendCatalogEvent", mock.Anything, mock.MatchedBy(func(e model.CatalogEvent) bool {
					return e.Type == model.EventBrandCreated && e.EntityID == brand.ID && e.Name == name
				})).Return(nil).Once()
			},
			assert: func(t *testing.T, res model.Brand, err error, d deps) {
				require.NoError(t, err)
				assert.Equal(t, brand, res)
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

	const id int64 = 5
	brand := model.Brand{ID: id, Name: "Fiat"}

	type testCase struct {
		name   string
		params model.BrandParams
		setup  func(d deps)
		assert func(t *testing.T, res model.Brand, err error)
	}

	tests := []testCase{
		{
			name:   "not found",
			params: model.BrandParams{Name: "Ford"},
			setup: func(d deps) {
				d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
				d.repository.On("BrandByID", mock.Anything, id).Return(model.Brand{}, model.ErrBrandNotFound).Once()
			},
			assert: func(t *testing.T, res model.Brand, err error) {
				assert.ErrorIs(t, err, model.ErrBrandNotFound)
			},
		},
		{
			name:   "conflict: another brand has the name",
			params: model.BrandParams{Name: "Ford"},
			setup: func(d deps) {
				d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
				d.repository.On("BrandByID", mock.Anything, id).Return(brand, nil).Once()
				d.repository.On("BrandByName", mock.Anything, "Ford").Return(model.Brand{ID: 9, Name: "Ford"}, nil).Once()
			},
			assert: func(t *testing.T, res model.Brand, err error) {
				assert.ErrorIs(t, err, model.ErrBrandConflict)
			},
		},
		{
			name:   "same name on the same brand is allowed",
			params: model.BrandParams{Name: "Fiat"},
			setup: func(d deps) {
				d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
				d.repository.On("BrandByID", mock.Anything, id).Return(brand, nil).Once()
				d.repository.On("BrandByName", mock.Anything, "Fiat").Return(brand, nil).Once()
				d.repository.On("Update", mock.Anything, id, model.BrandParams{Name: "Fiat"}).Return(brand, nil).Once()
			},
			assert: func(t *testing.T, res model.Brand, err error) {
				require.NoError(t, err)
				assert.Equal(t, brand, res)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := newDeps(t)
			tt.setup(d)

			res, err := newSvc(d).Update(context.Background(), id, tt.params)
			tt.assert(t, res, err)
		})
	}
}

func TestServiceDelete(t *testing.T) {
	t.Parallel()

	t.Run("brand with models is rejected", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
		d.repository.On("HasModels", mock.Anything, int64(1)).Return(true, nil).Once()

		err := newSvc(d).Delete(context.Background(), 1)
		assert.ErrorIs(t, err, model.ErrHasDependents)
		assert.ErrorIs(t, err, model.ErrConflict)
		d.repository.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("missing brand is not found", func(t *testing.T) {
		t.Parallel()

		d := newDeps(t)
		d.tx.On("ReadCommitted", mock.Anything, mock.Anything).Return(mocks.PassThrough).Once()
		d.repository.On("HasModels", mock.Anything, int64(2)).Return(false, nil).Once()
		d.repository.On("Delete", mock.Anything, int64(2)).Return(model.ErrBrandNotFound).Once()

		err := newSvc(d).Delete(context.Background(), 2)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestServiceList(t *testing.T) {
	t.Parallel()

	d := newDeps(t)
	d.repository.On("List", mock.Anything).Return(nil, errors.New("db read failed")).Once()

	brands, err := newSvc(d).List(context.Background())
	require.Error(t, err)
	assert.Nil(t, brands)
}
