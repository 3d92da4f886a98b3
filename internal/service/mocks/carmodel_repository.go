package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

type MockCarModelRepository struct {
	mock.Mock
}

func NewMockCarModelRepository(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockCarModelRepository {
	m := &MockCarModelRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCarModelRepository) List(ctx context.Context) ([]model.CarModel, error) {
	args := m.Called(ctx)
	models, _ := args.Get(0).([]model.CarModel)
	return models, args.Error(1)
}

func (m *MockCarModelRepository) ListByBrand(ctx context.Context, brandID int64) ([]model.CarModel, error) {
	args := m.Called(ctx, brandID)
	models, _ := args.Get(0).([]model.CarModel)
	return models, args.Error(1)
}

func (m *MockCarModelRepository) SearchByName(ctx context.Context, fragment string) ([]model.CarModel, error) {
	args := m.Called(ctx, fragment)
	models, _ := args.Get(0).([]model.CarModel)
	return models, args.Error(1)
}

func (m *MockCarModelRepository) ModelByID(ctx context.Context, id int64) (model.CarModel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) ModelByBrandAndName(ctx context.Context, brandID int64, name string) (model.CarModel, error) {
	args := m.Called(ctx, brandID, name)
	return args.Get(0).(model.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) Create(ctx context.Context, params model.CarModelParams) (model.CarModel, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) CreateIfAbsent(ctx context.Context, brandID int64, name string) (model.CarModel, error) {
	args := m.Called(ctx, brandID, name)
	return args.Get(0).(model.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) Update(ctx context.Context, id int64, params model.CarModelParams) (model.CarModel, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.CarModel), args.Error(1)
}

func (m *MockCarModelRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCarModelRepository) HasCars(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
