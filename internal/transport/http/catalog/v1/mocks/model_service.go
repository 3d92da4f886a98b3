package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

type MockModelService struct {
	mock.Mock
}

func NewMockModelService(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockModelService {
	m := &MockModelService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockModelService) List(ctx context.Context) ([]model.CarModel, error) {
	args := m.Called(ctx)
	models, _ := args.Get(0).([]model.CarModel)
	return models, args.Error(1)
}

func (m *MockModelService) ModelByID(ctx context.Context, id int64) (model.CarModel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.CarModel), args.Error(1)
}

func (m *MockModelService) ListByBrand(ctx context.Context, brandID int64) ([]model.CarModel, error) {
	args := m.Called(ctx, brandID)
	models, _ := args.Get(0).([]model.CarModel)
	return models, args.Error(1)
}

func (m *MockModelService) SearchByName(ctx context.Context, fragment string) ([]model.CarModel, error) {
	args := m.Called(ctx, fragment)
	models, _ := args.Get(0).([]model.CarModel)
	return models, args.Error(1)
}

func (m *MockModelService) Create(ctx context.Context, params model.CarModelParams) (model.CarModel, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.CarModel), args.Error(1)
}

func (m *MockModelService) Update(ctx context.Context, id int64, params model.CarModelParams) (model.CarModel, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.CarModel), args.Error(1)
}

func (m *MockModelService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
