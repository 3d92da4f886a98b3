package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

type MockCarService struct {
	mock.Mock
}

func NewMockCarService(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockCarService {
	m := &MockCarService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCarService) List(ctx context.Context, filter model.CarsFilter) ([]model.CarView, error) {
	args := m.Called(ctx, filter)
	cars, _ := args.Get(0).([]model.CarView)
	return cars, args.Error(1)
}

func (m *MockCarService) CarByID(ctx context.Context, id int64) (model.CarView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.CarView), args.Error(1)
}

func (m *MockCarService) Create(ctx context.Context, params model.CreateCarParams) (model.CarView, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.CarView), args.Error(1)
}

func (m *MockCarService) Update(ctx context.Context, id int64, params model.UpdateCarParams) (model.CarView, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.CarView), args.Error(1)
}

func (m *MockCarService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
