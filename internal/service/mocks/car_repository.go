package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

type MockCarRepository struct {
	mock.Mock
}

func NewMockCarRepository(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockCarRepository {
	m := &MockCarRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockCarRepository) Create(ctx context.Context, car model.Car) (int64, error) {
	args := m.Called(ctx, car)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCarRepository) CarByID(ctx context.Context, id int64) (model.CarView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.CarView), args.Error(1)
}

func (m *MockCarRepository) List(ctx context.Context, filter model.CarsFilter) ([]model.CarView, error) {
	args := m.Called(ctx, filter)
	cars, _ := args.Get(0).([]model.CarView)
	return cars, args.Error(1)
}

func (m *MockCarRepository) Update(ctx context.Context, car model.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}

func (m *MockCarRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
