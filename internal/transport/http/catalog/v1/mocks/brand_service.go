package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

type MockBrandService struct {
	mock.Mock
}

func NewMockBrandService(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockBrandService {
	m := &MockBrandService{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBrandService) List(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	brands, _ := args.Get(0).([]model.Brand)
	return brands, args.Error(1)
}

func (m *MockBrandService) BrandByID(ctx context.Context, id int64) (model.Brand, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandService) BrandByName(ctx context.Context, name string) (model.Brand, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandService) Create(ctx context.Context, params model.BrandParams) (model.Brand, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandService) Update(ctx context.Context, id int64, params model.BrandParams) (model.Brand, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
