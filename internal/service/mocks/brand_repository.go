package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

// MockBrandRepository covers every brand store method used by the services.
type MockBrandRepository struct {
	mock.Mock
}

func NewMockBrandRepository(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockBrandRepository {
	m := &MockBrandRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockBrandRepository) List(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	brands, _ := args.Get(0).([]model.Brand)
	return brands, args.Error(1)
}

func (m *MockBrandRepository) BrandByID(ctx context.Context, id int64) (model.Brand, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandRepository) BrandByName(ctx context.Context, name string) (model.Brand, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandRepository) Create(ctx context.Context, params model.BrandParams) (model.Brand, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandRepository) CreateIfAbsent(ctx context.Context, name string) (model.Brand, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandRepository) Update(ctx context.Context, id int64, params model.BrandParams) (model.Brand, error) {
	args := m.Called(ctx, id, params)
	return args.Get(0).(model.Brand), args.Error(1)
}

func (m *MockBrandRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBrandRepository) HasModels(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
