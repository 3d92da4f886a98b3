package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/Leonardostavares/Catalogo-Carro/internal/model"
)

type MockEventSender struct {
	mock.Mock
}

func NewMockEventSender(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockEventSender {
	m := &MockEventSender{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockEventSender) SendCatalogEvent(ctx context.Context, event model.CatalogEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
