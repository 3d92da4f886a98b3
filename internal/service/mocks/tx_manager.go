package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockTxManager struct {
	mock.Mock
}

func NewMockTxManager(t interface {
	mock.TestingT
	Cleanup(func())
},
) *MockTxManager {
	m := &MockTxManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

// PassThrough is a ReadCommitted return value that runs fn without a transaction.
func PassThrough(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *MockTxManager) ReadCommitted(ctx context.Context, fn func(ctx context.Context) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		return rf(ctx, fn)
	}
	return args.Error(0)
}
