package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/zatekoja/hospitalservices/internal/domain/entities"
)

// MockEventBus is a mock implementation of providers.EventBus
type MockEventBus struct {
	mock.Mock
}

type MockEventBus_Expecter struct {
	mock *mock.Mock
}

func (_m *MockEventBus) EXPECT() *MockEventBus_Expecter {
	return &MockEventBus_Expecter{mock: &_m.Mock}
}

// Publish provides a mock function with given fields: ctx, channel, event
func (_m *MockEventBus) Publish(ctx context.Context, channel string, event *entities.TargetEvent) error {
	ret := _m.Called(ctx, channel, event)
	return ret.Error(0)
}

// Publish is a helper method to define mock.On call
func (_e *MockEventBus_Expecter) Publish(ctx interface{}, channel interface{}, event interface{}) *mock.Call {
	return _e.mock.On("Publish", ctx, channel, event)
}

// Subscribe provides a mock function with given fields: ctx, channel
func (_m *MockEventBus) Subscribe(ctx context.Context, channel string) (<-chan *entities.TargetEvent, error) {
	ret := _m.Called(ctx, channel)
	var r0 <-chan *entities.TargetEvent
	if v := ret.Get(0); v != nil {
		r0 = v.(<-chan *entities.TargetEvent)
	}
	return r0, ret.Error(1)
}

// Subscribe is a helper method to define mock.On call
func (_e *MockEventBus_Expecter) Subscribe(ctx interface{}, channel interface{}) *mock.Call {
	return _e.mock.On("Subscribe", ctx, channel)
}

// Close provides a mock function with given fields: 
func (_m *MockEventBus) Close() error {
	ret := _m.Called()
	return ret.Error(0)
}

// Close is a helper method to define mock.On call
func (_e *MockEventBus_Expecter) Close() *mock.Call {
	return _e.mock.On("Close")
}

// NewMockEventBus creates a new instance of MockEventBus. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockEventBus(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockEventBus {
	m := &MockEventBus{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
