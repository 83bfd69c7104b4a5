package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tripapi/internal/model"
	"tripapi/internal/routing"
)

type MockRouter struct {
	mock.Mock
}

func (m *MockRouter) Route(ctx context.Context, waypoints []model.Coordinates) (*routing.Route, error) {
	args := m.Called(ctx, waypoints)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*routing.Route), args.Error(1)
}

type MockRouteCache struct {
	mock.Mock
}

func (m *MockRouteCache) Get(ctx context.Context, key string) (*routing.Route, bool, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*routing.Route), args.Bool(1), args.Error(2)
}

func (m *MockRouteCache) Set(ctx context.Context, key string, route *routing.Route) error {
	args := m.Called(ctx, key, route)
	return args.Error(0)
}
