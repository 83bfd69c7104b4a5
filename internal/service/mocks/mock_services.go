package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tripapi/internal/model"
	"tripapi/internal/service"
)

type MockTripService struct {
	mock.Mock
}

func (m *MockTripService) Create(ctx context.Context, in service.CreateTripInput) (*model.Trip, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripService) Get(ctx context.Context, id int64) (*model.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripService) List(ctx context.Context, limit, offset int) (*service.TripListResult, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TripListResult), args.Error(1)
}

func (m *MockTripService) Log(ctx context.Context, id int64) (*service.TripLog, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TripLog), args.Error(1)
}

func (m *MockTripService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLogSheetService struct {
	mock.Mock
}

func (m *MockLogSheetService) Generate(ctx context.Context, tripID int64) (*service.GeneratedLogSheet, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.GeneratedLogSheet), args.Error(1)
}

func (m *MockLogSheetService) List(ctx context.Context, tripID int64) ([]model.LogSheet, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogSheet), args.Error(1)
}
