package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tripapi/internal/model"
	"tripapi/internal/repository"
)

type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) Create(ctx context.Context, trip *model.Trip) (*model.Trip, error) {
	args := m.Called(ctx, trip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripRepository) FindByID(ctx context.Context, id int64) (*model.Trip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Trip), args.Error(1)
}

func (m *MockTripRepository) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Trip], error) {
	args := m.Called(ctx, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Trip]), args.Error(1)
}

func (m *MockTripRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLogSheetRepository struct {
	mock.Mock
}

func (m *MockLogSheetRepository) Create(ctx context.Context, sheet *model.LogSheet) (*model.LogSheet, error) {
	args := m.Called(ctx, sheet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.LogSheet), args.Error(1)
}

func (m *MockLogSheetRepository) ListByTrip(ctx context.Context, tripID int64) ([]model.LogSheet, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogSheet), args.Error(1)
}
