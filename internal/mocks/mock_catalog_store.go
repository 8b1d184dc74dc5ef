package mocks

import (
	"context"

	"github.com/metinatakli/hall-seat-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) GetHallLayout(ctx context.Context, hallID int) (domain.HallLayout, error) {
	args := m.Called(ctx, hallID)
	return args.Get(0).(domain.HallLayout), args.Error(1)
}

func (m *MockCatalogStore) ListSeats(ctx context.Context, hallID int) ([]domain.Seat, error) {
	args := m.Called(ctx, hallID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Seat), args.Error(1)
}

func (m *MockCatalogStore) ListShowtimes(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	args := m.Called(ctx, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Showtime), args.Error(1)
}

func (m *MockCatalogStore) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movie), args.Error(1)
}
