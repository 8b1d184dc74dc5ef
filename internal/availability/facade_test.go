package availability

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
	"github.com/metinatakli/hall-seat-booking/internal/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var showTime = time.Date(2095, 6, 1, 19, 0, 0, 0, time.UTC)

type mockCache struct {
	mock.Mock
}

func (m *mockCache) Get(ctx context.Context, hallID int, showTime time.Time) (map[int]domain.SeatState, int64, error) {
	args := m.Called(ctx, hallID, showTime)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).(map[int]domain.SeatState), args.Get(1).(int64), args.Error(2)
}

func (m *mockCache) Set(
	ctx context.Context,
	hallID int,
	showTime time.Time,
	version int64,
	states map[int]domain.SeatState) error {

	args := m.Called(ctx, hallID, showTime, version, states)
	return args.Error(0)
}

type FacadeTestSuite struct {
	suite.Suite
	catalog *mocks.MockCatalogStore
	ledger  *mocks.MockBookingLedger
	cache   *mockCache
	facade  *Facade
	layout  domain.HallLayout
	seats   []domain.Seat
}

func (s *FacadeTestSuite) SetupTest() {
	s.catalog = new(mocks.MockCatalogStore)
	s.ledger = new(mocks.MockBookingLedger)
	s.cache = new(mockCache)
	s.facade = NewFacade(s.catalog, s.ledger, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.layout = domain.HallLayout{HallID: 1, Rows: 2, Cols: 2}
	s.seats = []domain.Seat{
		{ID: 1, HallID: 1, Row: 1, Col: 1, Label: "A1"},
		{ID: 2, HallID: 1, Row: 1, Col: 2, Label: "A2"},
		{ID: 3, HallID: 1, Row: 2, Col: 1, Label: "B1"},
	}
}

func TestFacadeSuite(t *testing.T) {
	suite.Run(t, new(FacadeTestSuite))
}

func (s *FacadeTestSuite) TestAvailabilityMap() {
	storeErr := errors.Join(domain.ErrStoreUnavailable, errors.New("connection refused"))

	tests := []struct {
		name       string
		setupMocks func()
		want       map[int]domain.SeatState
		wantErr    error
	}{
		{
			name: "hall without seats yields an empty map",
			setupMocks: func() {
				s.catalog.On("GetHallLayout", mock.Anything, 1).Return(domain.HallLayout{HallID: 1}, nil)
				s.catalog.On("ListSeats", mock.Anything, 1).Return([]domain.Seat{}, nil)
			},
			want: map[int]domain.SeatState{},
		},
		{
			name: "unknown hall is not found",
			setupMocks: func() {
				s.catalog.On("GetHallLayout", mock.Anything, 1).Return(domain.HallLayout{}, domain.ErrRecordNotFound)
			},
			wantErr: domain.ErrRecordNotFound,
		},
		{
			name: "booked seats are marked",
			setupMocks: func() {
				s.catalog.On("GetHallLayout", mock.Anything, 1).Return(s.layout, nil)
				s.catalog.On("ListSeats", mock.Anything, 1).Return(s.seats, nil)
				s.ledger.On("ListBookedSeatIDs", mock.Anything, 1, showTime).
					Return(map[int]struct{}{2: {}}, nil)
			},
			want: map[int]domain.SeatState{
				1: domain.SeatAvailable,
				2: domain.SeatBooked,
				3: domain.SeatAvailable,
			},
		},
		{
			name: "ledger failure is reported",
			setupMocks: func() {
				s.catalog.On("GetHallLayout", mock.Anything, 1).Return(s.layout, nil)
				s.catalog.On("ListSeats", mock.Anything, 1).Return(s.seats, nil)
				s.ledger.On("ListBookedSeatIDs", mock.Anything, 1, showTime).Return(nil, storeErr)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
		{
			name: "catalog failure is reported",
			setupMocks: func() {
				s.catalog.On("GetHallLayout", mock.Anything, 1).Return(s.layout, nil)
				s.catalog.On("ListSeats", mock.Anything, 1).Return(nil, storeErr)
			},
			wantErr: domain.ErrStoreUnavailable,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()

			defer s.catalog.AssertExpectations(s.T())
			defer s.ledger.AssertExpectations(s.T())

			tt.setupMocks()

			got, err := s.facade.AvailabilityMap(context.Background(), 1, showTime)

			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				s.Nil(got)
				return
			}

			s.Require().NoError(err)
			s.Empty(cmp.Diff(tt.want, got))
		})
	}
}

func (s *FacadeTestSuite) TestAvailabilityMapServedFromCache() {
	cached := map[int]domain.SeatState{1: domain.SeatBooked}
	s.cache.On("Get", mock.Anything, 1, showTime).Return(cached, int64(2), nil)

	facade := NewFacade(s.catalog, s.ledger, s.facade.logger, WithCache(s.cache))
	got, err := facade.AvailabilityMap(context.Background(), 1, showTime)

	s.Require().NoError(err)
	s.Equal(cached, got)
	s.catalog.AssertNotCalled(s.T(), "GetHallLayout", mock.Anything, mock.Anything)
	s.catalog.AssertNotCalled(s.T(), "ListSeats", mock.Anything, mock.Anything)
	s.cache.AssertExpectations(s.T())
}

func (s *FacadeTestSuite) TestAvailabilityMapFillsCacheOnMiss() {
	want := map[int]domain.SeatState{
		1: domain.SeatAvailable,
		2: domain.SeatAvailable,
		3: domain.SeatAvailable,
	}

	s.cache.On("Get", mock.Anything, 1, showTime).Return(nil, int64(5), nil)
	s.catalog.On("GetHallLayout", mock.Anything, 1).Return(s.layout, nil)
	s.catalog.On("ListSeats", mock.Anything, 1).Return(s.seats, nil)
	s.ledger.On("ListBookedSeatIDs", mock.Anything, 1, showTime).Return(map[int]struct{}{}, nil)
	s.cache.On("Set", mock.Anything, 1, showTime, int64(5), want).Return(nil)

	facade := NewFacade(s.catalog, s.ledger, s.facade.logger, WithCache(s.cache))
	got, err := facade.AvailabilityMap(context.Background(), 1, showTime)

	s.Require().NoError(err)
	s.Equal(want, got)
	s.cache.AssertExpectations(s.T())
}

func (s *FacadeTestSuite) TestAvailabilityMapIgnoresCacheErrors() {
	s.cache.On("Get", mock.Anything, 1, showTime).Return(nil, int64(0), errors.New("redis down"))
	s.catalog.On("GetHallLayout", mock.Anything, 1).Return(s.layout, nil)
	s.catalog.On("ListSeats", mock.Anything, 1).Return(s.seats[:1], nil)
	s.ledger.On("ListBookedSeatIDs", mock.Anything, 1, showTime).Return(map[int]struct{}{1: {}}, nil)

	facade := NewFacade(s.catalog, s.ledger, s.facade.logger, WithCache(s.cache))
	got, err := facade.AvailabilityMap(context.Background(), 1, showTime)

	s.Require().NoError(err)
	s.Equal(map[int]domain.SeatState{1: domain.SeatBooked}, got)
	s.cache.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *FacadeTestSuite) TestAvailabilityMapReportsCacheWriteFailure() {
	s.cache.On("Get", mock.Anything, 1, showTime).Return(nil, int64(1), nil)
	s.catalog.On("GetHallLayout", mock.Anything, 1).Return(s.layout, nil)
	s.catalog.On("ListSeats", mock.Anything, 1).Return(s.seats[:1], nil)
	s.ledger.On("ListBookedSeatIDs", mock.Anything, 1, showTime).Return(map[int]struct{}{}, nil)
	s.cache.On("Set", mock.Anything, 1, showTime, int64(1), mock.Anything).Return(errors.New("redis down"))

	facade := NewFacade(s.catalog, s.ledger, s.facade.logger, WithCache(s.cache))
	got, err := facade.AvailabilityMap(context.Background(), 1, showTime)

	s.Require().NoError(err)
	s.Equal(map[int]domain.SeatState{1: domain.SeatAvailable}, got)
	s.cache.AssertExpectations(s.T())
}

func (s *FacadeTestSuite) TestAvailabilityMapUnknownHallIsNotCached() {
	s.cache.On("Get", mock.Anything, 999, showTime).Return(nil, int64(0), nil)
	s.catalog.On("GetHallLayout", mock.Anything, 999).Return(domain.HallLayout{}, domain.ErrRecordNotFound)

	facade := NewFacade(s.catalog, s.ledger, s.facade.logger, WithCache(s.cache))
	got, err := facade.AvailabilityMap(context.Background(), 999, showTime)

	s.ErrorIs(err, domain.ErrRecordNotFound)
	s.Nil(got)
	s.catalog.AssertNotCalled(s.T(), "ListSeats", mock.Anything, mock.Anything)
	s.cache.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *FacadeTestSuite) TestSeatMap() {
	outside := domain.Seat{ID: 9, HallID: 1, Row: 5, Col: 5, Label: "X"}

	s.catalog.On("GetHallLayout", mock.Anything, 1).Return(domain.HallLayout{HallID: 1, Rows: 2, Cols: 2}, nil)
	s.catalog.On("ListSeats", mock.Anything, 1).Return(append(s.seats, outside), nil)
	s.ledger.On("ListBookedSeatIDs", mock.Anything, 1, showTime).Return(map[int]struct{}{3: {}}, nil)

	got, err := s.facade.SeatMap(context.Background(), 1, showTime)
	s.Require().NoError(err)

	want := &SeatMap{
		HallID:   1,
		ShowTime: showTime,
		Rows:     2,
		Cols:     2,
		Seats: []SeatStatus{
			{Seat: s.seats[0], State: domain.SeatAvailable},
			{Seat: s.seats[1], State: domain.SeatAvailable},
			{Seat: s.seats[2], State: domain.SeatBooked},
		},
	}
	s.Empty(cmp.Diff(want, got))
}

func (s *FacadeTestSuite) TestSeatMapWithoutLayout() {
	s.catalog.On("GetHallLayout", mock.Anything, 1).Return(domain.HallLayout{HallID: 1}, nil)

	_, err := s.facade.SeatMap(context.Background(), 1, showTime)

	s.ErrorIs(err, domain.ErrLayoutNotDefined)
	s.catalog.AssertNotCalled(s.T(), "ListSeats", mock.Anything, mock.Anything)
}

func (s *FacadeTestSuite) TestSeatMapUnknownHall() {
	s.catalog.On("GetHallLayout", mock.Anything, 7).Return(domain.HallLayout{}, domain.ErrRecordNotFound)

	_, err := s.facade.SeatMap(context.Background(), 7, showTime)

	s.ErrorIs(err, domain.ErrRecordNotFound)
}
