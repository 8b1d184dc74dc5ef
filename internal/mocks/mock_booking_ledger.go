package mocks

import (
	"context"
	"time"

	"github.com/metinatakli/hall-seat-booking/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingLedger struct {
	mock.Mock
}

func (m *MockBookingLedger) CountActiveBookings(ctx context.Context, seatID int, showTime time.Time) (int, error) {
	args := m.Called(ctx, seatID, showTime)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingLedger) ListBookedSeatIDs(
	ctx context.Context,
	hallID int,
	showTime time.Time) (map[int]struct{}, error) {

	args := m.Called(ctx, hallID, showTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int]struct{}), args.Error(1)
}

// RunInTx expects Return(tx, commitErr). A nil tx simulates a failure to
// begin the transaction and commitErr is returned without calling fn.
func (m *MockBookingLedger) RunInTx(
	ctx context.Context,
	opts domain.TxOptions,
	fn func(tx domain.LedgerTx) error) error {

	args := m.Called(ctx, opts)

	tx, ok := args.Get(0).(domain.LedgerTx)
	if !ok || tx == nil {
		return args.Error(1)
	}

	if err := fn(tx); err != nil {
		return err
	}

	return args.Error(1)
}

type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) GetSeat(ctx context.Context, seatID int) (*domain.Seat, error) {
	args := m.Called(ctx, seatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Seat), args.Error(1)
}

func (m *MockLedgerTx) ShowtimeExists(ctx context.Context, hallID int, showTime time.Time) (bool, error) {
	args := m.Called(ctx, hallID, showTime)
	return args.Bool(0), args.Error(1)
}

func (m *MockLedgerTx) CountActiveBookings(ctx context.Context, seatID int, showTime time.Time) (int, error) {
	args := m.Called(ctx, seatID, showTime)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerTx) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

type MockBookingListener struct {
	mock.Mock
}

func (m *MockBookingListener) BookingCreated(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
