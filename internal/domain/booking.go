package domain

import (
	"context"
	"fmt"
	"strings"
	"time"
)

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID           int64
	SeatID       int
	HallID       int
	MovieID      int
	ShowTime     time.Time
	CustomerName string
	Status       BookingStatus
	CreatedAt    time.Time
}

type IsolationLevel string

const (
	Serializable   IsolationLevel = "serializable"
	RepeatableRead IsolationLevel = "repeatable read"
	ReadCommitted  IsolationLevel = "read committed"
)

// ParseIsolationLevel accepts the SQL spelling of a level, with dashes or
// underscores allowed in place of spaces.
func ParseIsolationLevel(s string) (IsolationLevel, error) {
	normalized := strings.NewReplacer("-", " ", "_", " ").Replace(strings.ToLower(strings.TrimSpace(s)))

	switch level := IsolationLevel(normalized); level {
	case Serializable, RepeatableRead, ReadCommitted:
		return level, nil
	case "":
		return Serializable, nil
	default:
		return "", fmt.Errorf("unsupported isolation level %q", s)
	}
}

type TxOptions struct {
	Isolation IsolationLevel
}

// BookingLedger is the durable record of reservations. Writes are only
// possible through the LedgerTx handed out by RunInTx.
type BookingLedger interface {
	CountActiveBookings(ctx context.Context, seatID int, showTime time.Time) (int, error)
	ListBookedSeatIDs(ctx context.Context, hallID int, showTime time.Time) (map[int]struct{}, error)
	RunInTx(ctx context.Context, opts TxOptions, fn func(tx LedgerTx) error) error
}

// LedgerTx is a ledger view bound to a single open transaction.
type LedgerTx interface {
	GetSeat(ctx context.Context, seatID int) (*Seat, error)
	ShowtimeExists(ctx context.Context, hallID int, showTime time.Time) (bool, error)
	CountActiveBookings(ctx context.Context, seatID int, showTime time.Time) (int, error)
	// InsertBooking returns ErrConstraintViolation when an active booking
	// already exists for the same seat and show time.
	InsertBooking(ctx context.Context, booking *Booking) error
}

// BookingListener is notified after a booking has been committed.
type BookingListener interface {
	BookingCreated(ctx context.Context, booking Booking) error
}
