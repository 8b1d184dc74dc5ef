// Package availability builds read-side seat views from the catalog and the
// booking ledger. Results may lag behind concurrent reservations.
package availability

import (
	"context"
	"log/slog"
	"time"

	"github.com/metinatakli/hall-seat-booking/internal/domain"
)

// Cache holds availability maps keyed by hall and show time. Get returns a nil
// map on a miss along with a version; Set must drop the write when a booking
// for the same key was recorded after that version was read.
type Cache interface {
	Get(ctx context.Context, hallID int, showTime time.Time) (map[int]domain.SeatState, int64, error)
	Set(ctx context.Context, hallID int, showTime time.Time, version int64, states map[int]domain.SeatState) error
}

type SeatStatus struct {
	domain.Seat
	State domain.SeatState
}

type SeatMap struct {
	HallID   int
	ShowTime time.Time
	Rows     int
	Cols     int
	Seats    []SeatStatus
}

type Facade struct {
	catalog domain.CatalogStore
	ledger  domain.BookingLedger
	cache   Cache
	logger  *slog.Logger
}

type Option func(*Facade)

func WithCache(cache Cache) Option {
	return func(f *Facade) {
		f.cache = cache
	}
}

func NewFacade(
	catalog domain.CatalogStore,
	ledger domain.BookingLedger,
	logger *slog.Logger,
	opts ...Option) *Facade {

	f := &Facade{
		catalog: catalog,
		ledger:  ledger,
		logger:  logger,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// AvailabilityMap returns the state of every seat in the hall for the given
// show time. An unknown hall yields ErrRecordNotFound, a hall without seats an
// empty map.
func (f *Facade) AvailabilityMap(
	ctx context.Context,
	hallID int,
	showTime time.Time) (map[int]domain.SeatState, error) {

	var (
		version   int64
		cacheable bool
	)

	if f.cache != nil {
		states, v, err := f.cache.Get(ctx, hallID, showTime)
		switch {
		case err != nil:
			f.logger.Warn("availability cache read failed", "hall_id", hallID, "error", err)
		case states != nil:
			return states, nil
		default:
			version, cacheable = v, true
		}
	}

	_, err := f.catalog.GetHallLayout(ctx, hallID)
	if err != nil {
		return nil, err
	}

	seats, err := f.catalog.ListSeats(ctx, hallID)
	if err != nil {
		return nil, err
	}

	states, err := f.buildStates(ctx, hallID, showTime, seats)
	if err != nil {
		return nil, err
	}

	if cacheable {
		if err := f.cache.Set(ctx, hallID, showTime, version, states); err != nil {
			f.logger.Warn("availability cache write failed", "hall_id", hallID, "error", err)
		}
	}

	return states, nil
}

// SeatMap returns the hall grid with per-seat state ordered by row and column.
func (f *Facade) SeatMap(ctx context.Context, hallID int, showTime time.Time) (*SeatMap, error) {
	layout, err := f.catalog.GetHallLayout(ctx, hallID)
	if err != nil {
		return nil, err
	}

	if !layout.Defined() {
		return nil, domain.ErrLayoutNotDefined
	}

	seats, err := f.catalog.ListSeats(ctx, hallID)
	if err != nil {
		return nil, err
	}

	states, err := f.buildStates(ctx, hallID, showTime, seats)
	if err != nil {
		return nil, err
	}

	seatMap := &SeatMap{
		HallID:   hallID,
		ShowTime: showTime,
		Rows:     layout.Rows,
		Cols:     layout.Cols,
		Seats:    make([]SeatStatus, 0, len(seats)),
	}

	for _, seat := range seats {
		if !layout.Contains(seat.Row, seat.Col) {
			f.logger.Warn("seat outside hall layout", "hall_id", hallID, "seat_id", seat.ID)
			continue
		}

		seatMap.Seats = append(seatMap.Seats, SeatStatus{Seat: seat, State: states[seat.ID]})
	}

	return seatMap, nil
}

func (f *Facade) buildStates(
	ctx context.Context,
	hallID int,
	showTime time.Time,
	seats []domain.Seat) (map[int]domain.SeatState, error) {

	states := make(map[int]domain.SeatState, len(seats))
	if len(seats) == 0 {
		return states, nil
	}

	booked, err := f.ledger.ListBookedSeatIDs(ctx, hallID, showTime)
	if err != nil {
		return nil, err
	}

	for _, seat := range seats {
		if _, ok := booked[seat.ID]; ok {
			states[seat.ID] = domain.SeatBooked
		} else {
			states[seat.ID] = domain.SeatAvailable
		}
	}

	return states, nil
}
