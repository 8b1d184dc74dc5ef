package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/metinatakli/hall-seat-booking/internal/domain"
)

// MemoryStore keeps the catalog and the booking ledger in process memory.
// Transactions run one at a time, which makes every isolation level behave as
// serializable.
type MemoryStore struct {
	mutex  sync.RWMutex
	txSlot chan struct{}

	halls     map[int]domain.Hall
	seats     map[int]domain.Seat
	movies    map[int]domain.Movie
	showtimes map[int]domain.Showtime
	bookings  []domain.Booking

	nextBookingID int64
	now           func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		halls:     make(map[int]domain.Hall),
		seats:     make(map[int]domain.Seat),
		movies:    make(map[int]domain.Movie),
		showtimes: make(map[int]domain.Showtime),
		txSlot:    make(chan struct{}, 1),
		now:       time.Now,
	}
}

func (s *MemoryStore) AddHall(hall domain.Hall) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.halls[hall.ID] = hall
}

func (s *MemoryStore) AddSeat(seat domain.Seat) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.seats[seat.ID] = seat
}

func (s *MemoryStore) AddMovie(movie domain.Movie) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.movies[movie.ID] = movie
}

func (s *MemoryStore) AddShowtime(showtime domain.Showtime) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.showtimes[showtime.ID] = showtime
}

// Bookings returns a copy of every booking row, including cancelled ones.
func (s *MemoryStore) Bookings() []domain.Booking {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return slices.Clone(s.bookings)
}

func (s *MemoryStore) GetHallLayout(ctx context.Context, hallID int) (domain.HallLayout, error) {
	if err := ctx.Err(); err != nil {
		return domain.HallLayout{}, storeUnavailable(err)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	hall, ok := s.halls[hallID]
	if !ok {
		return domain.HallLayout{}, domain.ErrRecordNotFound
	}

	return domain.HallLayout{HallID: hall.ID, Rows: hall.Rows, Cols: hall.Cols}, nil
}

func (s *MemoryStore) ListSeats(ctx context.Context, hallID int) ([]domain.Seat, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeUnavailable(err)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	seats := make([]domain.Seat, 0)
	for _, seat := range s.seats {
		if seat.HallID == hallID {
			seats = append(seats, seat)
		}
	}

	slices.SortFunc(seats, func(a, b domain.Seat) int {
		return cmp.Or(cmp.Compare(a.Row, b.Row), cmp.Compare(a.Col, b.Col), cmp.Compare(a.ID, b.ID))
	})

	return seats, nil
}

func (s *MemoryStore) ListShowtimes(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeUnavailable(err)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	showtimes := make([]domain.Showtime, 0)
	for _, showtime := range s.showtimes {
		if showtime.MovieID == movieID {
			showtimes = append(showtimes, showtime)
		}
	}

	slices.SortFunc(showtimes, func(a, b domain.Showtime) int {
		return cmp.Or(a.StartTime.Compare(b.StartTime), cmp.Compare(a.ID, b.ID))
	})

	return showtimes, nil
}

func (s *MemoryStore) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeUnavailable(err)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	movies := make([]domain.Movie, 0, len(s.movies))
	for _, movie := range s.movies {
		movies = append(movies, movie)
	}

	slices.SortFunc(movies, func(a, b domain.Movie) int {
		return cmp.Or(strings.Compare(a.Title, b.Title), cmp.Compare(a.ID, b.ID))
	})

	return movies, nil
}

func (s *MemoryStore) CountActiveBookings(ctx context.Context, seatID int, showTime time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, storeUnavailable(err)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.countActive(seatID, showTime), nil
}

func (s *MemoryStore) ListBookedSeatIDs(ctx context.Context, hallID int, showTime time.Time) (map[int]struct{}, error) {
	if err := ctx.Err(); err != nil {
		return nil, storeUnavailable(err)
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	seatIDs := make(map[int]struct{})
	for _, booking := range s.bookings {
		if booking.Status != domain.BookingStatusBooked || !booking.ShowTime.Equal(showTime) {
			continue
		}

		if seat, ok := s.seats[booking.SeatID]; ok && seat.HallID == hallID {
			seatIDs[booking.SeatID] = struct{}{}
		}
	}

	return seatIDs, nil
}

// RunInTx holds the writer lock for the whole of fn. A caller queued behind
// another transaction gives up when its context ends. Inserts are staged and
// only become visible when fn returns nil and the context is still live.
func (s *MemoryStore) RunInTx(ctx context.Context, _ domain.TxOptions, fn func(tx domain.LedgerTx) error) error {
	select {
	case s.txSlot <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.txSlot }()

	if err := ctx.Err(); err != nil {
		return err
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	tx := &memoryLedgerTx{store: s}

	if err := fn(tx); err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	s.bookings = append(s.bookings, tx.pending...)

	return nil
}

func (s *MemoryStore) countActive(seatID int, showTime time.Time) int {
	count := 0
	for _, booking := range s.bookings {
		if booking.SeatID == seatID &&
			booking.ShowTime.Equal(showTime) &&
			booking.Status == domain.BookingStatusBooked {
			count++
		}
	}

	return count
}

// memoryLedgerTx runs with the store's writer lock already held.
type memoryLedgerTx struct {
	store   *MemoryStore
	pending []domain.Booking
}

func (t *memoryLedgerTx) GetSeat(ctx context.Context, seatID int) (*domain.Seat, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	seat, ok := t.store.seats[seatID]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return &seat, nil
}

func (t *memoryLedgerTx) ShowtimeExists(ctx context.Context, hallID int, showTime time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	for _, showtime := range t.store.showtimes {
		if showtime.HallID == hallID && showtime.StartTime.Equal(showTime) {
			return true, nil
		}
	}

	return false, nil
}

func (t *memoryLedgerTx) CountActiveBookings(ctx context.Context, seatID int, showTime time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	count := t.store.countActive(seatID, showTime)
	for _, booking := range t.pending {
		if booking.SeatID == seatID && booking.ShowTime.Equal(showTime) {
			count++
		}
	}

	return count, nil
}

func (t *memoryLedgerTx) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	count, err := t.CountActiveBookings(ctx, booking.SeatID, booking.ShowTime)
	if err != nil {
		return err
	}

	if count > 0 {
		return domain.ErrConstraintViolation
	}

	t.store.nextBookingID++
	booking.ID = t.store.nextBookingID
	booking.Status = domain.BookingStatusBooked
	booking.CreatedAt = t.store.now().UTC()

	t.pending = append(t.pending, *booking)

	return nil
}
