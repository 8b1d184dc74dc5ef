package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
)

// Name of the partial unique index over (seat_id, show_time) WHERE status = 'booked'.
const activeBookingIndex = "bookings_active_seat_show_time_idx"

type PostgresBookingRepository struct {
	db *pgxpool.Pool
}

func NewPostgresBookingRepository(db *pgxpool.Pool) *PostgresBookingRepository {
	return &PostgresBookingRepository{
		db: db,
	}
}

func (p *PostgresBookingRepository) CountActiveBookings(
	ctx context.Context,
	seatID int,
	showTime time.Time) (int, error) {

	count, err := countActiveBookings(ctx, p.db, seatID, showTime)
	if err != nil {
		return 0, storeUnavailable(err)
	}

	return count, nil
}

func (p *PostgresBookingRepository) ListBookedSeatIDs(
	ctx context.Context,
	hallID int,
	showTime time.Time) (map[int]struct{}, error) {

	query := `
		SELECT b.seat_id
		FROM bookings b
		JOIN seats s ON b.seat_id = s.id
		WHERE s.hall_id = $1 AND b.show_time = $2 AND b.status = 'booked'
	`

	rows, err := p.db.Query(ctx, query, hallID, showTime)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	defer rows.Close()

	seatIDs := make(map[int]struct{})

	for rows.Next() {
		var seatID int

		if err := rows.Scan(&seatID); err != nil {
			return nil, storeUnavailable(err)
		}

		seatIDs[seatID] = struct{}{}
	}

	if err = rows.Err(); err != nil {
		return nil, storeUnavailable(err)
	}

	return seatIDs, nil
}

func (p *PostgresBookingRepository) RunInTx(
	ctx context.Context,
	opts domain.TxOptions,
	fn func(tx domain.LedgerTx) error) error {

	err := runInTx(ctx, p.db, toPgxTxOptions(opts), func(tx pgx.Tx) error {
		return fn(&postgresLedgerTx{tx: tx})
	})

	return classifyTxError(err)
}

type postgresLedgerTx struct {
	tx pgx.Tx
}

func (t *postgresLedgerTx) GetSeat(ctx context.Context, seatID int) (*domain.Seat, error) {
	query := `
		SELECT id, hall_id, row_num, col_num, label
		FROM seats
		WHERE id = $1
	`

	var seat domain.Seat

	err := t.tx.QueryRow(ctx, query, seatID).Scan(
		&seat.ID,
		&seat.HallID,
		&seat.Row,
		&seat.Col,
		&seat.Label,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecordNotFound
		}

		return nil, classifyTxError(err)
	}

	return &seat, nil
}

func (t *postgresLedgerTx) ShowtimeExists(ctx context.Context, hallID int, showTime time.Time) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM showtimes WHERE hall_id = $1 AND start_time = $2
		)
	`

	var exists bool

	err := t.tx.QueryRow(ctx, query, hallID, showTime).Scan(&exists)
	if err != nil {
		return false, classifyTxError(err)
	}

	return exists, nil
}

func (t *postgresLedgerTx) CountActiveBookings(ctx context.Context, seatID int, showTime time.Time) (int, error) {
	count, err := countActiveBookings(ctx, t.tx, seatID, showTime)
	if err != nil {
		return 0, classifyTxError(err)
	}

	return count, nil
}

func (t *postgresLedgerTx) InsertBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (seat_id, movie_id, show_time, customer_name, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := t.tx.QueryRow(
		ctx,
		query,
		booking.SeatID,
		booking.MovieID,
		booking.ShowTime,
		booking.CustomerName,
		domain.BookingStatusBooked,
	).Scan(&booking.ID, &booking.CreatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) &&
			pgErr.Code == pgerrcode.UniqueViolation &&
			pgErr.ConstraintName == activeBookingIndex {
			return domain.ErrConstraintViolation
		}

		return classifyTxError(err)
	}

	booking.Status = domain.BookingStatusBooked

	return nil
}

func countActiveBookings(ctx context.Context, q querier, seatID int, showTime time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM bookings
		WHERE seat_id = $1 AND show_time = $2 AND status = 'booked'
	`

	var count int

	err := q.QueryRow(ctx, query, seatID, showTime).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}
