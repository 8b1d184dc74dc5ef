package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
)

type PostgresCatalogRepository struct {
	db *pgxpool.Pool
}

func NewPostgresCatalogRepository(db *pgxpool.Pool) *PostgresCatalogRepository {
	return &PostgresCatalogRepository{
		db: db,
	}
}

func (p *PostgresCatalogRepository) GetHallLayout(ctx context.Context, hallID int) (domain.HallLayout, error) {
	query := `
		SELECT total_rows, total_cols
		FROM halls
		WHERE id = $1
	`

	layout := domain.HallLayout{HallID: hallID}

	err := p.db.QueryRow(ctx, query, hallID).Scan(&layout.Rows, &layout.Cols)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.HallLayout{}, domain.ErrRecordNotFound
		}

		return domain.HallLayout{}, storeUnavailable(err)
	}

	return layout, nil
}

func (p *PostgresCatalogRepository) ListSeats(ctx context.Context, hallID int) ([]domain.Seat, error) {
	query := `
		SELECT id, hall_id, row_num, col_num, label
		FROM seats
		WHERE hall_id = $1
		ORDER BY row_num, col_num
	`

	rows, err := p.db.Query(ctx, query, hallID)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	defer rows.Close()

	seats := make([]domain.Seat, 0)

	for rows.Next() {
		var seat domain.Seat

		err = rows.Scan(
			&seat.ID,
			&seat.HallID,
			&seat.Row,
			&seat.Col,
			&seat.Label,
		)
		if err != nil {
			return nil, storeUnavailable(err)
		}

		seats = append(seats, seat)
	}

	if err = rows.Err(); err != nil {
		return nil, storeUnavailable(err)
	}

	return seats, nil
}

func (p *PostgresCatalogRepository) ListShowtimes(ctx context.Context, movieID int) ([]domain.Showtime, error) {
	query := `
		SELECT id, movie_id, hall_id, start_time
		FROM showtimes
		WHERE movie_id = $1
		ORDER BY start_time, id
	`

	rows, err := p.db.Query(ctx, query, movieID)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	defer rows.Close()

	showtimes := make([]domain.Showtime, 0)

	for rows.Next() {
		var showtime domain.Showtime

		err = rows.Scan(
			&showtime.ID,
			&showtime.MovieID,
			&showtime.HallID,
			&showtime.StartTime,
		)
		if err != nil {
			return nil, storeUnavailable(err)
		}

		showtimes = append(showtimes, showtime)
	}

	if err = rows.Err(); err != nil {
		return nil, storeUnavailable(err)
	}

	return showtimes, nil
}

func (p *PostgresCatalogRepository) ListMovies(ctx context.Context) ([]domain.Movie, error) {
	query := `
		SELECT id, title
		FROM movies
		ORDER BY title, id
	`

	rows, err := p.db.Query(ctx, query)
	if err != nil {
		return nil, storeUnavailable(err)
	}
	defer rows.Close()

	movies := make([]domain.Movie, 0)

	for rows.Next() {
		var movie domain.Movie

		if err := rows.Scan(&movie.ID, &movie.Title); err != nil {
			return nil, storeUnavailable(err)
		}

		movies = append(movies, movie)
	}

	if err = rows.Err(); err != nil {
		return nil, storeUnavailable(err)
	}

	return movies, nil
}
