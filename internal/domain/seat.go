package domain

import "context"

type Hall struct {
	ID   int
	Name string
	Rows int
	Cols int
}

type HallLayout struct {
	HallID int
	Rows   int
	Cols   int
}

func (l HallLayout) Defined() bool {
	return l.Rows > 0 && l.Cols > 0
}

// Contains reports whether the given position lies inside the grid.
func (l HallLayout) Contains(row, col int) bool {
	return row >= 1 && row <= l.Rows && col >= 1 && col <= l.Cols
}

type Seat struct {
	ID     int
	HallID int
	Row    int
	Col    int
	Label  string
}

type SeatState string

const (
	SeatAvailable SeatState = "available"
	SeatBooked    SeatState = "booked"
)

// CatalogStore provides read-only lookups of the provisioned venue data.
// Storage failures are reported wrapped in ErrStoreUnavailable.
type CatalogStore interface {
	GetHallLayout(ctx context.Context, hallID int) (HallLayout, error)
	ListSeats(ctx context.Context, hallID int) ([]Seat, error)
	ListShowtimes(ctx context.Context, movieID int) ([]Showtime, error)
	ListMovies(ctx context.Context) ([]Movie, error)
}
