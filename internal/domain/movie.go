package domain

import "time"

type Movie struct {
	ID    int
	Title string
}

type Showtime struct {
	ID        int
	MovieID   int
	HallID    int
	StartTime time.Time
}
