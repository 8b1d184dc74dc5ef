// Package events publishes booking notifications to the message broker.
package events

import "time"

const BookingConfirmedQueue = "booking.confirmed"

// BookingConfirmedEvent carries enough of the booking for consumers to act
// without querying the ledger.
type BookingConfirmedEvent struct {
	EventID      string    `json:"event_id"`
	BookingID    int64     `json:"booking_id"`
	SeatID       int       `json:"seat_id"`
	HallID       int       `json:"hall_id"`
	MovieID      int       `json:"movie_id"`
	ShowTime     time.Time `json:"show_time"`
	CustomerName string    `json:"customer_name"`
	ConfirmedAt  time.Time `json:"confirmed_at"`
}
