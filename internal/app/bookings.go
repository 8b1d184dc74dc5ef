package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/hall-seat-booking/api"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
)

func (app *Application) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var input api.CreateBookingRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	bookingID, err := app.engine.Reserve(r.Context(), domain.ReserveRequest{
		SeatID:       input.SeatId,
		MovieID:      input.MovieId,
		ShowTime:     input.Showtime,
		CustomerName: input.CustomerName,
	})
	if err != nil {
		app.reservationErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, api.CreateBookingResponse{BookingId: bookingID}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) reservationErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var resErr *domain.ReservationError
	if !errors.As(err, &resErr) {
		app.serverErrorResponse(w, r, err)
		return
	}

	switch resErr.Kind {
	case domain.ErrInvalidInput:
		app.failedValidationResponse(w, r, resErr.Cause)
	case domain.ErrRecordNotFound:
		app.notFoundResponse(w, r)
	case domain.ErrAlreadyBooked:
		app.editConflictResponseWithErr(w, r, domain.ErrAlreadyBooked)
	default:
		app.serviceUnavailableResponse(w, r, err)
	}
}
