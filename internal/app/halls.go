package app

import (
	"errors"
	"net/http"
	"slices"

	"github.com/metinatakli/hall-seat-booking/api"
	"github.com/metinatakli/hall-seat-booking/internal/availability"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
)

func (app *Application) GetHallLayout(w http.ResponseWriter, r *http.Request, hallId int) {
	layout, err := app.catalog.GetHallLayout(r.Context(), hallId)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	resp := api.HallLayoutResponse{
		HallId:  layout.HallID,
		Rows:    layout.Rows,
		Columns: layout.Cols,
		Defined: layout.Defined(),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListSeats(w http.ResponseWriter, r *http.Request, hallId int) {
	_, err := app.catalog.GetHallLayout(r.Context(), hallId)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	seats, err := app.catalog.ListSeats(r.Context(), hallId)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	resp := api.SeatListResponse{
		HallId: hallId,
		Seats:  make([]api.Seat, len(seats)),
	}
	for i, seat := range seats {
		resp.Seats[i] = toSeat(seat)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetAvailability(
	w http.ResponseWriter,
	r *http.Request,
	hallId int,
	params api.GetAvailabilityParams) {

	states, err := app.availability.AvailabilityMap(r.Context(), hallId, params.Showtime)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	resp := api.AvailabilityResponse{
		HallId:   hallId,
		Showtime: params.Showtime,
		Seats:    make([]api.SeatAvailability, 0, len(states)),
	}

	for seatID, state := range states {
		resp.Seats = append(resp.Seats, api.SeatAvailability{SeatId: seatID, State: api.SeatState(state)})
	}

	slices.SortFunc(resp.Seats, func(a, b api.SeatAvailability) int {
		return a.SeatId - b.SeatId
	})

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatMap(
	w http.ResponseWriter,
	r *http.Request,
	hallId int,
	params api.GetSeatMapParams) {

	logger := app.contextGetLogger(r)

	seatMap, err := app.availability.SeatMap(r.Context(), hallId, params.Showtime)
	if err != nil {
		if errors.Is(err, domain.ErrLayoutNotDefined) {
			logger.Warn("hall has no layout", "hall_id", hallId)
			app.notFoundResponse(w, r)
			return
		}

		app.storeErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toSeatMapResponse(seatMap), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toSeat(seat domain.Seat) api.Seat {
	return api.Seat{
		Id:     seat.ID,
		Row:    seat.Row,
		Column: seat.Col,
		Label:  seat.Label,
	}
}

func toSeatMapResponse(seatMap *availability.SeatMap) api.SeatMapResponse {
	resp := api.SeatMapResponse{
		HallId:   seatMap.HallID,
		Showtime: seatMap.ShowTime,
		Rows:     seatMap.Rows,
		Columns:  seatMap.Cols,
		SeatRows: []api.SeatRow{},
	}

	// Seats arrive sorted by row then column, so one pass groups them.
	for _, seat := range seatMap.Seats {
		last := len(resp.SeatRows) - 1
		if last < 0 || resp.SeatRows[last].Row != seat.Row {
			resp.SeatRows = append(resp.SeatRows, api.SeatRow{Row: seat.Row})
			last++
		}

		resp.SeatRows[last].Seats = append(resp.SeatRows[last].Seats, api.SeatMapSeat{
			Id:     seat.ID,
			Row:    seat.Row,
			Column: seat.Col,
			Label:  seat.Label,
			State:  api.SeatState(seat.State),
		})
	}

	return resp
}
