package app

import (
	"net/http"

	"github.com/metinatakli/hall-seat-booking/api"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
)

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request) {
	movies, err := app.catalog.ListMovies(r.Context())
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	resp := api.MovieListResponse{Movies: make([]api.Movie, len(movies))}
	for i, movie := range movies {
		resp.Movies[i] = api.Movie{Id: movie.ID, Title: movie.Title}
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) ListShowtimes(w http.ResponseWriter, r *http.Request, movieId int) {
	showtimes, err := app.catalog.ListShowtimes(r.Context(), movieId)
	if err != nil {
		app.storeErrorResponse(w, r, err)
		return
	}

	resp := api.ShowtimeListResponse{
		MovieId:   movieId,
		Showtimes: toShowtimes(showtimes),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toShowtimes(showtimes []domain.Showtime) []api.Showtime {
	result := make([]api.Showtime, len(showtimes))

	for i, showtime := range showtimes {
		result[i] = api.Showtime{
			Id:        showtime.ID,
			MovieId:   showtime.MovieID,
			HallId:    showtime.HallID,
			StartTime: showtime.StartTime.UTC(),
		}
	}

	return result
}
