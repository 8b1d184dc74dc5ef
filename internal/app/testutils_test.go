package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/metinatakli/hall-seat-booking/api"
	"github.com/metinatakli/hall-seat-booking/internal/availability"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
	"github.com/metinatakli/hall-seat-booking/internal/repository"
	"github.com/metinatakli/hall-seat-booking/internal/reservation"
	"github.com/metinatakli/hall-seat-booking/internal/validator"
)

var testShowTime = time.Date(2095, 1, 1, 18, 0, 0, 0, time.UTC)

// newTestStore provisions hall 1 (2x3, seats 1..6), an undefined hall 2 and
// movie 1 playing in hall 1 at testShowTime.
func newTestStore() *repository.MemoryStore {
	store := repository.NewMemoryStore()

	store.AddHall(domain.Hall{ID: 1, Name: "H1", Rows: 2, Cols: 3})
	store.AddHall(domain.Hall{ID: 2, Name: "H2"})
	store.AddMovie(domain.Movie{ID: 1, Title: "M1"})
	store.AddShowtime(domain.Showtime{ID: 1, MovieID: 1, HallID: 1, StartTime: testShowTime})

	id := 1
	for row := 1; row <= 2; row++ {
		for col := 1; col <= 3; col++ {
			store.AddSeat(domain.Seat{ID: id, HallID: 1, Row: row, Col: col, Label: fmt.Sprintf("%c%d", 'A'+row-1, col)})
			id++
		}
	}

	return store
}

func newTestApplication(opts ...func(*Application)) *Application {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	v := validator.NewValidator()
	store := newTestStore()

	app := &Application{
		config:       Config{Env: "test"},
		validator:    v,
		logger:       logger,
		catalog:      store,
		engine:       reservation.NewEngine(store, v, logger),
		availability: availability.NewFacade(store, store, logger),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	if wantStatus >= 200 && wantStatus < 300 {
		return
	}

	switch wantStatus {
	case http.StatusUnprocessableEntity:
		var validationResp api.ValidationErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&validationResp); err != nil {
			t.Fatalf("Failed to decode validation error response: %v", err)
		}

		errorSet := make(map[string]bool)
		for _, vErr := range validationResp.ValidationErrors {
			errorSet[vErr.Issue] = true
		}

		if !errorSet[wantErrMessage] {
			t.Errorf("Expected validation error message '%s' not found in response", wantErrMessage)
		}

	default:
		var errorResp api.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&errorResp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}

		if wantErrMessage != "" && errorResp.Message != wantErrMessage {
			t.Errorf("Error message = %v, want %v", errorResp.Message, wantErrMessage)
		}
	}
}
