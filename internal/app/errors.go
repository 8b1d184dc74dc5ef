package app

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/hall-seat-booking/api"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
	appvalidator "github.com/metinatakli/hall-seat-booking/internal/validator"
)

const (
	ErrInternalServer     = "The server encountered a problem and could not process your request"
	ErrNotFound           = "The requested resource not found"
	ErrMethodNotAllowed   = "The %s method is not supported for this resource"
	ErrFailedValidation   = "One or more fields are invalid"
	ErrServiceUnavailable = "The booking could not be completed, please retry"

	retryAfterSeconds = 1
)

func (app *Application) logError(r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.contextGetLogger(r).Error(err.Error(), "method", method, "uri", uri)
}

// The errorResponse() method is a generic helper for sending JSON-formatted error
// messages to the client with a given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.ErrorResponse{
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
		Timestamp: time.Now(),
	}

	err := app.writeJSON(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(500)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, fmt.Sprintf(ErrMethodNotAllowed, r.Method))
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) editConflictResponseWithErr(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusConflict, err.Error())
}

// serviceUnavailableResponse tells the client the request failed for a
// transient reason and may be submitted again.
func (app *Application) serviceUnavailableResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSeconds))
	app.errorResponse(w, r, http.StatusServiceUnavailable, ErrServiceUnavailable)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.badRequestResponse(w, r, err)
		return
	}

	resp := api.ValidationErrorResponse{
		Message:          ErrFailedValidation,
		RequestId:        middleware.GetReqID(r.Context()),
		Timestamp:        time.Now(),
		ValidationErrors: make([]api.ValidationError, 0, len(validationErrs)),
	}

	for _, fieldErr := range validationErrs {
		resp.ValidationErrors = append(resp.ValidationErrors, api.ValidationError{
			Field: fieldErr.Field(),
			Issue: appvalidator.ValidationMessage(fieldErr),
		})
	}

	err = app.writeJSON(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// storeErrorResponse maps catalog and ledger read failures to a response.
func (app *Application) storeErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	case errors.Is(err, domain.ErrStoreUnavailable):
		app.serviceUnavailableResponse(w, r, err)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

// paramErrorResponse reports path and query parameters the router could not bind.
func (app *Application) paramErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	var (
		requiredErr      *api.RequiredParamError
		invalidFormatErr *api.InvalidParamFormatError
	)

	switch {
	case errors.As(err, &requiredErr):
		app.badRequestResponse(w, r, fmt.Errorf("%s query parameter is required", requiredErr.ParamName))
	case errors.As(err, &invalidFormatErr):
		app.badRequestResponse(w, r, fmt.Errorf("invalid format for parameter %s", invalidFormatErr.ParamName))
	default:
		app.badRequestResponse(w, r, err)
	}
}
