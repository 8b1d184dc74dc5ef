// Package reservation implements the atomic check-and-reserve operation that
// guarantees at most one active booking per seat and show time.
package reservation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/hall-seat-booking/internal/reservation"

const (
	outcomeBooked        = "booked"
	outcomeAlreadyBooked = "already_booked"
	outcomeNotFound      = "not_found"
	outcomeInvalid       = "invalid"
	outcomeSystemFailure = "system_failure"
)

type Config struct {
	// Timeout bounds a whole Reserve call, retries included.
	Timeout         time.Duration
	MaxRetries      int
	RetryBackoff    time.Duration
	Isolation       domain.IsolationLevel
	ListenerTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		Timeout:         5 * time.Second,
		MaxRetries:      3,
		RetryBackoff:    20 * time.Millisecond,
		Isolation:       domain.Serializable,
		ListenerTimeout: 2 * time.Second,
	}
}

type Engine struct {
	ledger    domain.BookingLedger
	validator *validator.Validate
	logger    *slog.Logger
	config    Config
	listeners []domain.BookingListener
	counter   metric.Int64Counter
	tracer    trace.Tracer
}

type Option func(*Engine)

// WithTracerProvider replaces the global tracer provider for reservation spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		e.tracer = tp.Tracer(instrumentationName)
	}
}

func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.config = cfg
	}
}

// WithListener registers a listener that is told about every committed booking.
func WithListener(listener domain.BookingListener) Option {
	return func(e *Engine) {
		if listener != nil {
			e.listeners = append(e.listeners, listener)
		}
	}
}

func NewEngine(
	ledger domain.BookingLedger,
	validator *validator.Validate,
	logger *slog.Logger,
	opts ...Option) *Engine {

	e := &Engine{
		ledger:    ledger,
		validator: validator,
		logger:    logger,
		config:    DefaultConfig(),
		tracer:    otel.Tracer(instrumentationName),
	}

	for _, opt := range opts {
		opt(e)
	}

	counter, err := otel.Meter(instrumentationName).Int64Counter(
		"reservations",
		metric.WithDescription("Reservation attempts by outcome"),
	)
	if err != nil {
		logger.Error("failed to create reservations counter", "error", err)
		counter = noop.Int64Counter{}
	}
	e.counter = counter

	return e
}

// Reserve books one seat for one show time. It returns the new booking ID, or
// a *domain.ReservationError describing why no booking was made.
func (e *Engine) Reserve(ctx context.Context, req domain.ReserveRequest) (int64, error) {
	ctx, span := e.tracer.Start(ctx, "reservation.Reserve", trace.WithAttributes(
		attribute.Int("seat.id", req.SeatID),
		attribute.Int("movie.id", req.MovieID),
		attribute.String("show_time", req.ShowTime.UTC().Format(time.RFC3339)),
	))
	defer span.End()

	logger := e.logger.With(
		"seat_id", req.SeatID,
		"movie_id", req.MovieID,
		"show_time", req.ShowTime,
	)

	req.CustomerName = strings.TrimSpace(req.CustomerName)

	err := e.validator.Struct(req)
	if err != nil {
		logger.Warn("rejected reservation request", "error", err)
		e.record(ctx, span, outcomeInvalid)
		return 0, domain.NewReservationError(domain.ErrInvalidInput, err)
	}

	txCtx := ctx
	if e.config.Timeout > 0 {
		var cancel context.CancelFunc
		txCtx, cancel = context.WithTimeout(ctx, e.config.Timeout)
		defer cancel()
	}

	booking, attempts, err := e.reserveWithRetry(txCtx, req)
	span.SetAttributes(attribute.Int("reservation.attempts", attempts))

	if err != nil {
		resErr := e.toReservationError(err)

		switch resErr.Kind {
		case domain.ErrAlreadyBooked:
			logger.Info("seat already booked", "attempts", attempts)
			e.record(ctx, span, outcomeAlreadyBooked)
		case domain.ErrRecordNotFound:
			logger.Info("reservation target not found", "error", err)
			e.record(ctx, span, outcomeNotFound)
		default:
			logger.Error("reservation failed", "attempts", attempts, "error", err)
			e.record(ctx, span, outcomeSystemFailure)
			span.RecordError(err)
			span.SetStatus(codes.Error, "reservation failed")
		}

		return 0, resErr
	}

	span.SetAttributes(attribute.Int64("booking.id", booking.ID))
	logger.Info("seat booked", "booking_id", booking.ID, "attempts", attempts)
	e.record(ctx, span, outcomeBooked)
	e.notify(ctx, booking)

	return booking.ID, nil
}

func (e *Engine) reserveWithRetry(ctx context.Context, req domain.ReserveRequest) (domain.Booking, int, error) {
	attempts := 0

	for {
		attempts++

		booking, err := e.reserveOnce(ctx, req)
		if err == nil {
			return booking, attempts, nil
		}

		if !errors.Is(err, domain.ErrTxConflict) || attempts > e.config.MaxRetries {
			return domain.Booking{}, attempts, err
		}

		trace.SpanFromContext(ctx).AddEvent("transaction conflict", trace.WithAttributes(
			attribute.Int("reservation.attempt", attempts),
		))

		e.logger.Debug("retrying reservation after transaction conflict",
			"seat_id", req.SeatID, "attempt", attempts, "error", err)

		timer := time.NewTimer(e.config.RetryBackoff * time.Duration(attempts))
		select {
		case <-ctx.Done():
			timer.Stop()
			return domain.Booking{}, attempts, errors.Join(err, ctx.Err())
		case <-timer.C:
		}
	}
}

// reserveOnce runs a single check-then-insert transaction. The count is only
// a fast path; the ledger's uniqueness constraint decides the race.
func (e *Engine) reserveOnce(ctx context.Context, req domain.ReserveRequest) (domain.Booking, error) {
	var booking domain.Booking

	err := e.ledger.RunInTx(ctx, domain.TxOptions{Isolation: e.config.Isolation}, func(tx domain.LedgerTx) error {
		seat, err := tx.GetSeat(ctx, req.SeatID)
		if err != nil {
			return fmt.Errorf("seat %d: %w", req.SeatID, err)
		}

		exists, err := tx.ShowtimeExists(ctx, seat.HallID, req.ShowTime)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("showtime %s in hall %d: %w",
				req.ShowTime.Format(time.RFC3339), seat.HallID, domain.ErrRecordNotFound)
		}

		count, err := tx.CountActiveBookings(ctx, seat.ID, req.ShowTime)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrAlreadyBooked
		}

		candidate := domain.Booking{
			SeatID:       seat.ID,
			HallID:       seat.HallID,
			MovieID:      req.MovieID,
			ShowTime:     req.ShowTime,
			CustomerName: req.CustomerName,
		}

		err = tx.InsertBooking(ctx, &candidate)
		if err != nil {
			if errors.Is(err, domain.ErrConstraintViolation) {
				return domain.ErrAlreadyBooked
			}

			return err
		}

		booking = candidate

		return nil
	})

	return booking, err
}

func (e *Engine) toReservationError(err error) *domain.ReservationError {
	switch {
	case errors.Is(err, domain.ErrAlreadyBooked), errors.Is(err, domain.ErrConstraintViolation):
		return domain.NewReservationError(domain.ErrAlreadyBooked, nil)
	case errors.Is(err, domain.ErrRecordNotFound):
		return domain.NewReservationError(domain.ErrRecordNotFound, err)
	default:
		return domain.NewReservationError(domain.ErrSystemFailure, err)
	}
}

func (e *Engine) notify(ctx context.Context, booking domain.Booking) {
	if len(e.listeners) == 0 {
		return
	}

	timeout := e.config.ListenerTimeout
	if timeout <= 0 {
		timeout = DefaultConfig().ListenerTimeout
	}

	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), timeout)
	defer cancel()

	notifyCtx, span := e.tracer.Start(notifyCtx, "reservation.notify",
		trace.WithAttributes(attribute.Int64("booking.id", booking.ID)))
	defer span.End()

	for _, listener := range e.listeners {
		name := fmt.Sprintf("%T", listener)

		err := listener.BookingCreated(notifyCtx, booking)
		if err != nil {
			span.RecordError(err, trace.WithAttributes(attribute.String("listener", name)))
			e.logger.Error("booking listener failed",
				"booking_id", booking.ID,
				"listener", name,
				"error", err)
		}
	}
}

func (e *Engine) record(ctx context.Context, span trace.Span, outcome string) {
	span.SetAttributes(attribute.String("reservation.outcome", outcome))
	e.counter.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
