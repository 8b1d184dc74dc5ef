package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/hall-seat-booking/api"
	"github.com/metinatakli/hall-seat-booking/internal/availability"
	"github.com/metinatakli/hall-seat-booking/internal/cache"
	"github.com/metinatakli/hall-seat-booking/internal/domain"
	"github.com/metinatakli/hall-seat-booking/internal/events"
	"github.com/metinatakli/hall-seat-booking/internal/repository"
	"github.com/metinatakli/hall-seat-booking/internal/reservation"
	appvalidator "github.com/metinatakli/hall-seat-booking/internal/validator"
	"github.com/metinatakli/hall-seat-booking/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
)

var (
	version = vcs.Version()
)

type Application struct {
	config       Config
	logger       *slog.Logger
	validator    *validator.Validate
	catalog      domain.CatalogStore
	engine       *reservation.Engine
	availability *availability.Facade
}

var _ api.ServerInterface = (*Application)(nil)

type Config struct {
	Port             int
	Env              string
	DB               DBConfig
	Redis            RedisConfig
	AMQP             AMQPConfig
	Reservation      ReservationConfig
	OtelCollectorUrl string
	// Fraction of new traces sampled, parent decisions are always kept.
	OtelSampleRatio    float64
	OtelMetricInterval time.Duration
	Migrate            bool
	MigrationsPath     string
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	MaxIdleTime     time.Duration
	AvailabilityTTL time.Duration
}

type AMQPConfig struct {
	URL   string
	Queue string
}

type ReservationConfig struct {
	Timeout         time.Duration
	MaxRetries      int
	RetryBackoff    time.Duration
	Isolation       string
	ListenerTimeout time.Duration
}

// Engine converts the flag values into the engine's own configuration.
func (c ReservationConfig) Engine() (reservation.Config, error) {
	isolation, err := domain.ParseIsolationLevel(c.Isolation)
	if err != nil {
		return reservation.Config{}, err
	}

	return reservation.Config{
		Timeout:         c.Timeout,
		MaxRetries:      c.MaxRetries,
		RetryBackoff:    c.RetryBackoff,
		Isolation:       isolation,
		ListenerTimeout: c.ListenerTimeout,
	}, nil
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	catalog domain.CatalogStore,
	engine *reservation.Engine,
	facade *availability.Facade) *Application {

	return &Application{
		config:       cfg,
		logger:       logger,
		validator:    validator,
		catalog:      catalog,
		engine:       engine,
		availability: facade,
	}
}

func Run() error {
	var cfg Config

	defaults := reservation.DefaultConfig()

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL, availability caching is disabled when empty")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")
	flag.DurationVar(&cfg.Redis.AvailabilityTTL, "redis-availability-ttl", cache.DefaultAvailabilityTTL, "Lifetime of cached availability maps")

	flag.StringVar(&cfg.AMQP.URL, "amqp-url", "", "RabbitMQ URL, booking events are disabled when empty")
	flag.StringVar(&cfg.AMQP.Queue, "amqp-queue", events.BookingConfirmedQueue, "Queue receiving booking confirmed events")

	flag.DurationVar(&cfg.Reservation.Timeout, "reservation-timeout", defaults.Timeout, "Deadline for a single reservation")
	flag.IntVar(&cfg.Reservation.MaxRetries, "reservation-max-retries", defaults.MaxRetries, "Retries after a serialization conflict")
	flag.DurationVar(&cfg.Reservation.RetryBackoff, "reservation-retry-backoff", defaults.RetryBackoff, "Base delay between retries")
	flag.StringVar(&cfg.Reservation.Isolation, "reservation-isolation", string(defaults.Isolation), "Transaction isolation (serializable|repeatable-read|read-committed)")
	flag.DurationVar(&cfg.Reservation.ListenerTimeout, "reservation-listener-timeout", defaults.ListenerTimeout, "Deadline for post-commit notifications")

	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")
	flag.Float64Var(&cfg.OtelSampleRatio, "otel-sample-ratio", 1, "Fraction of new traces to sample (0-1)")
	flag.DurationVar(&cfg.OtelMetricInterval, "otel-metric-interval", defaultMetricInterval, "Metric export interval")

	flag.BoolVar(&cfg.Migrate, "migrate", false, "Apply database migrations before serving")
	flag.StringVar(&cfg.MigrationsPath, "migrations-path", "file://migrations", "Migration source URL")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(os.Stdout, nil),
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}),
	}
	logger := slog.New(NewMultiHandler(handlers...))

	engineCfg, err := cfg.Reservation.Engine()
	if err != nil {
		return err
	}

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(append(handlers, TelemetryHandler())...))
	}

	if cfg.Migrate {
		err = RunMigrations(cfg.DB.DSN, cfg.MigrationsPath)
		if err != nil {
			return err
		}
		logger.Info("database migrations applied", "source", cfg.MigrationsPath)
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	catalogRepo := repository.NewPostgresCatalogRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	engineOpts := []reservation.Option{reservation.WithConfig(engineCfg)}
	var facadeOpts []availability.Option

	if cfg.Redis.URL != "" {
		redisClient, err := NewRedisClient(cfg)
		if err != nil {
			return err
		}
		defer redisClient.Close()

		availabilityCache := cache.NewRedisAvailabilityCache(redisClient, cfg.Redis.AvailabilityTTL, "seats")
		facadeOpts = append(facadeOpts, availability.WithCache(availabilityCache))
		engineOpts = append(engineOpts, reservation.WithListener(availabilityCache))
	}

	if cfg.AMQP.URL != "" {
		publisher, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
		if err != nil {
			return err
		}
		defer publisher.Close()

		engineOpts = append(engineOpts, reservation.WithListener(publisher))
	}

	validator := appvalidator.NewValidator()

	app := NewApp(
		cfg,
		logger,
		validator,
		catalogRepo,
		reservation.NewEngine(bookingRepo, validator, logger, engineOpts...),
		availability.NewFacade(catalogRepo, bookingRepo, logger, facadeOpts...),
	)

	return app.serve()
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := errors.Join(redisotel.InstrumentTracing(rdb), redisotel.InstrumentMetrics(rdb))
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) serve() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "version", version)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.recoverPanic)
	r.Use(app.requestLogger)
	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.paramErrorResponse,
	})
}
