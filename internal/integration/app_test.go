package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/hall-seat-booking/internal/app"
	"github.com/metinatakli/hall-seat-booking/internal/availability"
	"github.com/metinatakli/hall-seat-booking/internal/cache"
	"github.com/metinatakli/hall-seat-booking/internal/repository"
	"github.com/metinatakli/hall-seat-booking/internal/reservation"
	appvalidator "github.com/metinatakli/hall-seat-booking/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App      *app.Application
	DB       *pgxpool.Pool
	Redis    *redis.Client
	Engine   *reservation.Engine
	Catalog  *repository.PostgresCatalogRepository
	Bookings *repository.PostgresBookingRepository
	Cache    *cache.RedisAvailabilityCache
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	validator := appvalidator.NewValidator()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	engineCfg, err := cfg.Reservation.Engine()
	if err != nil {
		db.Close()
		redisClient.Close()
		return nil, err
	}

	catalogRepo := repository.NewPostgresCatalogRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)
	availabilityCache := cache.NewRedisAvailabilityCache(redisClient, cfg.Redis.AvailabilityTTL, "test")

	engine := reservation.NewEngine(
		bookingRepo,
		validator,
		logger,
		reservation.WithConfig(engineCfg),
		reservation.WithListener(availabilityCache),
	)

	facade := availability.NewFacade(catalogRepo, bookingRepo, logger, availability.WithCache(availabilityCache))

	application := app.NewApp(cfg, logger, validator, catalogRepo, engine, facade)

	return &TestApp{
		App:      application,
		DB:       db,
		Redis:    redisClient,
		Engine:   engine,
		Catalog:  catalogRepo,
		Bookings: bookingRepo,
		Cache:    availabilityCache,
	}, nil
}
