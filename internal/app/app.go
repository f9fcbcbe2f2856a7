// Package app builds the service graph shared by the server, the cron runner
// and the admin CLI.
package app

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"

	"agrorent-backend/internal/cache"
	"agrorent-backend/internal/config"
	"agrorent-backend/internal/events"
	"agrorent-backend/internal/logger"
	"agrorent-backend/internal/repository/postgres"
	"agrorent-backend/internal/service"
)

// App holds the opened connections and the services built on them.
type App struct {
	Config *config.Config
	DB     *sqlx.DB
	Store  *postgres.Store

	Verification service.VerificationService
	Booking      service.BookingService
	Reputation   service.ReputationService
	Payment      service.PaymentService
	Listing      service.ListingService
	Profile      service.ProfileService

	redis *redis.Client
	nats  *nats.Conn
}

// Build connects to Postgres and, when configured, Redis and NATS. Redis and
// NATS are optional: a failure to reach them is logged and the app runs
// without a cache or without event publication.
func Build(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := postgres.Open(ctx, cfg.GetDatabaseConnectionString(),
		cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.ConnMaxLifetime())
	if err != nil {
		return nil, err
	}
	logger.Info("Database connection established", "host", cfg.Database.Host, "database", cfg.Database.Database)

	a := &App{Config: cfg, DB: db, Store: postgres.NewStore(db)}

	var ratingCache service.RatingCache
	if cfg.Redis.Addr != "" {
		rdb, err := cache.NewClient(ctx, cache.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			logger.Warn("Rating cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			a.redis = rdb
			ratingCache = cache.NewRedisRatingCache(rdb, cfg.CacheTTL(), cfg.Redis.KeyPrefix)
		}
	}

	var publisher service.EventPublisher = events.NoopPublisher{}
	if cfg.NATS.URL != "" {
		nc, err := events.Connect(events.Config{
			URL:           cfg.NATS.URL,
			Name:          cfg.NATS.Name,
			SubjectPrefix: cfg.NATS.SubjectPrefix,
			ReconnectWait: cfg.NATSReconnectWait(),
			MaxReconnects: cfg.NATS.MaxReconnects,
		})
		if err != nil {
			logger.Warn("Event publication disabled", "url", cfg.NATS.URL, "error", err)
		} else {
			a.nats = nc
			publisher = events.NewNATSPublisher(nc, cfg.NATS.SubjectPrefix)
		}
	}

	readRetry := service.ReadRetry{MaxRetries: cfg.Retry.MaxRetries, BaseDelay: cfg.ReadRetryBaseDelay()}

	a.Verification = service.NewVerificationService(a.Store.DocumentRepository, readRetry)
	a.Booking = service.NewBookingService(a.Store.BookingRepository, a.Store.MachineRepository, a.Verification, publisher, readRetry)
	a.Reputation = service.NewReputationService(a.Store.ReviewRepository, a.Store.RatingAggregateRepository, a.Store.BookingRepository, ratingCache, publisher, readRetry)
	a.Payment = service.NewPaymentService(a.Store.BookingRepository, publisher, readRetry)
	a.Listing = service.NewListingService(a.Store.MachineRepository, a.Verification)
	a.Profile = service.NewProfileService(a.Reputation, a.Verification)

	return a, nil
}

// Close drains NATS and closes Redis and the database.
func (a *App) Close() error {
	var errs []error
	if a.nats != nil {
		if err := a.nats.Drain(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.redis != nil {
		errs = append(errs, a.redis.Close())
	}
	errs = append(errs, a.DB.Close())
	return errors.Join(errs...)
}
