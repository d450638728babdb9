// Package storage picks the storage adapter named by DATABASE_URL.
package storage

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hotelreservation/internal/database"
	"hotelreservation/internal/domain"
	"hotelreservation/internal/repository"
	"hotelreservation/internal/repository/memory"
	"hotelreservation/internal/repository/mongostore"
	"hotelreservation/internal/seed"
)

const (
	memoryURL             = "memory"
	defaultConnectTimeout = 10 * time.Second
)

// Backend bundles the repositories of one adapter.
type Backend struct {
	Kind     string
	Rooms    domain.RoomRepository
	Guests   domain.GuestRepository
	Bookings domain.BookingRepository
	Seeder   seed.Target

	migrate func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// Migrate prepares the schema (tables or indexes). A no-op for memory.
func (b *Backend) Migrate(ctx context.Context) error {
	if b.migrate == nil {
		return nil
	}
	return b.migrate(ctx)
}

func (b *Backend) Close(ctx context.Context) error {
	if b.close == nil {
		return nil
	}
	return b.close(ctx)
}

type Options struct {
	URL           string
	MongoDatabase string
	Debug         bool
	Timeout       time.Duration
}

// Open connects to:
//
//	mongodb://...        MongoDB
//	postgres://...       PostgreSQL through gorm
//	memory               process-local maps
//	anything else        a SQLite file path
func Open(ctx context.Context, opts Options, log *zap.Logger) (*Backend, error) {
	if log == nil {
		log = zap.NewNop()
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	switch {
	case opts.URL == memoryURL:
		s := memory.NewStore()
		return &Backend{Kind: "memory", Rooms: s.Rooms(), Guests: s.Guests(), Bookings: s.Bookings(), Seeder: s}, nil

	case database.IsMongo(opts.URL):
		client, err := database.ConnectMongo(ctx, opts.URL, timeout, log)
		if err != nil {
			return nil, fmt.Errorf("connect mongo: %w", err)
		}
		s := mongostore.NewStore(client.Database(opts.MongoDatabase))
		return &Backend{
			Kind:     "mongo",
			Rooms:    s.Rooms(),
			Guests:   s.Guests(),
			Bookings: s.Bookings(),
			Seeder:   s,
			migrate:  s.EnsureIndexes,
			close:    client.Disconnect,
		}, nil

	default:
		db, err := database.Connect(opts.URL, opts.Debug, log)
		if err != nil {
			return nil, fmt.Errorf("connect sql: %w", err)
		}
		s := repository.NewStore(db)
		kind := "sqlite"
		if database.IsPostgres(opts.URL) {
			kind = "postgres"
		}
		return &Backend{
			Kind:     kind,
			Rooms:    s.Rooms(),
			Guests:   s.Guests(),
			Bookings: s.Bookings(),
			Seeder:   s,
			migrate:  s.Migrate,
			close: func(context.Context) error {
				sqlDB, err := db.DB()
				if err != nil {
					return err
				}
				return sqlDB.Close()
			},
		}, nil
	}
}
