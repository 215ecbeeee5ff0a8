package main

import (
	"context"
	"fmt"
	"time"

	"github.com/yritu05/Scholar-Connect/internal/core/ports"
	"github.com/yritu05/Scholar-Connect/internal/infrastructure/db/mongo"
	"github.com/yritu05/Scholar-Connect/internal/infrastructure/db/postgres"
	"github.com/yritu05/Scholar-Connect/internal/pkg/config"
)

const connectTimeout = 10 * time.Second

// backend is the persistence layer, PostgreSQL or MongoDB, behind the
// repository ports.
type backend struct {
	name   string
	users  ports.UserRepository
	papers ports.PaperRepository
	chats  ports.ChatRepository

	migrate func(ctx context.Context) error
	ping    func(ctx context.Context) error
	close   func(ctx context.Context) error
}

// openBackend connects to the store named by DATABASE_URL's scheme.
func openBackend(ctx context.Context, cfg *config.Config) (*backend, error) {
	switch cfg.DatabaseDriver() {
	case "mongo":
		client, db, err := mongo.Connect(ctx, mongo.Config{
			URI:      cfg.Database.URL,
			Database: cfg.Database.Name,
			Timeout:  connectTimeout,
		})
		if err != nil {
			return nil, err
		}
		store := mongo.NewStore(client, db)
		return &backend{
			name:    "mongo",
			users:   store.Users(),
			papers:  store.Papers(),
			chats:   store.Chats(),
			migrate: store.Migrate,
			ping:    store.Ping,
			close:   store.Close,
		}, nil

	case "postgres":
		db, err := postgres.Open(ctx, postgres.Config{DSN: cfg.Database.URL, Timeout: connectTimeout})
		if err != nil {
			return nil, err
		}
		store := postgres.NewStore(db)
		return &backend{
			name:    "postgres",
			users:   store.Users(),
			papers:  store.Papers(),
			chats:   store.Chats(),
			migrate: store.Migrate,
			ping:    store.Ping,
			close:   store.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DatabaseDriver())
	}
}
