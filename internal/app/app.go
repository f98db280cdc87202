package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/simplehiit-backend/internal/adapter/postgres"
	pgsession "github.com/heartmarshall/simplehiit-backend/internal/adapter/postgres/session"
	pguser "github.com/heartmarshall/simplehiit-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/simplehiit-backend/internal/adapter/prefstore"
	"github.com/heartmarshall/simplehiit-backend/internal/adapter/prefstore/memory"
	prefredis "github.com/heartmarshall/simplehiit-backend/internal/adapter/prefstore/redis"
	"github.com/heartmarshall/simplehiit-backend/internal/config"
	"github.com/heartmarshall/simplehiit-backend/internal/repository/sessions"
	"github.com/heartmarshall/simplehiit-backend/internal/repository/settings"
	"github.com/heartmarshall/simplehiit-backend/internal/repository/users"
)

// Storage is the relational side of the app: the pool and the repositories built on it.
type Storage struct {
	Pool     *pgxpool.Pool
	Users    *users.Repo
	Sessions *sessions.Repo
}

// OpenStorage connects to PostgreSQL and builds the users and sessions repositories.
// Close releases the pool.
func OpenStorage(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*Storage, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return &Storage{
		Pool:     pool,
		Users:    users.New(logger, pguser.New(pool, postgres.NewTxManager(pool))),
		Sessions: sessions.New(logger, pgsession.New(pool)),
	}, nil
}

// Close releases the pool.
func (s *Storage) Close() {
	s.Pool.Close()
}

// Settings is the preference side of the app: the settings repository and
// the store behind it.
type Settings struct {
	Repo  *settings.Repo
	store *prefstore.Store
	close func()
}

// Ping reports whether the preference store can be read.
func (s *Settings) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// Close releases the driver's connection.
func (s *Settings) Close() {
	s.close()
}

// OpenSettings builds the settings repository over the configured preference driver.
func OpenSettings(ctx context.Context, cfg config.PreferencesConfig, logger *slog.Logger) (*Settings, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		logger.Warn("preferences are kept in memory and lost on exit")
		store := prefstore.New(memory.New())
		return &Settings{Repo: settings.New(logger, store), store: store, close: func() {}}, nil

	case config.DriverRedis:
		client, err := prefredis.Dial(ctx, cfg.RedisAddr, cfg.RedisDB, cfg.RedisPassword)
		if err != nil {
			return nil, fmt.Errorf("connect to preference store: %w", err)
		}
		store := prefstore.New(prefredis.New(client, cfg.KeyPrefix))
		return &Settings{Repo: settings.New(logger, store), store: store, close: func() { _ = client.Close() }}, nil

	default:
		return nil, fmt.Errorf("unknown preferences driver %q", cfg.Driver)
	}
}
