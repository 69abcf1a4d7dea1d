package store

import (
	"context"
	"fmt"

	"github.com/squadstats/wpi-api/internal/config"
	"github.com/squadstats/wpi-api/internal/logic"
)

// Store is a readable, writable player table
type Store interface {
	logic.PlayerStore
	logic.PlayerWriter
	logic.Pinger
	Close() error
}

var (
	_ Store = (*CSVStore)(nil)
	_ Store = (*PostgresStore)(nil)
	_ Store = (*ClickHouseStore)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*SQLStore)(nil)
)

// Open connects the backend selected by cfg.StoreBackend
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.StoreBackend {
	case config.BackendCSV:
		s = NewCSVStore(cfg.DataPath)
	case config.BackendPostgres:
		s, err = unwrap(OpenPostgres(ctx, cfg.PostgresURL, cfg.PlayersTable))
	case config.BackendClickHouse:
		s, err = unwrap(OpenClickHouse(ctx, cfg.ClickHouseURL, cfg.PlayersTable))
	case config.BackendRedis:
		s, err = unwrap(OpenRedis(ctx, cfg.RedisURL, cfg.PlayersTable))
	case config.BackendSQL:
		s, err = unwrap(OpenSQL(ctx, cfg.SQLDriver, cfg.SQLDSN, cfg.PlayersTable))
	default:
		err = fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.StoreBackend, err)
	}
	return s, nil
}

// unwrap keeps a failed constructor's typed nil out of the interface
func unwrap[T Store](s T, err error) (Store, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
