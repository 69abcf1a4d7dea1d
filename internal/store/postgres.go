package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/squadstats/wpi-api/internal/models"
)

// PgxConn is the subset of *pgxpool.Pool the store uses
type PgxConn interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Ping(ctx context.Context) error
}

var postgresTypes = columnTypes{ord: "INTEGER", text: "TEXT", number: "DOUBLE PRECISION"}

func pgQuote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// PostgresStore keeps the player table in PostgreSQL through pgx
type PostgresStore struct {
	db    PgxConn
	table string
	close func()
}

func NewPostgresStore(db PgxConn, table string) *PostgresStore {
	return &PostgresStore{db: db, table: table}
}

// OpenPostgres connects a pool and creates the table if needed
func OpenPostgres(ctx context.Context, url, table string) (*PostgresStore, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	s := NewPostgresStore(pool, table)
	s.close = pool.Close
	if err := s.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, createTableSQL(s.table, pgQuote, postgresTypes, "")); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

func (s *PostgresStore) LoadPlayers(ctx context.Context) ([]models.PlayerRecord, error) {
	rows, err := s.db.Query(ctx, selectSQL(s.table, pgQuote))
	if err != nil {
		return nil, fmt.Errorf("query players: %w", err)
	}
	defer rows.Close()

	var records []models.PlayerRecord
	target := newScanTarget()
	for rows.Next() {
		if err := rows.Scan(target.dest()...); err != nil {
			return nil, fmt.Errorf("scan player: %w", err)
		}
		records = append(records, target.record())
	}
	return records, rows.Err()
}

// SavePlayers replaces the table in one transaction using COPY
func (s *PostgresStore) SavePlayers(ctx context.Context, records []models.PlayerRecord) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, "TRUNCATE TABLE "+pgQuote(s.table)); err != nil {
		return fmt.Errorf("truncate %s: %w", s.table, err)
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{s.table},
		insertColumns(),
		pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
			return rowValues(i, &records[i]), nil
		}),
	)
	if err != nil {
		return fmt.Errorf("copy players: %w", err)
	}
	if int(n) != len(records) {
		return fmt.Errorf("copy players: wrote %d of %d rows", n, len(records))
	}
	return tx.Commit(ctx)
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *PostgresStore) Close() error {
	if s.close != nil {
		s.close()
	}
	return nil
}
