package store

import (
	"context"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"

	"github.com/squadstats/wpi-api/internal/models"
)

var clickhouseTypes = columnTypes{ord: "UInt32", text: "String", number: "Float64"}

func chQuote(name string) string {
	return "`" + name + "`"
}

// ClickHouseStore keeps the player table in a MergeTree table
type ClickHouseStore struct {
	conn  driver.Conn
	table string
}

func NewClickHouseStore(conn driver.Conn, table string) *ClickHouseStore {
	return &ClickHouseStore{conn: conn, table: table}
}

// OpenClickHouse connects using a clickhouse:// DSN and creates the table
func OpenClickHouse(ctx context.Context, dsn, table string) (*ClickHouseStore, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	opts, err := clickhouse.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse clickhouse dsn: %w", err)
	}
	conn, err := clickhouse.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open clickhouse: %w", err)
	}
	if err := conn.Ping(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("ping clickhouse: %w", err)
	}
	s := NewClickHouseStore(conn, table)
	if err := s.EnsureSchema(ctx); err != nil {
		conn.Close()
		return nil, err
	}
	return s, nil
}

func (s *ClickHouseStore) EnsureSchema(ctx context.Context) error {
	stmt := createTableSQL(s.table, chQuote, clickhouseTypes, "ENGINE = MergeTree ORDER BY "+chQuote(OrdColumn))
	if err := s.conn.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

func (s *ClickHouseStore) LoadPlayers(ctx context.Context) ([]models.PlayerRecord, error) {
	rows, err := s.conn.Query(ctx, selectSQL(s.table, chQuote))
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

// SavePlayers truncates the table and inserts one batch. ClickHouse has no
// transactions, so a failed batch leaves the table empty.
func (s *ClickHouseStore) SavePlayers(ctx context.Context, records []models.PlayerRecord) error {
	if err := s.conn.Exec(ctx, "TRUNCATE TABLE IF EXISTS "+chQuote(s.table)); err != nil {
		return fmt.Errorf("truncate %s: %w", s.table, err)
	}
	if len(records) == 0 {
		return nil
	}

	batch, err := s.conn.PrepareBatch(ctx, "INSERT INTO "+chQuote(s.table))
	if err != nil {
		return fmt.Errorf("prepare batch: %w", err)
	}
	for i := range records {
		row := rowValues(i, &records[i])
		row[0] = uint32(i)
		if err := batch.Append(row...); err != nil {
			batch.Abort()
			return fmt.Errorf("append row %d: %w", i, err)
		}
	}
	if err := batch.Send(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	return nil
}

func (s *ClickHouseStore) Ping(ctx context.Context) error {
	return s.conn.Ping(ctx)
}

func (s *ClickHouseStore) Close() error {
	return s.conn.Close()
}
