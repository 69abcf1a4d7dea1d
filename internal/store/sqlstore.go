package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/squadstats/wpi-api/internal/models"
)

// Dialect describes one database/sql driver
type Dialect struct {
	Name        string
	Driver      string
	types       columnTypes
	quote       func(string) string
	placeholder func(i int) string
}

func ansiQuote(name string) string { return `"` + name + `"` }

func questionMark(int) string { return "?" }

var dialects = map[string]Dialect{
	"sqlite": {
		Name:        "sqlite",
		Driver:      "sqlite",
		types:       columnTypes{ord: "INTEGER", text: "TEXT", number: "REAL"},
		quote:       ansiQuote,
		placeholder: questionMark,
	},
	"mysql": {
		Name:        "mysql",
		Driver:      "mysql",
		types:       columnTypes{ord: "INT", text: "VARCHAR(255)", number: "DOUBLE"},
		quote:       func(name string) string { return "`" + name + "`" },
		placeholder: questionMark,
	},
	"postgres": {
		Name:        "postgres",
		Driver:      "postgres",
		types:       columnTypes{ord: "INTEGER", text: "TEXT", number: "DOUBLE PRECISION"},
		quote:       ansiQuote,
		placeholder: func(i int) string { return fmt.Sprintf("$%d", i) },
	},
}

// LookupDialect returns the dialect for a SQL_DRIVER value
func LookupDialect(name string) (Dialect, error) {
	d, ok := dialects[strings.ToLower(name)]
	if !ok {
		return Dialect{}, fmt.Errorf("unsupported sql driver %q", name)
	}
	return d, nil
}

// SQLStore keeps the player table in any database/sql backend
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	table   string
}

func NewSQLStore(db *sql.DB, dialect Dialect, table string) *SQLStore {
	return &SQLStore{db: db, dialect: dialect, table: table}
}

// OpenSQL opens a database/sql connection and creates the table if needed
func OpenSQL(ctx context.Context, driver, dsn, table string) (*SQLStore, error) {
	if err := ValidateTable(table); err != nil {
		return nil, err
	}
	d, err := LookupDialect(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Name, err)
	}
	if d.Name == "sqlite" {
		// every connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}
	s := NewSQLStore(db, d, table)
	if err := s.EnsureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) EnsureSchema(ctx context.Context) error {
	stmt := createTableSQL(s.table, s.dialect.quote, s.dialect.types, "")
	if _, err := s.db.ExecContext(ctx, stmt); err != nil {
		return fmt.Errorf("create table %s: %w", s.table, err)
	}
	return nil
}

func (s *SQLStore) LoadPlayers(ctx context.Context) ([]models.PlayerRecord, error) {
	rows, err := s.db.QueryContext(ctx, selectSQL(s.table, s.dialect.quote))
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

func (s *SQLStore) insertSQL() string {
	cols := insertColumns()
	marks := make([]string, len(cols))
	for i := range cols {
		marks[i] = s.dialect.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		s.dialect.quote(s.table),
		strings.Join(quoteAll(cols, s.dialect.quote), ", "),
		strings.Join(marks, ", "))
}

// SavePlayers replaces the table in one transaction
func (s *SQLStore) SavePlayers(ctx context.Context, records []models.PlayerRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+s.dialect.quote(s.table)); err != nil {
		return fmt.Errorf("clear %s: %w", s.table, err)
	}

	stmt, err := tx.PrepareContext(ctx, s.insertSQL())
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for i := range records {
		if _, err := stmt.ExecContext(ctx, rowValues(i, &records[i])...); err != nil {
			return fmt.Errorf("insert row %d: %w", i, err)
		}
	}
	return tx.Commit()
}

func (s *SQLStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
