package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/redis/go-redis/v9"
)

// assign copies row values into scan destinations, skipping the ord column
func assign(dest []any, row []any) error {
	values := row[1:]
	if len(dest) != len(values) {
		return fmt.Errorf("scan: %d dest for %d values", len(dest), len(values))
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = values[i].(string)
		case *float64:
			*p = values[i].(float64)
		default:
			return fmt.Errorf("scan: unsupported dest %T", d)
		}
	}
	return nil
}

// fakeRedis implements RedisClient over in-memory lists
type fakeRedis struct {
	lists   map[string][]string
	execErr error
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{lists: make(map[string][]string)}
}

func (f *fakeRedis) LRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	return redis.NewStringSliceResult(append([]string(nil), f.lists[key]...), nil)
}

func (f *fakeRedis) TxPipelined(ctx context.Context, fn func(redis.Pipeliner) error) ([]redis.Cmder, error) {
	staged := make(map[string][]string, len(f.lists))
	for k, v := range f.lists {
		staged[k] = append([]string(nil), v...)
	}
	pipe := &fakePipeliner{lists: staged}
	if err := fn(pipe); err != nil {
		return nil, err
	}
	if f.execErr != nil {
		return nil, f.execErr
	}
	f.lists = staged
	return nil, nil
}

func (f *fakeRedis) Ping(ctx context.Context) *redis.StatusCmd {
	return redis.NewStatusResult("PONG", nil)
}

type fakePipeliner struct {
	redis.Pipeliner
	lists map[string][]string
}

func (p *fakePipeliner) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	for _, k := range keys {
		delete(p.lists, k)
	}
	return redis.NewIntResult(int64(len(keys)), nil)
}

func (p *fakePipeliner) RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd {
	for _, v := range values {
		p.lists[key] = append(p.lists[key], fmt.Sprint(v))
	}
	return redis.NewIntResult(int64(len(p.lists[key])), nil)
}

// MockClickHouseConn implements driver.Conn for testing
type MockClickHouseConn struct {
	driver.Conn
	Execs   []string
	Stored  [][]any
	SendErr error
}

func (m *MockClickHouseConn) Exec(ctx context.Context, query string, args ...any) error {
	m.Execs = append(m.Execs, query)
	return nil
}

func (m *MockClickHouseConn) Query(ctx context.Context, query string, args ...any) (driver.Rows, error) {
	return &MockCHRows{Data: m.Stored}, nil
}

func (m *MockClickHouseConn) PrepareBatch(ctx context.Context, query string, opts ...driver.PrepareBatchOption) (driver.Batch, error) {
	m.Stored = nil
	return &MockBatch{conn: m}, nil
}

func (m *MockClickHouseConn) Ping(ctx context.Context) error { return nil }

type MockBatch struct {
	driver.Batch
	conn    *MockClickHouseConn
	pending [][]any
}

func (b *MockBatch) Append(v ...any) error {
	b.pending = append(b.pending, v)
	return nil
}

func (b *MockBatch) Send() error {
	if b.conn.SendErr != nil {
		return b.conn.SendErr
	}
	b.conn.Stored = b.pending
	return nil
}

func (b *MockBatch) Abort() error { return nil }

type MockCHRows struct {
	driver.Rows
	Data  [][]any
	Index int
}

func (m *MockCHRows) Next() bool {
	m.Index++
	return m.Index <= len(m.Data)
}

func (m *MockCHRows) Scan(dest ...any) error {
	return assign(dest, m.Data[m.Index-1])
}

func (m *MockCHRows) Close() error { return nil }
func (m *MockCHRows) Err() error   { return nil }

// fakePg implements PgxConn with a single in-memory table
type fakePg struct {
	rows    [][]any
	execs   []string
	copyErr error
}

func (f *fakePg) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return pgconn.CommandTag{}, nil
}

func (f *fakePg) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return &fakePgRows{data: f.rows}, nil
}

func (f *fakePg) Begin(ctx context.Context) (pgx.Tx, error) {
	return &fakeTx{pg: f}, nil
}

func (f *fakePg) Ping(ctx context.Context) error { return nil }

type fakeTx struct {
	pgx.Tx
	pg        *fakePg
	staged    [][]any
	truncated bool
	done      bool
}

func (tx *fakeTx) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	tx.pg.execs = append(tx.pg.execs, sql)
	tx.truncated = true
	return pgconn.CommandTag{}, nil
}

func (tx *fakeTx) CopyFrom(ctx context.Context, table pgx.Identifier, columns []string, src pgx.CopyFromSource) (int64, error) {
	if tx.pg.copyErr != nil {
		return 0, tx.pg.copyErr
	}
	var n int64
	for src.Next() {
		v, err := src.Values()
		if err != nil {
			return n, err
		}
		tx.staged = append(tx.staged, v)
		n++
	}
	return n, src.Err()
}

func (tx *fakeTx) Commit(ctx context.Context) error {
	if tx.done {
		return errors.New("tx closed")
	}
	tx.done = true
	if tx.truncated {
		tx.pg.rows = tx.staged
	}
	return nil
}

func (tx *fakeTx) Rollback(ctx context.Context) error {
	tx.done = true
	return nil
}

type fakePgRows struct {
	pgx.Rows
	data  [][]any
	index int
}

func (r *fakePgRows) Next() bool {
	r.index++
	return r.index <= len(r.data)
}

func (r *fakePgRows) Scan(dest ...any) error {
	return assign(dest, r.data[r.index-1])
}

func (r *fakePgRows) Close()     {}
func (r *fakePgRows) Err() error { return nil }
