package store

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRedisStoreRoundTrip(t *testing.T) {
	client := newFakeRedis()
	s := NewRedisStore(client, RedisKey("players"))
	ctx := context.Background()

	want := sampleRecords()
	if err := s.SavePlayers(ctx, want); err != nil {
		t.Fatalf("SavePlayers() error = %v", err)
	}
	if n := len(client.lists["wpi:players"]); n != len(want) {
		t.Fatalf("list length = %d, want %d", n, len(want))
	}
	got, err := s.LoadPlayers(ctx)
	if err != nil {
		t.Fatalf("LoadPlayers() error = %v", err)
	}
	assertRecords(t, got, want)

	if err := s.SavePlayers(ctx, want[:1]); err != nil {
		t.Fatal(err)
	}
	got, _ = s.LoadPlayers(ctx)
	assertRecords(t, got, want[:1])

	if err := s.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}

func TestRedisStoreFailedExecKeepsTable(t *testing.T) {
	client := newFakeRedis()
	s := NewRedisStore(client, "k")
	ctx := context.Background()

	if err := s.SavePlayers(ctx, sampleRecords()); err != nil {
		t.Fatal(err)
	}
	client.execErr = errors.New("EXECABORT")
	if err := s.SavePlayers(ctx, nil); err == nil {
		t.Fatal("SavePlayers() want error")
	}
	got, _ := s.LoadPlayers(ctx)
	assertRecords(t, got, sampleRecords())
}

func TestRedisStoreBadJSON(t *testing.T) {
	client := newFakeRedis()
	client.lists["k"] = []string{"{not json"}
	if _, err := NewRedisStore(client, "k").LoadPlayers(context.Background()); err == nil {
		t.Error("LoadPlayers() want decode error")
	}
}

func TestClickHouseStoreRoundTrip(t *testing.T) {
	conn := &MockClickHouseConn{}
	s := NewClickHouseStore(conn, "players")
	ctx := context.Background()

	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatal(err)
	}
	want := sampleRecords()
	if err := s.SavePlayers(ctx, want); err != nil {
		t.Fatalf("SavePlayers() error = %v", err)
	}
	if len(conn.Execs) != 2 || !strings.HasPrefix(conn.Execs[1], "TRUNCATE TABLE") {
		t.Errorf("execs = %v", conn.Execs)
	}
	if ord, ok := conn.Stored[2][0].(uint32); !ok || ord != 2 {
		t.Errorf("ord column = %#v, want uint32(2)", conn.Stored[2][0])
	}

	got, err := s.LoadPlayers(ctx)
	if err != nil {
		t.Fatalf("LoadPlayers() error = %v", err)
	}
	assertRecords(t, got, want)
}

func TestClickHouseStoreSendError(t *testing.T) {
	conn := &MockClickHouseConn{SendErr: errors.New("too many parts")}
	err := NewClickHouseStore(conn, "players").SavePlayers(context.Background(), sampleRecords())
	if err == nil || !strings.Contains(err.Error(), "send batch") {
		t.Errorf("SavePlayers() error = %v, want send batch error", err)
	}
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	pg := &fakePg{}
	s := NewPostgresStore(pg, "players")
	ctx := context.Background()

	if err := s.EnsureSchema(ctx); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(pg.execs[0], `CREATE TABLE IF NOT EXISTS "players"`) {
		t.Errorf("schema = %s", pg.execs[0])
	}

	want := sampleRecords()
	if err := s.SavePlayers(ctx, want); err != nil {
		t.Fatalf("SavePlayers() error = %v", err)
	}
	got, err := s.LoadPlayers(ctx)
	if err != nil {
		t.Fatalf("LoadPlayers() error = %v", err)
	}
	assertRecords(t, got, want)
}

func TestPostgresStoreCopyErrorRollsBack(t *testing.T) {
	pg := &fakePg{}
	s := NewPostgresStore(pg, "players")
	ctx := context.Background()

	if err := s.SavePlayers(ctx, sampleRecords()); err != nil {
		t.Fatal(err)
	}
	pg.copyErr = errors.New("connection reset")
	if err := s.SavePlayers(ctx, nil); err == nil {
		t.Fatal("SavePlayers() want error")
	}
	got, _ := s.LoadPlayers(ctx)
	assertRecords(t, got, sampleRecords())
}
