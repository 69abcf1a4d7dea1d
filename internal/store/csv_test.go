package store

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadRawTable(t *testing.T) {
	in := "\ufeffPlayer_Name,Kills,Damage_Dealt\nAce,30,3000\nShort,1\n"
	table, err := ReadRawTable(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ReadRawTable() error = %v", err)
	}
	if table.Header[0] != "Player_Name" {
		t.Errorf("header[0] = %q, want BOM stripped", table.Header[0])
	}
	if len(table.Rows) != 2 || len(table.Rows[1]) != 2 {
		t.Errorf("rows = %v", table.Rows)
	}
}

func TestReadRawTableEmpty(t *testing.T) {
	if _, err := ReadRawTable(strings.NewReader("")); err == nil {
		t.Error("ReadRawTable(empty) want error")
	}
}

func TestCSVStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed", "players.csv")
	s := NewCSVStore(path)
	ctx := context.Background()

	if err := s.Ping(ctx); err == nil {
		t.Error("Ping() before the file exists want error")
	}
	want := sampleRecords()
	if err := s.SavePlayers(ctx, want); err != nil {
		t.Fatalf("SavePlayers() error = %v", err)
	}
	if err := s.Ping(ctx); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
	got, err := s.LoadPlayers(ctx)
	if err != nil {
		t.Fatalf("LoadPlayers() error = %v", err)
	}
	assertRecords(t, got, want)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "player_id,player_name,matches_played,") {
		t.Errorf("header = %q", strings.SplitN(string(data), "\n", 2)[0])
	}
}

func TestCSVStoreLoadDoesNotClip(t *testing.T) {
	var b strings.Builder
	b.WriteString("player_id,player_name,kills\n")
	for i := 0; i < 300; i++ {
		b.WriteString("p,P,1\n")
	}
	b.WriteString("big,Big,100000\n")
	path := filepath.Join(t.TempDir(), "players.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := NewCSVStore(path).LoadPlayers(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got[len(got)-1].Kills != 100000 {
		t.Errorf("kills = %v, want stored value untouched", got[len(got)-1].Kills)
	}
}
