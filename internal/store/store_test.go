package store

import (
	"strings"
	"testing"

	"github.com/squadstats/wpi-api/internal/models"
)

func sampleRecords() []models.PlayerRecord {
	return []models.PlayerRecord{
		{PlayerID: "zed", PlayerName: "Zed", MatchesPlayed: 10, Kills: 30, Deaths: 8, Assists: 10, Damage: 3000.5,
			Headshots: 9, Wins: 2, Top10s: 6, Revives: 5, Distance: 20000, WeaponsUsed: 7, SurvivalTime: 1800, Rank: 3},
		{PlayerID: "amy", PlayerName: "Amy", MatchesPlayed: 1, Kills: 0.25},
		{PlayerID: "bob_the_builder", PlayerName: "Bob the Builder", Damage: 12},
	}
}

func assertRecords(t *testing.T, got, want []models.PlayerRecord) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestValidateTable(t *testing.T) {
	for _, ok := range []string{"players", "_p2", "Players_2025"} {
		if err := ValidateTable(ok); err != nil {
			t.Errorf("ValidateTable(%q) error = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "2players", "players; DROP TABLE x", "a-b", `p"`} {
		if err := ValidateTable(bad); err == nil {
			t.Errorf("ValidateTable(%q) want error", bad)
		}
	}
}

func TestRowValuesOrder(t *testing.T) {
	recs := sampleRecords()
	row := rowValues(4, &recs[0])
	cols := insertColumns()
	if len(row) != len(cols) {
		t.Fatalf("%d values for %d columns", len(row), len(cols))
	}
	if row[0] != 4 || row[1] != "zed" || row[2] != "Zed" {
		t.Errorf("leading values = %v", row[:3])
	}
	if row[3] != 10.0 {
		t.Errorf("matches_played = %v", row[3])
	}
}

func TestScanTargetRoundTrip(t *testing.T) {
	recs := sampleRecords()
	row := rowValues(0, &recs[0])

	target := newScanTarget()
	for i, d := range target.dest() {
		switch p := d.(type) {
		case *string:
			*p = row[i+1].(string)
		case *float64:
			*p = row[i+1].(float64)
		}
	}
	if got := target.record(); got != recs[0] {
		t.Errorf("record() = %+v, want %+v", got, recs[0])
	}
}

func TestCreateTableSQL(t *testing.T) {
	stmt := createTableSQL("players", chQuote, clickhouseTypes, "ENGINE = MergeTree ORDER BY `ord`")
	for _, want := range []string{"CREATE TABLE IF NOT EXISTS `players`", "`ord` UInt32 NOT NULL", "`survival_time` Float64", "ENGINE = MergeTree"} {
		if !strings.Contains(stmt, want) {
			t.Errorf("statement missing %q:\n%s", want, stmt)
		}
	}
}

