package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/squadstats/wpi-api/internal/models"
)

func TestParseValues(t *testing.T) {
	got, err := parseValues([]string{"Kills=30", "damage= 3000.5 ", "walk_distance=abc"})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]float64{"kills": 30, "damage": 3000.5, "walk_distance": 0}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %v, want %v", k, got[k], v)
		}
	}

	for _, bad := range []string{"kills", "=3"} {
		if _, err := parseValues([]string{bad}); err == nil {
			t.Errorf("parseValues(%q) should fail", bad)
		}
	}
}

func TestWriteProfile(t *testing.T) {
	pred := 512.35
	p := &models.PlayerProfile{
		Player:       models.FeatureRow{PlayerRecord: models.PlayerRecord{PlayerName: "Ace"}, WPI: 3.5},
		Prediction:   &pred,
		AuctionValue: pred,
		BarChart:     models.ChartSeries{Labels: []string{"Kills/Match"}, Values: []float64{3}},
		RadarChart:   models.ChartSeries{Labels: []string{"Support"}, Values: []float64{1.25}},
		Tips:         []string{"Review your replays."},
	}

	var buf bytes.Buffer
	writeProfile(&buf, p)
	out := buf.String()
	for _, want := range []string{"Ace", "512.35 (model)", "Kills/Match", "1.25", "- Review your replays."} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteComparison(t *testing.T) {
	var buf bytes.Buffer
	writeComparison(&buf, &models.Comparison{
		P1:    "Ace",
		P2:    "Bob",
		Stats: []models.ComparisonStat{{Name: "wpi", Player1: 3.5, Player2: 1.25}},
	})
	out := buf.String()
	for _, want := range []string{"wpi", "3.50", "1.25"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
