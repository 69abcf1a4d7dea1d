package logic

import (
	"strings"
	"testing"

	"github.com/squadstats/wpi-api/internal/models"
)

func TestGenerateTips(t *testing.T) {
	tests := []struct {
		name     string
		row      models.FeatureRow
		wantLen  int
		wantHint string
	}{
		{
			name:     "zero row gets every weakness tip",
			row:      models.FeatureRow{},
			wantLen:  7,
			wantHint: "Increase your aggression",
		},
		{
			name: "reckless fragger",
			row: models.FeatureRow{
				AggressionScore: 3, SupportScore: 1, SurvivalScore: 0.5,
				HeadshotRate: 0.4, DamagePerMatch: 900, MovementPerMatch: 3000,
			},
			wantLen:  3,
			wantHint: "too aggressive",
		},
		{
			name: "all-rounder",
			row: models.FeatureRow{
				AggressionScore: 1.5, SupportScore: 1, SurvivalScore: 2,
				HeadshotRate: 0.3, DamagePerMatch: 800, MovementPerMatch: 2500,
			},
			wantLen:  1,
			wantHint: "Review your gameplay replays",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tips := GenerateTips(&tt.row)
			if len(tips) != tt.wantLen {
				t.Fatalf("got %d tips, want %d: %v", len(tips), tt.wantLen, tips)
			}
			if !strings.Contains(tips[0], tt.wantHint) {
				t.Errorf("first tip = %q, want it to mention %q", tips[0], tt.wantHint)
			}
			if !strings.HasPrefix(tips[len(tips)-1], "Review your gameplay replays") {
				t.Errorf("last tip = %q, want replay review", tips[len(tips)-1])
			}
		})
	}
}

func TestCharts(t *testing.T) {
	row := DefaultEngine.Compute(ace)
	bar := BarChart(&row)
	if len(bar.Labels) != len(bar.Values) || bar.Values[0] != row.KillsPerMatch {
		t.Errorf("bar chart = %+v", bar)
	}
	radar := RadarChart(&row)
	if radar.Labels[2] != "Survival" || radar.Values[2] != row.SurvivalScore {
		t.Errorf("radar chart = %+v", radar)
	}
}
