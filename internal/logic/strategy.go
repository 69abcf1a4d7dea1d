package logic

import "github.com/squadstats/wpi-api/internal/models"

// Coaching tip thresholds
const (
	tipHighAggression    = 2.0
	tipLowSurvivalAggro  = 1.0
	tipLowAggression     = 1.0
	tipLowSupport        = 0.6
	tipLowSurvival       = 0.9
	tipLowHeadshotRate   = 0.20
	tipLowDamagePerMatch = 700
	tipLowMovement       = 2000
)

// GenerateTips returns coaching tips for a player, most urgent first.
// The replay review tip is always last.
func GenerateTips(p *models.FeatureRow) []string {
	var tips []string

	if p.Metric("aggression_score") > tipHighAggression && p.Metric("survival_score") < tipLowSurvivalAggro {
		tips = append(tips, "You are too aggressive and die early. Take fights with cover, avoid ego peeks, and reset fights instead of pushing blindly.")
	}
	if p.Metric("aggression_score") < tipLowAggression {
		tips = append(tips, "Increase your aggression by taking 1-2 controlled fights per match, practicing recoil, and using shoulder-peeks.")
	}
	if p.Metric("support_score") < tipLowSupport {
		tips = append(tips, "Work on support: help with revives, call rotations, use more utility, and watch teammate health during fights.")
	}
	if p.Metric("survival_score") < tipLowSurvival {
		tips = append(tips, "Improve survival: avoid hot-drops, rotate early, play ridges, avoid open-field pushes, and keep 3 smokes at all times.")
	}
	if p.Metric("headshot_rate") < tipLowHeadshotRate {
		tips = append(tips, "Low headshot rate. Do flick drills for 10 minutes daily. Focus on burst tapping with 3x or 4x.")
	}
	if p.Metric("damage_per_match") < tipLowDamagePerMatch {
		tips = append(tips, "Increase damage through long-range taps, spraying vehicles, and taking more mid-range control positions.")
	}
	if p.Metric("movement_per_match") < tipLowMovement {
		tips = append(tips, "Move more between compounds, scout zones actively, and choose areas with natural third-party opportunities.")
	}

	tips = append(tips, "Review your gameplay replays weekly to fix peeking mistakes, slow reactions, and poor positioning in late zone.")
	return tips
}

// BarChart is the per-match rate series of a profile
func BarChart(p *models.FeatureRow) models.ChartSeries {
	return models.ChartSeries{
		Labels: []string{"Kills/Match", "Assists/Match", "Damage/Match", "Revives/Match"},
		Values: []float64{
			p.Metric("kills_per_match"),
			p.Metric("assists_per_match"),
			p.Metric("damage_per_match"),
			p.Metric("revives_per_match"),
		},
	}
}

// RadarChart is the composite score series of a profile
func RadarChart(p *models.FeatureRow) models.ChartSeries {
	return models.ChartSeries{
		Labels: []string{"Aggression", "Support", "Survival"},
		Values: []float64{
			p.Metric("aggression_score"),
			p.Metric("support_score"),
			p.Metric("survival_score"),
		},
	}
}
