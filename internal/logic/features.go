package logic

import "github.com/squadstats/wpi-api/internal/models"

// Epsilon is added to every rate denominator
const Epsilon = 1e-6

// Composite score weights
const (
	AggressionKillsWeight    = 2.5
	AggressionDamageDivisor  = 150.0
	AggressionHeadshotWeight = 1.5

	SupportAssistsWeight = 1.5
	SupportRevivesWeight = 2.0

	SurvivalTimeDivisor     = 5.0
	SurvivalMovementDivisor = 2000.0

	WPIAggressionWeight = 0.5
	WPISurvivalWeight   = 0.3
	WPISupportWeight    = 0.2
)

// AuctionValueFunc derives an auction value from a row whose rates and
// scores are already filled in.
type AuctionValueFunc func(row *models.FeatureRow) float64

// SyntheticAuctionValue is a stand-in label used until real auction
// prices exist. A model prediction replaces it in the profile view.
func SyntheticAuctionValue(row *models.FeatureRow) float64 {
	return (50*row.WPI +
		2*row.KillsPerMatch +
		row.AssistsPerMatch +
		row.DamagePerMatch/100.0) * 10
}

// Engine turns player records into feature rows. The zero value uses
// Epsilon and SyntheticAuctionValue.
type Engine struct {
	Epsilon      float64
	AuctionValue AuctionValueFunc
}

// DefaultEngine is the engine used by AddFeatures
var DefaultEngine = Engine{
	Epsilon:      Epsilon,
	AuctionValue: SyntheticAuctionValue,
}

// AddFeatures computes a feature row for every record, in table order
func AddFeatures(records []models.PlayerRecord) []models.FeatureRow {
	return DefaultEngine.AddFeatures(records)
}

// AddFeatures computes a feature row for every record, in table order
func (e Engine) AddFeatures(records []models.PlayerRecord) []models.FeatureRow {
	rows := make([]models.FeatureRow, len(records))
	for i := range records {
		rows[i] = e.Compute(records[i])
	}
	return rows
}

// Compute derives one feature row. matches_played of 0 is floored to 1, so
// a zero-match player's rates equal their totals.
func (e Engine) Compute(rec models.PlayerRecord) models.FeatureRow {
	if rec.MatchesPlayed == 0 {
		rec.MatchesPlayed = 1
	}
	eps := e.Epsilon
	if eps <= 0 {
		eps = Epsilon
	}
	matches := rec.MatchesPlayed + eps

	row := models.FeatureRow{PlayerRecord: rec}
	row.KillsPerMatch = rec.Kills / matches
	row.AssistsPerMatch = rec.Assists / matches
	row.DamagePerMatch = rec.Damage / matches
	row.RevivesPerMatch = rec.Revives / matches
	row.SurvivalPerMatch = rec.SurvivalTime / matches
	row.MovementPerMatch = rec.Distance / matches
	row.HeadshotRate = rec.Headshots / (rec.Kills + eps)

	row.AggressionScore = AggressionKillsWeight*row.KillsPerMatch +
		row.DamagePerMatch/AggressionDamageDivisor +
		AggressionHeadshotWeight*row.HeadshotRate
	row.SupportScore = SupportAssistsWeight*row.AssistsPerMatch +
		SupportRevivesWeight*row.RevivesPerMatch
	row.SurvivalScore = row.SurvivalPerMatch/SurvivalTimeDivisor +
		row.MovementPerMatch/SurvivalMovementDivisor

	row.WPI = WPIAggressionWeight*row.AggressionScore +
		WPISurvivalWeight*row.SurvivalScore +
		WPISupportWeight*row.SupportScore

	auction := e.AuctionValue
	if auction == nil {
		auction = SyntheticAuctionValue
	}
	row.AuctionValue = auction(&row)
	return row
}

// FeaturesForModel is the default model input, used when model metadata
// does not list its own features.
var FeaturesForModel = []string{
	// raw
	"matches_played", "kills", "assists", "damage", "headshots", "revives",
	"survival_time", "distance",
	// engineered
	"kills_per_match", "assists_per_match", "damage_per_match", "headshot_rate",
	"revives_per_match", "survival_per_match", "movement_per_match",
	"aggression_score", "support_score", "survival_score", "wpi",
}
