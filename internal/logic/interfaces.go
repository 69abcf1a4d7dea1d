package logic

import (
	"context"

	"github.com/squadstats/wpi-api/internal/models"
)

// PlayerStore loads the processed player table
type PlayerStore interface {
	LoadPlayers(ctx context.Context) ([]models.PlayerRecord, error)
}

// PlayerWriter replaces the processed player table, preserving row order
type PlayerWriter interface {
	SavePlayers(ctx context.Context, records []models.PlayerRecord) error
}

// Pinger is implemented by stores that can report their health
type Pinger interface {
	Ping(ctx context.Context) error
}

// PredictionService estimates an auction value from one raw record
type PredictionService interface {
	Predict(values map[string]float64) (float64, error)
	Meta() models.ModelMeta
}

// PlayerStatsService serves the derived views of the player table
type PlayerStatsService interface {
	GetFeatureTable(ctx context.Context) ([]models.FeatureRow, error)
	GetProfile(ctx context.Context, name string) (*models.PlayerProfile, error)
	GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error)
	Compare(ctx context.Context, name1, name2 string) (*models.Comparison, error)
}
