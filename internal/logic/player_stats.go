package logic

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/squadstats/wpi-api/internal/models"
)

type playerStatsService struct {
	store      PlayerStore
	prediction PredictionService
	logger     *zap.SugaredLogger
}

// NewPlayerStatsService builds the read side over a player store. prediction
// may be nil, in which case profiles carry the synthetic auction value.
func NewPlayerStatsService(store PlayerStore, prediction PredictionService, logger *zap.Logger) PlayerStatsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &playerStatsService{
		store:      store,
		prediction: prediction,
		logger:     logger.Sugar(),
	}
}

// GetFeatureTable loads the processed table and derives every feature.
// The table is read on each call so a fresh ingest is picked up without a
// restart.
func (s *playerStatsService) GetFeatureTable(ctx context.Context) ([]models.FeatureRow, error) {
	start := time.Now()
	records, err := s.store.LoadPlayers(ctx)
	if err != nil {
		return nil, fmt.Errorf("load players: %w", err)
	}
	rows := AddFeatures(records)
	tableLoadDuration.Observe(time.Since(start).Seconds())
	return rows, nil
}

func (s *playerStatsService) GetProfile(ctx context.Context, name string) (*models.PlayerProfile, error) {
	rows, err := s.GetFeatureTable(ctx)
	if err != nil {
		return nil, err
	}
	row, err := FindByName(rows, name)
	if err != nil {
		return nil, err
	}

	profile := &models.PlayerProfile{
		Player:       *row,
		AuctionValue: row.AuctionValue,
	}

	if s.prediction != nil {
		res, err := Estimate(s.prediction, models.PredictRequestFromRow(row).Values())
		if err != nil {
			s.logger.Warnw("Model prediction failed, using synthetic value", "player", row.PlayerName, "error", err)
		} else {
			v := res.Prediction
			profile.Prediction = &v
			profile.AuctionValue = v
			profile.Player.AuctionValue = v
		}
	}

	profile.BarChart = BarChart(&profile.Player)
	profile.RadarChart = RadarChart(&profile.Player)
	profile.Tips = GenerateTips(&profile.Player)
	return profile, nil
}

func (s *playerStatsService) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	rows, err := s.GetFeatureTable(ctx)
	if err != nil {
		return nil, err
	}
	return BuildLeaderboard(Rank(rows)), nil
}

// Compare returns an empty comparison when either name is blank
func (s *playerStatsService) Compare(ctx context.Context, name1, name2 string) (*models.Comparison, error) {
	if name1 == "" || name2 == "" {
		return &models.Comparison{P1: name1, P2: name2, Stats: []models.ComparisonStat{}}, nil
	}
	rows, err := s.GetFeatureTable(ctx)
	if err != nil {
		return nil, err
	}
	r1, r2, err := Compare(rows, name1, name2)
	if err != nil {
		return nil, err
	}
	return BuildComparison(name1, name2, r1, r2), nil
}
