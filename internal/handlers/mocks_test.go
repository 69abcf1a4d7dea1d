package handlers

import (
	"context"

	"github.com/squadstats/wpi-api/internal/models"
)

type MockPlayerStatsService struct {
	GetFeatureTableFunc func(ctx context.Context) ([]models.FeatureRow, error)
	GetProfileFunc      func(ctx context.Context, name string) (*models.PlayerProfile, error)
	GetLeaderboardFunc  func(ctx context.Context) ([]models.LeaderboardEntry, error)
	CompareFunc         func(ctx context.Context, name1, name2 string) (*models.Comparison, error)
}

func (m *MockPlayerStatsService) GetFeatureTable(ctx context.Context) ([]models.FeatureRow, error) {
	if m.GetFeatureTableFunc != nil {
		return m.GetFeatureTableFunc(ctx)
	}
	return nil, nil
}

func (m *MockPlayerStatsService) GetProfile(ctx context.Context, name string) (*models.PlayerProfile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, name)
	}
	return &models.PlayerProfile{}, nil
}

func (m *MockPlayerStatsService) GetLeaderboard(ctx context.Context) ([]models.LeaderboardEntry, error) {
	if m.GetLeaderboardFunc != nil {
		return m.GetLeaderboardFunc(ctx)
	}
	return nil, nil
}

func (m *MockPlayerStatsService) Compare(ctx context.Context, name1, name2 string) (*models.Comparison, error) {
	if m.CompareFunc != nil {
		return m.CompareFunc(ctx, name1, name2)
	}
	return &models.Comparison{P1: name1, P2: name2, Stats: []models.ComparisonStat{}}, nil
}

type MockPredictionService struct {
	PredictFunc func(values map[string]float64) (float64, error)
	MetaValue   models.ModelMeta
}

func (m *MockPredictionService) Predict(values map[string]float64) (float64, error) {
	if m.PredictFunc != nil {
		return m.PredictFunc(values)
	}
	return 0, nil
}

func (m *MockPredictionService) Meta() models.ModelMeta { return m.MetaValue }

type MockPinger struct {
	Err error
}

func (m *MockPinger) Ping(ctx context.Context) error { return m.Err }
