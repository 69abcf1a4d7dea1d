package handlers

import (
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/squadstats/wpi-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 1MB
const MaxBodySize = 1048576

type Config struct {
	Store       logic.Pinger // readiness probe; nil skips the check
	PlayerStats logic.PlayerStatsService
	Prediction  logic.PredictionService // nil when no model is loaded
	Logger      *zap.Logger
}

type Handler struct {
	store       logic.Pinger
	playerStats logic.PlayerStatsService
	prediction  logic.PredictionService
	logger      *zap.SugaredLogger
	validator   *validator.Validate
}

func New(cfg Config) *Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Handler{
		store:       cfg.Store,
		playerStats: cfg.PlayerStats,
		prediction:  cfg.Prediction,
		logger:      cfg.Logger.Sugar(),
		validator:   validator.New(),
	}
}
