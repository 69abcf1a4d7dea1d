package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/squadstats/wpi-api/internal/config"
	"github.com/squadstats/wpi-api/internal/logging"
	"github.com/squadstats/wpi-api/internal/logic"
	"github.com/squadstats/wpi-api/internal/store"
)

var (
	envFile string

	cfg    *config.Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "wpi",
	Short:         "Player performance index service",
	Long:          "Serve, ingest and train the weighted performance index and auction value model.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Values in the env file win over the process environment
		if err := godotenv.Overload(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", envFile, err)
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger, err = logging.New(cfg.Env, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("build logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			logger.Sync()
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before the environment is read")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(playerCmd)
}

// loadPrediction loads the model artifacts. A missing model is logged and
// reported as nil so callers fall back to the synthetic value.
func loadPrediction() logic.PredictionService {
	pred, err := logic.LoadPredictionService(cfg.ModelPath, cfg.ModelMetaPath)
	if err != nil {
		logger.Sugar().Warnw("Model not loaded, using synthetic auction values", "error", err)
		return nil
	}
	return pred
}

// openService opens the configured store and wraps it in a stats service.
// The returned store must be closed by the caller.
func openService(ctx context.Context) (logic.PlayerStatsService, store.Store, error) {
	st, err := store.Open(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return logic.NewPlayerStatsService(st, loadPrediction(), logger), st, nil
}
