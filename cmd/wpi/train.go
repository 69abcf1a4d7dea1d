package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/squadstats/wpi-api/internal/logic"
	"github.com/squadstats/wpi-api/internal/store"
	"github.com/squadstats/wpi-api/internal/training"
)

var (
	trainModelPath string
	trainMetaPath  string
	trainSeed      int64
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Fit the auction value model from the processed table",
	Args:  cobra.NoArgs,
	RunE:  runTrain,
}

func init() {
	trainCmd.Flags().StringVar(&trainModelPath, "model", "", "model artifact path (default MODEL_PATH)")
	trainCmd.Flags().StringVar(&trainMetaPath, "meta", "", "metadata path (default MODEL_META_PATH)")
	trainCmd.Flags().Int64Var(&trainSeed, "seed", training.DefaultOptions().Seed, "shuffle seed for the hold-out split")
}

func runTrain(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if trainModelPath == "" {
		trainModelPath = cfg.ModelPath
	}
	if trainMetaPath == "" {
		trainMetaPath = cfg.ModelMetaPath
	}

	st, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.LoadPlayers(ctx)
	if err != nil {
		return fmt.Errorf("load players: %w", err)
	}

	opts := training.DefaultOptions()
	opts.Seed = trainSeed
	opts.Logger = logger
	res, err := training.Train(logic.DefaultEngine.AddFeatures(records), opts)
	if err != nil {
		return err
	}

	for _, p := range []string{trainModelPath, trainMetaPath} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return err
		}
	}
	if err := logic.SaveModel(trainModelPath, res.Model); err != nil {
		return fmt.Errorf("save model: %w", err)
	}
	if err := logic.SaveMeta(trainMetaPath, res.Meta); err != nil {
		return fmt.Errorf("save meta: %w", err)
	}

	table := newTable(os.Stdout)
	table.Header("ALPHA", "CV R2", "MAE", "RMSE", "R2", "ROWS")
	table.Append(
		fmt.Sprintf("%g", res.Meta.Alpha),
		fmt.Sprintf("%.4f", res.CVScore),
		fmt.Sprintf("%.2f", res.Meta.Metrics.MAE),
		fmt.Sprintf("%.2f", res.Meta.Metrics.RMSE),
		fmt.Sprintf("%.4f", res.Meta.Metrics.R2),
		res.Meta.Rows,
	)
	table.Render()
	fmt.Fprintf(os.Stdout, "\nSaved %s and %s\n", trainModelPath, trainMetaPath)
	return nil
}
