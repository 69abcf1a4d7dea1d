package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/squadstats/wpi-api/internal/ingest"
	"github.com/squadstats/wpi-api/internal/logic"
	"github.com/squadstats/wpi-api/internal/store"
)

var (
	ingestWorkers int
	ingestDryRun  bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest <raw.csv> [<raw.csv>...]",
	Short: "Clean raw stats exports into the processed player table",
	Long: `Read one or more raw CSV exports, normalize their columns, clip outliers
over the combined table and replace the processed table in the configured store.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIngest,
}

func init() {
	ingestCmd.Flags().IntVar(&ingestWorkers, "workers", 0, "files read in parallel (default INGEST_WORKERS)")
	ingestCmd.Flags().BoolVar(&ingestDryRun, "dry-run", false, "parse and clip without writing")
}

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	workers := ingestWorkers
	if workers <= 0 {
		workers = cfg.IngestWorkers
	}

	var writer logic.PlayerWriter
	if !ingestDryRun {
		st, err := store.Open(ctx, cfg)
		if err != nil {
			return err
		}
		defer st.Close()
		writer = st
	}

	report, err := ingest.NewPipeline(ingest.PipelineConfig{
		Workers: workers,
		Writer:  writer,
		Logger:  logger,
	}).Run(ctx, args)
	if err != nil {
		return err
	}

	fields := make([]string, 0, len(report.Bounds))
	for f := range report.Bounds {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	table := newTable(os.Stdout)
	table.Header("FIELD", "UPPER BOUND")
	for _, f := range fields {
		table.Append(f, fmt.Sprintf("%.2f", report.Bounds[f]))
	}
	table.Render()
	fmt.Fprintf(os.Stdout, "\n%d rows from %d files (run %s)\n", report.Rows, report.Files, report.RunID)
	return nil
}
