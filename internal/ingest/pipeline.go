// Package ingest turns raw stats exports into the processed player table.
// Files are read and parsed concurrently; clipping runs once over the
// combined table so percentile bounds see every row.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/squadstats/wpi-api/internal/logic"
	"github.com/squadstats/wpi-api/internal/models"
	"github.com/squadstats/wpi-api/internal/store"
)

// Prometheus metrics
var (
	filesRead = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wpi_ingest_files_total",
		Help: "Total number of raw files read",
	})

	rowsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wpi_ingest_rows_total",
		Help: "Total number of player rows written",
	})

	ingestFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wpi_ingest_failures_total",
		Help: "Total number of failed ingest runs",
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wpi_ingest_run_duration_seconds",
		Help:    "Duration of ingest runs",
		Buckets: prometheus.DefBuckets,
	})
)

// ErrNoInput is returned when Run is given no files
var ErrNoInput = errors.New("no input files")

// Reader loads one raw export
type Reader func(path string) (logic.RawTable, error)

// PipelineConfig configures an ingest pipeline
type PipelineConfig struct {
	Workers int
	Writer  logic.PlayerWriter // nil runs without persisting
	Read    Reader
	Logger  *zap.Logger
}

// Report summarizes one run
type Report struct {
	RunID    string                `json:"run_id"`
	Files    int                   `json:"files"`
	Rows     int                   `json:"rows"`
	Bounds   map[string]float64    `json:"clip_bounds"`
	Duration time.Duration         `json:"duration"`
	Records  []models.PlayerRecord `json:"-"`
}

// Pipeline reads, cleans and stores raw exports
type Pipeline struct {
	config PipelineConfig
	logger *zap.SugaredLogger
}

// NewPipeline creates a pipeline. Workers defaults to 4 and Read to
// store.ReadRawFile.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Read == nil {
		cfg.Read = store.ReadRawFile
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Pipeline{config: cfg, logger: cfg.Logger.Sugar()}
}

// Run ingests paths as one table, in argument order. Any unreadable file
// or row without an identifier aborts the run before anything is written.
func (p *Pipeline) Run(ctx context.Context, paths []string) (*Report, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := p.logger.With("run", runID)

	report, err := p.run(ctx, log, paths)
	runDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		ingestFailures.Inc()
		log.Errorw("Ingest failed", "files", len(paths), "error", err)
		return nil, err
	}

	report.RunID = runID
	report.Duration = time.Since(start)
	log.Infow("Ingest complete",
		"files", report.Files,
		"rows", report.Rows,
		"duration", report.Duration,
	)
	return report, nil
}

func (p *Pipeline) run(ctx context.Context, log *zap.SugaredLogger, paths []string) (*Report, error) {
	if len(paths) == 0 {
		return nil, ErrNoInput
	}
	log.Infow("Ingest started", "files", len(paths), "workers", p.config.Workers)

	parsed := make([][]models.PlayerRecord, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.config.Workers)

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			table, err := p.config.Read(path)
			if err != nil {
				return fmt.Errorf("read %s: %w", path, err)
			}
			records, err := logic.ParseRecords(table)
			if err != nil {
				return fmt.Errorf("parse %s: %w", path, err)
			}
			parsed[i] = records
			filesRead.Inc()
			log.Debugw("File parsed", "path", path, "rows", len(records))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []models.PlayerRecord
	for _, records := range parsed {
		all = append(all, records...)
	}
	bounds := logic.ClipOutliers(all)

	if p.config.Writer != nil {
		if err := p.config.Writer.SavePlayers(ctx, all); err != nil {
			return nil, fmt.Errorf("save players: %w", err)
		}
		rowsIngested.Add(float64(len(all)))
	}

	return &Report{
		Files:   len(paths),
		Rows:    len(all),
		Bounds:  bounds,
		Records: all,
	}, nil
}
