package logic

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/squadstats/wpi-api/internal/models"
)

// Regressor is a trained model over an ordered feature vector
type Regressor interface {
	Predict(x []float64) (float64, error)
}

// ModelUnavailableError means the model artifact or its metadata could not
// be loaded. Callers fall back to the synthetic auction value.
type ModelUnavailableError struct {
	Path string
	Err  error
}

func (e *ModelUnavailableError) Error() string {
	return fmt.Sprintf("model unavailable (%s): %v", e.Path, e.Err)
}

func (e *ModelUnavailableError) Unwrap() error {
	return e.Err
}

type predictor struct {
	model    Regressor
	meta     models.ModelMeta
	features []string
	engine   Engine
}

// NewPredictionService wraps a loaded regressor. The feature order comes
// from meta; FeaturesForModel is used when meta lists none.
func NewPredictionService(model Regressor, meta models.ModelMeta) PredictionService {
	features := meta.Features
	if len(features) == 0 {
		features = FeaturesForModel
		meta.Features = features
	}
	return &predictor{
		model:    model,
		meta:     meta,
		features: features,
		engine:   DefaultEngine,
	}
}

// LoadPredictionService reads a model artifact and its metadata sidecar
func LoadPredictionService(modelPath, metaPath string) (PredictionService, error) {
	data, err := os.ReadFile(modelPath)
	if err != nil {
		return nil, &ModelUnavailableError{Path: modelPath, Err: err}
	}
	var model LinearModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, &ModelUnavailableError{Path: modelPath, Err: err}
	}
	if model.Family != FamilyRidge {
		return nil, &ModelUnavailableError{Path: modelPath, Err: fmt.Errorf("unsupported model family %q", model.Family)}
	}

	data, err = os.ReadFile(metaPath)
	if err != nil {
		return nil, &ModelUnavailableError{Path: metaPath, Err: err}
	}
	var meta models.ModelMeta
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, &ModelUnavailableError{Path: metaPath, Err: err}
	}

	return NewPredictionService(&model, meta), nil
}

// Predict runs one raw record through the feature engine and the model.
// The result is not rounded.
func (p *predictor) Predict(values map[string]float64) (float64, error) {
	rec := RecordFromValues("", values)
	rows := p.engine.AddFeatures([]models.PlayerRecord{rec})

	x, err := rows[0].Vector(p.features)
	if err != nil {
		return 0, fmt.Errorf("select features: %w", err)
	}
	y, err := p.model.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("predict: %w", err)
	}
	return y, nil
}

func (p *predictor) Meta() models.ModelMeta {
	return p.meta
}

// Prediction sources reported in PredictionResult.Source
const (
	SourceModel     = "model"
	SourceSynthetic = "synthetic"
)

// Estimate returns the model prediction rounded to 2 decimals, or the
// synthetic auction value when pred is nil or fails. A model failure is
// returned alongside the fallback result so the caller can log it.
func Estimate(pred PredictionService, values map[string]float64) (models.PredictionResult, error) {
	if pred != nil {
		y, err := pred.Predict(values)
		if err == nil {
			predictionsTotal.WithLabelValues(SourceModel).Inc()
			return models.PredictionResult{
				Prediction: Round2(y),
				Source:     SourceModel,
				Model:      pred.Meta().Model,
			}, nil
		}
		predictionErrors.Inc()
		predictionsTotal.WithLabelValues(SourceSynthetic).Inc()
		return syntheticResult(values), err
	}
	predictionsTotal.WithLabelValues(SourceSynthetic).Inc()
	return syntheticResult(values), nil
}

func syntheticResult(values map[string]float64) models.PredictionResult {
	row := DefaultEngine.Compute(RecordFromValues("", values))
	return models.PredictionResult{
		Prediction: Round2(row.AuctionValue),
		Source:     SourceSynthetic,
	}
}
