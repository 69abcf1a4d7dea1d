package models

import "time"

// ModelMetrics are the hold-out accuracy figures recorded at training time
type ModelMetrics struct {
	MAE  float64 `json:"mae"`
	RMSE float64 `json:"rmse"`
	R2   float64 `json:"r2"`
}

// ModelMeta is the sidecar descriptor stored next to a trained model
type ModelMeta struct {
	Features  []string     `json:"features"`
	Metrics   ModelMetrics `json:"metrics"`
	Model     string       `json:"model"` // selected model family
	Alpha     float64      `json:"alpha,omitempty"`
	Rows      int          `json:"rows,omitempty"`
	TrainedAt time.Time    `json:"trained_at,omitempty"`
}

// PredictionResult is the response of the predict endpoint
type PredictionResult struct {
	Prediction float64 `json:"prediction"`
	Source     string  `json:"source"` // "model" or "synthetic"
	Model      string  `json:"model,omitempty"`
}
