package logic

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/squadstats/wpi-api/internal/models"
)

func linearData(n int) ([][]float64, []float64) {
	x := make([][]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		a := float64(i)
		b := float64((i * i) % 7)
		x[i] = []float64{a, b}
		y[i] = 3*a + 2*b + 5
	}
	return x, y
}

func TestFitRidgeRecoversLinear(t *testing.T) {
	x, y := linearData(40)
	m, err := FitRidge(x, y, 1e-6)
	if err != nil {
		t.Fatalf("FitRidge() error = %v", err)
	}
	for i := range x {
		got, err := m.Predict(x[i])
		if err != nil {
			t.Fatalf("Predict() error = %v", err)
		}
		if !approxEqual(got, y[i], 1e-3) {
			t.Errorf("row %d: Predict() = %v, want %v", i, got, y[i])
		}
	}
	if m.Family != FamilyRidge || m.Alpha != 1e-6 {
		t.Errorf("model = %s/%v", m.Family, m.Alpha)
	}
}

func TestFitRidgeShrinks(t *testing.T) {
	x, y := linearData(40)
	small, err := FitRidge(x, y, 1e-6)
	if err != nil {
		t.Fatal(err)
	}
	large, err := FitRidge(x, y, 1e4)
	if err != nil {
		t.Fatal(err)
	}
	norm := func(w []float64) float64 {
		var s float64
		for _, v := range w {
			s += v * v
		}
		return s
	}
	if norm(large.Coefficients) >= norm(small.Coefficients) {
		t.Errorf("alpha=1e4 norm %v not below alpha=1e-6 norm %v", norm(large.Coefficients), norm(small.Coefficients))
	}
}

func TestFitRidgeErrors(t *testing.T) {
	if _, err := FitRidge(nil, nil, 1); err == nil {
		t.Error("FitRidge(empty) want error")
	}
	if _, err := FitRidge([][]float64{{1}, {2}}, []float64{1}, 1); err == nil {
		t.Error("FitRidge(mismatched) want error")
	}
	// a constant column centers to zero, so without a penalty the system is singular
	if _, err := FitRidge([][]float64{{1}, {1}, {1}}, []float64{1, 2, 3}, 0); err == nil {
		t.Error("FitRidge(singular) want error")
	}
}

func TestLinearModelPredictLength(t *testing.T) {
	m := &LinearModel{Coefficients: []float64{1, 2}}
	if _, err := m.Predict([]float64{1}); err == nil {
		t.Error("Predict() with short vector want error")
	}
}

func TestLoadPredictionService(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	metaPath := filepath.Join(dir, "model_meta.json")

	_, err := LoadPredictionService(modelPath, metaPath)
	var mu *ModelUnavailableError
	if !errors.As(err, &mu) {
		t.Fatalf("missing artifact error = %v, want ModelUnavailableError", err)
	}

	features := []string{"kills_per_match", "damage_per_match"}
	rows := AddFeatures([]models.PlayerRecord{
		{PlayerName: "a", MatchesPlayed: 10, Kills: 30, Damage: 3000},
		{PlayerName: "b", MatchesPlayed: 10, Kills: 10, Damage: 900},
		{PlayerName: "c", MatchesPlayed: 5, Kills: 1, Damage: 600},
		{PlayerName: "d", MatchesPlayed: 2, Kills: 9, Damage: 100},
	})
	var x [][]float64
	var y []float64
	for i := range rows {
		v, err := rows[i].Vector(features)
		if err != nil {
			t.Fatal(err)
		}
		x = append(x, v)
		y = append(y, rows[i].AuctionValue)
	}
	m, err := FitRidge(x, y, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	m.Features = features
	if err := SaveModel(modelPath, m); err != nil {
		t.Fatal(err)
	}

	_, err = LoadPredictionService(modelPath, metaPath)
	if !errors.As(err, &mu) || mu.Path != metaPath {
		t.Fatalf("missing meta error = %v, want ModelUnavailableError for %s", err, metaPath)
	}

	if err := SaveMeta(metaPath, models.ModelMeta{Features: features, Model: FamilyRidge}); err != nil {
		t.Fatal(err)
	}
	svc, err := LoadPredictionService(modelPath, metaPath)
	if err != nil {
		t.Fatalf("LoadPredictionService() error = %v", err)
	}
	if got := svc.Meta().Features; len(got) != 2 {
		t.Errorf("meta features = %v", got)
	}
	pred, err := svc.Predict(map[string]float64{"matches_played": 10, "kills": 30, "damage": 3000})
	if err != nil {
		t.Fatalf("Predict() error = %v", err)
	}
	want, _ := m.Predict(x[0])
	if !approxEqual(pred, want, 1e-9) {
		t.Errorf("Predict() = %v, want %v", pred, want)
	}
}

func TestLoadPredictionServiceUnsupportedFamily(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	if err := SaveModel(modelPath, &LinearModel{Family: "forest"}); err != nil {
		t.Fatal(err)
	}
	_, err := LoadPredictionService(modelPath, filepath.Join(dir, "meta.json"))
	var mu *ModelUnavailableError
	if !errors.As(err, &mu) {
		t.Fatalf("error = %v, want ModelUnavailableError", err)
	}
}
