package logic

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/squadstats/wpi-api/internal/models"
)

// FamilyRidge identifies a LinearModel fit with an L2 penalty
const FamilyRidge = "ridge"

// LinearModel is a linear regressor over features divided by their
// training standard deviation. It is stored as JSON.
type LinearModel struct {
	Family       string    `json:"family"`
	Features     []string  `json:"features"`
	Scale        []float64 `json:"scale"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Alpha        float64   `json:"alpha"`
}

// Predict implements Regressor
func (m *LinearModel) Predict(x []float64) (float64, error) {
	if len(x) != len(m.Coefficients) {
		return 0, fmt.Errorf("model expects %d features, got %d", len(m.Coefficients), len(x))
	}
	y := m.Intercept
	for i, v := range x {
		s := 1.0
		if i < len(m.Scale) && m.Scale[i] != 0 {
			s = m.Scale[i]
		}
		y += m.Coefficients[i] * v / s
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, errors.New("model produced a non-finite value")
	}
	return y, nil
}

// FitRidge fits a ridge regression. Columns are scaled by their population
// standard deviation (constant columns by 1) without centering; the
// intercept is not penalized.
func FitRidge(x [][]float64, y []float64, alpha float64) (*LinearModel, error) {
	n := len(x)
	if n == 0 || n != len(y) {
		return nil, fmt.Errorf("fit ridge: %d rows, %d labels", n, len(y))
	}
	p := len(x[0])

	scale := make([]float64, p)
	mean := make([]float64, p)
	for j := 0; j < p; j++ {
		var sum, sumSq float64
		for i := 0; i < n; i++ {
			sum += x[i][j]
		}
		m := sum / float64(n)
		for i := 0; i < n; i++ {
			d := x[i][j] - m
			sumSq += d * d
		}
		sd := math.Sqrt(sumSq / float64(n))
		if sd == 0 {
			sd = 1
		}
		scale[j] = sd
		mean[j] = m / sd
	}

	var yMean float64
	for _, v := range y {
		yMean += v
	}
	yMean /= float64(n)

	// Normal equations on centered, scaled data: (ZᵀZ + αI) w = Zᵀy
	a := make([][]float64, p)
	for j := range a {
		a[j] = make([]float64, p+1)
	}
	for i := 0; i < n; i++ {
		yc := y[i] - yMean
		for j := 0; j < p; j++ {
			zj := x[i][j]/scale[j] - mean[j]
			for k := j; k < p; k++ {
				a[j][k] += zj * (x[i][k]/scale[k] - mean[k])
			}
			a[j][p] += zj * yc
		}
	}
	for j := 0; j < p; j++ {
		for k := 0; k < j; k++ {
			a[j][k] = a[k][j]
		}
		a[j][j] += alpha
	}

	w, err := solve(a)
	if err != nil {
		return nil, fmt.Errorf("fit ridge (alpha=%g): %w", alpha, err)
	}

	intercept := yMean
	for j := 0; j < p; j++ {
		intercept -= w[j] * mean[j]
	}

	return &LinearModel{
		Family:       FamilyRidge,
		Scale:        scale,
		Coefficients: w,
		Intercept:    intercept,
		Alpha:        alpha,
	}, nil
}

// solve runs Gaussian elimination with partial pivoting on an augmented
// p x (p+1) matrix, in place.
func solve(a [][]float64) ([]float64, error) {
	p := len(a)
	for col := 0; col < p; col++ {
		pivot := col
		for r := col + 1; r < p; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if math.Abs(a[pivot][col]) < 1e-12 {
			return nil, errors.New("singular system")
		}
		a[col], a[pivot] = a[pivot], a[col]

		for r := col + 1; r < p; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c <= p; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}

	w := make([]float64, p)
	for r := p - 1; r >= 0; r-- {
		s := a[r][p]
		for c := r + 1; c < p; c++ {
			s -= a[r][c] * w[c]
		}
		w[r] = s / a[r][r]
	}
	return w, nil
}

// SaveModel writes a model artifact as indented JSON
func SaveModel(path string, m *LinearModel) error {
	return writeJSON(path, m)
}

// SaveMeta writes the model metadata sidecar
func SaveMeta(path string, meta models.ModelMeta) error {
	return writeJSON(path, meta)
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
