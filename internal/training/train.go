// Package training fits the auction value regressor offline.
package training

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/squadstats/wpi-api/internal/logic"
	"github.com/squadstats/wpi-api/internal/models"
)

// MinRows is the smallest table Train accepts
const MinRows = 10

// ErrTooFewRows is returned when the table is smaller than MinRows
var ErrTooFewRows = errors.New("not enough rows to train")

// Options controls a training run
type Options struct {
	Features     []string
	Alphas       []float64
	TestFraction float64
	Folds        int
	Seed         int64
	Logger       *zap.Logger
}

// DefaultOptions matches the shipped model
func DefaultOptions() Options {
	return Options{
		Features:     logic.FeaturesForModel,
		Alphas:       []float64{1e-6, 0.01, 0.1, 1, 10},
		TestFraction: 0.2,
		Folds:        3,
		Seed:         42,
	}
}

// Result is a fitted model with its metadata
type Result struct {
	Model   *logic.LinearModel
	Meta    models.ModelMeta
	CVScore float64
}

// Train fits a ridge model to predict auction_value from opts.Features.
// Rows are shuffled with opts.Seed and split into train and test sets; the
// penalty is chosen by k-fold cross-validated R² on the train set only.
func Train(rows []models.FeatureRow, opts Options) (*Result, error) {
	if len(rows) < MinRows {
		return nil, fmt.Errorf("%w: have %d, need %d", ErrTooFewRows, len(rows), MinRows)
	}
	if len(opts.Features) == 0 {
		opts.Features = logic.FeaturesForModel
	}
	if len(opts.Alphas) == 0 {
		return nil, errors.New("no alphas to search")
	}
	if opts.Folds < 2 {
		opts.Folds = 2
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.Sugar()

	x := make([][]float64, len(rows))
	y := make([]float64, len(rows))
	for i := range rows {
		v, err := rows[i].Vector(opts.Features)
		if err != nil {
			return nil, err
		}
		x[i] = v
		y[i] = rows[i].AuctionValue
	}

	trainIdx, testIdx := split(len(rows), opts.TestFraction, opts.Seed)
	xTrain, yTrain := pick(x, y, trainIdx)
	xTest, yTest := pick(x, y, testIdx)

	bestAlpha := math.NaN()
	bestScore := math.Inf(-1)
	for _, alpha := range opts.Alphas {
		score, err := crossValidate(xTrain, yTrain, alpha, opts.Folds)
		if err != nil {
			log.Warnw("Skipping alpha", "alpha", alpha, "error", err)
			continue
		}
		log.Infow("Cross-validated", "alpha", alpha, "r2", score)
		if score > bestScore {
			bestScore = score
			bestAlpha = alpha
		}
	}
	if math.IsNaN(bestAlpha) {
		return nil, errors.New("no alpha produced a usable model")
	}

	model, err := logic.FitRidge(xTrain, yTrain, bestAlpha)
	if err != nil {
		return nil, err
	}
	model.Features = append([]string(nil), opts.Features...)

	pred, err := predictAll(model, xTest)
	if err != nil {
		return nil, err
	}
	metrics := Metrics(yTest, pred)
	log.Infow("Model trained",
		"alpha", bestAlpha,
		"mae", metrics.MAE,
		"rmse", metrics.RMSE,
		"r2", metrics.R2,
	)

	return &Result{
		Model:   model,
		CVScore: bestScore,
		Meta: models.ModelMeta{
			Features:  model.Features,
			Metrics:   metrics,
			Model:     logic.FamilyRidge,
			Alpha:     bestAlpha,
			Rows:      len(rows),
			TrainedAt: time.Now().UTC(),
		},
	}, nil
}

// split returns shuffled train and test indices. The test set gets
// ceil(n*frac) rows, at least one.
func split(n int, frac float64, seed int64) (train, test []int) {
	perm := rand.New(rand.NewSource(seed)).Perm(n)
	nTest := int(math.Ceil(float64(n) * frac))
	if nTest < 1 {
		nTest = 1
	}
	if nTest >= n {
		nTest = n - 1
	}
	return perm[nTest:], perm[:nTest]
}

func pick(x [][]float64, y []float64, idx []int) ([][]float64, []float64) {
	px := make([][]float64, len(idx))
	py := make([]float64, len(idx))
	for i, j := range idx {
		px[i] = x[j]
		py[i] = y[j]
	}
	return px, py
}

// crossValidate returns the mean R² over k contiguous folds
func crossValidate(x [][]float64, y []float64, alpha float64, k int) (float64, error) {
	n := len(x)
	if n < k {
		return 0, fmt.Errorf("%d rows for %d folds", n, k)
	}
	var total float64
	start := 0
	for f := 0; f < k; f++ {
		size := n / k
		if f < n%k {
			size++
		}
		end := start + size

		var xFit [][]float64
		var yFit []float64
		xFit = append(xFit, x[:start]...)
		xFit = append(xFit, x[end:]...)
		yFit = append(yFit, y[:start]...)
		yFit = append(yFit, y[end:]...)

		m, err := logic.FitRidge(xFit, yFit, alpha)
		if err != nil {
			return 0, err
		}
		pred, err := predictAll(m, x[start:end])
		if err != nil {
			return 0, err
		}
		total += R2(y[start:end], pred)
		start = end
	}
	return total / float64(k), nil
}

func predictAll(m *logic.LinearModel, x [][]float64) ([]float64, error) {
	out := make([]float64, len(x))
	for i := range x {
		v, err := m.Predict(x[i])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Metrics computes MAE, RMSE and R² of pred against yTrue
func Metrics(yTrue, pred []float64) models.ModelMetrics {
	if len(yTrue) == 0 {
		return models.ModelMetrics{}
	}
	var absSum, sqSum float64
	for i := range yTrue {
		d := yTrue[i] - pred[i]
		absSum += math.Abs(d)
		sqSum += d * d
	}
	n := float64(len(yTrue))
	return models.ModelMetrics{
		MAE:  absSum / n,
		RMSE: math.Sqrt(sqSum / n),
		R2:   R2(yTrue, pred),
	}
}

// R2 is the coefficient of determination. A constant target scores 1 when
// predicted exactly and 0 otherwise.
func R2(yTrue, pred []float64) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	var mean float64
	for _, v := range yTrue {
		mean += v
	}
	mean /= float64(len(yTrue))

	var ssRes, ssTot float64
	for i := range yTrue {
		d := yTrue[i] - pred[i]
		ssRes += d * d
		t := yTrue[i] - mean
		ssTot += t * t
	}
	if ssTot == 0 {
		if ssRes == 0 {
			return 1
		}
		return 0
	}
	return 1 - ssRes/ssTot
}
