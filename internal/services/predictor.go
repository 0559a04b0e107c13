package services

import (
	"errors"
	"fmt"
	"math"

	"alfredoptarigan/salary-estimator/internal/models"
)

// ErrNonFinitePrediction is returned when the regressor yields NaN or Inf.
var ErrNonFinitePrediction = errors.New("model produced a non-finite prediction")

// FeatureVector lays out q as numeric fields followed by the one-hot block.
func (m *ModelArtifact) FeatureVector(q models.QueryRecord) ([]float64, error) {
	encoded, err := m.Encoder.Transform(q.Categorical())
	if err != nil {
		return nil, err
	}

	x := make([]float64, 0, len(models.NumericFeatures)+len(encoded))
	x = append(x, q.Numeric()...)
	x = append(x, encoded...)
	if len(x) != len(m.FeatureNames) {
		return nil, fmt.Errorf("%w: built %d features, model expects %d", ErrFeatureOrder, len(x), len(m.FeatureNames))
	}
	return x, nil
}

// Predict runs one query record through the encoder and regressor.
func (m *ModelArtifact) Predict(q models.QueryRecord) (float64, error) {
	x, err := m.FeatureVector(q)
	if err != nil {
		return 0, err
	}

	y, err := m.Regressor.Predict(x)
	if err != nil {
		return 0, fmt.Errorf("failed to run regressor: %w", err)
	}
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, ErrNonFinitePrediction
	}
	return y, nil
}
