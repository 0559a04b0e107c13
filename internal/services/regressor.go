package services

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"alfredoptarigan/salary-estimator/internal/models"
)

// Regressor maps a feature vector to a scalar estimate.
type Regressor interface {
	Predict(x []float64) (float64, error)
	NumFeatures() int
	Kind() string
}

// NewRegressor builds a regressor from its serialized form and checks it against the feature width.
func NewRegressor(spec *models.RegressorSpec, width int) (Regressor, error) {
	switch spec.Type {
	case models.RegressorLinear:
		return newLinearRegressor(spec, width)
	case models.RegressorRandomForest:
		return newRandomForest(spec, width)
	default:
		return nil, fmt.Errorf("unsupported regressor type %q", spec.Type)
	}
}

type linearRegressor struct {
	intercept    float64
	coefficients []float64
}

func newLinearRegressor(spec *models.RegressorSpec, width int) (*linearRegressor, error) {
	if len(spec.Coefficients) != width {
		return nil, fmt.Errorf("%w: linear model has %d coefficients, features have %d",
			ErrFeatureOrder, len(spec.Coefficients), width)
	}
	return &linearRegressor{
		intercept:    spec.Intercept,
		coefficients: spec.Coefficients,
	}, nil
}

func (l *linearRegressor) Predict(x []float64) (float64, error) {
	if len(x) != len(l.coefficients) {
		return 0, fmt.Errorf("expected %d features, got %d", len(l.coefficients), len(x))
	}
	return l.intercept + floats.Dot(l.coefficients, x), nil
}

func (l *linearRegressor) NumFeatures() int { return len(l.coefficients) }

func (l *linearRegressor) Kind() string { return models.RegressorLinear }

type randomForest struct {
	trees [][]models.TreeNode
	width int
}

func newRandomForest(spec *models.RegressorSpec, width int) (*randomForest, error) {
	if len(spec.Trees) == 0 {
		return nil, fmt.Errorf("random forest has no trees")
	}

	trees := make([][]models.TreeNode, len(spec.Trees))
	for t, tree := range spec.Trees {
		if len(tree.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", t)
		}
		for i, n := range tree.Nodes {
			if n.Left < 0 {
				continue
			}
			// Children always follow their parent, which rules out cycles.
			if n.Left <= i || n.Right <= i || n.Left >= len(tree.Nodes) || n.Right >= len(tree.Nodes) {
				return nil, fmt.Errorf("tree %d node %d has invalid children %d/%d", t, i, n.Left, n.Right)
			}
			if n.Feature < 0 || n.Feature >= width {
				return nil, fmt.Errorf("%w: tree %d node %d splits on feature %d of %d",
					ErrFeatureOrder, t, i, n.Feature, width)
			}
		}
		trees[t] = tree.Nodes
	}
	return &randomForest{trees: trees, width: width}, nil
}

func (f *randomForest) Predict(x []float64) (float64, error) {
	if len(x) != f.width {
		return 0, fmt.Errorf("expected %d features, got %d", f.width, len(x))
	}

	outputs := make([]float64, len(f.trees))
	for t, nodes := range f.trees {
		i := 0
		for nodes[i].Left >= 0 {
			if x[nodes[i].Feature] <= nodes[i].Threshold {
				i = nodes[i].Left
			} else {
				i = nodes[i].Right
			}
		}
		outputs[t] = nodes[i].Value
	}
	return stat.Mean(outputs, nil), nil
}

func (f *randomForest) NumFeatures() int { return f.width }

func (f *randomForest) Kind() string { return models.RegressorRandomForest }
