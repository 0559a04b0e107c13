package services

import (
	"fmt"

	"alfredoptarigan/salary-estimator/internal/models"
)

// UnknownCategoryError reports a categorical value the encoder was not fitted on.
type UnknownCategoryError struct {
	Field string
	Value string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q for %s", e.Value, e.Field)
}

// OneHotEncoder maps each categorical column onto a block of indicator features.
type OneHotEncoder struct {
	columns    []models.Column
	categories [][]string
	index      []map[string]int
	offsets    []int
	width      int
}

func NewOneHotEncoder(columns []models.Column, categories [][]string) (*OneHotEncoder, error) {
	if len(columns) != len(categories) {
		return nil, fmt.Errorf("encoder has %d category lists for %d columns", len(categories), len(columns))
	}

	enc := &OneHotEncoder{
		columns:    columns,
		categories: categories,
		index:      make([]map[string]int, len(columns)),
		offsets:    make([]int, len(columns)),
	}
	for i, cats := range categories {
		if len(cats) == 0 {
			return nil, fmt.Errorf("encoder has no categories for %s", columns[i])
		}
		enc.offsets[i] = enc.width
		enc.index[i] = make(map[string]int, len(cats))
		for j, c := range cats {
			if _, dup := enc.index[i][c]; dup {
				return nil, fmt.Errorf("duplicate category %q for %s", c, columns[i])
			}
			enc.index[i][c] = j
		}
		enc.width += len(cats)
	}
	return enc, nil
}

// Width is the number of features Transform produces.
func (e *OneHotEncoder) Width() int {
	return e.width
}

// Transform encodes values given in column order.
func (e *OneHotEncoder) Transform(values []string) ([]float64, error) {
	if len(values) != len(e.columns) {
		return nil, fmt.Errorf("encoder expects %d values, got %d", len(e.columns), len(values))
	}

	out := make([]float64, e.width)
	for i, v := range values {
		j, ok := e.index[i][v]
		if !ok {
			return nil, &UnknownCategoryError{Field: string(e.columns[i]), Value: v}
		}
		out[e.offsets[i]+j] = 1
	}
	return out, nil
}

// Knows reports whether value was part of the fitted vocabulary of column.
func (e *OneHotEncoder) Knows(column models.Column, value string) bool {
	for i, c := range e.columns {
		if c == column {
			_, ok := e.index[i][value]
			return ok
		}
	}
	return false
}

// FeatureNames returns "<column>_<category>" for every output feature.
func (e *OneHotEncoder) FeatureNames() []string {
	names := make([]string, 0, e.width)
	for i, cats := range e.categories {
		for _, c := range cats {
			names = append(names, fmt.Sprintf("%s_%s", e.columns[i], c))
		}
	}
	return names
}
