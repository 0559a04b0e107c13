package services

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"alfredoptarigan/salary-estimator/internal/models"
	"alfredoptarigan/salary-estimator/internal/repositories"
)

// ErrEmptyDepartment is returned when a department has no rows with a salary.
var ErrEmptyDepartment = errors.New("department has no salary data")

// Compare computes the department statistics and the percentile rank of prediction.
// Min, mean and max skip rows with a missing salary. Those rows still count in the
// percentile denominator and never rank below the prediction.
func Compare(dataset repositories.DatasetRepository, department string, prediction float64) (models.Comparison, error) {
	rows := dataset.FindByDepartment(department)

	var salaries []float64
	for _, r := range rows {
		if !math.IsNaN(r.Salary) {
			salaries = append(salaries, r.Salary)
		}
	}
	if len(salaries) == 0 {
		return models.Comparison{}, fmt.Errorf("%w: %q", ErrEmptyDepartment, department)
	}

	below := 0
	for _, s := range salaries {
		if s < prediction {
			below++
		}
	}

	return models.Comparison{
		Stats: models.DepartmentStats{
			Department: department,
			Count:      len(salaries),
			Rows:       len(rows),
			Min:        floats.Min(salaries),
			Mean:       stat.Mean(salaries, nil),
			Max:        floats.Max(salaries),
		},
		Prediction: prediction,
		Percentile: float64(below) / float64(len(rows)) * 100,
	}, nil
}
