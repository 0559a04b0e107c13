package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/salary-estimator/internal/models"
	"alfredoptarigan/salary-estimator/internal/testutil"
)

func TestLoadResources(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "salaries.csv", []byte(testutil.SalaryCSV))
	writeFile(t, dir, "model.json", testutil.JSON(testutil.LinearArtifact()))

	res, err := LoadResources(context.Background(), NewLocalStore(dir), "salaries.csv", "model.json", NewSynthesizer(DefaultSynthSeed))
	require.NoError(t, err)

	assert.Equal(t, 6, res.Dataset.Len())
	assert.Equal(t, models.RegressorLinear, res.Artifact.Regressor.Kind())
	assert.Empty(t, res.VocabularyGaps())
}

func TestLoadResourcesMissingModel(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "salaries.csv", []byte(testutil.SalaryCSV))

	_, err := LoadResources(context.Background(), NewLocalStore(dir), "salaries.csv", "model.json", NewSynthesizer(DefaultSynthSeed))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "model.json")
}

func TestLoadResourcesMalformedDataset(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "salaries.csv", []byte("SALARY,PAST EXP\n1,2\n"))
	writeFile(t, dir, "model.json", testutil.JSON(testutil.LinearArtifact()))

	_, err := LoadResources(context.Background(), NewLocalStore(dir), "salaries.csv", "model.json", NewSynthesizer(DefaultSynthSeed))
	assert.ErrorIs(t, err, ErrMalformedDataset)
}

func TestVocabularyGaps(t *testing.T) {
	file := testutil.LinearArtifact()
	file.Encoder.Categories[0] = []string{"Analyst", "Engineering"}
	file.Regressor.Coefficients = file.Regressor.Coefficients[1:]

	res := newTestResources(t, file)
	assert.Equal(t, map[models.Column][]string{
		models.ColumnDepartment: {"Manager"},
	}, res.VocabularyGaps())
}

func TestEstimate(t *testing.T) {
	res := newTestResources(t, testutil.LinearArtifact())
	svc := NewEstimatorService(res, CurrencyFormatter{Symbol: "₹"})

	est, err := svc.Estimate(context.Background(), testQuery("Engineering", 7))
	require.NoError(t, err)

	assert.InDelta(t, 65000, est.Prediction, 1e-9)
	assert.Equal(t, "Engineering", est.Comparison.Stats.Department)
	assert.InDelta(t, 200.0/3, est.Comparison.Percentile, 1e-9)
	require.Len(t, est.Chart.Bars, 4)
	assert.Equal(t, "₹65,000", est.Chart.Bars[3].Text)
	assert.Equal(t, "₹", svc.Money().Symbol)
	assert.Same(t, res, svc.Resources())
}

func TestEstimateErrors(t *testing.T) {
	res := newTestResources(t, testutil.LinearArtifact())
	svc := NewEstimatorService(res, CurrencyFormatter{Symbol: "₹"})

	q := testQuery("Engineering", 7)
	q.Location = "Atlantis"
	_, err := svc.Estimate(context.Background(), q)
	var unknown *UnknownCategoryError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Location", unknown.Field)

	_, err = svc.Estimate(context.Background(), testQuery("Manager", 7))
	assert.ErrorIs(t, err, ErrEmptyDepartment)
}
