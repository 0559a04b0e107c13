package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/salary-estimator/internal/models"
)

func TestOneHotEncoderTransform(t *testing.T) {
	enc, err := NewOneHotEncoder(
		[]models.Column{models.ColumnDepartment, models.ColumnWorkMode},
		[][]string{{"Analyst", "Engineering"}, {"Hybrid", "Onsite", "Remote"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 5, enc.Width())
	assert.Equal(t, []string{
		"Department_Analyst", "Department_Engineering",
		"Work Mode_Hybrid", "Work Mode_Onsite", "Work Mode_Remote",
	}, enc.FeatureNames())

	x, err := enc.Transform([]string{"Engineering", "Remote"})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 0, 0, 1}, x)

	assert.True(t, enc.Knows(models.ColumnWorkMode, "Onsite"))
	assert.False(t, enc.Knows(models.ColumnWorkMode, "Office"))
	assert.False(t, enc.Knows(models.ColumnCompany, "TCS"))
}

func TestOneHotEncoderUnknownCategory(t *testing.T) {
	enc, err := NewOneHotEncoder(
		[]models.Column{models.ColumnDepartment, models.ColumnCompany},
		[][]string{{"Analyst"}, {"IBM", "TCS"}},
	)
	require.NoError(t, err)

	_, err = enc.Transform([]string{"Analyst", "Initech"})
	require.Error(t, err)

	var unknown *UnknownCategoryError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "Company Name", unknown.Field)
	assert.Equal(t, "Initech", unknown.Value)
	assert.Contains(t, err.Error(), "Initech")
}

func TestOneHotEncoderArity(t *testing.T) {
	enc, err := NewOneHotEncoder([]models.Column{models.ColumnDepartment}, [][]string{{"Analyst"}})
	require.NoError(t, err)

	_, err = enc.Transform([]string{"Analyst", "extra"})
	assert.Error(t, err)

	_, err = NewOneHotEncoder([]models.Column{models.ColumnDepartment}, [][]string{{}})
	assert.Error(t, err)
}
