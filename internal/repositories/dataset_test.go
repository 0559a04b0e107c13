package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/salary-estimator/internal/models"
)

func sampleRecords() []models.ReferenceRecord {
	return []models.ReferenceRecord{
		{Department: "Engineering", Company: "TCS", Salary: 50000},
		{Department: "Analyst", Company: "IBM", Salary: 40000},
		{Department: "Engineering", Company: "Amazon", Salary: 70000},
		{Department: "Engineering", Company: "IBM", Salary: 60000},
	}
}

func TestFindByDepartment(t *testing.T) {
	repo := NewDatasetRepository(sampleRecords())

	assert.Equal(t, 4, repo.Len())
	assert.Len(t, repo.FindByDepartment("Engineering"), 3)
	assert.Empty(t, repo.FindByDepartment("Marketing"))
}

func TestDistinctValuesSorted(t *testing.T) {
	repo := NewDatasetRepository(sampleRecords())

	companies, err := repo.DistinctValues(models.ColumnCompany)
	require.NoError(t, err)
	assert.Equal(t, []string{"Amazon", "IBM", "TCS"}, companies)

	departments, err := repo.DistinctValues(models.ColumnDepartment)
	require.NoError(t, err)
	assert.Equal(t, []string{"Analyst", "Engineering"}, departments)
}

func TestDistinctValuesRejectsNumericColumn(t *testing.T) {
	repo := NewDatasetRepository(sampleRecords())

	_, err := repo.DistinctValues(models.ColumnSalary)
	assert.Error(t, err)
}
