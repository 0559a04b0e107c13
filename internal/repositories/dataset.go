package repositories

import (
	"fmt"
	"slices"

	"alfredoptarigan/salary-estimator/internal/models"
)

// DatasetRepository answers read-only queries over the reference dataset.
type DatasetRepository interface {
	Len() int
	All() []models.ReferenceRecord
	FindByDepartment(department string) []models.ReferenceRecord
	DistinctValues(column models.Column) ([]string, error)
}

type datasetRepository struct {
	records []models.ReferenceRecord
}

func NewDatasetRepository(records []models.ReferenceRecord) DatasetRepository {
	return &datasetRepository{records: records}
}

// Len implements DatasetRepository.
func (d *datasetRepository) Len() int {
	return len(d.records)
}

// All implements DatasetRepository. The returned slice must not be modified.
func (d *datasetRepository) All() []models.ReferenceRecord {
	return d.records
}

// FindByDepartment implements DatasetRepository.
func (d *datasetRepository) FindByDepartment(department string) []models.ReferenceRecord {
	var out []models.ReferenceRecord
	for _, r := range d.records {
		if r.Department == department {
			out = append(out, r)
		}
	}
	return out
}

// DistinctValues implements DatasetRepository. Values are sorted ascending.
func (d *datasetRepository) DistinctValues(column models.Column) ([]string, error) {
	if !slices.Contains(models.CategoricalFeatures, column) {
		return nil, fmt.Errorf("column %q is not categorical", column)
	}

	seen := make(map[string]struct{})
	var values []string
	for _, r := range d.records {
		v := r.Categorical(column)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		values = append(values, v)
	}
	slices.Sort(values)
	return values, nil
}
