package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"alfredoptarigan/salary-estimator/internal/models"
	"alfredoptarigan/salary-estimator/internal/repositories"
)

// ErrMalformedDataset is returned when the CSV cannot be turned into reference records.
var ErrMalformedDataset = errors.New("malformed dataset")

// sourceColumns maps raw CSV headers to canonical column names.
var sourceColumns = map[string]models.Column{
	"PAST EXP":    models.ColumnYearsExperience,
	"DESIGNATION": models.ColumnDepartment,
	"SALARY":      models.ColumnSalary,
	"RATINGS":     models.ColumnRatings,
}

// LoadDataset reads the reference CSV from the store and augments it with synthesized columns.
func LoadDataset(ctx context.Context, store ArtifactStore, name string, synth *Synthesizer) (repositories.DatasetRepository, error) {
	rc, err := OpenDecoded(ctx, store, name)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer rc.Close()

	records, err := ParseDataset(rc)
	if err != nil {
		return nil, err
	}

	synth.Augment(records)
	return repositories.NewDatasetRepository(records), nil
}

// ParseDataset decodes the CSV and renames the source columns. Empty numeric
// cells become NaN and are skipped by the statistics.
func ParseDataset(r io.Reader) ([]models.ReferenceRecord, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", ErrMalformedDataset)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}

	index := make(map[models.Column]int)
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if col, ok := sourceColumns[h]; ok {
			index[col] = i
		}
	}
	for raw, col := range sourceColumns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrMalformedDataset, raw)
		}
	}

	var records []models.ReferenceRecord
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
		}
		line, _ := cr.FieldPos(0)

		rec := models.ReferenceRecord{
			Department: strings.TrimSpace(row[index[models.ColumnDepartment]]),
		}
		numeric := []struct {
			col models.Column
			dst *float64
		}{
			{models.ColumnYearsExperience, &rec.YearsExperience},
			{models.ColumnSalary, &rec.Salary},
			{models.ColumnRatings, &rec.Ratings},
		}
		for _, n := range numeric {
			v, err := parseCell(row[index[n.col]])
			if err != nil {
				return nil, fmt.Errorf("%w: line %d column %s: %v", ErrMalformedDataset, line, n.col, err)
			}
			*n.dst = v
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedDataset)
	}
	return records, nil
}

func parseCell(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
