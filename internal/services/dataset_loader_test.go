package services

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/salary-estimator/internal/models"
	"alfredoptarigan/salary-estimator/internal/testutil"
)

func TestParseDatasetRenamesColumns(t *testing.T) {
	records, err := ParseDataset(strings.NewReader(testutil.SalaryCSV))
	require.NoError(t, err)
	require.Len(t, records, 6)

	first := records[0]
	assert.Equal(t, "Engineering", first.Department)
	assert.Equal(t, 50000.0, first.Salary)
	assert.Equal(t, 2.0, first.Ratings)
	assert.Equal(t, 0.0, first.YearsExperience)

	assert.True(t, math.IsNaN(records[1].Ratings), "empty rating should parse as NaN")
	assert.Equal(t, 7.0, records[1].YearsExperience)
	assert.True(t, math.IsNaN(records[5].Salary))
}

func TestParseDatasetMalformed(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"empty file", ""},
		{"header only", "DESIGNATION,SALARY,RATINGS,PAST EXP\n"},
		{"missing column", "DESIGNATION,SALARY,RATINGS\nAnalyst,1000,3\n"},
		{"non numeric salary", "DESIGNATION,SALARY,RATINGS,PAST EXP\nAnalyst,lots,3,1\n"},
		{"ragged row", "DESIGNATION,SALARY,RATINGS,PAST EXP\nAnalyst,1000,3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDataset(strings.NewReader(tt.csv))
			assert.ErrorIs(t, err, ErrMalformedDataset)
		})
	}
}

func TestParseDatasetAcceptsReorderedColumnsAndBOM(t *testing.T) {
	csv := "\ufeffSALARY, PAST EXP,RATINGS,DESIGNATION\n55000,3,4.5,Analyst\n"

	records, err := ParseDataset(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, models.ReferenceRecord{
		YearsExperience: 3,
		Department:      "Analyst",
		Ratings:         4.5,
		Salary:          55000,
	}, records[0])
}

type synthesized struct {
	company, location, education, jobLevel, workMode string
	yearsInCompany, companyRating                    float64
}

func synthesize(seed uint64, n int) []synthesized {
	records := make([]models.ReferenceRecord, n)
	NewSynthesizer(seed).Augment(records)

	out := make([]synthesized, n)
	for i, r := range records {
		out[i] = synthesized{r.Company, r.Location, r.Education, r.JobLevel, r.WorkMode, r.YearsInCompany, r.CompanyRating}
	}
	return out
}

func TestSynthesizerIsDeterministic(t *testing.T) {
	first := synthesize(DefaultSynthSeed, 500)
	second := synthesize(DefaultSynthSeed, 500)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, synthesize(DefaultSynthSeed+1, 500))
}

func TestSynthesizerValueDomains(t *testing.T) {
	records := make([]models.ReferenceRecord, 2000)
	NewSynthesizer(DefaultSynthSeed).Augment(records)

	oneDecimal := func(v float64) bool {
		return math.Abs(v*10-math.Round(v*10)) < 1e-6
	}

	for i, r := range records {
		msg := fmt.Sprintf("record %d", i)
		assert.Contains(t, synthCompanies, r.Company, msg)
		assert.Contains(t, synthLocations, r.Location, msg)
		assert.Contains(t, synthEducation, r.Education, msg)
		assert.Contains(t, synthJobLevels, r.JobLevel, msg)
		assert.Contains(t, synthWorkModes, r.WorkMode, msg)

		assert.GreaterOrEqual(t, r.YearsInCompany, 0.5, msg)
		assert.LessOrEqual(t, r.YearsInCompany, 10.0, msg)
		assert.True(t, oneDecimal(r.YearsInCompany), msg)

		assert.GreaterOrEqual(t, r.CompanyRating, 2.5, msg)
		assert.LessOrEqual(t, r.CompanyRating, 5.0, msg)
		assert.True(t, oneDecimal(r.CompanyRating), msg)
	}
}

func TestSynthesizerWeightedColumns(t *testing.T) {
	records := make([]models.ReferenceRecord, 20000)
	NewSynthesizer(DefaultSynthSeed).Augment(records)

	share := func(match func(models.ReferenceRecord) bool) float64 {
		n := 0
		for _, r := range records {
			if match(r) {
				n++
			}
		}
		return float64(n) / float64(len(records))
	}

	assert.InDelta(t, 0.6, share(func(r models.ReferenceRecord) bool { return r.Education == "Bachelor's" }), 0.02)
	assert.InDelta(t, 0.1, share(func(r models.ReferenceRecord) bool { return r.Education == "PhD" }), 0.02)
	assert.InDelta(t, 0.5, share(func(r models.ReferenceRecord) bool { return r.JobLevel == "Junior" }), 0.02)
	assert.InDelta(t, 0.2, share(func(r models.ReferenceRecord) bool { return r.JobLevel == "Senior" }), 0.02)

	for _, mode := range synthWorkModes {
		assert.InDelta(t, 1.0/3, share(func(r models.ReferenceRecord) bool { return r.WorkMode == mode }), 0.02)
	}

	companies := make(map[string]bool)
	for _, r := range records {
		companies[r.Company] = true
	}
	assert.Len(t, companies, len(synthCompanies))
}
