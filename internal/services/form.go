package services

import (
	"fmt"
	"strconv"

	"alfredoptarigan/salary-estimator/internal/models"
	"alfredoptarigan/salary-estimator/internal/repositories"
)

type fieldSpec struct {
	name   string
	label  string
	kind   models.FieldKind
	column models.Column
	min    float64
	max    float64
	step   float64
	def    float64
}

// formLayout lists the controls in display order. Slider bounds and steps must
// agree with the validate tags on models.PredictRequest.
var formLayout = []fieldSpec{
	{name: "years_experience", label: "Years of Experience", kind: models.FieldSlider, min: 0, max: 40, step: 0.5, def: 2},
	{name: "department", label: "Department", kind: models.FieldSelect, column: models.ColumnDepartment},
	{name: "rating", label: "Performance Rating", kind: models.FieldSlider, min: 1, max: 5, step: 0.1, def: 3.5},
	{name: "company", label: "Company", kind: models.FieldSelect, column: models.ColumnCompany},
	{name: "location", label: "Location", kind: models.FieldSelect, column: models.ColumnLocation},
	{name: "education_level", label: "Education Level", kind: models.FieldSelect, column: models.ColumnEducation},
	{name: "job_level", label: "Job Level", kind: models.FieldSelect, column: models.ColumnJobLevel},
	{name: "work_mode", label: "Work Mode", kind: models.FieldSelect, column: models.ColumnWorkMode},
	{name: "years_in_company", label: "Years in Current Company", kind: models.FieldSlider, min: 0, max: 15, step: 0.5, def: 2},
	{name: "company_rating", label: "Company Rating", kind: models.FieldSlider, min: 2.5, max: 5, step: 0.1, def: 4},
}

// BuildForm describes the ten input controls. Select options are the sorted
// distinct dataset values. When current is non-nil its values are preselected.
func BuildForm(dataset repositories.DatasetRepository, current *models.PredictRequest) ([]models.FormField, error) {
	var values map[string]string
	if current != nil {
		values = requestValues(*current)
	}

	fields := make([]models.FormField, 0, len(formLayout))
	for _, spec := range formLayout {
		field := models.FormField{
			Name:  spec.name,
			Label: spec.label,
			Kind:  spec.kind,
		}

		switch spec.kind {
		case models.FieldSlider:
			field.Min, field.Max = ptr(spec.min), ptr(spec.max)
			field.Step, field.Default = ptr(spec.step), ptr(spec.def)
			field.Value = formatNumber(spec.def)
		case models.FieldSelect:
			options, err := dataset.DistinctValues(spec.column)
			if err != nil {
				return nil, fmt.Errorf("failed to list options for %s: %w", spec.label, err)
			}
			field.Options = options
			if len(options) > 0 {
				field.Value = options[0]
			}
		}

		if v, ok := values[spec.name]; ok && v != "" {
			field.Value = v
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func requestValues(r models.PredictRequest) map[string]string {
	return map[string]string{
		"years_experience": formatNumber(r.YearsExperience),
		"department":       r.Department,
		"rating":           formatNumber(r.Rating),
		"company":          r.Company,
		"location":         r.Location,
		"education_level":  r.EducationLevel,
		"job_level":        r.JobLevel,
		"work_mode":        r.WorkMode,
		"years_in_company": formatNumber(r.YearsInCompany),
		"company_rating":   formatNumber(r.CompanyRating),
	}
}

func ptr(v float64) *float64 {
	return &v
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
