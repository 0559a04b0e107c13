package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/salary-estimator/internal/models"
)

func validRequest() models.PredictRequest {
	return models.PredictRequest{
		YearsExperience: 3,
		Department:      "Analyst",
		Rating:          4,
		Company:         "TCS",
		Location:        "Pune",
		EducationLevel:  "PhD",
		JobLevel:        "Senior",
		WorkMode:        "Remote",
		YearsInCompany:  1,
		CompanyRating:   3,
	}
}

func TestValidateAcceptsBounds(t *testing.T) {
	req := validRequest()
	assert.NoError(t, Validate(req))

	req.YearsExperience, req.Rating, req.YearsInCompany, req.CompanyRating = 40, 5, 15, 2.5
	assert.NoError(t, Validate(req))
}

func TestValidateReportsFields(t *testing.T) {
	req := validRequest()
	req.YearsExperience = 41
	req.CompanyRating = 2
	req.WorkMode = ""

	err := Validate(req)
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))

	messages := make(map[string]string, len(errs))
	for _, e := range errs {
		messages[e.Field] = e.Message
	}
	assert.Equal(t, map[string]string{
		"years_experience": "must be at most 40",
		"company_rating":   "must be at least 2.5",
		"work_mode":        "is required",
	}, messages)
	assert.Contains(t, err.Error(), "work_mode: is required")
}

func TestValidateStep(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.PredictRequest)
		field  string
	}{
		{"experience off the half-year grid", func(r *models.PredictRequest) { r.YearsExperience = 2.3 }, "years_experience"},
		{"rating with two decimals", func(r *models.PredictRequest) { r.Rating = 3.55 }, "rating"},
		{"tenure off the half-year grid", func(r *models.PredictRequest) { r.YearsInCompany = 1.2 }, "years_in_company"},
		{"company rating with two decimals", func(r *models.PredictRequest) { r.CompanyRating = 4.05 }, "company_rating"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			var errs ValidationErrors
			require.True(t, errors.As(Validate(req), &errs))
			require.Len(t, errs, 1)
			assert.Equal(t, tt.field, errs[0].Field)
			assert.Contains(t, errs[0].Message, "must be a multiple of")
		})
	}
}

func TestValidateStepAcceptsSliderValues(t *testing.T) {
	req := validRequest()
	req.YearsExperience, req.Rating, req.YearsInCompany, req.CompanyRating = 12.5, 3.7, 14.5, 2.6
	assert.NoError(t, Validate(req))
}
