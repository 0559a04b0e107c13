package models

// PredictRequest is the submitted form. Bounds and steps mirror the form controls.
type PredictRequest struct {
	YearsExperience float64 `json:"years_experience" form:"years_experience" validate:"gte=0,lte=40,step=0.5"`
	Department      string  `json:"department" form:"department" validate:"required"`
	Rating          float64 `json:"rating" form:"rating" validate:"gte=1,lte=5,step=0.1"`
	Company         string  `json:"company" form:"company" validate:"required"`
	Location        string  `json:"location" form:"location" validate:"required"`
	EducationLevel  string  `json:"education_level" form:"education_level" validate:"required"`
	JobLevel        string  `json:"job_level" form:"job_level" validate:"required"`
	WorkMode        string  `json:"work_mode" form:"work_mode" validate:"required"`
	YearsInCompany  float64 `json:"years_in_company" form:"years_in_company" validate:"gte=0,lte=15,step=0.5"`
	CompanyRating   float64 `json:"company_rating" form:"company_rating" validate:"gte=2.5,lte=5,step=0.1"`
}

// ToQuery converts the request into a QueryRecord.
func (r PredictRequest) ToQuery() QueryRecord {
	return QueryRecord{
		YearsExperience: r.YearsExperience,
		Department:      r.Department,
		Ratings:         r.Rating,
		Company:         r.Company,
		Location:        r.Location,
		Education:       r.EducationLevel,
		JobLevel:        r.JobLevel,
		WorkMode:        r.WorkMode,
		YearsInCompany:  r.YearsInCompany,
		CompanyRating:   r.CompanyRating,
	}
}

type FieldKind string

const (
	FieldSlider FieldKind = "slider"
	FieldSelect FieldKind = "select"
)

// FormField describes one bounded input control. Slider bounds are always
// present, select fields carry Options instead.
type FormField struct {
	Name    string    `json:"name"`
	Label   string    `json:"label"`
	Kind    FieldKind `json:"kind"`
	Min     *float64  `json:"min,omitempty"`
	Max     *float64  `json:"max,omitempty"`
	Step    *float64  `json:"step,omitempty"`
	Default *float64  `json:"default,omitempty"`
	Options []string  `json:"options,omitempty"`
	Value   string    `json:"value"`
}

// DepartmentStats summarizes the salaries of one department.
type DepartmentStats struct {
	Department string  `json:"department"`
	Count      int     `json:"count"`
	Rows       int     `json:"rows"`
	Min        float64 `json:"min"`
	Mean       float64 `json:"mean"`
	Max        float64 `json:"max"`
}

// Comparison places a prediction within its department.
type Comparison struct {
	Stats      DepartmentStats `json:"stats"`
	Prediction float64         `json:"prediction"`
	Percentile float64         `json:"percentile"`
}

// Estimate is the full result of one prediction request.
type Estimate struct {
	Query      QueryRecord `json:"-"`
	Prediction float64     `json:"prediction"`
	Comparison Comparison  `json:"comparison"`
	Chart      Chart       `json:"chart"`
}

// ChartBar is one horizontal bar of the comparison chart.
type ChartBar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Text  string  `json:"text"`
	Color string  `json:"color"`
	Y     float64 `json:"-"`
	Width float64 `json:"-"`
	TextX float64 `json:"-"`
	TextY float64 `json:"-"`
}

// Chart holds the bars plus the geometry used to draw them as SVG.
type Chart struct {
	Bars        []ChartBar `json:"bars"`
	Width       float64    `json:"-"`
	Height      float64    `json:"-"`
	LabelWidth  float64    `json:"-"`
	AxisLabel   string     `json:"axis_label"`
	AxisLabelX  float64    `json:"-"`
	AxisLabelY  float64    `json:"-"`
	BarHeight   float64    `json:"-"`
	LabelOffset float64    `json:"-"`
}

// PredictResponse is the JSON form of an Estimate.
type PredictResponse struct {
	RequestID       string          `json:"request_id,omitempty"`
	PredictedSalary float64         `json:"predicted_salary"`
	PredictedText   string          `json:"predicted_salary_text"`
	Department      DepartmentStats `json:"department"`
	Percentile      float64         `json:"percentile"`
	PercentileText  string          `json:"percentile_text"`
	Chart           []ChartBar      `json:"chart"`
}

// HealthResponse reports the loaded resources.
type HealthResponse struct {
	Status       string `json:"status"`
	DatasetRows  int    `json:"dataset_rows"`
	ModelKind    string `json:"model_kind"`
	FeatureCount int    `json:"feature_count"`
	Uptime       string `json:"uptime"`
}
