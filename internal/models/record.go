package models

// Column is a canonical dataset column name.
type Column string

const (
	ColumnYearsExperience Column = "YearsExperience"
	ColumnDepartment      Column = "Department"
	ColumnSalary          Column = "Salary"
	ColumnRatings         Column = "Ratings"
	ColumnCompany         Column = "Company Name"
	ColumnLocation        Column = "Location"
	ColumnEducation       Column = "Education Level"
	ColumnJobLevel        Column = "Job Level"
	ColumnWorkMode        Column = "Work Mode"
	ColumnYearsInCompany  Column = "Years in Company"
	ColumnCompanyRating   Column = "Company Rating"
)

// NumericFeatures is the order in which numeric fields lead the feature vector.
var NumericFeatures = []Column{
	ColumnYearsExperience,
	ColumnRatings,
	ColumnYearsInCompany,
	ColumnCompanyRating,
}

// CategoricalFeatures is the order in which categorical fields are one-hot encoded.
var CategoricalFeatures = []Column{
	ColumnDepartment,
	ColumnCompany,
	ColumnLocation,
	ColumnEducation,
	ColumnJobLevel,
	ColumnWorkMode,
}

// ReferenceRecord is one row of the reference dataset, including synthesized columns.
type ReferenceRecord struct {
	YearsExperience float64 `json:"years_experience"`
	Department      string  `json:"department"`
	Ratings         float64 `json:"ratings"`
	Salary          float64 `json:"salary"`
	Company         string  `json:"company"`
	Location        string  `json:"location"`
	Education       string  `json:"education_level"`
	JobLevel        string  `json:"job_level"`
	WorkMode        string  `json:"work_mode"`
	YearsInCompany  float64 `json:"years_in_company"`
	CompanyRating   float64 `json:"company_rating"`
}

// QueryRecord is a user submitted tuple. It has the reference schema minus salary.
type QueryRecord struct {
	YearsExperience float64
	Department      string
	Ratings         float64
	Company         string
	Location        string
	Education       string
	JobLevel        string
	WorkMode        string
	YearsInCompany  float64
	CompanyRating   float64
}

// Numeric returns the numeric block of the feature vector in NumericFeatures order.
func (q QueryRecord) Numeric() []float64 {
	return []float64{q.YearsExperience, q.Ratings, q.YearsInCompany, q.CompanyRating}
}

// Categorical returns the categorical values in CategoricalFeatures order.
func (q QueryRecord) Categorical() []string {
	return []string{q.Department, q.Company, q.Location, q.Education, q.JobLevel, q.WorkMode}
}

// Categorical returns the value of a categorical column, or "" for unknown columns.
func (r ReferenceRecord) Categorical(col Column) string {
	switch col {
	case ColumnDepartment:
		return r.Department
	case ColumnCompany:
		return r.Company
	case ColumnLocation:
		return r.Location
	case ColumnEducation:
		return r.Education
	case ColumnJobLevel:
		return r.JobLevel
	case ColumnWorkMode:
		return r.WorkMode
	}
	return ""
}
