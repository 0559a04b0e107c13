// Package testutil holds fixtures shared by package tests.
package testutil

import (
	"encoding/json"
	"fmt"

	"alfredoptarigan/salary-estimator/internal/models"
)

// SalaryCSV mirrors the layout of the reference export, including columns the
// loader ignores. Manager has no salary figures at all.
const SalaryCSV = `FIRST NAME,LAST NAME,SEX,DOJ,CURRENT DATE,DESIGNATION,AGE,SALARY,UNIT,LEAVES USED,LEAVES REMAINING,RATINGS,PAST EXP
TOMASA,ARMEN,F,5-18-2014,01-07-2016,Engineering,21,50000,Finance,24,6,2,0
ANNIE,,F,,01-07-2016,Engineering,,60000,Web,,13,,7
OLIVE,ANCY,F,7-28-2014,01-07-2016,Engineering,21,70000,Finance,20,10,4,1
CHERRY,AQUILAR,F,04-03-2013,01-07-2016,Analyst,22,42000,Web,19,11,5,2
LEON,ABOULAHOUD,M,11-20-2014,01-07-2016,Analyst,24,45000,IT,22,8,3,1
ARLENE,,F,01-19-2012,01-07-2016,Manager,,,Marketing,21,9,4,8
`

// Departments present in SalaryCSV, sorted.
var Departments = []string{"Analyst", "Engineering", "Manager"}

// Vocabulary is the fitted category list per categorical feature, covering
// every value the synthesizer can produce.
func Vocabulary() [][]string {
	return [][]string{
		Departments,
		{"Accenture", "Amazon", "Google", "IBM", "Infosys", "Microsoft", "TCS", "Wipro"},
		{"Bangalore", "Chennai", "Delhi", "Hyderabad", "Mumbai", "Pune", "Remote", "USA"},
		{"Bachelor's", "Master's", "PhD"},
		{"Junior", "Mid", "Senior"},
		{"Hybrid", "Onsite", "Remote"},
	}
}

// FeatureWidth is 4 numeric features plus the one-hot width of Vocabulary.
func FeatureWidth() int {
	width := len(models.NumericFeatures)
	for _, cats := range Vocabulary() {
		width += len(cats)
	}
	return width
}

func baseArtifact() models.ArtifactFile {
	return models.ArtifactFile{
		FormatVersion:       models.ArtifactFormatVersion,
		NumericFeatures:     names(models.NumericFeatures),
		CategoricalFeatures: names(models.CategoricalFeatures),
		Encoder: &models.EncoderSpec{
			Type:       models.EncoderOneHot,
			Categories: Vocabulary(),
		},
	}
}

// LinearArtifact predicts 30000 + 5000 per year of experience.
func LinearArtifact() models.ArtifactFile {
	coef := make([]float64, FeatureWidth())
	coef[0] = 5000
	file := baseArtifact()
	file.Regressor = &models.RegressorSpec{
		Type:         models.RegressorLinear,
		Intercept:    30000,
		Coefficients: coef,
	}
	return file
}

// ForestArtifact has two trees. The first splits on experience, the second on
// the Engineering indicator (feature 5).
func ForestArtifact() models.ArtifactFile {
	file := baseArtifact()
	file.Regressor = &models.RegressorSpec{
		Type: models.RegressorRandomForest,
		Trees: []models.TreeSpec{
			{Nodes: []models.TreeNode{
				{Feature: 0, Threshold: 5, Left: 1, Right: 2},
				{Left: -1, Right: -1, Value: 40000},
				{Left: -1, Right: -1, Value: 80000},
			}},
			{Nodes: []models.TreeNode{
				{Feature: 5, Threshold: 0.5, Left: 1, Right: 2},
				{Left: -1, Right: -1, Value: 50000},
				{Left: -1, Right: -1, Value: 70000},
			}},
		},
	}
	return file
}

// JSON encodes an artifact file.
func JSON(file models.ArtifactFile) []byte {
	b, err := json.Marshal(file)
	if err != nil {
		panic(fmt.Sprintf("marshal artifact: %v", err))
	}
	return b
}

// Request returns a valid request whose categorical values are all in Vocabulary.
func Request(department string, yearsExperience float64) models.PredictRequest {
	return models.PredictRequest{
		YearsExperience: yearsExperience,
		Department:      department,
		Rating:          3.5,
		Company:         "Google",
		Location:        "Pune",
		EducationLevel:  "Master's",
		JobLevel:        "Mid",
		WorkMode:        "Hybrid",
		YearsInCompany:  2,
		CompanyRating:   4,
	}
}

func names(cols []models.Column) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = string(c)
	}
	return out
}
