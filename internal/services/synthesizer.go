package services

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/stat/distuv"

	"alfredoptarigan/salary-estimator/internal/models"
)

// DefaultSynthSeed matches the seed the model was trained against.
const DefaultSynthSeed uint64 = 42

var (
	synthCompanies      = []string{"TCS", "Infosys", "Microsoft", "Google", "Amazon", "Accenture", "Wipro", "IBM"}
	synthLocations      = []string{"Bangalore", "Mumbai", "Pune", "Hyderabad", "Delhi", "Chennai", "Remote", "USA"}
	synthEducation      = []string{"Bachelor's", "Master's", "PhD"}
	synthEducationProbs = []float64{0.6, 0.3, 0.1}
	synthJobLevels      = []string{"Junior", "Mid", "Senior"}
	synthJobLevelProbs  = []float64{0.5, 0.3, 0.2}
	synthWorkModes      = []string{"Remote", "Onsite", "Hybrid"}
)

// Synthesizer fills the columns the source CSV lacks. It draws every value
// from a single source, so a fixed seed and row count give identical output.
type Synthesizer struct {
	src rand.Source
}

func NewSynthesizer(seed uint64) *Synthesizer {
	return NewSynthesizerFromSource(rand.NewPCG(seed, seed))
}

func NewSynthesizerFromSource(src rand.Source) *Synthesizer {
	return &Synthesizer{src: src}
}

// Augment assigns synthesized attributes to every record, one column at a time.
func (s *Synthesizer) Augment(records []models.ReferenceRecord) {
	companies := s.choice(synthCompanies, nil, len(records))
	locations := s.choice(synthLocations, nil, len(records))
	education := s.choice(synthEducation, synthEducationProbs, len(records))
	jobLevels := s.choice(synthJobLevels, synthJobLevelProbs, len(records))
	workModes := s.choice(synthWorkModes, nil, len(records))
	yearsInCompany := s.uniform(0.5, 10.0, len(records))
	companyRating := s.uniform(2.5, 5.0, len(records))

	for i := range records {
		records[i].Company = companies[i]
		records[i].Location = locations[i]
		records[i].Education = education[i]
		records[i].JobLevel = jobLevels[i]
		records[i].WorkMode = workModes[i]
		records[i].YearsInCompany = yearsInCompany[i]
		records[i].CompanyRating = companyRating[i]
	}
}

// choice samples n values with replacement. A nil weights slice means uniform.
func (s *Synthesizer) choice(values []string, weights []float64, n int) []string {
	if weights == nil {
		weights = make([]float64, len(values))
		for i := range weights {
			weights[i] = 1
		}
	}
	dist := distuv.NewCategorical(weights, s.src)

	out := make([]string, n)
	for i := range out {
		out[i] = values[int(dist.Rand())]
	}
	return out
}

// uniform samples n values in [lo, hi) rounded to one decimal place.
func (s *Synthesizer) uniform(lo, hi float64, n int) []float64 {
	dist := distuv.Uniform{Min: lo, Max: hi, Src: s.src}

	out := make([]float64, n)
	for i := range out {
		out[i] = scalar.Round(dist.Rand(), 1)
	}
	return out
}
