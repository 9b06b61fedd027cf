package features

import (
	"errors"
	"sort"
	"strings"

	"github.com/jonathan/internship-recommender/internal/types"
)

// ErrNotFitted is returned when Transform is called before Fit.
var ErrNotFitted = errors.New("features: vectorizer not fitted")

// Vectorizer turns a learner profile into the feature vector the classifier
// expects. Layout: [skills tf-idf | interests tf-idf | one-hot education | age].
// All fields are exported so the fitted state gob-encodes as part of the
// model artifact.
type Vectorizer struct {
	Skills    *TFIDFBlock
	Interests *TFIDFBlock
	// EducationLevels holds the one-hot categories seen at fit time, sorted.
	// An unknown level at inference encodes to all zeros.
	EducationLevels []string
	AgeMin          float64
	AgeMax          float64
	AgeMedian       float64
	Fitted          bool
}

// Fit builds the vocabularies, education categories and age scaling range
// from the training examples.
func (v *Vectorizer) Fit(examples []types.TrainingExample) {
	skillDocs := make([]string, len(examples))
	interestDocs := make([]string, len(examples))
	eduSet := make(map[string]bool)
	ages := make([]float64, 0, len(examples))
	for i, ex := range examples {
		skillDocs[i] = ex.Skills
		interestDocs[i] = ex.Interests
		if level := normalizeEducation(ex.Education); level != "" {
			eduSet[level] = true
		}
		if ex.Age != nil {
			ages = append(ages, *ex.Age)
		}
	}

	v.Skills = fitTFIDF(skillDocs)
	v.Interests = fitTFIDF(interestDocs)

	v.EducationLevels = make([]string, 0, len(eduSet))
	for level := range eduSet {
		v.EducationLevels = append(v.EducationLevels, level)
	}
	sort.Strings(v.EducationLevels)

	v.AgeMin, v.AgeMax, v.AgeMedian = ageStats(ages)
	v.Fitted = true
}

// TransformProfile converts a learner profile into a feature vector.
func (v *Vectorizer) TransformProfile(p *types.LearnerProfile) ([]float64, error) {
	var age *float64
	if value, ok := p.AgeValue(); ok {
		age = &value
	}
	return v.transform(p.Skills, p.Interests, p.Education, age)
}

// TransformExample converts a training example into a feature vector.
func (v *Vectorizer) TransformExample(ex types.TrainingExample) ([]float64, error) {
	return v.transform(ex.Skills, ex.Interests, ex.Education, ex.Age)
}

// Dim returns the length of the produced feature vectors.
func (v *Vectorizer) Dim() int {
	if !v.Fitted {
		return 0
	}
	return v.Skills.dim() + v.Interests.dim() + len(v.EducationLevels) + 1
}

func (v *Vectorizer) transform(skills, interests, education string, age *float64) ([]float64, error) {
	if !v.Fitted {
		return nil, ErrNotFitted
	}

	vec := make([]float64, 0, v.Dim())
	vec = append(vec, v.Skills.transform(skills)...)
	vec = append(vec, v.Interests.transform(interests)...)

	oneHot := make([]float64, len(v.EducationLevels))
	level := normalizeEducation(education)
	for i, known := range v.EducationLevels {
		if known == level {
			oneHot[i] = 1
			break
		}
	}
	vec = append(vec, oneHot...)

	vec = append(vec, v.scaleAge(age))
	return vec, nil
}

// scaleAge min-max scales the age over the fit range; a missing age imputes
// the fit-time median.
func (v *Vectorizer) scaleAge(age *float64) float64 {
	value := v.AgeMedian
	if age != nil {
		value = *age
	}
	if v.AgeMax <= v.AgeMin {
		return 0
	}
	scaled := (value - v.AgeMin) / (v.AgeMax - v.AgeMin)
	if scaled < 0 {
		return 0
	}
	if scaled > 1 {
		return 1
	}
	return scaled
}

func normalizeEducation(level string) string {
	return strings.ToLower(strings.TrimSpace(level))
}

func ageStats(ages []float64) (min, max, median float64) {
	if len(ages) == 0 {
		return 0, 0, 0
	}
	sorted := make([]float64, len(ages))
	copy(sorted, ages)
	sort.Float64s(sorted)
	min = sorted[0]
	max = sorted[len(sorted)-1]
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		median = sorted[mid]
	}
	return min, max, median
}
