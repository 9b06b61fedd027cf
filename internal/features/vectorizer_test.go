package features

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/internship-recommender/internal/types"
)

func ageOf(v float64) *float64 { return &v }

func sampleExamples() []types.TrainingExample {
	return []types.TrainingExample{
		{Skills: "python; data analysis", Interests: "ai; analytics", Education: "Bachelor's", Age: ageOf(22), Career: "Data Scientist"},
		{Skills: "python; machine learning", Interests: "data science", Education: "Master's", Age: ageOf(24), Career: "Data Scientist"},
		{Skills: "java; go", Interests: "software", Education: "Bachelor's", Age: ageOf(21), Career: "Software Engineer"},
		{Skills: "go; databases", Interests: "software; web", Education: "Bachelor's", Age: ageOf(26), Career: "Software Engineer"},
	}
}

func TestVectorizer_TransformBeforeFit(t *testing.T) {
	v := &Vectorizer{}
	_, err := v.TransformProfile(&types.LearnerProfile{Education: "Bachelor's", Skills: "go", Interests: "software"})
	assert.ErrorIs(t, err, ErrNotFitted)
}

func TestVectorizer_Deterministic(t *testing.T) {
	v1 := &Vectorizer{}
	v1.Fit(sampleExamples())
	v2 := &Vectorizer{}
	v2.Fit(sampleExamples())

	profile := &types.LearnerProfile{Education: "Bachelor's", Skills: "python; go", Interests: "software"}
	a, err := v1.TransformProfile(profile)
	require.NoError(t, err)
	b, err := v2.TransformProfile(profile)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, v1.Dim())
}

func TestVectorizer_TFIDFBlocksAreL2Normalized(t *testing.T) {
	v := &Vectorizer{}
	v.Fit(sampleExamples())

	vec, err := v.TransformProfile(&types.LearnerProfile{Education: "Bachelor's", Skills: "python; go", Interests: "software"})
	require.NoError(t, err)

	skillsDim := v.Skills.dim()
	norm := 0.0
	for _, x := range vec[:skillsDim] {
		norm += x * x
	}
	assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
}

func TestVectorizer_UnknownEducationEncodesToZeros(t *testing.T) {
	v := &Vectorizer{}
	v.Fit(sampleExamples())

	vec, err := v.TransformProfile(&types.LearnerProfile{Education: "PhD", Skills: "python", Interests: "ai"})
	require.NoError(t, err)

	oneHotStart := v.Skills.dim() + v.Interests.dim()
	for i := 0; i < len(v.EducationLevels); i++ {
		assert.Zero(t, vec[oneHotStart+i])
	}
}

func TestVectorizer_KnownEducationSetsOneColumn(t *testing.T) {
	v := &Vectorizer{}
	v.Fit(sampleExamples())
	require.Contains(t, v.EducationLevels, "bachelor's")

	vec, err := v.TransformProfile(&types.LearnerProfile{Education: "bachelor's", Skills: "python", Interests: "ai"})
	require.NoError(t, err)

	oneHotStart := v.Skills.dim() + v.Interests.dim()
	sum := 0.0
	for i := 0; i < len(v.EducationLevels); i++ {
		sum += vec[oneHotStart+i]
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestVectorizer_AgeScaling(t *testing.T) {
	v := &Vectorizer{}
	v.Fit(sampleExamples()) // ages 21..26

	young, err := v.TransformProfile(&types.LearnerProfile{Education: "Bachelor's", Skills: "go", Interests: "software", Age: intPtr(21)})
	require.NoError(t, err)
	old, err := v.TransformProfile(&types.LearnerProfile{Education: "Bachelor's", Skills: "go", Interests: "software", Age: intPtr(26)})
	require.NoError(t, err)
	outOfRange, err := v.TransformProfile(&types.LearnerProfile{Education: "Bachelor's", Skills: "go", Interests: "software", Age: intPtr(99)})
	require.NoError(t, err)

	ageIdx := v.Dim() - 1
	assert.InDelta(t, 0.0, young[ageIdx], 1e-9)
	assert.InDelta(t, 1.0, old[ageIdx], 1e-9)
	assert.InDelta(t, 1.0, outOfRange[ageIdx], 1e-9) // clamped
}

func TestVectorizer_MissingAgeImputesMedian(t *testing.T) {
	v := &Vectorizer{}
	v.Fit(sampleExamples())

	vec, err := v.TransformProfile(&types.LearnerProfile{Education: "Bachelor's", Skills: "go", Interests: "software"})
	require.NoError(t, err)

	ageIdx := v.Dim() - 1
	expected := (v.AgeMedian - v.AgeMin) / (v.AgeMax - v.AgeMin)
	assert.InDelta(t, expected, vec[ageIdx], 1e-9)
}

func intPtr(v int) *int { return &v }
