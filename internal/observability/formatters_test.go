package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/internship-recommender/internal/types"
)

func TestPrintRecommendations(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations([]types.Recommendation{
		{Career: "Data Scientist", Score: 0.91, Rank: 1, Rationale: "Model score: 0.78; Rule-based alignment boost: +0.13"},
		{Career: "Software Engineer", Score: 0.55, Rank: 2, Rationale: "Model score: 0.42"},
	})

	out := buf.String()
	assert.Contains(t, out, "Top 2 Recommendations")
	assert.Contains(t, out, "1. Data Scientist (score 0.91)")
	assert.Contains(t, out, "2. Software Engineer (score 0.55)")
	assert.Contains(t, out, "Model score: 0.78")
}

func TestPrintRecommendations_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRecommendations(nil)

	assert.Equal(t, "No matches found. Try broadening your skills or location keywords.\n", buf.String())
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	age := 22
	p.PrintProfile(&types.LearnerProfile{
		Education: "Bachelor's",
		Skills:    "python, sql",
		Interests: "ai",
		Location:  "Lagos, Nigeria",
		Age:       &age,
	})

	out := buf.String()
	assert.Contains(t, out, "Learner Profile")
	assert.Contains(t, out, "Education: Bachelor's")
	assert.Contains(t, out, "Location:  Lagos, Nigeria")
	assert.Contains(t, out, "Age:       22")
}

func TestPrintProfile_NilIsNoop(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintProfile(nil)
	assert.Empty(t, buf.String())
}

func TestWrap(t *testing.T) {
	lines := wrap("one two three four", 9)
	assert.Equal(t, []string{"one two", "three", "four"}, lines)

	assert.Nil(t, wrap("", 10))
}
