// Package types provides type definitions for structured data used throughout the internship recommender.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/go-playground/validator/v10"

// LearnerProfile represents the profile submitted by a learner asking for
// recommendations. Skills and interests are free text; commas and semicolons
// both act as separators.
type LearnerProfile struct {
	Education string `json:"education" validate:"required"`
	Skills    string `json:"skills" validate:"required"`
	Interests string `json:"interests" validate:"required"`
	Age       *int   `json:"age,omitempty" validate:"omitempty,gte=10,lte=100"`
	Location  string `json:"location,omitempty"`
}

// Validate validates the LearnerProfile using the validator.
func (p *LearnerProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}

// AgeValue returns the age as a float for feature building, or (0, false)
// when no age was provided.
func (p *LearnerProfile) AgeValue() (float64, bool) {
	if p.Age == nil {
		return 0, false
	}
	return float64(*p.Age), true
}
