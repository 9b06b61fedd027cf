package types

import "strings"

// CareerRecord represents a single internship or career opportunity loaded
// from the dataset. Records are immutable once loaded.
type CareerRecord struct {
	ID              string   `json:"id,omitempty"`
	Title           string   `json:"title"`
	Organization    string   `json:"organization,omitempty"`
	Location        string   `json:"location,omitempty"`
	EducationLevels []string `json:"education_levels"`
	Skills          []string `json:"skills"`
	Interests       []string `json:"interests"`
	Description     string   `json:"description,omitempty"`
	Compensation    string   `json:"compensation,omitempty"`
	DeliveryMode    string   `json:"delivery_mode,omitempty"`
	// HistoricalScore carries the Recommendation_Score column when present.
	HistoricalScore float64 `json:"historical_score,omitempty"`
}

// RemoteFriendly reports whether the record is flagged remote or hybrid.
func (r *CareerRecord) RemoteFriendly() bool {
	switch strings.ToLower(strings.TrimSpace(r.DeliveryMode)) {
	case "remote", "hybrid":
		return true
	}
	return false
}

// TrainingExample is one historical row used to fit the classifier:
// a candidate's profile fields and the career they were recommended.
type TrainingExample struct {
	Skills    string
	Interests string
	Education string
	Age       *float64
	Career    string
}
