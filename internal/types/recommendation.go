package types

// Recommendation is a single ranked result returned to the caller.
// Rank is 1-based and reflects the position after sorting by descending
// score with ties broken by dataset order.
type Recommendation struct {
	Career         string   `json:"career"`
	Score          float64  `json:"score"`
	Rank           int      `json:"rank"`
	MatchedFactors []string `json:"matched_factors,omitempty"`
	Rationale      string   `json:"rationale"`
}
