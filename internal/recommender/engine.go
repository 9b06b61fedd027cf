// Package recommender combines the classifier and the rule scorer into the
// single facade the presentation layer calls. An Engine is built once at
// startup and treated as read-only shared state; Recommend is a pure
// function of (profile, engine).
package recommender

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/internship-recommender/internal/classifier"
	"github.com/jonathan/internship-recommender/internal/dataset"
	"github.com/jonathan/internship-recommender/internal/rules"
	"github.com/jonathan/internship-recommender/internal/types"
)

// Mode selects how recommendations are scored.
type Mode string

const (
	// ModeRules uses only the weighted-sum rule scorer.
	ModeRules Mode = "rules"
	// ModeHybrid blends classifier probabilities with a scaled rule bonus.
	ModeHybrid Mode = "hybrid"
)

// ParseMode validates a mode string from flags or config.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeRules:
		return ModeRules, nil
	case ModeHybrid:
		return ModeHybrid, nil
	}
	return "", fmt.Errorf("unknown mode %q (want %q or %q)", s, ModeRules, ModeHybrid)
}

// hybridBonusScale scales the full rule score before it is added to the
// classifier probability. The sum is capped at 1.0; the rule weights
// themselves are never renormalized.
const hybridBonusScale = 0.25

// defaultRationale is used when no factor contributed to a result.
const defaultRationale = "Best overall fit based on profile."

// Engine holds the loaded dataset and optional model. Immutable after New.
type Engine struct {
	ds    *dataset.Dataset
	model *classifier.Model
	mode  Mode
}

// New builds an engine. Hybrid mode requires a trained model; refusing to
// build is the fail-fast path for serving.
func New(ds *dataset.Dataset, model *classifier.Model, mode Mode) (*Engine, error) {
	if ds == nil || len(ds.Records) == 0 {
		return nil, fmt.Errorf("recommender: empty dataset")
	}
	if mode == ModeHybrid && model == nil {
		return nil, fmt.Errorf("recommender: hybrid mode requires a model: %w", classifier.ErrNotTrained)
	}
	return &Engine{ds: ds, model: model, mode: mode}, nil
}

// Mode returns the scoring mode the engine was built with.
func (e *Engine) Mode() Mode { return e.mode }

// RecordCount returns the number of loaded career records.
func (e *Engine) RecordCount() int { return len(e.ds.Records) }

// ModelLoaded reports whether a trained model is attached.
func (e *Engine) ModelLoaded() bool { return e.model != nil }

// Recommend scores every career record for the profile and returns the top
// results, sorted by descending score with ties broken by dataset order.
// A limit <= 0 returns all results.
func (e *Engine) Recommend(profile *types.LearnerProfile, limit int) ([]types.Recommendation, error) {
	var (
		recs []types.Recommendation
		err  error
	)
	switch e.mode {
	case ModeHybrid:
		recs, err = e.recommendHybrid(profile)
	default:
		recs = e.recommendRules(profile)
	}
	if err != nil {
		return nil, err
	}

	// Stable sort preserves dataset order between equal scores.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Score > recs[j].Score
	})

	if limit > 0 && limit < len(recs) {
		recs = recs[:limit]
	}
	for i := range recs {
		recs[i].Rank = i + 1
	}
	return recs, nil
}

// recommendRules scores each record with the weighted sum and drops records
// with nothing in common with the profile.
func (e *Engine) recommendRules(profile *types.LearnerProfile) []types.Recommendation {
	recs := make([]types.Recommendation, 0, len(e.ds.Records))
	for i := range e.ds.Records {
		record := &e.ds.Records[i]
		result := rules.Score(profile, record)
		if result.Score <= 0 {
			continue
		}
		recs = append(recs, types.Recommendation{
			Career:         record.Title,
			Score:          result.Score,
			MatchedFactors: result.Factors,
			Rationale:      rationaleFromFactors(result.Factors),
		})
	}
	return recs
}

// recommendHybrid blends the classifier's probability for each career with
// a scaled rule bonus, capped at 1.0.
func (e *Engine) recommendHybrid(profile *types.LearnerProfile) ([]types.Recommendation, error) {
	probs, err := e.model.PredictProba(profile)
	if err != nil {
		return nil, err
	}
	probByCareer := make(map[string]float64, len(probs))
	for _, cp := range probs {
		probByCareer[strings.ToLower(cp.Career)] = cp.Probability
	}

	recs := make([]types.Recommendation, 0, len(e.ds.Records))
	for i := range e.ds.Records {
		record := &e.ds.Records[i]
		probability := probByCareer[strings.ToLower(record.Title)]
		result := rules.Score(profile, record)

		boost := hybridBonusScale * result.Score
		score := probability + boost
		if score > 1.0 {
			score = 1.0
		}

		recs = append(recs, types.Recommendation{
			Career:         record.Title,
			Score:          score,
			MatchedFactors: result.Factors,
			Rationale:      hybridRationale(probability, boost, result),
		})
	}
	return recs, nil
}

func rationaleFromFactors(factors []string) string {
	if len(factors) == 0 {
		return defaultRationale
	}
	return strings.Join(factors, " ")
}

func hybridRationale(probability, boost float64, result rules.Result) string {
	parts := []string{fmt.Sprintf("Model score: %.2f", probability)}
	if boost > 0 {
		parts = append(parts, fmt.Sprintf("Rule-based alignment boost: +%.2f", boost))
	}
	overlapParts := make([]string, 0, 2)
	if len(result.MatchedSkills) > 0 {
		overlapParts = append(overlapParts, fmt.Sprintf("skills: %s", strings.Join(result.MatchedSkills, ", ")))
	}
	if len(result.MatchedInterests) > 0 {
		overlapParts = append(overlapParts, fmt.Sprintf("interests: %s", strings.Join(result.MatchedInterests, ", ")))
	}
	if len(overlapParts) > 0 {
		parts = append(parts, fmt.Sprintf("Overlap on skills/interests: %s", strings.Join(overlapParts, "; ")))
	}
	return strings.Join(parts, "; ")
}
