// Package rules implements the deterministic weighted-sum scorer: skill and
// interest overlap, education fit and location proximity, with a flat bonus
// for remote/hybrid roles.
package rules

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/internship-recommender/internal/features"
	"github.com/jonathan/internship-recommender/internal/types"
)

// Scoring weights. The bonus is added flat on top of the weighted sum, so a
// remote/hybrid role always scores exactly 0.05 above its base score.
const (
	SkillsWeight    = 0.40
	InterestsWeight = 0.25
	EducationWeight = 0.20
	LocationWeight  = 0.15
	RemoteBonus     = 0.05
)

// Result is the rule score for one career record plus the matched factors
// that feed the rationale string.
type Result struct {
	Score            float64
	Factors          []string
	MatchedSkills    []string
	MatchedInterests []string
}

// Score computes the weighted rule-based score of a profile against one
// career record.
func Score(profile *types.LearnerProfile, record *types.CareerRecord) Result {
	var res Result

	skillScore, matchedSkills := overlap(features.TokenSet(profile.Skills), record.Skills)
	res.MatchedSkills = matchedSkills
	if skillScore > 0 {
		res.Factors = append(res.Factors, fmt.Sprintf("Skills match: %s.", strings.Join(matchedSkills, ", ")))
	}

	interestScore, matchedInterests := overlap(features.TokenSet(profile.Interests), record.Interests)
	res.MatchedInterests = matchedInterests
	if interestScore > 0 {
		res.Factors = append(res.Factors, fmt.Sprintf("Interests match: %s.", strings.Join(matchedInterests, ", ")))
	}

	educationScore := educationMatch(profile.Education, record.EducationLevels)
	if educationScore > 0 {
		res.Factors = append(res.Factors, fmt.Sprintf("Education level fits (%s).", strings.TrimSpace(profile.Education)))
	}

	locationScore := locationMatch(profile.Location, record.Location)
	switch locationScore {
	case 1.0:
		res.Factors = append(res.Factors, "Location match for local access.")
	case 0.5:
		res.Factors = append(res.Factors, "Near-by region match for travel-friendly placement.")
	}

	res.Score = skillScore*SkillsWeight +
		interestScore*InterestsWeight +
		educationScore*EducationWeight +
		locationScore*LocationWeight

	if record.RemoteFriendly() {
		res.Score += RemoteBonus
		res.Factors = append(res.Factors, "Hybrid/remote friendly for low-bandwidth access.")
	}

	return res
}

// overlap returns the fraction of the record's tokens present in the
// profile's token set, and the matched tokens sorted for stable rationale
// text. Zero when either side is empty.
func overlap(profileTokens map[string]bool, recordItems []string) (float64, []string) {
	if len(profileTokens) == 0 || len(recordItems) == 0 {
		return 0, nil
	}

	recordTokens := make(map[string]bool, len(recordItems))
	for _, item := range recordItems {
		token := strings.ToLower(strings.TrimSpace(item))
		if token != "" {
			recordTokens[token] = true
		}
	}
	if len(recordTokens) == 0 {
		return 0, nil
	}

	matched := make([]string, 0, len(recordTokens))
	for token := range recordTokens {
		if profileTokens[token] {
			matched = append(matched, token)
		}
	}
	sort.Strings(matched)

	return float64(len(matched)) / float64(len(recordTokens)), matched
}

// educationMatch is binary: 1.0 when the profile's education level appears
// in the record's accepted levels, case-insensitively.
func educationMatch(education string, levels []string) float64 {
	education = strings.ToLower(strings.TrimSpace(education))
	if education == "" {
		return 0
	}
	for _, level := range levels {
		if strings.ToLower(strings.TrimSpace(level)) == education {
			return 1.0
		}
	}
	return 0
}

// locationMatch scores 1.0 for an exact match and 0.5 for a light proximity
// heuristic: few combined region tokens and an identical leading word.
func locationMatch(userLocation, recordLocation string) float64 {
	userLoc := strings.ToLower(strings.TrimSpace(userLocation))
	if userLoc == "" {
		return 0
	}
	recordLoc := strings.ToLower(strings.TrimSpace(recordLocation))
	if recordLoc == "" {
		return 0
	}
	if userLoc == recordLoc {
		return 1.0
	}

	regions := make(map[string]bool)
	for _, part := range strings.Split(userLoc+","+recordLoc, ",") {
		if token := strings.TrimSpace(part); token != "" {
			regions[token] = true
		}
	}
	splitLoc := func(s string) []string {
		return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' })
	}
	userFirst := splitLoc(userLoc)
	recordFirst := splitLoc(recordLoc)
	if len(regions) < 4 && len(userFirst) > 0 && len(recordFirst) > 0 && userFirst[0] == recordFirst[0] {
		return 0.5
	}
	return 0
}
