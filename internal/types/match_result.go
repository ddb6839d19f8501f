// Package types provides type definitions for structured data used throughout the career-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Factor names used as keys in MatchResult.FactorScores.
const (
	FactorSkill      = "skill"
	FactorExperience = "experience"
	FactorLocation   = "location"
	FactorTitle      = "title"
)

// MatchResult is the scored outcome of one (candidate, job) pair. It is
// a pure function of its inputs: identical inputs always produce an
// identical result.
type MatchResult struct {
	Job           *JobListing    `json:"job"`
	OverallScore  int            `json:"overall_score"`
	FactorScores  map[string]int `json:"factor_scores"`
	MatchedSkills []string       `json:"matched_skills"`
	MissingSkills []string       `json:"missing_skills"`
}

// RankedMatches is an ordered list of match results, best first.
type RankedMatches struct {
	Results []MatchResult `json:"results"`
}
