package matching

import (
	"fmt"
	"math"

	"github.com/jonathan/career-match/internal/normalize"
	"github.com/jonathan/career-match/internal/types"
)

// Engine scores job listings against candidate profiles. It holds only
// read-only lookup state (normalization strategy, weights, region
// table) built at construction, so one Engine is safe for concurrent
// use across requests.
type Engine struct {
	strategy normalize.Strategy
	weights  Weights
	regions  *RegionTable
}

// Options configures an Engine. Zero-value fields fall back to the
// production defaults.
type Options struct {
	Strategy normalize.Strategy
	Weights  *Weights
	Regions  *RegionTable
}

// NewEngine creates a scoring engine, validating the weights up front
// so scoring never has to.
func NewEngine(opts Options) (*Engine, error) {
	weights := DefaultWeights()
	if opts.Weights != nil {
		weights = *opts.Weights
	}
	if err := weights.Validate(); err != nil {
		return nil, fmt.Errorf("invalid factor weights: %w", err)
	}

	strategy := opts.Strategy
	if strategy == nil {
		strategy = normalize.NewStrategy(nil)
	}

	regions := opts.Regions
	if regions == nil {
		regions = DefaultRegionTable()
	}

	return &Engine{strategy: strategy, weights: weights, regions: regions}, nil
}

// Score computes the match result for one (candidate, job) pair. It is
// a pure function: no I/O, no mutation, identical inputs always yield
// an identical result.
func (e *Engine) Score(candidate *types.CandidateProfile, job *types.JobListing) types.MatchResult {
	skill := scoreSkills(e.strategy, candidate.Skills, job.RequiredSkills, job.PreferredSkills)
	experience := scoreExperience(candidate.ExperienceLevel, job.ExperienceLevel)
	location := e.regions.scoreLocation(candidate.Location, job.Location, job.Remote)
	title := scoreTitle(e.strategy, job.Title, candidate.Skills)

	overall := e.weights.Skill*float64(skill.score) +
		e.weights.Experience*float64(experience) +
		e.weights.Location*float64(location) +
		e.weights.Title*float64(title)

	return types.MatchResult{
		Job:          job,
		OverallScore: clampScore(int(math.Round(overall))),
		FactorScores: map[string]int{
			types.FactorSkill:      skill.score,
			types.FactorExperience: experience,
			types.FactorLocation:   location,
			types.FactorTitle:      title,
		},
		MatchedSkills: skill.matched,
		MissingSkills: skill.missing,
	}
}

// clampScore bounds a composed score to [0, 100].
func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
