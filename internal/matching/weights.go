// Package matching implements the candidate-job matching and scoring
// engine: per-factor scores, weighted composition, deduplication, and
// deterministic ranking of a job pool against one candidate profile.
package matching

import "fmt"

// Weights holds the per-factor contribution to the overall score. The
// four weights must sum to 1.0.
type Weights struct {
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Location   float64 `json:"location"`
	Title      float64 `json:"title"`
}

// DefaultWeights returns the documented factor weights: skill carries
// half the signal, experience a quarter, location and title the rest.
func DefaultWeights() Weights {
	return Weights{
		Skill:      0.50,
		Experience: 0.25,
		Location:   0.15,
		Title:      0.10,
	}
}

// weightSumTolerance absorbs float formatting error in config files.
const weightSumTolerance = 1e-9

// Validate checks that every weight is non-negative and the weights sum
// to 1.0. Called once at startup; scoring assumes validated weights.
func (w Weights) Validate() error {
	if w.Skill < 0 || w.Experience < 0 || w.Location < 0 || w.Title < 0 {
		return fmt.Errorf("weights must be non-negative: %+v", w)
	}
	sum := w.Skill + w.Experience + w.Location + w.Title
	if diff := sum - 1.0; diff > weightSumTolerance || diff < -weightSumTolerance {
		return fmt.Errorf("weights must sum to 1.0, got %g", sum)
	}
	return nil
}
