package matching

import (
	"math"
	"sort"

	"github.com/jonathan/career-match/internal/normalize"
)

// Skill score composition: required skills carry three quarters of the
// signal, preferred skills the rest.
const (
	requiredPortion  = 75.0
	preferredPortion = 25.0

	// Candidates with at least surplusThreshold skills beyond anything
	// the job asked for earn a small breadth bonus.
	surplusThreshold = 3
	surplusBonus     = 5
)

// skillScore is the outcome of matching one candidate skill set against
// one job's requirements.
type skillScore struct {
	score   int
	matched []string
	missing []string
}

// scoreSkills scores the overlap between candidate skills and a job's
// required and preferred skill sets. All sets are canonicalized first;
// a required skill counts as matched when any candidate skill matches
// it under the strategy.
func scoreSkills(strategy normalize.Strategy, candidate, required, preferred []string) skillScore {
	candidateSet := canonicalSlice(strategy, candidate)
	requiredSet := canonicalSlice(strategy, required)
	preferredSet := canonicalSlice(strategy, preferred)

	matchedRequired, missing := matchAgainst(strategy, candidateSet, requiredSet)
	matchedPreferred, _ := matchAgainst(strategy, candidateSet, preferredSet)

	// An empty set on either side means there is nothing to fail: a job
	// with no listed skills at all scores the full base of 100, because
	// a candidate cannot be penalized against unstated requirements.
	requiredRatio := 1.0
	if len(requiredSet) > 0 {
		requiredRatio = float64(len(matchedRequired)) / float64(len(requiredSet))
	}
	preferredRatio := 1.0
	if len(preferredSet) > 0 {
		preferredRatio = float64(len(matchedPreferred)) / float64(len(preferredSet))
	}

	base := requiredRatio*requiredPortion + preferredRatio*preferredPortion
	score := int(math.Round(base))

	// Breadth bonus: surplus skills beyond everything requested.
	surplus := countSurplus(strategy, candidateSet, requiredSet, preferredSet)
	if surplus >= surplusThreshold {
		score += surplusBonus
	}

	if score > 100 {
		score = 100
	}

	matched := unionSorted(matchedRequired, matchedPreferred)
	sort.Strings(missing)

	return skillScore{score: score, matched: matched, missing: missing}
}

// canonicalSlice canonicalizes and deduplicates raw skills, preserving
// a sorted order for deterministic iteration.
func canonicalSlice(strategy normalize.Strategy, raw []string) []string {
	set := normalize.CanonicalSet(strategy, raw)
	out := make([]string, 0, len(set))
	for skill := range set {
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

// matchAgainst partitions wanted skills into those matched by at least
// one candidate skill and those missed.
func matchAgainst(strategy normalize.Strategy, candidate, wanted []string) (matched, missing []string) {
	for _, want := range wanted {
		found := false
		for _, have := range candidate {
			if strategy.IsMatch(have, want) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, want)
		} else {
			missing = append(missing, want)
		}
	}
	return matched, missing
}

// countSurplus counts candidate skills that match nothing the job
// listed, required or preferred.
func countSurplus(strategy normalize.Strategy, candidate, required, preferred []string) int {
	surplus := 0
	for _, have := range candidate {
		used := false
		for _, want := range required {
			if strategy.IsMatch(have, want) {
				used = true
				break
			}
		}
		if !used {
			for _, want := range preferred {
				if strategy.IsMatch(have, want) {
					used = true
					break
				}
			}
		}
		if !used {
			surplus++
		}
	}
	return surplus
}

// unionSorted merges two string slices into a sorted, deduplicated one.
func unionSorted(a, b []string) []string {
	set := make(map[string]bool, len(a)+len(b))
	for _, s := range a {
		set[s] = true
	}
	for _, s := range b {
		set[s] = true
	}
	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
