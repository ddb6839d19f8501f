package matching

import (
	"math"

	"github.com/jonathan/career-match/internal/normalize"
)

// titleScoreNeutral is returned when a title has no meaningful tokens
// left after stop-word removal.
const titleScoreNeutral = 50

// titleStopWords removes seniority adjectives and generic connector or
// filler words from job titles before relevance scoring. What remains
// should be the technology and discipline keywords.
var titleStopWords = map[string]bool{
	// seniority adjectives
	"senior": true, "junior": true, "lead": true, "principal": true,
	"staff": true, "mid": true, "entry": true, "intern": true,
	"associate": true, "head": true, "chief": true, "sr": true, "jr": true,
	// generic connectors and role fillers
	"and": true, "or": true, "of": true, "the": true, "for": true,
	"with": true, "in": true, "at": true, "to": true, "ii": true,
	"iii": true, "iv": true, "level": true, "engineer": true,
	"developer": true, "specialist": true, "consultant": true,
	"remote": true, "hybrid": true, "onsite": true,
}

// scoreTitle scores semantic overlap between a job title's meaningful
// keywords and the candidate's canonicalized skill set, scaled to
// [0, 100]. Titles that are all seniority and filler words score a
// neutral 50 rather than punishing the candidate for a vague title.
func scoreTitle(strategy normalize.Strategy, title string, candidateSkills []string) int {
	tokens := normalize.Tokenize(title)

	meaningful := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if titleStopWords[tok] {
			continue
		}
		if canonical := strategy.Canonicalize(tok); canonical != "" {
			meaningful = append(meaningful, canonical)
		}
	}
	if len(meaningful) == 0 {
		return titleScoreNeutral
	}

	skillSet := normalize.CanonicalSet(strategy, candidateSkills)

	hits := 0
	for _, tok := range meaningful {
		if skillSet[tok] {
			hits++
			continue
		}
		for skill := range skillSet {
			if strategy.IsMatch(tok, skill) {
				hits++
				break
			}
		}
	}

	return int(math.Round(float64(hits) / float64(len(meaningful)) * 100))
}
