package matching

import (
	"strings"

	"github.com/jonathan/career-match/internal/types"
)

// Experience score table. Overqualification costs less than
// underqualification: a senior candidate can usually perform a
// mid-level role, the reverse is riskier.
const (
	expScoreNeutral    = 50  // either side unknown
	expScoreExact      = 100 // candidate == job
	expScoreOverOne    = 90  // one level above requirement
	expScoreOverMany   = 70  // two or more levels above
	expScoreUnderOne   = 70  // one level below
	expScoreUnderTwo   = 40  // two levels below
	expScoreUnderThree = 20  // three or more levels below
)

// levelKeywords maps free-text seniority wording onto the ordinal
// hierarchy. Lookup is substring-based over the lowercased label, most
// senior keywords first so "senior staff engineer" resolves above
// "engineer".
var levelKeywords = []struct {
	keyword string
	level   types.ExperienceLevel
}{
	{"principal", types.LevelPrincipal},
	{"staff", types.LevelPrincipal},
	{"architect", types.LevelPrincipal},
	{"lead", types.LevelLead},
	{"head", types.LevelLead},
	{"manager", types.LevelLead},
	{"senior", types.LevelSenior},
	{"sr.", types.LevelSenior},
	{"sr ", types.LevelSenior},
	{"intern", types.LevelIntern},
	{"trainee", types.LevelIntern},
	{"junior", types.LevelEntry},
	{"jr", types.LevelEntry},
	{"entry", types.LevelEntry},
	{"associate", types.LevelEntry},
	{"graduate", types.LevelEntry},
	{"fresher", types.LevelEntry},
	{"mid", types.LevelMid},
	{"intermediate", types.LevelMid},
}

// ParseExperienceLevel maps a free-text seniority label onto the
// ordinal hierarchy. Unrecognized text maps to LevelUnknown, never to a
// guess.
func ParseExperienceLevel(label string) types.ExperienceLevel {
	text := strings.ToLower(strings.TrimSpace(label))
	if text == "" {
		return types.LevelUnknown
	}
	for _, lk := range levelKeywords {
		if strings.Contains(text, lk.keyword) {
			return lk.level
		}
	}
	return types.LevelUnknown
}

// scoreExperience scores the seniority gap between candidate and job.
// Missing data on either side is neutral, not a penalty.
func scoreExperience(candidate, job types.ExperienceLevel) int {
	if !candidate.Known() || !job.Known() {
		return expScoreNeutral
	}

	gap := int(candidate) - int(job)
	switch {
	case gap == 0:
		return expScoreExact
	case gap == 1:
		return expScoreOverOne
	case gap >= 2:
		return expScoreOverMany
	case gap == -1:
		return expScoreUnderOne
	case gap == -2:
		return expScoreUnderTwo
	default:
		return expScoreUnderThree
	}
}
