package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/career-match/internal/types"
)

func TestParseExperienceLevel(t *testing.T) {
	tests := []struct {
		label string
		want  types.ExperienceLevel
	}{
		{"Senior Backend Engineer", types.LevelSenior},
		{"junior developer", types.LevelEntry},
		{"Entry Level", types.LevelEntry},
		{"associate engineer", types.LevelEntry},
		{"Mid-level", types.LevelMid},
		{"Intermediate", types.LevelMid},
		{"Principal Engineer", types.LevelPrincipal},
		{"Staff SWE", types.LevelPrincipal},
		{"Tech Lead", types.LevelLead},
		{"Engineering Manager", types.LevelLead},
		{"intern", types.LevelIntern},
		{"software trainee", types.LevelIntern},
		{"", types.LevelUnknown},
		{"wizard of code", types.LevelUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExperienceLevel(tt.label))
		})
	}
}

func TestScoreExperience_UnknownIsNeutral(t *testing.T) {
	assert.Equal(t, 50, scoreExperience(types.LevelUnknown, types.LevelSenior))
	assert.Equal(t, 50, scoreExperience(types.LevelMid, types.LevelUnknown))
	assert.Equal(t, 50, scoreExperience(types.LevelUnknown, types.LevelUnknown))
}

func TestScoreExperience_GapTable(t *testing.T) {
	// Exact match.
	assert.Equal(t, 100, scoreExperience(types.LevelSenior, types.LevelSenior))

	// Overqualification is penalized less than underqualification.
	assert.Equal(t, 90, scoreExperience(types.LevelSenior, types.LevelMid))
	assert.Equal(t, 70, scoreExperience(types.LevelPrincipal, types.LevelMid))
	assert.Equal(t, 70, scoreExperience(types.LevelPrincipal, types.LevelIntern))

	assert.Equal(t, 70, scoreExperience(types.LevelMid, types.LevelSenior))
	assert.Equal(t, 40, scoreExperience(types.LevelEntry, types.LevelSenior))
	assert.Equal(t, 20, scoreExperience(types.LevelIntern, types.LevelSenior))
	assert.Equal(t, 20, scoreExperience(types.LevelIntern, types.LevelPrincipal))
}

func TestScoreExperience_MidBelowSenior(t *testing.T) {
	// A mid-level candidate applying to a senior role sits one level under.
	assert.Equal(t, 70, scoreExperience(types.LevelMid, types.LevelSenior))
}
