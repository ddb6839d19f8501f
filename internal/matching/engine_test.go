package matching

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-match/internal/types"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(Options{})
	require.NoError(t, err)
	return engine
}

func TestNewEngine_RejectsBadWeights(t *testing.T) {
	_, err := NewEngine(Options{Weights: &Weights{Skill: 0.9, Experience: 0.9}})
	assert.Error(t, err)

	_, err = NewEngine(Options{Weights: &Weights{Skill: 1.5, Experience: -0.5}})
	assert.Error(t, err)
}

func TestWeights_DefaultsSumToOne(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
}

func TestScore_OverallArithmetic(t *testing.T) {
	// skill=85, experience=70, location=75, title=80
	// => round(85*0.5 + 70*0.25 + 75*0.15 + 80*0.10) = round(79.25) = 79
	w := DefaultWeights()
	overall := w.Skill*85 + w.Experience*70 + w.Location*75 + w.Title*80

	assert.InDelta(t, 79.25, overall, 1e-9)
	assert.Equal(t, 79, clampScore(int(overall+0.5)))
}

func TestScore_NeutralDefaults(t *testing.T) {
	engine := newTestEngine(t)

	candidate := &types.CandidateProfile{
		Skills:          []string{"python"},
		ExperienceLevel: types.LevelUnknown,
	}
	job := &types.JobListing{ID: "job-1"}

	result := engine.Score(candidate, job)

	// A job with no skills, no experience level, and no location is
	// scored neutrally, never penalized for missing data.
	assert.Equal(t, 100, result.FactorScores[types.FactorSkill])
	assert.Equal(t, 50, result.FactorScores[types.FactorExperience])
	assert.Equal(t, 50, result.FactorScores[types.FactorLocation])
}

func TestScore_OmittedExperienceLevelIsNeutral(t *testing.T) {
	engine := newTestEngine(t)

	// A profile decoded from a payload that never mentions
	// experience_level scores neutral experience, not intern.
	var candidate types.CandidateProfile
	require.NoError(t, json.Unmarshal([]byte(`{"skills": ["go"]}`), &candidate))

	job := &types.JobListing{ID: "job-1", ExperienceLevel: types.LevelSenior}
	result := engine.Score(&candidate, job)

	assert.Equal(t, 50, result.FactorScores[types.FactorExperience])
}

func TestScore_AllFactorsInRange(t *testing.T) {
	engine := newTestEngine(t)

	candidates := []*types.CandidateProfile{
		{Skills: []string{}},
		{Skills: []string{"python", "go", "react", "docker", "kubernetes"}, ExperienceLevel: types.LevelSenior, Location: "Cairo"},
		{Skills: []string{"cobol"}, ExperienceLevel: types.LevelIntern, Location: "Narnia"},
	}
	jobs := []*types.JobListing{
		{ID: "a"},
		{ID: "b", Title: "Senior Go Engineer", RequiredSkills: []string{"go", "grpc"}, PreferredSkills: []string{"kubernetes"}, ExperienceLevel: types.LevelPrincipal, Location: "Lagos"},
		{ID: "c", Title: "Intern", RequiredSkills: []string{"java"}, Remote: true, ExperienceLevel: types.LevelIntern},
	}

	for _, c := range candidates {
		for _, j := range jobs {
			result := engine.Score(c, j)
			assert.GreaterOrEqual(t, result.OverallScore, 0)
			assert.LessOrEqual(t, result.OverallScore, 100)
			for factor, score := range result.FactorScores {
				assert.GreaterOrEqualf(t, score, 0, "factor %s", factor)
				assert.LessOrEqualf(t, score, 100, "factor %s", factor)
			}
		}
	}
}

func TestScore_Deterministic(t *testing.T) {
	engine := newTestEngine(t)

	candidate := &types.CandidateProfile{
		Skills:          []string{"python", "react", "postgresql"},
		ExperienceLevel: types.LevelMid,
		Location:        "Cairo",
	}
	job := &types.JobListing{
		ID:              "job-42",
		Title:           "Python Developer",
		RequiredSkills:  []string{"python", "django"},
		PreferredSkills: []string{"react"},
		ExperienceLevel: types.LevelSenior,
		Location:        "Dubai",
		PostedAt:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	first := engine.Score(candidate, job)
	second := engine.Score(candidate, job)

	assert.Equal(t, first, second)
}

func TestScore_CustomWeights(t *testing.T) {
	skillOnly := Weights{Skill: 1.0}
	engine, err := NewEngine(Options{Weights: &skillOnly})
	require.NoError(t, err)

	candidate := &types.CandidateProfile{Skills: []string{"python"}}
	job := &types.JobListing{ID: "j", RequiredSkills: []string{"python"}}

	result := engine.Score(candidate, job)
	assert.Equal(t, result.FactorScores[types.FactorSkill], result.OverallScore)
}
