package interview

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-match/internal/types"
)

// fakeClient returns canned JSON and records the prompt it was given.
type fakeClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeClient) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func testPair() (*types.CandidateProfile, *types.JobListing) {
	candidate := &types.CandidateProfile{
		Skills:          []string{"python", "postgresql"},
		ExperienceLevel: types.LevelMid,
	}
	job := &types.JobListing{
		ID:              "job-1",
		Title:           "Backend Engineer",
		RequiredSkills:  []string{"python", "django"},
		ExperienceLevel: types.LevelSenior,
	}
	return candidate, job
}

func TestGenerateQuestions(t *testing.T) {
	client := &fakeClient{response: `[
		{"question": "How do you tune a slow PostgreSQL query?", "category": "technical", "skill": "postgresql"},
		{"question": "Tell me about a project you led.", "category": "behavioral"}
	]`}

	candidate, job := testPair()
	set, err := GenerateQuestions(context.Background(), client, candidate, job, 2)
	require.NoError(t, err)

	assert.Equal(t, "job-1", set.JobID)
	assert.Equal(t, "Backend Engineer", set.JobTitle)
	require.Len(t, set.Questions, 2)
	assert.Equal(t, "postgresql", set.Questions[0].Skill)

	// The prompt carries the pairing context for the model.
	assert.Contains(t, client.prompt, "Backend Engineer")
	assert.Contains(t, client.prompt, "python, django")
	assert.Contains(t, client.prompt, "senior")
}

func TestGenerateQuestions_DefaultsCount(t *testing.T) {
	client := &fakeClient{response: `[{"question": "Q?", "category": "role"}]`}

	candidate, job := testPair()
	_, err := GenerateQuestions(context.Background(), client, candidate, job, 0)
	require.NoError(t, err)

	assert.Contains(t, client.prompt, fmt.Sprintf("exactly %d interview questions", DefaultQuestionCount))
}

func TestGenerateQuestions_ClampsCount(t *testing.T) {
	client := &fakeClient{response: `[{"question": "Q?"}]`}

	candidate, job := testPair()
	_, err := GenerateQuestions(context.Background(), client, candidate, job, 500)
	require.NoError(t, err)

	assert.Contains(t, client.prompt, fmt.Sprintf("exactly %d interview questions", maxQuestionCount))
}

func TestGenerateQuestions_BlankCategoryDefaults(t *testing.T) {
	client := &fakeClient{response: `[{"question": "What is a goroutine?"}]`}

	candidate, job := testPair()
	set, err := GenerateQuestions(context.Background(), client, candidate, job, 1)
	require.NoError(t, err)

	require.Len(t, set.Questions, 1)
	assert.Equal(t, "role", set.Questions[0].Category)
}

func TestGenerateQuestions_BadModelOutput(t *testing.T) {
	candidate, job := testPair()

	client := &fakeClient{response: `not json`}
	_, err := GenerateQuestions(context.Background(), client, candidate, job, 3)
	assert.Error(t, err)

	client = &fakeClient{response: `[{"question": "   "}]`}
	_, err = GenerateQuestions(context.Background(), client, candidate, job, 3)
	assert.Error(t, err)
}

func TestGenerateQuestions_ModelFailurePropagates(t *testing.T) {
	candidate, job := testPair()
	client := &fakeClient{err: fmt.Errorf("quota exceeded")}

	_, err := GenerateQuestions(context.Background(), client, candidate, job, 3)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "quota exceeded"))
}

func TestGenerateQuestions_NilInputs(t *testing.T) {
	candidate, job := testPair()

	_, err := GenerateQuestions(context.Background(), nil, candidate, job, 3)
	assert.Error(t, err)

	client := &fakeClient{response: `[]`}
	_, err = GenerateQuestions(context.Background(), client, nil, job, 3)
	assert.Error(t, err)
	_, err = GenerateQuestions(context.Background(), client, candidate, nil, 3)
	assert.Error(t, err)
}
