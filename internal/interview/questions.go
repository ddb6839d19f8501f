// Package interview generates interview simulation questions for a
// candidate-job pair using the LLM client.
package interview

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jonathan/career-match/internal/llm"
	"github.com/jonathan/career-match/internal/types"
)

// DefaultQuestionCount is the number of questions requested when the
// caller does not specify one.
const DefaultQuestionCount = 8

const maxQuestionCount = 20

// GenerateQuestions builds an interview session for a candidate-job
// pair. Question count is clamped to a sane range; scoring of answers
// is out of scope here.
func GenerateQuestions(ctx context.Context, client llm.Client, candidate *types.CandidateProfile, job *types.JobListing, count int) (*types.InterviewSet, error) {
	if client == nil {
		return nil, fmt.Errorf("llm client is required")
	}
	if candidate == nil || job == nil {
		return nil, fmt.Errorf("candidate and job are required")
	}
	if count <= 0 {
		count = DefaultQuestionCount
	}
	if count > maxQuestionCount {
		count = maxQuestionCount
	}

	raw, err := client.GenerateJSON(ctx, buildPrompt(candidate, job, count))
	if err != nil {
		return nil, fmt.Errorf("generating interview questions: %w", err)
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		return nil, err
	}

	return &types.InterviewSet{
		JobID:     job.ID,
		JobTitle:  job.Title,
		Questions: questions,
	}, nil
}

// buildPrompt assembles the generation prompt from the pair's skills
// and seniority.
func buildPrompt(candidate *types.CandidateProfile, job *types.JobListing, count int) string {
	var sb strings.Builder

	sb.WriteString("You are preparing a mock interview for a job candidate.\n\n")
	fmt.Fprintf(&sb, "Job title: %s\n", job.Title)
	if len(job.RequiredSkills) > 0 {
		fmt.Fprintf(&sb, "Required skills: %s\n", strings.Join(job.RequiredSkills, ", "))
	}
	if len(job.PreferredSkills) > 0 {
		fmt.Fprintf(&sb, "Preferred skills: %s\n", strings.Join(job.PreferredSkills, ", "))
	}
	if job.ExperienceLevel.Known() {
		fmt.Fprintf(&sb, "Seniority: %s\n", job.ExperienceLevel)
	}
	fmt.Fprintf(&sb, "\nCandidate skills: %s\n", strings.Join(candidate.Skills, ", "))
	if candidate.ExperienceLevel.Known() {
		fmt.Fprintf(&sb, "Candidate seniority: %s\n", candidate.ExperienceLevel)
	}

	fmt.Fprintf(&sb, `
Generate exactly %d interview questions tailored to this pairing.
Mix technical questions on the required skills with behavioral and
role-specific questions. Respond with a JSON array of objects:
[{"question": "...", "category": "technical|behavioral|role", "skill": "optional skill name"}]
Return only the JSON array.`, count)

	return sb.String()
}

// parseQuestions decodes and sanity-checks the model output.
func parseQuestions(raw string) ([]types.InterviewQuestion, error) {
	var questions []types.InterviewQuestion
	if err := json.Unmarshal([]byte(raw), &questions); err != nil {
		return nil, fmt.Errorf("parsing interview questions: %w", err)
	}

	out := questions[:0]
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		if q.Category == "" {
			q.Category = "role"
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("model returned no usable questions")
	}
	return out, nil
}
