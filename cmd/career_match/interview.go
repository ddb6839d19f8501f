package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-match/internal/interview"
	"github.com/jonathan/career-match/internal/jobs"
	"github.com/jonathan/career-match/internal/llm"
	"github.com/jonathan/career-match/internal/observability"
	"github.com/jonathan/career-match/internal/types"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Generate interview preparation questions for a job",
	Long:  "Generate tailored interview preparation questions for a candidate and one listing from a job feed. Requires GEMINI_API_KEY.",
	RunE:  runInterview,
}

var (
	interviewCandidatePath string
	interviewJobsPath      string
	interviewJobID         string
	interviewCount         int
	interviewJSON          bool
)

func init() {
	interviewCmd.Flags().StringVarP(&interviewCandidatePath, "candidate", "c", "", "Path to candidate profile JSON (required)")
	interviewCmd.Flags().StringVarP(&interviewJobsPath, "jobs", "j", "", "Path to job feed JSON file (required)")
	interviewCmd.Flags().StringVar(&interviewJobID, "job-id", "", "ID of the listing to prepare for (required)")
	interviewCmd.Flags().IntVar(&interviewCount, "count", 0, "Number of questions to generate")
	interviewCmd.Flags().BoolVar(&interviewJSON, "json", false, "Print the question set as JSON")

	interviewCmd.MarkFlagRequired("candidate")
	interviewCmd.MarkFlagRequired("jobs")
	interviewCmd.MarkFlagRequired("job-id")

	rootCmd.AddCommand(interviewCmd)
}

func runInterview(cmd *cobra.Command, _ []string) error {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	candidate, err := loadCandidate(interviewCandidatePath)
	if err != nil {
		return err
	}

	pool, err := jobs.LoadFile(interviewJobsPath)
	if err != nil {
		return err
	}

	job := findJob(pool, interviewJobID)
	if job == nil {
		return fmt.Errorf("job %q not found in feed %s", interviewJobID, interviewJobsPath)
	}

	ctx := cmd.Context()

	client, err := llm.NewGeminiClient(ctx, apiKey, llm.DefaultModel)
	if err != nil {
		return fmt.Errorf("failed to create LLM client: %w", err)
	}
	defer client.Close()

	set, err := interview.GenerateQuestions(ctx, client, candidate, job, interviewCount)
	if err != nil {
		return fmt.Errorf("failed to generate questions: %w", err)
	}

	if interviewJSON {
		return json.NewEncoder(os.Stdout).Encode(set)
	}

	observability.NewPrinter(os.Stdout).PrintInterviewSet(set)
	return nil
}

func findJob(pool []*types.JobListing, id string) *types.JobListing {
	for _, job := range pool {
		if job.ID == id {
			return job
		}
	}
	return nil
}
