package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-match/internal/config"
	"github.com/jonathan/career-match/internal/db"
	"github.com/jonathan/career-match/internal/jobs"
	"github.com/jonathan/career-match/internal/matching"
	"github.com/jonathan/career-match/internal/observability"
	"github.com/jonathan/career-match/internal/schemas"
	"github.com/jonathan/career-match/internal/types"
)

var matchCmd = &cobra.Command{
	Use:   "match",
	Short: "Score and rank job listings against a candidate profile",
	Long:  "Score a pool of job listings against a candidate profile and print the ranked matches, best first. Listings come from a JSON feed file or URL.",
	RunE:  runMatch,
}

var (
	matchConfigPath    string
	matchCandidatePath string
	matchJobsPath      string
	matchJobsURL       string
	matchTopN          int
	matchJSON          bool
	matchSave          bool
	matchVerbose       bool
)

func init() {
	matchCmd.Flags().StringVar(&matchConfigPath, "config", "", "Path to config JSON file")
	matchCmd.Flags().StringVarP(&matchCandidatePath, "candidate", "c", "", "Path to candidate profile JSON")
	matchCmd.Flags().StringVarP(&matchJobsPath, "jobs", "j", "", "Path to job feed JSON file")
	matchCmd.Flags().StringVarP(&matchJobsURL, "jobs-url", "u", "", "URL of a job feed JSON")
	matchCmd.Flags().IntVarP(&matchTopN, "top", "n", 0, "Print only the top N matches (0 = all)")
	matchCmd.Flags().BoolVar(&matchJSON, "json", false, "Print results as JSON")
	matchCmd.Flags().BoolVar(&matchSave, "save", false, "Persist the run to the database (requires DATABASE_URL)")
	matchCmd.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed output")

	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveMatchConfig()
	if err != nil {
		return err
	}

	candidate, err := loadCandidate(cfg.Candidate)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	pool, err := loadJobPool(ctx, cfg)
	if err != nil {
		return err
	}

	engine, err := buildEngine(cfg)
	if err != nil {
		return err
	}

	if matchVerbose {
		observability.NewPrinter(os.Stdout).PrintCandidate(candidate)
		fmt.Printf("Scoring %d listings...\n", len(pool))
	}

	ranked, err := engine.Rank(ctx, candidate, pool)
	if err != nil {
		return fmt.Errorf("failed to rank jobs: %w", err)
	}

	if matchSave {
		if err := persistRun(ctx, cfg, candidate, len(pool), ranked); err != nil {
			return err
		}
	}

	if cfg.TopN > 0 && len(ranked.Results) > cfg.TopN {
		ranked.Results = ranked.Results[:cfg.TopN]
	}

	if matchJSON {
		return json.NewEncoder(os.Stdout).Encode(ranked)
	}

	observability.NewPrinter(os.Stdout).PrintMatches(ranked)
	return nil
}

// resolveMatchConfig merges the optional config file with flag
// overrides. Flags win.
func resolveMatchConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if matchConfigPath != "" {
		loaded, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if matchCandidatePath != "" {
		cfg.Candidate = matchCandidatePath
	}
	if matchJobsPath != "" {
		cfg.Jobs = matchJobsPath
	}
	if matchJobsURL != "" {
		cfg.JobsURL = matchJobsURL
	}
	if matchTopN > 0 {
		cfg.TopN = matchTopN
	}
	if matchVerbose {
		cfg.Verbose = true
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	if cfg.Candidate == "" {
		return nil, fmt.Errorf("a candidate profile is required: pass --candidate or set it in the config file")
	}
	if cfg.Jobs == "" && cfg.JobsURL == "" {
		return nil, fmt.Errorf("a job feed is required: pass --jobs or --jobs-url")
	}
	if cfg.Jobs != "" && cfg.JobsURL != "" {
		return nil, fmt.Errorf("--jobs and --jobs-url are mutually exclusive; provide only one")
	}

	return cfg, nil
}

// loadCandidate validates and decodes a candidate profile file.
func loadCandidate(path string) (*types.CandidateProfile, error) {
	if err := schemas.ValidateCandidateProfileFile(path); err != nil {
		return nil, fmt.Errorf("invalid candidate profile: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read candidate profile: %w", err)
	}

	var candidate types.CandidateProfile
	if err := json.Unmarshal(data, &candidate); err != nil {
		return nil, fmt.Errorf("failed to decode candidate profile: %w", err)
	}
	return &candidate, nil
}

// loadJobPool reads the feed from a file or URL.
func loadJobPool(ctx context.Context, cfg *config.Config) ([]*types.JobListing, error) {
	if cfg.Jobs != "" {
		if err := schemas.ValidateJobFeedFile(cfg.Jobs); err != nil {
			return nil, fmt.Errorf("invalid job feed: %w", err)
		}
		return jobs.LoadFile(cfg.Jobs)
	}
	return jobs.FetchURL(ctx, cfg.JobsURL)
}

// buildEngine creates an engine using configured weights when present.
func buildEngine(cfg *config.Config) (*matching.Engine, error) {
	opts := matching.Options{}
	if cfg.Weights != nil {
		opts.Weights = &matching.Weights{
			Skill:      cfg.Weights.Skill,
			Experience: cfg.Weights.Experience,
			Location:   cfg.Weights.Location,
			Title:      cfg.Weights.Title,
		}
	}
	return matching.NewEngine(opts)
}

// persistRun saves the run and its full result set.
func persistRun(ctx context.Context, cfg *config.Config, candidate *types.CandidateProfile, jobCount int, ranked *types.RankedMatches) error {
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("--save requires DATABASE_URL to be set")
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	runID, err := database.CreateMatchRun(ctx, candidate, jobCount)
	if err != nil {
		return fmt.Errorf("failed to create match run: %w", err)
	}
	if err := database.SaveMatchResults(ctx, runID, ranked); err != nil {
		return fmt.Errorf("failed to save match results: %w", err)
	}

	fmt.Printf("Saved match run %s\n", runID)
	return nil
}
