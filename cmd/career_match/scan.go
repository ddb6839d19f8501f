package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-match/internal/scan"
	"github.com/jonathan/career-match/internal/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan [username]",
	Short: "Scan a GitHub profile for skill signals",
	Long:  "Scrape a public GitHub profile for programming languages and topics, and optionally merge the findings into an existing candidate profile.",
	Args:  cobra.ExactArgs(1),
	RunE:  runScan,
}

var (
	scanCandidatePath string
	scanUseBrowser    bool
	scanJSON          bool
	scanVerbose       bool
)

func init() {
	scanCmd.Flags().StringVarP(&scanCandidatePath, "candidate", "c", "", "Candidate profile JSON to merge scanned skills into")
	scanCmd.Flags().BoolVar(&scanUseBrowser, "browser", false, "Use a headless browser for rendering")
	scanCmd.Flags().BoolVar(&scanJSON, "json", false, "Print the scan result as JSON")
	scanCmd.Flags().BoolVarP(&scanVerbose, "verbose", "v", false, "Print detailed output")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	scanner := scan.NewScanner(scanUseBrowser, scanVerbose)

	result, err := scanner.ScanGitHub(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to scan profile: %w", err)
	}

	if scanCandidatePath != "" {
		candidate, err := loadCandidate(scanCandidatePath)
		if err != nil {
			return err
		}
		candidate.Skills = scan.MergeSkills(candidate.Skills, result.Skills)
		return writeCandidate(scanCandidatePath, candidate)
	}

	if scanJSON {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	fmt.Printf("Profile:      %s\n", result.URL)
	fmt.Printf("Pinned repos: %d\n", result.RepoCount)
	fmt.Printf("Skills:       %v\n", result.Skills)
	return nil
}

// writeCandidate writes an updated candidate profile back to disk.
func writeCandidate(path string, candidate *types.CandidateProfile) error {
	data, err := json.MarshalIndent(candidate, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode candidate profile: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write candidate profile: %w", err)
	}

	fmt.Printf("Updated %s with %d skills\n", path, len(candidate.Skills))
	return nil
}
