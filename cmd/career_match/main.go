// Package main provides the entry point for the career-match CLI and API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_match",
	Short: "Candidate-job matching engine",
	Long:  "career_match scores and ranks job listings against a candidate profile, scans public developer profiles for skills, and generates interview preparation questions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
