// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-match/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxSkillsToShow is the number of skills displayed per list
	maxSkillsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCandidate outputs a human-readable summary of the candidate profile.
func (p *Printer) PrintCandidate(candidate *types.CandidateProfile) {
	if candidate == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Level:    %s\n", candidate.ExperienceLevel))
	if candidate.Location != "" {
		sb.WriteString(fmt.Sprintf("Location: %s\n", candidate.Location))
	}
	sb.WriteString("\n")
	sb.WriteString(formatSkillList("Skills", candidate.Skills))

	p.printBox("CANDIDATE PROFILE", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatches outputs the ranked results, best first.
func (p *Printer) PrintMatches(ranked *types.RankedMatches) {
	if ranked == nil || len(ranked.Results) == 0 {
		p.printBox("MATCH RESULTS", "No jobs matched.")
		return
	}

	var sb strings.Builder

	for i, result := range ranked.Results {
		job := result.Job
		sb.WriteString(fmt.Sprintf("%2d. [%3d] %s", i+1, result.OverallScore, job.Title))
		if job.Company != "" {
			sb.WriteString(fmt.Sprintf(" @ %s", job.Company))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    skill %d  exp %d  loc %d  title %d\n",
			result.FactorScores[types.FactorSkill],
			result.FactorScores[types.FactorExperience],
			result.FactorScores[types.FactorLocation],
			result.FactorScores[types.FactorTitle]))
		if len(result.MissingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    missing: %s\n", joinCapped(result.MissingSkills)))
		}
	}

	p.printBox("MATCH RESULTS", strings.TrimRight(sb.String(), "\n"))
}

// PrintMatchDetail outputs one result with its full factor breakdown.
func (p *Printer) PrintMatchDetail(result *types.MatchResult) {
	if result == nil || result.Job == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job:      %s\n", result.Job.Title))
	if result.Job.Company != "" {
		sb.WriteString(fmt.Sprintf("Company:  %s\n", result.Job.Company))
	}
	sb.WriteString(fmt.Sprintf("Overall:  %d\n", result.OverallScore))
	sb.WriteString("\n")
	for _, factor := range []string{types.FactorSkill, types.FactorExperience, types.FactorLocation, types.FactorTitle} {
		sb.WriteString(fmt.Sprintf("  %-12s %d\n", factor, result.FactorScores[factor]))
	}
	sb.WriteString("\n")
	sb.WriteString(formatSkillList("Matched", result.MatchedSkills))
	sb.WriteString(formatSkillList("Missing", result.MissingSkills))

	p.printBox("MATCH DETAIL", strings.TrimRight(sb.String(), "\n"))
}

// PrintInterviewSet outputs generated interview questions.
func (p *Printer) PrintInterviewSet(set *types.InterviewSet) {
	if set == nil || len(set.Questions) == 0 {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Job: %s\n\n", set.JobTitle))
	for i, q := range set.Questions {
		sb.WriteString(fmt.Sprintf("%2d. [%s] %s\n", i+1, q.Category, q.Question))
	}

	p.printBox("INTERVIEW QUESTIONS", strings.TrimRight(sb.String(), "\n"))
}

// formatSkillList renders a capped bullet list of skills.
func formatSkillList(label string, skills []string) string {
	if len(skills) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(label + ":\n")
	count := min(len(skills), maxSkillsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > maxSkillsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-maxSkillsToShow))
	}
	return sb.String()
}

// joinCapped joins up to maxSkillsToShow items with a remainder note.
func joinCapped(items []string) string {
	if len(items) <= maxSkillsToShow {
		return strings.Join(items, ", ")
	}
	return fmt.Sprintf("%s, +%d more",
		strings.Join(items[:maxSkillsToShow], ", "), len(items)-maxSkillsToShow)
}
