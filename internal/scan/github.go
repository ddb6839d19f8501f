// Package scan extracts candidate skill signals from public developer
// profiles. Scan output supplements the resume-derived profile; it is
// advisory and never replaces extracted skills.
package scan

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/career-match/internal/fetch"
)

// ProfileScan is the result of scanning one public profile.
type ProfileScan struct {
	Username  string    `json:"username"`
	URL       string    `json:"url"`
	Skills    []string  `json:"skills"`
	RepoCount int       `json:"repo_count"`
	ScannedAt time.Time `json:"scanned_at"`
}

// Error represents a profile scan failure.
type Error struct {
	Username string
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("profile scan failed for %s: %s: %v", e.Username, e.Message, e.Cause)
	}
	return fmt.Sprintf("profile scan failed for %s: %s", e.Username, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Scanner fetches and parses public GitHub profiles.
type Scanner struct {
	useBrowser bool
	verbose    bool
}

// NewScanner creates a profile scanner. When useBrowser is set, pages
// that look JavaScript-rendered are re-fetched through the headless
// browser.
func NewScanner(useBrowser, verbose bool) *Scanner {
	return &Scanner{useBrowser: useBrowser, verbose: verbose}
}

// ScanGitHub scans a GitHub user's public profile page and returns the
// skill signals found in pinned repositories: programming languages and
// repository topics.
func (s *Scanner) ScanGitHub(ctx context.Context, username string) (*ProfileScan, error) {
	username = strings.TrimSpace(strings.TrimPrefix(username, "@"))
	if username == "" {
		return nil, &Error{Username: username, Message: "username is required"}
	}

	profileURL := "https://github.com/" + username

	result, err := fetch.URL(ctx, profileURL, nil)
	if err != nil {
		return nil, &Error{Username: username, Message: "fetching profile page", Cause: err}
	}

	html := result.Body
	if s.useBrowser {
		if text, textErr := fetch.ExtractText(html, "main"); textErr == nil && fetch.ShouldUseBrowser(text) {
			rendered, renderErr := fetch.RenderPage(ctx, profileURL, fetch.DefaultTimeout, s.verbose)
			if renderErr == nil {
				html = rendered
			}
		}
	}

	scanResult, err := parseGitHubProfile(html)
	if err != nil {
		return nil, &Error{Username: username, Message: "parsing profile page", Cause: err}
	}

	scanResult.Username = username
	scanResult.URL = profileURL
	scanResult.ScannedAt = time.Now().UTC()
	return scanResult, nil
}

// parseGitHubProfile extracts languages and topics from the pinned
// repository cards of a GitHub profile page.
func parseGitHubProfile(html string) (*ProfileScan, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	skills := make(map[string]bool)

	// Pinned repo cards carry the primary language as an itemprop span.
	doc.Find(`span[itemprop="programmingLanguage"]`).Each(func(_ int, sel *goquery.Selection) {
		if lang := strings.ToLower(strings.TrimSpace(sel.Text())); lang != "" {
			skills[lang] = true
		}
	})

	// Topic tags link to /topics/<name>.
	doc.Find(`a[href^="/topics/"]`).Each(func(_ int, sel *goquery.Selection) {
		if topic := strings.ToLower(strings.TrimSpace(sel.Text())); topic != "" {
			skills[topic] = true
		}
	})

	repoCount := doc.Find(`[itemprop="owns"]`).Length()
	if repoCount == 0 {
		repoCount = doc.Find(".pinned-item-list-item").Length()
	}

	out := make([]string, 0, len(skills))
	for skill := range skills {
		out = append(out, skill)
	}
	sort.Strings(out)

	return &ProfileScan{Skills: out, RepoCount: repoCount}, nil
}

// MergeSkills unions scanned skills into a candidate skill list,
// preserving the original order of the existing skills and appending
// new ones alphabetically.
func MergeSkills(existing, scanned []string) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, len(existing)+len(scanned))
	for _, skill := range existing {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill)
	}
	for _, skill := range scanned {
		key := strings.ToLower(strings.TrimSpace(skill))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, skill)
	}
	return out
}
