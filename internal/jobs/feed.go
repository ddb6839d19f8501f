// Package jobs adapts raw job listing feeds from upstream sources into
// the structured listings the matching engine consumes. Feeds may
// contain duplicates, stale postings, and missing fields; the adapter
// normalizes shapes and leaves deduplication to the engine.
package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jonathan/career-match/internal/fetch"
	"github.com/jonathan/career-match/internal/matching"
	"github.com/jonathan/career-match/internal/types"
)

// FeedError represents a feed decode or transport failure.
type FeedError struct {
	Source  string
	Message string
	Cause   error
}

func (e *FeedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("job feed error (%s): %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("job feed error (%s): %s", e.Source, e.Message)
}

func (e *FeedError) Unwrap() error {
	return e.Cause
}

// rawListing is the tolerant wire shape of one feed entry. Upstream
// sources disagree on field names, so several aliases are accepted.
type rawListing struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Company         string   `json:"company"`
	CompanyName     string   `json:"company_name"`
	RequiredSkills  []string `json:"required_skills"`
	Skills          []string `json:"skills"`
	PreferredSkills []string `json:"preferred_skills"`
	NiceToHave      []string `json:"nice_to_have"`
	ExperienceLevel string   `json:"experience_level"`
	Seniority       string   `json:"seniority"`
	Location        string   `json:"location"`
	Remote          bool     `json:"remote"`
	PostedAt        string   `json:"posted_at"`
	PublishedAt     string   `json:"published_at"`
	URL             string   `json:"url"`
	Source          string   `json:"source"`
}

// feedEnvelope accepts both a bare array and a {"jobs": [...]} wrapper.
type feedEnvelope struct {
	Jobs []rawListing `json:"jobs"`
}

// postedAtFormats are the timestamp layouts seen across feed sources.
var postedAtFormats = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// LoadFile reads and decodes a job feed from a JSON file.
func LoadFile(path string) ([]*types.JobListing, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &FeedError{Source: path, Message: "reading feed file", Cause: err}
	}
	return Decode(data, path)
}

// FetchURL downloads and decodes a job feed from a URL.
func FetchURL(ctx context.Context, url string) ([]*types.JobListing, error) {
	result, err := fetch.URL(ctx, url, nil)
	if err != nil {
		return nil, &FeedError{Source: url, Message: "fetching feed", Cause: err}
	}
	return Decode([]byte(result.Body), url)
}

// Decode turns feed bytes into listings. Entries without an id or a
// title are dropped rather than failing the whole feed.
func Decode(data []byte, source string) ([]*types.JobListing, error) {
	raw, err := decodeRaw(data)
	if err != nil {
		return nil, &FeedError{Source: source, Message: "decoding feed JSON", Cause: err}
	}

	listings := make([]*types.JobListing, 0, len(raw))
	for _, entry := range raw {
		listing := entry.toListing(source)
		if listing.ID == "" || listing.Title == "" {
			continue
		}
		listings = append(listings, listing)
	}
	return listings, nil
}

// decodeRaw tries the bare-array shape first, then the envelope.
func decodeRaw(data []byte) ([]rawListing, error) {
	var entries []rawListing
	if err := json.Unmarshal(data, &entries); err == nil {
		return entries, nil
	}

	var envelope feedEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}
	return envelope.Jobs, nil
}

// toListing normalizes one raw entry, resolving field aliases and
// free-text seniority wording.
func (r rawListing) toListing(source string) *types.JobListing {
	company := r.Company
	if company == "" {
		company = r.CompanyName
	}

	required := r.RequiredSkills
	if len(required) == 0 {
		required = r.Skills
	}
	preferred := r.PreferredSkills
	if len(preferred) == 0 {
		preferred = r.NiceToHave
	}

	seniority := r.ExperienceLevel
	if seniority == "" {
		seniority = r.Seniority
	}

	feedSource := r.Source
	if feedSource == "" {
		feedSource = source
	}

	return &types.JobListing{
		ID:              strings.TrimSpace(r.ID),
		Title:           strings.TrimSpace(r.Title),
		Company:         strings.TrimSpace(company),
		RequiredSkills:  required,
		PreferredSkills: preferred,
		ExperienceLevel: matching.ParseExperienceLevel(seniority),
		Location:        strings.TrimSpace(r.Location),
		Remote:          r.Remote || strings.EqualFold(strings.TrimSpace(r.Location), "remote"),
		PostedAt:        parsePostedAt(r.PostedAt, r.PublishedAt),
		URL:             r.URL,
		Source:          feedSource,
	}
}

// parsePostedAt parses the first timestamp that matches a known layout.
// Unparseable timestamps come back zero; the engine treats the zero
// time as "oldest" during freshness tie-breaks.
func parsePostedAt(candidates ...string) time.Time {
	for _, raw := range candidates {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		for _, layout := range postedAtFormats {
			if ts, err := time.Parse(layout, raw); err == nil {
				return ts.UTC()
			}
		}
	}
	return time.Time{}
}
