// Package types provides type definitions for structured data used throughout the career-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"time"

	"github.com/go-playground/validator/v10"
)

// JobListing is one posting from the job-acquisition layer. Listings
// may arrive with duplicates, stale postings, and missing fields; the
// matching engine degrades gracefully rather than rejecting them.
type JobListing struct {
	ID              string          `json:"id" validate:"required"`
	Title           string          `json:"title"`
	Company         string          `json:"company,omitempty"`
	RequiredSkills  []string        `json:"required_skills,omitempty"`
	PreferredSkills []string        `json:"preferred_skills,omitempty"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Location        string          `json:"location,omitempty"`
	Remote          bool            `json:"remote"`
	PostedAt        time.Time       `json:"posted_at"`
	URL             string          `json:"url,omitempty"`
	Source          string          `json:"source,omitempty"`
}

// Validate checks the listing at the API boundary using the validator.
// Required/preferred skill sets may overlap and may both be empty; a
// listing with no skill requirements at all is still valid.
func (j *JobListing) Validate() error {
	validate := validator.New()
	return validate.Struct(j)
}
