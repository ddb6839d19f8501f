// Package types provides type definitions for structured data used throughout the career-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// InterviewQuestion is one generated interview question with its
// intent, so the caller can group or filter a session.
type InterviewQuestion struct {
	Question string `json:"question"`
	Category string `json:"category"` // technical, behavioral, or role
	Skill    string `json:"skill,omitempty"`
}

// InterviewSet is a generated interview session for one candidate-job pair.
type InterviewSet struct {
	JobID     string              `json:"job_id"`
	JobTitle  string              `json:"job_title"`
	Questions []InterviewQuestion `json:"questions"`
}
