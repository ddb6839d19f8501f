// Package types provides type definitions for structured data used throughout the career-match system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ExperienceLevel is an ordinal seniority level. Higher values mean more senior.
type ExperienceLevel int

// Seniority hierarchy, lowest to highest. LevelUnknown is the zero
// value, so a profile or listing that omits seniority decodes as
// unknown; unknown is scored as neutral, never as a penalty.
const (
	LevelUnknown ExperienceLevel = iota
	LevelIntern
	LevelEntry
	LevelMid
	LevelSenior
	LevelLead
	LevelPrincipal
)

// String returns the canonical label for an experience level.
func (l ExperienceLevel) String() string {
	switch l {
	case LevelIntern:
		return "intern"
	case LevelEntry:
		return "entry"
	case LevelMid:
		return "mid"
	case LevelSenior:
		return "senior"
	case LevelLead:
		return "lead"
	case LevelPrincipal:
		return "principal"
	default:
		return "unknown"
	}
}

// Known reports whether the level is a recognized rung of the hierarchy.
func (l ExperienceLevel) Known() bool {
	return l >= LevelIntern && l <= LevelPrincipal
}

// MarshalJSON encodes the level as its canonical label.
func (l ExperienceLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a canonical label into a level. Unrecognized
// labels decode to LevelUnknown rather than erroring; free-text
// seniority resolution is the matching engine's job, not the codec's.
func (l *ExperienceLevel) UnmarshalJSON(data []byte) error {
	var label string
	if err := json.Unmarshal(data, &label); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "intern":
		*l = LevelIntern
	case "entry":
		*l = LevelEntry
	case "mid":
		*l = LevelMid
	case "senior":
		*l = LevelSenior
	case "lead":
		*l = LevelLead
	case "principal":
		*l = LevelPrincipal
	default:
		*l = LevelUnknown
	}
	return nil
}

// CandidateProfile is an immutable snapshot of a candidate derived from
// resume extraction. Skills is never nil (empty is fine); absent fields
// are represented explicitly, never by sentinel strings.
type CandidateProfile struct {
	Skills          []string        `json:"skills" validate:"required"`
	ExperienceLevel ExperienceLevel `json:"experience_level"`
	Location        string          `json:"location,omitempty"`
}

// Validate checks the profile at the API boundary using the validator.
func (p *CandidateProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
