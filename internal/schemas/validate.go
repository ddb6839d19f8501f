// Package schemas validates candidate profiles and job feeds against
// embedded JSON Schemas before they reach the matching engine.
package schemas

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed candidate_profile.schema.json
var candidateProfileSchema string

//go:embed job_feed.schema.json
var jobFeedSchema string

// ValidationError carries every schema violation found in a document.
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one violation at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents a failure loading or parsing a schema or
// document, as opposed to the document failing validation.
type SchemaLoadError struct {
	Schema  string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Schema, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Schema, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateCandidateProfile checks candidate profile JSON against the
// embedded profile schema.
func ValidateCandidateProfile(document []byte) error {
	return validate("candidate_profile", candidateProfileSchema, document)
}

// ValidateJobFeed checks job feed JSON (bare array or envelope) against
// the embedded feed schema.
func ValidateJobFeed(document []byte) error {
	return validate("job_feed", jobFeedSchema, document)
}

// ValidateCandidateProfileFile validates a candidate profile JSON file.
func ValidateCandidateProfileFile(path string) error {
	return validateFile(path, ValidateCandidateProfile)
}

// ValidateJobFeedFile validates a job feed JSON file.
func ValidateJobFeedFile(path string) error {
	return validateFile(path, ValidateJobFeed)
}

func validateFile(path string, check func([]byte) error) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	return check(data)
}

func validate(name, schema string, document []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return &SchemaLoadError{
			Schema:  name,
			Message: "validation did not run",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}
	return validationErr
}
