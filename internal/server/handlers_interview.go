package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-match/internal/interview"
	"github.com/jonathan/career-match/internal/types"
)

// interviewRequest is the POST /interview body.
type interviewRequest struct {
	Candidate *types.CandidateProfile `json:"candidate"`
	Job       *types.JobListing       `json:"job"`
	Count     int                     `json:"count,omitempty"`
}

// handleInterview generates preparation questions for a candidate and
// a specific job.
func (s *Server) handleInterview(w http.ResponseWriter, r *http.Request) {
	if s.llmClient == nil {
		s.errorResponse(w, &ErrNotConfigured{Dependency: "LLM API key"})
		return
	}

	var req interviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	if req.Candidate == nil {
		s.errorResponse(w, &ErrValidation{Field: "candidate", Message: "candidate is required"})
		return
	}
	if req.Job == nil {
		s.errorResponse(w, &ErrValidation{Field: "job", Message: "job is required"})
		return
	}
	if err := req.Job.Validate(); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "job", Message: err.Error()})
		return
	}

	set, err := interview.GenerateQuestions(r.Context(), s.llmClient, req.Candidate, req.Job, req.Count)
	if err != nil {
		s.errorResponse(w, &ErrUpstream{Service: "interview generation", Cause: err})
		return
	}

	s.jsonResponse(w, http.StatusOK, set)
}
