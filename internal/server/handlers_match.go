package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/career-match/internal/db"
	"github.com/jonathan/career-match/internal/jobs"
	"github.com/jonathan/career-match/internal/matching"
	"github.com/jonathan/career-match/internal/types"
)

// matchRequest is the POST /match body. Jobs may be inlined or pulled
// from a feed URL, not both.
type matchRequest struct {
	Candidate *types.CandidateProfile `json:"candidate"`
	Jobs      []*types.JobListing     `json:"jobs,omitempty"`
	JobsURL   string                  `json:"jobs_url,omitempty"`
	Weights   *matching.Weights       `json:"weights,omitempty"`
	TopN      int                     `json:"top_n,omitempty"`
	Persist   bool                    `json:"persist,omitempty"`
}

// matchResponse is the POST /match reply.
type matchResponse struct {
	RunID    *uuid.UUID          `json:"run_id,omitempty"`
	JobCount int                 `json:"job_count"`
	Results  []types.MatchResult `json:"results"`
}

// handleMatch scores a candidate against a job pool and returns the
// ranked results.
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	var req matchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	if req.Candidate == nil {
		s.errorResponse(w, &ErrValidation{Field: "candidate", Message: "candidate is required"})
		return
	}
	if err := req.Candidate.Validate(); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "candidate", Message: err.Error()})
		return
	}
	if len(req.Jobs) > 0 && req.JobsURL != "" {
		s.errorResponse(w, &ErrValidation{Field: "jobs", Message: "provide jobs or jobs_url, not both"})
		return
	}
	if req.TopN < 0 {
		s.errorResponse(w, &ErrValidation{Field: "top_n", Message: "top_n must be non-negative"})
		return
	}

	pool := req.Jobs
	if req.JobsURL != "" {
		fetched, err := jobs.FetchURL(r.Context(), req.JobsURL)
		if err != nil {
			s.errorResponse(w, &ErrUpstream{Service: "job feed", Cause: err})
			return
		}
		pool = fetched
	}

	engine := s.engine
	if req.Weights != nil {
		custom, err := matching.NewEngine(matching.Options{Weights: req.Weights})
		if err != nil {
			s.errorResponse(w, &ErrValidation{Field: "weights", Message: err.Error()})
			return
		}
		engine = custom
	}

	ranked, err := engine.Rank(r.Context(), req.Candidate, pool)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	if req.TopN > 0 && len(ranked.Results) > req.TopN {
		ranked.Results = ranked.Results[:req.TopN]
	}

	resp := matchResponse{
		JobCount: len(pool),
		Results:  ranked.Results,
	}

	if req.Persist {
		if s.db == nil {
			s.errorResponse(w, &ErrNotConfigured{Dependency: "database"})
			return
		}
		runID, err := s.db.CreateMatchRun(r.Context(), req.Candidate, len(pool))
		if err != nil {
			s.errorResponse(w, err)
			return
		}
		if err := s.db.SaveMatchResults(r.Context(), runID, ranked); err != nil {
			log.Printf("Error saving match results for run %s: %v", runID, err)
			s.errorResponse(w, err)
			return
		}
		resp.RunID = &runID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleListRuns lists recent persisted match runs.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, &ErrNotConfigured{Dependency: "database"})
		return
	}

	filters := db.RunFilters{}
	if v := r.URL.Query().Get("min_score"); v != "" {
		minScore, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, &ErrValidation{Field: "min_score", Message: "must be an integer"})
			return
		}
		filters.MinTopScore = minScore
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			s.errorResponse(w, &ErrValidation{Field: "limit", Message: "must be an integer"})
			return
		}
		filters.Limit = limit
	}

	runs, err := s.db.ListMatchRuns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// handleGetRun returns one run with its persisted results.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, &ErrNotConfigured{Dependency: "database"})
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "id", Message: "invalid run ID"})
		return
	}

	run, err := s.db.GetMatchRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	if run == nil {
		s.errorResponse(w, &ErrRunNotFound{RunID: runID})
		return
	}

	results, err := s.db.GetMatchResults(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"run":     run,
		"results": results,
	})
}

// handleDeleteRun deletes a persisted run and its results.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, &ErrNotConfigured{Dependency: "database"})
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "id", Message: "invalid run ID"})
		return
	}

	if err := s.db.DeleteMatchRun(r.Context(), runID); err != nil {
		s.errorResponse(w, &ErrRunNotFound{RunID: runID})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
