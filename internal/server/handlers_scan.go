package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-match/internal/scan"
)

// scanRequest is the POST /scan body.
type scanRequest struct {
	Username string   `json:"username"`
	Skills   []string `json:"skills,omitempty"`
}

// handleScan scrapes a GitHub profile for skill signals. When the
// request carries existing skills, the response includes the merged
// set.
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	if req.Username == "" {
		s.errorResponse(w, &ErrValidation{Field: "username", Message: "username is required"})
		return
	}

	scanner := scan.NewScanner(s.useBrowser, false)
	result, err := scanner.ScanGitHub(r.Context(), req.Username)
	if err != nil {
		s.errorResponse(w, &ErrUpstream{Service: "profile scan", Cause: err})
		return
	}

	resp := map[string]any{"scan": result}
	if len(req.Skills) > 0 {
		resp["merged_skills"] = scan.MergeSkills(req.Skills, result.Skills)
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
