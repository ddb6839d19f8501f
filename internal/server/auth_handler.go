package server

import (
	"encoding/json"
	"net/http"
	"time"
)

// tokenRequest is the /auth/token exchange body.
type tokenRequest struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// tokenResponse carries the issued bearer token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// handleToken exchanges client credentials for a JWT.
func (s *Server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON"})
		return
	}

	if req.ClientID != s.authConfig.ClientID || !s.authConfig.VerifyClientSecret(req.ClientSecret) {
		s.errorResponse(w, &ErrInvalidClient{})
		return
	}

	token, err := s.jwtService.GenerateToken(req.ClientID)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(time.Duration(s.authConfig.TokenTTLHours) * time.Hour / time.Second),
	})
}
