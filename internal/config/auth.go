// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// AuthConfig holds the server's API authentication settings: the JWT
// signing secret and the bcrypt hash of the client secret exchanged for
// tokens at /auth/token.
type AuthConfig struct {
	JWTSecret        string
	TokenTTLHours    int
	ClientID         string
	ClientSecretHash string
}

// NewAuthConfig reads authentication settings from the environment.
// JWT_SECRET and API_CLIENT_SECRET_HASH are required; API_CLIENT_ID
// defaults to "career-match" and TOKEN_TTL_HOURS to 24.
func NewAuthConfig() (*AuthConfig, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	secretHash := os.Getenv("API_CLIENT_SECRET_HASH")
	if secretHash == "" {
		return nil, fmt.Errorf("API_CLIENT_SECRET_HASH is required but not set")
	}
	if _, err := bcrypt.Cost([]byte(secretHash)); err != nil {
		return nil, fmt.Errorf("API_CLIENT_SECRET_HASH is not a bcrypt hash: %w", err)
	}

	clientID := os.Getenv("API_CLIENT_ID")
	if clientID == "" {
		clientID = "career-match"
	}

	ttlStr := os.Getenv("TOKEN_TTL_HOURS")
	if ttlStr == "" {
		ttlStr = "24"
	}
	ttl, err := strconv.Atoi(ttlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL_HOURS: %v", err)
	}
	if ttl < 1 {
		return nil, fmt.Errorf("TOKEN_TTL_HOURS must be at least 1 hour, got: %d", ttl)
	}

	return &AuthConfig{
		JWTSecret:        secret,
		TokenTTLHours:    ttl,
		ClientID:         clientID,
		ClientSecretHash: secretHash,
	}, nil
}

// VerifyClientSecret compares a presented client secret against the
// configured bcrypt hash.
func (c *AuthConfig) VerifyClientSecret(secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(c.ClientSecretHash), []byte(secret)) == nil
}

// HashClientSecret hashes a client secret for storage in the
// environment. Used by the token bootstrap tooling, not the server.
func HashClientSecret(secret string) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("client secret cannot be empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash client secret: %w", err)
	}
	return string(hash), nil
}
