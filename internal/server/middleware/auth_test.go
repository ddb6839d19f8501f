package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClaims struct {
	clientID string
}

func (c *fakeClaims) GetClientID() string { return c.clientID }

type fakeValidator struct {
	accept string
}

func (v *fakeValidator) ValidateToken(token string) (ClientIDGetter, error) {
	if token != v.accept {
		return nil, fmt.Errorf("invalid token")
	}
	return &fakeClaims{clientID: "client-1"}, nil
}

func protectedHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID, err := GetClientID(r)
		require.NoError(t, err)
		fmt.Fprint(w, clientID)
	})
}

func TestAuthValidToken(t *testing.T) {
	handler := Auth(&fakeValidator{accept: "good-token"})(protectedHandler(t))

	req := httptest.NewRequest("GET", "/match/runs", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "client-1", rec.Body.String())
}

func TestAuthRejects(t *testing.T) {
	handler := Auth(&fakeValidator{accept: "good-token"})(protectedHandler(t))

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{name: "no token", header: "Bearer"},
		{name: "bad token", header: "Bearer wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/match/runs", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestAuthCaseInsensitiveBearer(t *testing.T) {
	handler := Auth(&fakeValidator{accept: "good-token"})(protectedHandler(t))

	req := httptest.NewRequest("GET", "/match/runs", nil)
	req.Header.Set("Authorization", "bearer good-token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetClientIDMissing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	_, err := GetClientID(req)
	assert.Error(t, err)
}
