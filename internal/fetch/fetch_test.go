package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestURL_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.Body, "hello")
	assert.Contains(t, result.ContentType, "text/html")
}

func TestURL_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	result, err := URL(context.Background(), server.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result, "body is still returned on non-200")
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestURL_InvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestURL_CustomHeaders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.Header.Get("X-Token"))
	}))
	defer server.Close()

	opts := DefaultOptions()
	opts.Headers = map[string]string{"X-Token": "abc"}
	_, err := URL(context.Background(), server.URL, opts)
	require.NoError(t, err)
}

func TestExtractText_SelectorsAndNoise(t *testing.T) {
	html := `<html><body>
		<nav>menu items</nav>
		<main><p>Go developer wanted.</p><p>Apply now.</p></main>
		<footer>copyright</footer>
	</body></html>`

	text, err := ExtractText(html, "main")
	require.NoError(t, err)

	assert.Contains(t, text, "Go developer wanted.")
	assert.NotContains(t, text, "menu items")
	assert.NotContains(t, text, "copyright")
}

func TestExtractText_FallsBackToBody(t *testing.T) {
	html := `<html><body><div>just a div</div></body></html>`

	text, err := ExtractText(html, "main", "article")
	require.NoError(t, err)
	assert.Equal(t, "just a div", text)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))

	long := make([]byte, MinContentLength)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ShouldUseBrowser(string(long)))
}
