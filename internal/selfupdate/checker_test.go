package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func releaseServer(t *testing.T, tag string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/jlozano/riskprep/releases/latest", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		fmt.Fprintf(w, `{"tag_name": %q, "html_url": "https://github.com/jlozano/riskprep/releases/tag/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCheck_UpdateAvailable(t *testing.T) {
	srv := releaseServer(t, "v1.2.0")
	checker := NewChecker(WithBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.1.0"})
	require.NoError(t, err)

	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
	assert.Contains(t, result.ReleaseURL, "v1.2.0")
}

func TestCheck_AlreadyCurrent(t *testing.T) {
	srv := releaseServer(t, "v1.1.0")
	checker := NewChecker(WithBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.1.0"})
	require.NoError(t, err)

	assert.False(t, result.UpdateAvailable)
}

func TestCheck_NewerLocalBuild(t *testing.T) {
	srv := releaseServer(t, "v1.1.0")
	checker := NewChecker(WithBaseURL(srv.URL))

	result, err := checker.Check(context.Background(), &CheckInput{Version: "1.2.0-dev"})
	require.NoError(t, err)

	assert.False(t, result.UpdateAvailable)
}

func TestCheck_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)
	checker := NewChecker(WithBaseURL(srv.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestCheck_MissingTag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	t.Cleanup(srv.Close)
	checker := NewChecker(WithBaseURL(srv.URL))

	_, err := checker.Check(context.Background(), &CheckInput{Version: "1.0.0"})
	require.Error(t, err)
}

func TestCanonicalVersion(t *testing.T) {
	assert.Equal(t, "v1.2.3", canonicalVersion("1.2.3"))
	assert.Equal(t, "v1.2.3", canonicalVersion("v1.2.3"))
	assert.Equal(t, "", canonicalVersion(""))
}
