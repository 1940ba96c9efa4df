package ghpages_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sparshsumani/meta-app-builder/ghpages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureRepoExisting(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer ghp_test", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		require.Equal(t, "/repos/octocat/tds-demo", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]string{
			"html_url":  "https://github.com/octocat/tds-demo",
			"clone_url": "https://github.com/octocat/tds-demo.git",
		})
	}))
	defer srv.Close()

	client := ghpages.NewClientWithApiBase("ghp_test", srv.URL, time.Second)
	info, err := client.EnsureRepo(context.Background(), "octocat", "tds-demo")
	require.NoError(t, err)
	assert.Equal(t, "https://github.com/octocat/tds-demo", info.HtmlUrl)
	assert.Equal(t, "https://github.com/octocat/tds-demo.git", info.CloneUrl)
}

func TestEnsureRepoCreatesMissing(t *testing.T) {
	var created bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPost && r.URL.Path == "/user/repos":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "tds-demo", body["name"])
			assert.Equal(t, false, body["private"])
			assert.Equal(t, true, body["auto_init"])
			created = true
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]string{
				"html_url":  "https://github.com/octocat/tds-demo",
				"clone_url": "https://github.com/octocat/tds-demo.git",
			})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	client := ghpages.NewClientWithApiBase("ghp_test", srv.URL, time.Second)
	info, err := client.EnsureRepo(context.Background(), "octocat", "tds-demo")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "https://github.com/octocat/tds-demo", info.HtmlUrl)
}

func TestEnablePages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/repos/octocat/tds-demo/pages", r.URL.Path)
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]string{
				"html_url": "https://octocat.github.io/tds-demo/",
			})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	}))
	defer srv.Close()

	client := ghpages.NewClientWithApiBase("ghp_test", srv.URL, time.Second)
	url, err := client.EnablePages(context.Background(), "octocat", "tds-demo")
	require.NoError(t, err)
	assert.Equal(t, "https://octocat.github.io/tds-demo/", url)
}

func TestEnablePagesAlreadyEnabled(t *testing.T) {
	var putSeen bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			// GitHub answers 409 when Pages is already configured
			w.WriteHeader(http.StatusConflict)
		case http.MethodPut:
			putSeen = true
			w.WriteHeader(http.StatusNoContent)
		case http.MethodGet:
			json.NewEncoder(w).Encode(map[string]string{
				"html_url": "https://octocat.github.io/tds-demo/",
			})
		}
	}))
	defer srv.Close()

	client := ghpages.NewClientWithApiBase("ghp_test", srv.URL, time.Second)
	url, err := client.EnablePages(context.Background(), "octocat", "tds-demo")
	require.NoError(t, err)
	assert.True(t, putSeen, "POST conflict must fall back to PUT")
	assert.Equal(t, "https://octocat.github.io/tds-demo/", url)
}

func TestEnablePagesFallbackUrl(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
		case http.MethodGet:
			fmt.Fprint(w, "{}")
		}
	}))
	defer srv.Close()

	client := ghpages.NewClientWithApiBase("ghp_test", srv.URL, time.Second)
	url, err := client.EnablePages(context.Background(), "octocat", "tds-demo")
	require.NoError(t, err)
	assert.Equal(t, "https://octocat.github.io/tds-demo/", url)
}
