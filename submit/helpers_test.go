package submit_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sparshsumani/meta-app-builder/attach"
	"github.com/sparshsumani/meta-app-builder/conf"
	"github.com/sparshsumani/meta-app-builder/ghpages"
	"github.com/sparshsumani/meta-app-builder/store"
	"github.com/sparshsumani/meta-app-builder/submit"
	submithttp "github.com/sparshsumani/meta-app-builder/submit/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	files          map[string]string
	err            error
	gotAttachments []string
}

func (g *stubGenerator) Generate(ctx context.Context, brief string, checks []string, attachments []string) (map[string]string, error) {
	g.gotAttachments = attachments
	if g.err != nil {
		return nil, g.err
	}
	return g.files, nil
}

type deployCall struct {
	repo    string
	files   map[string][]byte
	message string
}

type stubPublisher struct {
	err   error
	calls []deployCall
}

func (p *stubPublisher) Deploy(ctx context.Context, repo string, files map[string][]byte, message string) (ghpages.Deployment, error) {
	if p.err != nil {
		return ghpages.Deployment{}, p.err
	}
	p.calls = append(p.calls, deployCall{repo: repo, files: files, message: message})
	return ghpages.Deployment{
		RepoUrl:   "https://github.com/octocat/" + repo,
		PagesUrl:  fmt.Sprintf("https://octocat.github.io/%s/", repo),
		CommitSha: fmt.Sprintf("sha-%d", len(p.calls)),
	}, nil
}

type notifyCall struct {
	url  string
	body map[string]any
}

type stubNotifier struct {
	err   error
	calls []notifyCall
}

func (n *stubNotifier) Notify(ctx context.Context, url string, body any) error {
	n.calls = append(n.calls, notifyCall{url: url, body: body.(map[string]any)})
	return n.err
}

type testEnv struct {
	handler  http.Handler
	gen      *stubGenerator
	pub      *stubPublisher
	notifier *stubNotifier
	deploys  *store.DeployStore
}

func setupSubmitHandler(t *testing.T) *testEnv {
	t.Helper()

	db, err := store.NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gen := &stubGenerator{files: map[string]string{
		"index.html": "<!doctype html><html><body>ok</body></html>",
		"style.css":  "body {}",
		"script.js":  "void 0;",
	}}
	pub := &stubPublisher{}
	notifier := &stubNotifier{}
	deploys := store.NewDeployStore(db)

	cfg := &conf.Conf{
		StudentEmail:  "student@example.com",
		StudentSecret: "s3cret",
		GhRepoPrefix:  "tds-",
	}
	srvc := submit.NewSubmitSrvc(cfg, gen, pub,
		attach.NewCollector(time.Second), deploys, notifier)

	handler := submithttp.NewSubmitHttpHandler(srvc)
	router := chi.NewRouter()
	handler.RegisterRoutes(router)

	return &testEnv{
		handler:  router,
		gen:      gen,
		pub:      pub,
		notifier: notifier,
		deploys:  deploys,
	}
}

func validSubmission() map[string]interface{} {
	return map[string]interface{}{
		"email":          "student@example.com",
		"secret":         "s3cret",
		"task":           "sum-of-sales",
		"round":          1,
		"nonce":          "ab12-cd34",
		"brief":          "Publish a single-page site that sums data.csv sales.",
		"checks":         []string{"document.querySelector('#total-sales')"},
		"evaluation_url": "https://example.com/notify",
	}
}

func newJsonReq(method, path string, body map[string]interface{}) (*http.Request, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func postSubmission(t *testing.T, handler http.Handler, path string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req, err := newJsonReq(http.MethodPost, path, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	assert.NotEqual(t, http.StatusOK, w.Code, "Expected error status code")

	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "Failed to unmarshal error response body")

	assert.Equal(t, "error", errorResponse.Status, "Expected status to be 'error'")
	assert.Equal(t, expectedCode, errorResponse.Code, "Incorrect error code")
	assert.NotEmpty(t, errorResponse.Message, "Expected non-empty error message")
}
