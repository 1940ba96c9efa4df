package http

import (
	"encoding/json"
	"net/http"
)

func (s *HttpServer) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"ok":      true,
		"service": "meta-app-builder",
	})
}

const indexHtml = `<!doctype html><html lang="en"><head>
<meta charset="utf-8"/><title>Meta App Builder</title>
</head><body>
<h1>Meta App Builder</h1>
<p>LLM-assisted builder that deploys static apps to GitHub Pages.</p>
<p>POST JSON to <code>/submit</code> from your client for real deployment.
See <a href="/deployments">/deployments</a> for history and
<code>/preview/{task}</code> for the last generated page of a task.</p>
</body></html>
`

func (s *HttpServer) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexHtml))
}
