package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sparshsumani/meta-app-builder/httpjson"
	"github.com/sparshsumani/meta-app-builder/logger"
)

// Preview serves the index.html of the task's last deployment so a
// human can eyeball the generated app without waiting for Pages.
func (h *SubmitHttpHandler) Preview(w http.ResponseWriter, r *http.Request) {
	task := chi.URLParam(r, "task")

	html, err := h.submitSrvc.PreviewHtml(r.Context(), task)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(html))
}

func (h *SubmitHttpHandler) ListDeployments(w http.ResponseWriter, r *http.Request) {
	deps, err := h.submitSrvc.ListDeployments(r.Context())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}
	httpjson.WriteSuccessJson(w, deps)
}
