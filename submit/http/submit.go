package http

import (
	"encoding/json"
	"net/http"

	"github.com/sparshsumani/meta-app-builder/httpjson"
	"github.com/sparshsumani/meta-app-builder/logger"
	"github.com/sparshsumani/meta-app-builder/submit"
)

// submitResponse is the exact body graders expect; it intentionally
// bypasses the envelope used everywhere else.
type submitResponse struct {
	Email     string `json:"email"`
	Task      string `json:"task"`
	Round     int    `json:"round"`
	Nonce     string `json:"nonce"`
	RepoUrl   string `json:"repo_url"`
	CommitSha string `json:"commit_sha"`
	PagesUrl  string `json:"pages_url"`
}

// Submit serves both POST /submit and POST /revise.
func (h *SubmitHttpHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var request submit.SubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	result, err := h.submitSrvc.Submit(r.Context(), &request)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	resp := submitResponse{
		Email:     request.Email,
		Task:      request.Task,
		Round:     request.Round,
		Nonce:     request.Nonce,
		RepoUrl:   result.RepoUrl,
		CommitSha: result.CommitSha,
		PagesUrl:  result.PagesUrl,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}
