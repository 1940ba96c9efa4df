package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/sparshsumani/meta-app-builder/submit"
)

type SubmitHttpHandler struct {
	submitSrvc *submit.SubmitSrvc
}

func NewSubmitHttpHandler(submitSrvc *submit.SubmitSrvc) *SubmitHttpHandler {
	return &SubmitHttpHandler{
		submitSrvc: submitSrvc,
	}
}

func (h *SubmitHttpHandler) RegisterRoutes(r *chi.Mux) {
	r.Post("/submit", h.Submit)
	r.Post("/revise", h.Submit)
	r.Get("/deployments", h.ListDeployments)
	r.Get("/preview/{task}", h.Preview)
}
