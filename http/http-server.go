package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v2"
	submithttp "github.com/sparshsumani/meta-app-builder/submit/http"
)

type HttpServer struct {
	router *chi.Mux
}

func NewHttpServer(submitHandler *submithttp.SubmitHttpHandler) *HttpServer {
	router := chi.NewRouter()

	logger := httplog.NewLogger("meta-app-builder", httplog.Options{
		LogLevel:         slog.LevelDebug,
		Concise:          true,
		MessageFieldName: "message",
	})
	router.Use(httplog.RequestLogger(logger))

	// submissions may arrive from browser-based graders, keep CORS open
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           3000,
	}))

	server := &HttpServer{
		router: router,
	}

	server.routes(submitHandler)

	return server
}

func (s *HttpServer) Start(address string) error {
	return http.ListenAndServe(address, s.router)
}

// Handler exposes the router for tests.
func (s *HttpServer) Handler() http.Handler {
	return s.router
}

func (s *HttpServer) routes(submitHandler *submithttp.SubmitHttpHandler) {
	r := s.router
	r.Get("/healthz", s.healthz)
	r.Get("/", s.index)
	submitHandler.RegisterRoutes(r)
}
