package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/sparshsumani/meta-app-builder/attach"
	"github.com/sparshsumani/meta-app-builder/conf"
	"github.com/sparshsumani/meta-app-builder/ghpages"
	httpserver "github.com/sparshsumani/meta-app-builder/http"
	"github.com/sparshsumani/meta-app-builder/notify"
	"github.com/sparshsumani/meta-app-builder/sitegen"
	"github.com/sparshsumani/meta-app-builder/store"
	"github.com/sparshsumani/meta-app-builder/submit"
	submithttp "github.com/sparshsumani/meta-app-builder/submit/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on the environment")
	}

	cfg, err := conf.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := store.NewDB(cfg.DbPath)
	if err != nil {
		slog.Error("failed to open deployment store", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	submitSrvc := submit.NewSubmitSrvc(
		cfg,
		sitegen.NewGenerator(cfg.OpenAiApiKey, cfg.OpenAiModel),
		ghpages.NewPublisher(cfg.GithubToken, cfg.GhUsername, cfg.HttpTimeout),
		attach.NewCollector(cfg.HttpTimeout),
		store.NewDeployStore(db),
		notify.NewNotifier(cfg.HttpTimeout),
	)
	submitHandler := submithttp.NewSubmitHttpHandler(submitSrvc)

	server := httpserver.NewHttpServer(submitHandler)

	log.Printf("Starting server on %s", cfg.ListenAddr)
	err = server.Start(cfg.ListenAddr)
	log.Printf("Server stopped with error: %v", err)
}
