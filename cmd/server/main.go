package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/api"
	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/assistant"
	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/config"
	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/content"
	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/inference"
	"github.com/mbarekayadi77-ship-it/MB-MEDICINE/internal/logging"
)

func main() {
	exportContent := flag.Bool("export-content", false, "Export the generated corpus to CONTENT_DB and exit")
	offline := flag.Bool("offline", false, "Run without the Gemini API; assistant replies come from the offline client")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "configuration error:", err)
		os.Exit(1)
	}

	log := logging.New(cfg.LogLevel)

	defaultLang, err := content.ParseLanguage(cfg.DefaultLanguage)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid DEFAULT_LANGUAGE")
	}

	// The corpus is deterministic; a sqlite content file, when configured,
	// overrides the generated articles.
	articles := content.GenerateCorpus()
	if cfg.ContentDB != "" {
		source, err := content.OpenSQLiteSource(cfg.ContentDB)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.ContentDB).Msg("failed to open content database")
		}
		defer source.Close()

		if *exportContent {
			written, err := source.Export(articles)
			if err != nil {
				log.Fatal().Err(err).Msg("content export failed")
			}
			log.Info().Int("articles", written).Str("path", cfg.ContentDB).Msg("content export complete")
			return
		}

		loaded, err := source.LoadArticles()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load content database")
		}
		if len(loaded) > 0 {
			articles = loaded
			log.Info().Int("articles", len(loaded)).Msg("corpus loaded from content database")
		} else {
			log.Warn().Msg("content database is empty, falling back to the generated corpus")
		}
	} else if *exportContent {
		log.Fatal().Msg("-export-content requires CONTENT_DB to be set")
	}

	repo, err := content.NewRepository(articles)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid corpus")
	}
	log.Info().Int("articles", repo.Len()).Msg("content repository ready")

	var client assistant.InferenceClient
	if *offline {
		client = inference.NewOfflineClient()
		log.Warn().Msg("running in offline mode, assistant replies are canned")
	} else {
		if cfg.GeminiAPIKey == "" {
			log.Fatal().Msg("GEMINI_API_KEY environment variable is required (or run with -offline)")
		}
		gemini, err := inference.NewGeminiClient(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create inference client")
		}
		defer gemini.Close()
		client = gemini
	}

	gate := assistant.NewPlanGate(cfg.FreeTierEntryLimit)
	sessions := assistant.NewSessionManager(client, gate, defaultLang, log)

	apiHandler := api.NewAPIHandler(repo, sessions, cfg.JWTSecret, log)
	router := api.NewRouter(apiHandler)

	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)
	srv := &http.Server{
		Addr:         serverAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // inference calls can take time
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info().Str("addr", serverAddr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}
	log.Info().Msg("server exited gracefully")
}
