package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/stylecraft/backend/internal/ai"
	"github.com/stylecraft/backend/internal/config"
	"github.com/stylecraft/backend/internal/db"
	"github.com/stylecraft/backend/internal/httpapi"
	"github.com/stylecraft/backend/internal/httpapi/handlers"
	"github.com/stylecraft/backend/internal/interaction"
	"github.com/stylecraft/backend/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Init("info", "console")
		logging.Fatalw("invalid configuration", "error", err)
	}

	logging.Init(cfg.LogLevel, cfg.LogFormat)
	defer logging.Sync()

	gdb, err := db.Connect(cfg.DBDriver, cfg.DatabaseURL)
	if err != nil {
		logging.Fatalw("database connection failed", "error", err)
	}
	if err := gdb.AutoMigrate(&interaction.Interaction{}); err != nil {
		logging.Fatalw("automigrate failed", "error", err)
	}
	logging.Infow("database ready", "driver", cfg.DBDriver)

	reg := ai.NewRegistry()
	reg.Register("openai", func() (ai.Provider, error) {
		return ai.NewOpenAIProvider(cfg.OllamaBaseURL, cfg.OllamaAPIKey, cfg.OllamaModel)
	})
	reg.Register("mock", func() (ai.Provider, error) {
		return ai.NewMockProvider(), nil
	})

	// A misconfigured provider degrades to configuration-error strings per
	// generation call instead of failing startup.
	provider, err := reg.New(cfg.AIProvider)
	if err != nil {
		logging.Errorw("completion provider unavailable, generation will degrade", "provider", cfg.AIProvider, "error", err)
		provider = nil
	} else {
		logging.Infow("completion provider ready", "provider", cfg.AIProvider, "model", cfg.OllamaModel)
	}
	gateway := ai.NewGateway(provider, cfg.OllamaBaseURL)

	repo := interaction.NewRepo(gdb)
	svc := interaction.NewService(repo, gateway)

	router := httpapi.NewRouter(handlers.NewHandler(svc))

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Infow("server started", "addr", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatalw("server failed", "error", err)
		}
	}()

	<-ctx.Done()
	logging.Infow("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Errorw("shutdown failed", "error", err)
	}
}
