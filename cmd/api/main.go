package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/vaultpass/passgen-go/internal/config"
	"github.com/vaultpass/passgen-go/internal/crypto"
	"github.com/vaultpass/passgen-go/internal/handler"
	"github.com/vaultpass/passgen-go/internal/middleware"
	"github.com/vaultpass/passgen-go/internal/repository"
	"github.com/vaultpass/passgen-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	var source crypto.RandomSource = crypto.CryptoSource{}
	if cfg.GeneratorSeed != nil {
		slog.Warn("using deterministic generator seed, passwords are reproducible", "seed", *cfg.GeneratorSeed)
		source = crypto.NewSeededSource(*cfg.GeneratorSeed)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sessionRepo := repository.NewSessionRepository(cfg.SessionTTL)
	go sessionRepo.RunSweeper(ctx, time.Minute)

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(source))
	sessionHandler := handler.NewSessionHandler(service.NewSessionService(sessionRepo, source))

	r := handler.NewRouter(genHandler, sessionHandler, middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           middleware.Logger(r),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
