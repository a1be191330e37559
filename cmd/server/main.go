package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GrigorasVictor/HealthCare-AI/internal/config"
	"github.com/GrigorasVictor/HealthCare-AI/internal/handler"
	"github.com/GrigorasVictor/HealthCare-AI/internal/logger"
	"github.com/GrigorasVictor/HealthCare-AI/internal/router"
	"github.com/GrigorasVictor/HealthCare-AI/internal/service"

	"github.com/gin-gonic/gin"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("config load failed", "err", err)
		os.Exit(1)
	}
	logger.Init(cfg.Log)
	gin.SetMode(cfg.Server.Mode)

	mockSvc := service.NewMockService(logger.L(), nil)
	mockH := handler.NewMockHandler(mockSvc, logger.L(), cfg.MaxUploadBytes())
	r := router.New(cfg, logger.L(), mockH, version)

	srv := &http.Server{Addr: cfg.Addr(), Handler: r}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", cfg.Addr(), "prefix", cfg.Server.Prefix, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info("shutting down", "signal", s.String())
	case err := <-errCh:
		logger.Error("server failed", "err", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "err", err)
		return
	}
	logger.Info("server stopped")
}
