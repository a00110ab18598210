package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dgallion1/docrtf/internal/api"
	"github.com/dgallion1/docrtf/internal/config"
	"github.com/dgallion1/docrtf/internal/dotgraph"
	"github.com/dgallion1/docrtf/internal/pipeline"
	"github.com/dgallion1/docrtf/internal/rtf"
	"github.com/dgallion1/docrtf/internal/translator"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	styles, err := cfg.Styles()
	if err != nil {
		log.Error("invalid stylesheet", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	catalog := translator.Default()
	conv := &pipeline.Converter{
		Options:     cfg.RenderOptions(),
		Styles:      styles,
		Catalog:     catalog,
		PDFFallback: cfg.PDFFallbackPdftotext,
		Code:        rtf.ChromaCode{},
		Graphs:      dotgraph.New("", log),
	}

	// Metrics.
	reg := prom.NewRegistry()

	// Initialize pipeline.
	orch := pipeline.NewOrchestrator(cfg, conv, reg, log)
	orch.Start(ctx)

	// Initialize HTTP server.
	metrics := promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	srv := api.NewServer(orch, catalog, metrics, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		orch.Stop()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	log.Info("starting docrtf", "port", cfg.Port, "workers", cfg.WorkerCount, "language", cfg.OutputLanguage)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
