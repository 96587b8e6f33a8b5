package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/tbrandao/clubsheet/internal/api"
	"github.com/tbrandao/clubsheet/internal/config"
	"github.com/tbrandao/clubsheet/internal/middleware"
	"github.com/tbrandao/clubsheet/internal/service"
	"github.com/tbrandao/clubsheet/internal/storage/sqlite"
	"github.com/tbrandao/clubsheet/pkg/logging"
)

func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	svc := service.New(context.Background(), store)
	server := api.NewServer(svc)

	mux := server.Routes()
	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middleware.Logging(middleware.Metrics(mux))

	// h2c supports HTTP/2 on plain localhost TCP, no TLS needed.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	slog.Info("Server starting", "address", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
