package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/you/go-ride-agent/internal/config"
	"github.com/you/go-ride-agent/internal/geocode"
	"github.com/you/go-ride-agent/internal/httpx"
	"github.com/you/go-ride-agent/internal/metrics"
	"github.com/you/go-ride-agent/internal/providers"
	"github.com/you/go-ride-agent/internal/service"
)

func main() {

	// Loading config
	cfg := config.Load()

	logger := setupLogger(cfg.Env)

	// Metrics registry with the default runtime collectors
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	geocoder := geocode.NewNominatim(cfg.GeocodeURL, cfg.GeocodeUserAgent, logger)

	// Fixed adapter order; quote ordering depends on it
	prov := []providers.RideProvider{
		providers.NewLyft(cfg),
		providers.NewUber(cfg),
	}
	for _, p := range prov {
		logger.Info("provider adapter loaded", "provider", p.Name(), "configured", p.Configured())
	}

	svc := service.NewRideService(geocoder, prov, logger, appMetrics)

	mux := http.NewServeMux()
	mux.HandleFunc("/", httpx.HomeHandler())
	mux.HandleFunc("/run-text", httpx.RunTextHandler(svc))
	mux.HandleFunc("/sse", httpx.SubscribeSSEHandler(svc, cfg.RefreshInterval))
	mux.HandleFunc("/ws", httpx.SubscribeWSHandler(svc, cfg.RefreshInterval))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           mux,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Running http server on a secondary thread
	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
}

// setupLogger picks the log handler for the environment: readable text
// with debug detail locally, JSON everywhere else.
func setupLogger(env string) *slog.Logger {
	if env == "local" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
