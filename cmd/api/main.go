package main

import (
	"net/http"
	"os"
	"time"

	_ "drug-treatments/docs"
	"drug-treatments/internal/observability/metrics"
	"drug-treatments/internal/platform/logger"
	"drug-treatments/internal/router"
)

// @title Drug Treatments API
// @version 1.0
// @description Prescripción de tratamientos: catálogo de medicamentos y dosis, períodos y pautas de toma.
// @BasePath /
func main() {
	addr := ":8080"
	if v := os.Getenv("PORT"); v != "" {
		addr = ":" + v
	}

	log := logger.NewFromEnv()
	m := metrics.New()

	r := router.NewRouter(router.Options{
		Log:     log,
		Metrics: m,
	})

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	log.Info("starting server", map[string]any{"addr": addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}
