package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/agenthands/sketchont/internal/config"
	"github.com/agenthands/sketchont/internal/core"
	"github.com/agenthands/sketchont/internal/driver"
	"github.com/agenthands/sketchont/internal/logger"
	"github.com/agenthands/sketchont/internal/metrics"
	"github.com/agenthands/sketchont/internal/server"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.LoadFromEnv(config.DefaultPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()
	if envErr != nil {
		log.Debug("no .env file found, using environment")
	}

	if err := run(cfg, log); err != nil {
		log.Fatal("server stopped", "error", err)
	}
}

func run(cfg *config.Config, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Log.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	engine := core.NewEngine(core.OptionsFrom(cfg.Resolution), log, m)
	if cfg.Memgraph.URI != "" {
		d, err := driver.NewMemgraphDriver(ctx, cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password, log)
		if err != nil {
			return err
		}
		defer d.Close(context.Background())
		if err := d.BuildIndices(ctx); err != nil {
			return err
		}
		engine.Driver = d
	} else {
		log.Warn("memgraph.uri not set, publishing disabled")
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           server.NewServer(cfg.Server, engine, log, m, reg).SetupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "port", cfg.Server.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
