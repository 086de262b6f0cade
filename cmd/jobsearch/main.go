// Command jobsearch serves the boolean job-posting search API.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sumble/jobsearch/httpserver"
	"github.com/sumble/jobsearch/internal/config"
	"github.com/sumble/jobsearch/logging"
	"github.com/sumble/jobsearch/search"
	"github.com/sumble/jobsearch/store"
)

func main() {
	configPath := flag.String("config", "", "path to jobsearch.yaml (default: ./jobsearch.yaml if present)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := logging.ProdLogger
	if cfg.Dev {
		logger = logging.DevLogger
	}

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	st, err := store.Open(connectCtx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		return err
	}
	defer st.Close()

	searcher := search.New(st.DB, st.Dialect)
	srv := httpserver.New(searcher, st, logger)

	httpSrv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Listen, "dialect", st.Dialect.Name())
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
