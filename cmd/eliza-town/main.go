package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"

	"github.com/ElizenDevVini/eliza-town/internal/assets"
	httpInterface "github.com/ElizenDevVini/eliza-town/internal/interfaces/http"
	"github.com/ElizenDevVini/eliza-town/pkg/config"
	"github.com/ElizenDevVini/eliza-town/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Server.LogLevel)

	// Served root, MIME table and responder are built once; everything after
	// this point is read-only per request.
	root := afero.NewBasePathFs(afero.NewOsFs(), cfg.Server.Root)
	responder := assets.NewResponder(root, assets.DefaultMIMETable())
	router := httpInterface.NewRouter(responder, log)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router.Setup(),
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serveErr := make(chan error, 1)
	go func() {
		// The banner is the only stdout line; logs go to stderr.
		fmt.Printf("Eliza Town server running at http://localhost:%d\n", cfg.Server.Port)

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		log.Error("HTTP server failed", err)
		os.Exit(1)
	case <-sigChan:
	}

	log.Info("Shutdown signal received, starting graceful shutdown...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}

	log.Info("Server stopped gracefully")
}
