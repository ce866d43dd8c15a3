// Command zonejsond runs the zonefile parsing daemon: a REST API with a
// persistent zone store, prometheus metrics, and an embedded playground UI.
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

	"github.com/jroosing/zonejson/internal/api"
	"github.com/jroosing/zonejson/internal/config"
	"github.com/jroosing/zonejson/internal/database"
	"github.com/jroosing/zonejson/internal/logging"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to JSON configuration file (or set ZONEJSOND_CONFIG)")
		host       = flag.String("host", "", "Override bind host")
		port       = flag.Int("port", 0, "Override bind port")
		dbPath     = flag.String("db", "", "Override zone store path (\"none\" disables the store)")
		jsonLogs   = flag.Bool("json-logs", false, "Enable JSON structured logging")
		debug      = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	cfg, err := config.Load(config.ResolveConfigPath(*configPath))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}
	if *jsonLogs {
		cfg.Logging.Format = "json"
	}
	if *debug {
		cfg.Logging.Level = "DEBUG"
	}

	logger := logging.Configure(logging.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		IncludePID:  cfg.Logging.IncludePID,
		ExtraFields: cfg.Logging.ExtraFields,
	})

	var db *database.DB
	if cfg.Database.Path != "none" {
		db, err = database.Open(cfg.Database.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open zone store: %v\n", err)
			os.Exit(1)
		}
		defer db.Close()
	} else {
		logger.Warn("zone store disabled, only one-shot parsing is available")
	}

	srv := api.New(cfg, db, logger, nil)
	logger.Info("zonejsond starting",
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
		"reuse_port", cfg.Server.ReusePort,
		"store", cfg.Database.Path,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe(ctx)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
			os.Exit(1)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Fprintf(os.Stderr, "server exited with error: %v\n", err)
			os.Exit(1)
		}
	}
}
