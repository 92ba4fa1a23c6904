// Package server wires configuration and startup for the documentation site.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/oracledocs/oracledocs.dev/internal/platform/config"
	platformotel "github.com/oracledocs/oracledocs.dev/internal/platform/otel"
	"github.com/oracledocs/oracledocs.dev/internal/platform/timeouts"
	"github.com/oracledocs/oracledocs.dev/internal/services/site"
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr    string `env:"ORACLEDOCS_HTTP_ADDR"    envDefault:"localhost:8080"`
	StoragePath string `env:"ORACLEDOCS_STORAGE_PATH"`
	ServiceName string `env:"ORACLEDOCS_SERVICE_NAME" envDefault:"oracledocs-site"`
}

// ParseConfig parses environment values and flags into a Config.
// Flags take precedence over the environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.StoragePath, "storage-path", cfg.StoragePath, "sqlite file for page feedback (empty disables feedback)")
	fs.StringVar(&cfg.ServiceName, "service-name", cfg.ServiceName, "service name reported on traces")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the documentation site server.
func Run(ctx context.Context, cfg Config) error {
	otelShutdown, err := platformotel.Setup(ctx, cfg.ServiceName)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		defer cancel()
		if err := otelShutdown(shutdownCtx); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := site.NewServer(site.Config{
		HTTPAddr:    cfg.HTTPAddr,
		StoragePath: cfg.StoragePath,
	})
	if err != nil {
		return fmt.Errorf("init site server: %w", err)
	}
	defer server.Close()

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve site: %w", err)
	}
	return nil
}
