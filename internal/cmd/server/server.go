// Package server parses economy server flags and launches the MCP service.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/louisbranch/infinity.spark/internal/economy/generation"
	econservice "github.com/louisbranch/infinity.spark/internal/economy/service"
	"github.com/louisbranch/infinity.spark/internal/economy/storage/sqlite"
	mcpservice "github.com/louisbranch/infinity.spark/internal/mcp/service"
	entrypoint "github.com/louisbranch/infinity.spark/internal/platform/cmd"
)

// Config holds server command configuration.
type Config struct {
	DBPath       string `env:"INFINITY_SPARK_DB_PATH" envDefault:"infinity-spark.db"`
	OpenAIAPIKey string `env:"INFINITY_SPARK_OPENAI_API_KEY"`
	OpenAIModel  string `env:"INFINITY_SPARK_OPENAI_MODEL"`
	OpenAIURL    string `env:"INFINITY_SPARK_OPENAI_URL"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the economy SQLite database")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run opens the economy store and serves the MCP server on stdio until the
// context ends.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				log.Printf("close store: %v", err)
			}
		}()

		economy, err := econservice.New(econservice.Config{
			Store:     store,
			Generator: newGenerator(cfg),
		})
		if err != nil {
			return fmt.Errorf("create economy service: %w", err)
		}

		server, err := mcpservice.New(mcpservice.Config{
			Economy: economy,
			Store:   store,
		})
		if err != nil {
			return fmt.Errorf("create MCP server: %w", err)
		}
		return server.Serve(ctx)
	})
}

// newGenerator picks the content generator. Without an API key the server
// falls back to deterministic offline bundles.
func newGenerator(cfg Config) generation.Generator {
	if cfg.OpenAIAPIKey == "" {
		log.Printf("no OpenAI API key configured, using offline generator")
		return generation.NewStaticGenerator()
	}
	return generation.NewHTTPGenerator(generation.HTTPGeneratorConfig{
		ResponsesURL: cfg.OpenAIURL,
		APIKey:       cfg.OpenAIAPIKey,
		Model:        cfg.OpenAIModel,
	})
}
