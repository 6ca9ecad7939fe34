// Package seed populates a local economy database with demo data.
package seed

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/louisbranch/infinity.spark/internal/economy/generation"
	econservice "github.com/louisbranch/infinity.spark/internal/economy/service"
	"github.com/louisbranch/infinity.spark/internal/economy/storage/sqlite"
	entrypoint "github.com/louisbranch/infinity.spark/internal/platform/cmd"
)

// Config holds seed command configuration.
type Config struct {
	DBPath  string `env:"INFINITY_SPARK_DB_PATH" envDefault:"infinity-spark.db"`
	Seed    int64  `env:"INFINITY_SPARK_SEED" envDefault:"1"`
	Wallets int    `env:"INFINITY_SPARK_SEED_WALLETS" envDefault:"3"`
	Spins   int    `env:"INFINITY_SPARK_SEED_SPINS" envDefault:"2"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "path to the economy SQLite database")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for reproducible demo data")
	fs.IntVar(&cfg.Wallets, "wallets", cfg.Wallets, "number of demo wallets to create")
	fs.IntVar(&cfg.Spins, "spins", cfg.Spins, "slot worlds to mint per wallet")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run seeds the database with wallets, worlds, a marketplace listing, and a
// purchase so every tool has data to return. The same seed produces the same
// economy.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceSeed, func(ctx context.Context) error {
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
			Generator: generation.NewStaticGenerator(),
			Rand:      rand.New(rand.NewSource(cfg.Seed)),
		})
		if err != nil {
			return fmt.Errorf("create economy service: %w", err)
		}
		return seedEconomy(ctx, economy, cfg)
	})
}

func seedEconomy(ctx context.Context, economy *econservice.Service, cfg Config) error {
	if cfg.Wallets < 2 {
		return fmt.Errorf("at least two wallets are required, got %d", cfg.Wallets)
	}

	addresses := make([]string, 0, cfg.Wallets)
	for i := 0; i < cfg.Wallets; i++ {
		address := fmt.Sprintf("spark1demo%03d", i+1)
		if _, err := economy.EnsureWallet(ctx, address); err != nil {
			return fmt.Errorf("ensure wallet %s: %w", address, err)
		}
		addresses = append(addresses, address)
	}

	worlds := 0
	for _, address := range addresses {
		for i := 0; i < cfg.Spins; i++ {
			combination, err := economy.Spin(ctx)
			if err != nil {
				return fmt.Errorf("spin for %s: %w", address, err)
			}
			if _, err := economy.CreateWorld(ctx, econservice.CreateWorldInput{
				Owner:       address,
				Combination: combination,
			}); err != nil {
				return fmt.Errorf("create world for %s: %w", address, err)
			}
			worlds++
		}
	}

	// One query world with a page, listed and bought, so the marketplace and
	// transaction log have history.
	seller := addresses[0]
	buyer := addresses[1]
	world, err := economy.CreateWorldFromQuery(ctx, "museum of impossible machines", seller)
	if err != nil {
		return fmt.Errorf("create query world: %w", err)
	}
	worlds++
	if _, err := economy.AddPage(ctx, world.ID, "gallery of perpetual motion", seller); err != nil {
		return fmt.Errorf("add page: %w", err)
	}
	if _, err := economy.ListForSale(ctx, world.ID, 250, seller); err != nil {
		return fmt.Errorf("list world: %w", err)
	}
	if _, err := economy.Purchase(ctx, world.ID, buyer); err != nil {
		return fmt.Errorf("purchase world: %w", err)
	}

	log.Printf("seeded %d wallets and %d worlds into %s", len(addresses), worlds, cfg.DBPath)
	return nil
}
