// Package service implements the economy engine's operations over storage
// and the content generation collaborator. Every mutating operation
// validates fully before touching state and applies its effects inside one
// storage transaction.
package service

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/louisbranch/infinity.spark/internal/economy/generation"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
	"github.com/louisbranch/infinity.spark/internal/platform/id"
)

// Config carries the service's collaborators. Store and Generator are
// required; the rest default to production implementations and exist so
// tests can pin time, ids, and randomness.
type Config struct {
	Store            storage.Transactor
	Generator        generation.Generator
	Now              func() time.Time
	NewID            func() (string, error)
	NewWalletAddress func() (string, error)
	Rand             *rand.Rand
}

// Service is the economy engine.
type Service struct {
	store            storage.Transactor
	generator        generation.Generator
	now              func() time.Time
	newID            func() (string, error)
	newWalletAddress func() (string, error)
	rng              *rand.Rand
}

// New builds an economy service from config.
func New(cfg Config) (*Service, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Generator == nil {
		return nil, fmt.Errorf("generator is required")
	}
	svc := &Service{
		store:            cfg.Store,
		generator:        cfg.Generator,
		now:              cfg.Now,
		newID:            cfg.NewID,
		newWalletAddress: cfg.NewWalletAddress,
		rng:              cfg.Rand,
	}
	if svc.now == nil {
		svc.now = func() time.Time { return time.Now().UTC() }
	}
	if svc.newID == nil {
		svc.newID = id.NewID
	}
	if svc.newWalletAddress == nil {
		svc.newWalletAddress = id.NewWalletAddress
	}
	if svc.rng == nil {
		svc.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return svc, nil
}
