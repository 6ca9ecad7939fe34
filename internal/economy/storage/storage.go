// Package storage defines persistence contracts for economy state.
package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/infinity.spark/internal/economy/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates an insert collided with an existing record.
var ErrAlreadyExists = errors.New("record already exists")

// WalletStore persists wallet balances.
type WalletStore interface {
	PutWallet(ctx context.Context, wallet domain.Wallet) error
	GetWallet(ctx context.Context, address string) (domain.Wallet, error)
	ListWallets(ctx context.Context) ([]domain.Wallet, error)
}

// WorldStore persists worlds together with their embedded pages and
// collaborators.
type WorldStore interface {
	PutWorld(ctx context.Context, world domain.World) error
	GetWorld(ctx context.Context, id string) (domain.World, error)
	ListWorlds(ctx context.Context) ([]domain.World, error)
	ListWorldsByOwner(ctx context.Context, ownerWallet string) ([]domain.World, error)
	ListWorldsForSale(ctx context.Context) ([]domain.World, error)
	TopWorldsByValue(ctx context.Context, limit int) ([]domain.World, error)
}

// TokenStore persists minted ownership tokens.
type TokenStore interface {
	PutToken(ctx context.Context, token domain.Token) error
	ListTokensByWallet(ctx context.Context, walletAddress string) ([]domain.Token, error)
	ListTokensByWorld(ctx context.Context, worldID string) ([]domain.Token, error)
	ListTokens(ctx context.Context) ([]domain.Token, error)
}

// TransactionStore appends to and reads the immutable transaction log.
type TransactionStore interface {
	AppendTransaction(ctx context.Context, tx domain.Transaction) error
	ListTransactions(ctx context.Context, limit int) ([]domain.Transaction, error)
	ListTransactionsByWorld(ctx context.Context, worldID string) ([]domain.Transaction, error)
}

// Store is the full economy persistence surface.
type Store interface {
	WalletStore
	WorldStore
	TokenStore
	TransactionStore
}

// Transactor runs a function against a Store view whose writes commit
// together or not at all. Economy mutations validate first and then apply
// every effect inside one Transact call.
type Transactor interface {
	Store
	Transact(ctx context.Context, fn func(Store) error) error
}
