// Package snapshot exports and imports the full economy state as a
// zstd-compressed JSON document, for backups and for seeding environments.
package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/louisbranch/infinity.spark/internal/economy/domain"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
)

// FormatVersion identifies the snapshot document layout.
const FormatVersion = 1

// Snapshot is the full exported economy state.
type Snapshot struct {
	Version      int                  `json:"version"`
	ExportedAt   time.Time            `json:"exported_at"`
	Wallets      []domain.Wallet      `json:"wallets"`
	Worlds       []domain.World       `json:"worlds"`
	Tokens       []domain.Token       `json:"tokens"`
	Transactions []domain.Transaction `json:"transactions"`
}

// Export reads every collection from the store, writes a compressed
// snapshot document, and returns the exported snapshot.
func Export(ctx context.Context, store storage.Store, w io.Writer, now time.Time) (Snapshot, error) {
	wallets, err := store.ListWallets(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list wallets: %w", err)
	}
	worlds, err := store.ListWorlds(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list worlds: %w", err)
	}
	tokens, err := store.ListTokens(ctx)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list tokens: %w", err)
	}
	transactions, err := store.ListTransactions(ctx, 0)
	if err != nil {
		return Snapshot{}, fmt.Errorf("list transactions: %w", err)
	}

	doc := Snapshot{
		Version:      FormatVersion,
		ExportedAt:   now.UTC(),
		Wallets:      wallets,
		Worlds:       worlds,
		Tokens:       tokens,
		Transactions: transactions,
	}

	encoder, err := zstd.NewWriter(w)
	if err != nil {
		return Snapshot{}, fmt.Errorf("create zstd writer: %w", err)
	}
	if err := json.NewEncoder(encoder).Encode(doc); err != nil {
		_ = encoder.Close()
		return Snapshot{}, fmt.Errorf("encode snapshot: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return Snapshot{}, fmt.Errorf("close zstd writer: %w", err)
	}
	return doc, nil
}

// Read decodes a compressed snapshot document without touching any store.
func Read(r io.Reader) (Snapshot, error) {
	decoder, err := zstd.NewReader(r)
	if err != nil {
		return Snapshot{}, fmt.Errorf("create zstd reader: %w", err)
	}
	defer decoder.Close()

	var doc Snapshot
	if err := json.NewDecoder(decoder).Decode(&doc); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version != FormatVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d", doc.Version)
	}
	return doc, nil
}

// Import loads a snapshot into the store inside one transaction. Existing
// records with matching ids are overwritten; transaction log entries that
// already exist are kept as-is.
func Import(ctx context.Context, store storage.Transactor, r io.Reader) (Snapshot, error) {
	doc, err := Read(r)
	if err != nil {
		return Snapshot{}, err
	}

	err = store.Transact(ctx, func(s storage.Store) error {
		for _, wallet := range doc.Wallets {
			if err := s.PutWallet(ctx, wallet); err != nil {
				return fmt.Errorf("import wallet %s: %w", wallet.Address, err)
			}
		}
		for _, world := range doc.Worlds {
			if err := s.PutWorld(ctx, world); err != nil {
				return fmt.Errorf("import world %s: %w", world.ID, err)
			}
		}
		for _, token := range doc.Tokens {
			if err := s.PutToken(ctx, token); err != nil {
				return fmt.Errorf("import token %s: %w", token.ID, err)
			}
		}
		for _, tx := range doc.Transactions {
			err := s.AppendTransaction(ctx, tx)
			if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
				return fmt.Errorf("import transaction %s: %w", tx.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return Snapshot{}, err
	}
	return doc, nil
}
