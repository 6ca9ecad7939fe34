package service

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/infinity.spark/internal/economy/domain"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
	apperrors "github.com/louisbranch/infinity.spark/internal/platform/errors"
)

// Portfolio is a wallet together with its token holdings.
type Portfolio struct {
	Wallet     domain.Wallet
	Tokens     []domain.Token
	TokenValue int
}

// EnsureWallet returns the wallet for an address, creating it with the
// starting balances when absent. An empty address allocates a fresh one.
func (s *Service) EnsureWallet(ctx context.Context, address string) (domain.Wallet, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		generated, err := s.newWalletAddress()
		if err != nil {
			return domain.Wallet{}, apperrors.Wrap(apperrors.CodeUnknown, "allocate wallet address", err)
		}
		address = generated
	}

	wallet, err := s.store.GetWallet(ctx, address)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return domain.Wallet{}, apperrors.Wrap(apperrors.CodeUnknown, "load wallet", err)
	}

	wallet = domain.NewWallet(address, s.now())
	if err := s.store.PutWallet(ctx, wallet); err != nil {
		return domain.Wallet{}, apperrors.Wrap(apperrors.CodeUnknown, "create wallet", err)
	}
	return wallet, nil
}

// Wallet returns a wallet's portfolio: balances, tokens, and the sum of
// token values.
func (s *Service) Wallet(ctx context.Context, address string) (Portfolio, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return Portfolio{}, apperrors.New(apperrors.CodeWalletNotFound, "wallet address is required")
	}

	wallet, err := s.store.GetWallet(ctx, address)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return Portfolio{}, walletNotFound(address)
		}
		return Portfolio{}, apperrors.Wrap(apperrors.CodeUnknown, "load wallet", err)
	}

	tokens, err := s.store.ListTokensByWallet(ctx, address)
	if err != nil {
		return Portfolio{}, apperrors.Wrap(apperrors.CodeUnknown, "load tokens", err)
	}

	total := 0
	for _, token := range tokens {
		total += token.Value
	}
	return Portfolio{Wallet: wallet, Tokens: tokens, TokenValue: total}, nil
}

func walletNotFound(address string) error {
	return apperrors.WithMetadata(apperrors.CodeWalletNotFound, "wallet not found", map[string]string{
		"wallet_address": address,
	})
}

// requireWallet loads a wallet that must already exist.
func (s *Service) requireWallet(ctx context.Context, store storage.Store, address string) (domain.Wallet, error) {
	wallet, err := store.GetWallet(ctx, address)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.Wallet{}, walletNotFound(address)
		}
		return domain.Wallet{}, apperrors.Wrap(apperrors.CodeUnknown, "load wallet", err)
	}
	return wallet, nil
}
