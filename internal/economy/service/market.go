package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/louisbranch/infinity.spark/internal/economy/domain"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
	apperrors "github.com/louisbranch/infinity.spark/internal/platform/errors"
)

// ListForSale marks an owned world as listed at a positive price and logs a
// listing transaction.
func (s *Service) ListForSale(ctx context.Context, worldID string, price int, owner string) (domain.World, error) {
	worldID = strings.TrimSpace(worldID)
	owner = strings.TrimSpace(owner)
	if price <= 0 {
		return domain.World{}, apperrors.New(apperrors.CodeInvalidPrice, "sale price must be positive")
	}

	world, err := s.requireWorld(ctx, s.store, worldID)
	if err != nil {
		return domain.World{}, err
	}
	if !world.IsOwnedBy(owner) {
		return domain.World{}, notOwner(worldID, owner)
	}

	txID, err := s.newID()
	if err != nil {
		return domain.World{}, apperrors.Wrap(apperrors.CodeUnknown, "allocate transaction id", err)
	}
	now := s.now()

	var updated domain.World
	err = s.transact(ctx, func(store storage.Store) error {
		world, err := s.requireWorld(ctx, store, worldID)
		if err != nil {
			return err
		}
		world.ForSale = true
		world.SalePrice = price
		world.UpdatedAt = now
		if err := store.PutWorld(ctx, world); err != nil {
			return err
		}
		if err := store.AppendTransaction(ctx, domain.Transaction{
			ID:        txID,
			Type:      domain.TransactionListing,
			WorldID:   worldID,
			From:      owner,
			Amount:    price,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		updated = world
		return nil
	})
	if err != nil {
		return domain.World{}, err
	}
	return updated, nil
}

// Unlist clears an owned world's sale state and logs a delisting
// transaction with no amount.
func (s *Service) Unlist(ctx context.Context, worldID string, owner string) (domain.World, error) {
	worldID = strings.TrimSpace(worldID)
	owner = strings.TrimSpace(owner)

	world, err := s.requireWorld(ctx, s.store, worldID)
	if err != nil {
		return domain.World{}, err
	}
	if !world.IsOwnedBy(owner) {
		return domain.World{}, notOwner(worldID, owner)
	}

	txID, err := s.newID()
	if err != nil {
		return domain.World{}, apperrors.Wrap(apperrors.CodeUnknown, "allocate transaction id", err)
	}
	now := s.now()

	var updated domain.World
	err = s.transact(ctx, func(store storage.Store) error {
		world, err := s.requireWorld(ctx, store, worldID)
		if err != nil {
			return err
		}
		world.ForSale = false
		world.SalePrice = 0
		world.UpdatedAt = now
		if err := store.PutWorld(ctx, world); err != nil {
			return err
		}
		if err := store.AppendTransaction(ctx, domain.Transaction{
			ID:        txID,
			Type:      domain.TransactionDelisting,
			WorldID:   worldID,
			From:      owner,
			Amount:    0,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		updated = world
		return nil
	})
	if err != nil {
		return domain.World{}, err
	}
	return updated, nil
}

// Purchase transfers a listed world to the buyer. Preconditions are checked
// in order: world exists, world is listed with a price, buyer can afford it.
// All effects land in one transaction; only the buyer's wallet balances
// change, the seller is paid in ownership history rather than currency.
func (s *Service) Purchase(ctx context.Context, worldID string, buyer string) (domain.World, error) {
	worldID = strings.TrimSpace(worldID)
	buyer = strings.TrimSpace(buyer)
	if buyer == "" {
		return domain.World{}, apperrors.New(apperrors.CodeWalletNotFound, "buyer wallet is required")
	}

	tokenID, err := s.newID()
	if err != nil {
		return domain.World{}, apperrors.Wrap(apperrors.CodeUnknown, "allocate token id", err)
	}
	txID, err := s.newID()
	if err != nil {
		return domain.World{}, apperrors.Wrap(apperrors.CodeUnknown, "allocate transaction id", err)
	}
	now := s.now()

	var updated domain.World
	err = s.transact(ctx, func(store storage.Store) error {
		world, err := s.requireWorld(ctx, store, worldID)
		if err != nil {
			return err
		}
		if !world.ForSale || world.SalePrice <= 0 {
			return apperrors.WithMetadata(apperrors.CodeNotListed, "world is not listed for sale", map[string]string{
				"world_id": worldID,
			})
		}
		buyerWallet, err := s.requireWallet(ctx, store, buyer)
		if err != nil {
			return err
		}
		if !buyerWallet.CanAfford(world.SalePrice) {
			return apperrors.WithMetadata(apperrors.CodeInsufficientFunds, "infinity balance is insufficient", map[string]string{
				"world_id":   worldID,
				"sale_price": strconv.Itoa(world.SalePrice),
			})
		}

		seller := world.OwnerWallet
		price := world.SalePrice

		buyerWallet.InfinityBalance -= price
		buyerWallet.Balance += world.Value
		buyerWallet.UpdatedAt = now
		if err := store.PutWallet(ctx, buyerWallet); err != nil {
			return err
		}

		world.TransferOwnership(buyer, now)
		world.ForSale = false
		world.SalePrice = 0
		world.UpdatedAt = now
		if err := store.PutWorld(ctx, world); err != nil {
			return err
		}

		if err := store.PutToken(ctx, domain.MintToken(tokenID, world, buyer, now)); err != nil {
			return err
		}

		if err := store.AppendTransaction(ctx, domain.Transaction{
			ID:        txID,
			Type:      domain.TransactionPurchase,
			WorldID:   worldID,
			From:      buyer,
			To:        seller,
			Amount:    price,
			CreatedAt: now,
		}); err != nil {
			return err
		}
		updated = world
		return nil
	})
	if err != nil {
		return domain.World{}, err
	}
	return updated, nil
}

// Listings returns every world currently for sale.
func (s *Service) Listings(ctx context.Context) ([]domain.World, error) {
	worlds, err := s.store.ListWorldsForSale(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "list marketplace", err)
	}
	return worlds, nil
}

// SuggestedPrice returns the tool-value listing hint for a world.
func (s *Service) SuggestedPrice(ctx context.Context, worldID string) (int, error) {
	world, err := s.requireWorld(ctx, s.store, strings.TrimSpace(worldID))
	if err != nil {
		return 0, err
	}
	return domain.SuggestedListingPrice(world), nil
}

