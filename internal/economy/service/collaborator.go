package service

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/infinity.spark/internal/economy/domain"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
	apperrors "github.com/louisbranch/infinity.spark/internal/platform/errors"
)

// AddCollaborator grants a wallet an editor or viewer role on a world the
// caller owns.
func (s *Service) AddCollaborator(ctx context.Context, worldID string, owner string, newWallet string, role string) (domain.World, error) {
	worldID = strings.TrimSpace(worldID)
	owner = strings.TrimSpace(owner)
	newWallet = strings.TrimSpace(newWallet)

	parsedRole, err := domain.ParseRole(role)
	if err != nil {
		return domain.World{}, apperrors.WithMetadata(apperrors.CodeInvalidRole, "role must be editor or viewer", map[string]string{
			"role": role,
		})
	}

	world, err := s.requireWorld(ctx, s.store, worldID)
	if err != nil {
		return domain.World{}, err
	}
	if !world.IsOwnedBy(owner) {
		return domain.World{}, notOwner(worldID, owner)
	}

	now := s.now()
	var updated domain.World
	err = s.transact(ctx, func(store storage.Store) error {
		world, err := s.requireWorld(ctx, store, worldID)
		if err != nil {
			return err
		}
		if err := world.AddCollaborator(newWallet, parsedRole, now, owner); err != nil {
			if errors.Is(err, domain.ErrAlreadyCollaborator) {
				return apperrors.WithMetadata(apperrors.CodeAlreadyCollaborator, "wallet is already a collaborator", map[string]string{
					"world_id":       worldID,
					"wallet_address": newWallet,
				})
			}
			return apperrors.Wrap(apperrors.CodeUnknown, "add collaborator", err)
		}
		world.UpdatedAt = now
		if err := store.PutWorld(ctx, world); err != nil {
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

// RemoveCollaborator removes a non-owner collaborator from a world the
// caller owns. Targeting the owner entry leaves the world unchanged.
func (s *Service) RemoveCollaborator(ctx context.Context, worldID string, owner string, targetWallet string) (domain.World, error) {
	worldID = strings.TrimSpace(worldID)
	owner = strings.TrimSpace(owner)
	targetWallet = strings.TrimSpace(targetWallet)

	world, err := s.requireWorld(ctx, s.store, worldID)
	if err != nil {
		return domain.World{}, err
	}
	if !world.IsOwnedBy(owner) {
		return domain.World{}, notOwner(worldID, owner)
	}

	now := s.now()
	var updated domain.World
	err = s.transact(ctx, func(store storage.Store) error {
		world, err := s.requireWorld(ctx, store, worldID)
		if err != nil {
			return err
		}
		if err := world.RemoveCollaborator(targetWallet); err != nil {
			if errors.Is(err, domain.ErrCollaboratorNotFound) {
				return apperrors.WithMetadata(apperrors.CodeNotFound, "collaborator not found", map[string]string{
					"world_id":       worldID,
					"wallet_address": targetWallet,
				})
			}
			return apperrors.Wrap(apperrors.CodeUnknown, "remove collaborator", err)
		}
		world.UpdatedAt = now
		if err := store.PutWorld(ctx, world); err != nil {
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
