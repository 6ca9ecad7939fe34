package service

import (
	"context"
	"errors"
	"strings"

	"github.com/louisbranch/infinity.spark/internal/economy/archetype"
	"github.com/louisbranch/infinity.spark/internal/economy/domain"
	"github.com/louisbranch/infinity.spark/internal/economy/generation"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
	apperrors "github.com/louisbranch/infinity.spark/internal/platform/errors"
)

// Spin draws three slot symbols and classifies them. Nothing is persisted;
// callers feed the resulting combination into CreateWorld.
func (s *Service) Spin(ctx context.Context) (archetype.Combination, error) {
	if err := ctx.Err(); err != nil {
		return archetype.Combination{}, err
	}
	combination, err := archetype.Spin(s.rng)
	if err != nil {
		return archetype.Combination{}, apperrors.Wrap(apperrors.CodeInvalidSymbols, "spin slot machine", err)
	}
	return combination, nil
}

// Classify maps three caller-supplied symbols to an archetype combination.
func (s *Service) Classify(ctx context.Context, symbols [3]string) (archetype.Combination, error) {
	if err := ctx.Err(); err != nil {
		return archetype.Combination{}, err
	}
	combination, err := archetype.Classify(symbols, s.rng)
	if err != nil {
		return archetype.Combination{}, apperrors.Wrap(apperrors.CodeInvalidSymbols, "classify symbols", err)
	}
	return combination, nil
}

// CreateWorldInput carries the parameters for minting a slot-originated
// world.
type CreateWorldInput struct {
	Owner       string
	Combination archetype.Combination
}

// CreateWorld generates content for a slot combination and mints the world,
// its token, the owner's balance credit, and the mint transaction as one
// unit. A generation failure leaves the economy untouched.
func (s *Service) CreateWorld(ctx context.Context, input CreateWorldInput) (domain.World, error) {
	owner := strings.TrimSpace(input.Owner)
	if owner == "" {
		return domain.World{}, apperrors.New(apperrors.CodeWalletNotFound, "owner wallet is required")
	}
	def, err := archetype.Lookup(input.Combination.ArchetypeID)
	if err != nil {
		return domain.World{}, apperrors.WithMetadata(apperrors.CodeUnknownArchetype, "unknown archetype", map[string]string{
			"archetype_id": input.Combination.ArchetypeID,
		})
	}
	if input.Combination.RarityMultiplier <= 0 {
		return domain.World{}, apperrors.New(apperrors.CodeInvalidSymbols, "rarity multiplier must be positive")
	}
	if _, err := s.requireWallet(ctx, s.store, owner); err != nil {
		return domain.World{}, err
	}

	bundle, err := s.generator.GenerateWorldContent(ctx, def, owner, input.Combination)
	if err != nil {
		return domain.World{}, generationFailed(err)
	}

	world, err := s.buildWorld(bundle, owner, def.ID, &domain.SlotProvenance{
		Symbols:          input.Combination.Symbols,
		RarityMultiplier: input.Combination.RarityMultiplier,
		CombinationName:  input.Combination.Name,
	})
	if err != nil {
		return domain.World{}, err
	}
	if world.Emoji == "" {
		world.Emoji = def.Emoji
	}
	if err := s.mintWorld(ctx, &world); err != nil {
		return domain.World{}, err
	}
	return world, nil
}

// CreateWorldFromQuery generates content for a free-form query and mints the
// world the same way CreateWorld does, without slot provenance.
func (s *Service) CreateWorldFromQuery(ctx context.Context, query string, owner string) (domain.World, error) {
	query = strings.TrimSpace(query)
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return domain.World{}, apperrors.New(apperrors.CodeWalletNotFound, "owner wallet is required")
	}
	if query == "" {
		return domain.World{}, apperrors.New(apperrors.CodeGenerationFailed, "query is required")
	}
	if _, err := s.requireWallet(ctx, s.store, owner); err != nil {
		return domain.World{}, err
	}

	bundle, err := s.generator.GenerateWebsiteContent(ctx, query, owner)
	if err != nil {
		return domain.World{}, generationFailed(err)
	}

	world, err := s.buildWorld(bundle, owner, "", nil)
	if err != nil {
		return domain.World{}, err
	}
	world.Query = query
	if err := s.mintWorld(ctx, &world); err != nil {
		return domain.World{}, err
	}
	return world, nil
}

func (s *Service) buildWorld(bundle generation.Bundle, owner string, archetypeID string, slot *domain.SlotProvenance) (domain.World, error) {
	worldID, err := s.newID()
	if err != nil {
		return domain.World{}, apperrors.Wrap(apperrors.CodeUnknown, "allocate world id", err)
	}
	now := s.now()

	world := domain.World{
		ID:          worldID,
		Title:       bundle.Title,
		Description: bundle.Description,
		Content:     bundle.Content,
		URL:         domain.WorldURL(worldID),
		ArchetypeID: archetypeID,
		Emoji:       bundle.Emoji,
		Theme:       bundle.Theme,
		OwnerWallet: owner,
		Tools:       bundle.Tools,
		Slot:        slot,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := world.AddCollaborator(owner, domain.RoleOwner, now, owner); err != nil {
		return domain.World{}, apperrors.Wrap(apperrors.CodeUnknown, "add owner collaborator", err)
	}
	world.Value = domain.ComputeValue(world)
	return world, nil
}

// mintWorld persists a freshly built world with its token, the owner's
// balance credit, and the mint log entry in one transaction.
func (s *Service) mintWorld(ctx context.Context, world *domain.World) error {
	tokenID, err := s.newID()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "allocate token id", err)
	}
	txID, err := s.newID()
	if err != nil {
		return apperrors.Wrap(apperrors.CodeUnknown, "allocate transaction id", err)
	}
	now := world.CreatedAt

	return s.transact(ctx, func(store storage.Store) error {
		wallet, err := s.requireWallet(ctx, store, world.OwnerWallet)
		if err != nil {
			return err
		}
		if err := store.PutWorld(ctx, *world); err != nil {
			return err
		}
		if err := store.PutToken(ctx, domain.MintToken(tokenID, *world, world.OwnerWallet, now)); err != nil {
			return err
		}
		wallet.Balance += world.Value
		wallet.UpdatedAt = now
		if err := store.PutWallet(ctx, wallet); err != nil {
			return err
		}
		return store.AppendTransaction(ctx, domain.Transaction{
			ID:        txID,
			Type:      domain.TransactionMint,
			WorldID:   world.ID,
			To:        world.OwnerWallet,
			Amount:    world.Value,
			CreatedAt: now,
		})
	})
}

// AddPage generates one more page for a world the requester owns, then
// appends it, revalues the world, credits the owner the value delta, and
// updates the owner's matching tokens atomically.
func (s *Service) AddPage(ctx context.Context, worldID string, query string, requester string) (domain.World, error) {
	worldID = strings.TrimSpace(worldID)
	query = strings.TrimSpace(query)
	requester = strings.TrimSpace(requester)
	if query == "" {
		return domain.World{}, apperrors.New(apperrors.CodeGenerationFailed, "page query is required")
	}

	world, err := s.requireWorld(ctx, s.store, worldID)
	if err != nil {
		return domain.World{}, err
	}
	if !world.IsOwnedBy(requester) {
		return domain.World{}, notOwner(worldID, requester)
	}

	pageBundle, err := s.generator.GeneratePageContent(ctx, world.Title, query, requester)
	if err != nil {
		return domain.World{}, generationFailed(err)
	}

	pageID, err := s.newID()
	if err != nil {
		return domain.World{}, apperrors.Wrap(apperrors.CodeUnknown, "allocate page id", err)
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
		wallet, err := s.requireWallet(ctx, store, world.OwnerWallet)
		if err != nil {
			return err
		}

		page := domain.Page{
			ID:        pageID,
			Title:     pageBundle.Title,
			Content:   pageBundle.Content,
			Tools:     pageBundle.Tools,
			CreatedAt: now,
		}
		world.Pages = append(world.Pages, page)
		previous := world.Value
		world.Value = domain.ComputeValue(world)
		world.UpdatedAt = now
		delta := world.Value - previous

		if err := store.PutWorld(ctx, world); err != nil {
			return err
		}

		// The owner's tokens referencing this world track its value; there
		// may be several after repurchases, so every match is updated.
		tokens, err := store.ListTokensByWorld(ctx, worldID)
		if err != nil {
			return err
		}
		toolCount := len(world.Tools)
		for _, p := range world.Pages {
			toolCount += len(p.Tools)
		}
		for _, token := range tokens {
			if token.WalletAddress != world.OwnerWallet {
				continue
			}
			token.Value = world.Value
			token.Metadata.ToolCount = toolCount
			if err := store.PutToken(ctx, token); err != nil {
				return err
			}
		}

		wallet.Balance += delta
		wallet.UpdatedAt = now
		if err := store.PutWallet(ctx, wallet); err != nil {
			return err
		}

		if err := store.AppendTransaction(ctx, domain.Transaction{
			ID:        txID,
			Type:      domain.TransactionPage,
			WorldID:   worldID,
			To:        world.OwnerWallet,
			Amount:    delta,
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

// World returns one world by id.
func (s *Service) World(ctx context.Context, worldID string) (domain.World, error) {
	return s.requireWorld(ctx, s.store, strings.TrimSpace(worldID))
}

// Worlds returns every world ordered by creation time.
func (s *Service) Worlds(ctx context.Context) ([]domain.World, error) {
	worlds, err := s.store.ListWorlds(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "list worlds", err)
	}
	return worlds, nil
}

// WorldsByOwner returns the worlds a wallet owns.
func (s *Service) WorldsByOwner(ctx context.Context, owner string) ([]domain.World, error) {
	owner = strings.TrimSpace(owner)
	if owner == "" {
		return nil, apperrors.New(apperrors.CodeWalletNotFound, "owner wallet is required")
	}
	worlds, err := s.store.ListWorldsByOwner(ctx, owner)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "list worlds by owner", err)
	}
	return worlds, nil
}

func (s *Service) requireWorld(ctx context.Context, store storage.Store, worldID string) (domain.World, error) {
	if worldID == "" {
		return domain.World{}, apperrors.New(apperrors.CodeNotFound, "world id is required")
	}
	world, err := store.GetWorld(ctx, worldID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return domain.World{}, apperrors.WithMetadata(apperrors.CodeNotFound, "world not found", map[string]string{
				"world_id": worldID,
			})
		}
		return domain.World{}, apperrors.Wrap(apperrors.CodeUnknown, "load world", err)
	}
	return world, nil
}

func (s *Service) transact(ctx context.Context, fn func(storage.Store) error) error {
	if err := s.store.Transact(ctx, fn); err != nil {
		if apperrors.CodeOf(err) != apperrors.CodeUnknown {
			return err
		}
		return apperrors.Wrap(apperrors.CodeUnknown, "apply economy transaction", err)
	}
	return nil
}

func notOwner(worldID string, requester string) error {
	return apperrors.WithMetadata(apperrors.CodeNotOwner, "requester does not own the world", map[string]string{
		"world_id":  worldID,
		"requester": requester,
	})
}

func generationFailed(err error) error {
	return apperrors.Wrap(apperrors.CodeGenerationFailed, "content generation failed", err)
}
