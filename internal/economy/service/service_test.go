package service

import (
	"context"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/infinity.spark/internal/economy/archetype"
	"github.com/louisbranch/infinity.spark/internal/economy/domain"
	"github.com/louisbranch/infinity.spark/internal/economy/generation"
	"github.com/louisbranch/infinity.spark/internal/economy/storage/sqlite"
	apperrors "github.com/louisbranch/infinity.spark/internal/platform/errors"
)

type failingGenerator struct{}

func (failingGenerator) GenerateWorldContent(context.Context, archetype.Definition, string, archetype.Combination) (generation.Bundle, error) {
	return generation.Bundle{}, fmt.Errorf("%w: upstream offline", generation.ErrGenerationFailed)
}

func (failingGenerator) GenerateWebsiteContent(context.Context, string, string) (generation.Bundle, error) {
	return generation.Bundle{}, fmt.Errorf("%w: upstream offline", generation.ErrGenerationFailed)
}

func (failingGenerator) GeneratePageContent(context.Context, string, string, string) (generation.PageBundle, error) {
	return generation.PageBundle{}, fmt.Errorf("%w: upstream offline", generation.ErrGenerationFailed)
}

func newTestService(t *testing.T, generator generation.Generator) *Service {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "economy.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})

	ids := 0
	addresses := 0
	svc, err := New(Config{
		Store:     store,
		Generator: generator,
		Now: func() time.Time {
			return time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
		},
		NewID: func() (string, error) {
			ids++
			return fmt.Sprintf("id-%03d", ids), nil
		},
		NewWalletAddress: func() (string, error) {
			addresses++
			return fmt.Sprintf("spark1gen%03d", addresses), nil
		},
		Rand: rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func assertCode(t *testing.T, err error, want apperrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", want)
	}
	if got := apperrors.CodeOf(err); got != want {
		t.Fatalf("error code = %s, want %s (err: %v)", got, want, err)
	}
}

func TestEnsureWalletIsIdempotent(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	wallet, err := svc.EnsureWallet(ctx, "spark1alice")
	if err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	if wallet.Balance != 0 || wallet.InfinityBalance != 10000 {
		t.Fatalf("unexpected starting balances %+v", wallet)
	}

	again, err := svc.EnsureWallet(ctx, "spark1alice")
	if err != nil {
		t.Fatalf("ensure wallet again: %v", err)
	}
	if again != wallet {
		t.Fatalf("ensure was not idempotent: %+v vs %+v", again, wallet)
	}
}

func TestEnsureWalletAllocatesAddress(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())

	wallet, err := svc.EnsureWallet(context.Background(), "  ")
	if err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	if wallet.Address != "spark1gen001" {
		t.Fatalf("address = %q", wallet.Address)
	}
}

func TestCreateWorldFromQuery(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}

	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1alice")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}
	if world.Value != 1000 {
		t.Fatalf("value = %d, want 1000", world.Value)
	}
	if world.URL != "https://infinity.spark/"+world.ID {
		t.Fatalf("url = %q", world.URL)
	}
	if len(world.Collaborators) != 1 || world.Collaborators[0].Role != domain.RoleOwner {
		t.Fatalf("unexpected collaborators %+v", world.Collaborators)
	}

	portfolio, err := svc.Wallet(ctx, "spark1alice")
	if err != nil {
		t.Fatalf("portfolio: %v", err)
	}
	if portfolio.Wallet.Balance != 1000 {
		t.Fatalf("balance = %d, want 1000", portfolio.Wallet.Balance)
	}
	if portfolio.Wallet.InfinityBalance != 10000 {
		t.Fatalf("infinity balance = %d, want 10000", portfolio.Wallet.InfinityBalance)
	}
	if len(portfolio.Tokens) != 1 || portfolio.Tokens[0].WorldID != world.ID {
		t.Fatalf("unexpected tokens %+v", portfolio.Tokens)
	}

	transactions, err := svc.WorldTransactions(ctx, world.ID)
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(transactions) != 1 || transactions[0].Type != domain.TransactionMint || transactions[0].Amount != 1000 {
		t.Fatalf("unexpected transactions %+v", transactions)
	}
}

func TestCreateWorldFromQueryRequiresWallet(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	_, err := svc.CreateWorldFromQuery(context.Background(), "jazz bar", "spark1ghost")
	assertCode(t, err, apperrors.CodeWalletNotFound)
}

func TestCreateWorldFromSlotCombination(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}

	combination, err := svc.Classify(ctx, [3]string{"🎰", "🎰", "🎰"})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	world, err := svc.CreateWorld(ctx, CreateWorldInput{Owner: "spark1alice", Combination: combination})
	if err != nil {
		t.Fatalf("create world: %v", err)
	}

	// slot-forge base 1000 at triple rarity 3.0 on top of the creation base.
	if world.Value != 1000+3000 {
		t.Fatalf("value = %d, want 4000", world.Value)
	}
	if world.Slot == nil || world.Slot.RarityMultiplier != 3.0 {
		t.Fatalf("unexpected slot provenance %+v", world.Slot)
	}

	portfolio, err := svc.Wallet(ctx, "spark1alice")
	if err != nil {
		t.Fatalf("portfolio: %v", err)
	}
	if portfolio.Wallet.Balance != 4000 {
		t.Fatalf("balance = %d, want 4000", portfolio.Wallet.Balance)
	}
}

func TestCreateWorldRejectsUnknownArchetype(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()
	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	_, err := svc.CreateWorld(ctx, CreateWorldInput{
		Owner: "spark1alice",
		Combination: archetype.Combination{
			ArchetypeID:      "moon-base",
			RarityMultiplier: 1.0,
		},
	})
	assertCode(t, err, apperrors.CodeUnknownArchetype)
}

func TestGenerationFailureLeavesStateUntouched(t *testing.T) {
	svc := newTestService(t, failingGenerator{})
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}

	_, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1alice")
	assertCode(t, err, apperrors.CodeGenerationFailed)

	portfolio, err := svc.Wallet(ctx, "spark1alice")
	if err != nil {
		t.Fatalf("portfolio: %v", err)
	}
	if portfolio.Wallet.Balance != 0 || len(portfolio.Tokens) != 0 {
		t.Fatalf("state mutated despite failed generation: %+v", portfolio)
	}
	worlds, err := svc.Worlds(ctx)
	if err != nil {
		t.Fatalf("worlds: %v", err)
	}
	if len(worlds) != 0 {
		t.Fatalf("worlds persisted despite failed generation: %+v", worlds)
	}
}

func TestAddPage(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1alice")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}

	updated, err := svc.AddPage(ctx, world.ID, "backstage lounge", "spark1alice")
	if err != nil {
		t.Fatalf("add page: %v", err)
	}
	// The offline page carries one tool, so the page adds 100 + 100.
	if updated.Value != 1200 {
		t.Fatalf("value = %d, want 1200", updated.Value)
	}
	if len(updated.Pages) != 1 || updated.Pages[0].Title != "Backstage Lounge" {
		t.Fatalf("unexpected pages %+v", updated.Pages)
	}

	portfolio, err := svc.Wallet(ctx, "spark1alice")
	if err != nil {
		t.Fatalf("portfolio: %v", err)
	}
	if portfolio.Wallet.Balance != 1200 {
		t.Fatalf("balance = %d, want 1200", portfolio.Wallet.Balance)
	}
	if len(portfolio.Tokens) != 1 || portfolio.Tokens[0].Value != 1200 {
		t.Fatalf("token value not updated: %+v", portfolio.Tokens)
	}
}

func TestAddPageRequiresOwnership(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1alice")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}

	_, err = svc.AddPage(ctx, world.ID, "backstage lounge", "spark1mallory")
	assertCode(t, err, apperrors.CodeNotOwner)
}

func TestAddPageGenerationFailureLeavesWorldUntouched(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1alice")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}

	svc.generator = failingGenerator{}
	_, err = svc.AddPage(ctx, world.ID, "backstage lounge", "spark1alice")
	assertCode(t, err, apperrors.CodeGenerationFailed)

	reloaded, err := svc.World(ctx, world.ID)
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	if len(reloaded.Pages) != 0 || reloaded.Value != 1000 {
		t.Fatalf("world mutated despite failed generation: %+v", reloaded)
	}
}

func TestListForSaleAndUnlist(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1alice")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}

	if _, err := svc.ListForSale(ctx, world.ID, 0, "spark1alice"); apperrors.CodeOf(err) != apperrors.CodeInvalidPrice {
		t.Fatalf("expected INVALID_PRICE, got %v", err)
	}
	if _, err := svc.ListForSale(ctx, world.ID, 500, "spark1mallory"); apperrors.CodeOf(err) != apperrors.CodeNotOwner {
		t.Fatalf("expected NOT_OWNER, got %v", err)
	}

	listed, err := svc.ListForSale(ctx, world.ID, 500, "spark1alice")
	if err != nil {
		t.Fatalf("list for sale: %v", err)
	}
	if !listed.ForSale || listed.SalePrice != 500 {
		t.Fatalf("unexpected sale state %+v", listed)
	}

	listings, err := svc.Listings(ctx)
	if err != nil {
		t.Fatalf("listings: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != world.ID {
		t.Fatalf("unexpected listings %+v", listings)
	}

	unlisted, err := svc.Unlist(ctx, world.ID, "spark1alice")
	if err != nil {
		t.Fatalf("unlist: %v", err)
	}
	if unlisted.ForSale || unlisted.SalePrice != 0 {
		t.Fatalf("unexpected sale state %+v", unlisted)
	}

	transactions, err := svc.WorldTransactions(ctx, world.ID)
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if len(transactions) != 3 {
		t.Fatalf("transactions = %d, want mint+listing+delisting", len(transactions))
	}
	if transactions[1].Type != domain.TransactionListing || transactions[1].Amount != 500 {
		t.Fatalf("unexpected listing transaction %+v", transactions[1])
	}
	if transactions[2].Type != domain.TransactionDelisting || transactions[2].Amount != 0 {
		t.Fatalf("unexpected delisting transaction %+v", transactions[2])
	}
}

func TestPurchase(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1seller"); err != nil {
		t.Fatalf("ensure seller: %v", err)
	}
	if _, err := svc.EnsureWallet(ctx, "spark1buyer"); err != nil {
		t.Fatalf("ensure buyer: %v", err)
	}

	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1seller")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}
	if _, err := svc.AddCollaborator(ctx, world.ID, "spark1seller", "spark1friend", "editor"); err != nil {
		t.Fatalf("add collaborator: %v", err)
	}
	if _, err := svc.ListForSale(ctx, world.ID, 500, "spark1seller"); err != nil {
		t.Fatalf("list: %v", err)
	}

	bought, err := svc.Purchase(ctx, world.ID, "spark1buyer")
	if err != nil {
		t.Fatalf("purchase: %v", err)
	}

	if bought.OwnerWallet != "spark1buyer" {
		t.Fatalf("owner = %q, want spark1buyer", bought.OwnerWallet)
	}
	if bought.ForSale || bought.SalePrice != 0 {
		t.Fatalf("sale state not reset %+v", bought)
	}
	owners := 0
	keptEditor := false
	for _, c := range bought.Collaborators {
		if c.Role == domain.RoleOwner {
			owners++
			if c.WalletAddress != "spark1buyer" {
				t.Fatalf("owner collaborator = %q", c.WalletAddress)
			}
		}
		if c.WalletAddress == "spark1friend" {
			keptEditor = true
		}
	}
	if owners != 1 || !keptEditor {
		t.Fatalf("unexpected collaborators %+v", bought.Collaborators)
	}

	buyer, err := svc.Wallet(ctx, "spark1buyer")
	if err != nil {
		t.Fatalf("buyer portfolio: %v", err)
	}
	if buyer.Wallet.InfinityBalance != 9500 {
		t.Fatalf("buyer infinity = %d, want 9500", buyer.Wallet.InfinityBalance)
	}
	if buyer.Wallet.Balance != 1000 {
		t.Fatalf("buyer balance = %d, want 1000", buyer.Wallet.Balance)
	}
	if len(buyer.Tokens) != 1 || buyer.Tokens[0].WorldID != world.ID {
		t.Fatalf("buyer tokens %+v", buyer.Tokens)
	}

	transactions, err := svc.WorldTransactions(ctx, world.ID)
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	last := transactions[len(transactions)-1]
	if last.Type != domain.TransactionPurchase || last.From != "spark1buyer" || last.To != "spark1seller" || last.Amount != 500 {
		t.Fatalf("unexpected purchase transaction %+v", last)
	}
}

func TestPurchaseLeavesSellerWalletUntouched(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1seller"); err != nil {
		t.Fatalf("ensure seller: %v", err)
	}
	if _, err := svc.EnsureWallet(ctx, "spark1buyer"); err != nil {
		t.Fatalf("ensure buyer: %v", err)
	}
	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1seller")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}
	if _, err := svc.ListForSale(ctx, world.ID, 500, "spark1seller"); err != nil {
		t.Fatalf("list: %v", err)
	}

	before, err := svc.Wallet(ctx, "spark1seller")
	if err != nil {
		t.Fatalf("seller portfolio: %v", err)
	}
	if _, err := svc.Purchase(ctx, world.ID, "spark1buyer"); err != nil {
		t.Fatalf("purchase: %v", err)
	}
	after, err := svc.Wallet(ctx, "spark1seller")
	if err != nil {
		t.Fatalf("seller portfolio: %v", err)
	}

	// Only the buyer's wallet moves on a purchase. The seller keeps their
	// balances and their original token.
	if after.Wallet.Balance != before.Wallet.Balance || after.Wallet.InfinityBalance != before.Wallet.InfinityBalance {
		t.Fatalf("seller wallet changed: before %+v after %+v", before.Wallet, after.Wallet)
	}
	if len(after.Tokens) != len(before.Tokens) {
		t.Fatalf("seller tokens changed: before %d after %d", len(before.Tokens), len(after.Tokens))
	}
}

func TestPurchasePreconditions(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1seller"); err != nil {
		t.Fatalf("ensure seller: %v", err)
	}
	if _, err := svc.EnsureWallet(ctx, "spark1buyer"); err != nil {
		t.Fatalf("ensure buyer: %v", err)
	}
	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1seller")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}

	_, err = svc.Purchase(ctx, "missing", "spark1buyer")
	assertCode(t, err, apperrors.CodeNotFound)

	_, err = svc.Purchase(ctx, world.ID, "spark1buyer")
	assertCode(t, err, apperrors.CodeNotListed)

	if _, err := svc.ListForSale(ctx, world.ID, 20000, "spark1seller"); err != nil {
		t.Fatalf("list: %v", err)
	}
	_, err = svc.Purchase(ctx, world.ID, "spark1buyer")
	assertCode(t, err, apperrors.CodeInsufficientFunds)

	// A failed purchase changes nothing.
	buyer, err := svc.Wallet(ctx, "spark1buyer")
	if err != nil {
		t.Fatalf("buyer portfolio: %v", err)
	}
	if buyer.Wallet.InfinityBalance != 10000 || len(buyer.Tokens) != 0 {
		t.Fatalf("failed purchase mutated buyer: %+v", buyer)
	}
	reloaded, err := svc.World(ctx, world.ID)
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	if reloaded.OwnerWallet != "spark1seller" || !reloaded.ForSale {
		t.Fatalf("failed purchase mutated world: %+v", reloaded)
	}
}

func TestCollaboratorOperations(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1alice")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}

	if _, err := svc.AddCollaborator(ctx, world.ID, "spark1alice", "spark1friend", "moderator"); apperrors.CodeOf(err) != apperrors.CodeInvalidRole {
		t.Fatalf("expected INVALID_ROLE, got %v", err)
	}
	if _, err := svc.AddCollaborator(ctx, world.ID, "spark1mallory", "spark1friend", "editor"); apperrors.CodeOf(err) != apperrors.CodeNotOwner {
		t.Fatalf("expected NOT_OWNER, got %v", err)
	}

	updated, err := svc.AddCollaborator(ctx, world.ID, "spark1alice", "spark1friend", "editor")
	if err != nil {
		t.Fatalf("add collaborator: %v", err)
	}
	if len(updated.Collaborators) != 2 {
		t.Fatalf("collaborators = %d, want 2", len(updated.Collaborators))
	}
	if updated.Collaborators[1].AddedBy != "spark1alice" {
		t.Fatalf("added by = %q", updated.Collaborators[1].AddedBy)
	}

	if _, err := svc.AddCollaborator(ctx, world.ID, "spark1alice", "spark1friend", "viewer"); apperrors.CodeOf(err) != apperrors.CodeAlreadyCollaborator {
		t.Fatalf("expected ALREADY_COLLABORATOR, got %v", err)
	}
	reloaded, err := svc.World(ctx, world.ID)
	if err != nil {
		t.Fatalf("world: %v", err)
	}
	if len(reloaded.Collaborators) != 2 {
		t.Fatalf("duplicate add changed the set: %+v", reloaded.Collaborators)
	}

	// Removing the owner entry is a no-op.
	unchanged, err := svc.RemoveCollaborator(ctx, world.ID, "spark1alice", "spark1alice")
	if err != nil {
		t.Fatalf("remove owner: %v", err)
	}
	if len(unchanged.Collaborators) != 2 {
		t.Fatalf("owner removal changed the set: %+v", unchanged.Collaborators)
	}

	removed, err := svc.RemoveCollaborator(ctx, world.ID, "spark1alice", "spark1friend")
	if err != nil {
		t.Fatalf("remove collaborator: %v", err)
	}
	if len(removed.Collaborators) != 1 || removed.Collaborators[0].Role != domain.RoleOwner {
		t.Fatalf("unexpected collaborators %+v", removed.Collaborators)
	}
}

func TestLeaderboardRanksByValue(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	if _, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1alice"); err != nil {
		t.Fatalf("create query world: %v", err)
	}
	combination, err := svc.Classify(ctx, [3]string{"🚀", "🚀", "🚀"})
	if err != nil {
		t.Fatalf("classify: %v", err)
	}
	slotWorld, err := svc.CreateWorld(ctx, CreateWorldInput{Owner: "spark1alice", Combination: combination})
	if err != nil {
		t.Fatalf("create slot world: %v", err)
	}

	entries, err := svc.Leaderboard(ctx, 10)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Rank != 1 || entries[0].World.ID != slotWorld.ID {
		t.Fatalf("unexpected first entry %+v", entries[0])
	}
}

func TestSuggestedPrice(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	ctx := context.Background()

	if _, err := svc.EnsureWallet(ctx, "spark1alice"); err != nil {
		t.Fatalf("ensure wallet: %v", err)
	}
	world, err := svc.CreateWorldFromQuery(ctx, "jazz bar", "spark1alice")
	if err != nil {
		t.Fatalf("create world: %v", err)
	}

	price, err := svc.SuggestedPrice(ctx, world.ID)
	if err != nil {
		t.Fatalf("suggested price: %v", err)
	}
	// The offline bundle carries one content-hub tool.
	if price != 250 {
		t.Fatalf("price = %d, want 250", price)
	}
}

func TestSpinProducesValidCombination(t *testing.T) {
	svc := newTestService(t, generation.NewStaticGenerator())
	combination, err := svc.Spin(context.Background())
	if err != nil {
		t.Fatalf("spin: %v", err)
	}
	if _, err := archetype.Lookup(combination.ArchetypeID); err != nil {
		t.Fatalf("spin produced unknown archetype %q", combination.ArchetypeID)
	}
}
