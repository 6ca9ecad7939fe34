package sqlite

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/infinity.spark/internal/economy/domain"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "economy.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestWalletRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	wallet := domain.NewWallet("spark1abc", now)
	if err := store.PutWallet(ctx, wallet); err != nil {
		t.Fatalf("put wallet: %v", err)
	}

	got, err := store.GetWallet(ctx, "spark1abc")
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	if got.Balance != 0 || got.InfinityBalance != domain.StartingInfinityBalance {
		t.Fatalf("unexpected balances %+v", got)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("created at = %v, want %v", got.CreatedAt, now)
	}

	wallet.Balance = 1000
	wallet.InfinityBalance = 9500
	wallet.UpdatedAt = now.Add(time.Minute)
	if err := store.PutWallet(ctx, wallet); err != nil {
		t.Fatalf("update wallet: %v", err)
	}
	got, err = store.GetWallet(ctx, "spark1abc")
	if err != nil {
		t.Fatalf("get wallet: %v", err)
	}
	if got.Balance != 1000 || got.InfinityBalance != 9500 {
		t.Fatalf("unexpected balances after update %+v", got)
	}
}

func TestGetWalletNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetWallet(context.Background(), "spark1missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func testWorld(now time.Time) domain.World {
	return domain.World{
		ID:          "w1",
		Title:       "Neon Garden",
		Description: "Glowing plants",
		Query:       "neon garden",
		Content:     "<h1>Neon Garden</h1>",
		URL:         domain.WorldURL("w1"),
		ArchetypeID: "physics-world",
		Emoji:       "🍄",
		OwnerWallet: "spark1owner",
		Value:       3160,
		Tools:       []string{"chart", "gallery"},
		Pages: []domain.Page{
			{ID: "p1", Title: "Greenhouse", Content: "<p>plants</p>", Tools: []string{"map"}, CreatedAt: now},
		},
		Collaborators: []domain.Collaborator{
			{WalletAddress: "spark1owner", Role: domain.RoleOwner, AddedAt: now, AddedBy: "spark1owner"},
			{WalletAddress: "spark1friend", Role: domain.RoleEditor, AddedAt: now, AddedBy: "spark1owner"},
		},
		Slot: &domain.SlotProvenance{
			Symbols:          [3]string{"🍄", "🍄", "🎰"},
			RarityMultiplier: 1.8,
			CombinationName:  "Paired 🍄 - Enhanced Mushroom Physics World",
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestWorldRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	world := testWorld(now)
	if err := store.PutWorld(ctx, world); err != nil {
		t.Fatalf("put world: %v", err)
	}

	got, err := store.GetWorld(ctx, "w1")
	if err != nil {
		t.Fatalf("get world: %v", err)
	}
	if got.Title != world.Title || got.OwnerWallet != world.OwnerWallet || got.Value != world.Value {
		t.Fatalf("unexpected world %+v", got)
	}
	if len(got.Pages) != 1 || got.Pages[0].Tools[0] != "map" {
		t.Fatalf("unexpected pages %+v", got.Pages)
	}
	if len(got.Collaborators) != 2 || got.Collaborators[0].Role != domain.RoleOwner {
		t.Fatalf("unexpected collaborators %+v", got.Collaborators)
	}
	if got.Slot == nil || got.Slot.RarityMultiplier != 1.8 {
		t.Fatalf("unexpected slot %+v", got.Slot)
	}
	if got.Slot.Symbols != world.Slot.Symbols {
		t.Fatalf("symbols = %v, want %v", got.Slot.Symbols, world.Slot.Symbols)
	}
}

func TestWorldWithoutSlotStaysNil(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	world := testWorld(now)
	world.ID = "w2"
	world.ArchetypeID = ""
	world.Slot = nil
	if err := store.PutWorld(ctx, world); err != nil {
		t.Fatalf("put world: %v", err)
	}
	got, err := store.GetWorld(ctx, "w2")
	if err != nil {
		t.Fatalf("get world: %v", err)
	}
	if got.Slot != nil {
		t.Fatalf("slot = %+v, want nil", got.Slot)
	}
}

func TestGetWorldNotFound(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.GetWorld(context.Background(), "missing"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListWorldsForSale(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	listed := testWorld(now)
	listed.ID = "w-listed"
	listed.ForSale = true
	listed.SalePrice = 500
	unlisted := testWorld(now)
	unlisted.ID = "w-unlisted"

	if err := store.PutWorld(ctx, listed); err != nil {
		t.Fatalf("put listed: %v", err)
	}
	if err := store.PutWorld(ctx, unlisted); err != nil {
		t.Fatalf("put unlisted: %v", err)
	}

	got, err := store.ListWorldsForSale(ctx)
	if err != nil {
		t.Fatalf("list for sale: %v", err)
	}
	if len(got) != 1 || got[0].ID != "w-listed" || got[0].SalePrice != 500 {
		t.Fatalf("unexpected listings %+v", got)
	}
}

func TestTopWorldsByValue(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	for i, value := range []int{1000, 4000, 2500} {
		world := testWorld(now)
		world.ID = fmt.Sprintf("w%d", i)
		world.Value = value
		if err := store.PutWorld(ctx, world); err != nil {
			t.Fatalf("put world: %v", err)
		}
	}

	got, err := store.TopWorldsByValue(ctx, 2)
	if err != nil {
		t.Fatalf("top worlds: %v", err)
	}
	if len(got) != 2 || got[0].Value != 4000 || got[1].Value != 2500 {
		t.Fatalf("unexpected leaderboard %+v", got)
	}
}

func TestTokenRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	world := testWorld(now)
	token := domain.MintToken("t1", world, "spark1owner", now)
	if err := store.PutToken(ctx, token); err != nil {
		t.Fatalf("put token: %v", err)
	}

	byWallet, err := store.ListTokensByWallet(ctx, "spark1owner")
	if err != nil {
		t.Fatalf("list by wallet: %v", err)
	}
	if len(byWallet) != 1 || byWallet[0].Value != 3160 {
		t.Fatalf("unexpected tokens %+v", byWallet)
	}
	if byWallet[0].Metadata.Title != "Neon Garden" || byWallet[0].Metadata.RarityMultiplier != 1.8 {
		t.Fatalf("unexpected metadata %+v", byWallet[0].Metadata)
	}

	byWorld, err := store.ListTokensByWorld(ctx, "w1")
	if err != nil {
		t.Fatalf("list by world: %v", err)
	}
	if len(byWorld) != 1 || byWorld[0].ID != "t1" {
		t.Fatalf("unexpected tokens %+v", byWorld)
	}
}

func TestAppendTransactionRejectsDuplicateID(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	tx := domain.Transaction{
		ID:        "tx1",
		Type:      domain.TransactionMint,
		WorldID:   "w1",
		To:        "spark1owner",
		Amount:    3160,
		CreatedAt: now,
	}
	if err := store.AppendTransaction(ctx, tx); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := store.AppendTransaction(ctx, tx); !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestListTransactionsNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	for i := 0; i < 3; i++ {
		tx := domain.Transaction{
			ID:        fmt.Sprintf("tx%d", i),
			Type:      domain.TransactionMint,
			WorldID:   "w1",
			Amount:    i,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}
		if err := store.AppendTransaction(ctx, tx); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := store.ListTransactions(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 || got[0].ID != "tx2" || got[1].ID != "tx1" {
		t.Fatalf("unexpected transactions %+v", got)
	}
}

func TestTransactRollsBackOnError(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	failed := errors.New("boom")
	err := store.Transact(ctx, func(s storage.Store) error {
		if err := s.PutWallet(ctx, domain.NewWallet("spark1abc", now)); err != nil {
			return err
		}
		return failed
	})
	if !errors.Is(err, failed) {
		t.Fatalf("expected propagated error, got %v", err)
	}

	if _, err := store.GetWallet(ctx, "spark1abc"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("wallet should have rolled back, got %v", err)
	}
}

func TestTransactCommits(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Millisecond)

	err := store.Transact(ctx, func(s storage.Store) error {
		if err := s.PutWallet(ctx, domain.NewWallet("spark1abc", now)); err != nil {
			return err
		}
		return s.PutWorld(ctx, testWorld(now))
	})
	if err != nil {
		t.Fatalf("transact: %v", err)
	}

	if _, err := store.GetWallet(ctx, "spark1abc"); err != nil {
		t.Fatalf("wallet should have committed: %v", err)
	}
	if _, err := store.GetWorld(ctx, "w1"); err != nil {
		t.Fatalf("world should have committed: %v", err)
	}
}
