package service

import (
	"context"

	"github.com/louisbranch/infinity.spark/internal/economy/domain"
	apperrors "github.com/louisbranch/infinity.spark/internal/platform/errors"
)

// LeaderboardEntry is one ranked world.
type LeaderboardEntry struct {
	Rank  int
	World domain.World
}

// Leaderboard returns the highest-valued worlds in rank order.
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	worlds, err := s.store.TopWorldsByValue(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "load leaderboard", err)
	}
	entries := make([]LeaderboardEntry, 0, len(worlds))
	for i, world := range worlds {
		entries = append(entries, LeaderboardEntry{Rank: i + 1, World: world})
	}
	return entries, nil
}

// Transactions returns the newest transaction log entries.
func (s *Service) Transactions(ctx context.Context, limit int) ([]domain.Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	transactions, err := s.store.ListTransactions(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "list transactions", err)
	}
	return transactions, nil
}

// WorldTransactions returns a world's transaction history oldest first.
func (s *Service) WorldTransactions(ctx context.Context, worldID string) ([]domain.Transaction, error) {
	if _, err := s.requireWorld(ctx, s.store, worldID); err != nil {
		return nil, err
	}
	transactions, err := s.store.ListTransactionsByWorld(ctx, worldID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeUnknown, "list world transactions", err)
	}
	return transactions, nil
}
