package domain

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/infinity.spark/internal/economy/service"
)

// LeaderboardResourceURI is the stable address of the ranked world list.
const LeaderboardResourceURI = "economy://leaderboard"

// TransactionsResourceURI is the stable address of the transaction log.
const TransactionsResourceURI = "economy://transactions"

// LeaderboardResource describes the leaderboard resource.
func LeaderboardResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         LeaderboardResourceURI,
		Name:        "leaderboard",
		Description: "Highest-valued worlds in rank order",
		MIMEType:    "application/json",
	}
}

// TransactionsResource describes the transaction log resource.
func TransactionsResource() *mcp.Resource {
	return &mcp.Resource{
		URI:         TransactionsResourceURI,
		Name:        "transactions",
		Description: "Recent economy transactions, newest first",
		MIMEType:    "application/json",
	}
}

// LeaderboardResourceHandler serves the leaderboard as a JSON document.
func LeaderboardResourceHandler(svc *service.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		entries, err := svc.Leaderboard(ctx, 0)
		if err != nil {
			return nil, fmt.Errorf("leaderboard read failed: %w", err)
		}
		payload := LeaderboardResult{Entries: make([]LeaderboardEntryResult, 0, len(entries))}
		for _, entry := range entries {
			payload.Entries = append(payload.Entries, LeaderboardEntryResult{
				Rank:  entry.Rank,
				World: worldResult(entry.World),
			})
		}
		return resourceDocument(LeaderboardResourceURI, payload)
	}
}

// TransactionsResourceHandler serves the recent transaction log as JSON.
func TransactionsResourceHandler(svc *service.Service) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		transactions, err := svc.Transactions(ctx, 0)
		if err != nil {
			return nil, fmt.Errorf("transactions read failed: %w", err)
		}
		payload := TransactionsResult{Transactions: make([]TransactionResult, 0, len(transactions))}
		for _, transaction := range transactions {
			payload.Transactions = append(payload.Transactions, transactionResult(transaction))
		}
		return resourceDocument(TransactionsResourceURI, payload)
	}
}

func resourceDocument(uri string, payload any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal resource payload: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "application/json",
				Text:     string(data),
			},
		},
	}, nil
}
