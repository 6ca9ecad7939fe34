package domain

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/infinity.spark/internal/economy/archetype"
	econdomain "github.com/louisbranch/infinity.spark/internal/economy/domain"
	"github.com/louisbranch/infinity.spark/internal/economy/service"
	"github.com/louisbranch/infinity.spark/internal/economy/snapshot"
	"github.com/louisbranch/infinity.spark/internal/economy/storage"
	apperrors "github.com/louisbranch/infinity.spark/internal/platform/errors"
)

// WalletEnsureHandler returns or creates a wallet.
func WalletEnsureHandler(svc *service.Service) mcp.ToolHandlerFor[WalletEnsureInput, WalletResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WalletEnsureInput) (*mcp.CallToolResult, WalletResult, error) {
		wallet, err := svc.EnsureWallet(ctx, input.Address)
		if err != nil {
			return nil, WalletResult{}, toolError("wallet ensure", err)
		}
		return nil, walletResult(wallet), nil
	}
}

// WalletGetHandler returns a wallet portfolio.
func WalletGetHandler(svc *service.Service) mcp.ToolHandlerFor[WalletGetInput, PortfolioResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WalletGetInput) (*mcp.CallToolResult, PortfolioResult, error) {
		portfolio, err := svc.Wallet(ctx, input.Address)
		if err != nil {
			return nil, PortfolioResult{}, toolError("wallet get", err)
		}
		result := PortfolioResult{
			Wallet:     walletResult(portfolio.Wallet),
			Tokens:     make([]TokenResult, 0, len(portfolio.Tokens)),
			TokenValue: portfolio.TokenValue,
		}
		for _, token := range portfolio.Tokens {
			result.Tokens = append(result.Tokens, tokenResult(token))
		}
		return nil, result, nil
	}
}

// SlotSpinHandler draws and classifies three symbols.
func SlotSpinHandler(svc *service.Service) mcp.ToolHandlerFor[SlotSpinInput, CombinationResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ SlotSpinInput) (*mcp.CallToolResult, CombinationResult, error) {
		combination, err := svc.Spin(ctx)
		if err != nil {
			return nil, CombinationResult{}, toolError("slot spin", err)
		}
		return nil, combinationResult(combination), nil
	}
}

// SlotClassifyHandler classifies three caller-provided symbols.
func SlotClassifyHandler(svc *service.Service) mcp.ToolHandlerFor[SlotClassifyInput, CombinationResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input SlotClassifyInput) (*mcp.CallToolResult, CombinationResult, error) {
		symbols, err := symbolTriple(input.Symbols)
		if err != nil {
			return nil, CombinationResult{}, err
		}
		combination, err := svc.Classify(ctx, symbols)
		if err != nil {
			return nil, CombinationResult{}, toolError("slot classify", err)
		}
		return nil, combinationResult(combination), nil
	}
}

// WorldCreateHandler mints a world from a slot combination. When the input
// carries no pre-classified archetype the symbols are classified first.
func WorldCreateHandler(svc *service.Service) mcp.ToolHandlerFor[WorldCreateInput, WorldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WorldCreateInput) (*mcp.CallToolResult, WorldResult, error) {
		symbols, err := symbolTriple(input.Symbols)
		if err != nil {
			return nil, WorldResult{}, err
		}
		combination := archetype.Combination{
			Symbols:          symbols,
			ArchetypeID:      input.ArchetypeID,
			RarityMultiplier: input.RarityMultiplier,
			Name:             input.CombinationName,
		}
		if combination.ArchetypeID == "" {
			combination, err = svc.Classify(ctx, symbols)
			if err != nil {
				return nil, WorldResult{}, toolError("world create", err)
			}
		}
		world, err := svc.CreateWorld(ctx, service.CreateWorldInput{
			Owner:       input.Owner,
			Combination: combination,
		})
		if err != nil {
			return nil, WorldResult{}, toolError("world create", err)
		}
		return nil, worldResult(world), nil
	}
}

// WorldCreateFromQueryHandler mints a world from a free-form query.
func WorldCreateFromQueryHandler(svc *service.Service) mcp.ToolHandlerFor[WorldCreateFromQueryInput, WorldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WorldCreateFromQueryInput) (*mcp.CallToolResult, WorldResult, error) {
		world, err := svc.CreateWorldFromQuery(ctx, input.Query, input.Owner)
		if err != nil {
			return nil, WorldResult{}, toolError("world create from query", err)
		}
		return nil, worldResult(world), nil
	}
}

// WorldGetHandler returns one world.
func WorldGetHandler(svc *service.Service) mcp.ToolHandlerFor[WorldGetInput, WorldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WorldGetInput) (*mcp.CallToolResult, WorldResult, error) {
		world, err := svc.World(ctx, input.WorldID)
		if err != nil {
			return nil, WorldResult{}, toolError("world get", err)
		}
		return nil, worldResult(world), nil
	}
}

// WorldAddPageHandler generates a page for an owned world.
func WorldAddPageHandler(svc *service.Service) mcp.ToolHandlerFor[WorldAddPageInput, WorldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input WorldAddPageInput) (*mcp.CallToolResult, WorldResult, error) {
		world, err := svc.AddPage(ctx, input.WorldID, input.Query, input.Requester)
		if err != nil {
			return nil, WorldResult{}, toolError("world add page", err)
		}
		return nil, worldResult(world), nil
	}
}

// MarketListHandler lists an owned world for sale.
func MarketListHandler(svc *service.Service) mcp.ToolHandlerFor[MarketListInput, WorldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MarketListInput) (*mcp.CallToolResult, WorldResult, error) {
		world, err := svc.ListForSale(ctx, input.WorldID, input.Price, input.Owner)
		if err != nil {
			return nil, WorldResult{}, toolError("market list", err)
		}
		return nil, worldResult(world), nil
	}
}

// MarketUnlistHandler removes an owned world from sale.
func MarketUnlistHandler(svc *service.Service) mcp.ToolHandlerFor[MarketUnlistInput, WorldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MarketUnlistInput) (*mcp.CallToolResult, WorldResult, error) {
		world, err := svc.Unlist(ctx, input.WorldID, input.Owner)
		if err != nil {
			return nil, WorldResult{}, toolError("market unlist", err)
		}
		return nil, worldResult(world), nil
	}
}

// MarketPurchaseHandler buys a listed world.
func MarketPurchaseHandler(svc *service.Service) mcp.ToolHandlerFor[MarketPurchaseInput, WorldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MarketPurchaseInput) (*mcp.CallToolResult, WorldResult, error) {
		world, err := svc.Purchase(ctx, input.WorldID, input.Buyer)
		if err != nil {
			return nil, WorldResult{}, toolError("market purchase", err)
		}
		return nil, worldResult(world), nil
	}
}

// MarketListingsHandler returns all current listings.
func MarketListingsHandler(svc *service.Service) mcp.ToolHandlerFor[MarketListingsInput, WorldListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ MarketListingsInput) (*mcp.CallToolResult, WorldListResult, error) {
		worlds, err := svc.Listings(ctx)
		if err != nil {
			return nil, WorldListResult{}, toolError("market listings", err)
		}
		return nil, worldListResult(worlds), nil
	}
}

// CollaboratorAddHandler grants a role on an owned world.
func CollaboratorAddHandler(svc *service.Service) mcp.ToolHandlerFor[CollaboratorAddInput, WorldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CollaboratorAddInput) (*mcp.CallToolResult, WorldResult, error) {
		world, err := svc.AddCollaborator(ctx, input.WorldID, input.Owner, input.Wallet, input.Role)
		if err != nil {
			return nil, WorldResult{}, toolError("collaborator add", err)
		}
		return nil, worldResult(world), nil
	}
}

// CollaboratorRemoveHandler revokes a collaborator from an owned world.
func CollaboratorRemoveHandler(svc *service.Service) mcp.ToolHandlerFor[CollaboratorRemoveInput, WorldResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CollaboratorRemoveInput) (*mcp.CallToolResult, WorldResult, error) {
		world, err := svc.RemoveCollaborator(ctx, input.WorldID, input.Owner, input.Wallet)
		if err != nil {
			return nil, WorldResult{}, toolError("collaborator remove", err)
		}
		return nil, worldResult(world), nil
	}
}

// LeaderboardHandler returns the highest-valued worlds.
func LeaderboardHandler(svc *service.Service) mcp.ToolHandlerFor[LeaderboardInput, LeaderboardResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input LeaderboardInput) (*mcp.CallToolResult, LeaderboardResult, error) {
		entries, err := svc.Leaderboard(ctx, input.Limit)
		if err != nil {
			return nil, LeaderboardResult{}, toolError("leaderboard", err)
		}
		result := LeaderboardResult{Entries: make([]LeaderboardEntryResult, 0, len(entries))}
		for _, entry := range entries {
			result.Entries = append(result.Entries, LeaderboardEntryResult{
				Rank:  entry.Rank,
				World: worldResult(entry.World),
			})
		}
		return nil, result, nil
	}
}

// TransactionsHandler returns transaction log entries.
func TransactionsHandler(svc *service.Service) mcp.ToolHandlerFor[TransactionsInput, TransactionsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input TransactionsInput) (*mcp.CallToolResult, TransactionsResult, error) {
		var transactions []econdomain.Transaction
		var err error
		if input.WorldID != "" {
			transactions, err = svc.WorldTransactions(ctx, input.WorldID)
		} else {
			transactions, err = svc.Transactions(ctx, input.Limit)
		}
		if err != nil {
			return nil, TransactionsResult{}, toolError("transactions", err)
		}
		result := TransactionsResult{Transactions: make([]TransactionResult, 0, len(transactions))}
		for _, transaction := range transactions {
			result.Transactions = append(result.Transactions, transactionResult(transaction))
		}
		return nil, result, nil
	}
}

// EconomyExportHandler writes a compressed snapshot of every collection to a
// file.
func EconomyExportHandler(store storage.Store, now func() time.Time) mcp.ToolHandlerFor[EconomyExportInput, EconomyExportResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input EconomyExportInput) (*mcp.CallToolResult, EconomyExportResult, error) {
		if input.Path == "" {
			return nil, EconomyExportResult{}, fmt.Errorf("economy export: path is required")
		}
		f, err := os.Create(input.Path)
		if err != nil {
			return nil, EconomyExportResult{}, fmt.Errorf("economy export: %w", err)
		}
		doc, err := snapshot.Export(ctx, store, f, now())
		if err != nil {
			_ = f.Close()
			return nil, EconomyExportResult{}, fmt.Errorf("economy export: %w", err)
		}
		if err := f.Close(); err != nil {
			return nil, EconomyExportResult{}, fmt.Errorf("economy export: %w", err)
		}
		return nil, EconomyExportResult{
			Path:         input.Path,
			Wallets:      len(doc.Wallets),
			Worlds:       len(doc.Worlds),
			Tokens:       len(doc.Tokens),
			Transactions: len(doc.Transactions),
		}, nil
	}
}

// toolError surfaces the stable error code alongside the failure so MCP
// clients can branch on it without parsing free text.
func toolError(op string, err error) error {
	if code := apperrors.CodeOf(err); code != apperrors.CodeUnknown {
		return fmt.Errorf("%s failed (%s): %w", op, code, err)
	}
	return fmt.Errorf("%s failed: %w", op, err)
}

func symbolTriple(symbols []string) ([3]string, error) {
	if len(symbols) != 3 {
		return [3]string{}, fmt.Errorf("exactly three symbols are required, got %d", len(symbols))
	}
	return [3]string{symbols[0], symbols[1], symbols[2]}, nil
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func walletResult(wallet econdomain.Wallet) WalletResult {
	return WalletResult{
		Address:         wallet.Address,
		Balance:         wallet.Balance,
		InfinityBalance: wallet.InfinityBalance,
		CreatedAt:       formatTimestamp(wallet.CreatedAt),
	}
}

func tokenResult(token econdomain.Token) TokenResult {
	return TokenResult{
		ID:               token.ID,
		WorldID:          token.WorldID,
		Value:            token.Value,
		Title:            token.Metadata.Title,
		ToolCount:        token.Metadata.ToolCount,
		ArchetypeID:      token.Metadata.ArchetypeID,
		RarityMultiplier: token.Metadata.RarityMultiplier,
		AcquiredAt:       formatTimestamp(token.AcquiredAt),
	}
}

func combinationResult(combination archetype.Combination) CombinationResult {
	result := CombinationResult{
		Symbols:          combination.Symbols[:],
		ArchetypeID:      combination.ArchetypeID,
		RarityMultiplier: combination.RarityMultiplier,
		Name:             combination.Name,
	}
	if def, err := archetype.Lookup(combination.ArchetypeID); err == nil {
		result.ArchetypeName = def.Name
	}
	return result
}

func worldResult(world econdomain.World) WorldResult {
	result := WorldResult{
		ID:             world.ID,
		Title:          world.Title,
		Description:    world.Description,
		Query:          world.Query,
		URL:            world.URL,
		ArchetypeID:    world.ArchetypeID,
		Emoji:          world.Emoji,
		Owner:          world.OwnerWallet,
		Value:          world.Value,
		SuggestedPrice: econdomain.SuggestedListingPrice(world),
		Tools:          world.Tools,
		ForSale:        world.ForSale,
		SalePrice:      world.SalePrice,
		CreatedAt:      formatTimestamp(world.CreatedAt),
		UpdatedAt:      formatTimestamp(world.UpdatedAt),
	}
	if world.Slot != nil {
		result.RarityMultiplier = world.Slot.RarityMultiplier
		result.CombinationName = world.Slot.CombinationName
	}
	for _, page := range world.Pages {
		result.Pages = append(result.Pages, PageResult{
			ID:        page.ID,
			Title:     page.Title,
			Tools:     page.Tools,
			CreatedAt: formatTimestamp(page.CreatedAt),
		})
	}
	result.Collaborators = make([]CollaboratorResult, 0, len(world.Collaborators))
	for _, collaborator := range world.Collaborators {
		result.Collaborators = append(result.Collaborators, CollaboratorResult{
			Wallet:  collaborator.WalletAddress,
			Role:    string(collaborator.Role),
			AddedAt: formatTimestamp(collaborator.AddedAt),
			AddedBy: collaborator.AddedBy,
		})
	}
	return result
}

func worldListResult(worlds []econdomain.World) WorldListResult {
	result := WorldListResult{Worlds: make([]WorldResult, 0, len(worlds))}
	for _, world := range worlds {
		result.Worlds = append(result.Worlds, worldResult(world))
	}
	return result
}

func transactionResult(transaction econdomain.Transaction) TransactionResult {
	return TransactionResult{
		ID:        transaction.ID,
		Type:      string(transaction.Type),
		WorldID:   transaction.WorldID,
		From:      transaction.From,
		To:        transaction.To,
		Amount:    transaction.Amount,
		CreatedAt: formatTimestamp(transaction.CreatedAt),
	}
}
