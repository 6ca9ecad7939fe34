// Package domain defines the MCP tool surface of the economy engine: input
// and result schemas plus the handlers that call into the economy service.
package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// WalletEnsureInput requests an idempotent wallet lookup or creation.
type WalletEnsureInput struct {
	Address string `json:"address,omitempty" jsonschema:"wallet address; omit to allocate a new wallet"`
}

// WalletResult describes a wallet's balances.
type WalletResult struct {
	Address         string `json:"address" jsonschema:"wallet address"`
	Balance         int    `json:"balance" jsonschema:"accumulated world value"`
	InfinityBalance int    `json:"infinity_balance" jsonschema:"spendable marketplace currency"`
	CreatedAt       string `json:"created_at" jsonschema:"RFC3339 timestamp when the wallet was created"`
}

// WalletGetInput requests a wallet portfolio.
type WalletGetInput struct {
	Address string `json:"address" jsonschema:"wallet address"`
}

// TokenResult describes one held ownership token.
type TokenResult struct {
	ID               string  `json:"id" jsonschema:"token identifier"`
	WorldID          string  `json:"world_id" jsonschema:"world the token references"`
	Value            int     `json:"value" jsonschema:"token value"`
	Title            string  `json:"title" jsonschema:"world title at mint time"`
	ToolCount        int     `json:"tool_count" jsonschema:"world tool count at mint time"`
	ArchetypeID      string  `json:"archetype_id,omitempty" jsonschema:"world archetype, if slot-originated"`
	RarityMultiplier float64 `json:"rarity_multiplier,omitempty" jsonschema:"slot rarity multiplier, if slot-originated"`
	AcquiredAt       string  `json:"acquired_at" jsonschema:"RFC3339 timestamp when the token was acquired"`
}

// PortfolioResult describes a wallet with its token holdings.
type PortfolioResult struct {
	Wallet     WalletResult  `json:"wallet" jsonschema:"wallet balances"`
	Tokens     []TokenResult `json:"tokens" jsonschema:"held tokens"`
	TokenValue int           `json:"token_value" jsonschema:"sum of held token values"`
}

// SlotSpinInput requests a slot machine draw. No fields are required.
type SlotSpinInput struct{}

// SlotClassifyInput classifies three already-drawn symbols.
type SlotClassifyInput struct {
	Symbols []string `json:"symbols" jsonschema:"exactly three slot symbols"`
}

// CombinationResult describes a classified slot draw.
type CombinationResult struct {
	Symbols          []string `json:"symbols" jsonschema:"the three drawn symbols"`
	ArchetypeID      string   `json:"archetype_id" jsonschema:"resolved world archetype"`
	ArchetypeName    string   `json:"archetype_name" jsonschema:"archetype display name"`
	RarityMultiplier float64  `json:"rarity_multiplier" jsonschema:"rarity multiplier (3.0 triple, 1.8 paired, 1.0 mixed)"`
	Name             string   `json:"name" jsonschema:"combination display name"`
}

// WorldCreateInput mints a world from a slot combination.
type WorldCreateInput struct {
	Owner            string   `json:"owner" jsonschema:"owner wallet address"`
	Symbols          []string `json:"symbols" jsonschema:"the three drawn slot symbols"`
	ArchetypeID      string   `json:"archetype_id,omitempty" jsonschema:"pre-classified archetype; omit to classify from symbols"`
	RarityMultiplier float64  `json:"rarity_multiplier,omitempty" jsonschema:"pre-classified rarity multiplier"`
	CombinationName  string   `json:"combination_name,omitempty" jsonschema:"pre-classified combination name"`
}

// WorldCreateFromQueryInput mints a world from a free-form query.
type WorldCreateFromQueryInput struct {
	Owner string `json:"owner" jsonschema:"owner wallet address"`
	Query string `json:"query" jsonschema:"what the world should be about"`
}

// WorldGetInput requests one world.
type WorldGetInput struct {
	WorldID string `json:"world_id" jsonschema:"world identifier"`
}

// CollaboratorResult describes one collaborator entry.
type CollaboratorResult struct {
	Wallet  string `json:"wallet" jsonschema:"collaborator wallet address"`
	Role    string `json:"role" jsonschema:"collaborator role (owner, editor, viewer)"`
	AddedAt string `json:"added_at" jsonschema:"RFC3339 timestamp when added"`
	AddedBy string `json:"added_by,omitempty" jsonschema:"wallet that granted the role"`
}

// PageResult describes one world page.
type PageResult struct {
	ID        string   `json:"id" jsonschema:"page identifier"`
	Title     string   `json:"title" jsonschema:"page title"`
	Tools     []string `json:"tools,omitempty" jsonschema:"tool types on the page"`
	CreatedAt string   `json:"created_at" jsonschema:"RFC3339 timestamp when the page was added"`
}

// WorldResult describes a world.
type WorldResult struct {
	ID               string               `json:"id" jsonschema:"world identifier"`
	Title            string               `json:"title" jsonschema:"world title"`
	Description      string               `json:"description,omitempty" jsonschema:"world description"`
	Query            string               `json:"query,omitempty" jsonschema:"creation query, if query-originated"`
	URL              string               `json:"url" jsonschema:"public world address"`
	ArchetypeID      string               `json:"archetype_id,omitempty" jsonschema:"world archetype, if slot-originated"`
	Emoji            string               `json:"emoji,omitempty" jsonschema:"world emoji"`
	Owner            string               `json:"owner" jsonschema:"owner wallet address"`
	Value            int                  `json:"value" jsonschema:"current world value"`
	SuggestedPrice   int                  `json:"suggested_price" jsonschema:"tool-value listing price hint"`
	Tools            []string             `json:"tools,omitempty" jsonschema:"tool types bundled at creation"`
	Pages            []PageResult         `json:"pages,omitempty" jsonschema:"added pages"`
	Collaborators    []CollaboratorResult `json:"collaborators" jsonschema:"collaborator entries"`
	ForSale          bool                 `json:"for_sale" jsonschema:"whether the world is listed"`
	SalePrice        int                  `json:"sale_price,omitempty" jsonschema:"listing price when for sale"`
	RarityMultiplier float64              `json:"rarity_multiplier,omitempty" jsonschema:"slot rarity multiplier, if slot-originated"`
	CombinationName  string               `json:"combination_name,omitempty" jsonschema:"slot combination name, if slot-originated"`
	CreatedAt        string               `json:"created_at" jsonschema:"RFC3339 timestamp when created"`
	UpdatedAt        string               `json:"updated_at" jsonschema:"RFC3339 timestamp when last modified"`
}

// WorldAddPageInput adds a generated page to an owned world.
type WorldAddPageInput struct {
	WorldID   string `json:"world_id" jsonschema:"world identifier"`
	Query     string `json:"query" jsonschema:"what the page should be about"`
	Requester string `json:"requester" jsonschema:"requesting wallet address; must own the world"`
}

// MarketListInput lists an owned world for sale.
type MarketListInput struct {
	WorldID string `json:"world_id" jsonschema:"world identifier"`
	Price   int    `json:"price" jsonschema:"sale price in infinity currency; must be positive"`
	Owner   string `json:"owner" jsonschema:"owner wallet address"`
}

// MarketUnlistInput removes an owned world from sale.
type MarketUnlistInput struct {
	WorldID string `json:"world_id" jsonschema:"world identifier"`
	Owner   string `json:"owner" jsonschema:"owner wallet address"`
}

// MarketPurchaseInput buys a listed world.
type MarketPurchaseInput struct {
	WorldID string `json:"world_id" jsonschema:"world identifier"`
	Buyer   string `json:"buyer" jsonschema:"buying wallet address"`
}

// MarketListingsInput requests all current listings. No fields are required.
type MarketListingsInput struct{}

// WorldListResult wraps a set of worlds.
type WorldListResult struct {
	Worlds []WorldResult `json:"worlds" jsonschema:"matching worlds"`
}

// CollaboratorAddInput grants a role on an owned world.
type CollaboratorAddInput struct {
	WorldID string `json:"world_id" jsonschema:"world identifier"`
	Owner   string `json:"owner" jsonschema:"owner wallet address"`
	Wallet  string `json:"wallet" jsonschema:"wallet to grant the role to"`
	Role    string `json:"role" jsonschema:"role to grant (editor or viewer)"`
}

// CollaboratorRemoveInput revokes a collaborator from an owned world.
type CollaboratorRemoveInput struct {
	WorldID string `json:"world_id" jsonschema:"world identifier"`
	Owner   string `json:"owner" jsonschema:"owner wallet address"`
	Wallet  string `json:"wallet" jsonschema:"wallet to remove"`
}

// LeaderboardInput requests the top worlds by value.
type LeaderboardInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum entries to return (default 10)"`
}

// LeaderboardEntryResult is one ranked world.
type LeaderboardEntryResult struct {
	Rank  int         `json:"rank" jsonschema:"leaderboard position, 1 is highest"`
	World WorldResult `json:"world" jsonschema:"the ranked world"`
}

// LeaderboardResult wraps the ranked worlds.
type LeaderboardResult struct {
	Entries []LeaderboardEntryResult `json:"entries" jsonschema:"ranked worlds"`
}

// TransactionsInput requests transaction log entries.
type TransactionsInput struct {
	WorldID string `json:"world_id,omitempty" jsonschema:"restrict to one world's history"`
	Limit   int    `json:"limit,omitempty" jsonschema:"maximum entries to return (default 50)"`
}

// TransactionResult is one transaction log entry.
type TransactionResult struct {
	ID        string `json:"id" jsonschema:"transaction identifier"`
	Type      string `json:"type" jsonschema:"transaction type (mint, page, listing, delisting, purchase)"`
	WorldID   string `json:"world_id,omitempty" jsonschema:"world the transaction concerns"`
	From      string `json:"from,omitempty" jsonschema:"paying wallet, when any"`
	To        string `json:"to,omitempty" jsonschema:"receiving wallet, when any"`
	Amount    int    `json:"amount" jsonschema:"transaction amount"`
	CreatedAt string `json:"created_at" jsonschema:"RFC3339 timestamp"`
}

// TransactionsResult wraps transaction log entries.
type TransactionsResult struct {
	Transactions []TransactionResult `json:"transactions" jsonschema:"log entries"`
}

// EconomyExportInput writes a compressed snapshot of the whole economy.
type EconomyExportInput struct {
	Path string `json:"path" jsonschema:"file path to write the snapshot to"`
}

// EconomyExportResult reports the written snapshot.
type EconomyExportResult struct {
	Path         string `json:"path" jsonschema:"file path the snapshot was written to"`
	Wallets      int    `json:"wallets" jsonschema:"exported wallet count"`
	Worlds       int    `json:"worlds" jsonschema:"exported world count"`
	Tokens       int    `json:"tokens" jsonschema:"exported token count"`
	Transactions int    `json:"transactions" jsonschema:"exported transaction count"`
}

// WalletEnsureTool defines the MCP tool schema for wallet creation.
func WalletEnsureTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wallet_ensure",
		Description: "Returns a wallet, creating it with starting balances when absent",
	}
}

// WalletGetTool defines the MCP tool schema for wallet portfolios.
func WalletGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "wallet_get",
		Description: "Returns a wallet's balances and token holdings",
	}
}

// SlotSpinTool defines the MCP tool schema for slot draws.
func SlotSpinTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "slot_spin",
		Description: "Draws three slot symbols and classifies the combination",
	}
}

// SlotClassifyTool defines the MCP tool schema for classifying symbols.
func SlotClassifyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "slot_classify",
		Description: "Classifies three slot symbols into an archetype and rarity",
	}
}

// WorldCreateTool defines the MCP tool schema for slot world creation.
func WorldCreateTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "world_create",
		Description: "Generates and mints a world from a slot combination",
	}
}

// WorldCreateFromQueryTool defines the MCP tool schema for query worlds.
func WorldCreateFromQueryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "world_create_from_query",
		Description: "Generates and mints a world from a free-form query",
	}
}

// WorldGetTool defines the MCP tool schema for reading a world.
func WorldGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "world_get",
		Description: "Returns one world with pages, collaborators, and sale state",
	}
}

// WorldAddPageTool defines the MCP tool schema for page additions.
func WorldAddPageTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "world_add_page",
		Description: "Generates a page for an owned world and credits the value delta",
	}
}

// MarketListTool defines the MCP tool schema for listing a world.
func MarketListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "market_list",
		Description: "Lists an owned world for sale at a price",
	}
}

// MarketUnlistTool defines the MCP tool schema for delisting a world.
func MarketUnlistTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "market_unlist",
		Description: "Removes an owned world from sale",
	}
}

// MarketPurchaseTool defines the MCP tool schema for purchases.
func MarketPurchaseTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "market_purchase",
		Description: "Buys a listed world with infinity currency",
	}
}

// MarketListingsTool defines the MCP tool schema for browsing listings.
func MarketListingsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "market_listings",
		Description: "Returns all worlds currently for sale",
	}
}

// CollaboratorAddTool defines the MCP tool schema for granting roles.
func CollaboratorAddTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "collaborator_add",
		Description: "Grants an editor or viewer role on an owned world",
	}
}

// CollaboratorRemoveTool defines the MCP tool schema for revoking roles.
func CollaboratorRemoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "collaborator_remove",
		Description: "Removes a non-owner collaborator from an owned world",
	}
}

// LeaderboardTool defines the MCP tool schema for the leaderboard.
func LeaderboardTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "leaderboard",
		Description: "Returns the highest-valued worlds in rank order",
	}
}

// TransactionsTool defines the MCP tool schema for the transaction log.
func TransactionsTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "transactions",
		Description: "Returns transaction log entries, optionally for one world",
	}
}

// EconomyExportTool defines the MCP tool schema for snapshot export.
func EconomyExportTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "economy_export",
		Description: "Writes a compressed snapshot of the whole economy to a file",
	}
}
