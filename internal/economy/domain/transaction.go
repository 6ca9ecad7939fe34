package domain

import "time"

// TransactionType discriminates entries in the append-only transaction log.
type TransactionType string

// Transaction types.
const (
	TransactionMint      TransactionType = "mint"
	TransactionPage      TransactionType = "page"
	TransactionListing   TransactionType = "listing"
	TransactionDelisting TransactionType = "delisting"
	TransactionPurchase  TransactionType = "purchase"
)

// Transaction is one immutable entry in the economy's audit log. From and To
// are wallet addresses; either may be empty when the engine itself is the
// counterparty, such as minting or delisting.
type Transaction struct {
	ID        string
	Type      TransactionType
	WorldID   string
	From      string
	To        string
	Amount    int
	CreatedAt time.Time
}
