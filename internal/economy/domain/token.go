package domain

import "time"

// TokenMetadata is a denormalized snapshot of the world at mint or update
// time, kept with the token so portfolios render without loading worlds.
type TokenMetadata struct {
	Title            string
	Description      string
	Query            string
	ToolCount        int
	ArchetypeID      string
	RarityMultiplier float64
}

// Token is an ownership claim on a world held inside a wallet. A wallet may
// hold several tokens for the same world when it reacquires one it sold.
type Token struct {
	ID            string
	WalletAddress string
	WorldID       string
	Value         int
	Metadata      TokenMetadata
	AcquiredAt    time.Time
}

// MintToken returns a token for a freshly created or purchased world.
func MintToken(id string, world World, walletAddress string, at time.Time) Token {
	meta := TokenMetadata{
		Title:       world.Title,
		Description: world.Description,
		Query:       world.Query,
		ToolCount:   len(world.Tools),
		ArchetypeID: world.ArchetypeID,
	}
	if world.Slot != nil {
		meta.RarityMultiplier = world.Slot.RarityMultiplier
	}
	return Token{
		ID:            id,
		WalletAddress: walletAddress,
		WorldID:       world.ID,
		Value:         world.Value,
		Metadata:      meta,
		AcquiredAt:    at,
	}
}
