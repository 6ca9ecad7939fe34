// Package domain holds the economy engine's core types and pure rules:
// worlds, wallets, tokens, transactions, collaborators, and valuation.
package domain

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrWorldIDRequired indicates a world operation without an id.
	ErrWorldIDRequired = errors.New("world id is required")
	// ErrWorldTitleRequired indicates a world without a title.
	ErrWorldTitleRequired = errors.New("world title is required")
	// ErrOwnerRequired indicates a world without an owner wallet.
	ErrOwnerRequired = errors.New("owner wallet is required")
	// ErrNotOwner indicates a mutation attempted by a non-owner wallet.
	ErrNotOwner = errors.New("requester does not own the world")
	// ErrNotListed indicates a purchase against a world that is not for sale.
	ErrNotListed = errors.New("world is not listed for sale")
	// ErrInvalidPrice indicates a listing with a non-positive price.
	ErrInvalidPrice = errors.New("sale price must be positive")
	// ErrPageQueryRequired indicates a page request without a query.
	ErrPageQueryRequired = errors.New("page query is required")
)

// SlotProvenance records the slot machine draw a world originated from.
// Worlds created directly from a query carry no provenance.
type SlotProvenance struct {
	Symbols          [3]string
	RarityMultiplier float64
	CombinationName  string
}

// Page is one generated content page inside a world.
type Page struct {
	ID        string
	Title     string
	Content   string
	Tools     []string
	CreatedAt time.Time
}

// World is a generated content bundle with an owner, a value, and a sale
// state. Pages and collaborators are embedded; the world is the aggregate
// root for both.
type World struct {
	ID            string
	Title         string
	Description   string
	Query         string
	Content       string
	URL           string
	ArchetypeID   string
	Emoji         string
	Theme         string
	OwnerWallet   string
	Value         int
	Tools         []string
	Pages         []Page
	Collaborators []Collaborator
	ForSale       bool
	SalePrice     int
	Slot          *SlotProvenance
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewWorldInput carries the caller-supplied fields for creating a world.
type NewWorldInput struct {
	Title       string
	Description string
	Query       string
	Content     string
	ArchetypeID string
	Emoji       string
	Theme       string
	OwnerWallet string
	Tools       []string
	Slot        *SlotProvenance
}

// NormalizeNewWorldInput trims and validates world creation input.
func NormalizeNewWorldInput(input NewWorldInput) (NewWorldInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.Query = strings.TrimSpace(input.Query)
	input.ArchetypeID = strings.TrimSpace(input.ArchetypeID)
	input.OwnerWallet = strings.TrimSpace(input.OwnerWallet)
	if input.Title == "" {
		return NewWorldInput{}, ErrWorldTitleRequired
	}
	if input.OwnerWallet == "" {
		return NewWorldInput{}, ErrOwnerRequired
	}
	return input, nil
}

// WorldURL returns the public address minted for a world id.
func WorldURL(worldID string) string {
	return "https://infinity.spark/" + worldID
}

// ArchetypeOriginated reports whether the world's value includes an
// archetype component. Query-created worlds have no archetype.
func (w World) ArchetypeOriginated() bool {
	return w.ArchetypeID != "" && w.Slot != nil
}

// IsOwnedBy reports whether the wallet address owns the world.
func (w World) IsOwnedBy(walletAddress string) bool {
	return walletAddress != "" && w.OwnerWallet == walletAddress
}
