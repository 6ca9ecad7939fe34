// Package generation defines the content generation collaborator the economy
// engine calls before minting worlds and pages, plus two implementations: an
// OpenAI-compatible HTTP generator and a deterministic offline one.
package generation

import (
	"context"
	"errors"

	"github.com/louisbranch/infinity.spark/internal/economy/archetype"
)

// ErrGenerationFailed wraps any collaborator failure so callers can treat
// generation errors uniformly and leave state untouched.
var ErrGenerationFailed = errors.New("content generation failed")

// Bundle is a generated world content bundle.
type Bundle struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Content     string   `json:"content"`
	Emoji       string   `json:"emoji,omitempty"`
	Theme       string   `json:"theme,omitempty"`
	Tools       []string `json:"tools"`
}

// PageBundle is a generated page for an existing world.
type PageBundle struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tools   []string `json:"tools"`
}

// Generator produces content bundles. Implementations must not mutate any
// engine state; a failed call leaves the economy exactly as it was.
type Generator interface {
	// GenerateWorldContent produces a bundle for a slot-originated world.
	GenerateWorldContent(ctx context.Context, def archetype.Definition, owner string, combination archetype.Combination) (Bundle, error)
	// GenerateWebsiteContent produces a bundle for a free-form query.
	GenerateWebsiteContent(ctx context.Context, query string, owner string) (Bundle, error)
	// GeneratePageContent produces one additional page for a world.
	GeneratePageContent(ctx context.Context, worldTitle string, query string, author string) (PageBundle, error)
}
