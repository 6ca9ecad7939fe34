package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/infinity.spark/internal/economy/archetype"
)

// StaticGenerator produces deterministic offline bundles. It backs the seed
// command and tests, and serves as the fallback when no generation endpoint
// is configured. Every bundle carries the content-hub tool so fallback worlds
// still render something useful.
type StaticGenerator struct{}

var _ Generator = (*StaticGenerator)(nil)

// NewStaticGenerator returns the offline generator.
func NewStaticGenerator() *StaticGenerator {
	return &StaticGenerator{}
}

// GenerateWorldContent derives a bundle from the archetype definition alone.
func (g *StaticGenerator) GenerateWorldContent(_ context.Context, def archetype.Definition, _ string, combination archetype.Combination) (Bundle, error) {
	tools := append([]string{"content-hub"}, def.Tools...)
	return Bundle{
		Title:       combination.Name,
		Description: def.Description,
		Content: fmt.Sprintf(
			"<section><h1>%s %s</h1><p>%s</p><p>%s</p></section>",
			def.Emoji, def.Name, def.Description, def.EducationalGoal,
		),
		Emoji: def.Emoji,
		Theme: "aurora",
		Tools: tools,
	}, nil
}

// GenerateWebsiteContent derives a bundle from the query text alone.
func (g *StaticGenerator) GenerateWebsiteContent(_ context.Context, query string, _ string) (Bundle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Bundle{}, fmt.Errorf("%w: query is required", ErrGenerationFailed)
	}
	return Bundle{
		Title:       titleFromQuery(query),
		Description: fmt.Sprintf("A world generated for %q.", query),
		Content:     fmt.Sprintf("<section><h1>%s</h1><p>Generated for the request: %s.</p></section>", titleFromQuery(query), query),
		Emoji:       "✨",
		Theme:       "aurora",
		Tools:       []string{"content-hub"},
	}, nil
}

// GeneratePageContent derives a page from the query text alone.
func (g *StaticGenerator) GeneratePageContent(_ context.Context, worldTitle string, query string, _ string) (PageBundle, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return PageBundle{}, fmt.Errorf("%w: page query is required", ErrGenerationFailed)
	}
	return PageBundle{
		Title:   titleFromQuery(query),
		Content: fmt.Sprintf("<section><h2>%s</h2><p>A new page of %s, generated for: %s.</p></section>", titleFromQuery(query), worldTitle, query),
		Tools:   []string{"content-hub"},
	}, nil
}

// titleFromQuery upcases the first rune of every word of a short query.
func titleFromQuery(query string) string {
	words := strings.Fields(query)
	if len(words) > 6 {
		words = words[:6]
	}
	for i, word := range words {
		runes := []rune(word)
		runes[0] = []rune(strings.ToUpper(string(runes[0])))[0]
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
