package archetype

import (
	"errors"
	"fmt"
	"math/rand"
)

// Rarity multipliers by combination tier.
const (
	RarityTriple = 3.0
	RarityPaired = 1.8
	RarityMixed  = 1.0
)

// Symbols is the fixed reel of slot machine symbols.
var Symbols = []string{
	"🎰", "🍄", "⚙️", "📀", "👑", "🧲", "🧠", "🎬",
	"🌌", "🕹️", "💭", "🧵", "🎺", "☮️", "📼", "🚀",
}

// symbolArchetypes maps slot symbols onto archetype ids. Symbols outside the
// table resolve to the research-library fallback on purpose: the slot machine
// must always produce a world, unlike catalog lookups by id.
var symbolArchetypes = map[string]string{
	"🎰": "slot-forge",
	"🍄": "physics-world",
	"⚙️": "script-genome-lab",
	"📀": "neural-cart-playground",
	"👑": "world-stitcher",
	"🧲": "intent-magnet",
	"🧠": "logic-gym",
	"🎬": "game-film-studio",
	"🌌": "quantum-playground",
	"🕹️": "emulator-dock",
	"💭": "dreamscape-architect",
	"🧵": "world-stitcher",
	"🎺": "time-travel-1920s",
	"☮️": "time-travel-1960s",
	"📼": "time-travel-1980s",
	"🚀": "time-travel-2050s",
}

const fallbackArchetypeID = "research-library"

var (
	// ErrInvalidSymbols indicates a draw with missing symbols.
	ErrInvalidSymbols = errors.New("three non-empty symbols are required")
	// ErrMissingRand indicates classification without a randomness source.
	ErrMissingRand = errors.New("randomness source is required")
)

// Combination is the classification of three drawn symbols.
type Combination struct {
	Symbols          [3]string
	ArchetypeID      string
	RarityMultiplier float64
	Name             string
}

// Classify maps three drawn symbols to an archetype and rarity tier.
//
// Matching draws are deterministic. The all-distinct case picks the primary
// symbol uniformly from the three inputs using rng, which callers seed so the
// draw stays replayable.
func Classify(symbols [3]string, rng *rand.Rand) (Combination, error) {
	for _, symbol := range symbols {
		if symbol == "" {
			return Combination{}, ErrInvalidSymbols
		}
	}
	if rng == nil {
		return Combination{}, ErrMissingRand
	}

	if symbols[0] == symbols[1] && symbols[1] == symbols[2] {
		def := archetypeForSymbol(symbols[0])
		return Combination{
			Symbols:          symbols,
			ArchetypeID:      def.ID,
			RarityMultiplier: RarityTriple,
			Name:             fmt.Sprintf("Triple %s - Pure %s", symbols[0], def.Name),
		}, nil
	}

	if symbols[0] == symbols[1] || symbols[1] == symbols[2] || symbols[0] == symbols[2] {
		// Primary is the symbol that appears twice, wherever the pair sits.
		primary := symbols[1]
		if symbols[0] == symbols[1] || symbols[0] == symbols[2] {
			primary = symbols[0]
		}
		def := archetypeForSymbol(primary)
		return Combination{
			Symbols:          symbols,
			ArchetypeID:      def.ID,
			RarityMultiplier: RarityPaired,
			Name:             fmt.Sprintf("Paired %s - Enhanced %s", primary, def.Name),
		}, nil
	}

	primary := symbols[rng.Intn(3)]
	def := archetypeForSymbol(primary)
	return Combination{
		Symbols:          symbols,
		ArchetypeID:      def.ID,
		RarityMultiplier: RarityMixed,
		Name:             fmt.Sprintf("Mixed Combination - %s Hybrid", def.Name),
	}, nil
}

// Spin draws three symbols uniformly from the reel and classifies them.
func Spin(rng *rand.Rand) (Combination, error) {
	if rng == nil {
		return Combination{}, ErrMissingRand
	}
	var symbols [3]string
	for i := range symbols {
		symbols[i] = Symbols[rng.Intn(len(Symbols))]
	}
	return Classify(symbols, rng)
}

func archetypeForSymbol(symbol string) Definition {
	archetypeID, ok := symbolArchetypes[symbol]
	if !ok {
		archetypeID = fallbackArchetypeID
	}
	def, err := Lookup(archetypeID)
	if err != nil {
		// The symbol table and catalog ship together; a mismatch is a
		// packaging bug, not a runtime condition.
		panic(err)
	}
	return def
}
