package domain

import "github.com/louisbranch/infinity.spark/internal/economy/archetype"

// Valuation constants. Every world starts at the creation base; each page
// adds a flat amount plus an increment per tool on that page. Tools bundled
// at creation are part of the base and add nothing on their own.
const (
	WorldBaseValue    = 1000
	PageBaseValue     = 100
	PageToolIncrement = 100
)

// defaultToolValue prices tool types missing from the table.
const defaultToolValue = 300

// toolValues suggests a market price per tool type. It feeds listing price
// hints only and never enters ComputeValue.
var toolValues = map[string]int{
	"video-player":       500,
	"chart":              400,
	"gallery":            300,
	"timeline":           350,
	"map":                450,
	"dashboard":          600,
	"store":              700,
	"calculator":         300,
	"text-editor":        400,
	"calendar":           350,
	"feed":               400,
	"chat":               500,
	"form":               300,
	"table":              400,
	"audio-player":       450,
	"code-editor":        500,
	"kanban":             500,
	"search":             400,
	"analytics":          550,
	"content-hub":        250,
	"time-travel-lab":    800,
	"emotion-visualizer": 700,
	"world-trading":      900,
}

// ComputeValue derives a world's value from its provenance and contents.
//
// The archetype component applies only to slot-originated worlds and scales
// the archetype's base value by the drawn rarity. Creation validates the
// archetype id, so a failed lookup here contributes nothing rather than
// failing the whole valuation.
func ComputeValue(w World) int {
	value := WorldBaseValue
	if w.ArchetypeOriginated() {
		if def, err := archetype.Lookup(w.ArchetypeID); err == nil {
			value += int(float64(def.BaseValue) * w.Slot.RarityMultiplier)
		}
	}
	for _, page := range w.Pages {
		value += PageValue(page)
	}
	return value
}

// PageValue is the value one page contributes to its world.
func PageValue(p Page) int {
	return PageBaseValue + PageToolIncrement*len(p.Tools)
}

// ToolValue returns the suggested market value for a tool type.
func ToolValue(toolType string) int {
	if v, ok := toolValues[toolType]; ok {
		return v
	}
	return defaultToolValue
}

// SuggestedListingPrice sums the tool values of a world's tools, with a
// floor so empty worlds are still listable.
func SuggestedListingPrice(w World) int {
	total := 0
	for _, tool := range w.Tools {
		total += ToolValue(tool)
	}
	for _, page := range w.Pages {
		for _, tool := range page.Tools {
			total += ToolValue(tool)
		}
	}
	if total < 100 {
		return 100
	}
	return total
}
