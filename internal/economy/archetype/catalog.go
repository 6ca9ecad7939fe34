// Package archetype holds the static world archetype catalog and the slot
// machine classifier that maps drawn symbols onto it.
package archetype

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed archetypes.yaml
var catalogYAML []byte

// ErrUnknownArchetype indicates a lookup for an unregistered archetype id.
var ErrUnknownArchetype = errors.New("unknown archetype")

// Definition describes one world archetype.
type Definition struct {
	ID              string   `yaml:"id"`
	Name            string   `yaml:"name"`
	Emoji           string   `yaml:"emoji"`
	Description     string   `yaml:"description"`
	EducationalGoal string   `yaml:"educational_goal"`
	BaseValue       int      `yaml:"base_value"`
	Tools           []string `yaml:"tools"`
}

var (
	ordered []Definition
	byID    map[string]Definition
)

func init() {
	var catalog struct {
		Archetypes []Definition `yaml:"archetypes"`
	}
	if err := yaml.Unmarshal(catalogYAML, &catalog); err != nil {
		panic(fmt.Sprintf("archetype catalog is invalid: %v", err))
	}
	if len(catalog.Archetypes) == 0 {
		panic("archetype catalog is empty")
	}

	ordered = catalog.Archetypes
	byID = make(map[string]Definition, len(ordered))
	for _, def := range ordered {
		if def.ID == "" || def.Name == "" || def.BaseValue <= 0 {
			panic(fmt.Sprintf("archetype catalog entry %q is incomplete", def.ID))
		}
		byID[def.ID] = def
	}
}

// Lookup returns the archetype definition for an id.
//
// Lookup never falls back: callers that want the symbol-mapping fallback must
// go through the classifier instead.
func Lookup(id string) (Definition, error) {
	def, ok := byID[id]
	if !ok {
		return Definition{}, fmt.Errorf("%w: %q", ErrUnknownArchetype, id)
	}
	return def, nil
}

// All returns every archetype definition in catalog order.
func All() []Definition {
	out := make([]Definition, len(ordered))
	copy(out, ordered)
	return out
}
