package generation

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed bundle_schema.json
var bundleSchemaJSON string

var bundleSchema *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("bundle_schema.json", strings.NewReader(bundleSchemaJSON)); err != nil {
		panic(fmt.Sprintf("bundle schema is invalid: %v", err))
	}
	bundleSchema = compiler.MustCompile("bundle_schema.json")
}

// validateBundleJSON checks raw generator output against the bundle schema
// before any of it is trusted. Tool types outside the known vocabulary are
// rejected here rather than surfacing later as mispriced worlds.
func validateBundleJSON(raw []byte) error {
	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return fmt.Errorf("parse bundle json: %w", err)
	}
	if err := bundleSchema.Validate(value); err != nil {
		return fmt.Errorf("bundle schema: %w", err)
	}
	return nil
}
