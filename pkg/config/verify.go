package config

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/invopop/jsonschema"
)

// schemaNode is the subset of a json schema checked by VerifyAgainstSchema
type schemaNode struct {
	Properties map[string]schemaNode `json:"properties"`
	Required   []string              `json:"required"`
	Enum       []any                 `json:"enum"`
}

// GenerateSchema generates a JSON schema for the Config struct
func GenerateSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{DoNotReference: true}
	return r.Reflect(&Config{})
}

// VerifyAgainstSchema checks the config against enum and required constraints
// of the schema reflected from Config
func VerifyAgainstSchema(cfg *Config) error {
	schemaData, err := json.Marshal(GenerateSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	var schema schemaNode
	if err = json.Unmarshal(schemaData, &schema); err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	configData, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	var configMap map[string]any
	if err = json.Unmarshal(configData, &configMap); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	return verifyNode(schema, configMap, nil)
}

func verifyNode(node schemaNode, value any, path []string) error {
	name := strings.Join(path, ".")
	if len(node.Enum) > 0 && !slices.Contains(node.Enum, value) {
		return fmt.Errorf("%s: %v is not one of %v", name, value, node.Enum)
	}

	obj, ok := value.(map[string]any)
	if !ok {
		return nil
	}
	for _, req := range node.Required {
		if v, found := obj[req]; !found || v == "" {
			return fmt.Errorf("%s is required", strings.Join(append(path, req), "."))
		}
	}
	for key, child := range node.Properties {
		v, found := obj[key]
		if !found {
			continue
		}
		if err := verifyNode(child, v, append(slices.Clone(path), key)); err != nil {
			return err
		}
	}
	return nil
}
