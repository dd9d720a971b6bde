package pipeline

import (
	"fmt"
	"strings"

	goyaml "github.com/goccy/go-yaml"
	"github.com/xeipuuv/gojsonschema"
)

// definitionSchema is the JSON Schema every pipeline document must satisfy
// before it is unmarshaled. Structural errors are caught here with precise
// paths; semantic rules (expression syntax, source parameter domains) are
// enforced by Definition.Validate and the loader.
const definitionSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["name", "source", "terminal"],
  "additionalProperties": false,
  "properties": {
    "name": {"type": "string", "minLength": 1},
    "description": {"type": "string"},
    "version": {"type": "string"},
    "source": {
      "type": "object",
      "required": ["type"],
      "additionalProperties": false,
      "properties": {
        "type": {"enum": ["naturals", "range", "list", "fibonacci", "primes", "json"]},
        "start": {"type": "number"},
        "from": {"type": "number"},
        "to": {"type": "number"},
        "values": {"type": "array", "items": {"type": "number"}},
        "file": {"type": "string"},
        "path": {"type": "string"}
      }
    },
    "ops": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["type"],
        "additionalProperties": false,
        "properties": {
          "type": {"enum": ["map", "filter", "take", "drop", "take-while", "drop-while"]},
          "expr": {"type": "string"},
          "n": {"type": "integer"}
        }
      }
    },
    "terminal": {
      "type": "object",
      "required": ["type"],
      "additionalProperties": false,
      "properties": {
        "type": {"enum": ["collect", "head", "length", "sum", "product", "reduce", "for-each"]},
        "expr": {"type": "string"}
      }
    }
  }
}`

// ValidateSchema checks a raw YAML pipeline document against the pipeline
// JSON Schema.
func ValidateSchema(yamlData []byte) error {
	var doc map[string]interface{}
	if err := goyaml.Unmarshal(yamlData, &doc); err != nil {
		return fmt.Errorf("parse YAML: %w", err)
	}

	schemaLoader := gojsonschema.NewStringLoader(definitionSchema)
	docLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return fmt.Errorf("invalid pipeline definition: %s", strings.Join(msgs, "; "))
	}

	return nil
}
