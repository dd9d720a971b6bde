package pipeline

import (
	"bytes"
	"fmt"
	"io"
	"os"

	goyaml "github.com/goccy/go-yaml"
)

// Parser handles parsing YAML pipeline definitions. Documents are validated
// against the pipeline JSON Schema before unmarshaling, then semantically
// validated. A Parser holds no state and may be shared.
type Parser struct{}

// NewParser creates a new YAML pipeline parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads and parses a pipeline definition from a reader.
func (p *Parser) Parse(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	if err := ValidateSchema(data); err != nil {
		return nil, err
	}

	var def Definition
	if err := goyaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline: %w", err)
	}

	return &def, nil
}

// ParseFile reads and parses a pipeline definition from a file.
func (p *Parser) ParseFile(filename string) (*Definition, error) {
	// #nosec G304 - pipeline files are user-provided by design
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return p.Parse(file)
}

// ParseString parses a pipeline definition from a string.
func (p *Parser) ParseString(s string) (*Definition, error) {
	return p.Parse(bytes.NewReader([]byte(s)))
}
