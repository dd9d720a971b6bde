// Package pipeline provides YAML-defined sequence pipelines for lazyseq.
// A pipeline names a source sequence, an ordered list of lazy operations,
// and the single terminal operation that forces evaluation. Map and filter
// steps carry small Lua expressions evaluated per element.
package pipeline

import "fmt"

// Source, op, and terminal types accepted in definitions.
const (
	SourceNaturals  = "naturals"
	SourceRange     = "range"
	SourceList      = "list"
	SourceFibonacci = "fibonacci"
	SourcePrimes    = "primes"
	SourceJSON      = "json"

	OpMap       = "map"
	OpFilter    = "filter"
	OpTake      = "take"
	OpDrop      = "drop"
	OpTakeWhile = "take-while"
	OpDropWhile = "drop-while"

	TerminalCollect = "collect"
	TerminalHead    = "head"
	TerminalLength  = "length"
	TerminalSum     = "sum"
	TerminalProduct = "product"
	TerminalReduce  = "reduce"
	TerminalForEach = "for-each"
)

// Definition represents a complete pipeline defined in YAML.
type Definition struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description,omitempty"`
	Version     string   `yaml:"version,omitempty"`
	Source      Source   `yaml:"source"`
	Ops         []Op     `yaml:"ops,omitempty"`
	Terminal    Terminal `yaml:"terminal"`
}

// Source describes where a pipeline's elements come from.
type Source struct {
	Type string `yaml:"type"`

	// naturals
	Start *float64 `yaml:"start,omitempty"`

	// range (inclusive bounds, step 1)
	From float64 `yaml:"from,omitempty"`
	To   float64 `yaml:"to,omitempty"`

	// list
	Values []float64 `yaml:"values,omitempty"`

	// json: a document file and a JSONPath expression selecting numeric
	// elements from it
	File string `yaml:"file,omitempty"`
	Path string `yaml:"path,omitempty"`
}

// Op describes one lazy operation applied to the source.
type Op struct {
	Type string `yaml:"type"`
	Expr string `yaml:"expr,omitempty"`
	N    int    `yaml:"n,omitempty"`
}

// Terminal describes the eager operation that forces the pipeline.
type Terminal struct {
	Type string `yaml:"type"`
	Expr string `yaml:"expr,omitempty"`
}

// Validate checks if the pipeline definition is valid.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("pipeline name is required")
	}
	if err := d.Source.Validate(); err != nil {
		return fmt.Errorf("source: %w", err)
	}
	for i := range d.Ops {
		if err := d.Ops[i].Validate(); err != nil {
			return fmt.Errorf("op %d: %w", i, err)
		}
	}
	if err := d.Terminal.Validate(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}

// Validate checks if the source definition is valid.
func (s *Source) Validate() error {
	switch s.Type {
	case SourceNaturals:
		if s.Start != nil && *s.Start < 0 {
			return fmt.Errorf("start must not be negative")
		}
	case SourceRange:
		if s.To < s.From {
			return fmt.Errorf("to (%v) must not be less than from (%v)", s.To, s.From)
		}
	case SourceList:
		// An empty list is legal; downstream terminals decide whether
		// emptiness is an error.
	case SourceFibonacci, SourcePrimes:
		// No parameters.
	case SourceJSON:
		if s.File == "" {
			return fmt.Errorf("file is required")
		}
		if s.Path == "" {
			return fmt.Errorf("path is required")
		}
	case "":
		return fmt.Errorf("type is required")
	default:
		return fmt.Errorf("unknown source type %q", s.Type)
	}
	return nil
}

// Validate checks if the op definition is valid.
func (o *Op) Validate() error {
	switch o.Type {
	case OpMap, OpFilter, OpTakeWhile, OpDropWhile:
		if o.Expr == "" {
			return fmt.Errorf("%s requires expr", o.Type)
		}
	case OpTake, OpDrop:
		// N is not validated: zero and negative values are defined
		// behavior (empty take, no-op drop).
	case "":
		return fmt.Errorf("type is required")
	default:
		return fmt.Errorf("unknown op type %q", o.Type)
	}
	return nil
}

// Validate checks if the terminal definition is valid.
func (t *Terminal) Validate() error {
	switch t.Type {
	case TerminalCollect, TerminalHead, TerminalLength, TerminalSum,
		TerminalProduct, TerminalForEach:
	case TerminalReduce:
		if t.Expr == "" {
			return fmt.Errorf("reduce requires expr")
		}
	case "":
		return fmt.Errorf("type is required")
	default:
		return fmt.Errorf("unknown terminal type %q", t.Type)
	}
	return nil
}
