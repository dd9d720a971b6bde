package pipeline_test

import (
	"strings"
	"testing"

	"github.com/agentstation/lazyseq/pipeline"
)

func float64Ptr(v float64) *float64 { return &v }

func TestDefinitionValidate(t *testing.T) {
	tests := []struct {
		name    string
		def     pipeline.Definition
		wantErr string
	}{
		{
			name: "valid minimal",
			def: pipeline.Definition{
				Name:     "squares",
				Source:   pipeline.Source{Type: pipeline.SourceNaturals},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
		},
		{
			name: "missing name",
			def: pipeline.Definition{
				Source:   pipeline.Source{Type: pipeline.SourceNaturals},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
			wantErr: "name is required",
		},
		{
			name: "missing source type",
			def: pipeline.Definition{
				Name:     "p",
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
			wantErr: "source: type is required",
		},
		{
			name: "unknown source type",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: "bogus"},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
			wantErr: `unknown source type "bogus"`,
		},
		{
			name: "negative naturals start",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: pipeline.SourceNaturals, Start: float64Ptr(-1)},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
			wantErr: "start must not be negative",
		},
		{
			name: "inverted range",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: pipeline.SourceRange, From: 10, To: 1},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
			wantErr: "must not be less than",
		},
		{
			name: "json source requires file",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: pipeline.SourceJSON, Path: "$.values[*]"},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
			wantErr: "file is required",
		},
		{
			name: "json source requires path",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: pipeline.SourceJSON, File: "data.json"},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
			wantErr: "path is required",
		},
		{
			name: "map op requires expr",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: pipeline.SourceNaturals},
				Ops:      []pipeline.Op{{Type: pipeline.OpMap}},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
			wantErr: "op 0: map requires expr",
		},
		{
			name: "take op without n is legal",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: pipeline.SourceNaturals},
				Ops:      []pipeline.Op{{Type: pipeline.OpTake}},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
		},
		{
			name: "unknown op type",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: pipeline.SourceNaturals},
				Ops:      []pipeline.Op{{Type: "flatten"}},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalCollect},
			},
			wantErr: `unknown op type "flatten"`,
		},
		{
			name: "missing terminal type",
			def: pipeline.Definition{
				Name:   "p",
				Source: pipeline.Source{Type: pipeline.SourceNaturals},
			},
			wantErr: "terminal: type is required",
		},
		{
			name: "reduce terminal requires expr",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: pipeline.SourceNaturals},
				Terminal: pipeline.Terminal{Type: pipeline.TerminalReduce},
			},
			wantErr: "reduce requires expr",
		},
		{
			name: "unknown terminal type",
			def: pipeline.Definition{
				Name:     "p",
				Source:   pipeline.Source{Type: pipeline.SourceNaturals},
				Terminal: pipeline.Terminal{Type: "print"},
			},
			wantErr: `unknown terminal type "print"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.def.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}
