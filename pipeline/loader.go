package pipeline

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/agentstation/lazyseq"
	"github.com/agentstation/lazyseq/luaexpr"
)

// Loader builds executable pipelines from definitions. Each Loader owns one
// Lua evaluator, so a Loader and the pipelines it builds must stay on a
// single goroutine; use a fresh Loader per concurrent pipeline.
type Loader struct {
	eval *luaexpr.Evaluator
	out  io.Writer
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithOutput sets the destination for for-each terminals. Defaults to
// os.Stdout.
func WithOutput(w io.Writer) LoaderOption {
	return func(l *Loader) {
		l.out = w
	}
}

// NewLoader creates a pipeline loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		eval: luaexpr.New(),
		out:  os.Stdout,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Pipeline is an executable pipeline: a fully composed lazy sequence plus
// the terminal operation that will force it. Nothing is evaluated until
// Execute is called.
type Pipeline struct {
	def    *Definition
	seq    *lazyseq.Sequence[float64]
	reduce func(n, i, acc float64) (float64, error)
	out    io.Writer
	state  *runState
}

// Outcome is the result of executing a pipeline.
type Outcome struct {
	Pipeline string `json:"pipeline" yaml:"pipeline"`
	Terminal string `json:"terminal" yaml:"terminal"`
	Result   any    `json:"result" yaml:"result"`
}

// runState carries the first expression-evaluation failure out of callbacks
// that have no error return of their own.
type runState struct {
	err error
}

func (r *runState) set(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Load builds an executable pipeline from a validated definition. All Lua
// expressions are compiled here, so syntax errors surface at load time, not
// mid-traversal.
func (l *Loader) Load(def *Definition) (*Pipeline, error) {
	if def == nil {
		return nil, fmt.Errorf("pipeline definition is nil")
	}
	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline: %w", err)
	}

	state := &runState{}

	seq, err := l.buildSource(&def.Source)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", def.Source.Type, err)
	}

	for i := range def.Ops {
		seq, err = l.applyOp(seq, &def.Ops[i], state)
		if err != nil {
			return nil, fmt.Errorf("op %d (%s): %w", i, def.Ops[i].Type, err)
		}
	}

	p := &Pipeline{def: def, seq: seq, out: l.out, state: state}

	if def.Terminal.Type == TerminalReduce {
		fn, err := l.eval.Number(def.Terminal.Expr)
		if err != nil {
			return nil, fmt.Errorf("terminal reduce: %w", err)
		}
		p.reduce = fn
	}

	return p, nil
}

func (l *Loader) buildSource(src *Source) (*lazyseq.Sequence[float64], error) {
	switch src.Type {
	case SourceNaturals:
		start := 0.0
		if src.Start != nil {
			start = *src.Start
		}
		return lazyseq.FromProducer(func() lazyseq.Cursor[float64] {
			n := start
			return lazyseq.CursorFunc[float64](func() (float64, bool) {
				v := n
				n++
				return v, true
			})
		}, lazyseq.WithUnbounded())

	case SourceRange:
		from, to := src.From, src.To
		return lazyseq.FromProducer(func() lazyseq.Cursor[float64] {
			n := from
			return lazyseq.CursorFunc[float64](func() (float64, bool) {
				if n > to {
					return 0, false
				}
				v := n
				n++
				return v, true
			})
		})

	case SourceList:
		return lazyseq.FromSlice(src.Values), nil

	case SourceFibonacci:
		return fibonacci(1, 1)

	case SourcePrimes:
		candidates, err := lazyseq.FromProducer(func() lazyseq.Cursor[float64] {
			n := 2.0
			return lazyseq.CursorFunc[float64](func() (float64, bool) {
				v := n
				n++
				return v, true
			})
		}, lazyseq.WithUnbounded())
		if err != nil {
			return nil, err
		}
		return sieve(candidates)

	case SourceJSON:
		return l.buildJSONSource(src)

	default:
		return nil, fmt.Errorf("unknown source type %q", src.Type)
	}
}

// buildJSONSource selects numeric elements from a JSON document with a
// JSONPath expression. The document is read and filtered at load time; the
// resulting sequence is a bounded list.
func (l *Loader) buildJSONSource(src *Source) (*lazyseq.Sequence[float64], error) {
	expr, err := jp.ParseString(src.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath expression: %w", err)
	}

	// #nosec G304 - source files are user-provided by design
	data, err := os.ReadFile(src.File)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}

	doc, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}

	matches := expr.Get(doc)
	values := make([]float64, 0, len(matches))
	for _, m := range matches {
		switch v := m.(type) {
		case float64:
			values = append(values, v)
		case int64:
			values = append(values, float64(v))
		case int:
			values = append(values, float64(v))
		default:
			return nil, fmt.Errorf("path %q matched non-numeric value of type %T", src.Path, m)
		}
	}
	return lazyseq.FromSlice(values), nil
}

func (l *Loader) applyOp(seq *lazyseq.Sequence[float64], op *Op, state *runState) (*lazyseq.Sequence[float64], error) {
	switch op.Type {
	case OpMap:
		fn, err := l.eval.Number(op.Expr)
		if err != nil {
			return nil, err
		}
		return seq.Map(func(v float64, i int) float64 {
			out, err := fn(v, float64(i), 0)
			if err != nil {
				state.set(err)
				return v
			}
			return out
		})

	case OpFilter:
		pred, err := l.eval.Predicate(op.Expr)
		if err != nil {
			return nil, err
		}
		return seq.Filter(func(v float64, i int) bool {
			keep, err := pred(v, float64(i))
			if err != nil {
				state.set(err)
				return false
			}
			return keep
		})

	case OpTake:
		return seq.Take(op.N), nil

	case OpDrop:
		return seq.Drop(op.N), nil

	case OpTakeWhile:
		pred, err := l.eval.Predicate(op.Expr)
		if err != nil {
			return nil, err
		}
		return seq.TakeWhile(func(v float64) bool {
			keep, err := pred(v, 0)
			if err != nil {
				// Stopping on a failed predicate keeps an unbounded
				// traversal from running away while the error propagates.
				state.set(err)
				return false
			}
			return keep
		})

	case OpDropWhile:
		pred, err := l.eval.Predicate(op.Expr)
		if err != nil {
			return nil, err
		}
		return seq.DropWhile(func(v float64) bool {
			drop, err := pred(v, 0)
			if err != nil {
				state.set(err)
				return false
			}
			return drop
		})

	default:
		return nil, fmt.Errorf("unknown op type %q", op.Type)
	}
}

// Execute forces the pipeline's terminal operation and returns its outcome.
// The context is checked before evaluation begins; element evaluation itself
// is synchronous and uninterruptible, matching the sequence model.
func (p *Pipeline) Execute(ctx context.Context) (*Outcome, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p.state.err = nil

	var (
		result any
		err    error
	)
	switch p.def.Terminal.Type {
	case TerminalCollect:
		result, err = p.seq.Collect()
	case TerminalHead:
		result, err = p.seq.Head()
	case TerminalLength:
		result, err = p.seq.Length()
	case TerminalSum:
		result, err = p.seq.Reduce(func(acc, v float64, _ int) float64 { return acc + v })
	case TerminalProduct:
		result, err = p.seq.Reduce(func(acc, v float64, _ int) float64 { return acc * v })
	case TerminalReduce:
		result, err = p.seq.Reduce(func(acc, v float64, i int) float64 {
			out, rerr := p.reduce(v, float64(i), acc)
			if rerr != nil {
				p.state.set(rerr)
				return acc
			}
			return out
		})
	case TerminalForEach:
		count := 0
		err = p.seq.ForEach(func(v float64, i int) {
			fmt.Fprintf(p.out, "%d: %v\n", i, formatNumber(v))
			count++
		})
		result = count
	default:
		return nil, fmt.Errorf("unknown terminal type %q", p.def.Terminal.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", p.def.Name, err)
	}
	if p.state.err != nil {
		return nil, fmt.Errorf("pipeline %s: %w", p.def.Name, p.state.err)
	}

	return &Outcome{
		Pipeline: p.def.Name,
		Terminal: p.def.Terminal.Type,
		Result:   result,
	}, nil
}

// formatNumber renders whole floats without a trailing ".0" so for-each
// output of integer-valued pipelines reads naturally.
func formatNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%g", v)
}

// fibonacci is the sequence a, b, a+b, ... defined self-referentially: the
// tail is the same definition shifted one step. Deferred keeps the
// recursion from unwinding until elements are demanded.
func fibonacci(a, b float64) (*lazyseq.Sequence[float64], error) {
	rest, err := lazyseq.Deferred(func() (*lazyseq.Sequence[float64], error) {
		return fibonacci(b, a+b)
	}, lazyseq.WithUnbounded())
	if err != nil {
		return nil, err
	}
	return lazyseq.Cons(a, rest, lazyseq.WithUnbounded())
}

// sieve is the sieve of Eratosthenes over a sequence of candidates: emit the
// head, then sieve the tail with the head's multiples removed.
func sieve(s *lazyseq.Sequence[float64]) (*lazyseq.Sequence[float64], error) {
	p, err := s.Head()
	if err != nil {
		return nil, err
	}
	rest, err := s.Tail().Filter(func(n float64, _ int) bool {
		return math.Mod(n, p) != 0
	})
	if err != nil {
		return nil, err
	}
	deferred, err := lazyseq.Deferred(func() (*lazyseq.Sequence[float64], error) {
		return sieve(rest)
	}, lazyseq.WithUnbounded())
	if err != nil {
		return nil, err
	}
	return lazyseq.Cons(p, deferred, lazyseq.WithUnbounded())
}
