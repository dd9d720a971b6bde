// Package lazyseq implements lazy sequences with explicit unbounded tracking.
// See doc.go for an overview.
package lazyseq

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrTypeArgument is returned when an argument required to be a function
	// or an iterable value is nil.
	ErrTypeArgument = errors.New("lazyseq: invalid argument type")

	// ErrRange is returned when a numeric argument violates its documented
	// domain, such as a negative start for Naturals.
	ErrRange = errors.New("lazyseq: numeric argument out of range")

	// ErrInfiniteSequence is returned when an eager operation is invoked on
	// a sequence whose unbounded tag is set. Bound the sequence with Take or
	// TakeWhile first.
	ErrInfiniteSequence = errors.New("lazyseq: eager operation on unbounded sequence")

	// ErrEmptySequence is returned when an operation that requires at least
	// one element finds none.
	ErrEmptySequence = errors.New("lazyseq: sequence is empty")
)

// UnboundedLength is the sentinel returned by Length for sequences tagged
// unbounded. No element is consumed to produce it.
const UnboundedLength = -1

// Cursor is a single stateful traversal over a sequence's elements.
//
// Next advances the cursor and reports the next element, or ok=false once
// the traversal is exhausted. Err reports a failure to resolve a deferred
// definition; it should be checked after Next returns ok=false, following
// the convention of bufio.Scanner and sql.Rows.
type Cursor[T any] interface {
	Next() (value T, ok bool)
	Err() error
}

// CursorFunc adapts an advance function to the Cursor interface. The
// function may close over whatever per-cursor state it needs.
type CursorFunc[T any] func() (T, bool)

// Next advances the cursor.
func (f CursorFunc[T]) Next() (T, bool) { return f() }

// Err always returns nil; plain function cursors cannot fail.
func (CursorFunc[T]) Err() error { return nil }

// Producer creates a fresh traversal cursor on each invocation. Cursors
// returned by successive invocations are fully independent: exhausting one
// must not affect another.
type Producer[T any] func() Cursor[T]

// Iterable is the capability shared by sequences and finite collections.
// Any Iterable may be used where a sequence input is expected, such as in
// Cons, Zip, and ZipWith.
type Iterable[T any] interface {
	// Cursor returns a fresh traversal cursor.
	Cursor() Cursor[T]

	// Unbounded reports whether the value is known to never terminate.
	Unbounded() bool
}

// Sequence is an immutable, lazily evaluated ordered series of elements.
// A Sequence owns no mutable state beyond the position counters private to
// each cursor, so sequences may be shared and traversed repeatedly; with
// pure callbacks every traversal yields the same elements in the same order.
type Sequence[T any] struct {
	producer  Producer[T]
	unbounded bool
}

// Option configures sequence construction.
type Option func(*seqOptions)

type seqOptions struct {
	unbounded bool
	explicit  bool
}

// WithUnbounded tags the constructed sequence as known to never terminate.
// Eager operations (ForEach, Reduce, Collect) refuse to run on sequences
// carrying the tag.
func WithUnbounded() Option {
	return func(o *seqOptions) {
		o.unbounded = true
		o.explicit = true
	}
}

// WithBounded explicitly tags the constructed sequence as finite,
// overriding any tag it would otherwise inherit.
func WithBounded() Option {
	return func(o *seqOptions) {
		o.unbounded = false
		o.explicit = true
	}
}

func applyOptions(opts []Option) seqOptions {
	var o seqOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FromProducer creates a Sequence that defers entirely to p for element
// production. The sequence is bounded unless WithUnbounded is supplied.
// Returns ErrTypeArgument if p is nil.
func FromProducer[T any](p Producer[T], opts ...Option) (*Sequence[T], error) {
	if p == nil {
		return nil, fmt.Errorf("%w: producer is nil", ErrTypeArgument)
	}
	o := applyOptions(opts)
	return &Sequence[T]{producer: p, unbounded: o.unbounded}, nil
}

// Deferred creates a Sequence from an unevaluated definition. The function f
// is stored as-is and invoked only when a cursor is first advanced, never at
// construction time. This breaks eager recursion: a sequence whose tail is
// defined in terms of a transformation of itself unwinds one element per
// cursor advance instead of recursing without bound up front.
//
// Each fresh cursor re-invokes f, keeping the sequence restartable. If f
// fails, the cursor reports exhaustion and surfaces the error through Err.
// Returns ErrTypeArgument if f is nil.
func Deferred[T any](f func() (*Sequence[T], error), opts ...Option) (*Sequence[T], error) {
	if f == nil {
		return nil, fmt.Errorf("%w: deferred definition is nil", ErrTypeArgument)
	}
	o := applyOptions(opts)
	p := func() Cursor[T] {
		return &deferredCursor[T]{resolve: f}
	}
	return &Sequence[T]{producer: p, unbounded: o.unbounded}, nil
}

// deferredCursor resolves its definition on first advance only, then
// delegates to a cursor over the resolved sequence.
type deferredCursor[T any] struct {
	resolve func() (*Sequence[T], error)
	inner   Cursor[T]
	err     error
}

func (c *deferredCursor[T]) Next() (T, bool) {
	var zero T
	if c.err != nil {
		return zero, false
	}
	if c.inner == nil {
		seq, err := c.resolve()
		if err != nil {
			c.err = err
			return zero, false
		}
		if seq == nil {
			c.err = fmt.Errorf("%w: deferred definition resolved to nil", ErrTypeArgument)
			return zero, false
		}
		c.inner = seq.Cursor()
	}
	return c.inner.Next()
}

func (c *deferredCursor[T]) Err() error {
	if c.err != nil {
		return c.err
	}
	if c.inner != nil {
		return c.inner.Err()
	}
	return nil
}

// List adapts an ordered Go slice to the Iterable capability. Lists are
// always finite.
type List[T any] []T

// Cursor returns a fresh cursor over the list's elements.
func (l List[T]) Cursor() Cursor[T] {
	pos := 0
	return CursorFunc[T](func() (T, bool) {
		if pos >= len(l) {
			var zero T
			return zero, false
		}
		v := l[pos]
		pos++
		return v, true
	})
}

// Unbounded always reports false for lists.
func (List[T]) Unbounded() bool { return false }

// FromSlice wraps a slice in a bounded Sequence. The slice is not copied;
// callers must not mutate it while the sequence is in use.
func FromSlice[T any](s []T) *Sequence[T] {
	l := List[T](s)
	return &Sequence[T]{producer: l.Cursor}
}

// Cursor returns a fresh, independent traversal cursor. Creating a cursor
// consumes no elements.
func (s *Sequence[T]) Cursor() Cursor[T] {
	return s.producer()
}

// Unbounded reports whether the sequence is known to never terminate. The
// tag is fixed at construction and derived only from the tags of the
// sequences a combinator wraps; it is never inferred by probing elements.
func (s *Sequence[T]) Unbounded() bool {
	return s.unbounded
}

// derivedCursor drives one or more origin cursors through a per-element
// step function. Err is forwarded so deferred failures deep in a combinator
// chain reach the forcing caller.
type derivedCursor[T any] struct {
	step func() (T, bool)
	err  func() error
}

func (c *derivedCursor[T]) Next() (T, bool) { return c.step() }

func (c *derivedCursor[T]) Err() error {
	if c.err == nil {
		return nil
	}
	return c.err()
}
