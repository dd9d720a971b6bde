package lazyseq

import "fmt"

// Combination helpers: prepend, the canonical infinite arithmetic sequence,
// and positional pairing of two iterables.

// Pair groups two positionally matched elements produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Cons prepends a single element to an iterable. The rest is not touched
// until the new sequence's cursor advances past the head, so Cons composes
// with Deferred for self-referential definitions.
//
// The unbounded tag is taken from an explicit WithUnbounded/WithBounded
// option when supplied, otherwise inherited from rest.
// Returns ErrTypeArgument if rest is nil.
func Cons[T any](head T, rest Iterable[T], opts ...Option) (*Sequence[T], error) {
	if rest == nil {
		return nil, fmt.Errorf("%w: cons rest is not iterable", ErrTypeArgument)
	}
	o := applyOptions(opts)
	unbounded := rest.Unbounded()
	if o.explicit {
		unbounded = o.unbounded
	}
	p := func() Cursor[T] {
		var cur Cursor[T]
		emitted := false
		return &derivedCursor[T]{
			err: func() error {
				if cur != nil {
					return cur.Err()
				}
				return nil
			},
			step: func() (T, bool) {
				if !emitted {
					emitted = true
					return head, true
				}
				if cur == nil {
					cur = rest.Cursor()
				}
				return cur.Next()
			},
		}
	}
	return &Sequence[T]{producer: p, unbounded: unbounded}, nil
}

// Naturals returns the canonical unbounded arithmetic sequence
// start, start+1, start+2, ... tagged unbounded.
// Returns ErrRange if start is negative.
func Naturals(start int) (*Sequence[int], error) {
	if start < 0 {
		return nil, fmt.Errorf("%w: naturals start %d is negative", ErrRange, start)
	}
	p := func() Cursor[int] {
		n := start
		return CursorFunc[int](func() (int, bool) {
			v := n
			n++
			return v, true
		})
	}
	return &Sequence[int]{producer: p, unbounded: true}, nil
}

// Zip pairs elements positionally from two iterables, stopping at the first
// exhausted side. The result is unbounded only if both inputs are unbounded:
// a single finite input bounds the whole thing.
// Returns ErrTypeArgument if either input is nil.
func Zip[A, B any](a Iterable[A], b Iterable[B]) (*Sequence[Pair[A, B]], error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("%w: zip inputs must be iterable", ErrTypeArgument)
	}
	p := func() Cursor[Pair[A, B]] {
		ca := a.Cursor()
		cb := b.Cursor()
		return &derivedCursor[Pair[A, B]]{
			err: func() error {
				if err := ca.Err(); err != nil {
					return err
				}
				return cb.Err()
			},
			step: func() (Pair[A, B], bool) {
				va, ok := ca.Next()
				if !ok {
					return Pair[A, B]{}, false
				}
				vb, ok := cb.Next()
				if !ok {
					return Pair[A, B]{}, false
				}
				return Pair[A, B]{First: va, Second: vb}, true
			},
		}
	}
	return &Sequence[Pair[A, B]]{producer: p, unbounded: a.Unbounded() && b.Unbounded()}, nil
}

// ZipWith pairs elements positionally and applies f to each pair. Error and
// tag rules are those of Zip, plus ErrTypeArgument if f is nil.
func ZipWith[A, B, C any](f func(A, B) C, a Iterable[A], b Iterable[B]) (*Sequence[C], error) {
	if f == nil {
		return nil, fmt.Errorf("%w: zip-with function is nil", ErrTypeArgument)
	}
	pairs, err := Zip(a, b)
	if err != nil {
		return nil, err
	}
	p := func() Cursor[C] {
		cur := pairs.Cursor()
		return &derivedCursor[C]{
			err: cur.Err,
			step: func() (C, bool) {
				pr, ok := cur.Next()
				if !ok {
					var zero C
					return zero, false
				}
				return f(pr.First, pr.Second), true
			},
		}
	}
	return &Sequence[C]{producer: p, unbounded: pairs.unbounded}, nil
}
