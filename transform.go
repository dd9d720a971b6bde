package lazyseq

import "fmt"

// Transformation combinators. All of them are non-strict: calling one
// performs no iteration and consumes no elements. The returned sequence
// wraps the receiver; its cursors drive fresh cursors over the receiver and
// apply the per-element logic one pull at a time.

// Map returns a sequence of f applied to each element. The index passed to
// f is the 0-based position within the map's own traversal, reset for every
// fresh cursor. The result inherits the receiver's unbounded tag.
// Returns ErrTypeArgument if f is nil.
func (s *Sequence[T]) Map(f func(v T, i int) T) (*Sequence[T], error) {
	if f == nil {
		return nil, fmt.Errorf("%w: map function is nil", ErrTypeArgument)
	}
	p := func() Cursor[T] {
		cur := s.Cursor()
		i := 0
		return &derivedCursor[T]{
			err: cur.Err,
			step: func() (T, bool) {
				v, ok := cur.Next()
				if !ok {
					var zero T
					return zero, false
				}
				out := f(v, i)
				i++
				return out, true
			},
		}
	}
	return &Sequence[T]{producer: p, unbounded: s.unbounded}, nil
}

// Filter returns a sequence of the elements for which pred is true. The
// index passed to pred counts every element examined, not only those kept.
// The result inherits the receiver's unbounded tag.
// Returns ErrTypeArgument if pred is nil.
func (s *Sequence[T]) Filter(pred func(v T, i int) bool) (*Sequence[T], error) {
	if pred == nil {
		return nil, fmt.Errorf("%w: filter predicate is nil", ErrTypeArgument)
	}
	p := func() Cursor[T] {
		cur := s.Cursor()
		i := 0
		return &derivedCursor[T]{
			err: cur.Err,
			step: func() (T, bool) {
				for {
					v, ok := cur.Next()
					if !ok {
						var zero T
						return zero, false
					}
					keep := pred(v, i)
					i++
					if keep {
						return v, true
					}
				}
			},
		}
	}
	return &Sequence[T]{producer: p, unbounded: s.unbounded}, nil
}

// Take returns a sequence of at most the first n elements. The result is
// always bounded, which makes Take the standard way to prepare an unbounded
// sequence for an eager operation. n is not validated: zero or negative n
// yields an empty sequence.
func (s *Sequence[T]) Take(n int) *Sequence[T] {
	p := func() Cursor[T] {
		cur := s.Cursor()
		remaining := n
		return &derivedCursor[T]{
			err: cur.Err,
			step: func() (T, bool) {
				var zero T
				if remaining <= 0 {
					return zero, false
				}
				v, ok := cur.Next()
				if !ok {
					remaining = 0
					return zero, false
				}
				remaining--
				return v, true
			},
		}
	}
	return &Sequence[T]{producer: p}
}

// Drop returns a sequence without the first n elements. The skip happens on
// the first advance of a cursor, not when Drop is called. The result
// inherits the receiver's unbounded tag. Zero or negative n drops nothing.
func (s *Sequence[T]) Drop(n int) *Sequence[T] {
	p := func() Cursor[T] {
		cur := s.Cursor()
		skipped := false
		return &derivedCursor[T]{
			err: cur.Err,
			step: func() (T, bool) {
				if !skipped {
					skipped = true
					for i := 0; i < n; i++ {
						if _, ok := cur.Next(); !ok {
							var zero T
							return zero, false
						}
					}
				}
				return cur.Next()
			},
		}
	}
	return &Sequence[T]{producer: p, unbounded: s.unbounded}
}

// TakeWhile returns a sequence of the leading elements for which pred is
// true, stopping permanently at the first false. The result is always
// tagged bounded; a predicate that never returns false still produces an
// endless traversal, so termination of pred is the caller's contract.
// Returns ErrTypeArgument if pred is nil.
func (s *Sequence[T]) TakeWhile(pred func(v T) bool) (*Sequence[T], error) {
	if pred == nil {
		return nil, fmt.Errorf("%w: take-while predicate is nil", ErrTypeArgument)
	}
	p := func() Cursor[T] {
		cur := s.Cursor()
		done := false
		return &derivedCursor[T]{
			err: cur.Err,
			step: func() (T, bool) {
				var zero T
				if done {
					return zero, false
				}
				v, ok := cur.Next()
				if !ok || !pred(v) {
					done = true
					return zero, false
				}
				return v, true
			},
		}
	}
	return &Sequence[T]{producer: p}, nil
}

// DropWhile returns a sequence without the leading elements for which pred
// is true. Once pred first returns false, that element and everything after
// it is emitted without further predicate calls. The result inherits the
// receiver's unbounded tag.
// Returns ErrTypeArgument if pred is nil.
func (s *Sequence[T]) DropWhile(pred func(v T) bool) (*Sequence[T], error) {
	if pred == nil {
		return nil, fmt.Errorf("%w: drop-while predicate is nil", ErrTypeArgument)
	}
	p := func() Cursor[T] {
		cur := s.Cursor()
		dropping := true
		return &derivedCursor[T]{
			err: cur.Err,
			step: func() (T, bool) {
				if dropping {
					dropping = false
					for {
						v, ok := cur.Next()
						if !ok {
							var zero T
							return zero, false
						}
						if !pred(v) {
							return v, true
						}
					}
				}
				return cur.Next()
			},
		}
	}
	return &Sequence[T]{producer: p, unbounded: s.unbounded}, nil
}
