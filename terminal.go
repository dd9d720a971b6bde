package lazyseq

import "fmt"

// Terminal operations. These force traversal and produce concrete results.
// The eager ones (Length, ForEach, Reduce, Collect) check the unbounded tag
// before consuming a single element and fail with ErrInfiniteSequence if it
// is set; bound the sequence with Take or TakeWhile first.

// Head returns the first element, forcing at most one element via an
// internal Take(1). Head is legal on unbounded sequences.
// Returns ErrEmptySequence if the sequence has no elements.
func (s *Sequence[T]) Head() (T, error) {
	var zero T
	cur := s.Take(1).Cursor()
	v, ok := cur.Next()
	if !ok {
		if err := cur.Err(); err != nil {
			return zero, err
		}
		return zero, fmt.Errorf("%w: head", ErrEmptySequence)
	}
	return v, nil
}

// Tail returns the sequence without its first element. Tail is non-strict
// and forces nothing; it is Drop(1), listed here for symmetry with Head.
func (s *Sequence[T]) Tail() *Sequence[T] {
	return s.Drop(1)
}

// Length returns the number of elements. For a sequence tagged unbounded it
// returns UnboundedLength immediately, consuming nothing; otherwise it walks
// the entire sequence once, so it is O(n), never O(1).
func (s *Sequence[T]) Length() (int, error) {
	if s.unbounded {
		return UnboundedLength, nil
	}
	cur := s.Cursor()
	n := 0
	for {
		if _, ok := cur.Next(); !ok {
			break
		}
		n++
	}
	if err := cur.Err(); err != nil {
		return 0, err
	}
	return n, nil
}

// ForEach invokes fn for every element in order, for side effects only.
// Returns ErrInfiniteSequence before consuming anything if the sequence is
// tagged unbounded, and ErrTypeArgument if fn is nil.
func (s *Sequence[T]) ForEach(fn func(v T, i int)) error {
	if fn == nil {
		return fmt.Errorf("%w: for-each callback is nil", ErrTypeArgument)
	}
	if s.unbounded {
		return fmt.Errorf("%w: for-each", ErrInfiniteSequence)
	}
	cur := s.Cursor()
	for i := 0; ; i++ {
		v, ok := cur.Next()
		if !ok {
			break
		}
		fn(v, i)
	}
	return cur.Err()
}

// Reduce folds f leftward over the sequence, using the first element as the
// initial accumulator. The index passed to f is the element's position, so
// it starts at 1: element 0 is the accumulator seed.
// Returns ErrInfiniteSequence if the sequence is tagged unbounded,
// ErrEmptySequence if it has no elements, and ErrTypeArgument if f is nil.
func (s *Sequence[T]) Reduce(f func(acc, v T, i int) T) (T, error) {
	var zero T
	if f == nil {
		return zero, fmt.Errorf("%w: reduce function is nil", ErrTypeArgument)
	}
	if s.unbounded {
		return zero, fmt.Errorf("%w: reduce", ErrInfiniteSequence)
	}
	cur := s.Cursor()
	acc, ok := cur.Next()
	if !ok {
		if err := cur.Err(); err != nil {
			return zero, err
		}
		return zero, fmt.Errorf("%w: reduce", ErrEmptySequence)
	}
	for i := 1; ; i++ {
		v, ok := cur.Next()
		if !ok {
			break
		}
		acc = f(acc, v, i)
	}
	if err := cur.Err(); err != nil {
		return zero, err
	}
	return acc, nil
}

// Collect materializes the sequence into a slice.
// Returns ErrInfiniteSequence if the sequence is tagged unbounded.
func (s *Sequence[T]) Collect() ([]T, error) {
	if s.unbounded {
		return nil, fmt.Errorf("%w: collect", ErrInfiniteSequence)
	}
	cur := s.Cursor()
	var out []T
	for {
		v, ok := cur.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
