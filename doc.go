/*
Package lazyseq provides a lazy sequence abstraction for Go: a value that
represents a potentially unbounded ordered series of elements, computed only
as a consumer pulls them.

Key features:
  - Small, composable interfaces
  - Type-safe sequences with generics
  - Non-strict combinators (Map, Filter, Take, Drop, TakeWhile, DropWhile)
  - Deferred construction for self-referential definitions
  - Explicit unbounded tracking with fail-fast eager operations

Basic usage:

	// The canonical infinite sequence 0, 1, 2, ...
	nats, err := lazyseq.Naturals(0)

	// Combinators are lazy; nothing is computed here.
	evens, err := nats.Filter(func(n, i int) bool { return n%2 == 0 })

	// Terminal operations force evaluation. Eager operations refuse to run
	// on sequences still tagged unbounded, so bound the sequence first.
	sum, err := evens.Take(10).Reduce(func(acc, n, i int) int { return acc + n })

Self-referential sequences:

	// A sequence whose tail is defined in terms of itself is built with
	// Deferred, which stores the defining function unevaluated and invokes
	// it one element at a time as a cursor advances.
	func fib(a, b int) (*lazyseq.Sequence[int], error) {
		rest, err := lazyseq.Deferred(func() (*lazyseq.Sequence[int], error) {
			return fib(b, a+b)
		}, lazyseq.WithUnbounded())
		if err != nil {
			return nil, err
		}
		return lazyseq.Cons(a, rest, lazyseq.WithUnbounded())
	}

Iteration protocol:

	// Every sequence hands out fresh, independent cursors. Two cursors over
	// the same sequence never observe each other.
	cur := seq.Cursor()
	for {
		v, ok := cur.Next()
		if !ok {
			break
		}
		// use v
	}
	if err := cur.Err(); err != nil {
		// a deferred definition failed to resolve
	}

Plain slices participate anywhere a sequence is accepted via the List
adapter:

	seq, err := lazyseq.Cons(1, lazyseq.List[int]{2, 3, 4, 5})
*/
package lazyseq
