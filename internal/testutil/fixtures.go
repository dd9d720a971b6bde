package testutil

import "github.com/agentstation/lazyseq"

// CountingSource wraps a slice in a producer that counts every cursor
// creation and every element pull. Tests use it to prove combinators stay
// lazy: after building a chain, Pulls must still be zero.
type CountingSource[T any] struct {
	Elements []T

	// Cursors is the number of fresh cursors handed out.
	Cursors int

	// Pulls is the total number of elements produced across all cursors.
	Pulls int
}

// Producer returns a lazyseq.Producer over the source's elements.
func (c *CountingSource[T]) Producer() lazyseq.Producer[T] {
	return func() lazyseq.Cursor[T] {
		c.Cursors++
		pos := 0
		return lazyseq.CursorFunc[T](func() (T, bool) {
			if pos >= len(c.Elements) {
				var zero T
				return zero, false
			}
			v := c.Elements[pos]
			pos++
			c.Pulls++
			return v, true
		})
	}
}

// Sequence builds a bounded sequence backed by the counting producer.
func (c *CountingSource[T]) Sequence() (*lazyseq.Sequence[T], error) {
	return lazyseq.FromProducer(c.Producer())
}

// Drain walks a cursor to exhaustion and returns everything it produced.
func Drain[T any](cur lazyseq.Cursor[T]) []T {
	var out []T
	for {
		v, ok := cur.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
