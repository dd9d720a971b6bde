package lazyseq_test

import (
	"testing"

	"github.com/agentstation/lazyseq"
	"github.com/agentstation/lazyseq/internal/testutil"
)

func TestCons(t *testing.T) {
	assert := testutil.NewAssert(t)

	t.Run("nil rest", func(t *testing.T) {
		_, err := lazyseq.Cons(1, nil)
		assert.ErrorIs(err, lazyseq.ErrTypeArgument)
	})

	t.Run("prepends to a list", func(t *testing.T) {
		seq, err := lazyseq.Cons(1, lazyseq.List[int]{2, 3, 4, 5})
		assert.NoError(err)
		assert.False(seq.Unbounded())

		got, err := seq.Collect()
		assert.NoError(err)
		assert.Equal([]int{1, 2, 3, 4, 5}, got)
	})

	t.Run("prepends to a sequence", func(t *testing.T) {
		seq, err := lazyseq.Cons(0, lazyseq.FromSlice([]int{1, 2}))
		assert.NoError(err)

		got, err := seq.Collect()
		assert.NoError(err)
		assert.Equal([]int{0, 1, 2}, got)
	})

	t.Run("inherits tag from rest", func(t *testing.T) {
		nats, err := lazyseq.Naturals(1)
		assert.NoError(err)

		seq, err := lazyseq.Cons(0, nats)
		assert.NoError(err)
		assert.True(seq.Unbounded())
	})

	t.Run("explicit tag overrides rest", func(t *testing.T) {
		nats, err := lazyseq.Naturals(1)
		assert.NoError(err)

		seq, err := lazyseq.Cons(0, nats, lazyseq.WithBounded())
		assert.NoError(err)
		assert.False(seq.Unbounded())
	})

	t.Run("rest untouched until needed", func(t *testing.T) {
		src := &testutil.CountingSource[int]{Elements: []int{2, 3}}
		rest, err := src.Sequence()
		assert.NoError(err)

		seq, err := lazyseq.Cons(1, rest)
		assert.NoError(err)

		cur := seq.Cursor()
		v, ok := cur.Next()
		assert.True(ok)
		assert.Equal(1, v)
		assert.Equal(0, src.Cursors)
	})
}

func TestNaturals(t *testing.T) {
	assert := testutil.NewAssert(t)

	t.Run("negative start", func(t *testing.T) {
		_, err := lazyseq.Naturals(-1)
		assert.ErrorIs(err, lazyseq.ErrRange)
	})

	t.Run("counts from start", func(t *testing.T) {
		nats, err := lazyseq.Naturals(3)
		assert.NoError(err)
		assert.True(nats.Unbounded())

		got, err := nats.Take(4).Collect()
		assert.NoError(err)
		assert.Equal([]int{3, 4, 5, 6}, got)
	})

	t.Run("default start is zero", func(t *testing.T) {
		nats, err := lazyseq.Naturals(0)
		assert.NoError(err)

		v, err := nats.Head()
		assert.NoError(err)
		assert.Equal(0, v)
	})
}

func TestZip(t *testing.T) {
	assert := testutil.NewAssert(t)

	t.Run("nil inputs", func(t *testing.T) {
		_, err := lazyseq.Zip[int, int](nil, lazyseq.List[int]{1})
		assert.ErrorIs(err, lazyseq.ErrTypeArgument)
		_, err = lazyseq.Zip[int, int](lazyseq.List[int]{1}, nil)
		assert.ErrorIs(err, lazyseq.ErrTypeArgument)
	})

	t.Run("pairs positionally", func(t *testing.T) {
		seq, err := lazyseq.Zip[int, string](
			lazyseq.List[int]{1, 2, 3},
			lazyseq.List[string]{"a", "b", "c"},
		)
		assert.NoError(err)

		got, err := seq.Collect()
		assert.NoError(err)
		assert.Equal([]lazyseq.Pair[int, string]{
			{First: 1, Second: "a"},
			{First: 2, Second: "b"},
			{First: 3, Second: "c"},
		}, got)
	})

	t.Run("shorter side wins", func(t *testing.T) {
		nats, err := lazyseq.Naturals(0)
		assert.NoError(err)

		seq, err := lazyseq.Zip[int, string](nats, lazyseq.List[string]{"x", "y", "z"})
		assert.NoError(err)
		assert.False(seq.Unbounded())

		got, err := seq.Collect()
		assert.NoError(err)
		assert.Len(got, 3)
		assert.Equal(lazyseq.Pair[int, string]{First: 2, Second: "z"}, got[2])
	})

	t.Run("unbounded only when both are", func(t *testing.T) {
		a, err := lazyseq.Naturals(0)
		assert.NoError(err)
		b, err := lazyseq.Naturals(100)
		assert.NoError(err)

		both, err := lazyseq.Zip[int, int](a, b)
		assert.NoError(err)
		assert.True(both.Unbounded())

		mixed, err := lazyseq.Zip[int, int](a, lazyseq.List[int]{1})
		assert.NoError(err)
		assert.False(mixed.Unbounded())
	})
}

func TestZipWith(t *testing.T) {
	assert := testutil.NewAssert(t)

	t.Run("nil function", func(t *testing.T) {
		_, err := lazyseq.ZipWith[int, int, int](nil, lazyseq.List[int]{1}, lazyseq.List[int]{2})
		assert.ErrorIs(err, lazyseq.ErrTypeArgument)
	})

	t.Run("applies function to pairs", func(t *testing.T) {
		seq, err := lazyseq.ZipWith(
			func(a int, b string) string { return string(rune('0'+a)) + b },
			lazyseq.List[int]{1, 2},
			lazyseq.List[string]{"a", "b"},
		)
		assert.NoError(err)

		got, err := seq.Collect()
		assert.NoError(err)
		assert.Equal([]string{"1a", "2b"}, got)
	})

	t.Run("pairwise sums of two unbounded sequences", func(t *testing.T) {
		a, err := lazyseq.Naturals(0)
		assert.NoError(err)
		b, err := lazyseq.Naturals(10)
		assert.NoError(err)

		sums, err := lazyseq.ZipWith(func(x, y int) int { return x + y }, a, b)
		assert.NoError(err)
		assert.True(sums.Unbounded())

		got, err := sums.Take(3).Collect()
		assert.NoError(err)
		assert.Equal([]int{10, 12, 14}, got)
	})
}
