package lazyseq_test

import (
	"fmt"
	"log"

	"github.com/agentstation/lazyseq"
)

// ExampleNaturals demonstrates bounding an infinite sequence before forcing
// it.
func ExampleNaturals() {
	nats, err := lazyseq.Naturals(0)
	if err != nil {
		log.Fatal(err)
	}

	squares, err := nats.Map(func(n, _ int) int { return n * n })
	if err != nil {
		log.Fatal(err)
	}

	got, err := squares.Take(5).Collect()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(got)
	// Output: [0 1 4 9 16]
}

// ExampleCons demonstrates prepending to a plain slice.
func ExampleCons() {
	seq, err := lazyseq.Cons(1, lazyseq.List[int]{2, 3, 4, 5})
	if err != nil {
		log.Fatal(err)
	}

	got, err := seq.Collect()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(got, seq.Unbounded())
	// Output: [1 2 3 4 5] false
}

// ExampleDeferred demonstrates a self-referential sequence definition.
func ExampleDeferred() {
	var countdown func(n int) (*lazyseq.Sequence[int], error)
	countdown = func(n int) (*lazyseq.Sequence[int], error) {
		if n == 0 {
			return lazyseq.FromSlice([]int{0}), nil
		}
		rest, err := lazyseq.Deferred(func() (*lazyseq.Sequence[int], error) {
			return countdown(n - 1)
		})
		if err != nil {
			return nil, err
		}
		return lazyseq.Cons(n, rest)
	}

	seq, err := countdown(4)
	if err != nil {
		log.Fatal(err)
	}

	got, err := seq.Collect()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(got)
	// Output: [4 3 2 1 0]
}

// ExampleZipWith demonstrates pairwise combination bounded by the shorter
// input.
func ExampleZipWith() {
	nats, err := lazyseq.Naturals(1)
	if err != nil {
		log.Fatal(err)
	}

	products, err := lazyseq.ZipWith(
		func(n int, label string) string { return fmt.Sprintf("%d%s", n, label) },
		nats,
		lazyseq.List[string]{"a", "b", "c"},
	)
	if err != nil {
		log.Fatal(err)
	}

	got, err := products.Collect()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(got)
	// Output: [1a 2b 3c]
}

// ExampleSequence_Reduce demonstrates the unbounded guard on eager
// operations.
func ExampleSequence_Reduce() {
	nats, err := lazyseq.Naturals(0)
	if err != nil {
		log.Fatal(err)
	}

	// Reducing an unbounded sequence fails before any element is consumed.
	if _, err := nats.Reduce(func(acc, n, _ int) int { return acc + n }); err != nil {
		fmt.Println("unbounded:", err != nil)
	}

	// Bound it first.
	sum, err := nats.Take(10).Reduce(func(acc, n, _ int) int { return acc + n })
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("sum:", sum)
	// Output:
	// unbounded: true
	// sum: 45
}
