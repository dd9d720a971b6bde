package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/lazyseq"
)

// demoCmd runs the classic lazy evaluation showcases directly against the
// library, without a pipeline file.
var demoCmd = &cobra.Command{
	Use:   "demo <primes|fib|evensum>",
	Short: "Run a built-in demonstration",
	Long: `Run one of the classic lazy sequence demonstrations.

  primes   First ten primes by the sieve of Eratosthenes
  fib      First ten Fibonacci numbers
  evensum  Sum of the even Fibonacci numbers below four million`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"primes", "fib", "evensum"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "primes":
			return demoPrimes()
		case "fib":
			return demoFib()
		case "evensum":
			return demoEvenSum()
		default:
			return fmt.Errorf("unknown demo %q", args[0])
		}
	},
}

func demoPrimes() error {
	candidates, err := lazyseq.Naturals(2)
	if err != nil {
		return err
	}
	primes, err := sieve(candidates)
	if err != nil {
		return err
	}
	got, err := primes.Take(10).Collect()
	if err != nil {
		return err
	}
	fmt.Println(got)
	return nil
}

func demoFib() error {
	fibs, err := fib(1, 1)
	if err != nil {
		return err
	}
	got, err := fibs.Take(10).Collect()
	if err != nil {
		return err
	}
	fmt.Println(got)
	return nil
}

func demoEvenSum() error {
	fibs, err := fib(1, 1)
	if err != nil {
		return err
	}
	bounded, err := fibs.TakeWhile(func(n int) bool { return n < 4000000 })
	if err != nil {
		return err
	}
	evens, err := bounded.Filter(func(n, _ int) bool { return n%2 == 0 })
	if err != nil {
		return err
	}
	sum, err := evens.Reduce(func(acc, v, _ int) int { return acc + v })
	if err != nil {
		return err
	}
	fmt.Println(sum)
	return nil
}

// sieve emits the head of the candidate sequence, then sieves the remaining
// candidates with the head's multiples removed.
func sieve(s *lazyseq.Sequence[int]) (*lazyseq.Sequence[int], error) {
	p, err := s.Head()
	if err != nil {
		return nil, err
	}
	rest, err := s.Tail().Filter(func(n, _ int) bool { return n%p != 0 })
	if err != nil {
		return nil, err
	}
	deferred, err := lazyseq.Deferred(func() (*lazyseq.Sequence[int], error) {
		return sieve(rest)
	}, lazyseq.WithUnbounded())
	if err != nil {
		return nil, err
	}
	return lazyseq.Cons(p, deferred, lazyseq.WithUnbounded())
}

// fib generates a, b, a+b, ... by consing a onto a deferred shift of itself.
func fib(a, b int) (*lazyseq.Sequence[int], error) {
	rest, err := lazyseq.Deferred(func() (*lazyseq.Sequence[int], error) {
		return fib(b, a+b)
	}, lazyseq.WithUnbounded())
	if err != nil {
		return nil, err
	}
	return lazyseq.Cons(a, rest, lazyseq.WithUnbounded())
}

func init() {
	rootCmd.AddCommand(demoCmd)
}
