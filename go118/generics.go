package go118

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Number constrains to any built-in integer or float type.
type Number interface {
	constraints.Integer | constraints.Float
}

// Map applies f to every element of xs.
//
//	Map([]int{1, 2, 3}, func(x int) int { return x * x }) => [1 4 9]
func Map[T, U any](xs []T, f func(T) U) []U {
	out := make([]U, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x))
	}
	return out
}

// Filter keeps the elements of xs for which keep returns true.
//
//	Filter([]int{1, 2, 3, 4, 5, 6}, isEven) => [2 4 6]
func Filter[T any](xs []T, keep func(T) bool) []T {
	var out []T
	for _, x := range xs {
		if keep(x) {
			out = append(out, x)
		}
	}
	return out
}

// Reduce folds xs into a single value, starting from init.
//
//	Reduce([]int{1, 2, 3, 4}, 0, func(acc, x int) int { return acc + x }) => 10
func Reduce[T, U any](xs []T, init U, f func(U, T) U) U {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// SquareEvens returns the squares of the even values of xs, preserving order.
//
//	SquareEvens([]int{1, 2, 3, 4, 5, 6}) => [4 16 36]
func SquareEvens(xs []int) []int {
	evens := Filter(xs, func(x int) bool { return x%2 == 0 })
	return Map(evens, func(x int) int { return x * x })
}

// Sum adds up any slice of numbers.
//
//	Sum([]float64{1.5, 2.5}) => 4
func Sum[N Number](xs []N) N {
	var total N
	for _, x := range xs {
		total += x
	}
	return total
}

// MaxOf returns the largest of the given ordered values.
//
//	MaxOf("pear", "apple", "plum") => "plum"
func MaxOf[T constraints.Ordered](first T, rest ...T) T {
	best := first
	for _, x := range rest {
		if x > best {
			best = x
		}
	}
	return best
}

// Stack is a generic LIFO container.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the most recently pushed value. The second result
// is false when the stack is empty.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	v := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return v, true
}

func (s *Stack[T]) Len() int { return len(s.items) }

// DemoGenerics narrates type parameters: generic functions over slices, the
// constraints vocabulary, and a generic container.
func DemoGenerics(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.18: Type Parameters ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. Generic slice helpers (Map / Filter / Reduce):")
	nums := []int{1, 2, 3, 4, 5, 6}
	fmt.Fprintf(w, "   input: %v\n", nums)
	fmt.Fprintf(w, "   -> Filter(evens):  %v\n", Filter(nums, func(x int) bool { return x%2 == 0 }))
	fmt.Fprintf(w, "   -> Map(square):    %v\n", Map(nums, func(x int) int { return x * x }))
	fmt.Fprintf(w, "   -> SquareEvens:    %v\n", SquareEvens(nums))
	fmt.Fprintf(w, "   -> Reduce(sum):    %v\n", Reduce(nums, 0, func(acc, x int) int { return acc + x }))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. One Sum for every numeric type (constraints.Integer | constraints.Float):")
	fmt.Fprintf(w, "   -> Sum([]int{1, 2, 3}):          %v\n", Sum([]int{1, 2, 3}))
	fmt.Fprintf(w, "   -> Sum([]float64{1.5, 2.5}):     %v\n", Sum([]float64{1.5, 2.5}))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. Ordered constraint works for strings too:")
	fmt.Fprintf(w, "   -> MaxOf(3, 9, 4):                  %v\n", MaxOf(3, 9, 4))
	fmt.Fprintf(w, "   -> MaxOf(\"pear\", \"apple\", \"plum\"):  %v\n", MaxOf("pear", "apple", "plum"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "4. Generic container (Stack[T]):")
	var s Stack[string]
	s.Push("first")
	s.Push("second")
	s.Push("third")
	fmt.Fprintf(w, "   -> pushed 3 values, Len() = %d\n", s.Len())
	for {
		v, ok := s.Pop()
		if !ok {
			break
		}
		fmt.Fprintf(w, "   -> Pop(): %s\n", v)
	}
	fmt.Fprintln(w, "   (note: the element type is inferred at the call site, no casts anywhere)")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
