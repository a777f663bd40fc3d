package go123

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
)

// Squares yields n*n for n = 1..count. Stopping the range loop stops the
// iterator; nothing past the break is computed.
//
//	slices.Collect(Squares(4)) => [1 4 9 16]
func Squares(count int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for n := 1; n <= count; n++ {
			if !yield(n * n) {
				return
			}
		}
	}
}

// Chunks yields xs in windows of size. The final chunk may be shorter.
//
//	Chunks([]int{1, 2, 3, 4, 5}, 2) => [1 2], [3 4], [5]
func Chunks[T any](xs []T, size int) iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		if size <= 0 {
			return
		}
		for start := 0; start < len(xs); start += size {
			end := min(start+size, len(xs))
			if !yield(xs[start:end]) {
				return
			}
		}
	}
}

// Enumerate pairs each element with its index as an iter.Seq2.
func Enumerate[T any](xs []T) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range xs {
			if !yield(i, x) {
				return
			}
		}
	}
}

// DemoIterators narrates range-over-func: hand-written iterators, the
// slices/maps iterator helpers, and early termination.
func DemoIterators(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.23: Iterators (range over func) ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. Ranging over a custom iter.Seq:")
	fmt.Fprint(w, "   -> Squares(4):")
	for sq := range Squares(4) {
		fmt.Fprintf(w, " %d", sq)
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. break stops the producer (nothing is computed past it):")
	fmt.Fprint(w, "   -> first square over 50 from Squares(1000):")
	for sq := range Squares(1000) {
		if sq > 50 {
			fmt.Fprintf(w, " %d", sq)
			break
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. iter.Seq2 carries pairs:")
	for i, name := range Enumerate([]string{"ana", "ben"}) {
		fmt.Fprintf(w, "   -> [%d] %s\n", i, name)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "4. Chunking a slice lazily:")
	for chunk := range Chunks([]int{1, 2, 3, 4, 5}, 2) {
		fmt.Fprintf(w, "   -> chunk %v\n", chunk)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "5. The stdlib grew iterator helpers too:")
	scores := map[string]int{"ana": 80, "ben": 45, "cy": 70}
	fmt.Fprintf(w, "   -> slices.Sorted(maps.Keys(m)):   %v\n", slices.Sorted(maps.Keys(scores)))
	fmt.Fprintf(w, "   -> slices.Sorted(maps.Values(m)): %v\n", slices.Sorted(maps.Values(scores)))
	fmt.Fprintf(w, "   -> slices.Collect(slices.Values([a b])): %v\n",
		slices.Collect(slices.Values([]string{"a", "b"})))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
