package go122

import (
	"fmt"
	"io"
)

// Countdown builds [n, n-1, ..., 1] using range over an integer.
//
//	Countdown(3) => [3 2 1]
func Countdown(n int) []int {
	out := make([]int, 0, n)
	for i := range n {
		out = append(out, n-i)
	}
	return out
}

// CaptureLoopVars returns closures that each print their own iteration
// value. Before Go 1.22 all of them would have shared (and printed) the
// final value of i.
func CaptureLoopVars(n int) []func() int {
	var fns []func() int
	for i := range n {
		fns = append(fns, func() int { return i })
	}
	return fns
}

// DemoRangeInt narrates range-over-int and the per-iteration loop variable
// change that removed Go's most famous closure footgun.
func DemoRangeInt(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.22: range Over Integers & Loop Variables ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. for i := range 5 counts 0..4:")
	fmt.Fprint(w, "   ->")
	for i := range 5 {
		fmt.Fprintf(w, " %d", i)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   -> Countdown(3): %v\n", Countdown(3))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Each iteration now gets its own loop variable:")
	fmt.Fprintln(w, "   closures := CaptureLoopVars(3)")
	for idx, fn := range CaptureLoopVars(3) {
		fmt.Fprintf(w, "   -> closures[%d]() = %d\n", idx, fn())
	}
	fmt.Fprintln(w, "   (pre-1.22 semantics would have printed 3, 3, 3)")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. range without the index still works for pure repetition:")
	count := 0
	for range 4 {
		count++
	}
	fmt.Fprintf(w, "   -> ran the body %d times\n", count)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
