package go124

import (
	"fmt"
	"io"
	"strings"
)

// CountFields counts whitespace-separated fields without allocating a slice,
// using strings.FieldsSeq.
//
//	CountFields("  the quick  brown fox ") => 4
func CountFields(s string) int {
	n := 0
	for range strings.FieldsSeq(s) {
		n++
	}
	return n
}

// NumberLines prefixes every line of s with its 1-based number. Lines are
// produced by strings.Lines, which yields each line with its trailing
// newline intact.
//
//	NumberLines("alpha\nbeta\n") => "1: alpha\n2: beta\n"
func NumberLines(s string) string {
	var b strings.Builder
	n := 0
	for line := range strings.Lines(s) {
		n++
		fmt.Fprintf(&b, "%d: %s", n, line)
	}
	return b.String()
}

// FirstCSVField returns the first comma-separated field of s. SplitSeq lets
// us stop after one field instead of splitting the whole string.
//
//	FirstCSVField("ana,ben,cy") => "ana"
func FirstCSVField(s string) string {
	for field := range strings.SplitSeq(s, ",") {
		return field
	}
	return ""
}

// DemoStringSeq narrates the iterator-returning helpers strings grew in
// 1.24: Lines, SplitSeq and FieldsSeq.
func DemoStringSeq(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.24: strings Iterator Helpers ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. strings.SplitSeq yields fields lazily:")
	fmt.Fprint(w, "   -> SplitSeq(\"ana,ben,cy\", \",\"):")
	for field := range strings.SplitSeq("ana,ben,cy", ",") {
		fmt.Fprintf(w, " %q", field)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "   -> FirstCSVField stops after one: %q\n", FirstCSVField("ana,ben,cy"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. strings.FieldsSeq skips runs of whitespace without allocating:")
	input := "  the quick  brown fox "
	fmt.Fprintf(w, "   -> CountFields(%q): %d\n", input, CountFields(input))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. strings.Lines keeps each line's newline:")
	fmt.Fprint(w, NumberLines("alpha\nbeta\ngamma\n"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
