package go121

import (
	"fmt"
	"io"
	"maps"
)

// PruneBelow returns a copy of scores without entries under threshold. The
// input map is never mutated.
//
//	PruneBelow({"ana": 80, "ben": 45, "cy": 70}, 60) => {"ana": 80, "cy": 70}
func PruneBelow(scores map[string]int, threshold int) map[string]int {
	out := maps.Clone(scores)
	maps.DeleteFunc(out, func(_ string, v int) bool { return v < threshold })
	return out
}

// DemoMaps narrates the maps package plus the clear/min/max builtins that
// landed in the same release.
func DemoMaps(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.21: The maps Package and New Builtins ===")
	fmt.Fprintln(w)

	scores := map[string]int{"ana": 80, "ben": 45, "cy": 70}

	fmt.Fprintln(w, "1. Clone + DeleteFunc leave the original untouched:")
	pruned := PruneBelow(scores, 60)
	fmt.Fprintf(w, "   -> original still has %d entries\n", len(scores))
	fmt.Fprintf(w, "   -> pruned has %d entries (ben dropped)\n", len(pruned))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. maps.Equal compares by content:")
	fmt.Fprintf(w, "   -> maps.Equal(scores, clone): %v\n", maps.Equal(scores, maps.Clone(scores)))
	fmt.Fprintf(w, "   -> maps.Equal(scores, pruned): %v\n", maps.Equal(scores, pruned))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. min and max are builtins now:")
	fmt.Fprintf(w, "   -> min(3, 1, 2): %v\n", min(3, 1, 2))
	fmt.Fprintf(w, "   -> max(3, 1, 2): %v\n", max(3, 1, 2))
	fmt.Fprintf(w, "   -> max(\"a\", \"b\"): %v\n", max("a", "b"))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "4. clear empties a map in place:")
	tmp := maps.Clone(scores)
	clear(tmp)
	fmt.Fprintf(w, "   -> after clear: len=%d\n", len(tmp))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
