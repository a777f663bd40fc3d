package go121

import (
	"cmp"
	"fmt"
	"io"
	"slices"
)

// Person is a plain value holder for the sorting examples.
type Person struct {
	Name string
	Age  int
}

// Dedupe sorts a copy of xs and removes adjacent duplicates.
//
//	Dedupe([]int{3, 1, 3, 2, 1}) => [1 2 3]
func Dedupe(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)
	return slices.Compact(out)
}

// SortByAge orders people by age ascending, ties broken by name.
//
//	SortByAge(carol:35, alice:30, bob:30) => [alice:30 bob:30 carol:35]
func SortByAge(people []Person) []Person {
	out := slices.Clone(people)
	slices.SortFunc(out, func(a, b Person) int {
		if c := cmp.Compare(a.Age, b.Age); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// DemoSlices narrates the slices package: searching, sorting, deduping and
// in-place edits without a single hand-written loop.
func DemoSlices(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.21: The slices Package ===")
	fmt.Fprintln(w)

	nums := []int{3, 1, 3, 2, 1}
	fmt.Fprintf(w, "1. Searching %v:\n", nums)
	fmt.Fprintf(w, "   -> slices.Contains(nums, 2): %v\n", slices.Contains(nums, 2))
	fmt.Fprintf(w, "   -> slices.Index(nums, 3):    %v\n", slices.Index(nums, 3))
	fmt.Fprintf(w, "   -> slices.Max(nums):         %v\n", slices.Max(nums))
	fmt.Fprintf(w, "   -> slices.Min(nums):         %v\n", slices.Min(nums))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Sort + Compact dedupes:")
	fmt.Fprintf(w, "   -> Dedupe(%v): %v\n", nums, Dedupe(nums))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. SortFunc with cmp.Compare (stable tie-break by name):")
	people := []Person{{"carol", 35}, {"alice", 30}, {"bob", 30}}
	for _, p := range SortByAge(people) {
		fmt.Fprintf(w, "   -> %s (%d)\n", p.Name, p.Age)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "4. BinarySearch on sorted input:")
	sorted := Dedupe(nums)
	idx, found := slices.BinarySearch(sorted, 2)
	fmt.Fprintf(w, "   -> BinarySearch(%v, 2): index=%d found=%v\n", sorted, idx, found)
	idx, found = slices.BinarySearch(sorted, 4)
	fmt.Fprintf(w, "   -> BinarySearch(%v, 4): index=%d found=%v (insertion point)\n", sorted, idx, found)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "5. Structural edits:")
	fmt.Fprintf(w, "   -> slices.Insert([a c], 1, b): %v\n", slices.Insert([]string{"a", "c"}, 1, "b"))
	rev := slices.Clone(sorted)
	slices.Reverse(rev)
	fmt.Fprintf(w, "   -> slices.Reverse(%v): %v\n", sorted, rev)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
