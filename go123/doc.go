// Package go123 demonstrates Go 1.23: range-over-func iterators and the
// iter package, iterator helpers in slices and maps, the unique package, and
// the reworked time.Timer semantics.
package go123
