package go118

import (
	"fmt"
	"io"
	"strings"
)

// Optional is a generic value-or-absent holder built on type parameters. It
// is the comma-ok idiom packaged as a type: constructed, read, discarded.
type Optional[T any] struct {
	value   T
	present bool
}

// Of wraps a present value.
func Of[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// Empty returns an absent Optional.
func Empty[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool { return o.present }

// OrElse returns the value if present, otherwise fallback.
//
//	Of("go").OrElse("none")      => "go"
//	Empty[string]().OrElse("none") => "none"
func (o Optional[T]) OrElse(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

// OrElseGet returns the value if present, otherwise the result of calling
// supply. The supplier runs only when needed.
func (o Optional[T]) OrElseGet(supply func() T) T {
	if o.present {
		return o.value
	}
	return supply()
}

// Filter keeps the value only if it satisfies keep.
func (o Optional[T]) Filter(keep func(T) bool) Optional[T] {
	if o.present && keep(o.value) {
		return o
	}
	return Optional[T]{}
}

// MapOptional transforms a present value. It is a package function because Go
// methods cannot introduce new type parameters.
//
//	MapOptional(Of("go"), strings.ToUpper) => Of("GO")
func MapOptional[T, U any](o Optional[T], f func(T) U) Optional[U] {
	if v, ok := o.Get(); ok {
		return Of(f(v))
	}
	return Empty[U]()
}

// lookupRelease simulates a registry lookup that may miss.
func lookupRelease(year int) Optional[string] {
	releases := map[int]string{
		2022: "go1.18",
		2023: "go1.21",
		2024: "go1.23",
	}
	if name, ok := releases[year]; ok {
		return Of(name)
	}
	return Empty[string]()
}

// DemoOptional narrates a generic optional chain: lookup, map, filter,
// fallback. The absent branch never panics and never needs a nil check.
func DemoOptional(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.18: A Generic Optional ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. Present and absent lookups:")
	for _, year := range []int{2023, 2025} {
		rel := lookupRelease(year)
		fmt.Fprintf(w, "   -> lookupRelease(%d): present=%v, value=%q\n",
			year, rel.IsPresent(), rel.OrElse(""))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Chaining Map and Filter over the holder:")
	upper := MapOptional(lookupRelease(2023), strings.ToUpper)
	fmt.Fprintf(w, "   -> MapOptional(ToUpper): %s\n", upper.OrElse("(absent)"))
	recent := lookupRelease(2022).Filter(func(name string) bool { return name >= "go1.20" })
	fmt.Fprintf(w, "   -> Filter(>= go1.20) on go1.18: present=%v\n", recent.IsPresent())

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. Lazy fallback with OrElseGet (supplier runs only on the absent path):")
	calls := 0
	supplier := func() string {
		calls++
		return "computed-default"
	}
	fmt.Fprintf(w, "   -> present:  %s (supplier calls: %d)\n", lookupRelease(2024).OrElseGet(supplier), calls)
	fmt.Fprintf(w, "   -> absent:   %s (supplier calls: %d)\n", lookupRelease(1999).OrElseGet(supplier), calls)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
