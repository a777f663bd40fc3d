package go118

import (
	"fmt"
	"io"
)

// Describe classifies a value held in an any variable via a type switch.
//
//	Describe(42)      => "int: 42"
//	Describe("go")    => "string of length 2"
//	Describe(nil)     => "nil"
//	Describe(3.14)    => "something else: float64"
func Describe(v any) string {
	switch x := v.(type) {
	case nil:
		return "nil"
	case int:
		return fmt.Sprintf("int: %d", x)
	case string:
		return fmt.Sprintf("string of length %d", len(x))
	case []any:
		return fmt.Sprintf("slice with %d elements", len(x))
	default:
		return fmt.Sprintf("something else: %T", x)
	}
}

// DemoAny narrates the any alias introduced alongside generics: any is
// interface{} under a readable name, usable in type switches, containers and
// constraints alike.
func DemoAny(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.18: The any Alias ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. any is interface{} spelled for humans:")
	var v any = 42
	fmt.Fprintf(w, "   -> static type any, dynamic type %T, value %v\n", v, v)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Type switching over any:")
	for _, v := range []any{42, "go", nil, 3.14, []any{1, 2}} {
		fmt.Fprintf(w, "   -> Describe(%#v): %s\n", v, Describe(v))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. any as the loosest constraint:")
	fmt.Fprintf(w, "   -> Map over mixed output types: %v\n",
		Map([]int{1, 2, 3}, func(x int) any {
			if x%2 == 0 {
				return fmt.Sprintf("even-%d", x)
			}
			return x
		}))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
