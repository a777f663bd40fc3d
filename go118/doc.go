// Package go118 demonstrates the headline features of Go 1.18: type
// parameters (generics), the any alias, and generic containers. Each demo is
// self-contained and narrates its output to a writer.
package go118
