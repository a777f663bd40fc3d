// Package go121 demonstrates the Go 1.21 standard-library wave: the slices
// and maps packages, the min/max/clear builtins, and structured logging with
// log/slog.
package go121
