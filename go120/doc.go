// Package go120 demonstrates Go 1.20 additions: joining multiple errors,
// wrapping more than one error with %w, and context cancellation causes.
package go120
