// Package go122 demonstrates Go 1.22: math/rand/v2, range over integers,
// per-iteration loop variables, and ServeMux method + wildcard patterns.
package go122
