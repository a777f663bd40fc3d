// Package go124 demonstrates Go 1.24: generic type aliases, the iterator
// helpers added to strings, and the encoding/json omitzero tag.
package go124
