// Package registry indexes the demo catalogue so the CLI can list and run
// samples by name or by release.
package registry

import (
	"fmt"
	"io"
	"sort"
)

// Demo is a single runnable sample from the catalogue.
type Demo struct {
	// Name identifies the demo, e.g. "generics" or "slog".
	Name string
	// Release is the Go release that introduced the feature, e.g. "go1.21".
	Release string
	// Synopsis is a one-line description shown by `gofeatures list`.
	Synopsis string
	// Run writes the narrated demonstration output to w.
	Run func(w io.Writer) error
}

// Registry holds demos keyed by name, preserving registration order for
// listing.
type Registry struct {
	byName map[string]Demo
	order  []string
}

func New() *Registry {
	return &Registry{byName: make(map[string]Demo)}
}

// Register adds a demo. Names must be unique across releases.
func (r *Registry) Register(d Demo) error {
	if d.Name == "" {
		return fmt.Errorf("demo name is required")
	}
	if d.Run == nil {
		return fmt.Errorf("demo %q has no run function", d.Name)
	}
	if _, exists := r.byName[d.Name]; exists {
		return fmt.Errorf("demo %q already registered", d.Name)
	}
	r.byName[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// MustRegister registers demos and panics on conflict. Registration happens
// once at startup from a static catalogue, so a conflict is a programming
// error.
func (r *Registry) MustRegister(demos ...Demo) {
	for _, d := range demos {
		if err := r.Register(d); err != nil {
			panic(err)
		}
	}
}

// Get returns the demo registered under name.
func (r *Registry) Get(name string) (Demo, error) {
	d, ok := r.byName[name]
	if !ok {
		return Demo{}, fmt.Errorf("no demo registered under %q", name)
	}
	return d, nil
}

// All returns every demo in registration order.
func (r *Registry) All() []Demo {
	out := make([]Demo, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

// ByRelease returns the demos for one release, in registration order.
func (r *Registry) ByRelease(release string) []Demo {
	var out []Demo
	for _, name := range r.order {
		if d := r.byName[name]; d.Release == release {
			out = append(out, d)
		}
	}
	return out
}

// Releases returns the distinct releases present in the catalogue, sorted.
func (r *Registry) Releases() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, name := range r.order {
		rel := r.byName[name].Release
		if _, ok := seen[rel]; ok {
			continue
		}
		seen[rel] = struct{}{}
		out = append(out, rel)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of registered demos.
func (r *Registry) Len() int { return len(r.order) }
