package registry

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noop(io.Writer) error { return nil }

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	t.Run("registers and retrieves a demo", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(Demo{Name: "generics", Release: "go1.18", Run: noop}))

		d, err := r.Get("generics")
		require.NoError(t, err)
		assert.Equal(t, "go1.18", d.Release)
		assert.Equal(t, 1, r.Len())
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		r := New()
		require.NoError(t, r.Register(Demo{Name: "slog", Release: "go1.21", Run: noop}))
		err := r.Register(Demo{Name: "slog", Release: "go1.21", Run: noop})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already registered")
	})

	t.Run("rejects missing name or run func", func(t *testing.T) {
		r := New()
		require.Error(t, r.Register(Demo{Run: noop}))
		require.Error(t, r.Register(Demo{Name: "broken"}))
	})

	t.Run("unknown name errors", func(t *testing.T) {
		r := New()
		_, err := r.Get("nope")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no demo registered under "nope"`)
	})
}

func TestRegistry_Listing(t *testing.T) {
	t.Parallel()

	r := New()
	r.MustRegister(
		Demo{Name: "iterators", Release: "go1.23", Run: noop},
		Demo{Name: "generics", Release: "go1.18", Run: noop},
		Demo{Name: "unique", Release: "go1.23", Run: noop},
	)

	t.Run("All preserves registration order", func(t *testing.T) {
		names := make([]string, 0, 3)
		for _, d := range r.All() {
			names = append(names, d.Name)
		}
		assert.Equal(t, []string{"iterators", "generics", "unique"}, names)
	})

	t.Run("ByRelease filters", func(t *testing.T) {
		demos := r.ByRelease("go1.23")
		require.Len(t, demos, 2)
		assert.Equal(t, "iterators", demos[0].Name)
		assert.Equal(t, "unique", demos[1].Name)
		assert.Empty(t, r.ByRelease("go1.99"))
	})

	t.Run("Releases are distinct and sorted", func(t *testing.T) {
		assert.Equal(t, []string{"go1.18", "go1.23"}, r.Releases())
	})
}
