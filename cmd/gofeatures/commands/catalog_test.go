package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sankarpadhy/go-release-highlights/internal/config"
)

func TestCatalogue(t *testing.T) {
	t.Parallel()

	cat := newCatalogue(&config.Config{})
	require.Greater(t, cat.Len(), 15)

	t.Run("covers every targeted release", func(t *testing.T) {
		assert.Equal(t,
			[]string{"go1.18", "go1.20", "go1.21", "go1.22", "go1.23", "go1.24", "stdlib"},
			cat.Releases())
	})

	t.Run("every demo runs cleanly and narrates", func(t *testing.T) {
		for _, d := range cat.All() {
			t.Run(d.Name, func(t *testing.T) {
				var buf bytes.Buffer
				require.NoError(t, d.Run(&buf))
				out := buf.String()
				assert.True(t, strings.HasPrefix(out, "=== "), "demos open with a banner")
				assert.Contains(t, out, "=== Demo Complete ===")
			})
		}
	})

	t.Run("lookup by name", func(t *testing.T) {
		d, err := cat.Get("slog")
		require.NoError(t, err)
		assert.Equal(t, "go1.21", d.Release)

		_, err = cat.Get("missing")
		require.Error(t, err)
	})
}
