package go121

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{1, 2, 3}, Dedupe([]int{3, 1, 3, 2, 1}))
	assert.Empty(t, Dedupe(nil))

	original := []int{5, 4}
	Dedupe(original)
	assert.Equal(t, []int{5, 4}, original, "input must not be mutated")
}

func TestSortByAge(t *testing.T) {
	t.Parallel()

	got := SortByAge([]Person{{"carol", 35}, {"alice", 30}, {"bob", 30}})
	assert.Equal(t, []Person{{"alice", 30}, {"bob", 30}, {"carol", 35}}, got)
}

func TestPruneBelow(t *testing.T) {
	t.Parallel()

	scores := map[string]int{"ana": 80, "ben": 45, "cy": 70}
	got := PruneBelow(scores, 60)

	assert.Equal(t, map[string]int{"ana": 80, "cy": 70}, got)
	assert.Len(t, scores, 3, "input must not be mutated")
}

func TestExampleLoggerOutput(t *testing.T) {
	t.Parallel()

	t.Run("text records are deterministic", func(t *testing.T) {
		var buf bytes.Buffer
		NewExampleLogger(&buf, slog.LevelInfo).Info("demo started", "release", "go1.21")
		assert.Equal(t, "level=INFO msg=\"demo started\" release=go1.21\n", buf.String())
	})

	t.Run("level filters debug", func(t *testing.T) {
		var buf bytes.Buffer
		NewExampleLogger(&buf, slog.LevelInfo).Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("json handler emits json", func(t *testing.T) {
		var buf bytes.Buffer
		NewExampleJSONLogger(&buf, slog.LevelInfo).Info("hi", slog.Int("status", 200))
		assert.JSONEq(t, `{"level":"INFO","msg":"hi","status":200}`, buf.String())
	})
}

func TestDemos(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, DemoSlices(&buf))
	out := buf.String()
	assert.Contains(t, out, "Dedupe([3 1 3 2 1]): [1 2 3]")
	assert.Contains(t, out, "BinarySearch([1 2 3], 2): index=1 found=true")
	assert.Contains(t, out, "slices.Insert([a c], 1, b): [a b c]")

	buf.Reset()
	require.NoError(t, DemoMaps(&buf))
	out = buf.String()
	assert.Contains(t, out, "pruned has 2 entries")
	assert.Contains(t, out, "min(3, 1, 2): 1")
	assert.Contains(t, out, "after clear: len=0")

	buf.Reset()
	require.NoError(t, DemoSlog(&buf))
	out = buf.String()
	assert.Contains(t, out, `level=INFO msg="demo started" release=go1.21 samples=3`)
	assert.Contains(t, out, "req.method=GET")
	assert.Contains(t, out, `"status":200`)
}
