package go120

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("empty endpoint joins all three failures", func(t *testing.T) {
		err := Validate(Endpoint{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNameMissing)
		assert.ErrorIs(t, err, ErrHostMissing)
		assert.ErrorIs(t, err, ErrPortRange)
		assert.Equal(t, "name is missing\nhost is missing\nport out of range", err.Error())
	})

	t.Run("valid endpoint yields nil", func(t *testing.T) {
		assert.NoError(t, Validate(Endpoint{Name: "api", Host: "db", Port: 5432}))
	})

	t.Run("single failure is not joined with others", func(t *testing.T) {
		err := Validate(Endpoint{Name: "api", Host: "db", Port: 0})
		assert.ErrorIs(t, err, ErrPortRange)
		assert.NotErrorIs(t, err, ErrNameMissing)
	})
}

func TestWrapBoth(t *testing.T) {
	t.Parallel()

	err := WrapBoth("sync", ErrHostMissing, ErrPortRange)
	assert.ErrorIs(t, err, ErrHostMissing)
	assert.ErrorIs(t, err, ErrPortRange)
	assert.Equal(t, "sync failed: host is missing (after port out of range)", err.Error())
}

func TestWaitForCause(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancelCause(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel(ErrQuotaExceeded)
	}()

	err := WaitForCause(ctx)
	require.ErrorIs(t, err, ErrQuotaExceeded)
	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestDemos(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, DemoMultiError(&buf))
	out := buf.String()
	assert.Contains(t, out, "errors.Is(err, ErrNameMissing): true")
	assert.Contains(t, out, "sync failed: host is missing (after port out of range)")

	buf.Reset()
	require.NoError(t, DemoCancelCause(&buf))
	out = buf.String()
	assert.Contains(t, out, "context.Cause(ctx): request quota exceeded")
	assert.Contains(t, out, "ctx.Err():          context canceled")
}
