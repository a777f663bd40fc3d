package httpclient

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatService(t *testing.T) {
	t.Parallel()

	srv := newChatServer()
	t.Cleanup(srv.Close)
	chat := NewChatService(srv.URL)
	ctx := context.Background()

	sent, err := chat.Send(ctx, "ana", "hello")
	require.NoError(t, err)
	assert.Equal(t, "ana", sent.From)
	assert.Equal(t, "hello", sent.Text)
	_, err = uuid.Parse(sent.ID)
	assert.NoError(t, err, "message IDs are uuids")
	assert.False(t, sent.SentAt.IsZero())

	_, err = chat.Send(ctx, "ben", "hi")
	require.NoError(t, err)

	t.Run("history returns everything", func(t *testing.T) {
		msgs, err := chat.History(ctx, "")
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "hello", msgs[0].Text)
	})

	t.Run("history filters by sender", func(t *testing.T) {
		msgs, err := chat.History(ctx, "ben")
		require.NoError(t, err)
		require.Len(t, msgs, 1)
		assert.Equal(t, "hi", msgs[0].Text)
	})
}

func TestWeatherService(t *testing.T) {
	t.Parallel()

	srv := newWeatherServer()
	t.Cleanup(srv.Close)
	weather := NewWeatherService(srv.URL)
	ctx := context.Background()

	t.Run("known city decodes the reading", func(t *testing.T) {
		reading, err := weather.Current(ctx, "lisbon")
		require.NoError(t, err)
		assert.Equal(t, WeatherReading{City: "lisbon", TempC: 21.5, Conditions: "sunny", Humidity: 55}, reading)
	})

	t.Run("unknown city surfaces the status", func(t *testing.T) {
		_, err := weather.Current(ctx, "atlantis")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})

	t.Run("async delivers exactly one result", func(t *testing.T) {
		res := <-weather.CurrentAsync(ctx, "bergen")
		require.NoError(t, res.Err)
		assert.Equal(t, "bergen", res.Value.City)
	})
}

func TestClientErrors(t *testing.T) {
	t.Parallel()

	t.Run("context cancellation aborts the call", func(t *testing.T) {
		blocked := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			<-r.Context().Done()
		}))
		t.Cleanup(blocked.Close)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		var out map[string]any
		err := New(blocked.URL).GetJSON(ctx, "/slow", &out)
		require.Error(t, err)
	})

	t.Run("non-2xx becomes an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}))
		t.Cleanup(srv.Close)

		err := New(srv.URL).PostJSON(context.Background(), "/x", map[string]int{"a": 1}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "500")
	})
}

func TestDemos(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, DemoChat(&buf))
	out := buf.String()
	assert.Contains(t, out, "sent from=ana text=\"hello\" (id assigned: true)")
	assert.Contains(t, out, "[2] ana: shipping the demo today")
	assert.Contains(t, out, "2 of 3 messages are from ana")

	buf.Reset()
	require.NoError(t, DemoWeather(&buf))
	out = buf.String()
	assert.Contains(t, out, "lisbon: 21.5°C, sunny, humidity 55%")
	assert.Contains(t, out, "404")
	assert.Contains(t, out, "async result: bergen 9.0°C (rain)")
}
