package httpclient

import (
	"context"
	"fmt"
	"io"
	"time"
)

// DemoChat narrates the chat pass-through against a built-in in-process
// endpoint.
func DemoChat(w io.Writer) error {
	return DemoChatAgainst(w, "")
}

// DemoChatAgainst runs the chat demo against base, or against a local
// httptest endpoint when base is empty: construct, POST, GET history. Every
// call is a single request/response; the wrapper adds nothing beyond the
// JSON plumbing.
func DemoChatAgainst(w io.Writer, base string) error {
	fmt.Fprintln(w, "=== HTTP Client: Chat Service Wrapper ===")
	fmt.Fprintln(w)

	if base == "" {
		srv := newChatServer()
		defer srv.Close()
		base = srv.URL
	}
	chat := NewChatService(base)
	ctx := context.Background()

	fmt.Fprintln(w, "1. Sending messages (POST /messages):")
	for _, m := range []struct{ from, text string }{
		{"ana", "hello"},
		{"ben", "hi ana"},
		{"ana", "shipping the demo today"},
	} {
		sent, err := chat.Send(ctx, m.from, m.text)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "   -> sent from=%s text=%q (id assigned: %v)\n", sent.From, sent.Text, sent.ID != "")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Full history (GET /messages):")
	history, err := chat.History(ctx, "")
	if err != nil {
		return err
	}
	for i, m := range history {
		fmt.Fprintf(w, "   [%d] %s: %s\n", i, m.From, m.Text)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. Filtered history (GET /messages?from=ana):")
	history, err = chat.History(ctx, "ana")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   -> %d of 3 messages are from ana\n", len(history))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}

// DemoWeather narrates the weather pass-through against a built-in
// in-process endpoint.
func DemoWeather(w io.Writer) error {
	return DemoWeatherAgainst(w, "")
}

// DemoWeatherAgainst runs the weather demo against base, or against a local
// httptest endpoint when base is empty. It covers the async variant too:
// one goroutine, one buffered channel, one receive.
func DemoWeatherAgainst(w io.Writer, base string) error {
	fmt.Fprintln(w, "=== HTTP Client: Weather Service Wrapper ===")
	fmt.Fprintln(w)

	if base == "" {
		srv := newWeatherServer()
		defer srv.Close()
		base = srv.URL
	}
	weather := NewWeatherService(base)
	ctx := context.Background()

	fmt.Fprintln(w, "1. Synchronous call (GET /weather?city=lisbon):")
	reading, err := weather.Current(ctx, "lisbon")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   -> %s: %.1f°C, %s, humidity %d%%\n",
		reading.City, reading.TempC, reading.Conditions, reading.Humidity)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Unknown city surfaces the HTTP status unchanged:")
	_, err = weather.Current(ctx, "atlantis")
	fmt.Fprintf(w, "   -> error: %v\n", err)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. Async call: kick off the request, await the single result:")
	resultCh := weather.CurrentAsync(ctx, "bergen")
	fmt.Fprintln(w, "   -> request in flight, caller is free to do other work...")
	select {
	case res := <-resultCh:
		if res.Err != nil {
			return res.Err
		}
		fmt.Fprintf(w, "   -> async result: %s %.1f°C (%s)\n", res.Value.City, res.Value.TempC, res.Value.Conditions)
	case <-time.After(5 * time.Second):
		fmt.Fprintln(w, "   -> timed out waiting for the reading")
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
