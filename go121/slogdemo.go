package go121

import (
	"fmt"
	"io"
	"log/slog"
)

// NewExampleLogger builds a text slog.Logger writing to w with timestamps
// stripped, so its output is reproducible in tests and docs.
func NewExampleLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// NewExampleJSONLogger is the JSON-handler variant of NewExampleLogger.
func NewExampleJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}

// DemoSlog narrates log/slog: leveled structured records, typed attrs,
// groups, and handler-agnostic output.
func DemoSlog(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.21: Structured Logging with log/slog ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. Text handler with key=value attrs:")
	logger := NewExampleLogger(w, slog.LevelInfo)
	logger.Info("demo started", "release", "go1.21", "samples", 3)
	logger.Warn("sample skipped", slog.String("name", "legacy"), slog.Bool("deprecated", true))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Debug records are dropped below the handler level:")
	logger.Debug("you will not see this")
	fmt.Fprintln(w, "   -> (no output above: level is Info)")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. Groups namespace their attrs:")
	logger.Info("request handled",
		slog.Group("req", slog.String("method", "GET"), slog.String("path", "/weather")),
		slog.Int("status", 200),
	)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "4. Same record, JSON handler:")
	jsonLogger := NewExampleJSONLogger(w, slog.LevelInfo)
	jsonLogger.Info("request handled", slog.String("path", "/weather"), slog.Int("status", 200))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "5. With pins shared attrs onto a child logger:")
	child := logger.With("component", "catalogue")
	child.Info("child logger inherits attrs")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
