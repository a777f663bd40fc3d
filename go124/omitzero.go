package go124

import (
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Report shows omitzero against omitempty. omitempty never drops a zero
// time.Time (a struct is never "empty"), which forced pointer fields before
// 1.24; omitzero drops any zero value, IsZero-aware.
type Report struct {
	Name       string    `json:"name"`
	Count      int       `json:"count,omitempty"`
	StartedAt  time.Time `json:"started_at,omitempty"`
	FinishedAt time.Time `json:"finished_at,omitzero"`
}

// MarshalReport renders r as compact JSON.
//
//	MarshalReport(Report{Name: "nightly"})
//	  => {"name":"nightly","started_at":"0001-01-01T00:00:00Z"}
func MarshalReport(r Report) (string, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(b), nil
}

// DemoOmitZero narrates the omitzero tag by marshalling the same struct with
// both tags side by side.
func DemoOmitZero(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.24: encoding/json omitzero ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. Zero time.Time: omitempty keeps it, omitzero drops it:")
	out, err := MarshalReport(Report{Name: "nightly"})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   -> %s\n", out)
	fmt.Fprintln(w, "   (started_at uses omitempty and leaks the zero timestamp;")
	fmt.Fprintln(w, "    finished_at uses omitzero and disappears)")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Non-zero values are kept by both:")
	ts := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	out, err = MarshalReport(Report{Name: "nightly", Count: 2, StartedAt: ts, FinishedAt: ts.Add(time.Hour)})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "   -> %s\n", out)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. omitzero consults IsZero(), so it composes with custom types:")
	fmt.Fprintln(w, "   -> any type with an IsZero() bool method gets the same treatment")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
