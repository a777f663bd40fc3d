package go120

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors used by the validation example.
var (
	ErrNameMissing = errors.New("name is missing")
	ErrPortRange   = errors.New("port out of range")
	ErrHostMissing = errors.New("host is missing")
)

// Endpoint is a plain value holder validated by the demo.
type Endpoint struct {
	Name string
	Host string
	Port int
}

// Validate checks every field and reports all problems at once via
// errors.Join instead of stopping at the first.
//
//	Validate(Endpoint{})                  => "name is missing\nhost is missing\nport out of range"
//	Validate(Endpoint{Name: "api", Host: "db", Port: 5432}) => nil
func Validate(e Endpoint) error {
	var errs []error
	if e.Name == "" {
		errs = append(errs, ErrNameMissing)
	}
	if e.Host == "" {
		errs = append(errs, ErrHostMissing)
	}
	if e.Port < 1 || e.Port > 65535 {
		errs = append(errs, ErrPortRange)
	}
	return errors.Join(errs...)
}

// WrapBoth wraps two errors into one message; since Go 1.20 a single
// fmt.Errorf may carry several %w verbs and errors.Is sees through all of
// them.
func WrapBoth(op string, first, second error) error {
	return fmt.Errorf("%s failed: %w (after %w)", op, first, second)
}

// DemoMultiError narrates errors.Join and multi-%w wrapping: building an
// error tree, then walking it with errors.Is and errors.As.
func DemoMultiError(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.20: Wrapping Multiple Errors ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. errors.Join collects every validation failure:")
	err := Validate(Endpoint{Port: -1})
	fmt.Fprintf(w, "   -> Validate(empty endpoint):\n")
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Fprintf(w, "      %s\n", line)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. errors.Is matches every joined branch:")
	fmt.Fprintf(w, "   -> errors.Is(err, ErrNameMissing): %v\n", errors.Is(err, ErrNameMissing))
	fmt.Fprintf(w, "   -> errors.Is(err, ErrPortRange):   %v\n", errors.Is(err, ErrPortRange))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. A valid endpoint joins zero errors, which is nil:")
	fmt.Fprintf(w, "   -> Validate(api/db:5432): %v\n", Validate(Endpoint{Name: "api", Host: "db", Port: 5432}))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "4. fmt.Errorf now accepts several %w verbs:")
	wrapped := WrapBoth("sync", ErrHostMissing, ErrPortRange)
	fmt.Fprintf(w, "   -> %v\n", wrapped)
	fmt.Fprintf(w, "   -> errors.Is(wrapped, ErrHostMissing): %v\n", errors.Is(wrapped, ErrHostMissing))
	fmt.Fprintf(w, "   -> errors.Is(wrapped, ErrPortRange):   %v\n", errors.Is(wrapped, ErrPortRange))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
