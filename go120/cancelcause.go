package go120

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrQuotaExceeded is the cause used by the demo cancellation.
var ErrQuotaExceeded = errors.New("request quota exceeded")

// WaitForCause blocks until ctx is done and returns the recorded cause.
// Before Go 1.20 callers only saw context.Canceled; WithCancelCause keeps
// the reason.
func WaitForCause(ctx context.Context) error {
	<-ctx.Done()
	return context.Cause(ctx)
}

// DemoCancelCause narrates context.WithCancelCause: the generic
// context.Canceled is still reported by ctx.Err, while context.Cause
// surfaces the domain-specific reason.
func DemoCancelCause(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.20: context.WithCancelCause ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. Cancel with a descriptive cause:")
	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(ErrQuotaExceeded)

	fmt.Fprintf(w, "   -> ctx.Err():          %v\n", ctx.Err())
	fmt.Fprintf(w, "   -> context.Cause(ctx): %v\n", context.Cause(ctx))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. A goroutine waiting on the context sees the cause, not just Canceled:")
	got := WaitForCause(ctx)
	fmt.Fprintf(w, "   -> WaitForCause: %v\n", got)
	fmt.Fprintf(w, "   -> errors.Is(cause, ErrQuotaExceeded): %v\n", errors.Is(got, ErrQuotaExceeded))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. Cancelling with nil falls back to context.Canceled:")
	ctx2, cancel2 := context.WithCancelCause(context.Background())
	cancel2(nil)
	fmt.Fprintf(w, "   -> context.Cause(ctx): %v\n", context.Cause(ctx2))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
