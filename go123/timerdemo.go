package go123

import (
	"fmt"
	"io"
	"time"
)

// DemoTimers narrates the 1.23 timer rework: timer channels are unbuffered,
// Stop and Reset no longer need the drain dance, and unreferenced timers are
// collected even before they fire.
func DemoTimers(w io.Writer) error {
	fmt.Fprintln(w, "=== Go 1.23: Timer Semantics ===")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "1. Reset without draining the channel first:")
	t := time.NewTimer(5 * time.Millisecond)
	time.Sleep(10 * time.Millisecond) // timer has fired by now
	t.Reset(5 * time.Millisecond)     // pre-1.23 this risked a stale value in the channel
	<-t.C
	fmt.Fprintln(w, "   -> Reset after expiry delivered exactly one fresh tick")
	fmt.Fprintln(w, "   -> (pre-1.23 code had to Stop, drain t.C, then Reset)")

	fmt.Fprintln(w)
	fmt.Fprintln(w, "2. Stop prevents delivery even if the race was close:")
	t2 := time.NewTimer(time.Hour)
	stopped := t2.Stop()
	select {
	case <-t2.C:
		fmt.Fprintln(w, "   -> unexpected tick")
	default:
		fmt.Fprintf(w, "   -> Stop() = %v and the channel stays empty\n", stopped)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "3. The channel is unbuffered now, so a tick never goes stale:")
	t3 := time.NewTimer(5 * time.Millisecond)
	tick := <-t3.C
	fmt.Fprintf(w, "   -> received tick (non-zero: %v); len(t.C) is always %d\n", !tick.IsZero(), len(t3.C))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "=== Demo Complete ===")
	return nil
}
