package recommend

import (
	"context"
	"time"
)

// DefaultTipInterval is how long each loading tip stays on screen.
const DefaultTipInterval = 2500 * time.Millisecond

var tips = []string{
	"Tip: A balanced PSU ensures long GPU life.",
	"Did you know? PCIe 4.0 GPUs can run on PCIe 3.0 slots.",
	"TDP ≠ power draw, but it's close enough for compatibility.",
	"Bottlenecks happen when CPU can't keep up with GPU.",
}

// Tips returns the loading tips in rotation order.
func Tips() []string {
	out := make([]string, len(tips))
	copy(out, tips)
	return out
}

// Tip returns the tip at index i, wrapping around the list.
func Tip(i int) string {
	n := len(tips)
	return tips[((i%n)+n)%n]
}

// NextTip returns the index following i.
func NextTip(i int) int {
	return (i + 1) % len(tips)
}

// Rotate calls show with the first tip and then with the next one every
// interval until ctx is done. It blocks; run it in its own goroutine.
func Rotate(ctx context.Context, interval time.Duration, show func(string)) {
	if interval <= 0 {
		interval = DefaultTipInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	i := 0
	show(Tip(i))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			i = NextTip(i)
			show(Tip(i))
		}
	}
}
