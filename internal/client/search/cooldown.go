package search

import (
	"context"
	"strconv"
	"time"

	"github.com/mpavlenko/recipekeeper/internal/client/repositories/metadata"
	"github.com/mpavlenko/recipekeeper/internal/clock"
)

// DefaultCooldown is how long searches are refused after the key pool is
// exhausted.
const DefaultCooldown = 24 * time.Hour

// Cooldown persists an absolute expiry timestamp and derives the remaining
// window from the clock on every read. Deriving from an absolute instant
// (rather than decrementing a counter) keeps the countdown correct across
// app suspension and restarts.
type Cooldown struct {
	meta  metadata.Repository
	clock clock.Clock
}

func NewCooldown(meta metadata.Repository, clk clock.Clock) *Cooldown {
	return &Cooldown{meta: meta, clock: clk}
}

// Start persists an expiry of now+d. Overwriting an already-running cooldown
// is fine: the new expiry is equal or later since the duration is fixed.
func (c *Cooldown) Start(ctx context.Context, d time.Duration) error {
	target := c.clock.Now().Add(d).Unix()
	return c.meta.Set(ctx, metadata.KeySearchCooldownUntil, []byte(strconv.FormatInt(target, 10)))
}

// Remaining returns the seconds left on the cooldown, zero if none is
// active. An expired record is cleared as a side effect so subsequent reads
// are cheap.
func (c *Cooldown) Remaining(ctx context.Context) (int64, error) {
	raw, err := c.meta.Get(ctx, metadata.KeySearchCooldownUntil)
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}

	target, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		// corrupt record: drop it rather than lock the user out
		_ = c.meta.Delete(ctx, metadata.KeySearchCooldownUntil)
		return 0, nil
	}

	remaining := target - c.clock.Now().Unix()
	if remaining <= 0 {
		if err := c.meta.Delete(ctx, metadata.KeySearchCooldownUntil); err != nil {
			return 0, err
		}
		return 0, nil
	}
	return remaining, nil
}

// Watch invokes fn with the remaining seconds once per interval until the
// cooldown expires or ctx is cancelled. Intended to be called as a
// goroutine driving a countdown display.
func (c *Cooldown) Watch(ctx context.Context, interval time.Duration, fn func(remaining int64)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			remaining, err := c.Remaining(ctx)
			if err != nil {
				continue
			}
			fn(remaining)
			if remaining == 0 {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}
