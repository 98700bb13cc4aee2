package testutil

import (
	"time"

	"github.com/billingsdk/billingsdk-go/internal/types"
)

// FrozenClock is a types.Clock pinned to a fixed instant so fixture periods
// and quote math are fully deterministic in tests.
type FrozenClock struct {
	now time.Time
}

var _ types.Clock = (*FrozenClock)(nil)

func NewFrozenClock(now time.Time) *FrozenClock {
	return &FrozenClock{now: now.UTC()}
}

func (c *FrozenClock) Now() time.Time {
	return c.now
}

// Advance moves the frozen instant forward by d.
func (c *FrozenClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
