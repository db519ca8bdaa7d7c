package testutil

import (
	"time"

	"github.com/c-nelson/easytimer/pkg/stopwatch"
)

// FakeClock only moves when told to
type FakeClock struct {
	now time.Time
}

// NewFakeClock returns a FakeClock reading start
func NewFakeClock(start time.Time) *FakeClock {
	return &FakeClock{now: start}
}

func (f *FakeClock) Now() time.Time {
	return f.now
}

// Advance moves the clock forward by d
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}

var _ stopwatch.Clock = new(FakeClock)
