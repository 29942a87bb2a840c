package testutil

import "time"

// FixedTime is the instant FixedClock always reports.
var FixedTime = time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

func FixedClock() time.Time { return FixedTime }

// StepClock returns a clock that advances by step on every call, starting
// at FixedTime.
func StepClock(step time.Duration) func() time.Time {
	next := FixedTime
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}
