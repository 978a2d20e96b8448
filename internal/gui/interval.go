package gui

import "time"

// interval paces engine steps to the configured inter-generation delay while
// the display loop runs at its own frame rate.
type interval struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

func newInterval(step time.Duration) *interval {
	iv := &interval{step: step}
	iv.accumulator = step
	return iv
}

// Ready reports whether enough time has passed for one more step. Long
// stalls are capped to a single pending step so the simulation never bursts.
func (i *interval) Ready() bool {
	now := time.Now()
	if i.last.IsZero() {
		i.last = now
	}
	i.accumulator += now.Sub(i.last)
	i.last = now

	if i.accumulator >= i.step {
		i.accumulator -= i.step
		if i.accumulator > i.step {
			i.accumulator = i.step
		}
		return true
	}
	return false
}
