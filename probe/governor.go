package probe

import (
	"fmt"
	"time"
)

// governor bounds one probe run in two independent ways: total wall-clock
// time and total layout count. The time check runs between layouts only;
// once a layout's analysis begins it runs to completion, so the worst-case
// timeout overrun is the cost of one layout. The layout cap is deterministic
// and unaffected by timing.
type governor struct {
	now        func() time.Time
	start      time.Time
	timeout    time.Duration
	maxLayouts int

	analyzed bool // at least one layout admitted
	timedOut bool
	capped   bool
}

func newGovernor(opts Options) *governor {
	now := opts.now
	if now == nil {
		now = time.Now
	}
	max := opts.MaxLayouts
	if max <= 0 {
		max = DefaultMaxLayouts
	}
	return &governor{
		now:        now,
		start:      now(),
		timeout:    opts.Timeout,
		maxLayouts: max,
	}
}

// admit decides whether the layout at overall position pos (0-based across
// all masters) may be analyzed. rec receives the timeout warning or the
// truncation note the first time either limit trips.
func (g *governor) admit(pos, total int, rec *recorder) bool {
	if pos >= g.maxLayouts {
		if !g.capped {
			g.capped = true
			rec.note(fmt.Sprintf("layout cap reached: analyzed %d of %d layouts", g.maxLayouts, total))
		}
		return false
	}
	if g.timedOut {
		return false
	}
	if g.timeout > 0 && g.now().Sub(g.start) >= g.timeout {
		g.timedOut = true
		rec.warn(WarnTimeout, msgTimeout)
		return false
	}
	g.analyzed = true
	return true
}

// complete reports whether every layout was analyzed with no truncation.
func (g *governor) complete() bool {
	return !g.timedOut && !g.capped
}
