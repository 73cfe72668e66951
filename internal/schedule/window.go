package schedule

import "time"

// Clock supplies the current time; injected so tests can pin wall time.
type Clock func() time.Time

// Window evaluates whether a time-of-day interval is current.
type Window struct {
	now Clock
	loc *time.Location
}

// NewWindow builds an evaluator running in loc. A nil clock uses time.Now
// and a nil location uses time.Local.
func NewWindow(now Clock, loc *time.Location) *Window {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return &Window{now: now, loc: loc}
}

// IsCurrent reports whether the wall clock falls inside [start, end], both
// inclusive, minute granularity. When target is non-nil and names a calendar
// date other than today, the answer is unconditionally false. Unparseable
// clock strings also yield false; this path is absorbed, never raised.
func (w *Window) IsCurrent(start, end string, target *time.Time) bool {
	now := w.now().In(w.loc)

	if target != nil {
		ty, tm, td := target.Date()
		ny, nm, nd := now.Date()
		if ty != ny || tm != nm || td != nd {
			return false
		}
	}

	startMin, ok := parseClock(start)
	if !ok {
		return false
	}
	endMin, ok := parseClock(end)
	if !ok {
		return false
	}

	nowMin := now.Hour()*60 + now.Minute()
	return startMin <= nowMin && nowMin <= endMin
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(s string) (int, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, false
	}
	return t.Hour()*60 + t.Minute(), true
}
