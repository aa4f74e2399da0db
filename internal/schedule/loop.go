// Package schedule runs timed callbacks on the caller's goroutine.
//
// Loop keeps a virtual monotonic clock that only moves when the host calls
// Advance or AdvanceTo. Intervals, timeouts and animation frames registered
// with it therefore run strictly one after another, inside whatever goroutine
// drives the loop, which for the terminal host is the Bubble Tea update loop.
package schedule

import (
	"sort"
	"time"
)

// Handle identifies a registered timer or frame request. The zero Handle is
// never issued.
type Handle uint64

// FrameFunc receives the loop's monotonic timestamp for the frame.
type FrameFunc func(ts time.Duration)

// Scheduler is the timing capability controllers depend on.
type Scheduler interface {
	Every(interval time.Duration, fn func()) Handle
	After(delay time.Duration, fn func()) Handle
	RequestFrame(fn FrameFunc) Handle
	Cancel(h Handle)
	Now() time.Duration
}

// minInterval keeps a zero or negative interval from spinning forever.
const minInterval = time.Millisecond

type timer struct {
	handle   Handle
	due      time.Duration
	interval time.Duration
	fn       func()
}

type frame struct {
	handle Handle
	fn     FrameFunc
}

// Loop is a deterministic Scheduler. It is not safe for concurrent use.
type Loop struct {
	now    time.Duration
	next   Handle
	timers []*timer
	frames []frame
	// batch holds the handles of the frames being run by AdvanceTo that
	// have not run or been cancelled yet.
	batch map[Handle]bool
}

var _ Scheduler = (*Loop)(nil)

// NewLoop returns a loop whose clock starts at zero.
func NewLoop() *Loop {
	return &Loop{}
}

// Now returns the loop's current monotonic time.
func (l *Loop) Now() time.Duration {
	return l.now
}

// Every runs fn each interval until cancelled.
func (l *Loop) Every(interval time.Duration, fn func()) Handle {
	if interval < minInterval {
		interval = minInterval
	}
	return l.addTimer(interval, interval, fn)
}

// After runs fn once after delay.
func (l *Loop) After(delay time.Duration, fn func()) Handle {
	if delay < 0 {
		delay = 0
	}
	return l.addTimer(delay, 0, fn)
}

// RequestFrame runs fn on the next advance.
func (l *Loop) RequestFrame(fn FrameFunc) Handle {
	l.next++
	l.frames = append(l.frames, frame{handle: l.next, fn: fn})
	return l.next
}

// Cancel removes a pending timer or frame. Unknown handles are ignored.
func (l *Loop) Cancel(h Handle) {
	for i, t := range l.timers {
		if t.handle == h {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return
		}
	}
	for i, f := range l.frames {
		if f.handle == h {
			l.frames = append(l.frames[:i], l.frames[i+1:]...)
			return
		}
	}
	delete(l.batch, h)
}

// Active reports whether h still refers to a pending timer or frame.
func (l *Loop) Active(h Handle) bool {
	for _, t := range l.timers {
		if t.handle == h {
			return true
		}
	}
	for _, f := range l.frames {
		if f.handle == h {
			return true
		}
	}
	return l.batch[h]
}

// Pending returns the number of registered timers, intervals included.
func (l *Loop) Pending() int {
	return len(l.timers)
}

// Advance moves the clock forward by d. See AdvanceTo.
func (l *Loop) Advance(d time.Duration) {
	l.AdvanceTo(l.now + d)
}

// AdvanceTo moves the clock to t. Timers due at or before t fire in due
// order, ties broken by registration order, with the clock set to each due
// time while the callback runs. Frames requested before this call then run
// once with timestamp t, skipping any cancelled in the meantime. Frames
// requested during the call, from timers or other frames, wait for the next
// advance. Moving backwards is ignored.
func (l *Loop) AdvanceTo(t time.Duration) {
	if t < l.now {
		return
	}

	frames := l.frames
	l.frames = nil
	l.batch = make(map[Handle]bool, len(frames))
	for _, f := range frames {
		l.batch[f.handle] = true
	}

	for {
		due := l.nextDue(t)
		if due == nil {
			break
		}
		l.now = due.due
		if due.interval > 0 {
			due.due += due.interval
		} else {
			l.Cancel(due.handle)
		}
		due.fn()
	}
	l.now = t

	for _, f := range frames {
		if !l.batch[f.handle] {
			continue
		}
		delete(l.batch, f.handle)
		f.fn(t)
	}
	l.batch = nil
}

func (l *Loop) nextDue(limit time.Duration) *timer {
	if len(l.timers) == 0 {
		return nil
	}
	sort.SliceStable(l.timers, func(i, j int) bool {
		if l.timers[i].due == l.timers[j].due {
			return l.timers[i].handle < l.timers[j].handle
		}
		return l.timers[i].due < l.timers[j].due
	})
	if l.timers[0].due > limit {
		return nil
	}
	return l.timers[0]
}

func (l *Loop) addTimer(delay, interval time.Duration, fn func()) Handle {
	l.next++
	l.timers = append(l.timers, &timer{
		handle:   l.next,
		due:      l.now + delay,
		interval: interval,
		fn:       fn,
	})
	return l.next
}
