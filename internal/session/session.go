// Package session drives the live clock and the visibility-aware session
// timer.
//
// The session timer is a two-state machine. It runs while the page is
// visible and stops while hidden, keeping its count so that counting resumes
// rather than restarts. At most one tick source exists at a time: starting a
// running timer and stopping a stopped one are both no-ops. The clock is
// independent and keeps ticking regardless of visibility.
package session

import (
	"time"

	"github.com/alexisbeaulieu97/folio/internal/format"
	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/schedule"
)

const (
	ClockID = "digitalClock"
	TimerID = "sessionTimer"

	TickInterval = time.Second
)

// State is the session timer's activity.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Visibility reports whether the page is currently hidden.
type Visibility interface {
	Hidden() bool
}

// Options tunes the controller.
type Options struct {
	// ClockLayout is a time layout for the clock readout.
	ClockLayout string
	// Now supplies wall-clock time. Nil means time.Now.
	Now func() time.Time
	Log *logger.Logger
}

// Controller owns the clock readout, the session readout and the counter.
type Controller struct {
	clock   render.Target
	timer   render.Target
	sched   schedule.Scheduler
	vis     Visibility
	opts    Options
	seconds int
	tick    schedule.Handle
	clockID schedule.Handle
}

// New builds a controller. Nothing runs until Start.
func New(clock, timer render.Target, sched schedule.Scheduler, vis Visibility, opts Options) *Controller {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Controller{clock: clock, timer: timer, sched: sched, vis: vis, opts: opts}
}

// Setup starts the clock and session timer when the page has both readouts
// and subscribes to the page's visibility changes. It returns nil otherwise.
func Setup(doc *render.Document, sched schedule.Scheduler, opts Options) *Controller {
	clock, timer := doc.ByID(ClockID), doc.ByID(TimerID)
	if clock == nil || timer == nil {
		return nil
	}

	c := New(clock, timer, sched, doc, opts)
	c.Start()
	doc.OnVisibilityChange(c.VisibilityChanged)
	return c
}

// Start renders the clock, schedules its refresh and starts the session
// timer if the page is visible.
func (c *Controller) Start() {
	c.updateClock()
	if c.clockID == 0 {
		c.clockID = c.sched.Every(TickInterval, c.updateClock)
	}
	if !c.vis.Hidden() {
		c.Resume()
	}
}

// VisibilityChanged applies the current visibility to the timer.
func (c *Controller) VisibilityChanged() {
	if c.vis.Hidden() {
		c.Pause()
		return
	}
	c.Resume()
}

// Resume moves Stopped to Running. It is a no-op when already running.
func (c *Controller) Resume() {
	if c.tick != 0 {
		return
	}
	c.tick = c.sched.Every(TickInterval, func() {
		c.seconds++
		c.timer.SetText(format.Session(c.seconds))
	})
	c.opts.Log.WithFields(map[string]any{"seconds": c.seconds}).Debug("session timer running")
}

// Pause moves Running to Stopped, keeping the count. It is a no-op when
// already stopped.
func (c *Controller) Pause() {
	if c.tick == 0 {
		return
	}
	c.sched.Cancel(c.tick)
	c.tick = 0
	c.opts.Log.WithFields(map[string]any{"seconds": c.seconds}).Debug("session timer stopped")
}

// Close cancels both the clock and the session timer.
func (c *Controller) Close() {
	c.Pause()
	if c.clockID != 0 {
		c.sched.Cancel(c.clockID)
		c.clockID = 0
	}
}

// State reports whether the session timer is counting.
func (c *Controller) State() State {
	if c.tick != 0 {
		return Running
	}
	return Stopped
}

// Seconds returns the elapsed session seconds.
func (c *Controller) Seconds() int {
	return c.seconds
}

func (c *Controller) updateClock() {
	c.clock.SetText(format.Clock(c.opts.Now(), c.opts.ClockLayout))
}
