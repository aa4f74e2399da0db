// Package progress animates skill bars from empty to their declared percent.
package progress

import (
	"math"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/folio/internal/logger"
	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/schedule"
)

const (
	ClassBar    = "progress"
	ClassFill   = "progress-fill"
	AttrPercent = "data-percent"

	BaseDuration = 900 * time.Millisecond
	PerPoint     = 6 * time.Millisecond
)

// ParsePercent reads the integer prefix of raw, ignoring leading whitespace
// and an optional sign. Anything without leading digits is 0. The result is
// clamped to 0..100.
func ParsePercent(raw string) int {
	s := strings.TrimLeft(raw, " \t\n\r\f\v")
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	n := 0
	for i := 0; i < len(s) && s[i] >= '0' && s[i] <= '9'; i++ {
		n = n*10 + int(s[i]-'0')
		if n > 100 {
			n = 101
		}
	}
	if neg {
		n = -n
	}
	return clamp(n)
}

// Duration is the animation length for a bar: bigger targets take longer.
func Duration(target int) time.Duration {
	return BaseDuration + time.Duration(clamp(target))*PerPoint
}

func clamp(n int) int {
	switch {
	case n < 0:
		return 0
	case n > 100:
		return 100
	default:
		return n
	}
}

// Bar is one running animation.
type Bar struct {
	fill     render.Target
	target   int
	duration time.Duration
	start    time.Duration
	started  bool
	fraction float64
}

// Target returns the percent the bar animates to.
func (b *Bar) Target() int { return b.target }

// Fraction returns how far through its animation the bar is, 0..1.
func (b *Bar) Fraction() float64 { return b.fraction }

// Done reports whether the bar reached its target.
func (b *Bar) Done() bool { return b.fraction >= 1 }

// Animator drives every bar on the page from the host's frame callbacks.
type Animator struct {
	sched schedule.Scheduler
	log   *logger.Logger
	bars  []*Bar
}

// New returns an empty animator.
func New(sched schedule.Scheduler, log *logger.Logger) *Animator {
	return &Animator{sched: sched, log: log}
}

// Setup starts an animation for each progress element on the page. It
// returns nil when the page has none. Bars lacking a fill child are skipped.
func Setup(doc *render.Document, sched schedule.Scheduler, log *logger.Logger) *Animator {
	elements := doc.All(ClassBar)
	if len(elements) == 0 {
		return nil
	}

	a := New(sched, log)
	for _, el := range elements {
		fill := el.Query(ClassFill)
		if fill == nil {
			continue
		}
		raw, _ := el.Attr(AttrPercent)
		a.Add(fill, ParsePercent(raw))
	}
	a.log.WithFields(map[string]any{"bars": len(a.bars)}).Debug("animating progress bars")
	return a
}

// Add starts animating fill towards target percent.
func (a *Animator) Add(fill render.Target, target int) *Bar {
	b := &Bar{fill: fill, target: clamp(target), duration: Duration(target)}
	a.bars = append(a.bars, b)

	var step schedule.FrameFunc
	step = func(ts time.Duration) {
		if !b.started {
			b.start = ts
			b.started = true
		}
		elapsed := ts - b.start
		b.fraction = math.Min(1, float64(elapsed)/float64(b.duration))
		b.fill.SetWidth(b.fraction * float64(b.target))
		if b.fraction < 1 {
			a.sched.RequestFrame(step)
		}
	}
	a.sched.RequestFrame(step)
	return b
}

// Bars returns the animations in page order.
func (a *Animator) Bars() []*Bar {
	return a.bars
}

// Done reports whether every bar finished.
func (a *Animator) Done() bool {
	for _, b := range a.bars {
		if !b.Done() {
			return false
		}
	}
	return true
}
