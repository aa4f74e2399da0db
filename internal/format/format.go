// Package format holds the display formatting shared by the live readouts.
package format

import (
	"fmt"
	"time"
)

// DefaultClockLayout is a 12-hour clock with seconds.
const DefaultClockLayout = "3:04:05 PM"

// MMSS renders elapsed seconds as zero-padded minutes and seconds. Minutes
// widen past two digits instead of wrapping; negative input renders as 00:00.
func MMSS(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// Session renders the session readout.
func Session(seconds int) string {
	return "Session: " + MMSS(seconds)
}

// Clock renders the wall-clock readout for t using layout, falling back to
// DefaultClockLayout when layout is empty.
func Clock(t time.Time, layout string) string {
	if layout == "" {
		layout = DefaultClockLayout
	}
	return "Clock: " + t.Format(layout)
}
