package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMMSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{name: "zero", seconds: 0, want: "00:00"},
		{name: "under a minute", seconds: 7, want: "00:07"},
		{name: "minute and five", seconds: 65, want: "01:05"},
		{name: "last second of the hour", seconds: 3599, want: "59:59"},
		{name: "past an hour keeps counting minutes", seconds: 3600, want: "60:00"},
		{name: "three digit minutes", seconds: 6000, want: "100:00"},
		{name: "negative clamps", seconds: -5, want: "00:00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, MMSS(tt.seconds))
		})
	}
}

func TestMMSSShape(t *testing.T) {
	t.Parallel()

	for s := 0; s < 3600; s += 37 {
		got := MMSS(s)
		assert.Len(t, got, 5, "seconds %d", s)
		assert.Equal(t, byte(':'), got[2])
	}
}

func TestSessionAndClockLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Session: 01:05", Session(65))

	at := time.Date(2026, 10, 19, 15, 4, 5, 0, time.Local)
	assert.Equal(t, "Clock: 3:04:05 PM", Clock(at, ""))
	assert.Equal(t, "Clock: 15:04:05", Clock(at, "15:04:05"))
}
