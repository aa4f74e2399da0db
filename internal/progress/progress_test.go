package progress

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/folio/internal/render"
	"github.com/alexisbeaulieu97/folio/internal/schedule"
)

const frame = 16 * time.Millisecond

func TestParsePercent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want int
	}{
		{raw: "", want: 0},
		{raw: "75", want: 75},
		{raw: " 75%", want: 75},
		{raw: "+40", want: 40},
		{raw: "abc", want: 0},
		{raw: "12abc", want: 12},
		{raw: "-5", want: 0},
		{raw: "250", want: 100},
		{raw: "99999999999999999999", want: 100},
		{raw: "4.9", want: 4},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.raw, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ParsePercent(tt.raw))
		})
	}
}

func TestDurationGrowsWithTarget(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 900*time.Millisecond, Duration(0))
	assert.Equal(t, 1500*time.Millisecond, Duration(100))
	assert.Less(t, Duration(10), Duration(90))
}

func runUntilDone(t *testing.T, loop *schedule.Loop, a *Animator, fills ...*render.Element) [][]float64 {
	t.Helper()
	history := make([][]float64, len(fills))
	for i := 0; i < 200 && !a.Done(); i++ {
		loop.Advance(frame)
		for j, f := range fills {
			history[j] = append(history[j], f.Width())
		}
	}
	require.True(t, a.Done(), "animation should finish within 200 frames")
	return history
}

func TestAnimationReachesTargetMonotonically(t *testing.T) {
	t.Parallel()

	for _, target := range []int{0, 37, 100} {
		target := target
		t.Run("target_"+strconv.Itoa(target), func(t *testing.T) {
			t.Parallel()

			loop := schedule.NewLoop()
			fill := render.New(render.KindBlock)
			a := New(loop, nil)
			a.Add(fill, target)

			history := runUntilDone(t, loop, a, fill)[0]
			last := -1.0
			for _, w := range history {
				assert.GreaterOrEqual(t, w, last)
				assert.LessOrEqual(t, w, float64(target))
				last = w
			}
			assert.InDelta(t, float64(target), fill.Width(), 1e-9)
		})
	}
}

func TestAnimationStopsRequestingFramesWhenDone(t *testing.T) {
	t.Parallel()

	loop := schedule.NewLoop()
	fill := render.New(render.KindBlock)
	a := New(loop, nil)
	b := a.Add(fill, 50)

	runUntilDone(t, loop, a, fill)
	require.True(t, b.Done())

	fill.SetWidth(-1)
	loop.Advance(frame)
	assert.Equal(t, -1.0, fill.Width(), "no frame should touch a finished bar")
}

func TestFirstFrameStartsTheClock(t *testing.T) {
	t.Parallel()

	loop := schedule.NewLoop()
	loop.Advance(10 * time.Second)

	fill := render.New(render.KindBlock)
	a := New(loop, nil)
	a.Add(fill, 100)

	loop.Advance(frame)
	assert.Zero(t, fill.Width(), "elapsed time is measured from the first frame")

	loop.Advance(750 * time.Millisecond)
	assert.InDelta(t, 50, fill.Width(), 1e-9)
}

func TestBarsAnimateIndependently(t *testing.T) {
	t.Parallel()

	loop := schedule.NewLoop()
	short := render.New(render.KindBlock)
	long := render.New(render.KindBlock)
	a := New(loop, nil)
	a.Add(short, 10)
	a.Add(long, 100)

	loop.Advance(frame)
	loop.Advance(960 * time.Millisecond)
	assert.InDelta(t, 10, short.Width(), 1e-9)
	assert.Less(t, long.Width(), 100.0)
	assert.False(t, a.Done())

	loop.Advance(time.Second)
	assert.True(t, a.Done())
	assert.InDelta(t, 100, long.Width(), 1e-9)
}

func TestSetupReadsBarsFromPage(t *testing.T) {
	t.Parallel()

	fillA := render.New(render.KindBlock).WithClass(ClassFill)
	fillB := render.New(render.KindBlock).WithClass(ClassFill)
	root := render.New(render.KindBlock).Append(
		render.New(render.KindBlock).WithClass(ClassBar).WithAttr(AttrPercent, "80").Append(fillA),
		render.New(render.KindBlock).WithClass(ClassBar).WithAttr(AttrPercent, "oops").Append(fillB),
		render.New(render.KindBlock).WithClass(ClassBar).WithAttr(AttrPercent, "60"),
	)
	loop := schedule.NewLoop()

	a := Setup(render.NewDocument("skills", root), loop, nil)
	require.NotNil(t, a)
	require.Len(t, a.Bars(), 2, "bars without a fill are skipped")
	assert.Equal(t, 80, a.Bars()[0].Target())
	assert.Equal(t, 0, a.Bars()[1].Target())

	loop.Advance(frame)
	loop.Advance(2 * time.Second)
	assert.InDelta(t, 80, fillA.Width(), 1e-9)
	assert.Zero(t, fillB.Width())
}

func TestSetupWithoutBarsIsNoop(t *testing.T) {
	t.Parallel()

	loop := schedule.NewLoop()
	assert.Nil(t, Setup(render.NewDocument("home", nil), loop, nil))
	loop.Advance(frame)
}
