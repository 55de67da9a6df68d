package reveal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersect(t *testing.T) {
	vp := Viewport{ScrollY: 0, Width: 1000, Height: 800}
	tests := []struct {
		name         string
		rect         Rect
		ratio        float64
		intersecting bool
	}{
		{"fully inside", Rect{X: 0, Y: 100, Width: 500, Height: 200}, 1, true},
		{"fully below", Rect{X: 0, Y: 900, Width: 500, Height: 200}, 0, false},
		{"touching bottom edge", Rect{X: 0, Y: 800, Width: 500, Height: 200}, 0, true},
		{"half visible", Rect{X: 0, Y: 700, Width: 500, Height: 200}, 0.5, true},
		{"zero area", Rect{X: 0, Y: 100, Width: 0, Height: 200}, 0, false},
		{"taller than viewport", Rect{X: 0, Y: 0, Width: 1000, Height: 1600}, 0.5, true},
		{"inside at fractional offset", Rect{X: 12.3, Y: 100.37, Width: 333.3, Height: 271.7}, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Intersect(tt.rect, vp)
			assert.InDelta(t, tt.ratio, e.Ratio, 1e-9)
			assert.Equal(t, tt.intersecting, e.Intersecting)
		})
	}
}

func TestIntersectContainedAtFractionalOffsets(t *testing.T) {
	for i := 0; i < 2000; i++ {
		y := 1000 + float64(i)*0.37
		vp := Viewport{ScrollY: y - 50.1, Width: 1000, Height: 800}
		rect := Rect{X: 12.3, Y: y, Width: 333.3, Height: 271.7}

		e := Intersect(rect, vp)
		require.Equal(t, 1.0, e.Ratio, "offset %v", y)
		require.True(t, e.Intersecting)
	}
}

func TestScrollSourceThresholdOneRevealsContainedBlock(t *testing.T) {
	src := NewScrollSource()
	src.SetRect("card-1", Rect{X: 12.3, Y: 1000.37, Width: 333.3, Height: 271.7})
	p := New("card-1", Options{Threshold: 1, Once: true})
	require.NoError(t, p.Mount(src))

	src.Scroll(Viewport{ScrollY: 950.27, Width: 1000, Height: 800})
	assert.Equal(t, Shown, p.State())
}

func TestScrollSourceRevealScenario(t *testing.T) {
	// a 200px block starting below an 800px viewport
	src := NewScrollSource()
	src.SetRect("card-1", Rect{X: 0, Y: 1000, Width: 600, Height: 200})

	p := New("card-1", DefaultOptions())
	require.NoError(t, p.Mount(src))
	assert.Equal(t, 1, src.Observers())

	vp := Viewport{Width: 1200, Height: 800}
	src.Scroll(vp)
	assert.Equal(t, Hidden, p.State())

	// 30px visible: 15% of the block
	vp.ScrollY = 230
	src.Scroll(vp)
	assert.Equal(t, Hidden, p.State())

	// 40px visible: exactly 20%
	vp.ScrollY = 240
	src.Scroll(vp)
	assert.Equal(t, Shown, p.State())
	assert.Equal(t, 0, src.Observers(), "once presenters stop observing")

	// scroll back above the block
	vp.ScrollY = 0
	src.Scroll(vp)
	assert.Equal(t, Shown, p.State())
	assert.Equal(t, 1, p.Transitions())
}

func TestScrollSourceInitialDelivery(t *testing.T) {
	src := NewScrollSource()
	src.SetRect("hero", Rect{X: 0, Y: 0, Width: 1200, Height: 600})
	src.Scroll(Viewport{Width: 1200, Height: 800})

	p := New("hero", DefaultOptions())
	require.NoError(t, p.Mount(src))

	assert.Equal(t, Shown, p.State(), "visible on mount reveals immediately")
	assert.Equal(t, 0, src.Observers())
}

func TestScrollSourceIndependentBlocks(t *testing.T) {
	src := NewScrollSource()
	src.SetRect("a", Rect{Y: 100, Width: 100, Height: 100})
	src.SetRect("b", Rect{Y: 2000, Width: 100, Height: 100})

	a := New("a", DefaultOptions())
	b := New("b", DefaultOptions())
	require.NoError(t, a.Mount(src))
	require.NoError(t, b.Mount(src))

	src.Scroll(Viewport{Width: 1000, Height: 800})
	assert.Equal(t, Shown, a.State())
	assert.Equal(t, Hidden, b.State())
	assert.Equal(t, 1, src.Observers())
}

func TestScrollSourceStopIsIdempotent(t *testing.T) {
	src := NewScrollSource()
	src.SetRect("a", Rect{Y: 100, Width: 100, Height: 100})
	stop, err := src.Observe("a", 0.2, func(Entry) {})
	require.NoError(t, err)

	stop()
	stop()
	assert.Equal(t, 0, src.Observers())
}

func TestScrollSourceUnknownTargetNotNotified(t *testing.T) {
	src := NewScrollSource()
	calls := 0
	_, err := src.Observe("missing", 0.2, func(Entry) { calls++ })
	require.NoError(t, err)

	src.Scroll(Viewport{Width: 1000, Height: 800})
	assert.Equal(t, 0, calls)
}
