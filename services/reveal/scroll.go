package reveal

import "math"

// Rect is an element box in document coordinates (CSS pixels)
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Area returns the rect area, zero for degenerate rects
func (r Rect) Area() float64 {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Viewport is the visible part of the document
type Viewport struct {
	ScrollX, ScrollY float64
	Width, Height    float64
}

// Rect returns the viewport box in document coordinates
func (v Viewport) Rect() Rect {
	return Rect{X: v.ScrollX, Y: v.ScrollY, Width: v.Width, Height: v.Height}
}

// Intersect returns the visibility of rect inside the viewport. Zero-area
// rects never intersect.
func Intersect(rect Rect, vp Viewport) Entry {
	area := rect.Area()
	if area == 0 {
		return Entry{}
	}
	view := vp.Rect()
	w := overlap(rect.X, rect.Width, view.X, view.Width)
	h := overlap(rect.Y, rect.Height, view.Y, view.Height)
	if w < 0 || h < 0 {
		return Entry{}
	}
	// Edge-adjacent boxes intersect with a zero ratio, matching IntersectionObserver.
	return Entry{Ratio: math.Min(1, (w*h)/area), Intersecting: true}
}

// overlap is the length of [start, start+size) inside [vstart, vstart+vsize).
// A span contained in the window yields size exactly, so fully visible rects
// report a ratio of 1 regardless of float rounding at non-integer offsets.
func overlap(start, size, vstart, vsize float64) float64 {
	if start >= vstart && start+size <= vstart+vsize {
		return size
	}
	return math.Min(start+size, vstart+vsize) - math.Max(start, vstart)
}

// IntersectionRatio returns the fraction of rect inside the viewport
func IntersectionRatio(rect Rect, vp Viewport) float64 {
	return Intersect(rect, vp).Ratio
}

type observer struct {
	target string
	fn     func(Entry)
	active bool
}

// ScrollSource is a polling Source: element rects are registered up front and
// every Scroll call recomputes visibility and notifies observers synchronously.
type ScrollSource struct {
	rects     map[string]Rect
	observers []*observer
	viewport  *Viewport
}

// NewScrollSource creates an empty source
func NewScrollSource() *ScrollSource {
	return &ScrollSource{rects: make(map[string]Rect)}
}

// SetRect records the box of target. The next Scroll uses it.
func (s *ScrollSource) SetRect(target string, r Rect) {
	s.rects[target] = r
}

// Observe registers fn for target. If a viewport is already known, the current
// visibility is delivered right away, like IntersectionObserver's initial
// callback.
func (s *ScrollSource) Observe(target string, threshold float64, fn func(Entry)) (func(), error) {
	o := &observer{target: target, fn: fn, active: true}
	s.observers = append(s.observers, o)
	stop := func() { s.remove(o) }
	if s.viewport != nil {
		s.deliver(o, *s.viewport)
	}
	return stop, nil
}

// Scroll moves the viewport and notifies every active observer
func (s *ScrollSource) Scroll(vp Viewport) {
	s.viewport = &vp
	snapshot := make([]*observer, len(s.observers))
	copy(snapshot, s.observers)
	for _, o := range snapshot {
		s.deliver(o, vp)
	}
}

// Observers returns the number of active observers
func (s *ScrollSource) Observers() int {
	return len(s.observers)
}

func (s *ScrollSource) deliver(o *observer, vp Viewport) {
	if !o.active {
		return
	}
	r, ok := s.rects[o.target]
	if !ok {
		return
	}
	o.fn(Intersect(r, vp))
}

func (s *ScrollSource) remove(o *observer) {
	if !o.active {
		return
	}
	o.active = false
	for i, cur := range s.observers {
		if cur == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}
