// Package reveal implements the reveal-on-scroll presenter: a per-block state
// machine that moves from Hidden to Shown when enough of the block is inside
// the viewport.
//
// Visibility notifications come from a Source, so the detection mechanism
// (browser intersection testing, scroll polling, a test harness) can be swapped.
// Presenters are driven from a single event loop and are not safe for
// concurrent use.
package reveal

import (
	"errors"
	"fmt"
	"time"
)

// ErrSourceUnavailable is returned by Mount when no visibility notifications can
// be delivered. The presenter is already Shown when this error is returned.
var ErrSourceUnavailable = errors.New("reveal: visibility source unavailable")

// State is the visual state of a block
type State int

const (
	Hidden State = iota
	Shown
)

func (s State) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Shown:
		return "shown"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ParseState is the inverse of State.String
func ParseState(s string) (State, error) {
	switch s {
	case "hidden":
		return Hidden, nil
	case "shown":
		return Shown, nil
	default:
		return Hidden, fmt.Errorf("reveal: unknown state %q", s)
	}
}

// Defaults used by DefaultOptions and Normalize
const (
	DefaultThreshold = 0.2
	DefaultDuration  = 500 * time.Millisecond
	DefaultOffset    = 24.0
	DefaultEasing    = "cubic-bezier(0.22, 1, 0.36, 1)"
)

// Options configures a presenter
type Options struct {
	// Threshold is the fraction of the block's area that must intersect the
	// viewport. Zero means any intersection.
	Threshold float64
	// Once detaches the presenter after the first reveal
	Once bool
	// Duration of the visual transition
	Duration time.Duration
	// Offset is the vertical offset of the hidden style, in CSS pixels
	Offset float64
	// Easing is a CSS timing function
	Easing string
}

// DefaultOptions returns a trigger-once presenter with a 20% threshold
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Once:      true,
		Duration:  DefaultDuration,
		Offset:    DefaultOffset,
		Easing:    DefaultEasing,
	}
}

// WithThreshold returns a copy of o with the given threshold
func (o Options) WithThreshold(threshold float64) Options {
	o.Threshold = threshold
	return o
}

// Normalize clamps the threshold into [0, 1] and fills unset visual fields
func (o Options) Normalize() Options {
	switch {
	case o.Threshold < 0 || o.Threshold != o.Threshold: // NaN
		o.Threshold = 0
	case o.Threshold > 1:
		o.Threshold = 1
	}
	if o.Duration <= 0 {
		o.Duration = DefaultDuration
	}
	if o.Offset == 0 {
		o.Offset = DefaultOffset
	}
	if o.Easing == "" {
		o.Easing = DefaultEasing
	}
	return o
}

// Entry is a single visibility notification
type Entry struct {
	// Ratio is the fraction of the block's area inside the viewport
	Ratio float64
	// Intersecting is true when the block touches the viewport at all
	Intersecting bool
}

// Source delivers visibility notifications for a target. Observe registers fn
// and returns a stop function that unregisters it; stop must be safe to call
// more than once.
type Source interface {
	Observe(target string, threshold float64, fn func(Entry)) (stop func(), err error)
}

// Style is one end of the reveal transition
type Style struct {
	Opacity float64
	OffsetY float64
}

// Transition describes the visual interpolation applied on reveal
type Transition struct {
	From     Style
	To       Style
	Duration time.Duration
	Easing   string
}

// Presenter owns the RevealState of one rendered block
type Presenter struct {
	target      string
	opts        Options
	state       State
	transitions int
	mounted     bool
	mounts      int
	stop        func()
	onChange    func(State)
}

// New creates a Hidden presenter for target
func New(target string, opts Options) *Presenter {
	return &Presenter{
		target: target,
		opts:   opts.Normalize(),
		state:  Hidden,
	}
}

// Target returns the id of the observed block
func (p *Presenter) Target() string { return p.target }

// Options returns the normalized options
func (p *Presenter) Options() Options { return p.opts }

// State returns the current state
func (p *Presenter) State() State { return p.state }

// Transitions returns how many state changes happened since New
func (p *Presenter) Transitions() int { return p.transitions }

// Mounted reports whether the presenter is attached to a source
func (p *Presenter) Mounted() bool { return p.mounted }

// OnChange registers a callback invoked after every state change
func (p *Presenter) OnChange(fn func(State)) {
	p.onChange = fn
}

// Transition returns the visual interpolation for this presenter
func (p *Presenter) Transition() Transition {
	return Transition{
		From:     Style{Opacity: 0, OffsetY: p.opts.Offset},
		To:       Style{Opacity: 1, OffsetY: 0},
		Duration: p.opts.Duration,
		Easing:   p.opts.Easing,
	}
}

// Mount attaches the presenter to src. When src is nil, fails or panics,
// the block is shown immediately so content is never stuck hidden.
// Every mount starts Hidden with a zero transition count, so a block
// unmounted and mounted again animates in again.
func (p *Presenter) Mount(src Source) (err error) {
	if p.mounted {
		return nil
	}
	p.mounted = true
	p.mounts++
	p.state = Hidden
	p.transitions = 0
	gen := p.mounts

	if src == nil {
		p.show()
		return fmt.Errorf("%w: no source for %q", ErrSourceUnavailable, p.target)
	}

	defer func() {
		if r := recover(); r != nil {
			p.stop = nil
			p.show()
			err = fmt.Errorf("%w: observing %q panicked: %v", ErrSourceUnavailable, p.target, r)
		}
	}()

	stop, obsErr := src.Observe(p.target, p.opts.Threshold, func(e Entry) {
		// entries from a source of an earlier mount are stale
		if gen == p.mounts {
			p.handle(e)
		}
	})
	if obsErr != nil {
		p.show()
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, obsErr)
	}
	if !p.mounted {
		// Unmounted or detached synchronously from inside Observe.
		if stop != nil {
			stop()
		}
		return nil
	}
	if p.opts.Once && p.state == Shown {
		// Revealed by an entry delivered synchronously from inside Observe.
		if stop != nil {
			stop()
		}
		return nil
	}
	p.stop = stop
	return nil
}

// Unmount detaches the presenter. Later entries are ignored.
func (p *Presenter) Unmount() {
	p.mounted = false
	p.detach()
}

func (p *Presenter) handle(e Entry) {
	if !p.mounted {
		return
	}
	if p.opts.Once && p.state == Shown {
		return
	}

	if p.reached(e) {
		p.show()
		if p.opts.Once {
			p.detach()
		}
		return
	}
	if !p.opts.Once && p.state == Shown {
		p.set(Hidden)
	}
}

func (p *Presenter) reached(e Entry) bool {
	return e.Intersecting && e.Ratio >= p.opts.Threshold
}

func (p *Presenter) show() {
	p.set(Shown)
}

func (p *Presenter) set(s State) {
	if p.state == s {
		return
	}
	p.state = s
	p.transitions++
	if p.onChange != nil {
		p.onChange(s)
	}
}

func (p *Presenter) detach() {
	if p.stop != nil {
		stop := p.stop
		p.stop = nil
		stop()
	}
}
