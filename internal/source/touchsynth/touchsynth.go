// Package touchsynth implements driver-local touch synthesis: release
// timers for devices that only emit "down" frames, and tap-to-click
// detection. It is pure bookkeeping over observed touch frames; drivers
// fold its output into their normal event stream.
package touchsynth

import (
	"math"
	"time"

	"github.com/hidbridge/daemon/internal/capability"
)

// DefaultReleaseDelay is the grace window after the last "down" frame
// before an "up" event is synthesized.
const DefaultReleaseDelay = 4 * time.Millisecond

// DefaultClickWindow is the longest press-to-release duration still
// counted as a tap.
const DefaultClickWindow = 150 * time.Millisecond

// DefaultMaxTapDistance is the largest normalized displacement a contact
// may travel and still count as a tap.
const DefaultMaxTapDistance = 0.05

// Options tunes a Tracker. Zero fields take the package defaults;
// ClickCapability == capability.None disables tap-to-click entirely.
type Options struct {
	ReleaseDelay    time.Duration
	ClickWindow     time.Duration
	MaxTapDistance  float64
	ClickCapability capability.Capability
}

// contact is the per-contact synthesis state: the last frame
// instant, the touching flag, and the tap bookkeeping.
type contact struct {
	lastTouch  time.Time
	firstTouch time.Time
	touching   bool
	startX     float64
	startY     float64
	lastX      float64
	lastY      float64
	moved      float64
}

// Tracker synthesizes release and tap-to-click events for one touch zone
// (Touchscreen or Touchpad).
type Tracker struct {
	zone     capability.Capability
	opts     Options
	contacts map[uint8]*contact
	now      func() time.Time
}

// New returns a Tracker for zone with opts' zero fields defaulted.
func New(zone capability.Capability, opts Options) *Tracker {
	if opts.ReleaseDelay <= 0 {
		opts.ReleaseDelay = DefaultReleaseDelay
	}

	if opts.ClickWindow <= 0 {
		opts.ClickWindow = DefaultClickWindow
	}

	if opts.MaxTapDistance <= 0 {
		opts.MaxTapDistance = DefaultMaxTapDistance
	}

	return &Tracker{
		zone:     zone,
		opts:     opts,
		contacts: make(map[uint8]*contact),
		now:      time.Now,
	}
}

// Touch folds one observed frame for a contact, returning the events to
// emit: the frame itself as a NativeEvent, plus any click press/release
// pair an explicit release completes.
func (t *Tracker) Touch(v capability.Touch) []capability.NativeEvent {
	now := t.now()

	out := []capability.NativeEvent{{Capability: t.zone, Value: v}}

	c, ok := t.contacts[v.Index]
	if !ok {
		c = &contact{}
		t.contacts[v.Index] = c
	}

	if v.Touched {
		if !c.touching {
			c.touching = true
			c.firstTouch = now
			c.startX, c.startY = v.X, v.Y
			c.moved = 0
		} else {
			c.moved = math.Max(c.moved, dist(c.startX, c.startY, v.X, v.Y))
		}

		c.lastTouch = now
		c.lastX, c.lastY = v.X, v.Y

		return out
	}

	if c.touching {
		c.touching = false

		return append(out, t.clickEvents(c, now)...)
	}

	return out
}

// Expire synthesizes one "up" frame per contact whose grace window has
// lapsed since its last "down", plus any tap clicks those releases
// complete. Drivers call it between reads.
func (t *Tracker) Expire() []capability.NativeEvent {
	now := t.now()

	var out []capability.NativeEvent

	for index, c := range t.contacts {
		if !c.touching || now.Sub(c.lastTouch) <= t.opts.ReleaseDelay {
			continue
		}

		c.touching = false

		out = append(out, capability.NativeEvent{
			Capability: t.zone,
			Value:      capability.Touch{Index: index, Touched: false, Pressure: 0, X: c.lastX, Y: c.lastY},
		})

		out = append(out, t.clickEvents(c, now)...)
	}

	return out
}

// clickEvents returns the synthetic press+release pair when the just-
// released contact qualifies as a tap.
func (t *Tracker) clickEvents(c *contact, now time.Time) []capability.NativeEvent {
	if t.opts.ClickCapability == capability.None {
		return nil
	}

	if now.Sub(c.firstTouch) > t.opts.ClickWindow || c.moved > t.opts.MaxTapDistance {
		return nil
	}

	return []capability.NativeEvent{
		{Capability: t.opts.ClickCapability, Value: capability.Bool{Pressed: true}},
		{Capability: t.opts.ClickCapability, Value: capability.Bool{Pressed: false}},
	}
}

func dist(x0, y0, x1, y1 float64) float64 {
	return math.Hypot(x1-x0, y1-y0)
}
