package composite

import (
	"time"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/chord"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/target"
)

// processEvent runs one source-originated event through the full
// pipeline: value-variant check, intercept-learning watch, profile
// translate, then per translated event chord match, intercept filter,
// and emission to targets (where the filtered-events map is applied).
func (c *CompositeDevice) processEvent(sourceID string, evt capability.NativeEvent) {
	if c.suspended {
		return
	}

	c.sourceErrors[sourceID] = 0

	// Capability/value type mismatches never enter the pipeline: the
	// event is dropped and counted, with no state change.
	if !capability.ValidValue(evt.Capability, evt.Value) {
		c.invalidCount++

		return
	}

	if c.interceptLearn(evt) {
		return
	}

	translated := c.translate(evt)

	for _, te := range translated {
		c.dispatchOne(te)
	}
}

// interceptLearn watches for the configured activation/deactivation chords
// while in Pass or All mode, transitioning intercept on match. Returns
// true when evt was consumed by the learning watch and must not continue
// down the normal pipeline.
func (c *CompositeDevice) interceptLearn(evt capability.NativeEvent) bool {
	if b, ok := evt.Value.(capability.Bool); ok && b.Pressed {
		c.recentActivate[evt.Capability] = time.Now()
	}

	switch c.intercept {
	case InterceptPass:
		if len(c.activateDefs) > 0 && c.requirementsHeld(c.activateDefs, evt) {
			c.releaseAllHeld()
			c.intercept = InterceptAll
			c.clearRecent()
			c.toControlPlane(evt)

			return true
		}
	case InterceptAll:
		if len(c.deactivateDefs) > 0 && c.requirementsHeld(c.deactivateDefs, evt) {
			c.releaseAllHeld()
			c.intercept = InterceptPass
			c.clearRecent()
			c.toControlPlane(evt)

			return true
		}
	}

	// While in Pass or All mode, events naming a capability that
	// participates in either intercept-learning chord never reach a
	// target or the chord matcher on their own: they arm the transition
	// and are surfaced only on the control plane. In None mode everything
	// flows.
	if (c.intercept == InterceptPass || c.intercept == InterceptAll) && c.isLearningCapability(evt.Capability) {
		c.toControlPlane(evt)

		return true
	}

	return false
}

func (c *CompositeDevice) toControlPlane(evt capability.NativeEvent) {
	if c.controlPlaneSink != nil {
		c.controlPlaneSink(evt)
	}
}

func (c *CompositeDevice) clearRecent() {
	c.recentActivate = make(map[capability.Capability]time.Time)
}

func (c *CompositeDevice) isLearningCapability(cp capability.Capability) bool {
	for _, r := range c.activateDefs {
		if r.Capability == cp {
			return true
		}
	}

	for _, r := range c.deactivateDefs {
		if r.Capability == cp {
			return true
		}
	}

	return false
}

// requirementsHeld reports whether evt completes a set of requirements
// that are all within chordTTL of one another, using recentActivate as
// the held-within-window bookkeeping.
func (c *CompositeDevice) requirementsHeld(reqs []chord.Requirement, evt capability.NativeEvent) bool {
	matched := false

	for _, r := range reqs {
		if r.Capability == evt.Capability {
			matched = true
		}
	}

	if !matched {
		return false
	}

	now := time.Now()

	for _, r := range reqs {
		t, ok := c.recentActivate[r.Capability]
		if !ok || now.Sub(t) > c.chordTTL {
			return false
		}
	}

	return true
}

// translate applies the active profile's rules to evt, expanding one
// source capability into zero or more target-bound NativeEvents. With no
// matching rule, the event passes through unchanged under its own
// capability name.
func (c *CompositeDevice) translate(evt capability.NativeEvent) []capability.NativeEvent {
	if c.profile == nil {
		return []capability.NativeEvent{evt}
	}

	var out []capability.NativeEvent

	matched := false

	for _, rule := range c.profile.Rules {
		if rule.Source != evt.Capability.String() {
			continue
		}

		matched = true

		if rule.MinThreshold != nil {
			if s, ok := evt.Value.(capability.Scalar); ok && s.Value < *rule.MinThreshold {
				continue
			}
		}

		for _, targetName := range rule.Targets {
			cp, ok := capability.ParseName(targetName)
			if !ok {
				continue
			}

			out = append(out, capability.NativeEvent{Capability: cp, Value: evt.Value})
		}
	}

	if !matched {
		return []capability.NativeEvent{evt}
	}

	return out
}

// dispatchOne runs a single translated event through the intercept filter,
// chord matcher, and target emission. Chord emissions pass the same
// intercept gate as ordinary events, checked against each emitted
// capability: in All mode nothing reaches a target, and in GamepadOnly
// mode a gamepad-family emission is diverted to the control plane.
func (c *CompositeDevice) dispatchOne(evt capability.NativeEvent) {
	if c.chordMatcher != nil {
		if emitted := c.chordMatcher.Append(evt); emitted != nil {
			for _, e := range emitted {
				if c.interceptAllows(e.Capability) {
					c.emitToTargets(e)
				} else {
					c.toControlPlane(e)
				}
			}

			return
		}
	}

	if c.interceptAllows(evt.Capability) {
		c.emitToTargets(evt)
	} else {
		c.toControlPlane(evt)
	}
}

// interceptAllows reports whether cp should reach targets under the
// current intercept mode:
//   - None / Pass: forwarded to targets (Pass additionally diverts the
//     activation-set capabilities, handled earlier by interceptLearn)
//   - All: blocked, routed to the control plane instead
//   - GamepadOnly: gamepad-family capabilities blocked, everything else
//     forwarded
func (c *CompositeDevice) interceptAllows(cp capability.Capability) bool {
	switch c.intercept {
	case InterceptAll:
		return false
	case InterceptGamepadOnly:
		return !isGamepadCapability(cp)
	default: // InterceptNone, InterceptPass
		return true
	}
}

// isFilteredFor reports whether cp is suppressed for kind, per the
// filtered-events map set via SetFilteredEvents. An entry naming the
// wildcard kind "*" suppresses cp for every target.
func (c *CompositeDevice) isFilteredFor(cp capability.Capability, kind target.Kind) bool {
	set, ok := c.filteredEvents[cp]
	if !ok {
		return false
	}

	return set[kind] || set[target.Kind("*")]
}

// emitToTargets pushes evt onto every attached target whose Capabilities
// include it and which is not filtered out, never blocking on a slow
// target.
func (c *CompositeDevice) emitToTargets(evt capability.NativeEvent) {
	for kind, t := range c.targets {
		if c.isFilteredFor(evt.Capability, kind) {
			continue
		}

		if !acceptsCapability(t, evt.Capability) {
			continue
		}

		select {
		case t.Inbox() <- evt:
		default:
		}
	}
}

func acceptsCapability(t target.Driver, cp capability.Capability) bool {
	for _, c := range t.Capabilities() {
		if c == cp {
			return true
		}
	}

	return false
}

// routeOutput forwards an OutputEvent emitted by a target to every
// attached source whose capability set accepts it.
func (c *CompositeDevice) routeOutput(evt source.OutputEvent) {
	for _, s := range c.sources {
		caps, err := s.Capabilities()
		if err != nil {
			continue
		}

		for _, cp := range caps {
			if cp != evt.Capability {
				continue
			}

			select {
			case s.Commands() <- source.Command{Kind: source.CommandWriteEvent, Output: evt}:
			default:
			}

			break
		}
	}
}
