// Package chord implements the multi-button chord matcher: a bounded
// ring of recently seen capability/value pairs, each with a TTL, scanned
// after every append against a set of registered chord definitions.
package chord

import (
	"time"

	"github.com/hidbridge/daemon/internal/capability"
)

// DefaultCapacity is the default ring size.
const DefaultCapacity = 32

// DefaultTTL is the default per-entry time-to-live.
const DefaultTTL = 200 * time.Millisecond

// entry is one recently observed event in the ring.
type entry struct {
	capability capability.Capability
	value      capability.Value
	instant    time.Time
	consumed   bool
}

// Predicate reports whether v satisfies a chord's per-capability
// condition (typically "is this a pressed Bool").
type Predicate func(v capability.Value) bool

// Pressed is the predicate most chords use: Bool{Pressed: true}.
func Pressed(v capability.Value) bool {
	b, ok := v.(capability.Bool)

	return ok && b.Pressed
}

// Requirement names one capability a chord needs held, and the predicate
// its value must satisfy.
type Requirement struct {
	Capability capability.Capability
	Match      Predicate
}

// Definition is one registered chord: a set of capabilities that must all
// be concurrently held within the ring's TTL window to fire Emit.
// Ordered, when true, additionally requires the ring to contain the
// requirements' matching entries in ascending timestamp order matching
// Requirements' slice order.
type Definition struct {
	Name         string
	Requirements []Requirement
	Emit         []capability.NativeEvent
	Ordered      bool
}

// Matcher is the bounded, TTL-evicting ring plus the set of registered
// chord definitions.
type Matcher struct {
	capacity int
	ttl      time.Duration
	entries  []entry
	defs     []Definition
	now      func() time.Time
}

// New returns a Matcher with the given ring capacity and entry TTL. defs
// are evaluated in order on every Append; when more than one chord
// matches the same append, the chord with the most requirements wins
// (longer chords preempt shorter prefixes).
func New(capacity int, ttl time.Duration, defs []Definition) *Matcher {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Matcher{
		capacity: capacity,
		ttl:      ttl,
		defs:     defs,
		now:      time.Now,
	}
}

// Append adds evt to the ring (evicting expired entries first, then the
// oldest entry if at capacity), then scans for a chord match. It returns
// the emission of the best-matching chord (longest requirement set), or
// nil if none matched.
func (m *Matcher) Append(evt capability.NativeEvent) []capability.NativeEvent {
	now := m.now()

	m.evictExpired(now)

	if len(m.entries) >= m.capacity {
		m.entries = m.entries[1:]
	}

	m.entries = append(m.entries, entry{capability: evt.Capability, value: evt.Value, instant: now})

	return m.matchBest(now)
}

func (m *Matcher) evictExpired(now time.Time) {
	live := m.entries[:0]

	for _, e := range m.entries {
		if now.Sub(e.instant) <= m.ttl {
			live = append(live, e)
		}
	}

	m.entries = live
}

// matchBest scans every definition, collecting the contributing entry
// indices of every def whose requirements are all satisfied, then commits
// the longest match (ties broken by definition order), consuming its
// entries so they cannot match again.
func (m *Matcher) matchBest(now time.Time) []capability.NativeEvent {
	var (
		bestIdx     int = -1
		bestEntries []int
	)

	for di, def := range m.defs {
		idxs, ok := m.satisfies(def, now)
		if !ok {
			continue
		}

		if len(idxs) > len(bestEntries) {
			bestIdx = di
			bestEntries = idxs
		}
	}

	if bestIdx < 0 {
		return nil
	}

	for _, i := range bestEntries {
		m.entries[i].consumed = true
	}

	return m.defs[bestIdx].Emit
}

// satisfies reports whether def's requirements are all met by non-
// consumed, live entries, returning the contributing entry indices. When
// def.Ordered, the matched entries' timestamps must be non-decreasing in
// requirement order.
func (m *Matcher) satisfies(def Definition, now time.Time) ([]int, bool) {
	idxs := make([]int, 0, len(def.Requirements))
	lastInstant := time.Time{}

	for ri, req := range def.Requirements {
		found := -1

		for i, e := range m.entries {
			if e.consumed || e.capability != req.Capability {
				continue
			}

			if now.Sub(e.instant) > m.ttl {
				continue
			}

			if req.Match != nil && !req.Match(e.value) {
				continue
			}

			found = i

			break
		}

		if found < 0 {
			return nil, false
		}

		if def.Ordered && ri > 0 && m.entries[found].instant.Before(lastInstant) {
			return nil, false
		}

		lastInstant = m.entries[found].instant
		idxs = append(idxs, found)
	}

	return idxs, true
}
