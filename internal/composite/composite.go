// Package composite implements the CompositeDevice actor: the
// per-instance orchestrator owning a roster of source and target
// drivers, the active profile, the intercept state machine, and the
// chord matcher. All state transitions happen on one goroutine, driven
// by a bounded message inbox.
package composite

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/chord"
	"github.com/hidbridge/daemon/internal/config"
	"github.com/hidbridge/daemon/internal/logging"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/target"
	"github.com/hidbridge/daemon/internal/wire"
)

// InterceptMode is the policy controlling whether events reach targets or
// the control plane.
type InterceptMode uint32

const (
	InterceptNone InterceptMode = iota
	InterceptPass
	InterceptAll
	InterceptGamepadOnly
)

// String implements fmt.Stringer for log output and DBus property export.
func (m InterceptMode) String() string {
	switch m {
	case InterceptNone:
		return "None"
	case InterceptPass:
		return "Pass"
	case InterceptAll:
		return "All"
	case InterceptGamepadOnly:
		return "GamepadOnly"
	default:
		return "Unknown"
	}
}

// inboxCapacity bounds the composite's message channel; overflow drops
// the oldest message rather than blocking the sender.
const inboxCapacity = 256

// maxSourceErrors is the default number of consecutive source errors
// before that source is marked dead and removed.
const maxSourceErrors = 8

// replyTimeout is the implicit bounded-reply-channel deadline.
const replyTimeout = time.Second

// ErrUnknownTarget is returned by commands naming a target kind the
// composite does not currently have attached.
var ErrUnknownTarget = errors.New("composite: unknown target")

// ErrTimeout is returned when a command's reply does not arrive within
// replyTimeout.
var ErrTimeout = errors.New("composite: command timed out")

// ErrStopped is returned by commands sent after the composite's actor
// loop has terminated.
var ErrStopped = errors.New("composite: stopped")

// isGamepadCapability reports whether c belongs to the gamepad family, for
// GamepadOnly intercept routing.
func isGamepadCapability(c capability.Capability) bool {
	return c >= capability.GamepadButtonSouth && c < capability.Accelerometer
}

// ChordDefinitions groups the three uses a composite makes of the chord
// matcher: profile-configured chords producing target emissions, the
// Pass->All activation chord, and the All->Pass release chord.
type ChordDefinitions struct {
	Emission  []chord.Definition
	Activate  []chord.Requirement
	Deactivate []chord.Requirement
}

// CompositeDevice coordinates one physical product's sources, targets,
// profile, and intercept state.
type CompositeDevice struct {
	name   string
	config *config.DeviceConfig
	logger *log.Logger

	mu              sync.RWMutex
	sources         map[string]source.Driver
	sourceErrors    map[string]int
	everHadSource   bool
	targets         map[target.Kind]target.Driver
	profile         *config.Profile
	intercept       InterceptMode
	suspended       bool
	ffEnabled       bool
	filteredEvents  map[capability.Capability]map[target.Kind]bool
	overflowCount   uint64
	invalidCount    uint64
	capReportCache  *wire.InputCapabilityReport

	chordMatcher    *chord.Matcher
	recentActivate  map[capability.Capability]time.Time
	activateDefs    []chord.Requirement
	deactivateDefs  []chord.Requirement
	chordTTL        time.Duration

	inbox  chan message
	cancel context.CancelFunc
	done   chan struct{}

	// controlPlaneSink, when set, receives every event the intercept mode
	// routes to the control plane instead of a target.
	controlPlaneSink func(capability.NativeEvent)
}

type messageKind uint8

const (
	msgProcessEvent messageKind = iota
	msgProcessOutputEvent
	msgSourceAdded
	msgSourceRemoved
	msgCommand
)

type message struct {
	kind     messageKind
	sourceID string
	event    capability.NativeEvent
	output   source.OutputEvent
	driver   source.Driver
	cmd      func(*CompositeDevice) error
	reply    chan error
}

// New constructs a CompositeDevice for cfg. Call Start to begin its actor
// loop.
func New(cfg *config.DeviceConfig) *CompositeDevice {
	return &CompositeDevice{
		name:           cfg.Name,
		config:         cfg,
		logger:         logging.For("composite").With("name", cfg.Name),
		sources:        make(map[string]source.Driver),
		sourceErrors:   make(map[string]int),
		targets:        make(map[target.Kind]target.Driver),
		filteredEvents: make(map[capability.Capability]map[target.Kind]bool),
		recentActivate: make(map[capability.Capability]time.Time),
		chordTTL:       chord.DefaultTTL,
		inbox:          make(chan message, inboxCapacity),
		done:           make(chan struct{}),
	}
}

// SetControlPlaneSink wires the callback invoked for every event routed to
// the control plane instead of a target. Must be called before Start.
func (c *CompositeDevice) SetControlPlaneSink(fn func(capability.NativeEvent)) {
	c.controlPlaneSink = fn
}

// SetChordDefinitions installs the chord matcher and intercept-learning
// requirement sets, typically derived from the active profile. Must be
// called before Start.
func (c *CompositeDevice) SetChordDefinitions(defs ChordDefinitions) {
	c.chordMatcher = chord.New(chord.DefaultCapacity, c.chordTTL, defs.Emission)
	c.activateDefs = defs.Activate
	c.deactivateDefs = defs.Deactivate
}

// Name returns the composite's configured name.
func (c *CompositeDevice) Name() string { return c.name }

// Start launches the actor loop on its own goroutine.
func (c *CompositeDevice) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	go c.run(ctx)
}

// Stop queues a stop command to every owned source, then clears every
// owned target's state and closes it before releasing it. It does not
// wait for the sources or targets to drain. The actor loop itself
// terminates once the teardown command has been processed.
func (c *CompositeDevice) Stop() error {
	err := c.sendCommand(func(cd *CompositeDevice) error {
		for _, s := range cd.sources {
			select {
			case s.Commands() <- source.Command{Kind: source.CommandStop}:
			default:
			}
		}

		for kind, t := range cd.targets {
			if err := t.ClearState(); err != nil {
				cd.logger.Warn("clear state on stop failed", "target", kind, "err", err)
			}

			t.Close()
		}

		cd.targets = make(map[target.Kind]target.Driver)

		return nil
	})

	if c.cancel != nil {
		c.cancel()
	}

	if errors.Is(err, ErrStopped) {
		return nil
	}

	return err
}

// run is the composite's single actor loop: every state transition
// happens here, driven by the inbox.
func (c *CompositeDevice) run(ctx context.Context) {
	defer close(c.done)

	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.inbox:
			c.handle(msg)
		}
	}
}

func (c *CompositeDevice) handle(msg message) {
	switch msg.kind {
	case msgProcessEvent:
		c.processEvent(msg.sourceID, msg.event)
	case msgProcessOutputEvent:
		c.routeOutput(msg.output)
	case msgSourceAdded:
		c.addSource(msg.driver)
	case msgSourceRemoved:
		c.removeSource(msg.sourceID)
	case msgCommand:
		err := msg.cmd(c)
		if msg.reply != nil {
			msg.reply <- err
		}
	}
}

// push enqueues msg, dropping the oldest queued message and incrementing
// overflowCount if the inbox is full.
func (c *CompositeDevice) push(msg message) {
	select {
	case c.inbox <- msg:
		return
	default:
	}

	select {
	case <-c.inbox:
		c.mu.Lock()
		c.overflowCount++
		c.mu.Unlock()
	default:
	}

	select {
	case c.inbox <- msg:
	default:
	}
}

// OverflowCount returns the number of messages dropped due to inbox
// overflow, for metrics/control-plane reporting.
func (c *CompositeDevice) OverflowCount() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.overflowCount
}

// InvalidEventCount returns the number of events dropped for carrying a
// value variant that does not match their capability.
func (c *CompositeDevice) InvalidEventCount() uint64 {
	var n uint64

	c.query(func(cd *CompositeDevice) { n = cd.invalidCount })

	return n
}

// sendCommand enqueues fn and blocks for its reply up to replyTimeout.
func (c *CompositeDevice) sendCommand(fn func(*CompositeDevice) error) error {
	select {
	case <-c.done:
		return ErrStopped
	default:
	}

	reply := make(chan error, 1)

	c.push(message{kind: msgCommand, cmd: fn, reply: reply})

	select {
	case err := <-reply:
		return err
	case <-c.done:
		return ErrStopped
	case <-time.After(replyTimeout):
		return ErrTimeout
	}
}

// AddSource notifies the composite of a newly attached source (the
// manager calls this after matching a config).
func (c *CompositeDevice) AddSource(d source.Driver) {
	c.push(message{kind: msgSourceAdded, driver: d})
}

// RemoveSource notifies the composite that a source disconnected.
func (c *CompositeDevice) RemoveSource(id string) {
	c.push(message{kind: msgSourceRemoved, sourceID: id})
}

// ProcessEvent enqueues a normalized event from sourceID for translation
// and dispatch.
func (c *CompositeDevice) ProcessEvent(sourceID string, evt capability.NativeEvent) {
	c.push(message{kind: msgProcessEvent, sourceID: sourceID, event: evt})
}

// ProcessOutputEvent enqueues an OutputEvent from a target for upstream
// routing to sources.
func (c *CompositeDevice) ProcessOutputEvent(evt source.OutputEvent) {
	c.push(message{kind: msgProcessOutputEvent, output: evt})
}

// addSource is only called on the actor goroutine.
func (c *CompositeDevice) addSource(d source.Driver) {
	c.sources[d.ID()] = d
	c.sourceErrors[d.ID()] = 0
	c.everHadSource = true
}

// EverHadSource reports whether at least one source was ever attached,
// distinguishing a composite whose sources all unplugged from one created
// ahead of its hardware (control-plane CreateCompositeDevice).
func (c *CompositeDevice) EverHadSource() bool {
	var had bool

	c.query(func(cd *CompositeDevice) { had = cd.everHadSource })

	return had
}

// Persists reports whether the config keeps this composite alive with no
// sources attached.
func (c *CompositeDevice) Persists() bool {
	return c.config.Persist
}

// removeSource drops a source from the roster. Only called on the actor
// goroutine. The composite itself is never torn down here; only the
// Manager decides whether the whole composite should go away once every
// configured source is absent.
func (c *CompositeDevice) removeSource(id string) {
	delete(c.sources, id)
	delete(c.sourceErrors, id)
}

// SourceError records a read/decode failure from sourceID; after
// maxSourceErrors consecutive failures the source is marked dead and
// removed.
func (c *CompositeDevice) SourceError(id string) {
	_ = c.sendCommand(func(cd *CompositeDevice) error {
		cd.sourceErrors[id]++

		if cd.sourceErrors[id] >= maxSourceErrors {
			if d, ok := cd.sources[id]; ok {
				d.Close()
			}

			delete(cd.sources, id)
			delete(cd.sourceErrors, id)
		}

		return nil
	})
}

// query runs fn on the actor goroutine via sendCommand and returns its
// captured result, giving read-only accessors the same single-writer
// safety as the mutating commands.
func (c *CompositeDevice) query(fn func(*CompositeDevice)) {
	_ = c.sendCommand(func(cd *CompositeDevice) error {
		fn(cd)

		return nil
	})
}

// SourceCount returns the number of currently attached sources.
func (c *CompositeDevice) SourceCount() int {
	var n int

	c.query(func(cd *CompositeDevice) { n = len(cd.sources) })

	return n
}

// SourceDevicePaths returns every attached source's device path, for the
// control plane's SourceDevicePaths property.
func (c *CompositeDevice) SourceDevicePaths() []string {
	var paths []string

	c.query(func(cd *CompositeDevice) {
		paths = make([]string, 0, len(cd.sources))
		for _, s := range cd.sources {
			paths = append(paths, s.DevicePath())
		}
	})

	return paths
}

// SourceCapabilities returns each attached source's own advertised
// capabilities, keyed by device path, for the control plane's per-source
// object properties.
func (c *CompositeDevice) SourceCapabilities() map[string][]capability.Capability {
	out := make(map[string][]capability.Capability)

	c.query(func(cd *CompositeDevice) {
		for _, s := range cd.sources {
			caps, err := s.Capabilities()
			if err != nil {
				continue
			}

			out[s.DevicePath()] = caps
		}
	})

	return out
}

// Capabilities returns the union of every attached source's capabilities.
func (c *CompositeDevice) Capabilities() []capability.Capability {
	var out []capability.Capability

	c.query(func(cd *CompositeDevice) { out = cd.unionSourceCapabilities() })

	return out
}

// TargetCapabilities returns the union of every attached target's
// capabilities.
func (c *CompositeDevice) TargetCapabilities() []capability.Capability {
	var out []capability.Capability

	c.query(func(cd *CompositeDevice) {
		seen := make(map[capability.Capability]bool)

		for _, t := range cd.targets {
			for _, cp := range t.Capabilities() {
				if !seen[cp] {
					seen[cp] = true
					out = append(out, cp)
				}
			}
		}
	})

	return out
}

// ProfileName returns the active profile's name, or "" if none is loaded,
// for the control plane's ProfileName property.
func (c *CompositeDevice) ProfileName() string {
	var name string

	c.query(func(cd *CompositeDevice) {
		if cd.profile != nil {
			name = cd.profile.Name
		}
	})

	return name
}

// TargetKinds returns the kind of every currently attached target, for the
// control plane's per-target object enumeration.
func (c *CompositeDevice) TargetKinds() []target.Kind {
	var kinds []target.Kind

	c.query(func(cd *CompositeDevice) {
		kinds = make([]target.Kind, 0, len(cd.targets))
		for k := range cd.targets {
			kinds = append(kinds, k)
		}
	})

	return kinds
}

// GetIntercept returns the current intercept mode.
func (c *CompositeDevice) GetIntercept() InterceptMode {
	var mode InterceptMode

	c.query(func(cd *CompositeDevice) { mode = cd.intercept })

	return mode
}

// SetIntercept sets the intercept mode, emitting a synthetic release of
// every currently held capability to every target so consumers see a
// consistent state across the transition. Idempotent: setting
// the same mode twice is indistinguishable from once.
func (c *CompositeDevice) SetIntercept(mode InterceptMode) error {
	return c.sendCommand(func(cd *CompositeDevice) error {
		if cd.intercept == mode {
			return nil
		}

		cd.releaseAllHeld()
		cd.intercept = mode

		return nil
	})
}

// releaseAllHeld clears every target's state image, the synthetic
// release-all that keeps consumers consistent across mode transitions.
func (c *CompositeDevice) releaseAllHeld() {
	for kind, t := range c.targets {
		if err := t.ClearState(); err != nil {
			c.logger.Warn("release-all-held failed", "target", kind, "err", err)
		}
	}
}

// LoadProfile installs p as the active profile, replacing any previous
// one outright.
func (c *CompositeDevice) LoadProfile(p *config.Profile) error {
	return c.sendCommand(func(cd *CompositeDevice) error {
		cd.profile = p

		return nil
	})
}

// SetFilteredEvents replaces the capability -> suppressed-target-kinds
// map.
func (c *CompositeDevice) SetFilteredEvents(filtered map[capability.Capability][]target.Kind) error {
	return c.sendCommand(func(cd *CompositeDevice) error {
		out := make(map[capability.Capability]map[target.Kind]bool, len(filtered))

		for capKey, kinds := range filtered {
			set := make(map[target.Kind]bool, len(kinds))
			for _, k := range kinds {
				set[k] = true
			}

			out[capKey] = set
		}

		cd.filteredEvents = out

		return nil
	})
}

// Suspend/Resume toggle the suspended flag.
func (c *CompositeDevice) Suspend() error {
	return c.sendCommand(func(cd *CompositeDevice) error { cd.suspended = true; return nil })
}

func (c *CompositeDevice) Resume() error {
	return c.sendCommand(func(cd *CompositeDevice) error { cd.suspended = false; return nil })
}

// AttachTarget attaches d, rebuilding the capability-report cache used by
// any unified targets.
func (c *CompositeDevice) AttachTarget(d target.Driver) error {
	return c.sendCommand(func(cd *CompositeDevice) error {
		cd.targets[d.Kind()] = d

		return cd.rebuildCapabilityReport()
	})
}

// DetachTarget calls ClearState on kind's driver, then removes it
// The removed driver
// is returned so the caller (typically the Manager, arbitrating a
// transfer) can reattach it elsewhere without state references lingering.
func (c *CompositeDevice) DetachTarget(kind target.Kind) (target.Driver, error) {
	var detached target.Driver

	err := c.sendCommand(func(cd *CompositeDevice) error {
		d, ok := cd.targets[kind]
		if !ok {
			return fmt.Errorf("composite.DetachTarget: %w: %s", ErrUnknownTarget, kind)
		}

		if err := d.ClearState(); err != nil {
			cd.logger.Warn("detach clear state failed", "target", kind, "err", err)
		}

		delete(cd.targets, kind)
		detached = d

		return cd.rebuildCapabilityReport()
	})

	return detached, err
}

func (c *CompositeDevice) rebuildCapabilityReport() error {
	entries := make([]wire.CapabilityEntry, 0, 16)
	seen := make(map[capability.Capability]bool)

	for _, cp := range c.unionSourceCapabilities() {
		if seen[cp] {
			continue
		}

		seen[cp] = true

		vt, ok := defaultWireType(cp)
		if !ok {
			continue
		}

		entries = append(entries, wire.CapabilityEntry{Capability: cp, ValueType: vt})
	}

	report, err := wire.BuildCapabilityReport(entries)
	if err != nil {
		return fmt.Errorf("composite.rebuildCapabilityReport: %w", err)
	}

	c.capReportCache = report

	for _, t := range c.targets {
		type capSetter interface {
			SetCapabilities([]wire.CapabilityEntry) error
		}

		if setter, ok := t.(capSetter); ok {
			if err := setter.SetCapabilities(report.Entries); err != nil {
				c.logger.Warn("rebuild capability report on target failed", "err", err)
			}
		}
	}

	return nil
}

func (c *CompositeDevice) unionSourceCapabilities() []capability.Capability {
	seen := make(map[capability.Capability]bool)

	var out []capability.Capability

	for _, s := range c.sources {
		caps, err := s.Capabilities()
		if err != nil {
			continue
		}

		for _, cp := range caps {
			if !seen[cp] {
				seen[cp] = true
				out = append(out, cp)
			}
		}
	}

	return out
}

// defaultWireType picks the wire.ValueType a capability encodes as in the
// unified InputDataReport, mirroring capability.ValueType's shape.
func defaultWireType(c capability.Capability) (wire.ValueType, bool) {
	switch {
	case c == capability.Accelerometer || c == capability.Gyroscope:
		return wire.ValueTypeInt16Vector3, true
	case c == capability.GamepadAxisLeftStick || c == capability.GamepadAxisRightStick || c == capability.MouseMotion || c == capability.MouseWheel:
		return wire.ValueTypeUInt16Vector2, true
	case c == capability.Touchscreen || c == capability.Touchpad:
		return wire.ValueTypeTouch, true
	case c == capability.GamepadAxisLeftTrigger || c == capability.GamepadAxisRightTrigger:
		return wire.ValueTypeUInt8, true
	case c == capability.None:
		return wire.ValueTypeNone, false
	default:
		return wire.ValueTypeBool, true
	}
}

