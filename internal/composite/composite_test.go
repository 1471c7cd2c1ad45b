package composite_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/chord"
	"github.com/hidbridge/daemon/internal/composite"
	"github.com/hidbridge/daemon/internal/config"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/target"
)

// fakeTarget records deliveries and ClearState calls without a kernel
// device; tests read deliveries straight off the driver-side inbox.
type fakeTarget struct {
	target.Base

	mu      sync.Mutex
	cleared int
}

func newFakeTarget(kind target.Kind, caps []capability.Capability) *fakeTarget {
	return &fakeTarget{Base: target.NewBase("fake-"+string(kind), kind, caps)}
}

func (f *fakeTarget) Run(ctx context.Context) error {
	<-ctx.Done()

	return nil
}

func (f *fakeTarget) ClearState() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.cleared++

	return nil
}

func (f *fakeTarget) clearCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.cleared
}

func (f *fakeTarget) Close() error {
	f.CloseChannels()

	return nil
}

// next pops one delivered event, or fails after a second.
func (f *fakeTarget) next(t *testing.T) capability.NativeEvent {
	t.Helper()

	select {
	case evt := <-f.RawInbox():
		return evt
	case <-time.After(time.Second):
		t.Fatal("no event delivered")

		return capability.NativeEvent{}
	}
}

// none asserts no delivery arrives within the grace period.
func (f *fakeTarget) none(t *testing.T) {
	t.Helper()

	select {
	case evt := <-f.RawInbox():
		t.Fatalf("unexpected delivery: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

// fakeSource is roster metadata only; composite tests drive events by
// calling ProcessEvent directly.
type fakeSource struct {
	id       string
	caps     []capability.Capability
	commands chan source.Command
}

func newFakeSource(id string, caps ...capability.Capability) *fakeSource {
	return &fakeSource{id: id, caps: caps, commands: make(chan source.Command, 16)}
}

func (s *fakeSource) ID() string         { return s.id }
func (s *fakeSource) DevicePath() string { return "/dev/fake/" + s.id }

func (s *fakeSource) Capabilities() ([]capability.Capability, error) { return s.caps, nil }

func (s *fakeSource) Run(ctx context.Context, _ chan<- capability.NativeEvent) error {
	<-ctx.Done()

	return nil
}

func (s *fakeSource) Commands() chan<- source.Command { return s.commands }
func (s *fakeSource) Close() error                    { return nil }

type sink struct {
	mu     sync.Mutex
	events []capability.NativeEvent
}

func (s *sink) add(evt capability.NativeEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, evt)
}

func (s *sink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.events)
}

func (s *sink) capabilities() []capability.Capability {
	s.mu.Lock()
	defer s.mu.Unlock()

	caps := make([]capability.Capability, 0, len(s.events))
	for _, evt := range s.events {
		caps = append(caps, evt.Capability)
	}

	return caps
}

func startComposite(t *testing.T, defs composite.ChordDefinitions) (*composite.CompositeDevice, *sink) {
	t.Helper()

	comp := composite.New(&config.DeviceConfig{Name: "test-composite"})

	cpSink := &sink{}
	comp.SetControlPlaneSink(cpSink.add)
	comp.SetChordDefinitions(defs)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	comp.Start(ctx)

	return comp, cpSink
}

func gamepadCaps() []capability.Capability {
	return []capability.Capability{
		capability.GamepadButtonSouth, capability.GamepadButtonEast,
		capability.GamepadButtonGuide, capability.GamepadAxisLeftTrigger,
	}
}

func pressed(c capability.Capability) capability.NativeEvent {
	return capability.NativeEvent{Capability: c, Value: capability.Bool{Pressed: true}}
}

func released(c capability.Capability) capability.NativeEvent {
	return capability.NativeEvent{Capability: c, Value: capability.Bool{Pressed: false}}
}

func TestPassModeForwardsToAcceptingTargets(t *testing.T) {
	comp, _ := startComposite(t, composite.ChordDefinitions{})

	tgt := newFakeTarget(target.KindGamepad, gamepadCaps())
	require.NoError(t, comp.AttachTarget(tgt))
	require.NoError(t, comp.SetIntercept(composite.InterceptPass))

	comp.ProcessEvent("src", pressed(capability.GamepadButtonSouth))

	assert.Equal(t, pressed(capability.GamepadButtonSouth), tgt.next(t))
}

func TestInterceptAllRoutesEverythingToControlPlane(t *testing.T) {
	comp, cpSink := startComposite(t, composite.ChordDefinitions{})

	tgt := newFakeTarget(target.KindGamepad, gamepadCaps())
	require.NoError(t, comp.AttachTarget(tgt))
	require.NoError(t, comp.SetIntercept(composite.InterceptAll))

	const admitted = 5

	for i := 0; i < admitted; i++ {
		comp.ProcessEvent("src", pressed(capability.GamepadButtonSouth))
		comp.ProcessEvent("src", released(capability.GamepadButtonSouth))
	}

	require.Eventually(t, func() bool { return cpSink.count() == admitted*2 },
		time.Second, time.Millisecond)
	tgt.none(t)
}

func TestGamepadOnlyInterceptSplitsByFamily(t *testing.T) {
	comp, cpSink := startComposite(t, composite.ChordDefinitions{})

	tgt := newFakeTarget(target.KindKeyboard, []capability.Capability{
		capability.KeyboardKey(30), capability.GamepadButtonSouth,
	})
	require.NoError(t, comp.AttachTarget(tgt))
	require.NoError(t, comp.SetIntercept(composite.InterceptGamepadOnly))

	comp.ProcessEvent("src", pressed(capability.GamepadButtonSouth))
	comp.ProcessEvent("src", pressed(capability.KeyboardKey(30)))

	// The keyboard key passes through; the gamepad button is captured.
	assert.Equal(t, pressed(capability.KeyboardKey(30)), tgt.next(t))
	require.Eventually(t, func() bool { return cpSink.count() == 1 }, time.Second, time.Millisecond)
}

func TestGuideSouthChordTransitionsPassToAll(t *testing.T) {
	defs := composite.ChordDefinitions{
		Activate: []chord.Requirement{
			{Capability: capability.GamepadButtonGuide, Match: chord.Pressed},
			{Capability: capability.GamepadButtonSouth, Match: chord.Pressed},
		},
	}

	comp, cpSink := startComposite(t, defs)

	tgt := newFakeTarget(target.KindGamepad, gamepadCaps())
	require.NoError(t, comp.AttachTarget(tgt))
	require.NoError(t, comp.SetIntercept(composite.InterceptPass))

	clearsBefore := tgt.clearCount()

	comp.ProcessEvent("src", pressed(capability.GamepadButtonGuide))
	comp.ProcessEvent("src", pressed(capability.GamepadButtonSouth))

	require.Eventually(t, func() bool { return comp.GetIntercept() == composite.InterceptAll },
		time.Second, time.Millisecond)

	// Neither chord member reached the target; the transition released
	// all held state.
	tgt.none(t)
	assert.Greater(t, tgt.clearCount(), clearsBefore)

	// The release that follows surfaces only on the control plane.
	before := cpSink.count()
	comp.ProcessEvent("src", released(capability.GamepadButtonSouth))

	require.Eventually(t, func() bool { return cpSink.count() == before+1 },
		time.Second, time.Millisecond)
	tgt.none(t)
	assert.Equal(t, composite.InterceptAll, comp.GetIntercept())
}

func TestSetInterceptIsIdempotent(t *testing.T) {
	comp, _ := startComposite(t, composite.ChordDefinitions{})

	tgt := newFakeTarget(target.KindGamepad, gamepadCaps())
	require.NoError(t, comp.AttachTarget(tgt))

	require.NoError(t, comp.SetIntercept(composite.InterceptPass))
	clears := tgt.clearCount()

	require.NoError(t, comp.SetIntercept(composite.InterceptPass))
	assert.Equal(t, clears, tgt.clearCount())
	assert.Equal(t, composite.InterceptPass, comp.GetIntercept())
}

func TestDetachTargetClearsStateAndReturnsDriver(t *testing.T) {
	comp, _ := startComposite(t, composite.ChordDefinitions{})

	tgt := newFakeTarget(target.KindGamepad, gamepadCaps())
	require.NoError(t, comp.AttachTarget(tgt))

	detached, err := comp.DetachTarget(target.KindGamepad)
	require.NoError(t, err)
	assert.Same(t, tgt, detached)
	assert.Equal(t, 1, tgt.clearCount())

	_, err = comp.DetachTarget(target.KindGamepad)
	require.ErrorIs(t, err, composite.ErrUnknownTarget)
}

func TestFilteredEventsSuppressDeliveries(t *testing.T) {
	comp, _ := startComposite(t, composite.ChordDefinitions{})

	tgt := newFakeTarget(target.KindGamepad, gamepadCaps())
	require.NoError(t, comp.AttachTarget(tgt))
	require.NoError(t, comp.SetIntercept(composite.InterceptPass))

	require.NoError(t, comp.SetFilteredEvents(map[capability.Capability][]target.Kind{
		capability.GamepadButtonSouth: {target.Kind("*")},
	}))

	comp.ProcessEvent("src", pressed(capability.GamepadButtonSouth))
	comp.ProcessEvent("src", pressed(capability.GamepadButtonEast))

	assert.Equal(t, pressed(capability.GamepadButtonEast), tgt.next(t))
}

func TestProfileTranslationRewritesCapability(t *testing.T) {
	comp, _ := startComposite(t, composite.ChordDefinitions{})

	tgt := newFakeTarget(target.KindGamepad, gamepadCaps())
	require.NoError(t, comp.AttachTarget(tgt))
	require.NoError(t, comp.SetIntercept(composite.InterceptPass))

	require.NoError(t, comp.LoadProfile(&config.Profile{
		Name: "swap",
		Rules: []config.ProfileRule{
			{Source: "GamepadButtonSouth", Targets: []string{"GamepadButtonEast"}},
		},
	}))

	comp.ProcessEvent("src", pressed(capability.GamepadButtonSouth))

	assert.Equal(t, pressed(capability.GamepadButtonEast), tgt.next(t))
}

func TestLoadProfileReplacesNotAccumulates(t *testing.T) {
	comp, _ := startComposite(t, composite.ChordDefinitions{})

	p := &config.Profile{Name: "p1"}
	require.NoError(t, comp.LoadProfile(p))
	require.NoError(t, comp.LoadProfile(p))
	assert.Equal(t, "p1", comp.ProfileName())
}

func TestInvalidValueVariantIsDroppedAndCounted(t *testing.T) {
	comp, cpSink := startComposite(t, composite.ChordDefinitions{})

	tgt := newFakeTarget(target.KindGamepad, gamepadCaps())
	require.NoError(t, comp.AttachTarget(tgt))
	require.NoError(t, comp.SetIntercept(composite.InterceptPass))

	// A button carrying a Vector3 violates the fixed capability/value
	// pairing.
	comp.ProcessEvent("src", capability.NativeEvent{
		Capability: capability.GamepadButtonSouth,
		Value:      capability.Vector3{X: 1},
	})

	require.Eventually(t, func() bool { return comp.InvalidEventCount() == 1 },
		time.Second, time.Millisecond)
	tgt.none(t)
	assert.Zero(t, cpSink.count())
}

func TestSourceRosterAndCapabilityUnion(t *testing.T) {
	comp, _ := startComposite(t, composite.ChordDefinitions{})

	comp.AddSource(newFakeSource("a", capability.GamepadButtonSouth, capability.GamepadAxisLeftStick))
	comp.AddSource(newFakeSource("b", capability.GamepadButtonSouth, capability.Accelerometer))

	require.Eventually(t, func() bool { return comp.SourceCount() == 2 }, time.Second, time.Millisecond)

	assert.ElementsMatch(t, []capability.Capability{
		capability.GamepadButtonSouth, capability.GamepadAxisLeftStick, capability.Accelerometer,
	}, comp.Capabilities())

	comp.RemoveSource("a")

	require.Eventually(t, func() bool { return comp.SourceCount() == 1 }, time.Second, time.Millisecond)
}

func TestChordEmissionReachesTargetsOnce(t *testing.T) {
	defs := composite.ChordDefinitions{
		Emission: []chord.Definition{{
			Name: "east+south",
			Requirements: []chord.Requirement{
				{Capability: capability.GamepadButtonEast, Match: chord.Pressed},
				{Capability: capability.GamepadButtonSouth, Match: chord.Pressed},
			},
			Emit: []capability.NativeEvent{pressed(capability.GamepadButtonStart)},
		}},
	}

	comp, _ := startComposite(t, defs)

	tgt := newFakeTarget(target.KindGamepad, []capability.Capability{
		capability.GamepadButtonSouth, capability.GamepadButtonEast, capability.GamepadButtonStart,
	})
	require.NoError(t, comp.AttachTarget(tgt))
	require.NoError(t, comp.SetIntercept(composite.InterceptPass))

	comp.ProcessEvent("src", pressed(capability.GamepadButtonEast))
	comp.ProcessEvent("src", pressed(capability.GamepadButtonSouth))

	// The first press passes through; the completing press is swallowed
	// by the chord and replaced by its emission.
	assert.Equal(t, pressed(capability.GamepadButtonEast), tgt.next(t))
	assert.Equal(t, pressed(capability.GamepadButtonStart), tgt.next(t))
	tgt.none(t)
}

func TestChordEmissionHonorsInterceptAll(t *testing.T) {
	defs := composite.ChordDefinitions{
		Emission: []chord.Definition{{
			Name: "east+south",
			Requirements: []chord.Requirement{
				{Capability: capability.GamepadButtonEast, Match: chord.Pressed},
				{Capability: capability.GamepadButtonSouth, Match: chord.Pressed},
			},
			Emit: []capability.NativeEvent{pressed(capability.GamepadButtonStart)},
		}},
	}

	comp, cpSink := startComposite(t, defs)

	tgt := newFakeTarget(target.KindGamepad, []capability.Capability{
		capability.GamepadButtonSouth, capability.GamepadButtonEast, capability.GamepadButtonStart,
	})
	require.NoError(t, comp.AttachTarget(tgt))
	require.NoError(t, comp.SetIntercept(composite.InterceptAll))

	comp.ProcessEvent("src", pressed(capability.GamepadButtonEast))
	comp.ProcessEvent("src", pressed(capability.GamepadButtonSouth))

	// The first press and the chord emission both surface only on the
	// control plane; nothing reaches the target.
	require.Eventually(t, func() bool { return cpSink.count() == 2 },
		time.Second, time.Millisecond)
	assert.Contains(t, cpSink.capabilities(), capability.GamepadButtonStart)
	tgt.none(t)
}
