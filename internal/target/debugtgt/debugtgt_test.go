package debugtgt_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/target/debugtgt"
	"github.com/hidbridge/daemon/internal/wire"
)

func negotiated(t *testing.T, d *debugtgt.Driver) *wire.InputCapabilityReport {
	t.Helper()

	report, err := wire.BuildCapabilityReport([]wire.CapabilityEntry{
		{Capability: capability.GamepadButtonSouth, ValueType: wire.ValueTypeBool},
		{Capability: capability.GamepadAxisLeftTrigger, ValueType: wire.ValueTypeUInt8},
	})
	require.NoError(t, err)
	require.NoError(t, d.SetCapabilities(report.Entries))

	return report
}

func nextReport(t *testing.T, d *debugtgt.Driver) *wire.InputDataReport {
	t.Helper()

	select {
	case buf := <-d.Reports():
		report, err := wire.UnpackInputDataReport(buf)
		require.NoError(t, err)

		return report
	case <-time.After(time.Second):
		t.Fatal("no report published")

		return nil
	}
}

func TestPublishesOneReportPerStateChange(t *testing.T) {
	d := debugtgt.New()
	capReport := negotiated(t, d)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.Run(ctx)

	d.Inbox() <- capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}}

	report := nextReport(t, d)
	assert.Equal(t, uint16(1), report.StateVersion)

	values, err := report.Decode(capReport)
	require.NoError(t, err)
	assert.Equal(t, wire.BoolValue{Value: true}, values[capability.GamepadButtonSouth])

	d.Inbox() <- capability.NativeEvent{Capability: capability.GamepadAxisLeftTrigger, Value: capability.Scalar{Value: 1.0}}

	report = nextReport(t, d)
	assert.Equal(t, uint16(2), report.StateVersion)

	values, err = report.Decode(capReport)
	require.NoError(t, err)
	assert.Equal(t, wire.UInt8Value{Value: 0xff}, values[capability.GamepadAxisLeftTrigger])
}

func TestDuplicateEventPreservesStateVersion(t *testing.T) {
	d := debugtgt.New()
	negotiated(t, d)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.Run(ctx)

	evt := capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}}

	d.Inbox() <- evt
	require.Equal(t, uint16(1), nextReport(t, d).StateVersion)

	// Same value again: no publish, no version bump.
	d.Inbox() <- evt
	d.Inbox() <- capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: false}}

	report := nextReport(t, d)
	assert.Equal(t, uint16(2), report.StateVersion)
}

func TestEventOutsideNegotiatedSetIsDropped(t *testing.T) {
	d := debugtgt.New()
	negotiated(t, d)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.Run(ctx)

	d.Inbox() <- capability.NativeEvent{Capability: capability.MouseMotion, Value: capability.Vector2{X: 1}}
	d.Inbox() <- capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}}

	// Only the in-set event produces a report.
	report := nextReport(t, d)
	assert.Equal(t, uint16(1), report.StateVersion)
}

func TestClearStatePublishesNeutralSnapshot(t *testing.T) {
	d := debugtgt.New()
	capReport := negotiated(t, d)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.Run(ctx)

	d.Inbox() <- capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}}
	nextReport(t, d)

	require.NoError(t, d.ClearState())

	report := nextReport(t, d)

	values, err := report.Decode(capReport)
	require.NoError(t, err)
	assert.Equal(t, wire.BoolValue{Value: false}, values[capability.GamepadButtonSouth])
	assert.Equal(t, wire.UInt8Value{Value: 0}, values[capability.GamepadAxisLeftTrigger])
}

func TestCapabilitiesReflectNegotiation(t *testing.T) {
	d := debugtgt.New()
	assert.Empty(t, d.Capabilities())

	negotiated(t, d)
	assert.ElementsMatch(t,
		[]capability.Capability{capability.GamepadButtonSouth, capability.GamepadAxisLeftTrigger},
		d.Capabilities())
}
