package wire_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/wire"
)

func TestCapabilityReportLayoutIsDeterministic(t *testing.T) {
	// Sizes: accel 48 bits, trigger 8 bits, button 1 bit. Wider types
	// first, so the offsets are fully determined by the input set.
	report, err := wire.BuildCapabilityReport([]wire.CapabilityEntry{
		{Capability: capability.GamepadButtonSouth, ValueType: wire.ValueTypeBool},
		{Capability: capability.Accelerometer, ValueType: wire.ValueTypeInt16Vector3},
		{Capability: capability.GamepadAxisLeftTrigger, ValueType: wire.ValueTypeUInt8},
	})
	require.NoError(t, err)

	require.Len(t, report.Entries, 3)
	assert.Equal(t, capability.Accelerometer, report.Entries[0].Capability)
	assert.Equal(t, uint16(0), report.Entries[0].OffsetBits)
	assert.Equal(t, capability.GamepadAxisLeftTrigger, report.Entries[1].Capability)
	assert.Equal(t, uint16(48), report.Entries[1].OffsetBits)
	assert.Equal(t, capability.GamepadButtonSouth, report.Entries[2].Capability)
	assert.Equal(t, uint16(56), report.Entries[2].OffsetBits)
}

func TestCapabilityReportPackUnpackRoundTrip(t *testing.T) {
	report, err := wire.BuildCapabilityReport([]wire.CapabilityEntry{
		{Capability: capability.Touchscreen, ValueType: wire.ValueTypeTouch},
		{Capability: capability.GamepadAxisLeftStick, ValueType: wire.ValueTypeUInt16Vector2},
		{Capability: capability.GamepadButtonSouth, ValueType: wire.ValueTypeBool},
		{Capability: capability.GamepadButtonEast, ValueType: wire.ValueTypeBool},
	})
	require.NoError(t, err)

	got, err := wire.UnpackCapabilityReport(report.Pack())
	require.NoError(t, err)
	assert.Equal(t, report.ReportID, got.ReportID)
	assert.Equal(t, report.Entries, got.Entries)
}

func TestUnpackRejectsUnknownValueType(t *testing.T) {
	buf := []byte{0x01, 0x01, 0x00, 0x00, 0xee, 0x00, 0x00}

	_, err := wire.UnpackCapabilityReport(buf)
	require.ErrorIs(t, err, wire.ErrUnknownValueType)
}

func TestUnpackRejectsNonMonotonicOffsets(t *testing.T) {
	buf := []byte{
		0x01, 0x02,
		0x01, 0x00, uint8(wire.ValueTypeUInt8), 0x08, 0x00,
		0x02, 0x00, uint8(wire.ValueTypeUInt8), 0x00, 0x00,
	}

	_, err := wire.UnpackCapabilityReport(buf)
	require.ErrorIs(t, err, wire.ErrOffsetsNotMonotonic)
}

func buildReport(t *testing.T) *wire.InputCapabilityReport {
	t.Helper()

	report, err := wire.BuildCapabilityReport([]wire.CapabilityEntry{
		{Capability: capability.Touchscreen, ValueType: wire.ValueTypeTouch},
		{Capability: capability.Accelerometer, ValueType: wire.ValueTypeInt16Vector3},
		{Capability: capability.GamepadAxisLeftStick, ValueType: wire.ValueTypeUInt16Vector2},
		{Capability: capability.GamepadAxisLeftTrigger, ValueType: wire.ValueTypeUInt8},
		{Capability: capability.GamepadButtonSouth, ValueType: wire.ValueTypeBool},
		{Capability: capability.GamepadButtonEast, ValueType: wire.ValueTypeBool},
	})
	require.NoError(t, err)

	return report
}

func TestDataReportDecodeRepackRoundTrip(t *testing.T) {
	capReport := buildReport(t)
	data := wire.NewInputDataReport()

	updates := map[capability.Capability]wire.Value{
		capability.Touchscreen:            wire.TouchValue{Index: 5, Touching: true, Pressure: 0x80, X: 0x1234, Y: 0x4321},
		capability.Accelerometer:          wire.Int16Vector3Value{X: -1000, Y: 2000, Z: -32768},
		capability.GamepadAxisLeftStick:   wire.UInt16Vector2Value{X: 0x7fff, Y: 0x8001},
		capability.GamepadAxisLeftTrigger: wire.UInt8Value{Value: 0x7f},
		capability.GamepadButtonSouth:     wire.BoolValue{Value: true},
	}

	for c, v := range updates {
		require.NoError(t, data.Update(capReport, c, v))
	}

	packed := data.Pack()

	decoded, err := data.Decode(capReport)
	require.NoError(t, err)

	for c, want := range updates {
		assert.Equal(t, want, decoded[c], "capability %s", c)
	}

	assert.Equal(t, wire.BoolValue{Value: false}, decoded[capability.GamepadButtonEast])

	// Writing every decoded value back into a fresh report reproduces
	// the original bytes (spec's round-trip invariant); state versions
	// differ, so compare only the data region.
	repacked := wire.NewInputDataReport()
	for c, v := range decoded {
		require.NoError(t, repacked.Update(capReport, c, v))
	}

	assert.Equal(t, packed[6:], repacked.Pack()[6:])
}

func TestStateVersionIncrementsAndWraps(t *testing.T) {
	capReport := buildReport(t)
	data := wire.NewInputDataReport()

	require.NoError(t, data.Update(capReport, capability.GamepadButtonSouth, wire.BoolValue{Value: true}))
	assert.Equal(t, uint16(1), data.StateVersion)

	data.StateVersion = 0xffff

	require.NoError(t, data.Update(capReport, capability.GamepadButtonSouth, wire.BoolValue{Value: false}))
	assert.Equal(t, uint16(0), data.StateVersion)
}

func TestUpdateRejectsValueTypeMismatch(t *testing.T) {
	capReport := buildReport(t)
	data := wire.NewInputDataReport()

	err := data.Update(capReport, capability.GamepadButtonSouth, wire.UInt8Value{Value: 1})
	require.ErrorIs(t, err, wire.ErrValueTypeMismatch)
	assert.Equal(t, uint16(0), data.StateVersion)
}

func TestUpdateRejectsUnknownCapability(t *testing.T) {
	capReport := buildReport(t)
	data := wire.NewInputDataReport()

	err := data.Update(capReport, capability.MouseMotion, wire.UInt16Vector2Value{})
	require.ErrorIs(t, err, wire.ErrCapabilityNotFound)
}

func TestPackedBoolsShareAByteWithoutClobbering(t *testing.T) {
	capReport := buildReport(t)
	data := wire.NewInputDataReport()

	require.NoError(t, data.Update(capReport, capability.GamepadButtonSouth, wire.BoolValue{Value: true}))
	require.NoError(t, data.Update(capReport, capability.GamepadButtonEast, wire.BoolValue{Value: true}))
	require.NoError(t, data.Update(capReport, capability.GamepadButtonSouth, wire.BoolValue{Value: false}))

	decoded, err := data.Decode(capReport)
	require.NoError(t, err)
	assert.Equal(t, wire.BoolValue{Value: false}, decoded[capability.GamepadButtonSouth])
	assert.Equal(t, wire.BoolValue{Value: true}, decoded[capability.GamepadButtonEast])
}

func TestEncodeDecodeCanonicalValues(t *testing.T) {
	wv, err := wire.Encode(capability.Scalar{Value: 1.0}, wire.ValueTypeUInt8)
	require.NoError(t, err)
	assert.Equal(t, wire.UInt8Value{Value: 0xff}, wv)

	back, err := wire.Decode(wv)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, back.(capability.Scalar).Value, 1e-9)

	wv, err = wire.Encode(capability.Vector3{X: 1, Y: -1, Z: 0}, wire.ValueTypeInt16Vector3)
	require.NoError(t, err)
	assert.Equal(t, wire.Int16Vector3Value{X: 32767, Y: -32767, Z: 0}, wv)

	_, err = wire.Encode(capability.Bool{Pressed: true}, wire.ValueTypeUInt16)
	require.ErrorIs(t, err, wire.ErrUnsupportedConversion)
}

func TestTouchPressureSurvivesEncodeDecode(t *testing.T) {
	wv, err := wire.Encode(capability.Touch{
		Index:    3,
		Touched:  true,
		Pressure: 0.5,
		X:        0.25,
		Y:        0.75,
	}, wire.ValueTypeTouch)
	require.NoError(t, err)

	touch := wv.(wire.TouchValue)
	assert.Equal(t, uint8(0x7f), touch.Pressure)

	back, err := wire.Decode(wv)
	require.NoError(t, err)

	decoded := back.(capability.Touch)
	assert.Equal(t, uint8(3), decoded.Index)
	assert.True(t, decoded.Touched)
	assert.InDelta(t, 0.5, decoded.Pressure, 0.01)
	assert.InDelta(t, 0.25, decoded.X, 0.01)
	assert.InDelta(t, 0.75, decoded.Y, 0.01)
}
