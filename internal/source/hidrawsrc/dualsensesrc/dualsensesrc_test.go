package dualsensesrc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/source/hidrawsrc/dualsensesrc"
)

// neutralReport returns a 64-byte input report with sticks centered, the
// hat released, and both touch records inactive.
func neutralReport() []byte {
	report := make([]byte, dualsensesrc.ReportSize)
	report[1] = 128 // left stick x
	report[2] = 128 // left stick y
	report[3] = 128 // right stick x
	report[4] = 128 // right stick y
	report[8] = 0x08 // hat released
	report[33] = 0x80
	report[37] = 0x80

	return report
}

func eventFor(events []capability.NativeEvent, c capability.Capability) (capability.Value, bool) {
	for _, evt := range events {
		if evt.Capability == c {
			return evt.Value, true
		}
	}

	return nil, false
}

func TestDecodeButtonsAndTriggers(t *testing.T) {
	d := dualsensesrc.New()

	report := neutralReport()
	report[6] = 0xff        // R2 fully pulled
	report[8] |= 1 << 5     // cross
	report[9] = 1 << 0      // L1
	report[10] = 1 << 0     // PS

	events := d.Decode(report, nil)

	v, ok := eventFor(events, capability.GamepadButtonSouth)
	require.True(t, ok)
	assert.Equal(t, capability.Bool{Pressed: true}, v)

	v, ok = eventFor(events, capability.GamepadButtonLeftBumper)
	require.True(t, ok)
	assert.Equal(t, capability.Bool{Pressed: true}, v)

	v, ok = eventFor(events, capability.GamepadButtonGuide)
	require.True(t, ok)
	assert.Equal(t, capability.Bool{Pressed: true}, v)

	v, ok = eventFor(events, capability.GamepadAxisRightTrigger)
	require.True(t, ok)
	assert.InDelta(t, 1.0, v.(capability.Scalar).Value, 1e-9)

	v, ok = eventFor(events, capability.GamepadAxisLeftStick)
	require.True(t, ok)
	vec := v.(capability.Vector2)
	assert.InDelta(t, 0, vec.X, 0.01)
	assert.InDelta(t, 0, vec.Y, 0.01)
}

func TestDecodeDpadHatDirections(t *testing.T) {
	d := dualsensesrc.New()

	report := neutralReport()
	report[8] = 0x07 // up-left

	events := d.Decode(report, nil)

	v, _ := eventFor(events, capability.GamepadDpadUp)
	assert.Equal(t, capability.Bool{Pressed: true}, v)

	v, _ = eventFor(events, capability.GamepadDpadLeft)
	assert.Equal(t, capability.Bool{Pressed: true}, v)

	v, _ = eventFor(events, capability.GamepadDpadDown)
	assert.Equal(t, capability.Bool{Pressed: false}, v)
}

func TestDecodeTouchpadContact(t *testing.T) {
	d := dualsensesrc.New()

	report := neutralReport()
	// Contact id 2, active, at (960, 540) of the 1920x1080 surface.
	report[33] = 0x02
	report[34] = 960 & 0xff
	report[35] = byte(960>>8) | byte((540&0x0f)<<4)
	report[36] = byte(540 >> 4)

	events := d.Decode(report, nil)

	v, ok := eventFor(events, capability.Touchpad)
	require.True(t, ok)

	touch := v.(capability.Touch)
	assert.Equal(t, uint8(2), touch.Index)
	assert.True(t, touch.Touched)
	assert.InDelta(t, 1.0, touch.Pressure, 1e-9)
	assert.InDelta(t, 0.5, touch.X, 0.01)
	assert.InDelta(t, 0.5, touch.Y, 0.01)
}

func TestEncodeOutputRendersRumbleReport(t *testing.T) {
	d := dualsensesrc.New()

	report, ok := d.EncodeOutput(source.OutputEvent{
		Capability: capability.ForceFeedbackRumble,
		Value:      capability.Vector2{X: 1.0, Y: 0.5},
	})
	require.True(t, ok)
	assert.Equal(t, byte(0x02), report[0])
	assert.Equal(t, byte(0xff), report[4])
	assert.Equal(t, byte(0x7f), report[5])

	_, ok = d.EncodeOutput(source.OutputEvent{Capability: capability.LEDZone})
	assert.False(t, ok)
}
