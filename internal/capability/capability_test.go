package capability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidbridge/daemon/internal/capability"
)

func TestParseNameRoundTripsNamedCapabilities(t *testing.T) {
	for _, c := range []capability.Capability{
		capability.GamepadButtonSouth,
		capability.GamepadAxisLeftStick,
		capability.Accelerometer,
		capability.Touchpad,
		capability.MouseMotion,
		capability.ForceFeedbackRumble,
	} {
		got, ok := capability.ParseName(c.String())
		require.True(t, ok, c.String())
		assert.Equal(t, c, got)
	}
}

func TestKeyboardKeyRange(t *testing.T) {
	c := capability.KeyboardKey(30)

	code, ok := capability.IsKeyboardKey(c)
	require.True(t, ok)
	assert.EqualValues(t, 30, code)
	assert.Equal(t, "KeyboardKey(30)", c.String())

	_, ok = capability.IsKeyboardKey(capability.GamepadButtonSouth)
	assert.False(t, ok)
}

func TestValueTypeOfFixesTheVariantPerCapability(t *testing.T) {
	assert.Equal(t, capability.ValueTypeBool, capability.ValueTypeOf(capability.GamepadButtonSouth))
	assert.Equal(t, capability.ValueTypeBool, capability.ValueTypeOf(capability.KeyboardKey(30)))
	assert.Equal(t, capability.ValueTypeScalar, capability.ValueTypeOf(capability.GamepadAxisLeftTrigger))
	assert.Equal(t, capability.ValueTypeVector2, capability.ValueTypeOf(capability.GamepadAxisLeftStick))
	assert.Equal(t, capability.ValueTypeVector3, capability.ValueTypeOf(capability.Gyroscope))
	assert.Equal(t, capability.ValueTypeTouch, capability.ValueTypeOf(capability.Touchscreen))
	assert.Equal(t, capability.ValueTypeNone, capability.ValueTypeOf(capability.None))

	assert.True(t, capability.ValidValue(capability.GamepadButtonSouth, capability.Bool{Pressed: true}))
	assert.False(t, capability.ValidValue(capability.GamepadButtonSouth, capability.Vector3{}))
	assert.False(t, capability.ValidValue(capability.GamepadButtonSouth, nil))
}
