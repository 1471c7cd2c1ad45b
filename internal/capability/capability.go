// Package capability defines the closed Capability enumeration and the
// canonical NativeValue currency that every event in the system carries.
//
// A Capability is a single u16-sized identifier: most of the space names a
// fixed input/output kind (a gamepad button, an axis, an inertial
// sensor, ...), and a reserved high range maps directly onto evdev KEY_*
// codes so
// the keyboard target doesn't need one named constant per key.
package capability

import (
	"strconv"
	"strings"

	"github.com/hidbridge/daemon/internal/evdevio"
)

// Capability identifies a single typed input or output kind. Every
// NativeEvent in the system carries exactly one Capability plus a Value
// whose variant is fixed by ValueTypeOf.
type Capability uint16

const (
	// None is the sentinel "not implemented" capability.
	None Capability = iota

	// Gamepad face, shoulder, and miscellaneous buttons.
	GamepadButtonSouth
	GamepadButtonEast
	GamepadButtonNorth
	GamepadButtonWest
	GamepadButtonLeftBumper
	GamepadButtonRightBumper
	GamepadButtonLeftTrigger  // digital (full-pull) click
	GamepadButtonRightTrigger // digital (full-pull) click
	GamepadButtonLeftStick    // left thumbstick click
	GamepadButtonRightStick   // right thumbstick click
	GamepadButtonLeftPaddle1
	GamepadButtonLeftPaddle2
	GamepadButtonRightPaddle1
	GamepadButtonRightPaddle2
	GamepadButtonGuide
	GamepadButtonSelect
	GamepadButtonStart

	// Directional pad, modeled as four independent booleans.
	GamepadDpadUp
	GamepadDpadDown
	GamepadDpadLeft
	GamepadDpadRight

	// Analog axes. Sticks are Vector2; triggers are Scalar.
	GamepadAxisLeftStick
	GamepadAxisRightStick
	GamepadAxisLeftTrigger
	GamepadAxisRightTrigger

	// Inertial sensors, each a signed 3-vector.
	Accelerometer
	Gyroscope

	// Touch surfaces. Each carries a contact index, a touching flag, and
	// optional pressure/position (see Touch in value.go).
	Touchscreen
	Touchpad

	// Mouse.
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle
	MouseButtonExtra1
	MouseButtonExtra2
	MouseMotion // relative Vector2 delta, normalized to [-1,1] like other Vector2 values
	MouseWheel  // relative Vector2 (x = horizontal, y = vertical)

	// Output-only capabilities routed from target to source: force feedback and LED zone color.
	ForceFeedbackRumble
	LEDZone
	Haptics

	// firstReserved marks the start of the dynamically-assigned range; it
	// must stay last among the named constants.
	firstReserved
)

// KeyboardKeyBase is the first Capability value in the reserved range that
// maps 1:1 onto evdev KEY_* codes: KeyboardKeyBase + Capability(code) names
// the key. The base is chosen well above KEY_MAX (0x2ff) is not required
// since the mapping is additive, but keeping it at a round, documented
// offset avoids accidental collision with future named constants above.
const KeyboardKeyBase Capability = 0x1000

// KeyboardKey returns the Capability naming the given evdev key code.
func KeyboardKey(code evdevio.EventCode) Capability {
	return KeyboardKeyBase + Capability(code)
}

// IsKeyboardKey reports whether c names a key in the KeyboardKeyBase range,
// and if so returns the underlying evdev key code.
func IsKeyboardKey(c Capability) (evdevio.EventCode, bool) {
	if c < KeyboardKeyBase {
		return 0, false
	}

	return evdevio.EventCode(c - KeyboardKeyBase), true
}

// names holds the human-readable name for every statically-defined
// Capability, used for config matching (profile YAML names a capability by
// string) and for log output.
var names = map[Capability]string{
	None:                      "None",
	GamepadButtonSouth:        "GamepadButtonSouth",
	GamepadButtonEast:         "GamepadButtonEast",
	GamepadButtonNorth:        "GamepadButtonNorth",
	GamepadButtonWest:         "GamepadButtonWest",
	GamepadButtonLeftBumper:   "GamepadButtonLeftBumper",
	GamepadButtonRightBumper:  "GamepadButtonRightBumper",
	GamepadButtonLeftTrigger:  "GamepadButtonLeftTrigger",
	GamepadButtonRightTrigger: "GamepadButtonRightTrigger",
	GamepadButtonLeftStick:    "GamepadButtonLeftStick",
	GamepadButtonRightStick:   "GamepadButtonRightStick",
	GamepadButtonLeftPaddle1:  "GamepadButtonLeftPaddle1",
	GamepadButtonLeftPaddle2:  "GamepadButtonLeftPaddle2",
	GamepadButtonRightPaddle1: "GamepadButtonRightPaddle1",
	GamepadButtonRightPaddle2: "GamepadButtonRightPaddle2",
	GamepadButtonGuide:        "GamepadButtonGuide",
	GamepadButtonSelect:       "GamepadButtonSelect",
	GamepadButtonStart:        "GamepadButtonStart",
	GamepadDpadUp:             "GamepadDpadUp",
	GamepadDpadDown:           "GamepadDpadDown",
	GamepadDpadLeft:           "GamepadDpadLeft",
	GamepadDpadRight:          "GamepadDpadRight",
	GamepadAxisLeftStick:      "GamepadAxisLeftStick",
	GamepadAxisRightStick:     "GamepadAxisRightStick",
	GamepadAxisLeftTrigger:    "GamepadAxisLeftTrigger",
	GamepadAxisRightTrigger:   "GamepadAxisRightTrigger",
	Accelerometer:             "Accelerometer",
	Gyroscope:                 "Gyroscope",
	Touchscreen:               "Touchscreen",
	Touchpad:                  "Touchpad",
	MouseButtonLeft:           "MouseButtonLeft",
	MouseButtonRight:          "MouseButtonRight",
	MouseButtonMiddle:         "MouseButtonMiddle",
	MouseButtonExtra1:         "MouseButtonExtra1",
	MouseButtonExtra2:         "MouseButtonExtra2",
	MouseMotion:               "MouseMotion",
	MouseWheel:                "MouseWheel",
	ForceFeedbackRumble:       "ForceFeedbackRumble",
	LEDZone:                   "LEDZone",
	Haptics:                   "Haptics",
}

// String returns the human-readable name of c, or "KeyboardKey(<code>)" /
// "Capability(<n>)" for capabilities outside the named table.
func (c Capability) String() string {
	var (
		name string
		ok   bool
		code evdevio.EventCode
	)

	name, ok = names[c]
	if ok {
		return name
	}

	code, ok = IsKeyboardKey(c)
	if ok {
		return "KeyboardKey(" + itoa(uint16(code)) + ")"
	}

	return "Capability(" + itoa(uint16(c)) + ")"
}

// ParseName returns the Capability named by s, including keyboard keys in
// the form "KeyboardKey(<code>)".
func ParseName(s string) (Capability, bool) {
	var (
		c    Capability
		name string
	)

	for c, name = range names {
		if name == s {
			return c, true
		}
	}

	if strings.HasPrefix(s, "KeyboardKey(") && strings.HasSuffix(s, ")") {
		n, err := strconv.ParseUint(s[len("KeyboardKey("):len(s)-1], 10, 16)
		if err == nil && Capability(n) <= ^Capability(0)-KeyboardKeyBase {
			return KeyboardKey(evdevio.EventCode(n)), true
		}
	}

	return None, false
}

func itoa(v uint16) string {
	if v == 0 {
		return "0"
	}

	var (
		buf [5]byte
		i   int
	)

	i = len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}

	return string(buf[i:])
}
