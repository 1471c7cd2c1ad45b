// Package dualsensesrc implements a hidrawsrc.Decoder for the Sony
// DualSense controller's USB input/output reports, following the
// publicly documented 64-byte USB input report layout.
package dualsensesrc

import (
	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/source/touchsynth"
)

// ReportSize is the fixed length of a DualSense USB input report.
const ReportSize = 64

// Offsets into the 64-byte USB input report.
const (
	offLeftStickX  = 1
	offLeftStickY  = 2
	offRightStickX = 3
	offRightStickY = 4
	offL2          = 5
	offR2          = 6
	offButtons0    = 8 // dpad (low nibble) + square/cross/circle/triangle (high nibble)
	offButtons1    = 9 // L1/R1/L2/R2/create/options/L3/R3
	offButtons2    = 10 // PS/touchpad-click/mute
)

// Button bit masks within their respective byte.
const (
	dpadMask = 0x0f

	btn1Square   = 1 << 4
	btn1Cross    = 1 << 5
	btn1Circle   = 1 << 6
	btn1Triangle = 1 << 7

	btn2L1     = 1 << 0
	btn2R1     = 1 << 1
	btn2L2     = 1 << 2
	btn2R2     = 1 << 3
	btn2Create = 1 << 4
	btn2Options = 1 << 5
	btn2L3     = 1 << 6
	btn2R3     = 1 << 7

	btn3PS       = 1 << 0
	btn3Touchpad = 1 << 1
)

// Touchpad contact records: two 4-byte entries, each
// [id:7|inactive:1][x low 8][x high nibble | y low nibble][y high 8].
const (
	offTouch0 = 33
	offTouch1 = 37

	touchpadWidth  = 1920
	touchpadHeight = 1080
)

// dpadTable maps the 4-bit hat switch value (clockwise from up,
// 8=released) onto which of the four dpad directions are held.
var dpadTable = [9][4]bool{
	0: {true, false, false, false},  // up
	1: {true, false, false, true},   // up-right
	2: {false, false, false, true},  // right
	3: {false, true, false, true},   // down-right
	4: {false, true, false, false},  // down
	5: {false, true, true, false},   // down-left
	6: {false, false, true, false},  // left
	7: {true, false, true, false},   // up-left
	8: {false, false, false, false}, // released
}

// Decoder implements hidrawsrc.Decoder for the DualSense's input report
// and its rumble-bearing output report. The touchpad emits only "down"
// frames, so a touchsynth.Tracker supplies release synthesis and
// tap-to-click.
type Decoder struct {
	lastDpad [4]bool
	touch    *touchsynth.Tracker
}

func New() *Decoder {
	return &Decoder{
		touch: touchsynth.New(capability.Touchpad, touchsynth.Options{
			ClickCapability: capability.MouseButtonLeft,
		}),
	}
}

func (d *Decoder) ReportSize() int { return ReportSize }

func (d *Decoder) Capabilities() []capability.Capability {
	return []capability.Capability{
		capability.GamepadButtonSouth, capability.GamepadButtonEast,
		capability.GamepadButtonNorth, capability.GamepadButtonWest,
		capability.GamepadButtonLeftBumper, capability.GamepadButtonRightBumper,
		capability.GamepadButtonLeftTrigger, capability.GamepadButtonRightTrigger,
		capability.GamepadButtonLeftStick, capability.GamepadButtonRightStick,
		capability.GamepadButtonSelect, capability.GamepadButtonStart,
		capability.GamepadButtonGuide,
		capability.GamepadDpadUp, capability.GamepadDpadDown,
		capability.GamepadDpadLeft, capability.GamepadDpadRight,
		capability.GamepadAxisLeftStick, capability.GamepadAxisRightStick,
		capability.GamepadAxisLeftTrigger, capability.GamepadAxisRightTrigger,
		capability.Touchpad, capability.MouseButtonLeft,
		capability.ForceFeedbackRumble,
	}
}

func (d *Decoder) Decode(report []byte, dst []capability.NativeEvent) []capability.NativeEvent {
	if len(report) < ReportSize {
		return dst
	}

	dst = append(dst,
		capability.NativeEvent{Capability: capability.GamepadAxisLeftStick, Value: stickVector(report[offLeftStickX], report[offLeftStickY])},
		capability.NativeEvent{Capability: capability.GamepadAxisRightStick, Value: stickVector(report[offRightStickX], report[offRightStickY])},
		capability.NativeEvent{Capability: capability.GamepadAxisLeftTrigger, Value: capability.Scalar{Value: float64(report[offL2]) / 0xff}},
		capability.NativeEvent{Capability: capability.GamepadAxisRightTrigger, Value: capability.Scalar{Value: float64(report[offR2]) / 0xff}},

		capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: report[offButtons0]&btn1Cross != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonEast, Value: capability.Bool{Pressed: report[offButtons0]&btn1Circle != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonWest, Value: capability.Bool{Pressed: report[offButtons0]&btn1Square != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonNorth, Value: capability.Bool{Pressed: report[offButtons0]&btn1Triangle != 0}},

		capability.NativeEvent{Capability: capability.GamepadButtonLeftBumper, Value: capability.Bool{Pressed: report[offButtons1]&btn2L1 != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonRightBumper, Value: capability.Bool{Pressed: report[offButtons1]&btn2R1 != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonLeftTrigger, Value: capability.Bool{Pressed: report[offButtons1]&btn2L2 != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonRightTrigger, Value: capability.Bool{Pressed: report[offButtons1]&btn2R2 != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonSelect, Value: capability.Bool{Pressed: report[offButtons1]&btn2Create != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonStart, Value: capability.Bool{Pressed: report[offButtons1]&btn2Options != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonLeftStick, Value: capability.Bool{Pressed: report[offButtons1]&btn2L3 != 0}},
		capability.NativeEvent{Capability: capability.GamepadButtonRightStick, Value: capability.Bool{Pressed: report[offButtons1]&btn2R3 != 0}},

		capability.NativeEvent{Capability: capability.GamepadButtonGuide, Value: capability.Bool{Pressed: report[offButtons2]&btn3PS != 0}},
	)

	hat := report[offButtons0] & dpadMask
	if hat > 8 {
		hat = 8
	}

	dirs := dpadTable[hat]
	dst = append(dst,
		capability.NativeEvent{Capability: capability.GamepadDpadUp, Value: capability.Bool{Pressed: dirs[0]}},
		capability.NativeEvent{Capability: capability.GamepadDpadDown, Value: capability.Bool{Pressed: dirs[1]}},
		capability.NativeEvent{Capability: capability.GamepadDpadLeft, Value: capability.Bool{Pressed: dirs[2]}},
		capability.NativeEvent{Capability: capability.GamepadDpadRight, Value: capability.Bool{Pressed: dirs[3]}},
	)

	dst = d.decodeTouch(report[offTouch0:offTouch0+4], dst)
	dst = d.decodeTouch(report[offTouch1:offTouch1+4], dst)

	return dst
}

// decodeTouch parses one 4-byte touchpad contact record, feeding active
// contacts through the tracker. Inactive records carry no index worth
// reporting; releases come from the tracker's grace-window expiry or an
// explicit inactive frame for a previously seen id.
func (d *Decoder) decodeTouch(rec []byte, dst []capability.NativeEvent) []capability.NativeEvent {
	inactive := rec[0]&0x80 != 0
	index := rec[0] & 0x7f

	x := uint16(rec[1]) | uint16(rec[2]&0x0f)<<8
	y := uint16(rec[2])>>4 | uint16(rec[3])<<4

	t := capability.Touch{
		Index:   index,
		Touched: !inactive,
		X:       float64(x) / touchpadWidth,
		Y:       float64(y) / touchpadHeight,
	}

	// The touchpad has no pressure sensor; a live contact reports full
	// pressure.
	if t.Touched {
		t.Pressure = 1
	}

	return append(dst, d.touch.Touch(t)...)
}

// Expire lets hidrawsrc's read loop collect the tracker's synthesized
// release events between frames.
func (d *Decoder) Expire(dst []capability.NativeEvent) []capability.NativeEvent {
	return append(dst, d.touch.Expire()...)
}

func stickVector(x, y byte) capability.Vector2 {
	return capability.Vector2{
		X: (float64(x) - 128) / 127.5,
		Y: (float64(y) - 128) / 127.5,
	}
}

// EncodeOutput renders a ForceFeedbackRumble OutputEvent as a minimal
// DualSense output report (report id 0x02, with the rumble-enable flag
// and left/right motor bytes set).
func (d *Decoder) EncodeOutput(evt source.OutputEvent) ([]byte, bool) {
	if evt.Capability != capability.ForceFeedbackRumble {
		return nil, false
	}

	vec, ok := evt.Value.(capability.Vector2)
	if !ok {
		return nil, false
	}

	report := make([]byte, 48)
	report[0] = 0x02
	report[1] = 0x03 // enable rumble + motor control
	report[4] = byte(clamp01(vec.X) * 0xff)
	report[5] = byte(clamp01(vec.Y) * 0xff)

	return report, true
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}

	if f > 1 {
		return 1
	}

	return f
}
