package wire

import (
	"fmt"
	"math"

	"github.com/hidbridge/daemon/internal/capability"
)

// ErrUnsupportedConversion is returned when Encode or Decode is asked to
// convert between a capability.Value and ValueType pairing this codec does
// not define a mapping for.
var ErrUnsupportedConversion = fmt.Errorf("wire: unsupported value conversion")

// Encode converts a canonical, normalized capability.Value into the fixed-
// point wire Value that vt names. This is the boundary crossed once per
// state update by the unified gamepad target (and the websocket transport,
// which carries the same wire frames over the network): everywhere else in
// the pipeline floats in [-1,1]/[0,1] are the currency, but the wire format
// is integral.
func Encode(v capability.Value, vt ValueType) (Value, error) {
	switch vt {
	case ValueTypeNone:
		return NoneValue{}, nil
	case ValueTypeBool:
		b, ok := v.(capability.Bool)
		if !ok {
			return nil, fmt.Errorf("wire.Encode: %w: want Bool, got %T", ErrUnsupportedConversion, v)
		}

		return BoolValue{Value: b.Pressed}, nil
	case ValueTypeUInt8:
		s, ok := v.(capability.Scalar)
		if !ok {
			return nil, fmt.Errorf("wire.Encode: %w: want Scalar, got %T", ErrUnsupportedConversion, v)
		}

		return UInt8Value{Value: scaleUnsignedByte(s.Value)}, nil
	case ValueTypeUInt16:
		s, ok := v.(capability.Scalar)
		if !ok {
			return nil, fmt.Errorf("wire.Encode: %w: want Scalar, got %T", ErrUnsupportedConversion, v)
		}

		return UInt16Value{Value: scaleUnsignedWord(s.Value)}, nil
	case ValueTypeUInt16Vector2:
		vec, ok := v.(capability.Vector2)
		if !ok {
			return nil, fmt.Errorf("wire.Encode: %w: want Vector2, got %T", ErrUnsupportedConversion, v)
		}

		return UInt16Vector2Value{
			X: scaleUnsignedWord((vec.X + 1) / 2),
			Y: scaleUnsignedWord((vec.Y + 1) / 2),
		}, nil
	case ValueTypeInt16Vector3:
		vec, ok := v.(capability.Vector3)
		if !ok {
			return nil, fmt.Errorf("wire.Encode: %w: want Vector3, got %T", ErrUnsupportedConversion, v)
		}

		return Int16Vector3Value{
			X: scaleSignedWord(vec.X),
			Y: scaleSignedWord(vec.Y),
			Z: scaleSignedWord(vec.Z),
		}, nil
	case ValueTypeTouch:
		t, ok := v.(capability.Touch)
		if !ok {
			return nil, fmt.Errorf("wire.Encode: %w: want Touch, got %T", ErrUnsupportedConversion, v)
		}

		return TouchValue{
			Index:    t.Index & 0x7f,
			Touching: t.Touched,
			Pressure: scaleUnsignedByte(t.Pressure),
			X:        scaleUnsignedWord(t.X),
			Y:        scaleUnsignedWord(t.Y),
		}, nil
	default:
		return nil, fmt.Errorf("wire.Encode: %w: value type %s", ErrUnknownValueType, vt)
	}
}

// Decode converts a wire Value back into its canonical capability.Value.
func Decode(v Value) (capability.Value, error) {
	switch value := v.(type) {
	case NoneValue:
		return capability.None{}, nil
	case BoolValue:
		return capability.Bool{Pressed: value.Value}, nil
	case UInt8Value:
		return capability.Scalar{Value: float64(value.Value) / 0xff}, nil
	case UInt16Value:
		return capability.Scalar{Value: float64(value.Value) / 0xffff}, nil
	case UInt16Vector2Value:
		return capability.Vector2{
			X: float64(value.X)/0xffff*2 - 1,
			Y: float64(value.Y)/0xffff*2 - 1,
		}, nil
	case Int16Vector3Value:
		return capability.Vector3{
			X: float64(value.X) / 0x7fff,
			Y: float64(value.Y) / 0x7fff,
			Z: float64(value.Z) / 0x7fff,
		}, nil
	case TouchValue:
		return capability.Touch{
			Index:    value.Index,
			Touched:  value.Touching,
			Pressure: float64(value.Pressure) / 0xff,
			X:        float64(value.X) / 0xffff,
			Y:        float64(value.Y) / 0xffff,
		}, nil
	default:
		return nil, fmt.Errorf("wire.Decode: %w: %T", ErrUnsupportedConversion, v)
	}
}

// scaleUnsignedByte maps a [0,1] scalar to the full uint8 range, clamping
// out-of-range input rather than wrapping.
func scaleUnsignedByte(f float64) uint8 {
	return uint8(clamp01(f) * 0xff)
}

// scaleUnsignedWord maps a [0,1] scalar to the full uint16 range.
func scaleUnsignedWord(f float64) uint16 {
	return uint16(clamp01(f) * 0xffff)
}

// scaleSignedWord maps a [-1,1] scalar to the full int16 range.
func scaleSignedWord(f float64) int16 {
	if f > 1 {
		f = 1
	} else if f < -1 {
		f = -1
	}

	return int16(f * 0x7fff)
}

func clamp01(f float64) float64 {
	return math.Max(0, math.Min(1, f))
}
