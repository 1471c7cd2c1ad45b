// Package wire implements the bit-exact binary codec for the unified
// report family: the InputCapabilityReport and InputDataReport that let
// a target/source pair agree on capability layout without a schema
// exchange, built on encoding/binary plus manual bit math.
package wire

// ValueType identifies the wire shape of a single capability's value
// within an InputDataReport. It is distinct from capability.ValueType:
// this one fixes the exact bit width and byte order the codec reads and
// writes, independent of how the value is normalized in the live pipeline.
type ValueType uint8

const (
	ValueTypeNone ValueType = iota
	ValueTypeBool
	ValueTypeUInt8
	ValueTypeUInt16
	ValueTypeUInt16Vector2
	ValueTypeInt16Vector3
	ValueTypeTouch
)

// SizeBits returns the number of bits this value type occupies in an
// InputDataReport's data region.
func (t ValueType) SizeBits() int {
	switch t {
	case ValueTypeNone:
		return 0
	case ValueTypeBool:
		return 1
	case ValueTypeUInt8:
		return 8
	case ValueTypeUInt16:
		return 16
	case ValueTypeUInt16Vector2:
		return 32
	case ValueTypeInt16Vector3:
		return 48
	case ValueTypeTouch:
		return 48
	default:
		return 0
	}
}

// SizeBytes returns SizeBits rounded up to the nearest byte, with the
// single-bit Bool type occupying a full byte like every other value (the
// codec only ever writes whole bytes; Bool's single live bit is toggled
// within its owning byte without disturbing Bool values sharing it).
func (t ValueType) SizeBytes() int {
	bits := t.SizeBits()
	if bits < 8 {
		return 1
	}

	return bits / 8
}

// OrderPriority returns the sort priority used when laying out capabilities
// in an InputDataReport: lower values are placed earlier. Wider, multi-byte
// types sort first so narrower types (particularly packed Bool bits) can
// share trailing bytes without forcing padding.
func (t ValueType) OrderPriority() uint8 {
	switch t {
	case ValueTypeTouch:
		return 0
	case ValueTypeInt16Vector3:
		return 1
	case ValueTypeUInt16Vector2:
		return 2
	case ValueTypeUInt16:
		return 3
	case ValueTypeUInt8:
		return 4
	case ValueTypeBool:
		return 5
	case ValueTypeNone:
		return 6
	default:
		return 6
	}
}

// String implements fmt.Stringer for log and error output.
func (t ValueType) String() string {
	switch t {
	case ValueTypeNone:
		return "None"
	case ValueTypeBool:
		return "Bool"
	case ValueTypeUInt8:
		return "UInt8"
	case ValueTypeUInt16:
		return "UInt16"
	case ValueTypeUInt16Vector2:
		return "UInt16Vector2"
	case ValueTypeInt16Vector3:
		return "Int16Vector3"
	case ValueTypeTouch:
		return "Touch"
	default:
		return "Unknown"
	}
}
