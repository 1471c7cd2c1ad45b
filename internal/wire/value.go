package wire

// Value is a single wire-encoded capability reading, as it appears packed
// into an InputDataReport's data region. Every variant below corresponds
// 1:1 to a ValueType.
type Value interface {
	Type() ValueType
}

// NoneValue carries no payload.
type NoneValue struct{}

func (NoneValue) Type() ValueType { return ValueTypeNone }

// BoolValue is a single packed bit.
type BoolValue struct {
	Value bool
}

func (BoolValue) Type() ValueType { return ValueTypeBool }

// UInt8Value is a single unsigned byte, typically a low-resolution trigger.
type UInt8Value struct {
	Value uint8
}

func (UInt8Value) Type() ValueType { return ValueTypeUInt8 }

// UInt16Value is a little-endian unsigned 16-bit value, typically a
// high-resolution trigger.
type UInt16Value struct {
	Value uint16
}

func (UInt16Value) Type() ValueType { return ValueTypeUInt16 }

// UInt16Vector2Value is two little-endian unsigned 16-bit fields, typically
// an unsigned 2-axis input.
type UInt16Vector2Value struct {
	X, Y uint16
}

func (UInt16Vector2Value) Type() ValueType { return ValueTypeUInt16Vector2 }

// Int16Vector3Value is three little-endian signed 16-bit fields: an
// accelerometer, gyroscope, or magnetometer sample.
type Int16Vector3Value struct {
	X, Y, Z int16
}

func (Int16Vector3Value) Type() ValueType { return ValueTypeInt16Vector3 }

// TouchValue packs a 7-bit contact index, a 1-bit touching flag, an 8-bit
// pressure, and two little-endian unsigned 16-bit position fields into 6
// bytes: [index:7][touching:1][pressure][x_lo][x_hi][y_lo][y_hi].
type TouchValue struct {
	Index    uint8
	Touching bool
	Pressure uint8
	X, Y     uint16
}

func (TouchValue) Type() ValueType { return ValueTypeTouch }
