package wire

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/hidbridge/daemon/internal/capability"
)

// InputDataReportSize is the fixed total size, in bytes, of an
// InputDataReport: 6 header bytes plus a 62-byte data region.
const InputDataReportSize = 68

// dataRegionSize is the size, in bytes, of the portion of an
// InputDataReport addressed by CapabilityEntry.OffsetBits.
const dataRegionSize = 62

// ReportType identifies the kind of unified report a frame carries.
type ReportType uint8

const (
	ReportTypeUnknown                ReportType = 0x00
	ReportTypeInputCapabilityReport  ReportType = 0x01
	ReportTypeInputDataReport        ReportType = 0x02
	ReportTypeOutputCapabilityReport ReportType = 0x03
	ReportTypeOutputDataReport       ReportType = 0x04
)

// UnifiedSpecVersionMajor and UnifiedSpecVersionMinor name the wire protocol
// version this codec implements, written into every InputDataReport's
// header.
const (
	UnifiedSpecVersionMajor uint8 = 1
	UnifiedSpecVersionMinor uint8 = 0
)

// ErrCapabilityNotFound is returned when updating or decoding a capability
// the InputCapabilityReport does not describe.
var ErrCapabilityNotFound = errors.New("wire: capability not found in capability report")

// ErrValueTypeMismatch is returned when the value passed to Update does not
// match the ValueType the capability report declares for that capability.
var ErrValueTypeMismatch = errors.New("wire: value type mismatch")

// ErrReportSizeExceeded is returned when a capability's offset plus its
// size would read or write past the data region.
var ErrReportSizeExceeded = errors.New("wire: update exceeds data region")

// InputDataReport is the periodic state frame a unified source sends: a
// small header plus a 62-byte data region whose layout is defined by a
// previously negotiated InputCapabilityReport.
type InputDataReport struct {
	MajorVer     uint8
	MinorVer     uint8
	ReportType   ReportType
	StateVersion uint16
	Data         [dataRegionSize]byte
}

// NewInputDataReport returns a zeroed InputDataReport with the header
// fields this codec writes on every frame.
func NewInputDataReport() *InputDataReport {
	return &InputDataReport{
		MajorVer:   UnifiedSpecVersionMajor,
		MinorVer:   UnifiedSpecVersionMinor,
		ReportType: ReportTypeInputDataReport,
	}
}

// Pack serializes the report into its fixed 68-byte wire form.
func (r *InputDataReport) Pack() []byte {
	var buf []byte

	buf = make([]byte, InputDataReportSize)
	buf[0] = r.MajorVer
	buf[1] = r.MinorVer
	buf[2] = uint8(r.ReportType)
	// buf[3] is padding, left zero.
	binary.LittleEndian.PutUint16(buf[4:], r.StateVersion)
	copy(buf[6:], r.Data[:])

	return buf
}

// UnpackInputDataReport parses buf into an InputDataReport. buf must be
// exactly InputDataReportSize bytes.
func UnpackInputDataReport(buf []byte) (*InputDataReport, error) {
	var r InputDataReport

	if len(buf) != InputDataReportSize {
		return nil, fmt.Errorf("wire.UnpackInputDataReport: expected %d bytes, got %d", InputDataReportSize, len(buf))
	}

	r.MajorVer = buf[0]
	r.MinorVer = buf[1]
	r.ReportType = ReportType(buf[2])
	r.StateVersion = binary.LittleEndian.Uint16(buf[4:])
	copy(r.Data[:], buf[6:])

	return &r, nil
}

// Update writes v into the report's data region at the position
// capabilityReport declares for c, validating that c is known and that v's
// type matches the capability's declared ValueType. A successful update
// increments StateVersion by one, wrapping modulo 2^16.
func (r *InputDataReport) Update(capabilityReport *InputCapabilityReport, c capability.Capability, v Value) error {
	var (
		entry        CapabilityEntry
		ok           bool
		byteStart    int
		remainderBit uint
		err          error
	)

	entry, ok = capabilityReport.GetCapability(c)
	if !ok {
		return fmt.Errorf("wire.InputDataReport.Update: %w: %s", ErrCapabilityNotFound, c)
	}

	if entry.ValueType != v.Type() {
		return fmt.Errorf("wire.InputDataReport.Update: %w: capability %s wants %s, got %s",
			ErrValueTypeMismatch, c, entry.ValueType, v.Type())
	}

	byteStart = int(entry.OffsetBits) / 8
	remainderBit = uint(entry.OffsetBits) % 8

	if byteStart+entry.ValueType.SizeBytes() > dataRegionSize {
		return fmt.Errorf("wire.InputDataReport.Update: %w: capability %s at byte %d", ErrReportSizeExceeded, c, byteStart)
	}

	err = r.writeValue(byteStart, remainderBit, v)
	if err != nil {
		return fmt.Errorf("wire.InputDataReport.Update: %w", err)
	}

	r.StateVersion++

	return nil
}

func (r *InputDataReport) writeValue(byteStart int, remainderBit uint, v Value) error {
	switch value := v.(type) {
	case NoneValue:
		// No payload to write.
	case BoolValue:
		if value.Value {
			r.Data[byteStart] |= 1 << remainderBit
		} else {
			r.Data[byteStart] &^= 1 << remainderBit
		}
	case UInt8Value:
		r.Data[byteStart] = value.Value
	case UInt16Value:
		binary.LittleEndian.PutUint16(r.Data[byteStart:], value.Value)
	case UInt16Vector2Value:
		binary.LittleEndian.PutUint16(r.Data[byteStart:], value.X)
		binary.LittleEndian.PutUint16(r.Data[byteStart+2:], value.Y)
	case Int16Vector3Value:
		binary.LittleEndian.PutUint16(r.Data[byteStart:], uint16(value.X))
		binary.LittleEndian.PutUint16(r.Data[byteStart+2:], uint16(value.Y))
		binary.LittleEndian.PutUint16(r.Data[byteStart+4:], uint16(value.Z))
	case TouchValue:
		var first byte

		first = value.Index & 0x7f
		if value.Touching {
			first |= 0x80
		}

		r.Data[byteStart] = first
		r.Data[byteStart+1] = value.Pressure
		binary.LittleEndian.PutUint16(r.Data[byteStart+2:], value.X)
		binary.LittleEndian.PutUint16(r.Data[byteStart+4:], value.Y)
	default:
		return fmt.Errorf("%w: %T", ErrUnknownValueType, v)
	}

	return nil
}

// Decode reads every capability capabilityReport describes out of the
// report's data region and returns them keyed by capability.
func (r *InputDataReport) Decode(capabilityReport *InputCapabilityReport) (map[capability.Capability]Value, error) {
	var (
		out          map[capability.Capability]Value
		entry        CapabilityEntry
		byteStart    int
		remainderBit uint
		v            Value
		err          error
	)

	out = make(map[capability.Capability]Value, len(capabilityReport.Entries))

	for _, entry = range capabilityReport.Entries {
		byteStart = int(entry.OffsetBits) / 8
		remainderBit = uint(entry.OffsetBits) % 8

		if byteStart+entry.ValueType.SizeBytes() > dataRegionSize {
			return nil, fmt.Errorf("wire.InputDataReport.Decode: %w: capability %s at byte %d",
				ErrReportSizeExceeded, entry.Capability, byteStart)
		}

		v, err = r.readValue(entry.ValueType, byteStart, remainderBit)
		if err != nil {
			return nil, fmt.Errorf("wire.InputDataReport.Decode: %w", err)
		}

		out[entry.Capability] = v
	}

	return out, nil
}

func (r *InputDataReport) readValue(vt ValueType, byteStart int, remainderBit uint) (Value, error) {
	switch vt {
	case ValueTypeNone:
		return NoneValue{}, nil
	case ValueTypeBool:
		return BoolValue{Value: r.Data[byteStart]&(1<<remainderBit) != 0}, nil
	case ValueTypeUInt8:
		return UInt8Value{Value: r.Data[byteStart]}, nil
	case ValueTypeUInt16:
		return UInt16Value{Value: binary.LittleEndian.Uint16(r.Data[byteStart:])}, nil
	case ValueTypeUInt16Vector2:
		return UInt16Vector2Value{
			X: binary.LittleEndian.Uint16(r.Data[byteStart:]),
			Y: binary.LittleEndian.Uint16(r.Data[byteStart+2:]),
		}, nil
	case ValueTypeInt16Vector3:
		return Int16Vector3Value{
			X: int16(binary.LittleEndian.Uint16(r.Data[byteStart:])),
			Y: int16(binary.LittleEndian.Uint16(r.Data[byteStart+2:])),
			Z: int16(binary.LittleEndian.Uint16(r.Data[byteStart+4:])),
		}, nil
	case ValueTypeTouch:
		return TouchValue{
			Index:    r.Data[byteStart] & 0x7f,
			Touching: r.Data[byteStart]&0x80 != 0,
			Pressure: r.Data[byteStart+1],
			X:        binary.LittleEndian.Uint16(r.Data[byteStart+2:]),
			Y:        binary.LittleEndian.Uint16(r.Data[byteStart+4:]),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownValueType, vt)
	}
}
