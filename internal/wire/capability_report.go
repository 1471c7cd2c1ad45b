package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sort"

	"github.com/hidbridge/daemon/internal/capability"
)

// InputCapabilityReportID is the fixed report id for an
// InputCapabilityReport.
const InputCapabilityReportID uint8 = 0x01

// capabilityEntrySize is the wire size, in bytes, of one capability entry:
// u16 capability + u8 value type + u16 offset bits.
const capabilityEntrySize = 5

// ErrUnknownValueType is returned when decoding a capability entry whose
// value-type byte does not name a known ValueType.
var ErrUnknownValueType = errors.New("wire: unknown value type")

// ErrOffsetsNotMonotonic is returned when an InputCapabilityReport is
// unpacked and an entry's offset is lower than the previous entry's.
var ErrOffsetsNotMonotonic = errors.New("wire: capability offsets not monotonic")

// ErrReportTooLarge is returned when a capability report's total bit size
// would exceed the 62-byte InputDataReport data region.
var ErrReportTooLarge = errors.New("wire: capability report exceeds data region")

// CapabilityEntry names one capability's wire position within an
// InputDataReport: its value type (hence its size) and its bit offset
// into the 62-byte data region.
type CapabilityEntry struct {
	Capability capability.Capability
	ValueType  ValueType
	OffsetBits uint16
}

// InputCapabilityReport describes how an InputDataReport's data region is
// laid out: which capability occupies which bits. It is negotiated once
// (typically at target attach time) and is unaffected by ordinary state
// changes.
type InputCapabilityReport struct {
	ReportID uint8
	Entries  []CapabilityEntry
}

// BuildCapabilityReport lays out caps (capability, value-type pairs) into
// an InputCapabilityReport. Entries are ordered by ValueType.OrderPriority
// (wider types first) so that narrow packed-bit types share trailing bytes
// without forcing padding, matching reports.rs's order_priority contract.
// The input order of equal-priority entries is preserved (stable sort).
func BuildCapabilityReport(caps []CapabilityEntry) (*InputCapabilityReport, error) {
	var (
		ordered    []CapabilityEntry
		offsetBits uint16
		i          int
	)

	ordered = make([]CapabilityEntry, len(caps))
	copy(ordered, caps)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].ValueType.OrderPriority() < ordered[j].ValueType.OrderPriority()
	})

	for i = range ordered {
		ordered[i].OffsetBits = offsetBits
		offsetBits += uint16(ordered[i].ValueType.SizeBits())
	}

	if int(offsetBits+7)/8 > 62 {
		return nil, fmt.Errorf("wire.BuildCapabilityReport: %w: %d bits", ErrReportTooLarge, offsetBits)
	}

	return &InputCapabilityReport{ReportID: InputCapabilityReportID, Entries: ordered}, nil
}

// GetCapability returns the entry describing c, if the report contains it.
func (r *InputCapabilityReport) GetCapability(c capability.Capability) (CapabilityEntry, bool) {
	var entry CapabilityEntry

	for _, entry = range r.Entries {
		if entry.Capability == c {
			return entry, true
		}
	}

	return CapabilityEntry{}, false
}

// Pack serializes the report as [u8 report_id][u8 count][{u16, u8, u16} x count].
func (r *InputCapabilityReport) Pack() []byte {
	var (
		buf   []byte
		entry CapabilityEntry
		pos   int
	)

	buf = make([]byte, 2+len(r.Entries)*capabilityEntrySize)
	buf[0] = InputCapabilityReportID
	buf[1] = uint8(len(r.Entries))

	pos = 2
	for _, entry = range r.Entries {
		binary.LittleEndian.PutUint16(buf[pos:], uint16(entry.Capability))
		buf[pos+2] = uint8(entry.ValueType)
		binary.LittleEndian.PutUint16(buf[pos+3:], entry.OffsetBits)

		pos += capabilityEntrySize
	}

	return buf
}

// UnpackCapabilityReport parses buf into an InputCapabilityReport,
// validating that the declared entry count fits buf and that offsets are
// monotonically non-decreasing.
func UnpackCapabilityReport(buf []byte) (*InputCapabilityReport, error) {
	var (
		count uint8
		i     int
		pos   int
		entry CapabilityEntry
		prev  uint16
	)

	if len(buf) < 2 {
		return nil, fmt.Errorf("wire.UnpackCapabilityReport: buffer too short: %d bytes", len(buf))
	}

	count = buf[1]
	if len(buf) < 2+int(count)*capabilityEntrySize {
		return nil, fmt.Errorf("wire.UnpackCapabilityReport: buffer too short for %d entries", count)
	}

	report := &InputCapabilityReport{
		ReportID: buf[0],
		Entries:  make([]CapabilityEntry, count),
	}

	pos = 2
	for i = 0; i < int(count); i++ {
		entry.Capability = capability.Capability(binary.LittleEndian.Uint16(buf[pos:]))
		entry.ValueType = ValueType(buf[pos+2])
		entry.OffsetBits = binary.LittleEndian.Uint16(buf[pos+3:])

		if entry.ValueType > ValueTypeTouch {
			return nil, fmt.Errorf("wire.UnpackCapabilityReport: %w: %d", ErrUnknownValueType, entry.ValueType)
		}

		if i > 0 && entry.OffsetBits < prev {
			return nil, fmt.Errorf("wire.UnpackCapabilityReport: %w", ErrOffsetsNotMonotonic)
		}

		prev = entry.OffsetBits
		report.Entries[i] = entry
		pos += capabilityEntrySize
	}

	return report, nil
}
