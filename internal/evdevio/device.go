//go:build linux

package evdevio

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unsafe"

	"github.com/hidbridge/daemon/internal/ioctl"
	"golang.org/x/sys/unix"
)

// EventType is a Linux evdev event type (EV_KEY, EV_ABS, ...).
type EventType uint16

// EventCode is a Linux evdev event code, scoped to a particular EventType
// (e.g. a KEY_* or ABS_* constant).
type EventCode uint16

// Device represents an evdev input device.
// It wraps the opened /dev/input/eventN file.
type Device struct {
	file *os.File
	fd   uintptr
}

// NewDevice opens the evdev device at the given path and returns a Device.
// The path is cleaned before opening, and the device file is opened
// in read-write mode. The caller is responsible for closing the device
// when no longer needed.
func NewDevice(path string) (*Device, error) {
	var (
		device *Device
		file   *os.File
		err    error
	)

	file, err = os.OpenFile(filepath.Clean(path), os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("evdevio.NewDevice: %w", err)
	}

	device = &Device{
		file: file,
		fd:   file.Fd(),
	}

	return device, nil
}

// Devices scans /dev/input for event devices, opens each one, and
// returns a slice of Device pointers. If any device fails to open,
// an error is returned and no devices are returned.
func Devices() ([]*Device, error) {
	var (
		devices []*Device
		device  *Device
		paths   []string
		path    string
		err     error
	)

	paths, err = filepath.Glob("/dev/input/event*")
	if err != nil {
		return nil, fmt.Errorf("evdevio.Devices: %w", err)
	}

	devices = make([]*Device, 0, len(paths))
	for _, path = range paths {
		device, err = NewDevice(path)
		if err != nil {
			return nil, fmt.Errorf("evdevio.Devices: %w", err)
		}

		devices = append(devices, device)
	}

	return devices, nil
}

// Fd returns the underlying file descriptor, for use with poll/epoll-based
// read deadlines in source drivers.
func (dev *Device) Fd() uintptr {
	return dev.fd
}

// Path returns the path the device was opened from.
func (dev *Device) Path() string {
	return dev.file.Name()
}

// Name returns the human-readable name of the evdev device.
// It sends the [EVIOCGNAME] ioctl to read up to 256 bytes and
// converts the null-terminated result into a Go string.
func (dev *Device) Name() (string, error) {
	var (
		buf []byte
		err error
	)

	buf = make([]byte, 256)

	err = ioctl.Any(dev.fd, EVIOCGNAME(256), &buf[0])
	if err != nil {
		return "", fmt.Errorf("Device.Name: %w", err)
	}

	return unix.ByteSliceToString(buf), nil
}

// ID returns the raw bus/vendor/product/version identifier for this evdev
// device, read via the EVIOCGID ioctl.
func (dev *Device) ID() (ID, error) {
	var (
		id  ID
		err error
	)

	err = ioctl.Any(dev.fd, EVIOCGID, &id)
	if err != nil {
		return ID{}, fmt.Errorf("Device.ID: %w", err)
	}

	return id, nil
}

// Events returns a slice of all supported event types for the device.
func (dev *Device) Events() ([]EventType, error) {
	var (
		buf       []byte
		events    []EventType
		eventType EventType
		err       error
	)

	buf = make([]byte, (EV_MAX+7)/8)

	err = ioctl.Any(
		dev.fd,
		EVIOCGBIT(0, uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, fmt.Errorf("Device.Events: %w", err)
	}

	events = make([]EventType, 0, EV_CNT)

	for eventType = 0; eventType < EventType(EV_CNT); eventType++ {
		if !TestBit(buf, uint(eventType)) {
			continue
		}

		if eventType == EV_REP {
			continue
		}

		events = append(events, eventType)
	}

	return events, nil
}

// Codes returns all supported event codes for the given eventType.
func (dev *Device) Codes(eventType EventType) ([]EventCode, error) {
	var (
		buf            []byte
		codes          []EventCode
		maxCodes, code uint
		ok             bool
		err            error
	)

	maxCodes, ok = MaxCodes(eventType)
	if !ok {
		return nil, fmt.Errorf("Device.Codes: %w %d", ErrInvalidEventType, eventType)
	}

	buf = make([]byte, (maxCodes+7)/8)

	err = ioctl.Any(
		dev.fd,
		EVIOCGBIT(uint(eventType), uint(len(buf))),
		&buf[0],
	)
	if err != nil {
		return nil, fmt.Errorf("Device.Codes: %w", err)
	}

	codes = make([]EventCode, 0, maxCodes+1)

	for code = 0; code < maxCodes+1; code++ {
		if !TestBit(buf, code) {
			continue
		}

		codes = append(codes, EventCode(code))
	}

	return codes, nil
}

// AbsInfo returns the range, fuzz, flat, and resolution parameters for the
// given absolute axis code, read via EVIOCGABS.
func (dev *Device) AbsInfo(code EventCode) (AbsInfo, error) {
	var (
		info AbsInfo
		err  error
	)

	err = ioctl.Any(dev.fd, EVIOCGABS(uint(code)), &info)
	if err != nil {
		return AbsInfo{}, fmt.Errorf("Device.AbsInfo: %w", err)
	}

	return info, nil
}

// Grab requests (or releases) exclusive access to the device via EVIOCGRAB,
// preventing other listeners (including the kernel's own joydev) from
// observing the same raw events while this source driver owns it.
func (dev *Device) Grab(grab bool) error {
	var (
		val int32
		err error
	)

	if grab {
		val = 1
	}

	err = ioctl.Any(dev.fd, EVIOCGRAB(), &val)
	if err != nil {
		return fmt.Errorf("Device.Grab: %w", err)
	}

	return nil
}

// SetReadDeadline sets a read deadline on the underlying file, bounding
// the next blocking ReadEvent.
func (dev *Device) SetReadDeadline(d time.Duration) error {
	var err error

	err = dev.file.SetReadDeadline(time.Now().Add(d))
	if err != nil {
		return fmt.Errorf("Device.SetReadDeadline: %w", err)
	}

	return nil
}

// ReadEvent blocks (up to the last configured read deadline) for the next
// raw evdev event and returns its type, code, and value.
func (dev *Device) ReadEvent() (EventType, EventCode, int32, error) {
	var (
		raw RawEvent
		buf []byte
		n   int
		err error
	)

	buf = unsafe.Slice((*byte)(unsafe.Pointer(&raw)), unsafe.Sizeof(raw))

	n, err = dev.file.Read(buf)
	if err != nil {
		return 0, 0, 0, err
	}

	if n != len(buf) {
		return 0, 0, 0, fmt.Errorf("Device.ReadEvent: %w: got %d bytes", ErrShortRead, n)
	}

	return EventType(raw.Type), EventCode(raw.Code), raw.Value, nil
}

// WriteEvent writes a raw evdev event (e.g. FF_STATUS, LED, or a SYN_REPORT)
// to the device.
func (dev *Device) WriteEvent(eventType EventType, code EventCode, value int32) error {
	var (
		raw RawEvent
		buf []byte
		err error
	)

	raw = RawEvent{Type: uint16(eventType), Code: uint16(code), Value: value}
	buf = unsafe.Slice((*byte)(unsafe.Pointer(&raw)), unsafe.Sizeof(raw))

	_, err = dev.file.Write(buf)
	if err != nil {
		return fmt.Errorf("Device.WriteEvent: %w", err)
	}

	return nil
}

// Close closes the evdev device by closing its underlying file handle.
func (dev *Device) Close() error {
	var err error

	err = dev.file.Close()
	if err != nil {
		return fmt.Errorf("Device.Close: %w", err)
	}

	return nil
}
