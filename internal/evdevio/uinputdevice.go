//go:build linux

package evdevio

import (
	"fmt"
	"os"
	"syscall"
	"time"
	"unsafe"

	"github.com/hidbridge/daemon/internal/ioctl"
)

// UinputDevice wraps a virtual device created through /dev/uinput: the
// mechanism every target driver uses to present a kernel-visible gamepad,
// keyboard, mouse, or touchscreen node.
type UinputDevice struct {
	file *os.File
	fd   uintptr
}

// NewUinputDevice opens /dev/uinput. Call SetEvBit/SetKeyBit/... to declare
// capabilities, then Create to instantiate the device; Close both destroys
// the device and closes the handle.
func NewUinputDevice() (*UinputDevice, error) {
	var (
		file *os.File
		err  error
	)

	file, err = os.OpenFile("/dev/uinput", os.O_RDWR|syscall.O_NONBLOCK, 0)
	if err != nil {
		return nil, fmt.Errorf("evdevio.NewUinputDevice: %w", err)
	}

	return &UinputDevice{file: file, fd: file.Fd()}, nil
}

// SetEvBit declares that the virtual device will emit events of the given
// type. It must be called before Create.
func (dev *UinputDevice) SetEvBit(eventType EventType) error {
	return dev.ioctlUint(UISetEvBit, uint(eventType), "SetEvBit")
}

// SetKeyBit declares support for a single EV_KEY code.
func (dev *UinputDevice) SetKeyBit(code EventCode) error {
	return dev.ioctlUint(UISetKeyBit, uint(code), "SetKeyBit")
}

// SetRelBit declares support for a single EV_REL code.
func (dev *UinputDevice) SetRelBit(code EventCode) error {
	return dev.ioctlUint(UISetRelBit, uint(code), "SetRelBit")
}

// SetAbsBit declares support for a single EV_ABS code. Call AbsSetup
// afterward (or fill the legacy UinputUserDev arrays) to give it range and
// fuzz/flat parameters.
func (dev *UinputDevice) SetAbsBit(code EventCode) error {
	return dev.ioctlUint(UISetAbsBit, uint(code), "SetAbsBit")
}

// SetMscBit declares support for a single EV_MSC code.
func (dev *UinputDevice) SetMscBit(code EventCode) error {
	return dev.ioctlUint(UISetMscBit, uint(code), "SetMscBit")
}

// SetLedBit declares support for a single EV_LED code.
func (dev *UinputDevice) SetLedBit(code EventCode) error {
	return dev.ioctlUint(UISetLedBit, uint(code), "SetLedBit")
}

// SetFFBit declares support for a single force-feedback effect type.
func (dev *UinputDevice) SetFFBit(effectType uint) error {
	return dev.ioctlUint(UISetFFBit, effectType, "SetFFBit")
}

// SetPropBit declares a single INPUT_PROP_* input property (e.g.
// INPUT_PROP_DIRECT for a touchscreen).
func (dev *UinputDevice) SetPropBit(prop uint) error {
	return dev.ioctlUint(UISetPropBit, prop, "SetPropBit")
}

func (dev *UinputDevice) ioctlUint(req uint, val uint, name string) error {
	var err error

	err = ioctl.Any(dev.fd, req, &val)
	if err != nil {
		return fmt.Errorf("UinputDevice.%s: %w", name, err)
	}

	return nil
}

// AbsSetup configures the range, fuzz, and flat values for an absolute
// axis previously declared with SetAbsBit, via the modern UI_ABS_SETUP
// ioctl.
func (dev *UinputDevice) AbsSetup(code EventCode, info AbsInfo) error {
	var (
		setup UinputAbsSetup
		err   error
	)

	setup = UinputAbsSetup{Code: uint16(code), Info: info}

	err = ioctl.Any(dev.fd, UIAbsSetup, &setup)
	if err != nil {
		return fmt.Errorf("UinputDevice.AbsSetup: %w", err)
	}

	return nil
}

// Create instantiates the virtual device using the modern UI_DEV_SETUP +
// UI_DEV_CREATE sequence, after every SetEvBit/SetKeyBit/... call has run.
func (dev *UinputDevice) Create(name string, id ID) error {
	return dev.CreateFF(name, id, 0)
}

// CreateFF is Create with a nonzero ff_effects_max, for devices that
// declared force-feedback support via SetFFBit.
func (dev *UinputDevice) CreateFF(name string, id ID, ffEffectsMax uint32) error {
	var (
		setup UinputSetup
		err   error
	)

	if len(name) >= UinputMaxNameSize {
		name = name[:UinputMaxNameSize-1]
	}

	copy(setup.Name[:], name)
	setup.ID = id
	setup.FFEffectsMax = ffEffectsMax

	err = ioctl.Any(dev.fd, UIDevSetup, &setup)
	if err != nil {
		return fmt.Errorf("UinputDevice.Create: UI_DEV_SETUP: %w", err)
	}

	err = ioctl.Any[struct{}](dev.fd, UIDevCreate, nil)
	if err != nil {
		return fmt.Errorf("UinputDevice.Create: UI_DEV_CREATE: %w", err)
	}

	return nil
}

// WriteEvent writes a single raw event (key, abs, rel, led, or a
// SYN_REPORT) to the virtual device.
func (dev *UinputDevice) WriteEvent(eventType EventType, code EventCode, value int32) error {
	var (
		raw RawEvent
		buf []byte
		err error
	)

	raw = RawEvent{Type: uint16(eventType), Code: uint16(code), Value: value}
	buf = unsafe.Slice((*byte)(unsafe.Pointer(&raw)), unsafe.Sizeof(raw))

	_, err = dev.file.Write(buf)
	if err != nil {
		return fmt.Errorf("UinputDevice.WriteEvent: %w", err)
	}

	return nil
}

// Sync writes a SYN_REPORT, signaling to readers that a logically atomic
// group of preceding events is complete.
func (dev *UinputDevice) Sync() error {
	return dev.WriteEvent(EV_SYN, SYN_REPORT, 0)
}

// SetReadDeadline bounds the next Read/ReadEvent call, matching Device's
// read-timeout model so the force-feedback upload loop can poll
// alongside a context cancellation check.
func (dev *UinputDevice) SetReadDeadline(d time.Duration) error {
	return dev.file.SetReadDeadline(time.Now().Add(d))
}

// ReadEvent reads one raw event from the uinput fd: ordinary UI_FF_UPLOAD/
// UI_FF_ERASE notifications arrive as EVUinput-typed events whose Value is
// the request id to pass to BeginFFUpload/BeginFFErase.
func (dev *UinputDevice) ReadEvent() (EventType, EventCode, int32, error) {
	var (
		raw RawEvent
		buf []byte
		n   int
		err error
	)

	buf = unsafe.Slice((*byte)(unsafe.Pointer(&raw)), unsafe.Sizeof(raw))

	n, err = dev.file.Read(buf)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("UinputDevice.ReadEvent: %w", err)
	}

	if n != len(buf) {
		return 0, 0, 0, fmt.Errorf("UinputDevice.ReadEvent: %w", ErrShortRead)
	}

	return EventType(raw.Type), EventCode(raw.Code), raw.Value, nil
}

// BeginFFUpload retrieves the full effect payload uinput wants realized
// for the given request id (the Value of an EVUinput/UIFFUpload event).
func (dev *UinputDevice) BeginFFUpload(requestID uint32) (UinputFFUpload, error) {
	var (
		up  UinputFFUpload
		err error
	)

	up.RequestID = requestID

	err = ioctl.Any(dev.fd, UIBeginFFUpload, &up)
	if err != nil {
		return UinputFFUpload{}, fmt.Errorf("UinputDevice.BeginFFUpload: %w", err)
	}

	return up, nil
}

// EndFFUpload completes an upload cycle started by BeginFFUpload, with
// RetVal set to 0 on success or a negative errno on failure.
func (dev *UinputDevice) EndFFUpload(up UinputFFUpload) error {
	var err error

	err = ioctl.Any(dev.fd, UIEndFFUpload, &up)
	if err != nil {
		return fmt.Errorf("UinputDevice.EndFFUpload: %w", err)
	}

	return nil
}

// BeginFFErase retrieves which effect id uinput wants erased.
func (dev *UinputDevice) BeginFFErase(requestID uint32) (UinputFFErase, error) {
	var (
		er  UinputFFErase
		err error
	)

	er.RequestID = requestID

	err = ioctl.Any(dev.fd, UIBeginFFErase, &er)
	if err != nil {
		return UinputFFErase{}, fmt.Errorf("UinputDevice.BeginFFErase: %w", err)
	}

	return er, nil
}

// EndFFErase completes an erase cycle started by BeginFFErase.
func (dev *UinputDevice) EndFFErase(er UinputFFErase) error {
	var err error

	err = ioctl.Any(dev.fd, UIEndFFErase, &er)
	if err != nil {
		return fmt.Errorf("UinputDevice.EndFFErase: %w", err)
	}

	return nil
}

// Close destroys the virtual device and closes the underlying handle.
func (dev *UinputDevice) Close() error {
	var err error

	err = ioctl.Any[struct{}](dev.fd, UIDevDestroy, nil)
	if err != nil {
		dev.file.Close()

		return fmt.Errorf("UinputDevice.Close: UI_DEV_DESTROY: %w", err)
	}

	err = dev.file.Close()
	if err != nil {
		return fmt.Errorf("UinputDevice.Close: %w", err)
	}

	return nil
}
