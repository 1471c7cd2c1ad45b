//go:build linux

package evdevio

import "github.com/hidbridge/daemon/internal/ioctl"

// UinputMaxNameSize is the fixed size of the name field in UinputUserDev
// and UinputSetup, matching the kernel's UINPUT_MAX_NAME_SIZE.
const UinputMaxNameSize = 80

// EVUinput is the synthetic event type uinput emits on its own fd to ask
// the device owner to realize/erase a force-feedback effect (UI_FF_UPLOAD
// / UI_FF_ERASE), read back via ReadEvent like any other input event.
const EVUinput EventType = 0x0101

// UIFFUpload and UIFFErase are the EVUinput codes carried by the synthetic
// event: Value holds the request id to pass to UIBeginFFUpload/
// UIBeginFFErase.
const (
	UIFFUpload EventCode = 1
	UIFFErase  EventCode = 2
)

// AbsSetupCount is the fixed array length of UinputUserDev.AbsInfo,
// matching ABS_CNT.
const AbsSetupCount = ABS_CNT

// UinputUserDev mirrors struct uinput_user_dev, the legacy single-ioctl
// device descriptor written to /dev/uinput before UI_DEV_CREATE.
type UinputUserDev struct {
	Name         [UinputMaxNameSize]byte
	ID           ID
	FFEffectsMax uint32
	AbsMax       [AbsSetupCount]int32
	AbsMin       [AbsSetupCount]int32
	AbsFuzz      [AbsSetupCount]int32
	AbsFlat      [AbsSetupCount]int32
}

// UinputSetup mirrors struct uinput_setup, the payload for the newer
// UI_DEV_SETUP ioctl.
type UinputSetup struct {
	ID           ID
	Name         [UinputMaxNameSize]byte
	FFEffectsMax uint32
}

// UinputAbsSetup mirrors struct uinput_abs_setup, the payload for
// UI_ABS_SETUP: one absolute axis's full AbsInfo, addressed by code.
type UinputAbsSetup struct {
	Code uint16
	_    [2]byte
	Info AbsInfo
}

var (
	// UISetEvBit is the ioctl request code to declare that the virtual
	// device supports the given EventType. It writes a uint.
	UISetEvBit = ioctl.IOW('U', 100, uint(0))

	// UISetKeyBit is the ioctl request code to declare support for the
	// given EV_KEY code. It writes a uint.
	UISetKeyBit = ioctl.IOW('U', 101, uint(0))

	// UISetRelBit is the ioctl request code to declare support for the
	// given EV_REL code. It writes a uint.
	UISetRelBit = ioctl.IOW('U', 102, uint(0))

	// UISetAbsBit is the ioctl request code to declare support for the
	// given EV_ABS code. It writes a uint.
	UISetAbsBit = ioctl.IOW('U', 103, uint(0))

	// UISetMscBit is the ioctl request code to declare support for the
	// given EV_MSC code. It writes a uint.
	UISetMscBit = ioctl.IOW('U', 104, uint(0))

	// UISetLedBit is the ioctl request code to declare support for the
	// given EV_LED code. It writes a uint.
	UISetLedBit = ioctl.IOW('U', 105, uint(0))

	// UISetSndBit is the ioctl request code to declare support for the
	// given EV_SND code. It writes a uint.
	UISetSndBit = ioctl.IOW('U', 106, uint(0))

	// UISetFFBit is the ioctl request code to declare support for the
	// given force-feedback effect type. It writes a uint.
	UISetFFBit = ioctl.IOW('U', 107, uint(0))

	// UISetPropBit is the ioctl request code to declare support for the
	// given input property (e.g. INPUT_PROP_POINTER). It writes a uint.
	UISetPropBit = ioctl.IOW('U', 110, uint(0))

	// UIDevCreate is the ioctl request code that instantiates the virtual
	// device from the bits and setup declared so far. It carries no data.
	UIDevCreate = ioctl.IO('U', 1)

	// UIDevDestroy is the ioctl request code that tears down a virtual
	// device created with UIDevCreate. It carries no data.
	UIDevDestroy = ioctl.IO('U', 2)

	// UIDevSetup is the ioctl request code for the modern device
	// descriptor. It writes a UinputSetup.
	UIDevSetup = ioctl.IOW('U', 3, UinputSetup{})

	// UIAbsSetup is the ioctl request code to configure a single absolute
	// axis. It writes a UinputAbsSetup.
	UIAbsSetup = ioctl.IOW('U', 4, UinputAbsSetup{})

	// UIBeginFFUpload is the ioctl request code to begin retrieving an
	// uploaded force-feedback effect for the driver to realize on real
	// hardware. It reads/writes a UinputFFUpload.
	UIBeginFFUpload = ioctl.IOWR('U', 200, UinputFFUpload{})

	// UIEndFFUpload is the ioctl request code to signal completion of an
	// UIBeginFFUpload/realize/retval cycle. It writes a UinputFFUpload.
	UIEndFFUpload = ioctl.IOW('U', 201, UinputFFUpload{})

	// UIBeginFFErase is the ioctl request code to begin retrieving an
	// effect-erase request. It reads/writes a UinputFFErase.
	UIBeginFFErase = ioctl.IOWR('U', 202, UinputFFErase{})

	// UIEndFFErase is the ioctl request code to signal completion of an
	// UIBeginFFErase/retval cycle. It writes a UinputFFErase.
	UIEndFFErase = ioctl.IOW('U', 203, UinputFFErase{})
)

// UinputFFUpload mirrors struct uinput_ff_upload: the kernel's request for
// a virtual device's owner to realize an uploaded force-feedback effect
// (e.g. relay it to real hardware via the source driver) and report
// whether it succeeded.
type UinputFFUpload struct {
	RequestID uint32
	RetVal    int32
	Effect    FFEffect
	Old       FFEffect
}

// UinputFFErase mirrors struct uinput_ff_erase: the kernel's request to
// erase a previously uploaded effect by id.
type UinputFFErase struct {
	RequestID uint32
	RetVal    int32
	EffectID  uint32
}
