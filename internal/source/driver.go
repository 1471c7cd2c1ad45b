// Package source defines the contract every physical (or network) input
// device driver implements, plus the concrete drivers: evdevsrc, hidrawsrc
// (including a dualsensesrc specialization), iiosrc, ledsrc, and wsrc.
// Every driver pairs a blocking poll loop with a typed command channel.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/hidbridge/daemon/internal/capability"
)

// ErrDeviceGone is returned by Driver.Run when the underlying device
// disappears (ENODEV, EOF on its fd, or equivalent).
var ErrDeviceGone = errors.New("source: device gone")

// Driver is implemented by every concrete source driver. Run blocks,
// delivering normalized events on events until ctx is canceled or the
// device is lost. Blocking reads are bounded by read deadlines; no driver
// pins its OS thread.
type Driver interface {
	// ID returns a unique identifier for this source, typically its
	// kernel device path.
	ID() string

	// DevicePath returns the full path to the underlying device handle
	// (e.g. /dev/input/event3, /dev/hidraw0).
	DevicePath() string

	// Capabilities returns the set of capabilities this source can
	// fulfill, queried once at attach time.
	Capabilities() ([]capability.Capability, error)

	// Run blocks, pushing normalized events to events, until ctx is
	// canceled or a fatal device error occurs.
	Run(ctx context.Context, events chan<- capability.NativeEvent) error

	// Commands returns the channel used to send this driver output
	// commands (write effects, change sample rates, stop).
	Commands() chan<- Command

	// Close releases the driver's underlying resources.
	Close() error
}

// Command is a message sent to a running Driver over its Commands()
// channel.
type Command struct {
	Kind         CommandKind
	Output       OutputEvent
	EffectID     uint32
	EffectData   FFEffectData
	SampleRate   float64
	ReplyEffect  chan<- EffectReply
	ReplySample  chan<- SampleReply
	ReplyGeneric chan<- error
}

// CommandKind discriminates the Command union.
type CommandKind uint8

const (
	CommandWriteEvent CommandKind = iota
	CommandUploadEffect
	CommandUpdateEffect
	CommandEraseEffect
	CommandSetSampleRate
	CommandGetSampleRate
	CommandStop
)

// OutputEvent is a single output-path message routed from a target back to
// every source whose advertised output capabilities accept it.
type OutputEvent struct {
	Capability capability.Capability
	Value      capability.Value
}

// FFEffectData is the effect payload for an upload/update command,
// grounded on evdev's FFEffect (internal/evdevio.FFEffect carries the
// kernel wire shape; this is the normalized form the composite and
// targets exchange).
type FFEffectData struct {
	Replay    uint16 // length in ms
	Delay     uint16
	Magnitude uint16 // 0..0xffff
}

// EffectReply carries the result of an UploadEffect command: the kernel-
// assigned effect id, or an error.
type EffectReply struct {
	EffectID uint32
	Err      error
}

// SampleReply carries the result of a GetSampleRate command, for IIO
// sources whose sampling frequency is runtime-tunable.
type SampleReply struct {
	Rate float64
	Err  error
}

// errDeviceGonef wraps err as ErrDeviceGone with context, used by concrete
// drivers when a read returns ENODEV/EOF.
func errDeviceGonef(op string, err error) error {
	return fmt.Errorf("source: %s: %w: %v", op, ErrDeviceGone, err)
}
