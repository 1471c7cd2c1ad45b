// Package target defines the contract every virtual output device driver
// implements, plus the concrete drivers in its subpackages: the
// uinput-backed gamepadtgt, keyboardtgt, mousetgt, and touchscreentgt, the
// control-plane debugtgt, and the network wstgt. The contract mirrors
// internal/source's half of the pipeline: a struct per driver plus typed
// channels, no inheritance.
package target

import (
	"context"
	"sync"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/source"
)

// Kind names a target driver variant, matching the kind strings device
// configs and the control plane's CreateTargetDevice method use.
type Kind string

const (
	KindGamepad     Kind = "gamepad"
	KindXboxGamepad Kind = "xbox"
	KindDualSense   Kind = "dualsense"
	KindSteamDeck   Kind = "steam-deck"
	KindKeyboard    Kind = "keyboard"
	KindMouse       Kind = "mouse"
	KindTouchscreen Kind = "touchscreen"
	KindDebug       Kind = "debug"
	KindWebsocket   Kind = "websocket"
)

// Driver is implemented by every concrete target driver. The composite
// pushes translated events into Inbox; the driver renders them on its
// virtual device. Output and EffectUploads carry the reverse path: LED/
// rumble state and force-feedback effect uploads travel from the consumer
// through the driver back up to the composite, which routes them to a
// source.
type Driver interface {
	// ID returns a unique identifier for this target, stable for its
	// lifetime.
	ID() string

	// Kind returns the driver variant.
	Kind() Kind

	// Capabilities returns the set of capabilities this target can
	// render.
	Capabilities() []capability.Capability

	// Inbox returns the channel the composite pushes translated events
	// into. Senders must never block on it.
	Inbox() chan<- capability.NativeEvent

	// Output returns the channel carrying output events (rumble
	// magnitudes, LED colors) the consumer wrote to the virtual device.
	// It is closed when the driver shuts down.
	Output() <-chan source.OutputEvent

	// EffectUploads returns the channel carrying force-feedback effect
	// upload/update/erase requests, each with a one-shot reply channel.
	// It is closed when the driver shuts down.
	EffectUploads() <-chan EffectUploadRequest

	// Run blocks draining Inbox and servicing the virtual device until
	// ctx is canceled or the driver is closed.
	Run(ctx context.Context) error

	// ClearState emits a synthetic release for every currently held
	// button and a zero value for every non-zero axis, leaving the
	// consumer in a neutral state.
	ClearState() error

	// Close releases the virtual device and closes Output/EffectUploads.
	Close() error
}

// EffectKind discriminates an EffectUploadRequest.
type EffectKind uint8

const (
	EffectUpload EffectKind = iota
	EffectUpdate
	EffectErase
)

// EffectUploadRequest is one force-feedback round-trip message: the
// target forwards the consumer's uploaded effect upstream and awaits the
// hardware-assigned id on Reply. Update and Erase name a
// previously assigned id in EffectID.
type EffectUploadRequest struct {
	Kind     EffectKind
	EffectID uint32
	Data     source.FFEffectData
	Reply    chan source.EffectReply
}

// Base carries the identity and channel plumbing shared by every concrete
// driver; drivers embed it and implement ClearState/Run/Close themselves.
// The Raw* accessors exist because Go does not promote an embedded type's
// unexported fields across package boundaries: a driver's own Run needs
// the receive side of the inbox and the send side of the output/upload
// channels, while the Driver interface only exposes the composite-facing
// directions.
type Base struct {
	id   string
	kind Kind
	caps []capability.Capability

	ch *channels
}

// channels is Base's shared mutable half, held behind a pointer so Base
// itself stays freely copyable at construction time.
type channels struct {
	mu      sync.Mutex
	closed  bool
	inbox   chan capability.NativeEvent
	output  chan source.OutputEvent
	uploads chan EffectUploadRequest
}

// inboxCapacity bounds a target's inbox; the composite drops events for a
// full target rather than blocking its pipeline.
const inboxCapacity = 64

// NewBase builds the shared plumbing for a driver of the given kind and
// static capability set.
func NewBase(id string, kind Kind, caps []capability.Capability) Base {
	return Base{
		id:   id,
		kind: kind,
		caps: caps,
		ch: &channels{
			inbox:   make(chan capability.NativeEvent, inboxCapacity),
			output:  make(chan source.OutputEvent, 16),
			uploads: make(chan EffectUploadRequest, 4),
		},
	}
}

func (b *Base) ID() string { return b.id }
func (b *Base) Kind() Kind { return b.kind }

func (b *Base) Capabilities() []capability.Capability { return b.caps }

func (b *Base) Inbox() chan<- capability.NativeEvent { return b.ch.inbox }

func (b *Base) Output() <-chan source.OutputEvent { return b.ch.output }

func (b *Base) EffectUploads() <-chan EffectUploadRequest { return b.ch.uploads }

// RawInbox is the driver-side receive half of Inbox.
func (b *Base) RawInbox() <-chan capability.NativeEvent { return b.ch.inbox }

// RawOutput is the driver-side send half of Output.
func (b *Base) RawOutput() chan<- source.OutputEvent { return b.ch.output }

// RawEffectUploads is the driver-side send half of EffectUploads.
func (b *Base) RawEffectUploads() chan<- EffectUploadRequest { return b.ch.uploads }

// CloseChannels closes the inbox and the upstream-facing channels exactly
// once, terminating the driver's Run loop and the composite's drain
// goroutines. Drivers call it from Close after releasing their device
// handle; the composite guarantees it has stopped sending (the driver is
// out of its target roster) before Close runs.
func (b *Base) CloseChannels() {
	b.ch.mu.Lock()
	defer b.ch.mu.Unlock()

	if b.ch.closed {
		return
	}

	b.ch.closed = true
	close(b.ch.inbox)
	close(b.ch.output)
	close(b.ch.uploads)
}

// EmitOutput pushes evt upstream without ever blocking the driver's
// device-servicing loop. Safe to race with CloseChannels; events arriving
// after close are dropped.
func (b *Base) EmitOutput(evt source.OutputEvent) {
	b.ch.mu.Lock()
	defer b.ch.mu.Unlock()

	if b.ch.closed {
		return
	}

	select {
	case b.ch.output <- evt:
	default:
	}
}

// SubmitUpload pushes a force-feedback request upstream, reporting whether
// it was accepted (false when the channel is full or already closed).
func (b *Base) SubmitUpload(req EffectUploadRequest) bool {
	b.ch.mu.Lock()
	defer b.ch.mu.Unlock()

	if b.ch.closed {
		return false
	}

	select {
	case b.ch.uploads <- req:
		return true
	default:
		return false
	}
}
