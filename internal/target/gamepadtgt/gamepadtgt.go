// Package gamepadtgt implements the uinput-backed gamepad target: one
// driver parameterized by a Personality (the vendor/product/version triple
// and device name advertised to the kernel), covering generic, XBox-like,
// DualSense-like, and Steam-Deck-like variants. Each driver keeps a full
// state image for ClearState and services the uinput force-feedback
// upload round trip.
package gamepadtgt

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/evdevio"
	"github.com/hidbridge/daemon/internal/logging"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/target"
)

// Personality is the identity a gamepad target advertises to the kernel.
// Consumers key driver quirks off these ids, so the Xbox, DualSense, and
// Steam Deck variants each reproduce a real product's triple.
type Personality struct {
	Name string
	ID   evdevio.ID
}

var (
	// PersonalityGeneric advertises a neutral virtual pad.
	PersonalityGeneric = Personality{
		Name: "HIDBridge Gamepad",
		ID:   evdevio.ID{Bustype: evdevio.BUS_VIRTUAL, Vendor: 0x1209, Product: 0x2801, Version: 0x0100},
	}

	// PersonalityXbox advertises the X-Box 360 pad triple most consumers
	// have first-class bindings for.
	PersonalityXbox = Personality{
		Name: "Microsoft X-Box 360 pad",
		ID:   evdevio.ID{Bustype: evdevio.BUS_USB, Vendor: 0x045e, Product: 0x028e, Version: 0x0110},
	}

	// PersonalityDualSense advertises Sony's DualSense triple.
	PersonalityDualSense = Personality{
		Name: "Sony Interactive Entertainment DualSense Wireless Controller",
		ID:   evdevio.ID{Bustype: evdevio.BUS_USB, Vendor: 0x054c, Product: 0x0ce6, Version: 0x8111},
	}

	// PersonalitySteamDeck advertises Valve's Steam Deck controller
	// triple, the product-id set consumers use to enable handheld UIs.
	PersonalitySteamDeck = Personality{
		Name: "Steam Deck Controller",
		ID:   evdevio.ID{Bustype: evdevio.BUS_USB, Vendor: 0x28de, Product: 0x1205, Version: 0x0111},
	}
)

// ffEffectsMax is how many concurrently uploaded force-feedback effects
// the virtual device advertises.
const ffEffectsMax = 16

// readTimeout bounds each blocking read of the uinput fd so the FF
// service loop can observe context cancellation.
const readTimeout = 250 * time.Millisecond

// replyTimeout is the bounded-reply deadline for the upstream effect
// round trip.
const replyTimeout = time.Second

// buttonCodes maps each digital capability onto the EV_KEY code the
// virtual device reports it as.
var buttonCodes = map[capability.Capability]evdevio.EventCode{
	capability.GamepadButtonSouth:        evdevio.BTN_SOUTH,
	capability.GamepadButtonEast:         evdevio.BTN_EAST,
	capability.GamepadButtonNorth:        evdevio.BTN_NORTH,
	capability.GamepadButtonWest:         evdevio.BTN_WEST,
	capability.GamepadButtonLeftBumper:   evdevio.BTN_TL,
	capability.GamepadButtonRightBumper:  evdevio.BTN_TR,
	capability.GamepadButtonLeftTrigger:  evdevio.BTN_TL2,
	capability.GamepadButtonRightTrigger: evdevio.BTN_TR2,
	capability.GamepadButtonLeftStick:    evdevio.BTN_THUMBL,
	capability.GamepadButtonRightStick:   evdevio.BTN_THUMBR,
	capability.GamepadButtonLeftPaddle1:  evdevio.BTN_TRIGGER_HAPPY1,
	capability.GamepadButtonLeftPaddle2:  evdevio.BTN_TRIGGER_HAPPY2,
	capability.GamepadButtonRightPaddle1: evdevio.BTN_TRIGGER_HAPPY3,
	capability.GamepadButtonRightPaddle2: evdevio.BTN_TRIGGER_HAPPY4,
	capability.GamepadButtonGuide:        evdevio.BTN_MODE,
	capability.GamepadButtonSelect:       evdevio.BTN_SELECT,
	capability.GamepadButtonStart:        evdevio.BTN_START,
}

// stickRange is the advertised min/max of the four stick axes.
const stickRange = 32767

// effectState remembers one realized effect: the id the source driver
// assigned upstream, plus the rumble magnitudes to replay on EV_FF play.
type effectState struct {
	upstreamID uint32
	strong     uint16
	weak       uint16
}

// Driver is a uinput-backed gamepad target.
type Driver struct {
	target.Base

	personality Personality
	logger      *log.Logger
	dev         *evdevio.UinputDevice

	mu      sync.Mutex
	held    map[evdevio.EventCode]bool
	axes    map[evdevio.EventCode]int32
	dpad    map[capability.Capability]bool
	effects map[uint32]effectState
}

// New creates the virtual device and declares its full button/axis/FF
// capability set before instantiating it.
func New(kind target.Kind, p Personality) (*Driver, error) {
	caps := make([]capability.Capability, 0, len(buttonCodes)+8)
	for c := range buttonCodes {
		caps = append(caps, c)
	}

	caps = append(caps,
		capability.GamepadDpadUp, capability.GamepadDpadDown,
		capability.GamepadDpadLeft, capability.GamepadDpadRight,
		capability.GamepadAxisLeftStick, capability.GamepadAxisRightStick,
		capability.GamepadAxisLeftTrigger, capability.GamepadAxisRightTrigger,
	)

	d := &Driver{
		Base:        target.NewBase(uuid.NewString(), kind, caps),
		personality: p,
		logger:      logging.For("gamepadtgt").With("personality", p.Name),
		held:        make(map[evdevio.EventCode]bool),
		axes:        make(map[evdevio.EventCode]int32),
		dpad:        make(map[capability.Capability]bool),
		effects:     make(map[uint32]effectState),
	}

	dev, err := evdevio.NewUinputDevice()
	if err != nil {
		return nil, fmt.Errorf("gamepadtgt.New: %w", err)
	}

	d.dev = dev

	if err := d.declare(); err != nil {
		dev.Close()

		return nil, fmt.Errorf("gamepadtgt.New: %w", err)
	}

	if err := dev.CreateFF(p.Name, p.ID, ffEffectsMax); err != nil {
		dev.Close()

		return nil, fmt.Errorf("gamepadtgt.New: %w", err)
	}

	return d, nil
}

func (d *Driver) declare() error {
	for _, et := range []evdevio.EventType{evdevio.EV_KEY, evdevio.EV_ABS, evdevio.EV_FF} {
		if err := d.dev.SetEvBit(et); err != nil {
			return err
		}
	}

	for _, code := range buttonCodes {
		if err := d.dev.SetKeyBit(code); err != nil {
			return err
		}
	}

	sticks := []evdevio.EventCode{evdevio.ABS_X, evdevio.ABS_Y, evdevio.ABS_RX, evdevio.ABS_RY}
	for _, code := range sticks {
		if err := d.setupAbs(code, -stickRange, stickRange, 16, 128); err != nil {
			return err
		}
	}

	triggers := []evdevio.EventCode{evdevio.ABS_Z, evdevio.ABS_RZ}
	for _, code := range triggers {
		if err := d.setupAbs(code, 0, 255, 0, 0); err != nil {
			return err
		}
	}

	hats := []evdevio.EventCode{evdevio.ABS_HAT0X, evdevio.ABS_HAT0Y}
	for _, code := range hats {
		if err := d.setupAbs(code, -1, 1, 0, 0); err != nil {
			return err
		}
	}

	return d.dev.SetFFBit(evdevio.FF_RUMBLE)
}

func (d *Driver) setupAbs(code evdevio.EventCode, min, max, fuzz, flat int32) error {
	if err := d.dev.SetAbsBit(code); err != nil {
		return err
	}

	return d.dev.AbsSetup(code, evdevio.AbsInfo{Minimum: min, Maximum: max, Fuzz: fuzz, Flat: flat})
}

// Run drains the inbox onto the virtual device and services the uinput
// force-feedback protocol on a second goroutine, since uinput interleaves
// FF requests with event writes on the same fd but Run is the sole
// writer.
func (d *Driver) Run(ctx context.Context) error {
	go d.ffLoop(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-d.RawInbox():
			if !ok {
				return nil
			}

			if err := d.write(evt); err != nil {
				d.logger.Warn("event write failed", "capability", evt.Capability, "err", err)
			}
		}
	}
}

func (d *Driver) write(evt capability.NativeEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case isDpad(evt.Capability):
		return d.writeDpad(evt)
	case evt.Capability == capability.GamepadAxisLeftStick:
		return d.writeStick(evt.Value, evdevio.ABS_X, evdevio.ABS_Y)
	case evt.Capability == capability.GamepadAxisRightStick:
		return d.writeStick(evt.Value, evdevio.ABS_RX, evdevio.ABS_RY)
	case evt.Capability == capability.GamepadAxisLeftTrigger:
		return d.writeTrigger(evt.Value, evdevio.ABS_Z)
	case evt.Capability == capability.GamepadAxisRightTrigger:
		return d.writeTrigger(evt.Value, evdevio.ABS_RZ)
	default:
		return d.writeButton(evt)
	}
}

func (d *Driver) writeButton(evt capability.NativeEvent) error {
	code, ok := buttonCodes[evt.Capability]
	if !ok {
		return nil
	}

	b, ok := evt.Value.(capability.Bool)
	if !ok {
		return nil
	}

	var v int32
	if b.Pressed {
		v = 1
	}

	if err := d.dev.WriteEvent(evdevio.EV_KEY, code, v); err != nil {
		return err
	}

	if b.Pressed {
		d.held[code] = true
	} else {
		delete(d.held, code)
	}

	return d.dev.Sync()
}

func isDpad(c capability.Capability) bool {
	switch c {
	case capability.GamepadDpadUp, capability.GamepadDpadDown,
		capability.GamepadDpadLeft, capability.GamepadDpadRight:
		return true
	}

	return false
}

// writeDpad folds the four directional booleans into the two ABS_HAT0
// axes the kernel gamepad profile expects.
func (d *Driver) writeDpad(evt capability.NativeEvent) error {
	b, ok := evt.Value.(capability.Bool)
	if !ok {
		return nil
	}

	d.dpad[evt.Capability] = b.Pressed

	var x, y int32

	if d.dpad[capability.GamepadDpadLeft] {
		x = -1
	} else if d.dpad[capability.GamepadDpadRight] {
		x = 1
	}

	if d.dpad[capability.GamepadDpadUp] {
		y = -1
	} else if d.dpad[capability.GamepadDpadDown] {
		y = 1
	}

	if err := d.writeAbs(evdevio.ABS_HAT0X, x); err != nil {
		return err
	}

	if err := d.writeAbs(evdevio.ABS_HAT0Y, y); err != nil {
		return err
	}

	return d.dev.Sync()
}

func (d *Driver) writeStick(v capability.Value, xCode, yCode evdevio.EventCode) error {
	vec, ok := v.(capability.Vector2)
	if !ok {
		return nil
	}

	if err := d.writeAbs(xCode, scaleStick(vec.X)); err != nil {
		return err
	}

	if err := d.writeAbs(yCode, scaleStick(vec.Y)); err != nil {
		return err
	}

	return d.dev.Sync()
}

func (d *Driver) writeTrigger(v capability.Value, code evdevio.EventCode) error {
	s, ok := v.(capability.Scalar)
	if !ok {
		return nil
	}

	if err := d.writeAbs(code, scaleTrigger(s.Value)); err != nil {
		return err
	}

	return d.dev.Sync()
}

// writeAbs writes an axis value and records it in the state image so
// ClearState knows which axes need zeroing.
func (d *Driver) writeAbs(code evdevio.EventCode, v int32) error {
	if err := d.dev.WriteEvent(evdevio.EV_ABS, code, v); err != nil {
		return err
	}

	if v == 0 {
		delete(d.axes, code)
	} else {
		d.axes[code] = v
	}

	return nil
}

func scaleStick(f float64) int32 {
	if f > 1 {
		f = 1
	} else if f < -1 {
		f = -1
	}

	return int32(f * stickRange)
}

func scaleTrigger(f float64) int32 {
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}

	return int32(f * 255)
}

// ClearState emits one release per held button and one zero per non-zero
// axis, leaving the consumer neutral across detach/reattach.
func (d *Driver) ClearState() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for code := range d.held {
		if err := d.dev.WriteEvent(evdevio.EV_KEY, code, 0); err != nil {
			return fmt.Errorf("gamepadtgt.ClearState: %w", err)
		}
	}

	for code := range d.axes {
		if err := d.dev.WriteEvent(evdevio.EV_ABS, code, 0); err != nil {
			return fmt.Errorf("gamepadtgt.ClearState: %w", err)
		}
	}

	d.held = make(map[evdevio.EventCode]bool)
	d.axes = make(map[evdevio.EventCode]int32)
	d.dpad = make(map[capability.Capability]bool)

	return d.dev.Sync()
}

// ffLoop services the uinput side of the force-feedback protocol: upload
// and erase requests surfaced as EVUinput events, and play/stop surfaced
// as EV_FF events, each relayed upstream through the composite.
func (d *Driver) ffLoop(ctx context.Context) {
	for {
		if ctx.Err() != nil {
			return
		}

		if err := d.dev.SetReadDeadline(readTimeout); err != nil {
			return
		}

		et, code, value, err := d.dev.ReadEvent()
		if err != nil {
			if isTimeout(err) {
				continue
			}

			if errors.Is(err, evdevio.ErrShortRead) {
				continue
			}

			return
		}

		switch {
		case et == evdevio.EVUinput && code == evdevio.UIFFUpload:
			d.handleUpload(uint32(value))
		case et == evdevio.EVUinput && code == evdevio.UIFFErase:
			d.handleErase(uint32(value))
		case et == evdevio.EV_FF:
			d.handlePlay(uint32(code), value)
		}
	}
}

func (d *Driver) handleUpload(requestID uint32) {
	up, err := d.dev.BeginFFUpload(requestID)
	if err != nil {
		d.logger.Warn("ff upload begin failed", "err", err)

		return
	}

	data := source.FFEffectData{
		Replay:    up.Effect.Replay.Length,
		Delay:     up.Effect.Replay.Delay,
		Magnitude: rumbleStrong(up.Effect),
	}

	reply := make(chan source.EffectReply, 1)

	var state effectState

	state.strong = rumbleStrong(up.Effect)
	state.weak = rumbleWeak(up.Effect)

	up.RetVal = 0

	if d.SubmitUpload(target.EffectUploadRequest{Kind: target.EffectUpload, Data: data, Reply: reply}) {
		select {
		case r := <-reply:
			if r.Err != nil {
				d.logger.Warn("upstream effect upload failed", "err", r.Err)
			} else {
				state.upstreamID = r.EffectID
			}
		case <-time.After(replyTimeout):
			d.logger.Warn("upstream effect upload timed out")
		}
	}

	d.mu.Lock()
	d.effects[uint32(uint16(up.Effect.Id))] = state
	d.mu.Unlock()

	if err := d.dev.EndFFUpload(up); err != nil {
		d.logger.Warn("ff upload end failed", "err", err)
	}
}

func (d *Driver) handleErase(requestID uint32) {
	er, err := d.dev.BeginFFErase(requestID)
	if err != nil {
		d.logger.Warn("ff erase begin failed", "err", err)

		return
	}

	d.mu.Lock()
	state, ok := d.effects[er.EffectID]
	delete(d.effects, er.EffectID)
	d.mu.Unlock()

	if ok {
		reply := make(chan source.EffectReply, 1)

		if d.SubmitUpload(target.EffectUploadRequest{Kind: target.EffectErase, EffectID: state.upstreamID, Reply: reply}) {
			select {
			case <-reply:
			case <-time.After(replyTimeout):
			}
		}
	}

	er.RetVal = 0

	if err := d.dev.EndFFErase(er); err != nil {
		d.logger.Warn("ff erase end failed", "err", err)
	}
}

// handlePlay relays a consumer's play/stop of an uploaded effect as a
// rumble output event: X carries the strong motor, Y the weak one,
// normalized to [0,1].
func (d *Driver) handlePlay(effectID uint32, value int32) {
	d.mu.Lock()
	state, ok := d.effects[effectID]
	d.mu.Unlock()

	if !ok {
		return
	}

	var vec capability.Vector2

	if value != 0 {
		vec = capability.Vector2{
			X: float64(state.strong) / 0xffff,
			Y: float64(state.weak) / 0xffff,
		}
	}

	d.EmitOutput(source.OutputEvent{Capability: capability.ForceFeedbackRumble, Value: vec})
}

// rumbleStrong and rumbleWeak read the ff_rumble_effect union payload:
// two little-endian u16 magnitudes at the head of the union area.
func rumbleStrong(e evdevio.FFEffect) uint16 {
	return uint16(e.U[0]) | uint16(e.U[1])<<8
}

func rumbleWeak(e evdevio.FFEffect) uint16 {
	return uint16(e.U[2]) | uint16(e.U[3])<<8
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }

	var t timeout

	ok := errors.As(err, &t)

	return ok && t.Timeout()
}

// Close destroys the virtual device and closes the upstream channels.
func (d *Driver) Close() error {
	err := d.dev.Close()

	d.CloseChannels()

	return err
}
