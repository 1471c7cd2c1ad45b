// Package mousetgt implements the uinput-backed mouse target: EV_REL
// motion and wheel plus the five standard buttons.
package mousetgt

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/evdevio"
	"github.com/hidbridge/daemon/internal/logging"
	"github.com/hidbridge/daemon/internal/target"
)

var mouseID = evdevio.ID{Bustype: evdevio.BUS_VIRTUAL, Vendor: 0x1209, Product: 0x2803, Version: 0x0100}

// motionScale converts the normalized per-event motion delta into
// counts; relative devices have no axis range to advertise, so the scale
// only sets sensitivity.
const motionScale = 1024

var buttonCodes = map[capability.Capability]evdevio.EventCode{
	capability.MouseButtonLeft:   evdevio.BTN_LEFT,
	capability.MouseButtonRight:  evdevio.BTN_RIGHT,
	capability.MouseButtonMiddle: evdevio.BTN_MIDDLE,
	capability.MouseButtonExtra1: evdevio.BTN_SIDE,
	capability.MouseButtonExtra2: evdevio.BTN_EXTRA,
}

// Driver is a uinput-backed mouse target.
type Driver struct {
	target.Base

	logger *log.Logger
	dev    *evdevio.UinputDevice

	mu   sync.Mutex
	held map[evdevio.EventCode]bool
}

// New creates the virtual mouse.
func New() (*Driver, error) {
	caps := make([]capability.Capability, 0, len(buttonCodes)+2)
	for c := range buttonCodes {
		caps = append(caps, c)
	}

	caps = append(caps, capability.MouseMotion, capability.MouseWheel)

	d := &Driver{
		Base:   target.NewBase(uuid.NewString(), target.KindMouse, caps),
		logger: logging.For("mousetgt"),
		held:   make(map[evdevio.EventCode]bool),
	}

	dev, err := evdevio.NewUinputDevice()
	if err != nil {
		return nil, fmt.Errorf("mousetgt.New: %w", err)
	}

	d.dev = dev

	if err := d.declare(); err != nil {
		dev.Close()

		return nil, fmt.Errorf("mousetgt.New: %w", err)
	}

	if err := dev.Create("HIDBridge Mouse", mouseID); err != nil {
		dev.Close()

		return nil, fmt.Errorf("mousetgt.New: %w", err)
	}

	return d, nil
}

func (d *Driver) declare() error {
	if err := d.dev.SetEvBit(evdevio.EV_KEY); err != nil {
		return err
	}

	if err := d.dev.SetEvBit(evdevio.EV_REL); err != nil {
		return err
	}

	for _, code := range buttonCodes {
		if err := d.dev.SetKeyBit(code); err != nil {
			return err
		}
	}

	rels := []evdevio.EventCode{evdevio.REL_X, evdevio.REL_Y, evdevio.REL_WHEEL, evdevio.REL_HWHEEL}
	for _, code := range rels {
		if err := d.dev.SetRelBit(code); err != nil {
			return err
		}
	}

	return nil
}

// Run drains the inbox onto the virtual mouse.
func (d *Driver) Run(ctx context.Context) error {
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

	switch evt.Capability {
	case capability.MouseMotion:
		return d.writeRel(evt.Value, evdevio.REL_X, evdevio.REL_Y, motionScale)
	case capability.MouseWheel:
		return d.writeRel(evt.Value, evdevio.REL_HWHEEL, evdevio.REL_WHEEL, 1)
	default:
		return d.writeButton(evt)
	}
}

func (d *Driver) writeRel(v capability.Value, xCode, yCode evdevio.EventCode, scale float64) error {
	vec, ok := v.(capability.Vector2)
	if !ok {
		return nil
	}

	dx := int32(vec.X * scale)
	dy := int32(vec.Y * scale)

	if dx != 0 {
		if err := d.dev.WriteEvent(evdevio.EV_REL, xCode, dx); err != nil {
			return err
		}
	}

	if dy != 0 {
		if err := d.dev.WriteEvent(evdevio.EV_REL, yCode, dy); err != nil {
			return err
		}
	}

	if dx == 0 && dy == 0 {
		return nil
	}

	return d.dev.Sync()
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

// ClearState releases every held button; relative axes carry no state to
// zero.
func (d *Driver) ClearState() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for code := range d.held {
		if err := d.dev.WriteEvent(evdevio.EV_KEY, code, 0); err != nil {
			return fmt.Errorf("mousetgt.ClearState: %w", err)
		}
	}

	d.held = make(map[evdevio.EventCode]bool)

	return d.dev.Sync()
}

// Close destroys the virtual device and closes the upstream channels.
func (d *Driver) Close() error {
	err := d.dev.Close()

	d.CloseChannels()

	return err
}
