// Package keyboardtgt implements the uinput-backed keyboard target. It
// declares the full EV_KEY range so every capability.KeyboardKey(code)
// passes through untranslated.
package keyboardtgt

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

var keyboardID = evdevio.ID{Bustype: evdevio.BUS_VIRTUAL, Vendor: 0x1209, Product: 0x2802, Version: 0x0100}

// Driver is a uinput-backed keyboard target.
type Driver struct {
	target.Base

	logger *log.Logger
	dev    *evdevio.UinputDevice

	mu   sync.Mutex
	held map[evdevio.EventCode]bool
}

// New creates the virtual keyboard, declaring every key code up to
// KEY_MAX.
func New() (*Driver, error) {
	caps := make([]capability.Capability, 0, evdevio.KEY_MAX)
	for code := 1; code <= evdevio.KEY_MAX; code++ {
		caps = append(caps, capability.KeyboardKey(evdevio.EventCode(code)))
	}

	d := &Driver{
		Base:   target.NewBase(uuid.NewString(), target.KindKeyboard, caps),
		logger: logging.For("keyboardtgt"),
		held:   make(map[evdevio.EventCode]bool),
	}

	dev, err := evdevio.NewUinputDevice()
	if err != nil {
		return nil, fmt.Errorf("keyboardtgt.New: %w", err)
	}

	d.dev = dev

	if err := dev.SetEvBit(evdevio.EV_KEY); err != nil {
		dev.Close()

		return nil, fmt.Errorf("keyboardtgt.New: %w", err)
	}

	for code := 1; code <= evdevio.KEY_MAX; code++ {
		if err := dev.SetKeyBit(evdevio.EventCode(code)); err != nil {
			dev.Close()

			return nil, fmt.Errorf("keyboardtgt.New: %w", err)
		}
	}

	if err := dev.Create("HIDBridge Keyboard", keyboardID); err != nil {
		dev.Close()

		return nil, fmt.Errorf("keyboardtgt.New: %w", err)
	}

	return d, nil
}

// Run drains the inbox onto the virtual keyboard.
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
				d.logger.Warn("key write failed", "capability", evt.Capability, "err", err)
			}
		}
	}
}

func (d *Driver) write(evt capability.NativeEvent) error {
	code, ok := capability.IsKeyboardKey(evt.Capability)
	if !ok {
		return nil
	}

	b, ok := evt.Value.(capability.Bool)
	if !ok {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

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

// ClearState releases every currently held key.
func (d *Driver) ClearState() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	for code := range d.held {
		if err := d.dev.WriteEvent(evdevio.EV_KEY, code, 0); err != nil {
			return fmt.Errorf("keyboardtgt.ClearState: %w", err)
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
