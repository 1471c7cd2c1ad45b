// Package touchscreentgt implements the uinput-backed touchscreen target
// using protocol-B multitouch (ABS_MT_SLOT / ABS_MT_TRACKING_ID /
// ABS_MT_POSITION_X/Y) with up to ten concurrent contacts.
package touchscreentgt

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

var touchscreenID = evdevio.ID{Bustype: evdevio.BUS_VIRTUAL, Vendor: 0x1209, Product: 0x2804, Version: 0x0100}

// maxContacts is the advertised ABS_MT_SLOT count.
const maxContacts = 10

// positionRange is the advertised coordinate space; normalized [0,1]
// positions are scaled into it with origin at top-left.
const positionRange = 65535

// slotState tracks one protocol-B slot's live contact.
type slotState struct {
	trackingID int32
	active     bool
}

// Driver is a uinput-backed protocol-B touchscreen target.
type Driver struct {
	target.Base

	logger *log.Logger
	dev    *evdevio.UinputDevice

	mu           sync.Mutex
	slots        [maxContacts]slotState
	nextTracking int32
	currentSlot  int32
}

// New creates the virtual touchscreen.
func New() (*Driver, error) {
	d := &Driver{
		Base:        target.NewBase(uuid.NewString(), target.KindTouchscreen, []capability.Capability{capability.Touchscreen}),
		logger:      logging.For("touchscreentgt"),
		currentSlot: -1,
	}

	dev, err := evdevio.NewUinputDevice()
	if err != nil {
		return nil, fmt.Errorf("touchscreentgt.New: %w", err)
	}

	d.dev = dev

	if err := d.declare(); err != nil {
		dev.Close()

		return nil, fmt.Errorf("touchscreentgt.New: %w", err)
	}

	if err := dev.Create("HIDBridge Touchscreen", touchscreenID); err != nil {
		dev.Close()

		return nil, fmt.Errorf("touchscreentgt.New: %w", err)
	}

	return d, nil
}

func (d *Driver) declare() error {
	if err := d.dev.SetEvBit(evdevio.EV_KEY); err != nil {
		return err
	}

	if err := d.dev.SetEvBit(evdevio.EV_ABS); err != nil {
		return err
	}

	if err := d.dev.SetKeyBit(evdevio.BTN_TOUCH); err != nil {
		return err
	}

	if err := d.dev.SetPropBit(evdevio.INPUT_PROP_DIRECT); err != nil {
		return err
	}

	setups := []struct {
		code evdevio.EventCode
		max  int32
	}{
		{evdevio.ABS_MT_SLOT, maxContacts - 1},
		{evdevio.ABS_MT_TRACKING_ID, 65535},
		{evdevio.ABS_MT_POSITION_X, positionRange},
		{evdevio.ABS_MT_POSITION_Y, positionRange},
		{evdevio.ABS_X, positionRange},
		{evdevio.ABS_Y, positionRange},
	}

	for _, s := range setups {
		if err := d.dev.SetAbsBit(s.code); err != nil {
			return err
		}

		if err := d.dev.AbsSetup(s.code, evdevio.AbsInfo{Minimum: 0, Maximum: s.max}); err != nil {
			return err
		}
	}

	return nil
}

// Run drains the inbox onto the virtual touchscreen.
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
				d.logger.Warn("touch write failed", "err", err)
			}
		}
	}
}

func (d *Driver) write(evt capability.NativeEvent) error {
	if evt.Capability != capability.Touchscreen {
		return nil
	}

	t, ok := evt.Value.(capability.Touch)
	if !ok {
		return nil
	}

	if int(t.Index) >= maxContacts {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.selectSlot(int32(t.Index)); err != nil {
		return err
	}

	slot := &d.slots[t.Index]

	if t.Touched {
		if !slot.active {
			slot.active = true
			slot.trackingID = d.nextTracking
			d.nextTracking++

			if err := d.dev.WriteEvent(evdevio.EV_ABS, evdevio.ABS_MT_TRACKING_ID, slot.trackingID); err != nil {
				return err
			}

			if d.activeContacts() == 1 {
				if err := d.dev.WriteEvent(evdevio.EV_KEY, evdevio.BTN_TOUCH, 1); err != nil {
					return err
				}
			}
		}

		x := int32(clamp01(t.X) * positionRange)
		y := int32(clamp01(t.Y) * positionRange)

		if err := d.dev.WriteEvent(evdevio.EV_ABS, evdevio.ABS_MT_POSITION_X, x); err != nil {
			return err
		}

		if err := d.dev.WriteEvent(evdevio.EV_ABS, evdevio.ABS_MT_POSITION_Y, y); err != nil {
			return err
		}
	} else if slot.active {
		slot.active = false

		if err := d.dev.WriteEvent(evdevio.EV_ABS, evdevio.ABS_MT_TRACKING_ID, -1); err != nil {
			return err
		}

		if d.activeContacts() == 0 {
			if err := d.dev.WriteEvent(evdevio.EV_KEY, evdevio.BTN_TOUCH, 0); err != nil {
				return err
			}
		}
	}

	return d.dev.Sync()
}

func (d *Driver) selectSlot(slot int32) error {
	if d.currentSlot == slot {
		return nil
	}

	d.currentSlot = slot

	return d.dev.WriteEvent(evdevio.EV_ABS, evdevio.ABS_MT_SLOT, slot)
}

func (d *Driver) activeContacts() int {
	var n int

	for _, s := range d.slots {
		if s.active {
			n++
		}
	}

	return n
}

// ClearState releases every active contact.
func (d *Driver) ClearState() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	released := false

	for i := range d.slots {
		if !d.slots[i].active {
			continue
		}

		if err := d.selectSlot(int32(i)); err != nil {
			return fmt.Errorf("touchscreentgt.ClearState: %w", err)
		}

		if err := d.dev.WriteEvent(evdevio.EV_ABS, evdevio.ABS_MT_TRACKING_ID, -1); err != nil {
			return fmt.Errorf("touchscreentgt.ClearState: %w", err)
		}

		d.slots[i].active = false
		released = true
	}

	if released {
		if err := d.dev.WriteEvent(evdevio.EV_KEY, evdevio.BTN_TOUCH, 0); err != nil {
			return fmt.Errorf("touchscreentgt.ClearState: %w", err)
		}
	}

	return d.dev.Sync()
}

// Close destroys the virtual device and closes the upstream channels.
func (d *Driver) Close() error {
	err := d.dev.Close()

	d.CloseChannels()

	return err
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}

	if f > 1 {
		return 1
	}

	return f
}
