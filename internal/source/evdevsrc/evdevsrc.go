// Package evdevsrc implements a source driver over a Linux evdev node
// (/dev/input/eventN), using internal/evdevio for the underlying ioctls
// and blocking reads.
package evdevsrc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/evdevio"
	"github.com/hidbridge/daemon/internal/source"
)

// readTimeout bounds each blocking read so Run can periodically check for
// context cancellation.
const readTimeout = 250 * time.Millisecond

// axis describes how a single EV_ABS code contributes to a capability
// value: its own Capability (for a Scalar) or, when paired, the
// Capability of the Vector2/Vector3 it is one component of.
type axis struct {
	cap    capability.Capability
	info   evdevio.AbsInfo
	vector component
}

// component names which field of a multi-axis capability this EV_ABS code
// feeds.
type component uint8

const (
	componentNone component = iota
	componentX
	componentY
	componentZ
)

// Driver reads raw evdev events from a single device node, normalizes
// them against the device's advertised axis ranges, and emits
// capability.NativeEvent values.
type Driver struct {
	dev      *evdevio.Device
	keyMap   map[evdevio.EventCode]capability.Capability
	absMap   map[evdevio.EventCode]*axis
	commands chan source.Command

	// lastVector caches the most recently seen component of each
	// multi-axis capability, since wire events arrive one axis at a time.
	lastVector map[capability.Capability]capability.Value
}

// New opens path as an evdev device and builds its capability map from a
// caller-supplied event-code table (populated from a device config's
// capability_map).
func New(path string, keyMap map[evdevio.EventCode]capability.Capability, absCaps map[evdevio.EventCode]capability.Capability) (*Driver, error) {
	var (
		dev *evdevio.Device
		err error
	)

	dev, err = evdevio.NewDevice(path)
	if err != nil {
		return nil, fmt.Errorf("evdevsrc.New: %w", err)
	}

	d := &Driver{
		dev:        dev,
		keyMap:     keyMap,
		absMap:     make(map[evdevio.EventCode]*axis, len(absCaps)),
		commands:   make(chan source.Command, 16),
		lastVector: make(map[capability.Capability]capability.Value),
	}

	for code, cap := range absCaps {
		var info evdevio.AbsInfo

		info, err = dev.AbsInfo(code)
		if err != nil {
			dev.Close()

			return nil, fmt.Errorf("evdevsrc.New: %w", err)
		}

		d.absMap[code] = &axis{cap: cap, info: info, vector: inferComponent(code)}
	}

	return d, nil
}

// ID returns the device path, which is unique per evdev node.
func (d *Driver) ID() string {
	return d.dev.Path()
}

// DevicePath returns the underlying evdev node path.
func (d *Driver) DevicePath() string {
	return d.dev.Path()
}

// Capabilities returns every capability this device's key/abs map names.
func (d *Driver) Capabilities() ([]capability.Capability, error) {
	caps := make([]capability.Capability, 0, len(d.keyMap)+len(d.absMap))

	for _, c := range d.keyMap {
		caps = append(caps, c)
	}

	for _, a := range d.absMap {
		caps = append(caps, a.cap)
	}

	return caps, nil
}

// Commands returns the command channel.
func (d *Driver) Commands() chan<- source.Command {
	return d.commands
}

// Close releases the underlying device handle.
func (d *Driver) Close() error {
	return d.dev.Close()
}

// Run blocks, translating raw evdev reads into normalized events, until
// ctx is canceled or the device is lost.
func (d *Driver) Run(ctx context.Context, events chan<- capability.NativeEvent) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-d.commands:
			if cmd.Kind == source.CommandStop {
				return nil
			}

			d.handleCommand(cmd)
		default:
		}

		err := d.dev.SetReadDeadline(readTimeout)
		if err != nil {
			return fmt.Errorf("evdevsrc.Run: %w", err)
		}

		eventType, code, value, err := d.dev.ReadEvent()
		if err != nil {
			if errors.Is(err, evdevio.ErrShortRead) {
				continue
			}

			if isTimeout(err) {
				continue
			}

			if errors.Is(err, io.EOF) {
				return fmt.Errorf("evdevsrc.Run: %w: %v", source.ErrDeviceGone, err)
			}

			return fmt.Errorf("evdevsrc.Run: %w", err)
		}

		d.translate(eventType, code, value, events)
	}
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }

	t, ok := err.(timeout)

	return ok && t.Timeout()
}

func (d *Driver) translate(eventType evdevio.EventType, code evdevio.EventCode, value int32, events chan<- capability.NativeEvent) {
	switch eventType {
	case evdevio.EV_KEY:
		cap, ok := d.keyMap[code]
		if !ok {
			return
		}

		events <- capability.NativeEvent{Capability: cap, Value: capability.Bool{Pressed: value != 0}}
	case evdevio.EV_ABS:
		a, ok := d.absMap[code]
		if !ok {
			return
		}

		if capability.ValueTypeOf(a.cap) == capability.ValueTypeVector2 && a.vector != componentNone {
			events <- capability.NativeEvent{Capability: a.cap, Value: d.foldVector(a, value)}

			return
		}

		events <- capability.NativeEvent{Capability: a.cap, Value: normalizeScalar(a.info, value)}
	}
}

// inferComponent names which vector component an EV_ABS code feeds, for
// capabilities whose canonical value is a Vector2 built from two separate
// wire axes.
func inferComponent(code evdevio.EventCode) component {
	switch code {
	case evdevio.ABS_X, evdevio.ABS_RX, evdevio.ABS_HAT0X:
		return componentX
	case evdevio.ABS_Y, evdevio.ABS_RY, evdevio.ABS_HAT0Y:
		return componentY
	}

	return componentNone
}

// foldVector merges one axis update into the cached Vector2 for a.cap,
// since evdev delivers X and Y as separate events but the canonical value
// carries both.
func (d *Driver) foldVector(a *axis, value int32) capability.Vector2 {
	prev, _ := d.lastVector[a.cap].(capability.Vector2)

	s, ok := normalizeScalar(a.info, value).(capability.Scalar)
	if !ok {
		return prev
	}

	if a.vector == componentX {
		prev.X = s.Value
	} else {
		prev.Y = s.Value
	}

	d.lastVector[a.cap] = prev

	return prev
}

// normalizeScalar maps a raw axis value into [-1,1] when the axis range
// straddles zero, or [0,1] when it does not (e.g. an unsigned trigger).
func normalizeScalar(info evdevio.AbsInfo, value int32) capability.Value {
	if info.Minimum >= 0 {
		span := float64(info.Maximum - info.Minimum)
		if span == 0 {
			return capability.Scalar{Value: 0}
		}

		return capability.Scalar{Value: float64(value-info.Minimum) / span}
	}

	mid := float64(info.Maximum+info.Minimum) / 2
	half := float64(info.Maximum-info.Minimum) / 2
	if half == 0 {
		return capability.Scalar{Value: 0}
	}

	return capability.Scalar{Value: (float64(value) - mid) / half}
}

func (d *Driver) handleCommand(cmd source.Command) {
	switch cmd.Kind {
	case source.CommandWriteEvent:
		// Output events are dropped: this driver writes no force-feedback
		// or LED output to the evdev node.
	case source.CommandUploadEffect, source.CommandUpdateEffect, source.CommandEraseEffect:
		if cmd.ReplyEffect != nil {
			cmd.ReplyEffect <- source.EffectReply{Err: errEffectsUnsupported}
		}
	}
}

var errEffectsUnsupported = fmt.Errorf("evdevsrc: force-feedback effects not supported by this device")
