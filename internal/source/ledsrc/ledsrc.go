// Package ledsrc implements an output-only source driver for a Linux
// multicolor LED class device (/sys/class/leds/<name>), used by handhelds
// that expose player-indicator or accent LEDs outside the gamepad's own
// hidraw report.
package ledsrc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/source"
)

// Driver writes RGB brightness values to a sysfs LED class device's
// multi_intensity (or brightness, for single-color LEDs) attribute. It
// produces no input events; it only accepts LEDZone output.
type Driver struct {
	sysfs    string
	maxBright int
	commands chan source.Command
}

// New opens the LED class device rooted at sysfsPath (e.g.
// /sys/class/leds/rgb:indicator).
func New(sysfsPath string) (*Driver, error) {
	buf, err := os.ReadFile(filepath.Clean(filepath.Join(sysfsPath, "max_brightness")))
	if err != nil {
		return nil, fmt.Errorf("ledsrc.New: %w", err)
	}

	max, err := strconv.Atoi(trimSpace(buf))
	if err != nil {
		return nil, fmt.Errorf("ledsrc.New: %w", err)
	}

	return &Driver{sysfs: sysfsPath, maxBright: max, commands: make(chan source.Command, 4)}, nil
}

func (d *Driver) ID() string         { return filepath.Base(d.sysfs) }
func (d *Driver) DevicePath() string { return d.sysfs }

func (d *Driver) Capabilities() ([]capability.Capability, error) {
	return []capability.Capability{capability.LEDZone}, nil
}

func (d *Driver) Commands() chan<- source.Command { return d.commands }

func (d *Driver) Close() error { return nil }

// Run does nothing but drain the command channel for output writes and
// stop requests; an LED device emits no input events.
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
		}
	}
}

func (d *Driver) handleCommand(cmd source.Command) {
	switch cmd.Kind {
	case source.CommandWriteEvent:
		if cmd.Output.Capability != capability.LEDZone {
			return
		}

		d.writeColor(cmd.Output.Value)
	case source.CommandUploadEffect, source.CommandUpdateEffect, source.CommandEraseEffect:
		if cmd.ReplyEffect != nil {
			cmd.ReplyEffect <- source.EffectReply{Err: errEffectsUnsupported}
		}
	}
}

func (d *Driver) writeColor(v capability.Value) {
	vec, ok := v.(capability.Vector3)
	if !ok {
		return
	}

	r := int(clamp01(vec.X) * float64(d.maxBright))
	g := int(clamp01(vec.Y) * float64(d.maxBright))
	b := int(clamp01(vec.Z) * float64(d.maxBright))

	_ = os.WriteFile(
		filepath.Join(d.sysfs, "multi_intensity"),
		[]byte(fmt.Sprintf("%d %d %d", r, g, b)),
		0o644,
	)
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

func trimSpace(b []byte) string {
	i := len(b)
	for i > 0 && (b[i-1] == '\n' || b[i-1] == '\r' || b[i-1] == ' ') {
		i--
	}

	return string(b[:i])
}

var errEffectsUnsupported = fmt.Errorf("ledsrc: force-feedback effects not supported by an LED device")
