// Package iiosrc implements a source driver over a Linux IIO (Industrial
// I/O) sysfs device, used for the accelerometer/gyroscope inputs many
// handhelds expose as iio:deviceN rather than evdev nodes, using plain
// file-based sysfs access; there is no IIO-specific library to lean on.
package iiosrc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/source"
)

// pollInterval is how often sysfs raw-value files are re-read. IIO sysfs
// attributes have no blocking read semantics, so this driver polls on a
// ticker instead of blocking on a wire read; the poll still runs on its
// own dedicated goroutine per source.
const pollInterval = 8 * time.Millisecond

// axis names one sysfs in_<axis>_raw file and the scale file that
// converts its raw reading to physical units.
type axis struct {
	rawPath   string
	scalePath string
	scale     float64
}

// IdentityMount is the no-op mount matrix for sensors aligned with the
// device's display orientation.
var IdentityMount = [3][3]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Driver polls an IIO device's accelerometer and/or gyroscope raw value
// files and emits normalized Vector3 events.
type Driver struct {
	id        string
	sysfs     string
	accel     [3]*axis // x, y, z
	gyro      [3]*axis
	fullRange float64 // clamp bound used to normalize into [-1,1]
	mount     [3][3]float64
	commands  chan source.Command
}

// New opens the IIO device rooted at sysfsPath (e.g.
// /sys/bus/iio/devices/iio:device0) and discovers which of accel_x/y/z and
// anglvel_x/y/z raw files it exposes. mount is the sensor's mount matrix,
// applied as v' = M·v after scaling;
// a zero matrix is replaced by IdentityMount.
func New(sysfsPath string, fullRange float64, mount [3][3]float64) (*Driver, error) {
	if mount == ([3][3]float64{}) {
		mount = IdentityMount
	}

	d := &Driver{
		id:        filepath.Base(sysfsPath),
		sysfs:     sysfsPath,
		fullRange: fullRange,
		mount:     mount,
		commands:  make(chan source.Command, 4),
	}

	d.accel[0], _ = d.discoverAxis("accel_x")
	d.accel[1], _ = d.discoverAxis("accel_y")
	d.accel[2], _ = d.discoverAxis("accel_z")
	d.gyro[0], _ = d.discoverAxis("anglvel_x")
	d.gyro[1], _ = d.discoverAxis("anglvel_y")
	d.gyro[2], _ = d.discoverAxis("anglvel_z")

	if d.accel[0] == nil && d.gyro[0] == nil {
		return nil, fmt.Errorf("iiosrc.New: %s exposes neither in_accel_x_raw nor in_anglvel_x_raw", sysfsPath)
	}

	return d, nil
}

func (d *Driver) discoverAxis(name string) (*axis, error) {
	raw := filepath.Join(d.sysfs, "in_"+name+"_raw")

	if _, err := os.Stat(raw); err != nil {
		return nil, fmt.Errorf("iiosrc.discoverAxis: %w", err)
	}

	scalePath := filepath.Join(d.sysfs, "in_"+name+"_scale")

	scale := 1.0

	if buf, err := os.ReadFile(filepath.Clean(scalePath)); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(string(buf)), 64); err == nil {
			scale = v
		}
	}

	return &axis{rawPath: raw, scalePath: scalePath, scale: scale}, nil
}

func (d *Driver) ID() string         { return d.id }
func (d *Driver) DevicePath() string { return d.sysfs }

func (d *Driver) Capabilities() ([]capability.Capability, error) {
	var caps []capability.Capability

	if d.accel[0] != nil {
		caps = append(caps, capability.Accelerometer)
	}

	if d.gyro[0] != nil {
		caps = append(caps, capability.Gyroscope)
	}

	return caps, nil
}

func (d *Driver) Commands() chan<- source.Command { return d.commands }

func (d *Driver) Close() error { return nil }

// Run polls the accel/gyro sysfs attributes on a ticker until ctx is
// canceled.
func (d *Driver) Run(ctx context.Context, events chan<- capability.NativeEvent) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-d.commands:
			if cmd.Kind == source.CommandStop {
				return nil
			}

			d.handleCommand(cmd)
		case <-ticker.C:
			if d.accel[0] != nil {
				v, err := d.readVector(d.accel)
				if err == nil {
					events <- capability.NativeEvent{Capability: capability.Accelerometer, Value: v}
				}
			}

			if d.gyro[0] != nil {
				v, err := d.readVector(d.gyro)
				if err == nil {
					events <- capability.NativeEvent{Capability: capability.Gyroscope, Value: v}
				}
			}
		}
	}
}

func (d *Driver) readVector(axes [3]*axis) (capability.Vector3, error) {
	var physical [3]float64

	for i, a := range axes {
		if a == nil {
			continue
		}

		buf, err := os.ReadFile(filepath.Clean(a.rawPath))
		if err != nil {
			return capability.Vector3{}, fmt.Errorf("iiosrc.readVector: %w", err)
		}

		raw, err := strconv.ParseInt(strings.TrimSpace(string(buf)), 10, 64)
		if err != nil {
			return capability.Vector3{}, fmt.Errorf("iiosrc.readVector: %w", err)
		}

		physical[i] = float64(raw) * a.scale
	}

	rotated := rotate(d.mount, physical)

	return capability.Vector3{
		X: clamp(rotated[0]/d.fullRange, -1, 1),
		Y: clamp(rotated[1]/d.fullRange, -1, 1),
		Z: clamp(rotated[2]/d.fullRange, -1, 1),
	}, nil
}

// rotate applies the mount matrix: v' = M·v.
func rotate(m [3][3]float64, v [3]float64) [3]float64 {
	var out [3]float64

	for i := 0; i < 3; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}

	return out
}

// handleCommand services the IIO-specific get/set sample-rate commands;
// the sampling frequency lives in a device-level sysfs attribute.
func (d *Driver) handleCommand(cmd source.Command) {
	switch cmd.Kind {
	case source.CommandSetSampleRate:
		err := os.WriteFile(
			filepath.Join(d.sysfs, "sampling_frequency"),
			[]byte(strconv.FormatFloat(cmd.SampleRate, 'f', -1, 64)),
			0o644,
		)
		if cmd.ReplyGeneric != nil {
			cmd.ReplyGeneric <- err
		}
	case source.CommandGetSampleRate:
		if cmd.ReplySample == nil {
			return
		}

		buf, err := os.ReadFile(filepath.Clean(filepath.Join(d.sysfs, "sampling_frequency")))
		if err != nil {
			cmd.ReplySample <- source.SampleReply{Err: err}

			return
		}

		rate, err := strconv.ParseFloat(strings.TrimSpace(string(buf)), 64)
		cmd.ReplySample <- source.SampleReply{Rate: rate, Err: err}
	case source.CommandUploadEffect, source.CommandUpdateEffect, source.CommandEraseEffect:
		if cmd.ReplyEffect != nil {
			cmd.ReplyEffect <- source.EffectReply{Err: errEffectsUnsupported}
		}
	}
}

var errEffectsUnsupported = fmt.Errorf("iiosrc: force-feedback effects not supported by an inertial sensor")

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}

	if v > hi {
		return hi
	}

	return v
}
