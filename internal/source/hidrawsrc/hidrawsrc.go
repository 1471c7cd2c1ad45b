// Package hidrawsrc implements a source driver over a Linux hidraw node
// (/dev/hidrawN). Unlike evdev, hidraw carries opaque vendor reports, so
// this package only owns the read loop and report framing; a Decoder
// supplied by the caller (e.g. dualsensesrc) turns each frame into
// capability.NativeEvent values, pairing one generic transport with a
// per-controller decoder module.
package hidrawsrc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/source"
)

// readTimeout bounds each blocking read, matching evdevsrc's polling
// cadence for responsive Stop/ctx-cancel handling.
const readTimeout = 250 * time.Millisecond

// Decoder turns a single fixed-size hidraw report into zero or more
// normalized events, and encodes an OutputEvent back into a report to
// write to the device.
type Decoder interface {
	// ReportSize is the exact byte length of every input report this
	// device sends.
	ReportSize() int

	// Capabilities lists every capability this decoder can produce.
	Capabilities() []capability.Capability

	// Decode parses one report into events, appending to dst.
	Decode(report []byte, dst []capability.NativeEvent) []capability.NativeEvent

	// EncodeOutput renders an output event (rumble, LED) as a report to
	// write to the device, or ok=false if this decoder doesn't support it.
	EncodeOutput(evt source.OutputEvent) (report []byte, ok bool)
}

// Expirer is implemented by decoders that run time-based synthesis
// (touch release timers); the read loop polls it between frames so
// synthesized events flow even when the device goes quiet.
type Expirer interface {
	Expire(dst []capability.NativeEvent) []capability.NativeEvent
}

// Driver reads fixed-size hidraw reports and hands them to a Decoder.
type Driver struct {
	file     *os.File
	path     string
	decoder  Decoder
	commands chan source.Command
}

// New opens path as a hidraw device using decoder to interpret its reports.
func New(path string, decoder Decoder) (*Driver, error) {
	file, err := os.OpenFile(filepath.Clean(path), os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("hidrawsrc.New: %w", err)
	}

	return &Driver{
		file:     file,
		path:     path,
		decoder:  decoder,
		commands: make(chan source.Command, 16),
	}, nil
}

func (d *Driver) ID() string         { return d.path }
func (d *Driver) DevicePath() string { return d.path }

func (d *Driver) Capabilities() ([]capability.Capability, error) {
	return d.decoder.Capabilities(), nil
}

func (d *Driver) Commands() chan<- source.Command { return d.commands }

func (d *Driver) Close() error { return d.file.Close() }

// Run blocks, reading fixed-size reports and decoding them, until ctx is
// canceled or the device is lost.
func (d *Driver) Run(ctx context.Context, events chan<- capability.NativeEvent) error {
	buf := make([]byte, d.decoder.ReportSize())
	scratch := make([]capability.NativeEvent, 0, 16)

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

		err := d.file.SetReadDeadline(time.Now().Add(readTimeout))
		if err != nil {
			return fmt.Errorf("hidrawsrc.Run: %w", err)
		}

		n, err := d.file.Read(buf)
		if err != nil {
			if isTimeout(err) {
				scratch = d.expire(scratch[:0], events)

				continue
			}

			if errors.Is(err, io.EOF) {
				return fmt.Errorf("hidrawsrc.Run: %w: %v", source.ErrDeviceGone, err)
			}

			return fmt.Errorf("hidrawsrc.Run: %w", err)
		}

		if n != len(buf) {
			continue
		}

		scratch = d.decoder.Decode(buf, scratch[:0])
		for _, evt := range scratch {
			events <- evt
		}

		scratch = d.expire(scratch[:0], events)
	}
}

func (d *Driver) expire(scratch []capability.NativeEvent, events chan<- capability.NativeEvent) []capability.NativeEvent {
	exp, ok := d.decoder.(Expirer)
	if !ok {
		return scratch
	}

	scratch = exp.Expire(scratch)
	for _, evt := range scratch {
		events <- evt
	}

	return scratch
}

func isTimeout(err error) bool {
	type timeout interface{ Timeout() bool }

	t, ok := err.(timeout)

	return ok && t.Timeout()
}

func (d *Driver) handleCommand(cmd source.Command) {
	switch cmd.Kind {
	case source.CommandWriteEvent:
		report, ok := d.decoder.EncodeOutput(cmd.Output)
		if !ok {
			return
		}

		d.file.Write(report)
	case source.CommandUploadEffect, source.CommandUpdateEffect, source.CommandEraseEffect:
		if cmd.ReplyEffect != nil {
			cmd.ReplyEffect <- source.EffectReply{Err: errEffectsUnsupported}
		}
	}
}

var errEffectsUnsupported = fmt.Errorf("hidrawsrc: upload/erase not supported; use write-report rumble instead")
