// Package wsrc implements a source driver fed by an accepted websocket
// connection: each binary frame is decoded as a canonical InputDataReport
// against a capability report negotiated as the connection's first frame,
// matching wstgt's wire format so a network client and a composite can
// exchange unified reports symmetrically.
package wsrc

import (
	"context"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/wire"
)

// Driver reads unified InputDataReport frames from an accepted websocket
// connection and diffs them against the previously seen report to emit
// one NativeEvent per changed capability.
type Driver struct {
	conn      *websocket.Conn
	id        string
	capReport *wire.InputCapabilityReport
	last      map[capability.Capability]wire.Value
	commands  chan source.Command
}

// New wraps an accepted connection as a source. The connection's first
// binary frame must be an InputCapabilityReport; New reads
// and parses it before returning.
func New(id string, conn *websocket.Conn) (*Driver, error) {
	_, buf, err := conn.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("wsrc.New: %w", err)
	}

	capReport, err := wire.UnpackCapabilityReport(buf)
	if err != nil {
		return nil, fmt.Errorf("wsrc.New: %w", err)
	}

	return &Driver{
		conn:      conn,
		id:        id,
		capReport: capReport,
		last:      make(map[capability.Capability]wire.Value),
		commands:  make(chan source.Command, 4),
	}, nil
}

func (d *Driver) ID() string         { return d.id }
func (d *Driver) DevicePath() string { return "ws://" + d.id }

func (d *Driver) Capabilities() ([]capability.Capability, error) {
	caps := make([]capability.Capability, len(d.capReport.Entries))
	for i, e := range d.capReport.Entries {
		caps[i] = e.Capability
	}

	return caps, nil
}

func (d *Driver) Commands() chan<- source.Command { return d.commands }

func (d *Driver) Close() error { return d.conn.Close() }

// Run blocks reading frames and diffing them against the last seen
// report, until ctx is canceled or the socket closes.
func (d *Driver) Run(ctx context.Context, events chan<- capability.NativeEvent) error {
	type readResult struct {
		kind int
		buf  []byte
		err  error
	}

	reads := make(chan readResult, 1)

	go func() {
		for {
			kind, buf, err := d.conn.ReadMessage()

			select {
			case reads <- readResult{kind, buf, err}:
			case <-ctx.Done():
				return
			}

			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-d.commands:
			if cmd.Kind == source.CommandStop {
				return nil
			}

			d.handleCommand(cmd)
		case r := <-reads:
			if r.err != nil {
				if websocket.IsUnexpectedCloseError(r.err) || errors.Is(r.err, websocket.ErrCloseSent) {
					return fmt.Errorf("wsrc.Run: %w: %v", source.ErrDeviceGone, r.err)
				}

				return fmt.Errorf("wsrc.Run: %w: %v", source.ErrDeviceGone, r.err)
			}

			if r.kind != websocket.BinaryMessage {
				continue // text frames are ignored
			}

			if err := d.decode(r.buf, events); err != nil {
				continue // recoverable protocol error: drop the frame
			}
		}
	}
}

func (d *Driver) decode(buf []byte, events chan<- capability.NativeEvent) error {
	report, err := wire.UnpackInputDataReport(buf)
	if err != nil {
		return err
	}

	values, err := report.Decode(d.capReport)
	if err != nil {
		return err
	}

	for cap, v := range values {
		prev, ok := d.last[cap]
		if ok && prev == v {
			continue
		}

		d.last[cap] = v

		native, err := wire.Decode(v)
		if err != nil {
			continue
		}

		events <- capability.NativeEvent{Capability: cap, Value: native}
	}

	return nil
}

func (d *Driver) handleCommand(cmd source.Command) {
	switch cmd.Kind {
	case source.CommandUploadEffect, source.CommandUpdateEffect, source.CommandEraseEffect:
		if cmd.ReplyEffect != nil {
			cmd.ReplyEffect <- source.EffectReply{Err: errEffectsUnsupported}
		}
	}
}

var errEffectsUnsupported = fmt.Errorf("wsrc: force-feedback effects not supported over the websocket transport")
