// Package wstgt implements the websocket target: the write-direction
// counterpart of source/wsrc, forwarding the canonical unified reports
// over an accepted connection. The capability report is sent once when
// the composite negotiates it, then one InputDataReport frame per state
// change.
package wstgt

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/logging"
	"github.com/hidbridge/daemon/internal/target"
	"github.com/hidbridge/daemon/internal/wire"
)

// Driver forwards unified reports over one accepted websocket connection.
type Driver struct {
	target.Base

	logger *log.Logger
	conn   *websocket.Conn

	mu        sync.Mutex
	capReport *wire.InputCapabilityReport
	data      *wire.InputDataReport
	last      map[capability.Capability]wire.Value
}

// New wraps an accepted connection as a target. Its capability set is
// negotiated at attach time via SetCapabilities.
func New(id string, conn *websocket.Conn) *Driver {
	return &Driver{
		Base:   target.NewBase(id, target.KindWebsocket, nil),
		logger: logging.For("wstgt").With("id", id),
		conn:   conn,
		data:   wire.NewInputDataReport(),
		last:   make(map[capability.Capability]wire.Value),
	}
}

// SetCapabilities installs the negotiated layout and sends it to the peer
// as the connection's next binary frame, so the remote end can decode the
// data reports that follow.
func (d *Driver) SetCapabilities(entries []wire.CapabilityEntry) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.capReport = &wire.InputCapabilityReport{ReportID: wire.InputCapabilityReportID, Entries: entries}
	d.data = wire.NewInputDataReport()
	d.last = make(map[capability.Capability]wire.Value)

	if err := d.conn.WriteMessage(websocket.BinaryMessage, d.capReport.Pack()); err != nil {
		return fmt.Errorf("wstgt.SetCapabilities: %w", err)
	}

	return nil
}

// Capabilities returns the negotiated capability set, shadowing Base's
// fixed one.
func (d *Driver) Capabilities() []capability.Capability {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.capReport == nil {
		return nil
	}

	caps := make([]capability.Capability, len(d.capReport.Entries))
	for i, e := range d.capReport.Entries {
		caps[i] = e.Capability
	}

	return caps
}

// Run drains the inbox, folding each event into the data report and
// sending the packed frame to the peer.
func (d *Driver) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case evt, ok := <-d.RawInbox():
			if !ok {
				return nil
			}

			if err := d.apply(evt); err != nil {
				d.logger.Debug("event dropped", "capability", evt.Capability, "err", err)
			}
		}
	}
}

// apply mirrors debugtgt's update rule: duplicates (same encoded value as
// last seen) preserve the state version and produce no frame.
func (d *Driver) apply(evt capability.NativeEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.capReport == nil {
		return fmt.Errorf("wstgt.apply: no capability report negotiated")
	}

	entry, ok := d.capReport.GetCapability(evt.Capability)
	if !ok {
		return fmt.Errorf("wstgt.apply: %w: %s", wire.ErrCapabilityNotFound, evt.Capability)
	}

	wv, err := wire.Encode(evt.Value, entry.ValueType)
	if err != nil {
		return fmt.Errorf("wstgt.apply: %w", err)
	}

	if prev, seen := d.last[evt.Capability]; seen && prev == wv {
		return nil
	}

	if err := d.data.Update(d.capReport, evt.Capability, wv); err != nil {
		return fmt.Errorf("wstgt.apply: %w", err)
	}

	d.last[evt.Capability] = wv

	if err := d.conn.WriteMessage(websocket.BinaryMessage, d.data.Pack()); err != nil {
		return fmt.Errorf("wstgt.apply: %w", err)
	}

	return nil
}

// ClearState resets the data region to neutral and sends the zeroed
// snapshot to the peer.
func (d *Driver) ClearState() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.capReport == nil {
		return nil
	}

	d.data = wire.NewInputDataReport()
	d.last = make(map[capability.Capability]wire.Value)

	if err := d.conn.WriteMessage(websocket.BinaryMessage, d.data.Pack()); err != nil {
		return fmt.Errorf("wstgt.ClearState: %w", err)
	}

	return nil
}

// Close closes the connection and the upstream channels.
func (d *Driver) Close() error {
	err := d.conn.Close()

	d.CloseChannels()

	return err
}
