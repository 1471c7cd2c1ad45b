// Package debugtgt implements the "unified" debug target:
// it creates no kernel device, instead keeping a canonical
// InputCapabilityReport/InputDataReport pair current and exposing each
// packed data report for the control plane to emit as a signal.
package debugtgt

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/logging"
	"github.com/hidbridge/daemon/internal/target"
	"github.com/hidbridge/daemon/internal/wire"
)

// reportBacklog bounds the packed-report channel; a slow control-plane
// consumer loses the oldest snapshots rather than stalling the pipeline.
const reportBacklog = 16

// Driver is the kernel-less unified-report target.
type Driver struct {
	target.Base

	logger *log.Logger

	mu        sync.Mutex
	capReport *wire.InputCapabilityReport
	data      *wire.InputDataReport
	last      map[capability.Capability]wire.Value

	reports       chan []byte
	reportsClosed bool
}

// New returns an idle debug target; its capability set is negotiated at
// attach time via SetCapabilities.
func New() *Driver {
	return &Driver{
		Base:    target.NewBase(uuid.NewString(), target.KindDebug, nil),
		logger:  logging.For("debugtgt"),
		data:    wire.NewInputDataReport(),
		last:    make(map[capability.Capability]wire.Value),
		reports: make(chan []byte, reportBacklog),
	}
}

// SetCapabilities installs the negotiated layout, resetting the data
// region and the change cache. Entries arrive with offsets already
// computed by the composite's capability-report rebuild.
func (d *Driver) SetCapabilities(entries []wire.CapabilityEntry) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.capReport = &wire.InputCapabilityReport{ReportID: wire.InputCapabilityReportID, Entries: entries}
	d.data = wire.NewInputDataReport()
	d.last = make(map[capability.Capability]wire.Value)

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

// Reports returns the channel of packed InputDataReport frames, one per
// state change.
func (d *Driver) Reports() <-chan []byte { return d.reports }

// Run drains the inbox, folding each event into the data report and
// publishing the packed result.
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

// apply encodes evt into the data region. An event whose encoded value
// equals the last seen one is a duplicate: the state version is preserved
// and no report is published.
func (d *Driver) apply(evt capability.NativeEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.capReport == nil {
		return fmt.Errorf("debugtgt.apply: no capability report negotiated")
	}

	entry, ok := d.capReport.GetCapability(evt.Capability)
	if !ok {
		return fmt.Errorf("debugtgt.apply: %w: %s", wire.ErrCapabilityNotFound, evt.Capability)
	}

	wv, err := wire.Encode(evt.Value, entry.ValueType)
	if err != nil {
		return fmt.Errorf("debugtgt.apply: %w", err)
	}

	if prev, seen := d.last[evt.Capability]; seen && prev == wv {
		return nil
	}

	if err := d.data.Update(d.capReport, evt.Capability, wv); err != nil {
		return fmt.Errorf("debugtgt.apply: %w", err)
	}

	d.last[evt.Capability] = wv
	d.publish(d.data.Pack())

	return nil
}

// publish pushes a packed report, dropping the oldest backlog entry when
// the consumer lags. Callers hold d.mu.
func (d *Driver) publish(buf []byte) {
	if d.reportsClosed {
		return
	}

	select {
	case d.reports <- buf:
		return
	default:
	}

	select {
	case <-d.reports:
	default:
	}

	select {
	case d.reports <- buf:
	default:
	}
}

// ClearState zeroes every negotiated capability's value and publishes the
// neutral snapshot.
func (d *Driver) ClearState() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.capReport == nil {
		return nil
	}

	d.data = wire.NewInputDataReport()
	d.last = make(map[capability.Capability]wire.Value)
	d.publish(d.data.Pack())

	return nil
}

// Close closes the upstream channels and the report stream.
func (d *Driver) Close() error {
	d.CloseChannels()

	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.reportsClosed {
		d.reportsClosed = true
		close(d.reports)
	}

	return nil
}
