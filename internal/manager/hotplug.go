//go:build linux

package manager

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sys/unix"
)

// ueventGroupKernel is the netlink multicast group carrying kernel-
// originated (not udev-originated) uevents.
const ueventGroupKernel = 1

// ueventEvent is one parsed kernel uevent.
type ueventEvent struct {
	Action    string
	Subsystem string
	DevPath   string
	DevName   string
	Env       map[string]string
}

// ueventMonitor listens for ADD/REMOVE device events on the kernel
// uevent netlink socket.
type ueventMonitor struct {
	fd int
}

func newUeventMonitor() (*ueventMonitor, error) {
	fd, err := unix.Socket(unix.AF_NETLINK, unix.SOCK_DGRAM|unix.SOCK_CLOEXEC, unix.NETLINK_KOBJECT_UEVENT)
	if err != nil {
		return nil, fmt.Errorf("manager.newUeventMonitor: %w", err)
	}

	addr := &unix.SockaddrNetlink{Family: unix.AF_NETLINK, Groups: ueventGroupKernel}

	if err := unix.Bind(fd, addr); err != nil {
		unix.Close(fd)

		return nil, fmt.Errorf("manager.newUeventMonitor: bind: %w", err)
	}

	return &ueventMonitor{fd: fd}, nil
}

func (m *ueventMonitor) Close() error {
	return unix.Close(m.fd)
}

// run blocks, pushing parsed events until ctx is canceled.
func (m *ueventMonitor) run(ctx context.Context, events chan<- ueventEvent) error {
	defer close(events)

	buf := make([]byte, 8192)

	if err := unix.SetsockoptTimeval(m.fd, unix.SOL_SOCKET, unix.SO_RCVTIMEO, &unix.Timeval{Sec: 1}); err != nil {
		return fmt.Errorf("manager.ueventMonitor.run: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		n, _, err := unix.Recvfrom(m.fd, buf, 0)
		if err != nil {
			if errors.Is(err, unix.EAGAIN) || errors.Is(err, unix.EWOULDBLOCK) || errors.Is(err, unix.EINTR) {
				continue
			}

			return fmt.Errorf("manager.ueventMonitor.run: %w", err)
		}

		if n == 0 {
			continue
		}

		evt := parseUevent(buf[:n])
		if evt == nil {
			continue
		}

		select {
		case events <- *evt:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// parseUevent parses a kernel uevent datagram: "ACTION@KOBJ\0KEY=VALUE\0...".
func parseUevent(data []byte) *ueventEvent {
	if len(data) == 0 {
		return nil
	}

	parts := bytes.Split(data, []byte{0})
	if len(parts) == 0 || len(parts[0]) == 0 {
		return nil
	}

	header := string(parts[0])

	atIdx := strings.Index(header, "@")
	if atIdx < 1 {
		return nil
	}

	evt := &ueventEvent{Action: header[:atIdx], Env: make(map[string]string)}

	for _, part := range parts[1:] {
		if len(part) == 0 {
			continue
		}

		kv := string(part)

		eqIdx := strings.Index(kv, "=")
		if eqIdx < 1 {
			continue
		}

		key, value := kv[:eqIdx], kv[eqIdx+1:]
		evt.Env[key] = value

		switch key {
		case "SUBSYSTEM":
			evt.Subsystem = value
		case "DEVNAME":
			evt.DevName = value
		case "DEVPATH":
			evt.DevPath = value
		}
	}

	return evt
}
