package main

import (
	"fmt"
	"strings"

	"github.com/godbus/dbus/v5"
)

// Bus names and object paths mirror internal/controlplane's unexported
// constants; the CLI is an external collaborator, so it addresses the
// bus by name rather than importing that package.
const (
	busName     = "org.hidbridge.Daemon"
	managerPath = dbus.ObjectPath("/org/hidbridge/Manager1")

	managerIface   = "org.hidbridge.Manager1"
	compositeIface = "org.hidbridge.CompositeDevice"
)

func dial(systemBus bool) (*dbus.Conn, error) {
	var (
		conn *dbus.Conn
		err  error
	)

	if systemBus {
		conn, err = dbus.SystemBus()
	} else {
		conn, err = dbus.SessionBus()
	}

	if err != nil {
		return nil, fmt.Errorf("connect to bus: %w", err)
	}

	return conn, nil
}

func managerObject(conn *dbus.Conn) dbus.BusObject {
	return conn.Object(busName, managerPath)
}

func compositeObject(conn *dbus.Conn, name string) dbus.BusObject {
	return conn.Object(busName, dbus.ObjectPath("/org/hidbridge/CompositeDevice/"+sanitizeSegment(name)))
}

func sanitizeSegment(s string) string {
	s = strings.TrimPrefix(s, "/")

	out := make([]rune, 0, len(s))

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}

	return string(out)
}
