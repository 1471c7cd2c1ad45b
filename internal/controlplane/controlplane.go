// Package controlplane exposes the daemon's manager and live composite
// devices on the session/system DBus: one object per manager, composite,
// source, and target, implemented with github.com/godbus/dbus/v5's
// reflect-based Export plus its prop subpackage for property change
// signals.
package controlplane

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"

	"github.com/hidbridge/daemon/internal/composite"
	"github.com/hidbridge/daemon/internal/logging"
	"github.com/hidbridge/daemon/internal/manager"
)

const (
	busName = "org.hidbridge.Daemon"

	managerIface   = "org.hidbridge.Manager1"
	compositeIface = "org.hidbridge.CompositeDevice"
	sourceIface    = "org.hidbridge.Source"
	targetIface    = "org.hidbridge.Target"

	managerPath = dbus.ObjectPath("/org/hidbridge/Manager1")
)

// AuthzFunc is consulted before every state-mutating method call,
// delegating authorization to the host policy service. The real policy
// service lives outside this repo; callers inject whatever hook fronts
// it.
type AuthzFunc func(sender dbus.Sender, method string) error

// AllowAll is a permissive AuthzFunc for tests and standalone runs where
// no policy service is present.
func AllowAll(dbus.Sender, string) error { return nil }

// Server owns the DBus connection and every object this daemon
// registers on it.
type Server struct {
	conn  *dbus.Conn
	mgr   *manager.Manager
	authz AuthzFunc

	logger *log.Logger

	composites map[string]*compositeObject
}

// New connects to conn (typically dbus.SessionBus() or dbus.SystemBus())
// and registers mgr's manager object, plus one object per currently live
// composite. authz is consulted before every mutating call; pass AllowAll
// if no policy service is wired.
func New(conn *dbus.Conn, mgr *manager.Manager, authz AuthzFunc) (*Server, error) {
	if authz == nil {
		authz = AllowAll
	}

	s := &Server{
		conn:       conn,
		mgr:        mgr,
		authz:      authz,
		logger:     logging.For("controlplane"),
		composites: make(map[string]*compositeObject),
	}

	if err := s.conn.Export(&managerObject{s: s}, managerPath, managerIface); err != nil {
		return nil, fmt.Errorf("controlplane.New: export manager: %w", err)
	}

	reply, err := s.conn.RequestName(busName, dbus.NameFlagDoNotQueue)
	if err != nil {
		return nil, fmt.Errorf("controlplane.New: request name: %w", err)
	}

	if reply != dbus.RequestNameReplyPrimaryOwner {
		return nil, fmt.Errorf("controlplane.New: %s already owned on this bus", busName)
	}

	for _, name := range mgr.CompositeNames() {
		if comp, ok := mgr.Composite(name); ok {
			if err := s.RegisterComposite(comp); err != nil {
				s.logger.Warn("composite export failed", "name", name, "err", err)
			}
		}
	}

	return s, nil
}

// compositeObjectPath returns the DBus object path for a composite named
// name.
func compositeObjectPath(name string) dbus.ObjectPath {
	return dbus.ObjectPath("/org/hidbridge/CompositeDevice/" + sanitizeSegment(name))
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

// RegisterComposite exports comp's properties and methods at its object
// path, recorded in s.composites so a later UnregisterComposite releases
// it.
func (s *Server) RegisterComposite(comp *composite.CompositeDevice) error {
	path := compositeObjectPath(comp.Name())

	co := &compositeObject{s: s, comp: comp}

	if err := s.conn.Export(co, path, compositeIface); err != nil {
		return fmt.Errorf("controlplane.RegisterComposite: %w", err)
	}

	propsSpec := map[string]map[string]*prop.Prop{
		compositeIface: compositeProps(comp),
	}

	p, err := prop.Export(s.conn, path, propsSpec)
	if err != nil {
		return fmt.Errorf("controlplane.RegisterComposite: properties: %w", err)
	}

	co.props = p
	s.composites[comp.Name()] = co

	s.registerCompositeChildren(comp)

	return nil
}

// registerCompositeChildren exports one Source object per attached source
// device path, rooted under comp's own object path. No Target objects are
// exported for the composite's attached targets.
func (s *Server) registerCompositeChildren(comp *composite.CompositeDevice) {
	capsByPath := make(map[string][]string)

	for path, caps := range comp.SourceCapabilities() {
		names := make([]string, 0, len(caps))
		for _, c := range caps {
			names = append(names, c.String())
		}

		capsByPath[path] = names
	}

	s.RegisterSources(comp.Name(), comp.SourceDevicePaths(), capsByPath)
}

// UnregisterComposite removes name's object from the bus, for when its
// composite is torn down.
func (s *Server) UnregisterComposite(name string) {
	path := compositeObjectPath(name)

	_ = s.conn.Export(nil, path, compositeIface)

	delete(s.composites, name)
}

// RefreshComposite re-publishes comp's current property values, for
// callers that mutate state outside a DBus method call (profile reload,
// hotplug attach/detach).
func (s *Server) RefreshComposite(comp *composite.CompositeDevice) {
	co, ok := s.composites[comp.Name()]
	if !ok || co.props == nil {
		return
	}

	for name, p := range compositeProps(comp) {
		co.props.SetMust(compositeIface, name, p.Value)
	}
}
