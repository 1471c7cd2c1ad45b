package controlplane

import (
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"

	"github.com/hidbridge/daemon/internal/target"
)

// managerObject backs the single org.hidbridge.Manager1 object.
type managerObject struct {
	s *Server
}

// CreateCompositeDevice parses the device config at configPath and
// starts a live composite for it, returning its object path.
func (o *managerObject) CreateCompositeDevice(configPath string, sender dbus.Sender) (dbus.ObjectPath, *dbus.Error) {
	if err := o.s.authz(sender, "CreateCompositeDevice"); err != nil {
		return "", dbus.MakeFailedError(err)
	}

	comp, err := o.s.mgr.CreateCompositeDevice(configPath)
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}

	if err := o.s.RegisterComposite(comp); err != nil {
		return "", dbus.MakeFailedError(err)
	}

	return compositeObjectPath(comp.Name()), nil
}

// CreateTargetDevice builds a fresh, unattached target of kind and
// returns its object path.
func (o *managerObject) CreateTargetDevice(kind string, sender dbus.Sender) (dbus.ObjectPath, *dbus.Error) {
	if err := o.s.authz(sender, "CreateTargetDevice"); err != nil {
		return "", dbus.MakeFailedError(err)
	}

	t, err := o.s.mgr.CreateTargetDevice(target.Kind(kind))
	if err != nil {
		return "", dbus.MakeFailedError(err)
	}

	path := targetObjectPath(t.Kind(), t.ID())

	if err := o.s.conn.Export(&targetObject{driver: t}, path, targetIface); err != nil {
		return "", dbus.MakeFailedError(err)
	}

	propsSpec := map[string]map[string]*prop.Prop{targetIface: targetProps(t)}

	if _, err := prop.Export(o.s.conn, path, propsSpec); err != nil {
		return "", dbus.MakeFailedError(err)
	}

	if rep, ok := t.(reporter); ok {
		go o.s.forwardReports(path, rep)
	}

	return path, nil
}

// reporter is implemented by target drivers that have no kernel device of
// their own and instead publish the live unified report directly
// (debugtgt), so the canonical InputDataReport reaches the control plane
// as a signal stream.
type reporter interface {
	Reports() <-chan []byte
}

// forwardReports relays one InputReport signal per packed report rep
// produces, until its channel closes (the target is stopped and its
// driver torn down).
func (s *Server) forwardReports(path dbus.ObjectPath, rep reporter) {
	for data := range rep.Reports() {
		if err := s.conn.Emit(path, targetIface+".InputReport", data); err != nil {
			s.logger.Warn("emit input report failed", "path", path, "err", err)
		}
	}
}

// StopTargetDevice destroys an unattached target previously created by
// CreateTargetDevice.
func (o *managerObject) StopTargetDevice(kind string, sender dbus.Sender) *dbus.Error {
	if err := o.s.authz(sender, "StopTargetDevice"); err != nil {
		return dbus.MakeFailedError(err)
	}

	if err := o.s.mgr.StopTargetDevice(target.Kind(kind)); err != nil {
		return dbus.MakeFailedError(err)
	}

	return nil
}

// AttachTargetDevice moves kind's target onto the composite named
// compositeName.
func (o *managerObject) AttachTargetDevice(kind, compositeName string, sender dbus.Sender) *dbus.Error {
	if err := o.s.authz(sender, "AttachTargetDevice"); err != nil {
		return dbus.MakeFailedError(err)
	}

	if err := o.s.mgr.AttachTargetDevice(compositeName, target.Kind(kind)); err != nil {
		return dbus.MakeFailedError(err)
	}

	if comp, ok := o.s.mgr.Composite(compositeName); ok {
		o.s.RefreshComposite(comp)
	}

	return nil
}

// SetManageAllDevices toggles whether the manager also takes over evdev
// devices that no config claims, under a generated generic-gamepad
// config; configured devices are matched either way.
func (o *managerObject) SetManageAllDevices(enable bool, sender dbus.Sender) *dbus.Error {
	if err := o.s.authz(sender, "SetManageAllDevices"); err != nil {
		return dbus.MakeFailedError(err)
	}

	o.s.mgr.SetManageAllDevices(enable)

	return nil
}

func targetObjectPath(kind target.Kind, id string) dbus.ObjectPath {
	return dbus.ObjectPath("/org/hidbridge/Target/" + sanitizeSegment(string(kind)) + "_" + sanitizeSegment(id))
}
