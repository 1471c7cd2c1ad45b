package controlplane

import (
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"

	"github.com/hidbridge/daemon/internal/composite"
	"github.com/hidbridge/daemon/internal/config"
)

// compositeObject backs one org.hidbridge.CompositeDevice object.
type compositeObject struct {
	s     *Server
	comp  *composite.CompositeDevice
	props *prop.Properties
}

// compositeProps builds the composite object's property table: Name,
// ProfileName, SourceDevicePaths[], Capabilities[], InterceptMode.
func compositeProps(comp *composite.CompositeDevice) map[string]*prop.Prop {
	caps := make([]string, 0, len(comp.Capabilities()))
	for _, c := range comp.Capabilities() {
		caps = append(caps, c.String())
	}

	return map[string]*prop.Prop{
		"Name":              {Value: comp.Name(), Writable: false, Emit: prop.EmitFalse},
		"ProfileName":       {Value: comp.ProfileName(), Writable: false, Emit: prop.EmitTrue},
		"SourceDevicePaths": {Value: comp.SourceDevicePaths(), Writable: false, Emit: prop.EmitTrue},
		"Capabilities":      {Value: caps, Writable: false, Emit: prop.EmitTrue},
		"InterceptMode":     {Value: uint32(comp.GetIntercept()), Writable: false, Emit: prop.EmitTrue},
	}
}

// LoadProfilePath replaces the composite's active profile with the one
// parsed from path. Loading the same profile twice replaces it again
// rather than accumulating (LoadProfile itself enforces that).
func (o *compositeObject) LoadProfilePath(path string, sender dbus.Sender) *dbus.Error {
	if err := o.s.authz(sender, "LoadProfilePath"); err != nil {
		return dbus.MakeFailedError(err)
	}

	p, err := config.LoadProfilePath(path)
	if err != nil {
		return dbus.MakeFailedError(err)
	}

	if err := o.comp.LoadProfile(p); err != nil {
		return dbus.MakeFailedError(err)
	}

	o.s.RefreshComposite(o.comp)

	return nil
}

// SetInterceptMode sets the composite's intercept mode (0=None, 1=Pass,
// 2=All, 3=GamepadOnly). Idempotent.
func (o *compositeObject) SetInterceptMode(mode uint32, sender dbus.Sender) *dbus.Error {
	if err := o.s.authz(sender, "SetInterceptMode"); err != nil {
		return dbus.MakeFailedError(err)
	}

	if err := o.comp.SetIntercept(composite.InterceptMode(mode)); err != nil {
		return dbus.MakeFailedError(err)
	}

	o.s.RefreshComposite(o.comp)

	return nil
}

// Stop tears down this composite's sources and targets and unregisters
// its DBus object.
func (o *compositeObject) Stop(sender dbus.Sender) *dbus.Error {
	if err := o.s.authz(sender, "Stop"); err != nil {
		return dbus.MakeFailedError(err)
	}

	if err := o.comp.Stop(); err != nil {
		return dbus.MakeFailedError(err)
	}

	o.s.UnregisterComposite(o.comp.Name())

	return nil
}
