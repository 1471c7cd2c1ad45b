package controlplane

import (
	"fmt"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/prop"

	"github.com/hidbridge/daemon/internal/target"
)

// sourceObject backs one org.hidbridge.Source object. Only DevicePath and
// Capabilities are populated: source.Driver exposes no vendor/product or
// sysfs-path accessor (it only needs an opaque ID and a device path to do
// its job), so the identifying property set falls back to what Driver
// actually carries.
type sourceObject struct {
	devicePath   string
	capabilities []string
}

// targetObject backs one org.hidbridge.Target object.
type targetObject struct {
	driver target.Driver
}

func targetProps(t target.Driver) map[string]*prop.Prop {
	caps := make([]string, 0, len(t.Capabilities()))
	for _, c := range t.Capabilities() {
		caps = append(caps, c.String())
	}

	return map[string]*prop.Prop{
		"Kind":         {Value: string(t.Kind()), Writable: false, Emit: prop.EmitFalse},
		"ID":           {Value: t.ID(), Writable: false, Emit: prop.EmitFalse},
		"Capabilities": {Value: caps, Writable: false, Emit: prop.EmitTrue},
	}
}

func sourceProps(devicePath string, capabilities []string) map[string]*prop.Prop {
	return map[string]*prop.Prop{
		"DevicePath":   {Value: devicePath, Writable: false, Emit: prop.EmitFalse},
		"Capabilities": {Value: capabilities, Writable: false, Emit: prop.EmitTrue},
	}
}

// RegisterSources exports one org.hidbridge.Source object per device path
// currently attached to comp, under its composite's object path.
func (s *Server) RegisterSources(compName string, devicePaths []string, capsByPath map[string][]string) {
	for _, path := range devicePaths {
		objPath := sourceObjectPath(compName, path)

		obj := &sourceObject{devicePath: path, capabilities: capsByPath[path]}

		if err := s.conn.Export(obj, objPath, sourceIface); err != nil {
			s.logger.Warn("source export failed", "path", path, "err", err)

			continue
		}

		propsSpec := map[string]map[string]*prop.Prop{
			sourceIface: sourceProps(obj.devicePath, obj.capabilities),
		}

		if _, err := prop.Export(s.conn, objPath, propsSpec); err != nil {
			s.logger.Warn("source property export failed", "path", path, "err", err)
		}
	}
}

func sourceObjectPath(compName, devicePath string) dbus.ObjectPath {
	return dbus.ObjectPath(fmt.Sprintf("/org/hidbridge/CompositeDevice/%s/Source/%s", sanitizeSegment(compName), sanitizeSegment(devicePath)))
}
