package manager

import (
	"fmt"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/config"
	"github.com/hidbridge/daemon/internal/evdevio"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/source/evdevsrc"
	"github.com/hidbridge/daemon/internal/source/hidrawsrc"
	"github.com/hidbridge/daemon/internal/source/hidrawsrc/dualsensesrc"
	"github.com/hidbridge/daemon/internal/source/iiosrc"
	"github.com/hidbridge/daemon/internal/source/ledsrc"
)

// iioFullRangeDefault is the accelerometer/gyroscope full-scale range
// assumed when a device config doesn't override it, the common +-2g
// accelerometer configuration.
const iioFullRangeDefault = 2.0

// buildSource instantiates the source.Driver named by sc's kind against
// devicePath, resolving its capability map if one is configured.
func (m *Manager) buildSource(sc config.SourceConfig, devicePath string) (source.Driver, error) {
	switch sc.Kind {
	case "evdev":
		keyMap, absMap := m.resolveEvdevMaps(sc.CapabilityMap)

		return evdevsrc.New(devicePath, keyMap, absMap)
	case "hidraw-dualsense":
		return hidrawsrc.New(devicePath, dualsensesrc.New())
	case "iio-accel", "iio-gyro":
		mount, ok := sc.ResolveMountMatrix()
		if !ok {
			mount = iiosrc.IdentityMount
		}

		return iiosrc.New(devicePath, iioFullRangeDefault, mount)
	case "led":
		return ledsrc.New(devicePath)
	default:
		return nil, fmt.Errorf("manager.buildSource: unknown source kind %q", sc.Kind)
	}
}

// resolveEvdevMaps looks up capMapName in the registry and splits its
// entries into evdev KEY_*/ABS_* code maps, matching evdevsrc.New's two
// separate keyMap/absCaps arguments. Entries whose code name doesn't
// parse as an evdev constant are skipped; the manager logs the
// unresolved names at load time via Registry.LoadErrors-style reporting.
func (m *Manager) resolveEvdevMaps(capMapName string) (map[evdevio.EventCode]capability.Capability, map[evdevio.EventCode]capability.Capability) {
	keyMap := make(map[evdevio.EventCode]capability.Capability)
	absMap := make(map[evdevio.EventCode]capability.Capability)

	cm, ok := m.registry.CapabilityMaps[capMapName]
	if !ok {
		return keyMap, absMap
	}

	resolved, _ := cm.Resolve()

	for code, cp := range resolved {
		ec, isAbs, ok := evdevio.ParseCodeName(code)
		if !ok {
			continue
		}

		if isAbs {
			absMap[ec] = cp
		} else {
			keyMap[ec] = cp
		}
	}

	return keyMap, absMap
}
