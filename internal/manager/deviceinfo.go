package manager

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hidbridge/daemon/internal/config"
)

// sysfsDeviceInfo resolves the hardware-identification fields a Match
// predicate checks against, by walking up devicePath's sysfs device
// link.
// Best-effort: any field it cannot resolve is left zero-valued, which
// Match treats as a wildcard on that field, not a hard mismatch.
func sysfsDeviceInfo(devicePath string) config.DeviceInfo {
	info := config.DeviceInfo{Name: filepath.Base(devicePath)}

	classDir := sysfsClassDir(devicePath)
	if classDir == "" {
		return info
	}

	deviceDir, err := filepath.EvalSymlinks(filepath.Join(classDir, "device"))
	if err != nil {
		return info
	}

	info.Subsystem = sysfsSubsystem(deviceDir)
	info.InterfaceNumber = sysfsInterfaceNumber(deviceDir)

	vendor, product := sysfsUsbIDs(deviceDir)
	info.VendorID = vendor
	info.ProductID = product

	return info
}

// sysfsClassDir maps a /dev/input/eventN or /dev/hidrawN path to its
// /sys/class/<subsystem>/<name> counterpart.
func sysfsClassDir(devicePath string) string {
	name := filepath.Base(devicePath)

	switch {
	case strings.HasPrefix(name, "event"):
		return filepath.Join("/sys/class/input", name)
	case strings.HasPrefix(name, "hidraw"):
		return filepath.Join("/sys/class/hidraw", name)
	default:
		return ""
	}
}

func sysfsSubsystem(deviceDir string) string {
	target, err := filepath.EvalSymlinks(filepath.Join(deviceDir, "subsystem"))
	if err != nil {
		return ""
	}

	return filepath.Base(target)
}

func sysfsInterfaceNumber(deviceDir string) *int {
	dir := deviceDir

	for range 8 {
		buf, err := os.ReadFile(filepath.Join(dir, "bInterfaceNumber"))
		if err == nil {
			if n, perr := strconv.ParseInt(strings.TrimSpace(string(buf)), 16, 32); perr == nil {
				v := int(n)

				return &v
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return nil
}

// sysfsUsbIDs walks up from deviceDir looking for idVendor/idProduct
// files, present on the USB device node a few levels above an
// interface's input/hidraw child.
func sysfsUsbIDs(deviceDir string) (vendor, product string) {
	dir := deviceDir

	for range 8 {
		vBuf, vErr := os.ReadFile(filepath.Join(dir, "idVendor"))
		pBuf, pErr := os.ReadFile(filepath.Join(dir, "idProduct"))

		if vErr == nil && pErr == nil {
			return strings.TrimSpace(string(vBuf)), strings.TrimSpace(string(pBuf))
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}

		dir = parent
	}

	return "", ""
}
