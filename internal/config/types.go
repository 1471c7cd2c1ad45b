// Package config loads the daemon's YAML device configs, profiles, and
// capability maps, discovered via internal/xdgpath's layered directory
// search. Same-named files in earlier directories take precedence.
package config

import "github.com/hidbridge/daemon/internal/capability"

// Match names the hardware-identification predicates a device config can
// specify; a source matches a config when every non-zero/non-empty field
// is satisfied.
type Match struct {
	VendorID        string `yaml:"vendor_id"`
	ProductID       string `yaml:"product_id"`
	Subsystem       string `yaml:"subsystem"`
	InterfaceNumber *int   `yaml:"interface_number"`
	NameGlob        string `yaml:"name_glob"`
	DMIString       string `yaml:"dmi_string"`
	CPUInfoString   string `yaml:"cpuinfo_string"`
}

// SourceConfig names one source endpoint a composite device config
// expects, identified by kind (evdev/hidraw-.../iio-.../led/tty-.../
// websocket) and a match predicate.
type SourceConfig struct {
	Kind          string `yaml:"kind"`
	Match         Match  `yaml:"match"`
	CapabilityMap string `yaml:"capability_map"`

	// Address is the "host:port" a websocket-kind source listens on;
	// unused by every other kind.
	Address string `yaml:"address"`

	// MountMatrix is the 3x3 sensor orientation matrix an iio-kind
	// source applies to its samples (v' = M·v); empty means identity.
	MountMatrix [][]float64 `yaml:"mount_matrix"`
}

// ResolveMountMatrix returns the config's mount matrix as a fixed 3x3
// array, or ok=false when the YAML shape is absent or malformed.
func (sc SourceConfig) ResolveMountMatrix() (m [3][3]float64, ok bool) {
	if len(sc.MountMatrix) != 3 {
		return m, false
	}

	for i, row := range sc.MountMatrix {
		if len(row) != 3 {
			return [3][3]float64{}, false
		}

		copy(m[i][:], row)
	}

	return m, true
}

// TargetConfig names one virtual target device the composite should
// create on activation.
type TargetConfig struct {
	Kind string `yaml:"kind"`
}

// DeviceConfig is one *.yaml file under a devices directory: the
// definition of a composite device.
type DeviceConfig struct {
	Name          string         `yaml:"name"`
	Sources       []SourceConfig `yaml:"sources"`
	Targets       []TargetConfig `yaml:"targets"`
	DefaultProfile string        `yaml:"default_profile"`

	// Persist, when true, keeps the composite alive when every matched
	// source disconnects.
	Persist bool `yaml:"persist"`

	// Path is the file this config was loaded from; not a YAML field, set
	// by Load for precedence bookkeeping and control-plane reporting.
	Path string `yaml:"-"`
}

// ProfileRule is one "source capability match" -> "target emission" entry
// of a DeviceProfile.
type ProfileRule struct {
	Source       string   `yaml:"source"`
	Targets      []string `yaml:"targets"`
	MinThreshold *float64 `yaml:"min_threshold"`
}

// Profile is a user-editable translation table, loaded from
// <base>/profiles/<name>.yaml.
type Profile struct {
	Name  string        `yaml:"name"`
	Rules []ProfileRule `yaml:"rules"`
	Path  string        `yaml:"-"`
}

// CapabilityMapEntry names one raw event-code name to Capability binding
// within a capability_map file.
type CapabilityMapEntry struct {
	Code       string `yaml:"code"`
	Capability string `yaml:"capability"`
}

// CapabilityMap translates a source's raw wire names (evdev KEY_*/ABS_*
// names) into Capability values, loaded from
// <base>/capability_maps/<name>.yaml.
type CapabilityMap struct {
	Name    string               `yaml:"name"`
	Entries []CapabilityMapEntry `yaml:"entries"`
	Path    string               `yaml:"-"`
}

// Resolve builds a lookup table from this map's raw entries, dropping
// (and letting the caller log) any entry naming an unknown capability.
func (m *CapabilityMap) Resolve() (map[string]capability.Capability, []string) {
	out := make(map[string]capability.Capability, len(m.Entries))

	var unresolved []string

	for _, e := range m.Entries {
		c, ok := capability.ParseName(e.Capability)
		if !ok {
			unresolved = append(unresolved, e.Capability)

			continue
		}

		out[e.Code] = c
	}

	return out, unresolved
}
