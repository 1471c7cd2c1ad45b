package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/hidbridge/daemon/internal/xdgpath"
)

// Registry holds every loaded device config, profile, and capability map
// for one product, keyed by base file name (without precedence
// duplicates: earlier directories win).
type Registry struct {
	Product        string
	Devices        []*DeviceConfig
	Profiles       map[string]*Profile
	CapabilityMaps map[string]*CapabilityMap

	// LoadErrors collects per-file parse failures.
	LoadErrors []error
}

// Load discovers and parses every *.yaml config for product across the
// layered search path.
func Load(product string) (*Registry, error) {
	dirs := xdgpath.SearchDirs(product)

	reg := &Registry{
		Product:        product,
		Profiles:       make(map[string]*Profile),
		CapabilityMaps: make(map[string]*CapabilityMap),
	}

	deviceFiles := xdgpath.Overlay(dirs, "")
	profileFiles := xdgpath.Overlay(dirs, "profiles")
	capMapFiles := xdgpath.Overlay(dirs, "capability_maps")

	reg.loadDevices(deviceFiles)
	reg.loadProfiles(profileFiles)
	reg.loadCapabilityMaps(capMapFiles)

	return reg, nil
}

func (reg *Registry) loadDevices(files map[string]string) {
	names := sortedKeys(files)

	for _, name := range names {
		path := files[name]

		buf, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			reg.LoadErrors = append(reg.LoadErrors, fmt.Errorf("config.loadDevices: %s: %w", path, err))

			continue
		}

		var dc DeviceConfig

		if err := yaml.Unmarshal(buf, &dc); err != nil {
			reg.LoadErrors = append(reg.LoadErrors, fmt.Errorf("config.loadDevices: %s: %w", path, err))

			continue
		}

		dc.Path = path
		reg.Devices = append(reg.Devices, &dc)
	}
}

func (reg *Registry) loadProfiles(files map[string]string) {
	for name, path := range files {
		buf, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			reg.LoadErrors = append(reg.LoadErrors, fmt.Errorf("config.loadProfiles: %s: %w", path, err))

			continue
		}

		var p Profile

		if err := yaml.Unmarshal(buf, &p); err != nil {
			reg.LoadErrors = append(reg.LoadErrors, fmt.Errorf("config.loadProfiles: %s: %w", path, err))

			continue
		}

		p.Path = path
		reg.Profiles[trimYAML(name)] = &p
	}
}

func (reg *Registry) loadCapabilityMaps(files map[string]string) {
	for name, path := range files {
		buf, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			reg.LoadErrors = append(reg.LoadErrors, fmt.Errorf("config.loadCapabilityMaps: %s: %w", path, err))

			continue
		}

		var m CapabilityMap

		if err := yaml.Unmarshal(buf, &m); err != nil {
			reg.LoadErrors = append(reg.LoadErrors, fmt.Errorf("config.loadCapabilityMaps: %s: %w", path, err))

			continue
		}

		m.Path = path
		reg.CapabilityMaps[trimYAML(name)] = &m
	}
}

// LoadProfilePath parses a single profile file outside the registry's
// normal discovery, for the control plane's LoadProfilePath method.
func LoadProfilePath(path string) (*Profile, error) {
	buf, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config.LoadProfilePath: %w", err)
	}

	var p Profile

	if err := yaml.Unmarshal(buf, &p); err != nil {
		return nil, fmt.Errorf("config.LoadProfilePath: %w", err)
	}

	p.Path = path

	return &p, nil
}

// LoadDeviceConfigPath parses a single device config file outside the
// registry's normal discovery, for the control plane's
// CreateCompositeDevice method.
func LoadDeviceConfigPath(path string) (*DeviceConfig, error) {
	buf, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config.LoadDeviceConfigPath: %w", err)
	}

	var dc DeviceConfig

	if err := yaml.Unmarshal(buf, &dc); err != nil {
		return nil, fmt.Errorf("config.LoadDeviceConfigPath: %w", err)
	}

	dc.Path = path

	return &dc, nil
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

func trimYAML(name string) string {
	return name[:len(name)-len(filepath.Ext(name))]
}
