package config

import "path/filepath"

// DeviceInfo is the set of hardware-identification attributes the manager
// resolves by walking sysfs for an arriving device.
type DeviceInfo struct {
	VendorID        string
	ProductID       string
	Subsystem       string
	InterfaceNumber int
	Name            string
	DMIString       string
	CPUInfoString   string
}

// Matches reports whether info satisfies every non-empty field of m.
// Empty fields are wildcards.
func (m Match) Matches(info DeviceInfo) bool {
	if m.VendorID != "" && !equalFoldHex(m.VendorID, info.VendorID) {
		return false
	}

	if m.ProductID != "" && !equalFoldHex(m.ProductID, info.ProductID) {
		return false
	}

	if m.Subsystem != "" && m.Subsystem != info.Subsystem {
		return false
	}

	if m.InterfaceNumber != nil && *m.InterfaceNumber != info.InterfaceNumber {
		return false
	}

	if m.NameGlob != "" {
		ok, err := filepath.Match(m.NameGlob, info.Name)
		if err != nil || !ok {
			return false
		}
	}

	if m.DMIString != "" && m.DMIString != info.DMIString {
		return false
	}

	if m.CPUInfoString != "" && m.CPUInfoString != info.CPUInfoString {
		return false
	}

	return true
}

func equalFoldHex(a, b string) bool {
	normalize := func(s string) string {
		out := make([]byte, 0, len(s))

		for i := 0; i < len(s); i++ {
			c := s[i]
			if c >= 'A' && c <= 'Z' {
				c += 'a' - 'A'
			}

			out = append(out, c)
		}

		return string(out)
	}

	return normalize(a) == normalize(b)
}

// MatchesSources reports whether dc has at least one SourceConfig whose
// Match satisfies info, returning the first matching SourceConfig.
func (dc *DeviceConfig) MatchesSources(info DeviceInfo) (SourceConfig, bool) {
	for _, sc := range dc.Sources {
		if sc.Match.Matches(info) {
			return sc, true
		}
	}

	return SourceConfig{}, false
}
