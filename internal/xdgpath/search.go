package xdgpath

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// SearchDirs returns the ordered candidate base directories to search for
// product's device configs:
//
//  1. ./rootfs/usr/share/<product>/devices
//  2. /etc/<product>/devices.d
//  3. each directory in $XDG_DATA_DIRS, joined with <product>/devices
//     (falling back to /usr/share/<product>/devices if $XDG_DATA_DIRS
//     is unset)
//
// Earlier directories take precedence: when the same file name appears in
// more than one, Overlay keeps the first one found.
func SearchDirs(product string) []string {
	var (
		dirs    []string
		dataDir string
	)

	dirs = []string{
		filepath.Join("rootfs", "usr", "share", product, "devices"),
		filepath.Join("/etc", product, "devices.d"),
	}

	xdgDataDirs := DataDirs()
	if os.Getenv("XDG_DATA_DIRS") == "" {
		xdgDataDirs = "/usr/share"
	}

	for _, dataDir = range strings.Split(xdgDataDirs, ":") {
		if dataDir == "" {
			continue
		}

		dirs = append(dirs, filepath.Join(dataDir, product, "devices"))
	}

	return dirs
}

// Overlay walks dirs in order and returns every *.yaml file found under
// subdir (e.g. "profiles", "capability_maps") relative to each, keyed by
// file name. A name already present from an earlier directory is not
// overwritten, giving earlier directories precedence.
func Overlay(dirs []string, subdir string) map[string]string {
	var (
		found map[string]string
		dir   string
		base  string
		names []string
		name  string
		ok    bool
	)

	found = make(map[string]string)

	for _, dir = range dirs {
		base = filepath.Join(dir, subdir)

		names = globYAML(base)
		sort.Strings(names)

		for _, name = range names {
			_, ok = found[filepath.Base(name)]
			if ok {
				continue
			}

			found[filepath.Base(name)] = name
		}
	}

	return found
}

func globYAML(dir string) []string {
	var (
		entries []os.DirEntry
		entry   os.DirEntry
		names   []string
		err     error
	)

	entries, err = os.ReadDir(dir)
	if err != nil {
		return nil
	}

	names = make([]string, 0, len(entries))
	for _, entry = range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}

		names = append(names, filepath.Join(dir, entry.Name()))
	}

	return names
}
