// Package manager implements the daemon-wide singleton that discovers
// device configs, matches arriving hardware against them, and owns the
// set of live CompositeDevices plus any target drivers not currently
// attached to one.
package manager

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/composite"
	"github.com/hidbridge/daemon/internal/config"
	"github.com/hidbridge/daemon/internal/logging"
	"github.com/hidbridge/daemon/internal/source"
	"github.com/hidbridge/daemon/internal/target"
	"github.com/hidbridge/daemon/internal/xdgpath"
)

// Manager is the daemon's single top-level orchestrator.
type Manager struct {
	product string

	mu                sync.Mutex
	registry          *config.Registry
	composites        map[string]*composite.CompositeDevice
	unattachedTargets map[target.Kind]target.Driver
	targetOwners      map[target.Driver]*composite.CompositeDevice
	manageAll         bool

	logger  *log.Logger
	uevent  *ueventMonitor
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
}

// New loads product's config registry and returns an idle Manager; call
// Start to begin hotplug/config-watch handling.
func New(product string) (*Manager, error) {
	reg, err := config.Load(product)
	if err != nil {
		return nil, fmt.Errorf("manager.New: %w", err)
	}

	return &Manager{
		product:           product,
		registry:          reg,
		composites:        make(map[string]*composite.CompositeDevice),
		unattachedTargets: make(map[target.Kind]target.Driver),
		targetOwners:      make(map[target.Driver]*composite.CompositeDevice),
		logger:            logging.For("manager"),
	}, nil
}

// configSearchDirs returns every directory fsnotify should watch for
// config changes: each device-config base directory plus its profiles
// and capability_maps subdirectories.
func configSearchDirs(product string) []string {
	dirs := xdgpath.SearchDirs(product)

	out := make([]string, 0, len(dirs)*3)

	for _, dir := range dirs {
		out = append(out, dir, filepath.Join(dir, "profiles"), filepath.Join(dir, "capability_maps"))
	}

	return out
}

// Start launches the netlink hotplug monitor and the config-directory
// fsnotify watch, and performs one initial scan for already-present
// devices (/dev/input/event* and /dev/hidraw* nodes).
func (m *Manager) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel

	uevent, err := newUeventMonitor()
	if err != nil {
		return fmt.Errorf("manager.Start: %w", err)
	}

	m.uevent = uevent

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("manager.Start: %w", err)
	}

	m.watcher = watcher

	for _, dir := range configSearchDirs(m.product) {
		_ = watcher.Add(dir)
	}

	events := make(chan ueventEvent, 32)

	go func() {
		if err := uevent.run(ctx, events); err != nil && ctx.Err() == nil {
			// The monitor's own socket died; the manager keeps running on
			// whatever devices are already attached rather than crashing
			// the whole daemon.
		}
	}()

	go m.ueventLoop(ctx, events)
	go m.watchLoop(ctx)

	m.startWebsocketServers(ctx)

	for _, pattern := range []string{"/dev/input/event*", "/dev/hidraw*"} {
		paths, _ := filepath.Glob(pattern)
		for _, devicePath := range paths {
			m.onDeviceArrived(devicePath)
		}
	}

	return nil
}

// Stop tears down every live composite and releases the hotplug/watch
// resources.
func (m *Manager) Stop() {
	if m.cancel != nil {
		m.cancel()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for name, comp := range m.composites {
		if err := comp.Stop(); err != nil {
			m.logger.Warn("composite stop failed", "name", name, "err", err)
		}
	}

	for _, t := range m.unattachedTargets {
		t.Close()
	}

	if m.uevent != nil {
		m.uevent.Close()
	}

	if m.watcher != nil {
		m.watcher.Close()
	}
}

func (m *Manager) ueventLoop(ctx context.Context, events <-chan ueventEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}

			m.handleUevent(evt)
		}
	}
}

func (m *Manager) watchLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-m.watcher.Events:
			if !ok {
				return
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				m.reloadConfig()
			}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}

			m.logger.Warn("config watch error", "err", err)
		}
	}
}

// reloadConfig re-parses the product's config tree when the fsnotify
// watch reports an edit. Existing composites are left running; only the
// registry's parsed contents are refreshed so a newly arriving device
// sees the updated configs.
func (m *Manager) reloadConfig() {
	reg, err := config.Load(m.product)
	if err != nil {
		m.logger.Warn("config reload failed", "err", err)

		return
	}

	m.mu.Lock()
	m.registry = reg
	m.mu.Unlock()

	for _, loadErr := range reg.LoadErrors {
		m.logger.Warn("config file rejected", "err", loadErr)
	}
}

// handleUevent matches an "add" event's device path against every
// registered DeviceConfig, attaching it to an existing or freshly
// created composite on the first match. "remove" events
// notify whichever composite currently owns that source.
func (m *Manager) handleUevent(evt ueventEvent) {
	if evt.DevName == "" {
		return
	}

	devicePath := "/dev/" + evt.DevName

	switch evt.Action {
	case "add":
		m.onDeviceArrived(devicePath)
	case "remove":
		m.onDeviceGone(devicePath)
	}
}

func (m *Manager) onDeviceArrived(devicePath string) {
	info := sysfsDeviceInfo(devicePath)

	m.mu.Lock()
	devices := m.registry.Devices
	m.mu.Unlock()

	for _, dc := range devices {
		sc, ok := dc.MatchesSources(info)
		if !ok {
			continue
		}

		driver, err := m.buildSource(sc, devicePath)
		if err != nil {
			m.logger.Warn("source build failed", "kind", sc.Kind, "path", devicePath, "err", err)

			return
		}

		comp := m.compositeFor(dc)
		comp.AddSource(driver)

		go m.runSource(comp, driver)

		return
	}

	m.mu.Lock()
	manageAll := m.manageAll
	m.mu.Unlock()

	if manageAll {
		m.attachUnconfigured(devicePath)
	}
}

// attachUnconfigured handles a device no config claimed while the
// manage-all flag is set: evdev
// nodes get a one-off generated config pairing a bare evdev source with
// a generic gamepad target.
func (m *Manager) attachUnconfigured(devicePath string) {
	name := filepath.Base(devicePath)

	if !strings.HasPrefix(name, "event") {
		return
	}

	dc := &config.DeviceConfig{
		Name:    "auto-" + name,
		Sources: []config.SourceConfig{{Kind: "evdev"}},
		Targets: []config.TargetConfig{{Kind: string(target.KindGamepad)}},
	}

	driver, err := m.buildSource(dc.Sources[0], devicePath)
	if err != nil {
		m.logger.Warn("unconfigured source build failed", "path", devicePath, "err", err)

		return
	}

	comp := m.compositeFor(dc)
	comp.AddSource(driver)

	go m.runSource(comp, driver)
}

func (m *Manager) onDeviceGone(devicePath string) {
	for _, c := range m.liveComposites() {
		c.RemoveSource(devicePath)
	}

	m.reapEmptyComposites()
}

// reapEmptyComposites tears down composites whose last matched source is
// gone, unless their config's persist flag keeps them alive across source
// disconnects. Composites created ahead of
// their hardware, which never saw a source, are left waiting.
func (m *Manager) reapEmptyComposites() {
	for _, comp := range m.liveComposites() {
		if comp.Persists() || !comp.EverHadSource() || comp.SourceCount() > 0 {
			continue
		}

		if err := comp.Stop(); err != nil {
			m.logger.Warn("composite stop failed", "name", comp.Name(), "err", err)
		}

		m.mu.Lock()
		delete(m.composites, comp.Name())
		m.mu.Unlock()

		m.logger.Info("composite removed, last source gone", "name", comp.Name())
	}
}

// compositeFor returns the live composite for dc, creating and starting
// one (plus its configured default targets) if this is the first source
// matched for it.
func (m *Manager) compositeFor(dc *config.DeviceConfig) *composite.CompositeDevice {
	m.mu.Lock()
	if comp, ok := m.composites[dc.Name]; ok {
		m.mu.Unlock()

		return comp
	}
	m.mu.Unlock()

	return m.newComposite(dc)
}

// CreateCompositeDevice parses a device config at path and starts a live
// composite for it even with no source currently attached, for the
// control plane's CreateCompositeDevice method. The parsed
// config is also added to the registry so future hotplugged devices can
// match against it.
func (m *Manager) CreateCompositeDevice(path string) (*composite.CompositeDevice, error) {
	dc, err := config.LoadDeviceConfigPath(path)
	if err != nil {
		return nil, fmt.Errorf("manager.CreateCompositeDevice: %w", err)
	}

	m.mu.Lock()
	if comp, ok := m.composites[dc.Name]; ok {
		m.mu.Unlock()

		return comp, nil
	}
	m.registry.Devices = append(m.registry.Devices, dc)
	m.mu.Unlock()

	return m.newComposite(dc), nil
}

// newComposite builds, starts, and registers a fresh composite for dc,
// attaching its configured default targets.
func (m *Manager) newComposite(dc *config.DeviceConfig) *composite.CompositeDevice {
	m.mu.Lock()
	defer m.mu.Unlock()

	if comp, ok := m.composites[dc.Name]; ok {
		return comp
	}

	comp := composite.New(dc)

	if dc.DefaultProfile != "" {
		if p, ok := m.registry.Profiles[dc.DefaultProfile]; ok {
			_ = comp.LoadProfile(p)
		}
	}

	comp.Start(context.Background())

	for _, tc := range dc.Targets {
		kind := target.Kind(tc.Kind)

		t, err := m.allocateTarget(kind)
		if err != nil {
			m.logger.Warn("target build failed", "kind", kind, "err", err)

			continue
		}

		if err := comp.AttachTarget(t); err != nil {
			m.logger.Warn("target attach failed", "kind", kind, "err", err)

			continue
		}

		go m.runTarget(comp, t)
	}

	m.composites[dc.Name] = comp

	return comp
}

// allocateTarget returns an existing unattached target of kind if one was
// previously detached, or builds a
// fresh one.
func (m *Manager) allocateTarget(kind target.Kind) (target.Driver, error) {
	if t, ok := m.unattachedTargets[kind]; ok {
		delete(m.unattachedTargets, kind)

		return t, nil
	}

	return buildTarget(kind)
}

// runSource pumps driver's normalized events into comp until Run returns,
// then reports the failure so comp's consecutive-error counter can evict
// it.
func (m *Manager) runSource(comp *composite.CompositeDevice, driver source.Driver) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan capability.NativeEvent, 64)

	go func() {
		for evt := range events {
			comp.ProcessEvent(driver.ID(), evt)
		}
	}()

	if err := driver.Run(ctx, events); err != nil {
		comp.SourceError(driver.ID())
	}
}

// setTargetOwner records which composite a running target currently
// routes its output path to; transfers remap it without restarting the
// driver.
func (m *Manager) setTargetOwner(driver target.Driver, comp *composite.CompositeDevice) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if comp == nil {
		delete(m.targetOwners, driver)

		return
	}

	m.targetOwners[driver] = comp
}

func (m *Manager) targetOwner(driver target.Driver) *composite.CompositeDevice {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.targetOwners[driver]
}

// runTarget pumps driver's output/effect-upload channels back through its
// current owner, and runs driver's own inbox-drain loop, until the
// driver's Close (via composite stop or StopTargetDevice) closes those
// channels. The owner is resolved per message so a transferred target
// routes to its new composite.
func (m *Manager) runTarget(comp *composite.CompositeDevice, driver target.Driver) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m.setTargetOwner(driver, comp)
	defer m.setTargetOwner(driver, nil)

	go func() {
		for evt := range driver.Output() {
			if owner := m.targetOwner(driver); owner != nil {
				owner.ProcessOutputEvent(evt)
			}
		}
	}()

	go func() {
		for req := range driver.EffectUploads() {
			if owner := m.targetOwner(driver); owner != nil {
				owner.RouteEffectUpload(req)
			}
		}
	}()

	_ = driver.Run(ctx)
}

// CreateTargetDevice builds a fresh, unattached target of kind, for the
// control plane's CreateTargetDevice method.
func (m *Manager) CreateTargetDevice(kind target.Kind) (target.Driver, error) {
	t, err := buildTarget(kind)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.unattachedTargets[kind] = t
	m.mu.Unlock()

	return t, nil
}

// StopTargetDevice destroys an unattached target previously created by
// CreateTargetDevice.
func (m *Manager) StopTargetDevice(kind target.Kind) error {
	m.mu.Lock()
	t, ok := m.unattachedTargets[kind]
	if ok {
		delete(m.unattachedTargets, kind)
	}
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("manager.StopTargetDevice: %w: %s", composite.ErrUnknownTarget, kind)
	}

	return t.Close()
}

// AttachTargetDevice moves kind's target onto compositeName, detaching it
// from its previous owner (if any) first and clearing its state image on
// both ends: a target belongs to at most one composite at a time.
func (m *Manager) AttachTargetDevice(compositeName string, kind target.Kind) error {
	m.mu.Lock()
	comp, ok := m.composites[compositeName]
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("manager.AttachTargetDevice: unknown composite %q", compositeName)
	}

	// Prefer taking the target from its current owner: DetachTarget
	// clears its state image and hands back the still-running driver.
	var t target.Driver

	for _, other := range m.liveComposites() {
		if other == comp {
			continue
		}

		if detached, err := other.DetachTarget(kind); err == nil {
			t = detached
			m.setTargetOwner(t, nil)

			break
		}
	}

	if t == nil {
		m.mu.Lock()
		unattached, found := m.unattachedTargets[kind]
		if found {
			delete(m.unattachedTargets, kind)
		}
		m.mu.Unlock()

		if found {
			t = unattached

			go m.runTarget(comp, t)
		}
	}

	if t == nil {
		built, err := buildTarget(kind)
		if err != nil {
			return err
		}

		t = built

		go m.runTarget(comp, t)
	}

	m.setTargetOwner(t, comp)

	return comp.AttachTarget(t)
}

func (m *Manager) liveComposites() []*composite.CompositeDevice {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*composite.CompositeDevice, 0, len(m.composites))
	for _, c := range m.composites {
		out = append(out, c)
	}

	return out
}

// SetManageAllDevices toggles whether a device that no config claims is
// still managed: while enabled, an unclaimed evdev event node gets a
// generated config pairing it with a generic gamepad target. Devices a
// config claims are matched either way.
func (m *Manager) SetManageAllDevices(enable bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.manageAll = enable
}

// Composite returns the live composite named name, if any, for the
// control plane's per-composite DBus object lookup.
func (m *Manager) Composite(name string) (*composite.CompositeDevice, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.composites[name]

	return c, ok
}

// CompositeNames returns every currently live composite's name.
func (m *Manager) CompositeNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.composites))
	for name := range m.composites {
		names = append(names, name)
	}

	return names
}
