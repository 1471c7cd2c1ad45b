package manager

import (
	"context"

	"github.com/gorilla/websocket"

	"github.com/hidbridge/daemon/internal/config"
	"github.com/hidbridge/daemon/internal/source/wsrc"
	"github.com/hidbridge/daemon/internal/target"
	"github.com/hidbridge/daemon/internal/target/wstgt"
	"github.com/hidbridge/daemon/internal/wsserver"
)

// websocketListenAddresses returns every distinct address a websocket-kind
// SourceConfig names across the registry, for the manager to listen on.
func websocketListenAddresses(devices []*config.DeviceConfig) []string {
	seen := make(map[string]bool)

	var out []string

	for _, dc := range devices {
		for _, sc := range dc.Sources {
			if sc.Kind != "websocket" || sc.Address == "" || seen[sc.Address] {
				continue
			}

			seen[sc.Address] = true
			out = append(out, sc.Address)
		}
	}

	return out
}

// startWebsocketServers launches one wsserver listener per distinct
// address a websocket-kind source names in the current registry.
func (m *Manager) startWebsocketServers(ctx context.Context) {
	m.mu.Lock()
	devices := m.registry.Devices
	m.mu.Unlock()

	for _, addr := range websocketListenAddresses(devices) {
		addr := addr

		srv := wsserver.New(m.onWebsocketSourceAccepted, m.onWebsocketTargetAccepted)

		go func() {
			if err := srv.ListenAndServe(ctx, addr); err != nil && ctx.Err() == nil {
				m.logger.Warn("websocket listener stopped", "address", addr, "err", err)
			}
		}()
	}
}

// onWebsocketSourceAccepted wraps an accepted connection as a source and
// hands it to the first device config naming a websocket source kind,
// exactly like a hardware device arriving.
func (m *Manager) onWebsocketSourceAccepted(id string, conn *websocket.Conn) {
	driver, err := wsrc.New(id, conn)
	if err != nil {
		m.logger.Warn("websocket source rejected", "id", id, "err", err)
		conn.Close()

		return
	}

	m.mu.Lock()
	devices := m.registry.Devices
	m.mu.Unlock()

	for _, dc := range devices {
		if !hasWebsocketSource(dc) {
			continue
		}

		comp := m.compositeFor(dc)
		comp.AddSource(driver)

		go m.runSource(comp, driver)

		return
	}

	m.logger.Warn("websocket source accepted with no matching device config", "id", id)
	driver.Close()
}

// onWebsocketTargetAccepted wraps an accepted connection as an unattached
// websocket target, available for a subsequent control-plane
// AttachTargetDevice call.
func (m *Manager) onWebsocketTargetAccepted(id string, conn *websocket.Conn) {
	t := wstgt.New(id, conn)

	m.mu.Lock()
	m.unattachedTargets[target.KindWebsocket] = t
	m.mu.Unlock()
}

func hasWebsocketSource(dc *config.DeviceConfig) bool {
	for _, sc := range dc.Sources {
		if sc.Kind == "websocket" {
			return true
		}
	}

	return false
}
