package manager

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hidbridge/daemon/internal/config"
)

func TestWebsocketListenAddressesDeduplicates(t *testing.T) {
	devices := []*config.DeviceConfig{
		{Name: "a", Sources: []config.SourceConfig{{Kind: "websocket", Address: ":7660"}}},
		{Name: "b", Sources: []config.SourceConfig{{Kind: "websocket", Address: ":7660"}, {Kind: "evdev"}}},
		{Name: "c", Sources: []config.SourceConfig{{Kind: "websocket", Address: ":7661"}}},
	}

	got := websocketListenAddresses(devices)
	require.ElementsMatch(t, []string{":7660", ":7661"}, got)
}

func TestHasWebsocketSource(t *testing.T) {
	require.True(t, hasWebsocketSource(&config.DeviceConfig{Sources: []config.SourceConfig{{Kind: "websocket"}}}))
	require.False(t, hasWebsocketSource(&config.DeviceConfig{Sources: []config.SourceConfig{{Kind: "evdev"}}}))
}
