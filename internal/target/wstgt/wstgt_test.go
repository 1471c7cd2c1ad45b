package wstgt_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/target/wstgt"
	"github.com/hidbridge/daemon/internal/wire"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(*http.Request) bool { return true }}

// pair returns the server side of an accepted connection plus the peer's
// client side.
func pair(t *testing.T) (server, client *websocket.Conn) {
	t.Helper()

	accepted := make(chan *websocket.Conn, 1)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}

		accepted <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")

	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	select {
	case server = <-accepted:
	case <-time.After(time.Second):
		t.Fatal("no connection accepted")
	}

	return server, client
}

func readBinary(t *testing.T, conn *websocket.Conn) []byte {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))

	kind, buf, err := conn.ReadMessage()
	require.NoError(t, err)
	require.Equal(t, websocket.BinaryMessage, kind)

	return buf
}

func TestSetCapabilitiesSendsCapabilityReportFrame(t *testing.T) {
	server, client := pair(t)

	d := wstgt.New("test", server)
	defer d.Close()

	report, err := wire.BuildCapabilityReport([]wire.CapabilityEntry{
		{Capability: capability.GamepadButtonSouth, ValueType: wire.ValueTypeBool},
	})
	require.NoError(t, err)
	require.NoError(t, d.SetCapabilities(report.Entries))

	got, err := wire.UnpackCapabilityReport(readBinary(t, client))
	require.NoError(t, err)
	assert.Equal(t, report.Entries, got.Entries)
}

func TestForwardsOneDataFramePerStateChange(t *testing.T) {
	server, client := pair(t)

	d := wstgt.New("test", server)
	defer d.Close()

	report, err := wire.BuildCapabilityReport([]wire.CapabilityEntry{
		{Capability: capability.GamepadButtonSouth, ValueType: wire.ValueTypeBool},
		{Capability: capability.GamepadAxisLeftTrigger, ValueType: wire.ValueTypeUInt8},
	})
	require.NoError(t, err)
	require.NoError(t, d.SetCapabilities(report.Entries))

	readBinary(t, client) // capability report frame

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.Run(ctx)

	d.Inbox() <- capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}}

	data, err := wire.UnpackInputDataReport(readBinary(t, client))
	require.NoError(t, err)
	assert.Equal(t, uint16(1), data.StateVersion)

	values, err := data.Decode(report)
	require.NoError(t, err)
	assert.Equal(t, wire.BoolValue{Value: true}, values[capability.GamepadButtonSouth])

	// A duplicate produces no frame; the next change carries version 2.
	d.Inbox() <- capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}}
	d.Inbox() <- capability.NativeEvent{Capability: capability.GamepadAxisLeftTrigger, Value: capability.Scalar{Value: 0.5}}

	data, err = wire.UnpackInputDataReport(readBinary(t, client))
	require.NoError(t, err)
	assert.Equal(t, uint16(2), data.StateVersion)
}

func TestClearStateSendsNeutralSnapshot(t *testing.T) {
	server, client := pair(t)

	d := wstgt.New("test", server)
	defer d.Close()

	report, err := wire.BuildCapabilityReport([]wire.CapabilityEntry{
		{Capability: capability.GamepadButtonSouth, ValueType: wire.ValueTypeBool},
	})
	require.NoError(t, err)
	require.NoError(t, d.SetCapabilities(report.Entries))

	readBinary(t, client)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go d.Run(ctx)

	d.Inbox() <- capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}}
	readBinary(t, client)

	require.NoError(t, d.ClearState())

	data, err := wire.UnpackInputDataReport(readBinary(t, client))
	require.NoError(t, err)

	values, err := data.Decode(report)
	require.NoError(t, err)
	assert.Equal(t, wire.BoolValue{Value: false}, values[capability.GamepadButtonSouth])
}
