package controlplane

import (
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/stretchr/testify/require"
)

func TestSanitizeSegment(t *testing.T) {
	require.Equal(t, "pad1", sanitizeSegment("pad1"))
	require.Equal(t, "dev_input_event3", sanitizeSegment("/dev/input/event3"))
	require.Equal(t, "my_pad_2", sanitizeSegment("my-pad 2"))
}

func TestCompositeObjectPath(t *testing.T) {
	require.Equal(t, dbus.ObjectPath("/org/hidbridge/CompositeDevice/left_pad"), compositeObjectPath("left-pad"))
}

func TestTargetObjectPath(t *testing.T) {
	got := targetObjectPath("xbox-gamepad", "/dev/uinput3")
	require.Equal(t, dbus.ObjectPath("/org/hidbridge/Target/xbox_gamepad_dev_uinput3"), got)
}

func TestSourceObjectPath(t *testing.T) {
	got := sourceObjectPath("left-pad", "/dev/input/event3")
	require.Equal(t, dbus.ObjectPath("/org/hidbridge/CompositeDevice/left_pad/Source/dev_input_event3"), got)
}

func TestAllowAllNeverRejects(t *testing.T) {
	require.NoError(t, AllowAll(dbus.Sender(":1.42"), "SetInterceptMode"))
}
