package touchsynth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/source/touchsynth"
)

func TestSynthesizesSingleReleaseAfterGraceWindow(t *testing.T) {
	tracker := touchsynth.New(capability.Touchpad, touchsynth.Options{ReleaseDelay: 4 * time.Millisecond})

	events := tracker.Touch(capability.Touch{Index: 3, Touched: true, X: 0.5, Y: 0.5})
	require.Len(t, events, 1)

	// Within the grace window nothing expires.
	assert.Empty(t, tracker.Expire())

	time.Sleep(6 * time.Millisecond)

	events = tracker.Expire()
	require.Len(t, events, 1)
	assert.Equal(t, capability.Touchpad, events[0].Capability)

	touch, ok := events[0].Value.(capability.Touch)
	require.True(t, ok)
	assert.Equal(t, uint8(3), touch.Index)
	assert.False(t, touch.Touched)
	assert.InDelta(t, 0.5, touch.X, 1e-9)
	assert.InDelta(t, 0.5, touch.Y, 1e-9)

	// Already released: no further synthesis.
	assert.Empty(t, tracker.Expire())
}

func TestTapToClickOnQuickRelease(t *testing.T) {
	tracker := touchsynth.New(capability.Touchpad, touchsynth.Options{
		ClickCapability: capability.MouseButtonLeft,
	})

	tracker.Touch(capability.Touch{Index: 0, Touched: true, X: 0.2, Y: 0.2})

	events := tracker.Touch(capability.Touch{Index: 0, Touched: false, X: 0.2, Y: 0.2})
	require.Len(t, events, 3)

	assert.Equal(t, capability.MouseButtonLeft, events[1].Capability)
	assert.Equal(t, capability.Bool{Pressed: true}, events[1].Value)
	assert.Equal(t, capability.MouseButtonLeft, events[2].Capability)
	assert.Equal(t, capability.Bool{Pressed: false}, events[2].Value)
}

func TestNoClickWhenContactTravelsTooFar(t *testing.T) {
	tracker := touchsynth.New(capability.Touchpad, touchsynth.Options{
		ClickCapability: capability.MouseButtonLeft,
		MaxTapDistance:  0.05,
	})

	tracker.Touch(capability.Touch{Index: 0, Touched: true, X: 0.1, Y: 0.1})
	tracker.Touch(capability.Touch{Index: 0, Touched: true, X: 0.9, Y: 0.9})

	events := tracker.Touch(capability.Touch{Index: 0, Touched: false, X: 0.9, Y: 0.9})
	require.Len(t, events, 1)
}

func TestNoClickWhenHeldPastClickWindow(t *testing.T) {
	tracker := touchsynth.New(capability.Touchpad, touchsynth.Options{
		ClickCapability: capability.MouseButtonLeft,
		ClickWindow:     5 * time.Millisecond,
	})

	tracker.Touch(capability.Touch{Index: 0, Touched: true, X: 0.5, Y: 0.5})

	time.Sleep(8 * time.Millisecond)

	events := tracker.Touch(capability.Touch{Index: 0, Touched: false, X: 0.5, Y: 0.5})
	require.Len(t, events, 1)
}
