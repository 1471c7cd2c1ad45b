package chord_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hidbridge/daemon/internal/capability"
	"github.com/hidbridge/daemon/internal/chord"
)

func guideA() []chord.Definition {
	return []chord.Definition{
		{
			Name: "guide+a",
			Requirements: []chord.Requirement{
				{Capability: capability.GamepadButtonGuide, Match: chord.Pressed},
				{Capability: capability.GamepadButtonSouth, Match: chord.Pressed},
			},
			Emit: []capability.NativeEvent{{Capability: capability.GamepadButtonGuide, Value: capability.Bool{Pressed: true}}},
		},
	}
}

func TestMatcherFiresOnBothHeldWithinTTL(t *testing.T) {
	m := chord.New(32, 200*time.Millisecond, guideA())

	require.Nil(t, m.Append(capability.NativeEvent{Capability: capability.GamepadButtonGuide, Value: capability.Bool{Pressed: true}}))

	emit := m.Append(capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}})
	require.NotNil(t, emit)
	assert.Equal(t, capability.GamepadButtonGuide, emit[0].Capability)
}

func TestMatcherDoesNotRetriggerWithoutFreshPress(t *testing.T) {
	m := chord.New(32, 200*time.Millisecond, guideA())

	m.Append(capability.NativeEvent{Capability: capability.GamepadButtonGuide, Value: capability.Bool{Pressed: true}})
	first := m.Append(capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}})
	require.NotNil(t, first)

	// Re-emitting the same South press without a fresh Guide press must
	// not re-trigger: Guide's entry was consumed by the first match.
	second := m.Append(capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}})
	assert.Nil(t, second)
}

func TestMatcherExpiresEntriesPastTTL(t *testing.T) {
	m := chord.New(32, 10*time.Millisecond, guideA())

	m.Append(capability.NativeEvent{Capability: capability.GamepadButtonGuide, Value: capability.Bool{Pressed: true}})
	time.Sleep(20 * time.Millisecond)

	emit := m.Append(capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}})
	assert.Nil(t, emit)
}

func TestLongerChordPreemptsShorterPrefix(t *testing.T) {
	// Both chords only become satisfiable on the second (South) append,
	// so they tie on the same append and the longer one must win, rather
	// than the shorter "south-only" chord firing first and starving the
	// combo of its South entry.
	defs := []chord.Definition{
		{
			Name:         "south-only",
			Requirements: []chord.Requirement{{Capability: capability.GamepadButtonSouth, Match: chord.Pressed}},
			Emit:         []capability.NativeEvent{{Capability: capability.GamepadButtonStart, Value: capability.Bool{Pressed: true}}},
		},
		{
			Name: "guide+a",
			Requirements: []chord.Requirement{
				{Capability: capability.GamepadButtonGuide, Match: chord.Pressed},
				{Capability: capability.GamepadButtonSouth, Match: chord.Pressed},
			},
			Emit: []capability.NativeEvent{{Capability: capability.GamepadButtonSelect, Value: capability.Bool{Pressed: true}}},
		},
	}

	m := chord.New(32, 200*time.Millisecond, defs)
	m.Append(capability.NativeEvent{Capability: capability.GamepadButtonGuide, Value: capability.Bool{Pressed: true}})

	emit := m.Append(capability.NativeEvent{Capability: capability.GamepadButtonSouth, Value: capability.Bool{Pressed: true}})
	require.Len(t, emit, 1)
	assert.Equal(t, capability.GamepadButtonSelect, emit[0].Capability)
}
