package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var holdStart = time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

func TestHoldToConfirm_FullHoldCommits(t *testing.T) {
	h := NewHoldToConfirm(3 * time.Second)

	require.True(t, h.Press(holdStart))
	assert.Equal(t, HoldHolding, h.State())
	assert.InDelta(t, 0.5, h.Progress(holdStart.Add(1500*time.Millisecond)), 0.001)

	committed := h.Release(holdStart.Add(3 * time.Second))
	assert.True(t, committed)
	assert.Equal(t, HoldCommitted, h.State())
	assert.Equal(t, 1.0, h.Progress(holdStart.Add(10*time.Second)))
}

func TestHoldToConfirm_EarlyReleaseResetsToZero(t *testing.T) {
	h := NewHoldToConfirm(3 * time.Second)

	require.True(t, h.Press(holdStart))
	committed := h.Release(holdStart.Add(2900 * time.Millisecond))

	assert.False(t, committed)
	assert.Equal(t, HoldIdle, h.State())
	// progress snaps back to exactly 0, it is not retained
	assert.Equal(t, 0.0, h.Progress(holdStart.Add(3*time.Second)))

	// the machine is reusable after an early release
	require.True(t, h.Press(holdStart.Add(5*time.Second)))
	assert.True(t, h.Release(holdStart.Add(9*time.Second)))
}

func TestHoldToConfirm_DoublePressIsNoOp(t *testing.T) {
	h := NewHoldToConfirm(3 * time.Second)

	require.True(t, h.Press(holdStart))
	// a second press must not restart the clock
	assert.False(t, h.Press(holdStart.Add(2*time.Second)))

	assert.True(t, h.Release(holdStart.Add(3*time.Second)))
}

func TestHoldToConfirm_CommittedIsTerminal(t *testing.T) {
	h := NewHoldToConfirm(3 * time.Second)
	require.True(t, h.Press(holdStart))
	require.True(t, h.Release(holdStart.Add(4*time.Second)))

	assert.False(t, h.Press(holdStart.Add(10*time.Second)), "no second hold after commit")
	assert.False(t, h.Release(holdStart.Add(20*time.Second)), "at most one commit per machine")
	assert.Equal(t, HoldCommitted, h.State())
}

func TestHoldToConfirm_ReleaseWhileIdleIsNoOp(t *testing.T) {
	h := NewHoldToConfirm(3 * time.Second)
	assert.False(t, h.Release(holdStart))
	assert.Equal(t, HoldIdle, h.State())
	assert.Equal(t, 0.0, h.Progress(holdStart))
}

func TestHoldToConfirm_ProgressClamped(t *testing.T) {
	h := NewHoldToConfirm(3 * time.Second)
	require.True(t, h.Press(holdStart))

	assert.Equal(t, 0.0, h.Progress(holdStart.Add(-time.Second)), "clock skew never yields negative progress")
	assert.Equal(t, 1.0, h.Progress(holdStart.Add(time.Minute)), "progress caps at 1 while still holding")
}

func TestHoldToConfirm_ResumeContinuesMidHold(t *testing.T) {
	h := Resume(holdStart, 3*time.Second)
	assert.Equal(t, HoldHolding, h.State())
	assert.True(t, h.Release(holdStart.Add(3*time.Second)))
}

func TestNewHoldToConfirm_DefaultDuration(t *testing.T) {
	h := NewHoldToConfirm(0)
	require.True(t, h.Press(holdStart))
	assert.False(t, h.Release(holdStart.Add(DefaultHoldDuration-time.Millisecond)))
}
