package service

import (
	"time"
)

// DefaultHoldDuration is how long the confirmation press must be held
// before the donation commits.
const DefaultHoldDuration = 3 * time.Second

type HoldState int

const (
	HoldIdle HoldState = iota
	HoldHolding
	HoldCommitted
)

func (s HoldState) String() string {
	switch s {
	case HoldHolding:
		return "holding"
	case HoldCommitted:
		return "committed"
	default:
		return "idle"
	}
}

// HoldToConfirm is the timing state machine behind the hold-to-confirm
// gesture, decoupled from any progress-bar rendering.
//
//	Idle → Holding → Committed   (held for the full duration)
//	Holding → Idle               (released early; progress resets to 0)
//
// A second press while already Holding is a no-op, and Committed is
// terminal, so at most one commit can ever come out of one machine.
type HoldToConfirm struct {
	state     HoldState
	startedAt time.Time
	duration  time.Duration
}

func NewHoldToConfirm(duration time.Duration) *HoldToConfirm {
	if duration <= 0 {
		duration = DefaultHoldDuration
	}
	return &HoldToConfirm{duration: duration}
}

// Resume rebuilds a machine that is mid-hold (persisted between requests).
func Resume(startedAt time.Time, duration time.Duration) *HoldToConfirm {
	h := NewHoldToConfirm(duration)
	h.state = HoldHolding
	h.startedAt = startedAt
	return h
}

// Press begins a hold. Returns false without side effects when the
// machine is not Idle.
func (h *HoldToConfirm) Press(now time.Time) bool {
	if h.state != HoldIdle {
		return false
	}
	h.state = HoldHolding
	h.startedAt = now
	return true
}

// Release ends the press. When the accumulated progress has reached 1
// the machine commits and returns true; otherwise it resets to Idle
// with progress exactly 0 and returns false. Releasing while not
// Holding is a no-op.
func (h *HoldToConfirm) Release(now time.Time) bool {
	if h.state != HoldHolding {
		return false
	}
	if now.Sub(h.startedAt) >= h.duration {
		h.state = HoldCommitted
		return true
	}
	h.state = HoldIdle
	h.startedAt = time.Time{}
	return false
}

// Progress reports the accumulated hold fraction in [0, 1].
func (h *HoldToConfirm) Progress(now time.Time) float64 {
	switch h.state {
	case HoldCommitted:
		return 1
	case HoldHolding:
		p := float64(now.Sub(h.startedAt)) / float64(h.duration)
		if p < 0 {
			return 0
		}
		if p > 1 {
			return 1
		}
		return p
	default:
		return 0
	}
}

func (h *HoldToConfirm) State() HoldState {
	return h.state
}
