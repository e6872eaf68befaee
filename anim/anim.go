// Package anim drives the motion model toward targets over time.
//
// Two animation families exist: fixed-duration tweens (gween) used for
// committed gestures, and damped springs (harmonica) used for reverts.
// A Scheduler owns at most one running animation per motion signal and is
// stepped by the host's frame loop; starting a new animation on a signal
// silently supersedes the previous one (last writer wins on the underlying
// value). Every started animation resolves its Handle exactly once.
package anim

import (
	"fmt"
	"time"

	"github.com/jsoendermann/cardstack/motion"
)

// Signal identifies which motion value an animation drives.
type Signal uint8

const (
	// SignalPosition drives the 2D position offset.
	SignalPosition Signal = iota
	// SignalRotation drives the y-rotation drive scalar.
	SignalRotation

	signalCount
)

func (s Signal) String() string {
	switch s {
	case SignalPosition:
		return "position"
	case SignalRotation:
		return "rotation"
	default:
		return fmt.Sprintf("Signal(%d)", uint8(s))
	}
}

// Result is how an animation's lifetime ended.
type Result uint8

const (
	// Completed means the animation reached its target and settled.
	Completed Result = iota
	// Superseded means a newer animation took over the signal first.
	Superseded
)

func (r Result) String() string {
	switch r {
	case Completed:
		return "completed"
	case Superseded:
		return "superseded"
	default:
		return fmt.Sprintf("Result(%d)", uint8(r))
	}
}

// Handle is a single-resolution future for one started animation.
// Done is closed when the animation completes or is superseded; Result is
// valid only after Done.
type Handle struct {
	done     chan struct{}
	result   Result
	resolved bool
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// Done returns a channel closed once the animation has resolved.
func (h *Handle) Done() <-chan struct{} { return h.done }

// Resolved reports whether the handle has resolved.
func (h *Handle) Resolved() bool { return h.resolved }

// Result returns how the animation ended. Only meaningful after Done.
func (h *Handle) Result() Result { return h.result }

func (h *Handle) resolve(r Result) {
	if h.resolved {
		panic("anim: handle resolved twice")
	}
	h.resolved = true
	h.result = r
	close(h.done)
}

// Animation advances a motion signal toward its target.
// Step writes the signal's new value into the model and reports true once
// the animation has settled at its terminal value.
type Animation interface {
	Step(m *motion.Model, dt time.Duration) bool
}
