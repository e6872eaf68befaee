package anim

import (
	"time"

	"github.com/jsoendermann/cardstack/motion"
)

// Scheduler runs at most one animation per signal against a shared model.
//
// It holds no clock of its own: the host calls Step from its frame loop,
// which keeps animation ticks, gesture callbacks and completion
// notifications strictly serialized on one event queue.
type Scheduler struct {
	model   *motion.Model
	running [signalCount]*task
}

type task struct {
	anim   Animation
	handle *Handle
	onDone func(Result)
}

// NewScheduler creates a scheduler mutating the given model.
func NewScheduler(model *motion.Model) *Scheduler {
	if model == nil {
		panic("anim: scheduler requires a motion model")
	}
	return &Scheduler{model: model}
}

// Start begins an animation on a signal, superseding any animation already
// driving it. The superseded animation's handle resolves immediately, then
// its onDone fires, before Start returns. The returned handle resolves
// exactly once, from a later Step or a later supersession.
func (s *Scheduler) Start(sig Signal, a Animation, onDone func(Result)) *Handle {
	if prev := s.running[sig]; prev != nil {
		s.running[sig] = nil
		prev.handle.resolve(Superseded)
		if prev.onDone != nil {
			prev.onDone(Superseded)
		}
	}

	h := newHandle()
	s.running[sig] = &task{anim: a, handle: h, onDone: onDone}
	return h
}

// Step advances all running animations by dt. Completed animations are
// removed from their slot before their handle resolves, so a completion
// callback may immediately start a new animation on the same signal.
func (s *Scheduler) Step(dt time.Duration) {
	for sig := range s.running {
		t := s.running[sig]
		if t == nil {
			continue
		}
		if t.anim.Step(s.model, dt) {
			s.running[sig] = nil
			t.handle.resolve(Completed)
			if t.onDone != nil {
				t.onDone(Completed)
			}
		}
	}
}

// Running reports whether an animation currently drives the signal.
func (s *Scheduler) Running(sig Signal) bool {
	return s.running[sig] != nil
}

// Idle reports whether no animation is running on any signal.
func (s *Scheduler) Idle() bool {
	for _, t := range s.running {
		if t != nil {
			return false
		}
	}
	return true
}
