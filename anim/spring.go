package anim

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/jsoendermann/cardstack/motion"
)

// Spring tuning shared by both revert animations. The damping ratio keeps a
// hint of overshoot without visible bouncing; settled state snaps exactly.
const (
	springFrequency = 7.0
	springDamping   = 0.85

	// Settle thresholds, in layout units and units per second.
	settleDistance = 0.05
	settleVelocity = 0.05
)

// PointSpring animates the position signal back to a target with a damped
// spring. The spring has no fixed duration; it settles naturally and then
// snaps to the target exactly.
type PointSpring struct {
	target   motion.Point
	vx, vy   float64
	started  bool
	px, py   float64
}

// NewPointSpring creates a spring pulling position toward target from the
// model's value at the first Step.
func NewPointSpring(target motion.Point) *PointSpring {
	return &PointSpring{target: target}
}

// Step implements Animation.
func (s *PointSpring) Step(m *motion.Model, dt time.Duration) bool {
	if !s.started {
		p := m.Position()
		s.px, s.py = p.X, p.Y
		s.started = true
	}

	sp := harmonica.NewSpring(dt.Seconds(), springFrequency, springDamping)
	s.px, s.vx = sp.Update(s.px, s.vx, s.target.X)
	s.py, s.vy = sp.Update(s.py, s.vy, s.target.Y)

	if settled(s.px, s.vx, s.target.X) && settled(s.py, s.vy, s.target.Y) {
		m.SetPosition(s.target)
		return true
	}
	m.SetPosition(motion.Point{X: s.px, Y: s.py})
	return false
}

// DriveSpring animates the rotation drive signal back to a target with a
// damped spring.
type DriveSpring struct {
	target  float64
	pos     float64
	vel     float64
	started bool
}

// NewDriveSpring creates a spring pulling the drive value toward target
// from the model's value at the first Step.
func NewDriveSpring(target float64) *DriveSpring {
	return &DriveSpring{target: target}
}

// Step implements Animation.
func (s *DriveSpring) Step(m *motion.Model, dt time.Duration) bool {
	if !s.started {
		s.pos = m.Drive()
		s.started = true
	}

	sp := harmonica.NewSpring(dt.Seconds(), springFrequency, springDamping)
	s.pos, s.vel = sp.Update(s.pos, s.vel, s.target)

	if settled(s.pos, s.vel, s.target) {
		m.SetDrive(s.target)
		return true
	}
	m.SetDrive(s.pos)
	return false
}

func settled(pos, vel, target float64) bool {
	return math.Abs(pos-target) < settleDistance && math.Abs(vel) < settleVelocity
}
