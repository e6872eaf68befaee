// Package motion holds the continuous signals a card deck animates:
// a 2D position offset and a y-rotation drive scalar.
//
// The Model is the single shared mutable resource of a deck. It is written
// by exactly two producers (the gesture recognizer during a drag, the
// animation scheduler during an animation) and read by the presentation
// mapper and caller render callbacks through a read-only View. All access
// happens on one event loop; the Model carries no locks.
package motion

import (
	"fmt"
	"math"
)

// Point is a 2D offset from the card's resting position, in layout units.
type Point struct {
	X float64
	Y float64
}

// IsZero reports whether the point is at the neutral resting value.
func (p Point) IsZero() bool {
	return p.X == 0 && p.Y == 0
}

// Snapshot is an immutable copy of the model taken at one version.
type Snapshot struct {
	Position Point
	Drive    float64
	Version  uint64
}

// Model owns the two motion signals. Both are finite at all times and zero
// at rest. Every mutation bumps the version and notifies subscribers.
type Model struct {
	pos     Point
	drive   float64
	version uint64

	listeners map[int]func()
	nextID    int
}

// NewModel creates a model at the neutral resting state.
func NewModel() *Model {
	return &Model{listeners: make(map[int]func())}
}

// Position returns the current card offset.
func (m *Model) Position() Point { return m.pos }

// Drive returns the y-rotation drive scalar. Its magnitude is a distance,
// not an angle; the presentation mapper converts it against the reference
// width.
func (m *Model) Drive() float64 { return m.drive }

// Version returns the mutation counter. Renders keyed off the version can
// skip recomputation when nothing moved.
func (m *Model) Version() uint64 { return m.version }

// Snapshot returns a copy of the current signal values.
func (m *Model) Snapshot() Snapshot {
	return Snapshot{Position: m.pos, Drive: m.drive, Version: m.version}
}

// SetPosition writes the position signal. Panics on non-finite input:
// a NaN offset is a programmer error, not a runtime condition.
func (m *Model) SetPosition(p Point) {
	checkFinite(p.X, "position.x")
	checkFinite(p.Y, "position.y")
	m.pos = p
	m.bump()
}

// SetDrive writes the rotation drive signal. Panics on non-finite input.
func (m *Model) SetDrive(v float64) {
	checkFinite(v, "rotation drive")
	m.drive = v
	m.bump()
}

// Reset snaps both signals to zero without animating, in one version bump.
func (m *Model) Reset() {
	m.pos = Point{}
	m.drive = 0
	m.bump()
}

// Subscribe registers a callback invoked after every mutation.
// Returns an unsubscribe function.
func (m *Model) Subscribe(fn func()) func() {
	id := m.nextID
	m.nextID++
	m.listeners[id] = fn
	return func() { delete(m.listeners, id) }
}

// View returns a read-only handle onto the model, suitable for handing to
// caller render callbacks.
func (m *Model) View() *View { return &View{m: m} }

func (m *Model) bump() {
	m.version++
	for _, fn := range m.listeners {
		fn()
	}
}

func checkFinite(v float64, what string) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		panic(fmt.Sprintf("motion: non-finite %s value %v", what, v))
	}
}

// View is a read-only window onto a Model. Render callbacks receive a View
// so they can build motion-linked visuals without being able to write the
// signals.
type View struct {
	m *Model
}

// Position returns the model's current card offset.
func (v *View) Position() Point { return v.m.Position() }

// Drive returns the model's current rotation drive value.
func (v *View) Drive() float64 { return v.m.Drive() }

// Version returns the model's mutation counter.
func (v *View) Version() uint64 { return v.m.Version() }

// Snapshot returns a copy of the model's current values.
func (v *View) Snapshot() Snapshot { return v.m.Snapshot() }
