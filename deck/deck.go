// Package deck implements an interactive card-stack widget: one draggable
// current card that commits a swipe (discard left/right) or a flip (reveal
// the back face) at release, and a next-card preview kept synchronized with
// the current card's live position.
//
// The deck owns the motion model and is single-threaded by contract: the
// host delivers pointer events and calls Step from one frame loop, and all
// animation ticks and completion notifications run serialized on that loop.
// Rendering is the caller's: render callbacks return opaque surfaces that
// Layers hands back with their computed visual parameters.
package deck

import (
	"time"

	"github.com/tanema/gween/ease"

	"github.com/jsoendermann/cardstack/anim"
	"github.com/jsoendermann/cardstack/gesture"
	"github.com/jsoendermann/cardstack/motion"
)

// Duration of the commit-swipe and commit-flip animations.
const commitDuration = 250 * time.Millisecond

// A committed swipe sends the card to ±1.5 × reference width, safely past
// the visible area and the roll interpolation extremes.
const swipeOffscreenFactor = 1.5

// Deck is the widget core. Create with New, reconfigure with Update.
type Deck[S any] struct {
	cfg   Config[S]
	model *motion.Model
	sched *anim.Scheduler
	rec   *gesture.Recognizer

	mode     Mode
	flipping bool // flip phase: claim until flip revert/commit completes
	flipDrag bool // the in-flight gesture routes to rotation
}

// New creates a deck for the configured card identity.
// Panics on a violated config contract (missing CardID or RenderFront,
// non-positive reference width): these are programmer errors.
func New[S any](cfg Config[S]) *Deck[S] {
	cfg.validate()

	d := &Deck[S]{
		cfg:   cfg,
		model: motion.NewModel(),
		mode:  cfg.mode(),
	}
	d.sched = anim.NewScheduler(d.model)
	d.rec = gesture.NewRecognizer(cfg.gestureConfig(), d.model)
	d.rec.OnClaim = d.claimed
	return d
}

// Update applies a new configuration. A changed CardID transitions the
// state machine: mode is recomputed from the new identity's back renderer,
// any in-flight gesture is abandoned, and motion reverts to neutral so the
// new card starts centered even if the caller swapped identity mid-gesture
// or mid-animation.
func (d *Deck[S]) Update(cfg Config[S]) {
	cfg.validate()

	identityChanged := cfg.CardID != d.cfg.CardID
	d.cfg = cfg
	d.rec.SetConfig(cfg.gestureConfig())

	if !identityChanged {
		return
	}

	d.rec.Cancel()
	d.mode = cfg.mode()
	d.startRevertPosition()
	if d.model.Drive() != 0 {
		d.startRevertRotation()
	} else {
		d.flipping = false
	}
}

// Model returns the deck's motion model. The deck stays its only writer;
// callers should treat it as read-only state.
func (d *Deck[S]) Model() *motion.Model { return d.model }

// View returns a read-only handle onto the motion model.
func (d *Deck[S]) View() *motion.View { return d.model.View() }

// CardID returns the current identity token.
func (d *Deck[S]) CardID() string { return d.cfg.CardID }

// Mode returns the active gesture interpretation.
func (d *Deck[S]) Mode() Mode { return d.mode }

// IsFlipping reports the flip phase: true from gesture claim until the
// flip revert or commit animation completes.
func (d *Deck[S]) IsFlipping() bool { return d.flipping }

// Animating reports whether any animation is currently driving the model.
func (d *Deck[S]) Animating() bool { return !d.sched.Idle() }

// PointerDown starts a new gesture. Subsequent PointerMove deltas are
// measured from this point.
func (d *Deck[S]) PointerDown() {
	d.flipDrag = d.mode == Flipping
	d.rec.Begin(d.flipDrag)
}

// PointerMove feeds one delta-from-start sample. Returns the recognizer's
// claim phase so the host can release the touch stream to outer containers
// when the gesture is ignored.
func (d *Deck[S]) PointerMove(dx, dy float64) gesture.Phase {
	return d.rec.Move(dx, dy)
}

// PointerRelease ends the gesture and starts exactly one animation for it:
// a commit toward the classified direction, or a revert back to neutral.
// Unclaimed gestures never touched the model and start nothing.
func (d *Deck[S]) PointerRelease(dx, dy float64) {
	claimed := d.rec.Phase() == gesture.Claimed
	outcome := d.rec.Release(dx, dy)
	if !claimed {
		return
	}

	if d.flipDrag {
		switch outcome {
		case gesture.CommitLeft:
			d.startCommitFlip(Left)
		case gesture.CommitRight:
			d.startCommitFlip(Right)
		default:
			d.startRevertRotation()
		}
		return
	}

	switch outcome {
	case gesture.CommitLeft:
		d.startCommitSwipe(Left)
	case gesture.CommitRight:
		d.startCommitSwipe(Right)
	default:
		d.startRevertPosition()
	}
}

// Step advances running animations by dt. Completion notifications fire
// synchronously from here, after their terminal state has been applied.
func (d *Deck[S]) Step(dt time.Duration) {
	d.sched.Step(dt)
}

// claimed runs when the recognizer claims a gesture.
func (d *Deck[S]) claimed() {
	d.flipping = d.flipDrag
	if d.cfg.OnClaim != nil {
		d.cfg.OnClaim()
	}
}

func (d *Deck[S]) startCommitSwipe(dir Direction) {
	target := swipeOffscreenFactor * d.cfg.ReferenceWidth
	if dir == Left {
		target = -target
	}

	tween := anim.NewPointTween(d.model.Position(), motion.Point{X: target}, commitDuration, ease.OutQuad)
	d.sched.Start(anim.SignalPosition, tween, func(r anim.Result) {
		if r != anim.Completed {
			return
		}
		// Snap back to neutral without animating, then notify: the caller
		// is expected to swap in a new card identity from the callback.
		d.model.Reset()
		if d.cfg.OnCompletedSwipe != nil {
			d.cfg.OnCompletedSwipe(dir)
		}
	})
}

func (d *Deck[S]) startCommitFlip(dir Direction) {
	target := d.cfg.ReferenceWidth
	if dir == Left {
		target = -target
	}

	tween := anim.NewDriveTween(d.model.Drive(), target, commitDuration, ease.OutQuad)
	d.sched.Start(anim.SignalRotation, tween, func(r anim.Result) {
		if r != anim.Completed {
			return
		}
		// The back face is now showing and keeps showing: the drive value
		// stays at its extreme until the card identity changes.
		d.mode = Swiping
		d.flipping = false
	})
}

func (d *Deck[S]) startRevertPosition() {
	d.sched.Start(anim.SignalPosition, anim.NewPointSpring(motion.Point{}), nil)
}

func (d *Deck[S]) startRevertRotation() {
	d.sched.Start(anim.SignalRotation, anim.NewDriveSpring(0), func(r anim.Result) {
		if r != anim.Completed {
			return
		}
		d.flipping = false
	})
}
