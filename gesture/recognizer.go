// Package gesture turns a raw drag stream into deck decisions.
//
// A drag arrives as {dx, dy} deltas measured from the gesture start. The
// recognizer makes two decisions: whether to claim the gesture at all
// (claim-or-ignore, decided on the first sufficient movement), and how to
// classify it at release time (commit left, commit right, or revert).
// While claimed it is also the only writer of the motion model for the
// duration of the gesture.
package gesture

import (
	"fmt"
	"math"

	"github.com/jsoendermann/cardstack/motion"
)

// Phase is the claim state of the in-progress gesture.
type Phase uint8

const (
	// Undecided means no move has yet resolved the claim decision.
	Undecided Phase = iota
	// Claimed means this recognizer owns the gesture exclusively.
	Claimed
	// Ignored means the gesture was rejected (vertical-dominant movement)
	// and passes through to outer scrollable containers.
	Ignored
)

func (p Phase) String() string {
	switch p {
	case Undecided:
		return "undecided"
	case Claimed:
		return "claimed"
	case Ignored:
		return "ignored"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Outcome is the release-time classification of a claimed gesture.
type Outcome uint8

const (
	// Revert animates the touched signal back to neutral.
	Revert Outcome = iota
	// CommitLeft discards or flips the card leftward.
	CommitLeft
	// CommitRight discards or flips the card rightward.
	CommitRight
)

func (o Outcome) String() string {
	switch o {
	case Revert:
		return "revert"
	case CommitLeft:
		return "commit-left"
	case CommitRight:
		return "commit-right"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Default claim dead-zone radius, in layout units. Small enough not to feel
// sticky, large enough to avoid hijacking taps.
const defaultClaimDistance = 10.0

// Default commit threshold as a fraction of the reference width, applied
// independently to swipe and flip when no explicit threshold is configured.
const defaultThresholdFraction = 0.15

// Config holds the recognizer's thresholds and capability flags.
// Zero-valued thresholds fall back to defaults derived from ReferenceWidth.
type Config struct {
	// ReferenceWidth normalizes thresholds; must be positive.
	ReferenceWidth float64

	// SwipeThreshold is the release |dx| beyond which a swipe commits.
	// 0 means 15% of ReferenceWidth.
	SwipeThreshold float64

	// FlipThreshold is the release |dx| beyond which a flip commits.
	// 0 means 15% of ReferenceWidth.
	FlipThreshold float64

	// ClaimDistance is the dead-zone radius before a drag is claimed.
	// 0 means 10 units.
	ClaimDistance float64

	// NonSwipeawayable forces Revert for swipe gestures without disabling
	// the drag visuals.
	NonSwipeawayable bool

	// NonFlippable forces Revert for flip gestures without disabling the
	// drag visuals.
	NonFlippable bool
}

func (c Config) swipeThreshold() float64 {
	if c.SwipeThreshold > 0 {
		return c.SwipeThreshold
	}
	return defaultThresholdFraction * c.ReferenceWidth
}

func (c Config) flipThreshold() float64 {
	if c.FlipThreshold > 0 {
		return c.FlipThreshold
	}
	return defaultThresholdFraction * c.ReferenceWidth
}

func (c Config) claimDistance() float64 {
	if c.ClaimDistance > 0 {
		return c.ClaimDistance
	}
	return defaultClaimDistance
}

// Recognizer consumes one drag gesture at a time and routes claimed motion
// into the model. Begin resets it for the next gesture.
type Recognizer struct {
	cfg   Config
	model *motion.Model

	phase Phase
	flip  bool // claimed deltas drive rotation instead of position

	// OnClaim fires once when the gesture is claimed, so the host can
	// block the ambient responder from also consuming the touch stream.
	OnClaim func()
}

// NewRecognizer creates a recognizer writing into model.
// Panics when the model is missing or the reference width is not positive.
func NewRecognizer(cfg Config, model *motion.Model) *Recognizer {
	if model == nil {
		panic("gesture: recognizer requires a motion model")
	}
	if cfg.ReferenceWidth <= 0 {
		panic(fmt.Sprintf("gesture: reference width must be positive, got %v", cfg.ReferenceWidth))
	}
	return &Recognizer{cfg: cfg, model: model}
}

// SetConfig replaces thresholds and flags. Safe between gestures; an
// in-flight gesture keeps its claim but classifies against the new values.
func (r *Recognizer) SetConfig(cfg Config) {
	if cfg.ReferenceWidth <= 0 {
		panic(fmt.Sprintf("gesture: reference width must be positive, got %v", cfg.ReferenceWidth))
	}
	r.cfg = cfg
}

// Phase returns the claim state of the current gesture.
func (r *Recognizer) Phase() Phase { return r.phase }

// Begin starts a new gesture. flip selects the signal claimed deltas are
// routed to: rotation drive when true, position otherwise.
func (r *Recognizer) Begin(flip bool) {
	r.phase = Undecided
	r.flip = flip
}

// Cancel abandons the current gesture; remaining moves and the release are
// ignored. Used when the displayed card changes under an active drag.
func (r *Recognizer) Cancel() {
	r.phase = Ignored
}

// Move feeds one delta-from-start sample and returns the resulting phase.
//
// The claim decision happens on the first sample that resolves it: a
// vertical-dominant delta rejects the gesture for good (it belongs to an
// outer scroll), anything else claims once the distance leaves the
// dead-zone. Claimed samples write straight into the motion model.
func (r *Recognizer) Move(dx, dy float64) Phase {
	switch r.phase {
	case Ignored:
		return Ignored
	case Undecided:
		if math.Hypot(dx, dy) <= r.cfg.claimDistance() {
			return Undecided
		}
		if math.Abs(dy) > math.Abs(dx) {
			r.phase = Ignored
			return Ignored
		}
		r.phase = Claimed
		if r.OnClaim != nil {
			r.OnClaim()
		}
	}

	if r.flip {
		r.model.SetDrive(dx)
	} else {
		r.model.SetPosition(motion.Point{X: dx, Y: dy})
	}
	return Claimed
}

// Release classifies the gesture from its final delta and ends it.
// Unclaimed gestures always revert (they never touched the model).
// Capability flags suppress commit classification unconditionally.
func (r *Recognizer) Release(dx, dy float64) Outcome {
	claimed := r.phase == Claimed
	r.phase = Undecided

	if !claimed {
		return Revert
	}

	var threshold float64
	if r.flip {
		if r.cfg.NonFlippable {
			return Revert
		}
		threshold = r.cfg.flipThreshold()
	} else {
		if r.cfg.NonSwipeawayable {
			return Revert
		}
		threshold = r.cfg.swipeThreshold()
	}

	switch {
	case dx > threshold:
		return CommitRight
	case dx < -threshold:
		return CommitLeft
	default:
		return Revert
	}
}
