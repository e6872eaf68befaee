package deck

import (
	"fmt"

	"github.com/jsoendermann/cardstack/gesture"
	"github.com/jsoendermann/cardstack/motion"
)

// Direction is the committed side of a swipe or flip.
type Direction uint8

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// Mode is the deck's gesture interpretation for the displayed card.
type Mode uint8

const (
	// Swiping interprets drags as translation; release discards or reverts.
	Swiping Mode = iota
	// Flipping interprets drags as y-rotation; release flips or reverts.
	// Active iff the current card identity has a back renderer.
	Flipping
)

func (m Mode) String() string {
	switch m {
	case Swiping:
		return "swiping"
	case Flipping:
		return "flipping"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// Config is the caller-facing configuration of a deck. S is the caller's
// renderable surface type; the deck treats surfaces as opaque values and
// hands them back through Layers.
type Config[S any] struct {
	// CardID is the identity token of the displayed card. Changing it
	// drives the state machine transition: mode is recomputed from the new
	// identity's back renderer and position reverts to center.
	CardID string

	// ReferenceWidth is the horizontal extent of the display area, in
	// layout units. Required; normalizes all thresholds and mappings.
	ReferenceWidth float64

	// RenderFront builds the current card's front face. Required. The view
	// is a live read-only handle for motion-linked visuals.
	RenderFront func(v *motion.View) S

	// RenderBack builds the current card's back face. Its presence enables
	// flip mode for this identity.
	RenderBack func() S

	// RenderNextFront builds the next-card preview. Nil disables next-card
	// rendering entirely.
	RenderNextFront func() S

	// RenderNextOverlay builds the dimming overlay above the next card.
	RenderNextOverlay func() S

	// RenderLeftResult and RenderRightResult build the badge overlays that
	// fade in over the visible face as the card is dragged.
	RenderLeftResult  func() S
	RenderRightResult func() S

	// OnCompletedSwipe fires exactly once per committed swipe, after the
	// commit animation finishes and motion has snapped back to neutral.
	// This is the moment to swap in a new card identity.
	OnCompletedSwipe func(Direction)

	// OnClaim fires when a drag is claimed, so the host can block the
	// ambient responder from also interpreting the touch stream.
	OnClaim func()

	// NonSwipeawayable and NonFlippable disable commit classification for
	// their gesture type (forced revert) without disabling drag visuals.
	NonSwipeawayable bool
	NonFlippable     bool

	// SwipeThreshold and FlipThreshold are commit distances at release.
	// 0 means 15% of ReferenceWidth each.
	SwipeThreshold float64
	FlipThreshold  float64

	// ClaimDistance is the drag dead-zone radius. 0 means 10 units.
	ClaimDistance float64

	// CardElevation and NextCardElevation are style passthroughs, forced
	// to 0 in the layer output while a flip is in progress.
	CardElevation     float64
	NextCardElevation float64
}

func (c *Config[S]) validate() {
	if c.CardID == "" {
		panic("deck: config requires a CardID")
	}
	if c.RenderFront == nil {
		panic("deck: config requires a RenderFront callback")
	}
	if c.ReferenceWidth <= 0 {
		panic(fmt.Sprintf("deck: reference width must be positive, got %v", c.ReferenceWidth))
	}
}

func (c *Config[S]) gestureConfig() gesture.Config {
	return gesture.Config{
		ReferenceWidth:   c.ReferenceWidth,
		SwipeThreshold:   c.SwipeThreshold,
		FlipThreshold:    c.FlipThreshold,
		ClaimDistance:    c.ClaimDistance,
		NonSwipeawayable: c.NonSwipeawayable,
		NonFlippable:     c.NonFlippable,
	}
}

func (c *Config[S]) mode() Mode {
	if c.RenderBack != nil {
		return Flipping
	}
	return Swiping
}
