package deck

import (
	"github.com/jsoendermann/cardstack/motion"
	"github.com/jsoendermann/cardstack/present"
)

// LayerKind identifies what a layer is, so hosts can composite each kind
// appropriately (e.g. badge layers blend, card layers replace).
type LayerKind uint8

const (
	LayerNextCard LayerKind = iota
	LayerNextOverlay
	LayerCardBack
	LayerCardFront
	LayerResultLeft
	LayerResultRight
)

// Layer pairs a caller surface with its computed visual parameters.
// The card-local parameters (Translation, Roll, RotateY) apply to the
// current-card layers; Scale applies to the next-card layers.
type Layer[S any] struct {
	Kind    LayerKind
	Surface S

	Translation motion.Point
	Roll        float64 // degrees
	RotateY     float64 // degrees
	Scale       float64
	Opacity     float64
	Elevation   float64
}

// Layers derives the z-ordered render list for the current frame, bottom
// to top: next card, next-card overlay, visible current-card face, result
// badges over the visible face. Surfaces come from the configured render
// callbacks; layers whose callback is absent or whose face is culled are
// omitted.
func (d *Deck[S]) Layers() []Layer[S] {
	s := d.model.Snapshot()
	w := d.cfg.ReferenceWidth

	ct := present.CurrentCard(s, w, d.cfg.CardElevation, present.Flags{
		Flipping:     d.flipping,
		NonFlippable: d.cfg.NonFlippable,
	})

	layers := make([]Layer[S], 0, 6)

	if d.cfg.RenderNextFront != nil {
		nt := present.NextCard(s, w, d.cfg.NextCardElevation, d.flipping)
		layers = append(layers, Layer[S]{
			Kind:      LayerNextCard,
			Surface:   d.cfg.RenderNextFront(),
			Scale:     nt.Scale,
			Opacity:   1,
			Elevation: nt.Elevation,
		})
		if d.cfg.RenderNextOverlay != nil {
			layers = append(layers, Layer[S]{
				Kind:    LayerNextOverlay,
				Surface: d.cfg.RenderNextOverlay(),
				Scale:   nt.Scale,
				Opacity: nt.OverlayOpacity,
			})
		}
	}

	faceShown := false
	if d.cfg.RenderBack != nil && ct.BackVisible {
		layers = append(layers, Layer[S]{
			Kind:        LayerCardBack,
			Surface:     d.cfg.RenderBack(),
			Translation: ct.Translation,
			Roll:        ct.Roll,
			RotateY:     ct.BackRotateY,
			Scale:       1,
			Opacity:     1,
			Elevation:   ct.Elevation,
		})
		faceShown = true
	}
	if ct.FrontVisible {
		layers = append(layers, Layer[S]{
			Kind:        LayerCardFront,
			Surface:     d.cfg.RenderFront(d.model.View()),
			Translation: ct.Translation,
			Roll:        ct.Roll,
			RotateY:     ct.FrontRotateY,
			Scale:       1,
			Opacity:     1,
			Elevation:   ct.Elevation,
		})
		faceShown = true
	}

	if faceShown {
		left, right := present.ResultOpacities(s.Position.X, w)
		if d.cfg.RenderLeftResult != nil && left > 0 {
			layers = append(layers, Layer[S]{
				Kind:        LayerResultLeft,
				Surface:     d.cfg.RenderLeftResult(),
				Translation: ct.Translation,
				Roll:        ct.Roll,
				Scale:       1,
				Opacity:     left,
			})
		}
		if d.cfg.RenderRightResult != nil && right > 0 {
			layers = append(layers, Layer[S]{
				Kind:        LayerResultRight,
				Surface:     d.cfg.RenderRightResult(),
				Translation: ct.Translation,
				Roll:        ct.Roll,
				Scale:       1,
				Opacity:     right,
			})
		}
	}

	return layers
}
