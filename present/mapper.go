// Package present derives visual parameters from a motion snapshot.
//
// Every function here is pure: identical inputs produce identical outputs,
// so the mapping is unit-testable without any rendering surface. All angular
// outputs are in degrees, all distances in the same layout units as the
// motion model, and interpolation ranges are normalized against the
// reference width of the display area.
package present

import (
	"fmt"
	"math"

	"github.com/jsoendermann/cardstack/motion"
)

// Degrees of roll at the swipe-commit extremes (±1.5 × width).
const rollExtent = 20.0

// Scale of the next card while the current card is at rest.
const nextCardRestScale = 0.95

// Flags carries the non-motion inputs of the mapping.
type Flags struct {
	// Flipping is the mid-flip phase: true from gesture claim until the
	// flip revert or commit animation completes. Forces elevation to the
	// baseline so a mid-air-rotating card does not cast a floating shadow.
	Flipping bool

	// NonFlippable narrows the rotateY range to ±90° so a drag can tease
	// the flip without ever revealing the back face.
	NonFlippable bool
}

// CardTransform is the full visual parameter set of the current card.
type CardTransform struct {
	Translation  motion.Point
	Roll         float64 // z-rotation from horizontal offset, degrees
	FrontRotateY float64 // degrees, clamped to the face's range
	BackRotateY  float64 // front mapping shifted +180°, independently clamped
	FrontVisible bool    // false once the front rotates past 90°
	BackVisible  bool    // false while the back faces away
	Elevation    float64
}

// NextTransform is the visual parameter set of the next-card preview.
type NextTransform struct {
	Scale          float64 // pops toward 1 as the current card moves away
	OverlayOpacity float64 // dim overlay: 1 at rest, fades out toward the edges
	Elevation      float64
}

// CurrentCard maps a motion snapshot to the current card's visuals.
// width is the reference width; elevation the configured resting elevation.
func CurrentCard(s motion.Snapshot, width, elevation float64, f Flags) CardTransform {
	checkWidth(width)

	front := frontRotateY(s.Drive, width, f.NonFlippable)
	back := backRotateY(s.Drive, width, f.NonFlippable)

	elev := elevation
	if f.Flipping {
		elev = 0
	}

	return CardTransform{
		Translation:  s.Position,
		Roll:         Interp(s.Position.X, []float64{-1.5 * width, 0, 1.5 * width}, []float64{rollExtent, 0, -rollExtent}, false),
		FrontRotateY: front,
		BackRotateY:  back,
		FrontVisible: faceVisible(front),
		BackVisible:  faceVisible(back),
		Elevation:    elev,
	}
}

// NextCard maps the current card's motion to the next-card preview visuals.
func NextCard(s motion.Snapshot, width, elevation float64, flipping bool) NextTransform {
	checkWidth(width)

	elev := elevation
	if flipping {
		elev = 0
	}

	return NextTransform{
		Scale: Interp(s.Position.X,
			[]float64{-width, 0, width},
			[]float64{1, nextCardRestScale, 1}, true),
		OverlayOpacity: Interp(s.Position.X,
			[]float64{-width, -width / 2, 0, width / 2, width},
			[]float64{0, 0.8, 1, 0.8, 0}, true),
		Elevation: elev,
	}
}

// ResultOpacities returns the badge overlay opacities for the given
// horizontal offset. The left badge fades in over the first quarter-width of
// a rightward drag, the right badge over a leftward drag.
func ResultOpacities(x, width float64) (left, right float64) {
	checkWidth(width)
	left = Interp(x, []float64{0, width / 4}, []float64{0, 1}, true)
	right = Interp(x, []float64{-width / 4, 0}, []float64{1, 0}, true)
	return left, right
}

func frontRotateY(drive, width float64, nonFlippable bool) float64 {
	if nonFlippable {
		return Interp(drive, []float64{-width, 0, width}, []float64{-90, 0, 90}, true)
	}
	return Interp(drive, []float64{-width, 0, width}, []float64{-180, 0, 180}, true)
}

func backRotateY(drive, width float64, nonFlippable bool) float64 {
	if nonFlippable {
		return Interp(drive, []float64{-width, 0, width}, []float64{90, 180, 270}, true)
	}
	return Interp(drive, []float64{-width, 0, width}, []float64{0, 180, 360}, true)
}

// faceVisible implements the backface-culling contract: a face is visible
// only while it is rotated less than 90° away from the viewer. Exact
// degree arithmetic, no trig, so the edge-on threshold is deterministic.
func faceVisible(deg float64) bool {
	n := math.Mod(deg, 360)
	if n > 180 {
		n -= 360
	} else if n < -180 {
		n += 360
	}
	return math.Abs(n) < 90
}

func checkWidth(width float64) {
	if width <= 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		panic(fmt.Sprintf("present: reference width must be a positive finite number, got %v", width))
	}
}
