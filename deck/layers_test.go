package deck

import (
	"testing"

	"github.com/jsoendermann/cardstack/motion"
)

// fullConfig wires every render callback with distinct surfaces.
func fullConfig(id string, back bool) Config[string] {
	cfg := Config[string]{
		CardID:            id,
		ReferenceWidth:    w,
		RenderFront:       func(v *motion.View) string { return "front" },
		RenderNextFront:   func() string { return "next" },
		RenderNextOverlay: func() string { return "overlay" },
		RenderLeftResult:  func() string { return "like" },
		RenderRightResult: func() string { return "nope" },
		CardElevation:     6,
		NextCardElevation: 2,
	}
	if back {
		cfg.RenderBack = func() string { return "back" }
	}
	return cfg
}

func kinds(layers []Layer[string]) []LayerKind {
	ks := make([]LayerKind, len(layers))
	for i, l := range layers {
		ks[i] = l.Kind
	}
	return ks
}

func kindsEqual(a, b []LayerKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLayersAtRest(t *testing.T) {
	d := New(fullConfig("A", false))
	layers := d.Layers()

	want := []LayerKind{LayerNextCard, LayerNextOverlay, LayerCardFront}
	if !kindsEqual(kinds(layers), want) {
		t.Fatalf("Expected layers %v, got %v", want, kinds(layers))
	}

	next := layers[0]
	if next.Scale != 0.95 {
		t.Errorf("Expected next card at rest scale 0.95, got %v", next.Scale)
	}
	if next.Elevation != 2 {
		t.Errorf("Expected next card elevation 2, got %v", next.Elevation)
	}
	if layers[1].Opacity != 1 {
		t.Errorf("Expected overlay fully opaque at rest, got %v", layers[1].Opacity)
	}

	front := layers[2]
	if front.Surface != "front" {
		t.Errorf("Expected front surface, got %q", front.Surface)
	}
	if !front.Translation.IsZero() || front.Roll != 0 || front.RotateY != 0 {
		t.Errorf("Expected neutral front transform, got %+v", front)
	}
	if front.Elevation != 6 {
		t.Errorf("Expected configured elevation 6, got %v", front.Elevation)
	}
}

func TestLayersDuringRightDrag(t *testing.T) {
	d := New(fullConfig("A", false))
	d.PointerDown()
	d.PointerMove(w/4, 0)

	layers := d.Layers()
	want := []LayerKind{LayerNextCard, LayerNextOverlay, LayerCardFront, LayerResultLeft}
	if !kindsEqual(kinds(layers), want) {
		t.Fatalf("Expected layers %v, got %v", want, kinds(layers))
	}

	badge := layers[3]
	if badge.Opacity != 1 {
		t.Errorf("Expected left badge fully visible at quarter width, got %v", badge.Opacity)
	}
	if badge.Surface != "like" {
		t.Errorf("Expected left result surface, got %q", badge.Surface)
	}
	if badge.Translation != (motion.Point{X: w / 4, Y: 0}) {
		t.Errorf("Expected badge to ride the card, got %+v", badge.Translation)
	}

	front := layers[2]
	if front.Translation != (motion.Point{X: w / 4, Y: 0}) {
		t.Errorf("Expected front translated with drag, got %+v", front.Translation)
	}
	if front.Roll >= 0 {
		t.Errorf("Expected negative roll on rightward drag, got %v", front.Roll)
	}
}

func TestLayersAfterFlipShowBack(t *testing.T) {
	d := New(fullConfig("B", true))
	drag(d, 0.2*w, 0)
	settle(t, d, 64)

	layers := d.Layers()
	want := []LayerKind{LayerNextCard, LayerNextOverlay, LayerCardBack}
	if !kindsEqual(kinds(layers), want) {
		t.Fatalf("Expected back face after flip, got %v", kinds(layers))
	}
	if layers[2].Surface != "back" {
		t.Errorf("Expected back surface, got %q", layers[2].Surface)
	}
	if layers[2].RotateY != 360 {
		t.Errorf("Expected back rotateY 360 at committed extreme, got %v", layers[2].RotateY)
	}
}

func TestBadgesShowOnFlippedBackFace(t *testing.T) {
	d := New(fullConfig("B", true))
	drag(d, 0.2*w, 0) // commit flip
	settle(t, d, 64)

	// Card is now in swipe mode with back showing; drag it right.
	d.PointerDown()
	d.PointerMove(w/4, 0)

	layers := d.Layers()
	want := []LayerKind{LayerNextCard, LayerNextOverlay, LayerCardBack, LayerResultLeft}
	if !kindsEqual(kinds(layers), want) {
		t.Fatalf("Expected badge over the visible back face, got %v", kinds(layers))
	}
	d.PointerRelease(0, 0)
	settle(t, d, 600)
}

func TestLayersElevationSuppressedMidFlip(t *testing.T) {
	d := New(fullConfig("B", true))
	d.PointerDown()
	d.PointerMove(40, 0) // claim: flip phase active

	for _, l := range d.Layers() {
		if l.Elevation != 0 {
			t.Errorf("Expected elevation suppressed mid-flip for %v, got %v", l.Kind, l.Elevation)
		}
	}
	d.PointerRelease(40, 0)
	settle(t, d, 600)
}

func TestLayersOmitAbsentCallbacks(t *testing.T) {
	d := New(testConfig("A"))
	layers := d.Layers()

	want := []LayerKind{LayerCardFront}
	if !kindsEqual(kinds(layers), want) {
		t.Errorf("Expected only the front layer, got %v", kinds(layers))
	}
}
