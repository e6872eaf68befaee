package gesture

import (
	"testing"

	"github.com/jsoendermann/cardstack/motion"
)

const w = 400.0

func newTestRecognizer(cfg Config) (*Recognizer, *motion.Model) {
	if cfg.ReferenceWidth == 0 {
		cfg.ReferenceWidth = w
	}
	m := motion.NewModel()
	return NewRecognizer(cfg, m), m
}

func TestClaimDecision(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   Phase
	}{
		{"Inside dead zone", 5, 3, Undecided},
		{"Exactly at dead zone", 10, 0, Undecided},
		{"Horizontal beyond dead zone", 15, 0, Claimed},
		{"Diagonal horizontal-dominant", 12, 8, Claimed},
		{"Diagonal equal axes claims", 11, 11, Claimed},
		{"Vertical beyond dead zone", 0, 30, Ignored},
		{"Diagonal vertical-dominant", 8, 12, Ignored},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRecognizer(Config{})
			r.Begin(false)
			if got := r.Move(tt.dx, tt.dy); got != tt.want {
				t.Errorf("Expected phase %v, got %v", tt.want, got)
			}
		})
	}
}

func TestClaimIsSticky(t *testing.T) {
	r, _ := newTestRecognizer(Config{})
	r.Begin(false)

	r.Move(20, 0)
	if r.Phase() != Claimed {
		t.Fatalf("Expected claim after horizontal move, got %v", r.Phase())
	}

	// A later vertical-dominant sample must not drop the claim.
	if got := r.Move(5, 40); got != Claimed {
		t.Errorf("Expected claim to stick, got %v", got)
	}
}

func TestIgnoreIsSticky(t *testing.T) {
	r, m := newTestRecognizer(Config{})
	r.Begin(false)

	r.Move(0, 30)
	if got := r.Move(50, 0); got != Ignored {
		t.Errorf("Expected rejected gesture to stay ignored, got %v", got)
	}
	if !m.Position().IsZero() {
		t.Errorf("Expected ignored gesture to leave the model untouched, got %+v", m.Position())
	}
}

func TestOnClaimFiresOnce(t *testing.T) {
	r, _ := newTestRecognizer(Config{})
	claims := 0
	r.OnClaim = func() { claims++ }
	r.Begin(false)

	r.Move(15, 0)
	r.Move(30, 0)
	r.Move(45, 2)
	if claims != 1 {
		t.Errorf("Expected OnClaim to fire exactly once, got %d", claims)
	}
}

func TestMoveRouting(t *testing.T) {
	t.Run("Swipe writes position", func(t *testing.T) {
		r, m := newTestRecognizer(Config{})
		r.Begin(false)
		r.Move(40, -6)

		if got := m.Position(); got != (motion.Point{X: 40, Y: -6}) {
			t.Errorf("Expected position {40 -6}, got %+v", got)
		}
		if m.Drive() != 0 {
			t.Errorf("Expected drive untouched, got %v", m.Drive())
		}
	})

	t.Run("Flip writes drive", func(t *testing.T) {
		r, m := newTestRecognizer(Config{})
		r.Begin(true)
		r.Move(-35, 4)

		if m.Drive() != -35 {
			t.Errorf("Expected drive -35, got %v", m.Drive())
		}
		if !m.Position().IsZero() {
			t.Errorf("Expected position untouched, got %+v", m.Position())
		}
	})
}

func TestReleaseClassification(t *testing.T) {
	threshold := defaultThresholdFraction * w // 60

	tests := []struct {
		name string
		cfg  Config
		flip bool
		dx   float64
		want Outcome
	}{
		{"Swipe right past threshold", Config{}, false, threshold + 1, CommitRight},
		{"Swipe left past threshold", Config{}, false, -threshold - 1, CommitLeft},
		{"Swipe at threshold reverts", Config{}, false, threshold, Revert},
		{"Swipe below threshold", Config{}, false, threshold / 2, Revert},
		{"Swipe suppressed by flag", Config{NonSwipeawayable: true}, false, 3 * threshold, Revert},
		{"Flip right past threshold", Config{}, true, threshold + 1, CommitRight},
		{"Flip left past threshold", Config{}, true, -threshold - 1, CommitLeft},
		{"Flip below threshold", Config{}, true, -threshold / 2, Revert},
		{"Flip suppressed by flag", Config{NonFlippable: true}, true, 3 * threshold, Revert},
		{"Custom swipe threshold", Config{SwipeThreshold: 20}, false, 25, CommitRight},
		{"Custom flip threshold", Config{FlipThreshold: 200}, true, 100, Revert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := newTestRecognizer(tt.cfg)
			r.Begin(tt.flip)
			r.Move(tt.dx, 0) // may or may not claim depending on magnitude
			r.Move(tt.dx, 0)
			if got := r.Release(tt.dx, 0); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestReleaseWithoutClaimReverts(t *testing.T) {
	r, _ := newTestRecognizer(Config{})
	r.Begin(false)
	r.Move(3, 1) // inside dead zone
	if got := r.Release(300, 0); got != Revert {
		t.Errorf("Expected unclaimed release to revert, got %v", got)
	}
}

func TestCancelIgnoresRestOfGesture(t *testing.T) {
	r, m := newTestRecognizer(Config{})
	r.Begin(false)
	r.Move(40, 0)
	r.Cancel()

	r.Move(200, 0)
	if got := m.Position(); got != (motion.Point{X: 40, Y: 0}) {
		t.Errorf("Expected no writes after cancel, got %+v", got)
	}
	if got := r.Release(200, 0); got != Revert {
		t.Errorf("Expected cancelled release to revert, got %v", got)
	}
}

func TestRecognizerValidation(t *testing.T) {
	t.Run("Nil model", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("Expected panic on nil model")
			}
		}()
		NewRecognizer(Config{ReferenceWidth: w}, nil)
	})

	t.Run("Zero width", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("Expected panic on zero reference width")
			}
		}()
		NewRecognizer(Config{}, motion.NewModel())
	})
}
