package anim

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/jsoendermann/cardstack/motion"
)

// PointTween animates the position signal to a target over a fixed
// duration, tweening both axes together. gween pins the final value to the
// target exactly, so a finished tween needs no snap correction.
type PointTween struct {
	x, y   *gween.Tween
	curX   float64
	curY   float64
	xDone  bool
	yDone  bool
}

// NewPointTween creates a timed position animation from from to to.
func NewPointTween(from, to motion.Point, d time.Duration, fn ease.TweenFunc) *PointTween {
	sec := float32(d.Seconds())
	return &PointTween{
		x:    gween.New(float32(from.X), float32(to.X), sec, fn),
		y:    gween.New(float32(from.Y), float32(to.Y), sec, fn),
		curX: from.X,
		curY: from.Y,
	}
}

// Step implements Animation.
func (t *PointTween) Step(m *motion.Model, dt time.Duration) bool {
	sec := float32(dt.Seconds())
	if !t.xDone {
		v, done := t.x.Update(sec)
		t.curX = float64(v)
		t.xDone = done
	}
	if !t.yDone {
		v, done := t.y.Update(sec)
		t.curY = float64(v)
		t.yDone = done
	}
	m.SetPosition(motion.Point{X: t.curX, Y: t.curY})
	return t.xDone && t.yDone
}

// DriveTween animates the rotation drive signal to a target over a fixed
// duration.
type DriveTween struct {
	tw   *gween.Tween
	done bool
}

// NewDriveTween creates a timed rotation-drive animation.
func NewDriveTween(from, to float64, d time.Duration, fn ease.TweenFunc) *DriveTween {
	return &DriveTween{
		tw: gween.New(float32(from), float32(to), float32(d.Seconds()), fn),
	}
}

// Step implements Animation.
func (t *DriveTween) Step(m *motion.Model, dt time.Duration) bool {
	if t.done {
		return true
	}
	v, done := t.tw.Update(float32(dt.Seconds()))
	m.SetDrive(float64(v))
	t.done = done
	return done
}
