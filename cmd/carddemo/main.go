// Command carddemo is an interactive terminal demo of the cardstack widget.
// Drag cards with the mouse: release past the threshold to discard them
// left or right, or drag a card that has a back face to flip it over.
// Keys: s = programmatic skip, q / Esc = quit.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/jsoendermann/cardstack/audio"
	"github.com/jsoendermann/cardstack/deck"
	"github.com/jsoendermann/cardstack/gesture"
	"github.com/jsoendermann/cardstack/motion"
)

const frameInterval = 16 * time.Millisecond

// Terminal cells are roughly twice as tall as wide; vertical drag deltas
// are scaled up so the dominant-axis rule behaves like on a square grid.
const cellAspect = 2.0

// surface is the demo's renderable: a titled text card with a base color.
type surface struct {
	title string
	body  []string
	color tcell.Color
}

type card struct {
	id    string
	front surface
	back  *surface
}

var cards = []card{
	{
		id:    "gopher",
		front: surface{"GOPHER", []string{"Small, fast,", "compiles to one", "binary."}, tcell.NewRGBColor(80, 180, 240)},
		back:  &surface{"GOPHER FACTS", []string{"Mascot since 2009.", "Drawn by Renee", "French."}, tcell.NewRGBColor(40, 120, 180)},
	},
	{
		id:    "ferris",
		front: surface{"FERRIS", []string{"Borrow checker", "included."}, tcell.NewRGBColor(240, 130, 60)},
	},
	{
		id:    "duke",
		front: surface{"DUKE", []string{"Write once,", "debug everywhere."}, tcell.NewRGBColor(200, 70, 70)},
		back:  &surface{"DUKE FACTS", []string{"Older than some", "of your deps."}, tcell.NewRGBColor(140, 50, 50)},
	},
	{
		id:    "tux",
		front: surface{"TUX", []string{"Runs on", "everything."}, tcell.NewRGBColor(90, 90, 100)},
	},
}

type demo struct {
	screen tcell.Screen
	deck   *deck.Deck[surface]
	sound  *audio.Feedback

	width, height int
	index         int // current card in the rotation

	// In-flight drag bookkeeping.
	dragging       bool
	claimed        bool
	originX        int
	originY        int
	lastDX, lastDY float64

	status string
}

func newDemo() (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	d := &demo{
		screen: screen,
		sound:  audio.NewFeedback(),
	}
	d.width, d.height = screen.Size()

	if err := d.sound.Init(); err != nil {
		// Non-fatal, demo runs without sound.
		log.Printf("audio init failed: %v", err)
	}

	d.deck = deck.New(d.configFor(d.index))
	return d, nil
}

// configFor builds the deck configuration for the card at index i.
func (d *demo) configFor(i int) deck.Config[surface] {
	c := cards[i%len(cards)]
	next := cards[(i+1)%len(cards)]

	cfg := deck.Config[surface]{
		CardID:         c.id,
		ReferenceWidth: float64(d.width),
		RenderFront: func(v *motion.View) surface {
			return c.front
		},
		RenderNextFront: func() surface { return next.front },
		RenderNextOverlay: func() surface {
			return surface{color: tcell.NewRGBColor(10, 10, 14)}
		},
		RenderLeftResult:  func() surface { return surface{title: " KEEP "} },
		RenderRightResult: func() surface { return surface{title: " DROP "} },
		OnCompletedSwipe:  d.completedSwipe,
		CardElevation:     2,
		NextCardElevation: 1,
	}
	if c.back != nil {
		back := *c.back
		cfg.RenderBack = func() surface { return back }
	}
	return cfg
}

func (d *demo) completedSwipe(dir deck.Direction) {
	d.sound.Swipe()
	d.status = fmt.Sprintf("swiped %s: %s", dir, cards[d.index%len(cards)].id)
	d.advance()
}

// advance swaps in the next card identity.
func (d *demo) advance() {
	d.index++
	d.deck.Update(d.configFor(d.index))
}

func (d *demo) run() {
	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				close(quit)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-quit:
			return
		case ev := <-events:
			if !d.handleEvent(ev) {
				return
			}
		case now := <-ticker.C:
			d.deck.Step(now.Sub(last))
			last = now
			d.draw()
		}
	}
}

func (d *demo) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch {
		case ev.Key() == tcell.KeyEscape, ev.Key() == tcell.KeyCtrlC:
			return false
		case ev.Rune() == 'q':
			return false
		case ev.Rune() == 's':
			// Programmatic skip: identity changes without a swipe, the
			// deck re-centers whatever the gesture left behind.
			d.status = "skipped " + cards[d.index%len(cards)].id
			d.advance()
		}
	case *tcell.EventResize:
		d.width, d.height = d.screen.Size()
		d.deck.Update(d.configFor(d.index))
		d.screen.Sync()
	case *tcell.EventMouse:
		d.handleMouse(ev)
	}
	return true
}

func (d *demo) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !d.dragging:
		d.dragging = true
		d.claimed = false
		d.originX, d.originY = x, y
		d.lastDX, d.lastDY = 0, 0
		d.deck.PointerDown()
	case pressed && d.dragging:
		d.lastDX = float64(x - d.originX)
		d.lastDY = float64(y-d.originY) * cellAspect
		d.claimed = d.deck.PointerMove(d.lastDX, d.lastDY) == gesture.Claimed
	case !pressed && d.dragging:
		d.dragging = false
		d.deck.PointerRelease(d.lastDX, d.lastDY)
		if !d.claimed {
			return
		}
		if d.releaseReverted() {
			d.sound.Revert()
		} else if d.deck.IsFlipping() {
			d.sound.Flip()
		}
	}
}

// releaseReverted mirrors the deck's threshold rule so the demo can pick a
// cue at release time; commit outcomes announce themselves via callbacks.
func (d *demo) releaseReverted() bool {
	threshold := 0.15 * float64(d.width)
	return math.Abs(d.lastDX) <= threshold
}

func (d *demo) draw() {
	d.screen.Clear()

	cardW := d.width / 3
	cardH := d.height / 2
	baseX := (d.width - cardW) / 2
	baseY := (d.height - cardH) / 2

	for _, layer := range d.deck.Layers() {
		switch layer.Kind {
		case deck.LayerNextCard:
			w := int(float64(cardW) * layer.Scale)
			h := int(float64(cardH) * layer.Scale)
			d.drawCard((d.width-w)/2, (d.height-h)/2, w, h, layer.Surface, layer.Elevation)
		case deck.LayerNextOverlay:
			// Veil the next card: stronger opacity, darker veil.
			d.veil(baseX, baseY, cardW, cardH, layer.Opacity)
		case deck.LayerCardFront, deck.LayerCardBack:
			x := baseX + int(layer.Translation.X)
			y := baseY + int(layer.Translation.Y/cellAspect)
			// Fake the y-rotation by narrowing the card toward edge-on.
			w := int(float64(cardW) * math.Abs(math.Cos(layer.RotateY*math.Pi/180)))
			if w < 2 {
				w = 2
			}
			d.drawCard(x+(cardW-w)/2, y, w, cardH, layer.Surface, layer.Elevation)
		case deck.LayerResultLeft:
			x := baseX + int(layer.Translation.X)
			y := baseY + int(layer.Translation.Y/cellAspect)
			d.drawBadge(x+2, y+1, layer.Surface.title, tcell.NewRGBColor(60, 200, 60), layer.Opacity)
		case deck.LayerResultRight:
			x := baseX + int(layer.Translation.X)
			y := baseY + int(layer.Translation.Y/cellAspect)
			d.drawBadge(x+cardW-len(layer.Surface.title)-2, y+1, layer.Surface.title, tcell.NewRGBColor(220, 60, 60), layer.Opacity)
		}
	}

	d.drawStatusBar()
	d.screen.Show()
}

func (d *demo) drawCard(x, y, w, h int, s surface, elevation float64) {
	if w < 2 || h < 2 {
		return
	}

	style := tcell.StyleDefault.Foreground(s.color)

	if elevation > 0 {
		shadow := tcell.StyleDefault.Foreground(tcell.NewRGBColor(30, 30, 35))
		off := int(elevation)
		for cy := y + 1; cy < y+h+1; cy++ {
			for cx := x + off; cx < x+w+off; cx++ {
				d.screen.SetContent(cx, cy, '░', nil, shadow)
			}
		}
	}

	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			ch := ' '
			switch {
			case cy == y && cx == x:
				ch = '┌'
			case cy == y && cx == x+w-1:
				ch = '┐'
			case cy == y+h-1 && cx == x:
				ch = '└'
			case cy == y+h-1 && cx == x+w-1:
				ch = '┘'
			case cy == y || cy == y+h-1:
				ch = '─'
			case cx == x || cx == x+w-1:
				ch = '│'
			}
			d.screen.SetContent(cx, cy, ch, nil, style)
		}
	}

	textStyle := tcell.StyleDefault.Foreground(tcell.NewRGBColor(230, 230, 230))
	d.drawText(x+(w-len(s.title))/2, y+1, s.title, textStyle.Bold(true))
	for i, line := range s.body {
		if y+3+i >= y+h-1 {
			break
		}
		d.drawText(x+2, y+3+i, line, textStyle)
	}
}

func (d *demo) veil(x, y, w, h int, opacity float64) {
	if opacity <= 0.4 {
		return
	}
	style := tcell.StyleDefault.Foreground(fade(tcell.NewRGBColor(200, 200, 210), 1-opacity))
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			d.screen.SetContent(cx, cy, '▒', nil, style)
		}
	}
}

func (d *demo) drawBadge(x, y int, text string, color tcell.Color, opacity float64) {
	style := tcell.StyleDefault.Bold(true).Foreground(fade(color, opacity))
	d.drawText(x, y, text, style)
}

func (d *demo) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (d *demo) drawStatusBar() {
	view := d.deck.View()
	pos := view.Position()
	line := fmt.Sprintf(" %s | mode=%s flip=%v | pos=(%.0f,%.0f) drive=%.0f | drag, s=skip, q=quit  %s",
		d.deck.CardID(), d.deck.Mode(), d.deck.IsFlipping(), pos.X, pos.Y, view.Drive(), d.status)
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 160, 170))
	d.drawText(0, d.height-1, line, style)
}

// fade scales a color toward black by opacity in [0,1].
func fade(c tcell.Color, opacity float64) tcell.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(float64(r)*opacity), int32(float64(g)*opacity), int32(float64(b)*opacity))
}

func main() {
	d, err := newDemo()
	if err != nil {
		fmt.Fprintf(os.Stderr, "carddemo: %v\n", err)
		os.Exit(1)
	}
	defer d.screen.Fini()

	d.run()
}
