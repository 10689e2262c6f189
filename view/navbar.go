package view

import (
	"image"
	"time"

	"github.com/fogleman/ease"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/matt-g-everett/ledring/util"
)

// Tab is an entry on the bottom navigation bar.
type Tab int

const (
	TabHome Tab = iota
	TabProfile
)

func (t Tab) String() string {
	switch t {
	case TabProfile:
		return "Profile"
	default:
		return "Home"
	}
}

const navFade = 300 * time.Millisecond

var (
	homeBackground, _    = colorful.Hex("#fff5ee")
	profileBackground, _ = colorful.Hex("#90ee90")
	selectedMarker, _    = colorful.Hex("#4a4458")
)

func tabBackground(t Tab) colorful.Color {
	if t == TabProfile {
		return profileBackground
	}
	return homeBackground
}

// colourTween fades between two colours over a fixed duration.
type colourTween struct {
	from     colorful.Color
	to       colorful.Color
	start    time.Duration
	duration time.Duration
}

func (t colourTween) At(now time.Duration) colorful.Color {
	p := 1.0
	if t.duration > 0 {
		p = util.Clamp01(float64(now-t.start) / float64(t.duration))
	}
	return t.from.BlendRgb(t.to, ease.InOutQuad(p))
}

// NavBar is the bottom navigation bar. Selecting a tab fades the bar to that
// tab's colour; it does not change what is shown above the bar.
type NavBar struct {
	bounds   image.Rectangle
	selected Tab
	tween    colourTween
}

// NewNavBar creates a NavBar occupying bounds with Home selected.
func NewNavBar(bounds image.Rectangle) *NavBar {
	n := new(NavBar)
	n.bounds = bounds
	n.selected = TabHome
	n.tween = colourTween{from: homeBackground, to: homeBackground}
	return n
}

// Selected returns the selected tab.
func (n *NavBar) Selected() Tab {
	return n.selected
}

// Select switches to tab at time now.
func (n *NavBar) Select(tab Tab, now time.Duration) {
	if tab == n.selected {
		return
	}
	n.tween = colourTween{
		from:     n.tween.At(now),
		to:       tabBackground(tab),
		start:    now,
		duration: navFade,
	}
	n.selected = tab
}

// Background returns the bar colour at time now.
func (n *NavBar) Background(now time.Duration) colorful.Color {
	return n.tween.At(now)
}

// HitTest returns the tab under (x, y), if any.
func (n *NavBar) HitTest(x, y int) (Tab, bool) {
	if !(image.Point{X: x, Y: y}).In(n.bounds) {
		return TabHome, false
	}
	if x-n.bounds.Min.X < n.bounds.Dx()/2 {
		return TabHome, true
	}
	return TabProfile, true
}

// Draw paints the bar onto screen.
func (n *NavBar) Draw(screen *ebiten.Image, now time.Duration) {
	b := n.bounds
	vector.DrawFilledRect(screen, float32(b.Min.X), float32(b.Min.Y), float32(b.Dx()), float32(b.Dy()), n.Background(now), false)

	half := b.Dx() / 2
	for _, tab := range []Tab{TabHome, TabProfile} {
		left := b.Min.X + int(tab)*half
		label := tab.String()
		x := left + (half-len(label)*glyphWidth)/2
		y := b.Min.Y + b.Dy()/2 - glyphHeight/2
		if tab == n.selected {
			vector.DrawFilledRect(screen, float32(x-8), float32(y-4), float32(len(label)*glyphWidth+16), float32(glyphHeight+8), selectedMarker, true)
		}
		ebitenutil.DebugPrintAt(screen, label, x, y)
	}
}
