package view

import (
	"image"
	"image/color"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/matt-g-everett/ledring/stream"
)

const (
	ScreenWidth  = 360
	ScreenHeight = 720

	// ebitenutil's debug font.
	glyphWidth  = 6
	glyphHeight = 16

	padding   = 16
	navHeight = 64
)

var (
	screenBackground = color.RGBA{R: 0xfe, G: 0xf7, B: 0xff, A: 0xff}
	cardBackground   = color.RGBA{R: 0xe7, G: 0xe0, B: 0xec, A: 0xff}
)

// ProfileView is a window host for the driver. It is the driver's Sink: each
// signal is the rotation of the ring around the avatar. Its Update loop is the
// render loop that ticks the FrameClock.
type ProfileView struct {
	config   stream.Config
	clock    *stream.FrameClock
	gradient stream.Gradient
	avatar   *ebiten.Image
	nav      *NavBar

	started  time.Time
	rotation float64
}

// NewProfileView creates a ProfileView. avatar should already be clipped to
// the ring diameter; see LoadAvatar.
func NewProfileView(config stream.Config, gradient stream.Gradient, avatar image.Image) *ProfileView {
	p := new(ProfileView)
	p.config = config
	p.clock = stream.NewFrameClock()
	p.gradient = gradient
	p.avatar = ebiten.NewImageFromImage(avatar)
	p.nav = NewNavBar(image.Rect(0, ScreenHeight-navHeight, ScreenWidth, ScreenHeight))
	p.started = time.Now()
	return p
}

// Clock is the FrameClock the driver should attach to.
func (p *ProfileView) Clock() *stream.FrameClock {
	return p.clock
}

// Render records the ring rotation for the next Draw.
func (p *ProfileView) Render(signal float64) {
	p.rotation = signal
}

func (p *ProfileView) now() time.Duration {
	return time.Since(p.started)
}

// Update advances one frame.
func (p *ProfileView) Update() error {
	now := p.now()
	p.clock.Tick(now)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		p.press(x, y, now)
	}
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		p.press(x, y, now)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (p *ProfileView) press(x, y int, now time.Duration) {
	if tab, ok := p.nav.HitTest(x, y); ok {
		p.nav.Select(tab, now)
	}
}

// ringCentre is where the ring and avatar sit, below the top padding.
func (p *ProfileView) ringCentre() (float64, float64) {
	return ScreenWidth / 2.0, padding + 24 + p.config.Ring.Diameter/2
}

// Draw paints the profile screen.
func (p *ProfileView) Draw(screen *ebiten.Image) {
	screen.Fill(screenBackground)

	cx, cy := p.ringCentre()
	ring := p.config.Ring
	drawRing(screen, cx, cy, ring.Diameter/2, ring.StrokeWidth, p.rotation, p.gradient)

	op := &ebiten.DrawImageOptions{}
	w, h := p.avatar.Bounds().Dx(), p.avatar.Bounds().Dy()
	op.GeoM.Translate(cx-float64(w)/2, cy-float64(h)/2)
	screen.DrawImage(p.avatar, op)

	y := int(cy+ring.Diameter/2+ring.StrokeWidth/2) + 8
	drawCentred(screen, p.config.Profile.Name, y)
	drawCentred(screen, p.config.Profile.Position, y+glyphHeight+8)

	p.drawDescription(screen, y+2*glyphHeight+40)
	p.nav.Draw(screen, p.now())
}

func (p *ProfileView) drawDescription(screen *ebiten.Image, top int) {
	if p.config.Profile.Description == "" {
		return
	}

	lines := wrapText(p.config.Profile.Description, (ScreenWidth-4*padding)/glyphWidth)
	height := len(lines)*glyphHeight + 2*padding
	vector.DrawFilledRect(screen, padding, float32(top), ScreenWidth-2*padding, float32(height), cardBackground, true)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, 2*padding, top+padding+i*glyphHeight)
	}
}

// Layout fixes the logical screen size; ebiten scales it to the window.
func (p *ProfileView) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

func drawCentred(screen *ebiten.Image, s string, y int) {
	ebitenutil.DebugPrintAt(screen, s, (ScreenWidth-len(s)*glyphWidth)/2, y)
}

// wrapText breaks s into lines of at most width columns on word boundaries.
// Words longer than width get a line of their own.
func wrapText(s string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}
