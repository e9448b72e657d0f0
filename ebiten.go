package stagefit

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// GeoM returns the design-to-display transform for drawing with Ebitengine.
func (l Layout) GeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(l.ScaleX, l.ScaleY)
	return g
}

// Scene is the part of an ebiten.Game a Game delegates to. Draw receives a
// screen sized to the drawing buffer, in design units.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

// Game adapts a Scene to ebiten.Game. The outside size Ebitengine reports
// from Layout is the live viewport; whenever it changes the active policy is
// re-applied and the resulting drawing buffer becomes the screen size.
type Game struct {
	scene    Scene
	delegate *Delegate
	surface  *MemorySurface
	outside  Size
}

// NewGame creates a Game for scene with the given design size and policy.
// Until Ebitengine reports an outside size the viewport is taken to be the
// design size.
func NewGame(scene Scene, design Size, src PolicySource, opts ...Option) (*Game, error) {
	g := &Game{
		scene:   scene,
		surface: NewMemorySurface(design),
		outside: design,
	}
	g.delegate = New(g.surface, g.surface.Container(), ViewportFunc(g.viewport), opts...)
	if err := g.delegate.SetDesignSize(design.Width, design.Height, src); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) viewport() Size { return g.outside }

// Delegate returns the delegate driving the game's layout.
func (g *Game) Delegate() *Delegate { return g.delegate }

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.scene.Update()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// LayoutF implements ebiten.LayoutFer.
func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (screenWidth, screenHeight float64) {
	if outsideWidth != g.outside.Width || outsideHeight != g.outside.Height {
		g.outside = Size{Width: outsideWidth, Height: outsideHeight}
		// A rejected viewport (minimized window) keeps the previous layout.
		_ = g.delegate.Reapply()
	}
	b := g.surface.Buffer
	return b.Width, b.Height
}

// Layout implements ebiten.Game. The buffer size is rounded up to whole
// pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	w, h := g.LayoutF(float64(outsideWidth), float64(outsideHeight))
	return int(math.Ceil(w)), int(math.Ceil(h))
}

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title string
	// Width and Height set the initial window size. Zero uses the display
	// size of the game's current layout.
	Width, Height int
	// Resizable lets the user resize the window; each resize re-applies the
	// policy.
	Resizable bool
}

// Run opens a window and runs g until it exits.
func Run(g *Game, cfg RunConfig) error {
	w, h := cfg.windowSize(g.delegate.Layout())
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	ebiten.SetWindowSize(w, h)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(g)
}

func (cfg RunConfig) windowSize(l Layout) (w, h int) {
	w, h = cfg.Width, cfg.Height
	if w <= 0 {
		w = int(math.Ceil(l.DisplaySize.Width))
	}
	if h <= 0 {
		h = int(math.Ceil(l.DisplaySize.Height))
	}
	return w, h
}
