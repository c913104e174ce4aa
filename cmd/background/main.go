// Command background runs the site's particle field in an ebiten window, or
// in the page canvas when built for js/wasm. In the browser it takes the
// field from the site's /api/background and follows the page's theme class.
//
// Keys: T toggles the theme, D toggles the stats overlay, Esc quits.
package main

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Zachkp/journey-portfolio/internal/orbs"
	"github.com/Zachkp/journey-portfolio/internal/particles"
	"github.com/Zachkp/journey-portfolio/internal/renderer"
)

const (
	windowWidth  = 1024
	windowHeight = 768
)

// themeControl is the theme the loop reads each frame. Natively it is a
// ThemeSwitch; in the browser it is the page's own theme.
type themeControl interface {
	renderer.ThemeSource
	Toggle() particles.Theme
}

type game struct {
	loop      *renderer.Loop
	sched     *renderer.ManualScheduler
	canvas    *canvas
	theme     themeControl
	tried     bool
	showStats bool
}

func newGame(field particles.Config, theme themeControl) *game {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &game{
		loop:   renderer.New(field, theme, rng, orbs.NewLayer(orbs.DefaultCount, rng)),
		sched:  &renderer.ManualScheduler{},
		canvas: newCanvas(),
		theme:  theme,
	}
}

func (g *game) open() (renderer.Surface, error) {
	if !g.canvas.ready() {
		return nil, errors.New("canvas has no size yet")
	}
	return g.canvas, nil
}

// Update is called each tick by Ebitengine
func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.loop.Stop()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		log.Printf("background: theme %s", g.theme.Toggle())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.showStats = !g.showStats
	}

	if !g.tried && g.canvas.ready() {
		g.tried = true
		if err := g.loop.Start(g.open, g.sched); err != nil {
			// Decorative only: keep running with a blank screen.
			log.Printf("background: %v", err)
		}
	}

	g.sched.Step()
	return nil
}

// Draw is called each frame by Ebitengine
func (g *game) Draw(screen *ebiten.Image) {
	if g.canvas.ready() {
		screen.DrawImage(g.canvas.img, nil)
	}
	if g.showStats {
		st := g.loop.Stats()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("%s  frames %d  edges %d  %dx%d  tps %.0f",
			st.State, st.Frames, st.Edges, st.Width, st.Height, ebiten.ActualTPS()))
	}
}

// Layout follows the window so the field stays centred
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.canvas.resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func main() {
	field, theme := loadSettings()
	g := newGame(field, theme)

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("Particle Field")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	err := ebiten.RunGame(g)
	g.loop.Stop()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
