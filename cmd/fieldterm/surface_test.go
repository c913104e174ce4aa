package main

import (
	"image/color"
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/journey-portfolio/internal/particles"
	"github.com/Zachkp/journey-portfolio/internal/renderer"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func TestSurfaceSizeInVirtualPixels(t *testing.T) {
	s := newTermSurface(newTestScreen(t))
	w, h := s.Size()
	if w != 80*cellW || h != 24*cellH {
		t.Errorf("Expected %dx%d, got %dx%d", 80*cellW, 24*cellH, w, h)
	}
}

func TestSmallCircleMarksOneCell(t *testing.T) {
	screen := newTestScreen(t)
	s := newTermSurface(screen)
	s.Clear(color.Black)
	s.FillCircle(10*cellW+1, 5*cellH+1, 2, color.White)

	if r, _, _, _ := screen.GetContent(10, 5); r != '•' {
		t.Errorf("Expected particle glyph at 10,5, got %q", r)
	}
	if r, _, _, _ := screen.GetContent(11, 5); r != ' ' {
		t.Errorf("Expected neighbour cell untouched, got %q", r)
	}
}

func TestOffscreenDrawingIsClipped(t *testing.T) {
	s := newTermSurface(newTestScreen(t))
	s.Clear(color.Black)
	s.FillCircle(-50, -50, 1, color.White)
	s.FillCircle(1e6, 1e6, 300, color.White)
	s.Line(-100, -100, 1e5, 1e5, color.White)
}

func TestLineKeepsParticles(t *testing.T) {
	screen := newTestScreen(t)
	s := newTermSurface(screen)
	s.Clear(color.Black)
	s.FillCircle(0.5*cellW, 0.5*cellH, 2, color.White)
	s.Line(0.5*cellW, 0.5*cellH, 10.5*cellW, 0.5*cellH, color.White)

	if r, _, _, _ := screen.GetContent(0, 0); r != '•' {
		t.Errorf("Expected particle to survive the edge, got %q", r)
	}
	for col := 1; col <= 10; col++ {
		if r, _, _, _ := screen.GetContent(col, 0); r != '·' {
			t.Errorf("Expected edge glyph at %d,0, got %q", col, r)
		}
	}
}

func TestBlendUsesBackground(t *testing.T) {
	s := newTermSurface(newTestScreen(t))
	s.Clear(color.NRGBA{R: 0, G: 0, B: 0, A: 255})

	got := s.blend(color.NRGBA{R: 200, G: 100, B: 50, A: 128})
	r, g, b := got.RGB()
	if r < 98 || r > 102 || g < 48 || g > 52 || b < 23 || b > 27 {
		t.Errorf("Expected roughly half intensity, got %d,%d,%d", r, g, b)
	}
}

func TestResizeNotifiesListeners(t *testing.T) {
	screen := newTestScreen(t)
	s := newTermSurface(screen)

	var gotW, gotH int
	remove := s.OnResize(func(w, h int) { gotW, gotH = w, h })
	screen.SetSize(40, 10)
	s.handleResize()
	if gotW != 40*cellW || gotH != 10*cellH {
		t.Errorf("Expected listener to see %dx%d, got %dx%d", 40*cellW, 10*cellH, gotW, gotH)
	}

	remove()
	gotW = 0
	s.handleResize()
	if gotW != 0 {
		t.Error("Expected removed listener not to be called")
	}
}

func TestLoopDrawsIntoTerminal(t *testing.T) {
	screen := newTestScreen(t)
	s := newTermSurface(screen)
	loop := renderer.New(particles.DefaultConfig(), renderer.StaticTheme(particles.Dark), rand.New(rand.NewSource(3)))
	sched := &renderer.ManualScheduler{}

	if err := loop.Start(func() (renderer.Surface, error) { return s, nil }, sched); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	sched.Step()
	loop.Stop()

	marked := 0
	for row := 0; row < 24; row++ {
		for col := 0; col < 80; col++ {
			if r, _, _, _ := screen.GetContent(col, row); r != ' ' && r != 0 {
				marked++
			}
		}
	}
	if marked == 0 {
		t.Error("Expected particles on screen after one frame")
	}
}
