// Package renderer drives the particle field one frame at a time on whatever
// surface and frame scheduler the host provides.
package renderer

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/Zachkp/journey-portfolio/internal/particles"
)

var (
	ErrNoSurface      = errors.New("renderer: drawing surface unavailable")
	ErrAlreadyStarted = errors.New("renderer: loop already started")
)

// State of the loop. There is no paused state.
type State int

const (
	Uninitialized State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "uninitialized"
	}
}

// Stats is a snapshot for debug overlays.
type Stats struct {
	State  State
	Frames uint64
	Edges  int
	Width  int
	Height int
}

// Loop owns the field and the surface while running. Every frame runs under
// mu, and Stop takes the same lock, so nothing draws once Stop returns.
type Loop struct {
	cfg    particles.Config
	theme  ThemeSource
	rng    *rand.Rand
	layers []Layer
	now    func() time.Time

	mu            sync.Mutex
	state         State
	field         *particles.Field
	surface       Surface
	sched         Scheduler
	pending       FrameID
	removeResize  func()
	started       time.Time
	width, height int
	frames        uint64
	edges         int
}

// New builds an unstarted loop. Layers are drawn bottom-up before the particles.
func New(cfg particles.Config, theme ThemeSource, rng *rand.Rand, layers ...Layer) *Loop {
	if theme == nil {
		theme = StaticTheme(particles.Dark)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Loop{
		cfg:    cfg.WithDefaults(),
		theme:  theme,
		rng:    rng,
		layers: layers,
		now:    time.Now,
	}
}

// Start acquires the surface, seeds the field and schedules the first frame.
// When the surface cannot be opened the loop stays uninitialized and never
// draws; callers treat that as a missing decoration, not a failure.
func (l *Loop) Start(open SurfaceOpener, sched Scheduler) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != Uninitialized {
		return ErrAlreadyStarted
	}

	surface, err := open()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNoSurface, err)
	}
	if surface == nil {
		return ErrNoSurface
	}

	l.surface = surface
	l.sched = sched
	l.width, l.height = surface.Size()
	l.field = particles.NewField(l.cfg, l.rng)

	if r, ok := surface.(Resizer); ok {
		l.removeResize = r.OnResize(l.resize)
	}

	l.started = l.now()
	l.state = Running
	l.pending = sched.RequestFrame(l.frame)
	log.Printf("renderer: started %d particles on %dx%d surface", l.field.Len(), l.width, l.height)
	return nil
}

// Stop cancels the pending frame and drops the resize listener. Safe to call
// more than once and before Start.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == Stopped {
		return
	}
	wasRunning := l.state == Running
	l.state = Stopped

	if l.sched != nil {
		l.sched.CancelFrame(l.pending)
	}
	if l.removeResize != nil {
		l.removeResize()
		l.removeResize = nil
	}
	if wasRunning {
		log.Printf("renderer: stopped after %d frames", l.frames)
	}
}

func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Loop) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{State: l.state, Frames: l.frames, Edges: l.edges, Width: l.width, Height: l.height}
}

// Angle is the field's current rotation, 0 before Start.
func (l *Loop) Angle() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.field == nil {
		return 0
	}
	return l.field.Angle()
}

func (l *Loop) resize(width, height int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state != Running {
		return
	}
	l.width, l.height = width, height
}

func (l *Loop) frame() {
	l.mu.Lock()
	defer l.mu.Unlock()

	// A callback can be dispatched just before Stop cancels it.
	if l.state != Running {
		return
	}

	l.draw()
	l.pending = l.sched.RequestFrame(l.frame)
}

func (l *Loop) draw() {
	pal := particles.PaletteFor(l.theme.Theme())
	s := l.surface

	s.Clear(pal.Background())
	elapsed := l.now().Sub(l.started)
	for _, layer := range l.layers {
		layer.Draw(s, pal, elapsed)
	}

	center := r2.Vec{X: float64(l.width) / 2, Y: float64(l.height) / 2}
	projs := l.field.Advance(l.cfg.Rotation, center)

	for i, pr := range projs {
		if !pr.Visible {
			continue
		}
		p := l.field.At(i)
		s.FillCircle(pr.Point.X, pr.Point.Y, p.Radius*pr.Scale, pal.Particle(p.Alpha))
	}

	edges := l.field.Connections(projs)
	for _, e := range edges {
		a, b := projs[e.I].Point, projs[e.J].Point
		s.Line(a.X, a.Y, b.X, b.Y, pal.Edge(e.Opacity))
	}

	if p, ok := s.(Presenter); ok {
		p.Present()
	}

	l.frames++
	l.edges = len(edges)
}
