// Command fieldterm previews the particle field in a terminal.
//
// Keys: t toggles the theme, q, Esc or Ctrl-C quits.
package main

import (
	"context"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Zachkp/journey-portfolio/internal/config"
	"github.com/Zachkp/journey-portfolio/internal/orbs"
	"github.com/Zachkp/journey-portfolio/internal/renderer"
)

const fps = 30

func main() {
	cfg := config.Load()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("fieldterm: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("fieldterm: %v", err)
	}
	// The screen owns the terminal from here on.
	log.SetOutput(io.Discard)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = run(ctx, screen, cfg)
	screen.Fini()

	log.SetOutput(os.Stderr)
	if err != nil {
		log.Fatalf("fieldterm: %v", err)
	}
}

func run(ctx context.Context, screen tcell.Screen, cfg *config.Config) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	theme := renderer.NewThemeSwitch(cfg.Theme)
	surface := newTermSurface(screen)

	loop := renderer.New(cfg.Field, theme, rng, orbs.NewLayer(orbs.DefaultCount, rng))
	sched := renderer.NewTickerScheduler(ctx, fps)
	defer sched.Close()

	open := func() (renderer.Surface, error) { return surface, nil }
	if err := loop.Start(open, sched); err != nil {
		return err
	}
	defer loop.Stop()

	go pollEvents(screen, surface, theme, cancel)

	<-ctx.Done()
	return nil
}

// pollEvents returns when the screen is finalised or a quit key arrives.
func pollEvents(screen tcell.Screen, surface *termSurface, theme *renderer.ThemeSwitch, quit func()) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			surface.handleResize()
		case *tcell.EventKey:
			if isQuit(ev) {
				quit()
				return
			}
			if ev.Key() == tcell.KeyRune && (ev.Rune() == 't' || ev.Rune() == 'T') {
				theme.Toggle()
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q')
}
