//go:build wasm

package main

import (
	"context"
	"log"
	"syscall/js"
	"time"

	"github.com/Zachkp/journey-portfolio/internal/config"
	"github.com/Zachkp/journey-portfolio/internal/particles"
)

const fetchTimeout = 5 * time.Second

// loadSettings asks the serving site for its field. If that fails the page
// still gets the default field.
func loadSettings() (particles.Config, themeControl) {
	field := particles.DefaultConfig()

	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	origin := js.Global().Get("location").Get("origin").String()
	bg, err := config.FetchBackground(ctx, nil, origin)
	if err != nil {
		log.Printf("background: %v, using default field", err)
	} else {
		field = bg.Field
	}
	return field, pageTheme{}
}

// pageTheme reads the theme class on <html>, so the field follows the page's
// theme toggle without any extra signalling.
type pageTheme struct{}

func (pageTheme) root() js.Value {
	return js.Global().Get("document").Get("documentElement")
}

func (p pageTheme) Theme() particles.Theme {
	if p.root().Get("classList").Call("contains", particles.Light.String()).Bool() {
		return particles.Light
	}
	return particles.Dark
}

// Toggle goes through the page's toggleTheme so the cookie stays in step.
func (p pageTheme) Toggle() particles.Theme {
	if fn := js.Global().Get("toggleTheme"); fn.Type() == js.TypeFunction {
		fn.Invoke()
		return p.Theme()
	}
	next := particles.Light
	if p.Theme() == particles.Light {
		next = particles.Dark
	}
	p.root().Set("className", next.String())
	return next
}
