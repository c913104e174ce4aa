//go:build !wasm

package main

import (
	"github.com/Zachkp/journey-portfolio/internal/config"
	"github.com/Zachkp/journey-portfolio/internal/particles"
	"github.com/Zachkp/journey-portfolio/internal/renderer"
)

// loadSettings reads the same .env and environment as the site.
func loadSettings() (particles.Config, themeControl) {
	cfg := config.Load()
	return cfg.Field, renderer.NewThemeSwitch(cfg.Theme)
}
