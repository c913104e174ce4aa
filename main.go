package main

// The page background is cmd/background compiled to WebAssembly.
//go:generate sh -c "GOOS=js GOARCH=wasm go build -o static/background.wasm ./cmd/background"
//go:generate sh -c "cp \"$(go env GOROOT)/lib/wasm/wasm_exec.js\" static/wasm_exec.js"

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/journey-portfolio/internal/config"
	"github.com/Zachkp/journey-portfolio/internal/contact"
	"github.com/Zachkp/journey-portfolio/internal/journey"
	"github.com/Zachkp/journey-portfolio/internal/particles"
)

func main() {
	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	initPrivacy()

	if err := journey.Default().Validate(); err != nil {
		log.Fatal("Project timeline is invalid:", err)
	}

	r := setupRouter(cfg, newContactService(cfg))

	log.Printf("Portfolio listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func setupRouter(cfg *config.Config, svc *contact.Service) *gin.Engine {
	r := gin.Default()
	r.LoadHTMLGlob("templates/*")

	r.Static("/images", "./images")
	r.Static("/static", "./static")

	r.Use(doNotTrackMiddleware())

	// Home page route
	r.GET("/", func(c *gin.Context) {
		c.HTML(http.StatusOK, "index.html", gin.H{
			"aboutMeContent": AboutMe,
			"heroTitle":      HeroTitle,
			"heroTagline":    HeroTagline,
			"contactBlurb":   ContactBlurb,
			"projects":       journey.Default(),
			"skills":         journey.Skills(),
			"theme":          pageTheme(c, cfg).String(),
			"siteKey":        cfg.Recaptcha.SiteKey,
		})
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Journey timeline for the scroll animation
	api.GET("/journey", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"projects": journey.Default()})
	})

	api.GET("/journey/active", func(c *gin.Context) {
		progress, err := strconv.ParseFloat(c.Query("progress"), 64)
		if err != nil || math.IsNaN(progress) || progress < 0 || progress > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "progress must be a number between 0 and 100"})
			return
		}
		p, ok := journey.Default().Active(progress)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "no project reached yet"})
			return
		}
		c.JSON(http.StatusOK, p)
	})

	// Background field settings, so every host animates the same field
	r.GET(config.BackgroundPath, func(c *gin.Context) {
		theme := pageTheme(c, cfg)
		if q := c.Query("theme"); q != "" {
			theme = particles.ParseTheme(q)
		}
		pal := particles.PaletteFor(theme)
		c.JSON(http.StatusOK, config.Background{
			Theme: theme.String(),
			Field: cfg.Field,
			Palette: map[string]string{
				"particle":   hexColor(pal.Particle(1)),
				"edge":       hexColor(pal.Edge(1)),
				"orb":        hexColor(pal.Orb(1)),
				"background": hexColor(pal.Background()),
			},
		})
	})

	setupContactRoutes(r, cfg, svc)
	return r
}

func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// themeCookie is set by the page's theme toggle.
const themeCookie = "theme"

// The visitor's last toggle wins over the configured default
func pageTheme(c *gin.Context, cfg *config.Config) particles.Theme {
	if v, err := c.Cookie(themeCookie); err == nil && v != "" {
		return particles.ParseTheme(v)
	}
	return cfg.Theme
}
