// Package config reads site settings from the environment, after loading any
// .env file found in the working directory.
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Zachkp/journey-portfolio/internal/particles"
)

type SMTP struct {
	Host string
	Port string
	User string
	Pass string
	To   string
}

type EmailJS struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

type Recaptcha struct {
	SiteKey string
	Secret  string
}

type Config struct {
	Port      string
	GinMode   string
	Relay     string // "emailjs" or "smtp"
	Theme     particles.Theme
	SMTP      SMTP
	EmailJS   EmailJS
	Recaptcha Recaptcha
	Field     particles.Config
}

// Load reads the given .env files (default ".env") and then the environment.
// Missing files are fine; real variables always win over file values.
func Load(files ...string) *Config {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: reading env file: %v", err)
	}

	field := particles.DefaultConfig()
	field.Count = envInt("FIELD_COUNT", field.Count)
	field.Rotation = envFloat("FIELD_ROTATION", field.Rotation)
	field.MaxDistance = envFloat("FIELD_MAX_DISTANCE", field.MaxDistance)

	cfg := &Config{
		Port:    env("PORT", "8080"),
		GinMode: env("GIN_MODE", ""),
		Relay:   strings.ToLower(env("RELAY", "emailjs")),
		Theme:   particles.ParseTheme(env("THEME", "dark")),
		SMTP: SMTP{
			Host: env("SMTP_HOST", "smtp.gmail.com"),
			Port: env("SMTP_PORT", "587"),
			User: os.Getenv("SMTP_USER"),
			Pass: os.Getenv("SMTP_PASS"),
			To:   os.Getenv("TO_EMAIL"),
		},
		EmailJS: EmailJS{
			ServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
			TemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
			PublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
			PrivateKey: os.Getenv("EMAILJS_PRIVATE_KEY"),
		},
		Recaptcha: Recaptcha{
			SiteKey: os.Getenv("RECAPTCHA_SITE_KEY"),
			Secret:  os.Getenv("RECAPTCHA_SECRET"),
		},
		Field: field.WithDefaults(),
	}

	if cfg.Recaptcha.Secret == "" {
		log.Println("WARNING: RECAPTCHA_SECRET not set, contact form submissions will be refused.")
	}
	return cfg
}

func env(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: %s=%q is not an integer, using %d", key, v, def)
		return def
	}
	return n
}

func envFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("config: %s=%q is not a number, using %g", key, v, def)
		return def
	}
	return f
}
