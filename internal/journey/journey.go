// Package journey holds the project timeline shown along the scrolling path.
package journey

import (
	"errors"
	"fmt"
	"slices"
)

// Side of the path a project card hangs from.
type Side string

const (
	Left  Side = "left"
	Right Side = "right"
)

type Project struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Image        string   `json:"image"`
	Technologies []string `json:"technologies"`
	GitHub       string   `json:"github"`
	Demo         string   `json:"demo,omitempty"`
	Position     float64  `json:"position"` // percent from the top of the path
	Side         Side     `json:"side"`
}

type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Timeline is the ordered list of projects on the path.
type Timeline []Project

var ErrInvalidTimeline = errors.New("journey: invalid timeline")

// Validate checks ids are unique, positions sit in [0, 100] and strictly
// increase, and every side is left or right.
func (t Timeline) Validate() error {
	seen := make(map[int]bool, len(t))
	prev := -1.0
	for i, p := range t {
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidTimeline, p.ID)
		}
		seen[p.ID] = true

		if p.Position < 0 || p.Position > 100 {
			return fmt.Errorf("%w: project %d position %.1f outside 0..100", ErrInvalidTimeline, p.ID, p.Position)
		}
		if i > 0 && p.Position <= prev {
			return fmt.Errorf("%w: project %d position %.1f not after %.1f", ErrInvalidTimeline, p.ID, p.Position, prev)
		}
		prev = p.Position

		if p.Side != Left && p.Side != Right {
			return fmt.Errorf("%w: project %d side %q", ErrInvalidTimeline, p.ID, p.Side)
		}
	}
	return nil
}

// Sorted returns a copy ordered by position.
func (t Timeline) Sorted() Timeline {
	out := slices.Clone(t)
	slices.SortStableFunc(out, func(a, b Project) int {
		switch {
		case a.Position < b.Position:
			return -1
		case a.Position > b.Position:
			return 1
		}
		return 0
	})
	return out
}

// Active returns the project the scroll dot has most recently passed, given
// scroll progress through the path in percent.
func (t Timeline) Active(progress float64) (Project, bool) {
	var active Project
	found := false
	for _, p := range t.Sorted() {
		if p.Position > progress {
			break
		}
		active, found = p, true
	}
	return active, found
}

// Default is the timeline rendered on the home page.
func Default() Timeline {
	return Timeline{
		{
			ID:           1,
			Title:        "Terminal Mail",
			Description:  "A terminal-based email client built in Go with fuzzyfinder capabilities using the Charmbracelet TUI framework and go-imap.",
			Image:        "/images/project-mail.png",
			Technologies: []string{"Go", "Bubble Tea", "go-imap"},
			GitHub:       "https://github.com/Zachkp",
			Position:     20,
			Side:         Right,
		},
		{
			ID:           2,
			Title:        "Terminal Music",
			Description:  "A terminal music streaming application with a TUI interface, leveraging yt-dlp and mpv for YouTube Music playback from the command line.",
			Image:        "/images/project-music.png",
			Technologies: []string{"Go", "yt-dlp", "mpv"},
			GitHub:       "https://github.com/Zachkp",
			Position:     35,
			Side:         Left,
		},
		{
			ID:           3,
			Title:        "Game Recommender",
			Description:  "A web application that uses TF-IDF vectorization and cosine similarity to recommend games, with interactive visualizations and filtering by reviews and ratings.",
			Image:        "/images/project-games.png",
			Technologies: []string{"Python", "scikit-learn", "Flask"},
			GitHub:       "https://github.com/Zachkp",
			Position:     50,
			Side:         Right,
		},
		{
			ID:           4,
			Title:        "Particle Field",
			Description:  "The animated background of this site: a rotating 3D particle field projected onto a 2D canvas with proximity lines, running in ebiten and the terminal.",
			Image:        "/images/project-field.png",
			Technologies: []string{"Go", "ebiten", "gonum"},
			GitHub:       "https://github.com/Zachkp",
			Position:     65,
			Side:         Left,
		},
		{
			ID:           5,
			Title:        "This Portfolio",
			Description:  "A responsive portfolio website built with Go, Gin and HTMX, styled with Tailwind CSS and Alpine.js for client-side interactivity.",
			Image:        "/images/project-portfolio.png",
			Technologies: []string{"Go", "Gin", "HTMX"},
			GitHub:       "https://github.com/Zachkp",
			Position:     80,
			Side:         Right,
		},
	}
}

// Skills shown under the hero.
func Skills() []Skill {
	return []Skill{
		{Name: "Go", Category: "backend"},
		{Name: "Gin/HTMX", Category: "frontend"},
		{Name: "SQL", Category: "backend"},
		{Name: "UI/UX Design", Category: "design"},
		{Name: "Machine Learning", Category: "ai"},
		{Name: "CSS/Tailwind", Category: "frontend"},
	}
}
