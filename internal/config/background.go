package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Zachkp/journey-portfolio/internal/particles"
)

// BackgroundPath is where the site publishes its background settings.
const BackgroundPath = "/api/background"

// Background is the field and palette the site animates behind its pages.
// The server writes it and the browser host reads it back.
type Background struct {
	Theme   string            `json:"theme"`
	Field   particles.Config  `json:"field"`
	Palette map[string]string `json:"palette"`
}

// FetchBackground asks the site at baseURL for its background settings.
func FetchBackground(ctx context.Context, client *http.Client, baseURL string) (*Background, error) {
	if client == nil {
		client = http.DefaultClient
	}

	url := strings.TrimRight(baseURL, "/") + BackgroundPath
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("config: fetching background: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("config: fetching background: status %d", resp.StatusCode)
	}

	var bg Background
	if err := json.NewDecoder(resp.Body).Decode(&bg); err != nil {
		return nil, fmt.Errorf("config: decoding background: %w", err)
	}
	bg.Field = bg.Field.WithDefaults()
	return &bg, nil
}
