package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const EmailJSSendURL = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSRelay sends through an EmailJS service/template pair.
type EmailJSRelay struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string // optional access token for server-side calls
	Endpoint   string
	Client     *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

func (r *EmailJSRelay) Send(ctx context.Context, msg Message) error {
	if r.ServiceID == "" || r.TemplateID == "" || r.PublicKey == "" {
		return fmt.Errorf("emailjs: %w", ErrNotConfigured)
	}

	payload, err := json.Marshal(emailJSRequest{
		ServiceID:   r.ServiceID,
		TemplateID:  r.TemplateID,
		UserID:      r.PublicKey,
		AccessToken: r.PrivateKey,
		TemplateParams: map[string]string{
			"name":    msg.Name,
			"email":   msg.Email,
			"message": msg.Message,
		},
	})
	if err != nil {
		return fmt.Errorf("emailjs: %w", err)
	}

	endpoint := r.Endpoint
	if endpoint == "" {
		endpoint = EmailJSSendURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("emailjs: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := r.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("emailjs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("emailjs: status %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	return nil
}
