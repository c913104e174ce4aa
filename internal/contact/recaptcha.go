package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
)

const RecaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// RecaptchaVerifier checks widget tokens against Google's siteverify endpoint.
type RecaptchaVerifier struct {
	Secret   string
	Endpoint string
	Client   *http.Client
}

func NewRecaptchaVerifier(secret string) *RecaptchaVerifier {
	return &RecaptchaVerifier{Secret: secret, Endpoint: RecaptchaVerifyURL, Client: http.DefaultClient}
}

type siteverifyResponse struct {
	Success    bool     `json:"success"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

func (v *RecaptchaVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrRejected)
	}
	if v.Secret == "" {
		return fmt.Errorf("recaptcha: %w", ErrNotConfigured)
	}

	form := url.Values{
		"secret":   {v.Secret},
		"response": {token},
	}
	if remoteIP != "" {
		form.Set("remoteip", remoteIP)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint(), strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("recaptcha: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client().Do(req)
	if err != nil {
		return fmt.Errorf("recaptcha: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("recaptcha: unexpected status %d", resp.StatusCode)
	}

	var body siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("recaptcha: decode: %w", err)
	}
	if !body.Success {
		if slices.Contains(body.ErrorCodes, "timeout-or-duplicate") {
			return fmt.Errorf("%w: token expired", ErrRejected)
		}
		return fmt.Errorf("%w: %s", ErrRejected, strings.Join(body.ErrorCodes, ","))
	}
	return nil
}

func (v *RecaptchaVerifier) endpoint() string {
	if v.Endpoint == "" {
		return RecaptchaVerifyURL
	}
	return v.Endpoint
}

func (v *RecaptchaVerifier) client() *http.Client {
	if v.Client == nil {
		return http.DefaultClient
	}
	return v.Client
}
