package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/journey-portfolio/internal/config"
	"github.com/Zachkp/journey-portfolio/internal/contact"
	"github.com/Zachkp/journey-portfolio/internal/particles"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	initPrivacy()
	os.Exit(m.Run())
}

type MockVerifier struct {
	calls  atomic.Int32
	lastIP string
}

func (m *MockVerifier) Verify(ctx context.Context, token, remoteIP string) error {
	m.calls.Add(1)
	m.lastIP = remoteIP
	return nil
}

type MockRelay struct {
	calls atomic.Int32
	err   error
}

func (m *MockRelay) Send(ctx context.Context, msg contact.Message) error {
	m.calls.Add(1)
	return m.err
}

func testConfig() *config.Config {
	return &config.Config{
		Port:      "0",
		Relay:     "emailjs",
		Theme:     particles.Dark,
		Recaptcha: config.Recaptcha{SiteKey: "site-key"},
		Field:     particles.DefaultConfig(),
	}
}

func newTestRouter() (*gin.Engine, *MockVerifier, *MockRelay) {
	v, r := &MockVerifier{}, &MockRelay{}
	return setupRouter(testConfig(), contact.NewService(v, r)), v, r
}

func postContact(r *gin.Engine, form url.Values, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHomePageRenders(t *testing.T) {
	r, _, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Journey Through My Work", "project-1", `data-sitekey="site-key"`, `hx-post="/contact"`} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected home page to contain %q", want)
		}
	}
}

func TestHomePageWiresBackgroundAndScroll(t *testing.T) {
	r, _, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	body := w.Body.String()
	for _, want := range []string{
		"/static/background.wasm",
		`onclick="toggleTheme()"`,
		`id="scroll-progress-fill"`,
		"/api/journey/active?progress=",
		"journey-card",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected home page to contain %q", want)
		}
	}
}

func TestThemeCookieSetsPageTheme(t *testing.T) {
	r, _, _ := newTestRouter()

	tests := []struct {
		cookie string
		want   string
	}{
		{"", `<html lang="en" class="dark">`},
		{"light", `<html lang="en" class="light">`},
		{"dark", `<html lang="en" class="dark">`},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tt.cookie != "" {
			req.AddCookie(&http.Cookie{Name: themeCookie, Value: tt.cookie})
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if !strings.Contains(w.Body.String(), tt.want) {
			t.Errorf("cookie %q: expected %s", tt.cookie, tt.want)
		}
	}
}

func TestContactFormResetsVerificationAfterEachSend(t *testing.T) {
	r, _, _ := newTestRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contact-form", nil))

	body := w.Body.String()
	if !strings.Contains(body, `hx-on::after-request="window.grecaptcha && grecaptcha.reset()"`) {
		t.Errorf("Expected the form to reset the verification widget after every request, got %q", body)
	}
}

func TestContactWithoutTokenIsRejectedLocally(t *testing.T) {
	r, v, relay := newTestRouter()
	w := postContact(r, url.Values{
		"name":    {"Ada"},
		"email":   {"ada@example.com"},
		"message": {"Hello"},
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200 fragment, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "verification required") {
		t.Errorf("Expected verification required status, got %q", w.Body.String())
	}
	if v.calls.Load() != 0 || relay.calls.Load() != 0 {
		t.Errorf("Expected no network collaborators called, got verify=%d relay=%d", v.calls.Load(), relay.calls.Load())
	}
}

func TestContactSuccess(t *testing.T) {
	r, v, relay := newTestRouter()
	w := postContact(r, url.Values{
		"name":                 {"Ada"},
		"email":                {"ada@example.com"},
		"message":              {"Hello"},
		"g-recaptcha-response": {"tok"},
	}, nil)

	if !strings.Contains(w.Body.String(), string(contact.StatusSent)) {
		t.Errorf("Expected success fragment, got %q", w.Body.String())
	}
	if v.calls.Load() != 1 || relay.calls.Load() != 1 {
		t.Errorf("Expected one verify and one relay call, got %d and %d", v.calls.Load(), relay.calls.Load())
	}
}

func TestContactRespectsDoNotTrack(t *testing.T) {
	r, v, _ := newTestRouter()
	postContact(r, url.Values{
		"name":                 {"Ada"},
		"email":                {"ada@example.com"},
		"message":              {"Hello"},
		"g-recaptcha-response": {"tok"},
	}, http.Header{"Dnt": {"1"}})

	if v.lastIP != "" {
		t.Errorf("Expected no client IP forwarded with DNT, got %q", v.lastIP)
	}
}

func TestContactRelayFailure(t *testing.T) {
	v, relay := &MockVerifier{}, &MockRelay{err: context.DeadlineExceeded}
	r := setupRouter(testConfig(), contact.NewService(v, relay))
	w := postContact(r, url.Values{
		"name":                 {"Ada"},
		"email":                {"ada@example.com"},
		"message":              {"Hello"},
		"g-recaptcha-response": {"tok"},
	}, nil)

	if !strings.Contains(w.Body.String(), string(contact.StatusFailed)) {
		t.Errorf("Expected failure fragment, got %q", w.Body.String())
	}
}

func TestJourneyAPI(t *testing.T) {
	r, _, _ := newTestRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/journey", nil))
	var body struct {
		Projects []struct {
			ID   int    `json:"id"`
			Side string `json:"side"`
		} `json:"projects"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Projects) == 0 {
		t.Fatal("Expected projects in timeline")
	}

	tests := []struct {
		query string
		code  int
	}{
		{"progress=50", http.StatusOK},
		{"progress=5", http.StatusNotFound},
		{"progress=abc", http.StatusBadRequest},
		{"progress=NaN", http.StatusBadRequest},
		{"progress=-1", http.StatusBadRequest},
		{"progress=100.5", http.StatusBadRequest},
		{"progress=Inf", http.StatusBadRequest},
		{"progress=100", http.StatusOK},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/journey/active?"+tt.query, nil))
		if w.Code != tt.code {
			t.Errorf("%s: expected %d, got %d", tt.query, tt.code, w.Code)
		}
	}
}

func TestBackgroundAPI(t *testing.T) {
	r, _, _ := newTestRouter()

	for _, theme := range []particles.Theme{particles.Dark, particles.Light} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/background?theme="+theme.String(), nil))

		var body struct {
			Theme   string            `json:"theme"`
			Field   particles.Config  `json:"field"`
			Palette map[string]string `json:"palette"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Theme != theme.String() {
			t.Errorf("Expected theme %s, got %s", theme, body.Theme)
		}
		if body.Field.Count != particles.DefaultCount {
			t.Errorf("Expected %d particles, got %d", particles.DefaultCount, body.Field.Count)
		}
		if want := hexColor(particles.PaletteFor(theme).Particle(1)); body.Palette["particle"] != want {
			t.Errorf("Expected particle colour %s, got %s", want, body.Palette["particle"])
		}
	}
}

func TestBackgroundAPIFollowsThemeCookie(t *testing.T) {
	r, _, _ := newTestRouter()
	req := httptest.NewRequest(http.MethodGet, config.BackgroundPath, nil)
	req.AddCookie(&http.Cookie{Name: themeCookie, Value: "light"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var bg config.Background
	if err := json.Unmarshal(w.Body.Bytes(), &bg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if bg.Theme != particles.Light.String() {
		t.Errorf("Expected light theme from cookie, got %s", bg.Theme)
	}
	if bg.Field != testConfig().Field {
		t.Errorf("Expected the server's field config, got %+v", bg.Field)
	}
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	a, b := hashIP("10.0.0.1"), hashIP("10.0.0.1")
	if a != b {
		t.Error("Expected stable hash within a process")
	}
	if len(a) != 16 || strings.Contains(a, "10.0.0.1") {
		t.Errorf("Unexpected hash %q", a)
	}
}
