package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type fakeConfig struct {
	ints      map[string]int64
	bools     map[string]bool
	strings   map[string]string
	durations map[string]time.Duration
	closed    bool
}

func newFakeConfig() *fakeConfig {
	return &fakeConfig{
		ints:    map[string]int64{"upload.max_bytes": 1 << 20},
		bools:   map[string]bool{"modules.employee.enabled": true},
		strings: map[string]string{"server.address.http": "127.0.0.1:0"},
		durations: map[string]time.Duration{
			"server.read_header_timeout": time.Second,
			"server.shutdown_timeout":    time.Second,
		},
	}
}

func (c *fakeConfig) GetInt(key string) int64 { return c.ints[key] }
func (c *fakeConfig) GetBool(key string) bool { return c.bools[key] }
func (c *fakeConfig) GetString(key string) string { return c.strings[key] }
func (c *fakeConfig) GetDuration(key string) time.Duration { return c.durations[key] }
func (c *fakeConfig) Close() error {
	c.closed = true
	return nil
}

func TestBuildServesWelcomeWithCORS(t *testing.T) {
	app, err := build(newFakeConfig())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer app.cancel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	app.httpServer.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"message":"Welcome to the Employee Information API"}` {
		t.Fatalf("unexpected body: %s", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("unexpected allow origin: %q", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Fatalf("unexpected allow credentials: %q", got)
	}
}

func TestBuildWithModuleDisabled(t *testing.T) {
	cfg := newFakeConfig()
	cfg.bools["modules.employee.enabled"] = false

	app, err := build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer app.cancel()

	rec := httptest.NewRecorder()
	app.httpServer.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/file", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unexpected status: %d", rec.Code)
	}
}

func TestBuildRejectsInvalidSettings(t *testing.T) {
	cfg := newFakeConfig()
	cfg.strings["server.address.http"] = ""

	if _, err := build(cfg); err == nil || !strings.Contains(err.Error(), "invalid server settings") {
		t.Fatalf("expected settings error, got %v", err)
	}
}

func TestStartStop(t *testing.T) {
	cfg := newFakeConfig()
	app, err := build(cfg)
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	app.Start()

	ctx, cancel := context.WithTimeout(context.Background(), app.ShutdownTimeout())
	defer cancel()
	app.Stop(ctx)

	if !cfg.closed {
		t.Fatalf("expected config to be closed on stop")
	}
}
