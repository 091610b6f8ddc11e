package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/NVIDIA/nictagadm/pkg/defaults"
	"github.com/NVIDIA/nictagadm/pkg/server"
)

func TestRoutes(t *testing.T) {
	r := NewHandler().Routes()

	for _, path := range []string{"/v1/nictags", "/v1/nictags/{name}", "/v1/etherstubs", "/v1/diagnostics"} {
		if _, exists := r[path]; !exists {
			t.Errorf("expected %s route to exist", path)
		}
	}
}

func TestNewHandler_Defaults(t *testing.T) {
	h := NewHandler()
	if h.ConfigPath != defaults.ConfigPath {
		t.Errorf("ConfigPath = %q, want %q", h.ConfigPath, defaults.ConfigPath)
	}
	if h.MaxLineLength != defaults.MaxLineLength {
		t.Errorf("MaxLineLength = %d, want %d", h.MaxLineLength, defaults.MaxLineLength)
	}
}

func TestNicTagsEndpointMethodNotAllowed(t *testing.T) {
	srv := server.New(server.WithHandler(NewHandler().Routes())).Handler()

	req := httptest.NewRequest(http.MethodPost, "/v1/nictags", nil)
	w := httptest.NewRecorder()

	srv.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status %d, got %d", http.StatusMethodNotAllowed, w.Code)
	}

	contentType := w.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	cfg := server.DefaultConfig()
	cfg.Address = "127.0.0.1"
	cfg.Port = 0

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Serve(ctx, "test", cfg, &Handler{ConfigPath: t.TempDir() + "/config"})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Serve returned error: %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Serve did not return after cancel")
	}
}
