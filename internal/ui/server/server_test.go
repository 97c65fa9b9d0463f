package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Its-donkey/ai-directory/logging"
)

func writeSite(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"index.html":     "<html><body>home</body></html>",
		"submit-ai.html": "<html><body>submit</body></html>",
		"site.wasm":      "\x00asm",
		"css/styles.css": "body{}",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func newTestServer(t *testing.T, opts Options) *Server {
	t.Helper()
	if opts.Dir == "" {
		opts.Dir = writeSite(t)
	}
	srv, err := New(opts)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return srv
}

func get(t *testing.T, h http.Handler, path string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestNewRejectsMissingDir(t *testing.T) {
	if _, err := New(Options{Dir: filepath.Join(t.TempDir(), "nope")}); err == nil {
		t.Fatalf("expected error for missing directory")
	}
	file := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := New(Options{Dir: file}); err == nil {
		t.Fatalf("expected error when dir is a file")
	}
}

func TestRootServesIndex(t *testing.T) {
	srv := newTestServer(t, Options{})
	rr := get(t, srv.Handler(), "/", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "home") {
		t.Fatalf("expected index body, got %q", rr.Body.String())
	}
}

func TestServesPagesAndAssets(t *testing.T) {
	srv := newTestServer(t, Options{})
	h := srv.Handler()

	if rr := get(t, h, "/submit-ai.html", nil); rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "submit") {
		t.Fatalf("unexpected submit page response: %d %q", rr.Code, rr.Body.String())
	}
	if rr := get(t, h, "/css/styles.css", nil); rr.Code != http.StatusOK {
		t.Fatalf("expected stylesheet, got %d", rr.Code)
	}
	if rr := get(t, h, "/missing.html", nil); rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestWasmContentType(t *testing.T) {
	srv := newTestServer(t, Options{})
	rr := get(t, srv.Handler(), "/site.wasm", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/wasm" {
		t.Fatalf("expected application/wasm, got %q", got)
	}
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, Options{})
	rr := get(t, srv.Handler(), "/healthz", nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["status"] != "ok" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestFaviconFallsBackToNoContent(t *testing.T) {
	srv := newTestServer(t, Options{})
	if rr := get(t, srv.Handler(), "/favicon.ico", nil); rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rr.Code)
	}
}

func TestCORSOnlyWhenConfigured(t *testing.T) {
	origin := http.Header{"Origin": {"https://example.com"}}

	plain := newTestServer(t, Options{})
	if got := get(t, plain.Handler(), "/", origin).Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header, got %q", got)
	}

	withCORS := newTestServer(t, Options{CORSOrigins: []string{"https://example.com"}})
	if got := get(t, withCORS.Handler(), "/", origin).Header().Get("Access-Control-Allow-Origin"); got != "https://example.com" {
		t.Fatalf("expected allowed origin, got %q", got)
	}
}

func TestRequestsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New("site", logging.DEBUG, &buf)
	srv := newTestServer(t, Options{Logger: logger})

	rr := get(t, srv.Handler(), "/healthz", nil)
	if rr.Header().Get(logging.RequestIDHeader) == "" {
		t.Fatalf("expected request id header")
	}

	var entry logging.Entry
	if err := json.NewDecoder(&buf).Decode(&entry); err != nil {
		t.Fatalf("decode log entry: %v", err)
	}
	if entry.Category != "http" {
		t.Fatalf("expected http category, got %q", entry.Category)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	srv := newTestServer(t, Options{Listen: "127.0.0.1:0"})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}
}
