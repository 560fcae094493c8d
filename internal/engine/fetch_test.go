package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newFetchServer(robots string, pages map[string]string) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(robots))
	})
	for path, body := range pages {
		body := body
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(body, "<html") {
				w.Header().Set("Content-Type", "text/html")
			}
			w.Write([]byte(body))
		})
	}
	return httptest.NewServer(mux)
}

func TestFetch_PlainText(t *testing.T) {
	srv := newFetchServer("User-agent: *\nAllow: /", map[string]string{
		"/po.txt": "PURCHASE ORDER\nRegistration: 2019/123456/07",
	})
	defer srv.Close()

	f := NewFetcher(5*time.Second, "tradecheck-test", 1<<20)
	text, err := f.Fetch(context.Background(), srv.URL+"/po.txt")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(text, "Registration: 2019/123456/07") {
		t.Errorf("Expected document text, got %q", text)
	}
}

func TestFetch_HTMLIsStripped(t *testing.T) {
	srv := newFetchServer("User-agent: *\nAllow: /", map[string]string{
		"/po.html": `<html><head><script>var t = "hidden";</script></head><body><p>Account: 1234567890</p></body></html>`,
	})
	defer srv.Close()

	f := NewFetcher(5*time.Second, "tradecheck-test", 1<<20)
	text, err := f.Fetch(context.Background(), srv.URL+"/po.html")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if !strings.Contains(text, "Account: 1234567890") {
		t.Errorf("Expected visible text, got %q", text)
	}
	if strings.Contains(text, "hidden") {
		t.Errorf("Expected script content stripped, got %q", text)
	}
}

func TestFetch_RespectsRobots(t *testing.T) {
	srv := newFetchServer("User-agent: *\nDisallow: /private/", map[string]string{
		"/private/doc.txt": "secret document",
	})
	defer srv.Close()

	f := NewFetcher(5*time.Second, "tradecheck-test", 1<<20)
	if _, err := f.Fetch(context.Background(), srv.URL+"/private/doc.txt"); err == nil {
		t.Error("Expected a robots.txt denial")
	}
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	srv := newFetchServer("User-agent: *\nAllow: /", nil)
	defer srv.Close()

	f := NewFetcher(5*time.Second, "tradecheck-test", 1<<20)
	if _, err := f.Fetch(context.Background(), srv.URL+"/missing.txt"); err == nil {
		t.Error("Expected an error for a 404 response")
	}
}

func TestFetch_BodyIsCapped(t *testing.T) {
	srv := newFetchServer("User-agent: *\nAllow: /", map[string]string{
		"/big.txt": strings.Repeat("A", 4096),
	})
	defer srv.Close()

	f := NewFetcher(5*time.Second, "tradecheck-test", 1024)
	text, err := f.Fetch(context.Background(), srv.URL+"/big.txt")
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(text) != 1024 {
		t.Errorf("Expected body capped at 1024 bytes, got %d", len(text))
	}
}
