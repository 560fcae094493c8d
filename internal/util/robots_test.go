package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestCanFetch(t *testing.T) {
	var robotsHits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/robots.txt", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&robotsHits, 1)
		w.Write([]byte("User-agent: *\nDisallow: /private/\n"))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	checker := NewRobotsChecker("tradecheck-test", 5*time.Second)

	allowed, err := checker.CanFetch(context.Background(), srv.URL+"/docs/po.html")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("Expected /docs to be allowed")
	}

	allowed, err = checker.CanFetch(context.Background(), srv.URL+"/private/doc.html")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if allowed {
		t.Error("Expected /private to be disallowed")
	}

	if hits := atomic.LoadInt32(&robotsHits); hits != 1 {
		t.Errorf("Expected robots.txt fetched once per host, got %d", hits)
	}
}

func TestCanFetch_UnreachableRobotsAllows(t *testing.T) {
	checker := NewRobotsChecker("tradecheck-test", 200*time.Millisecond)

	allowed, err := checker.CanFetch(context.Background(), "http://127.0.0.1:1/doc.html")
	if err != nil {
		t.Fatalf("CanFetch failed: %v", err)
	}
	if !allowed {
		t.Error("Expected fetch allowed when robots.txt is unreachable")
	}
}

func TestCanFetch_BadURL(t *testing.T) {
	checker := NewRobotsChecker("tradecheck-test", time.Second)

	if _, err := checker.CanFetch(context.Background(), "://not-a-url"); err == nil {
		t.Error("Expected an error for an unparseable URL")
	}
}
