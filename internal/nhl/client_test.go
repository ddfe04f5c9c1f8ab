package nhl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server, *FileCache) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cache, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	client := NewClient(ClientConfig{
		BaseURL:   srv.URL,
		UserAgent: "stats-engine-test",
		Cache:     cache,
		Logger:    zap.NewNop().Sugar(),
	})
	return client, srv, cache
}

func TestGetBoxScoreCachesFinalGames(t *testing.T) {
	var requests int32
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		if r.URL.Path != "/2025090001/boxscore" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if r.Header.Get("User-Agent") != "stats-engine-test" {
			t.Errorf("user agent = %s", r.Header.Get("User-Agent"))
		}
		w.Write([]byte(`{"id":2025090001,"gameDate":"2026-02-12","gameState":"FINAL","homeTeam":{"abbrev":"FIN","score":2},"awayTeam":{"abbrev":"CAN","score":5}}`))
	})

	ctx := context.Background()
	box, err := client.GetBoxScore(ctx, 2025090001)
	if err != nil {
		t.Fatal(err)
	}
	if box == nil || box.GameState != "FINAL" || box.AwayTeam.Score != 5 {
		t.Fatalf("box = %+v", box)
	}

	// Final games come from the cache on the second read.
	if _, err := client.GetBoxScore(ctx, 2025090001); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&requests); n != 1 {
		t.Errorf("upstream requests = %d, want 1", n)
	}
}

func TestGetBoxScoreRefetchesLiveGames(t *testing.T) {
	var requests int32
	client, _, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(`{"id":1,"gameDate":"2026-02-12","gameState":"LIVE","homeTeam":{"abbrev":"FIN"},"awayTeam":{"abbrev":"CAN"}}`))
	})

	ctx := context.Background()
	for i := 0; i < 2; i++ {
		if _, err := client.GetBoxScore(ctx, 1); err != nil {
			t.Fatal(err)
		}
	}
	if n := atomic.LoadInt32(&requests); n != 2 {
		t.Errorf("upstream requests = %d, want 2 for a live game", n)
	}
}

func TestGetBoxScoreUnavailableGame(t *testing.T) {
	var requests int32
	client, _, cache := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.WriteHeader(http.StatusNotFound)
	})

	ctx := context.Background()
	box, err := client.GetBoxScore(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if box != nil {
		t.Errorf("box = %+v, want nil for unavailable game", box)
	}

	// The empty placeholder is cached but never treated as final.
	raw, err := cache.Get(ctx, 42)
	if err != nil {
		t.Fatalf("placeholder not cached: %v", err)
	}
	if string(raw) != "{}" {
		t.Errorf("cached = %q, want empty document", raw)
	}

	if _, err := client.GetBoxScore(ctx, 42); err != nil {
		t.Fatal(err)
	}
	if n := atomic.LoadInt32(&requests); n != 2 {
		t.Errorf("upstream requests = %d, want a re-probe per call", n)
	}
}

func TestGetBoxScoreTransportError(t *testing.T) {
	client, srv, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	if _, err := client.GetBoxScore(context.Background(), 1); err == nil {
		t.Error("err = nil, want transport error")
	}
}

func TestGetBoxScoreCorruptCache(t *testing.T) {
	var requests int32
	client, _, cache := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&requests, 1)
		w.Write([]byte(`{"id":1,"gameDate":"2026-02-12","gameState":"FINAL","homeTeam":{"abbrev":"FIN"},"awayTeam":{"abbrev":"CAN"}}`))
	})

	ctx := context.Background()
	if err := cache.Put(ctx, 1, []byte("{corrupt")); err != nil {
		t.Fatal(err)
	}

	box, err := client.GetBoxScore(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if box == nil || box.GameState != "FINAL" {
		t.Fatalf("box = %+v", box)
	}
	if n := atomic.LoadInt32(&requests); n != 1 {
		t.Errorf("upstream requests = %d, want refetch on corrupt cache", n)
	}
}
