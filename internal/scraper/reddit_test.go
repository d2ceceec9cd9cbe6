package scraper

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"brandtracker-api/internal/model"
	pkgLog "brandtracker-api/pkg/log"
)

func testLogger() pkgLog.Logger {
	return pkgLog.Init(pkgLog.ZapConfig{Level: pkgLog.LevelFatal})
}

func redditFixture(t *testing.T, tokenCalls *int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			t.Error("token request missing basic auth")
		}
		*tokenCalls++
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-1",
			"expires_in":   3600,
		})
	})

	mux.HandleFunc("/search", func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("search auth header = %q, want bearer token", got)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"children": []map[string]any{
					{"data": map[string]any{
						"id":           "p1",
						"title":        "Acme device melts",
						"selftext":     "mine overheated",
						"permalink":    "/r/gadgets/p1",
						"author":       "user1",
						"created_utc":  1756000000.0,
						"ups":          42,
						"num_comments": 7,
						"subreddit":    "gadgets",
					}},
				},
			},
		})
	})

	return httptest.NewServer(mux)
}

func TestRedditFetch(t *testing.T) {
	tokenCalls := 0
	srv := redditFixture(t, &tokenCalls)
	defer srv.Close()

	s := newReddit(testLogger(), srv.Client(), "id", "secret")
	s.tokenURL = srv.URL + "/token"
	s.searchURL = srv.URL + "/search"

	got := s.Fetch(context.Background(), model.Brand{Keywords: []string{"acme"}})
	if len(got) != 1 {
		t.Fatalf("got %d candidates, want 1", len(got))
	}

	c := got[0]
	if c.Source != model.SourceReddit || c.Type != model.TypePost {
		t.Errorf("source/type = %s/%s", c.Source, c.Type)
	}
	if c.IdentityKey != "p1" {
		t.Errorf("identity key = %q, want post id", c.IdentityKey)
	}
	if c.URL != "https://reddit.com/r/gadgets/p1" {
		t.Errorf("url = %q", c.URL)
	}
	if c.Reach != 42 || c.Engagement.Likes != 42 || c.Engagement.Comments != 7 {
		t.Errorf("reach/engagement = %d/%+v", c.Reach, c.Engagement)
	}
}

func TestRedditTokenIsCachedUntilExpiry(t *testing.T) {
	tokenCalls := 0
	srv := redditFixture(t, &tokenCalls)
	defer srv.Close()

	s := newReddit(testLogger(), srv.Client(), "id", "secret")
	s.tokenURL = srv.URL + "/token"
	s.searchURL = srv.URL + "/search"

	now := time.Now()
	s.clock = func() time.Time { return now }

	b := model.Brand{Keywords: []string{"acme"}}
	s.Fetch(context.Background(), b)
	s.Fetch(context.Background(), b)
	if tokenCalls != 1 {
		t.Fatalf("token fetched %d times within validity, want 1", tokenCalls)
	}

	// Advance past the 3600s expiry: next fetch must refresh.
	now = now.Add(2 * time.Hour)
	s.Fetch(context.Background(), b)
	if tokenCalls != 2 {
		t.Fatalf("token fetched %d times after expiry, want 2", tokenCalls)
	}
}

func TestRedditSkipsWithoutCredentials(t *testing.T) {
	s := newReddit(testLogger(), http.DefaultClient, "", "")
	if got := s.Fetch(context.Background(), model.Brand{Keywords: []string{"acme"}}); got != nil {
		t.Errorf("Fetch without credentials = %v, want nil", got)
	}
}

func TestRedditAbsorbsServerFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := newReddit(testLogger(), srv.Client(), "id", "secret")
	s.tokenURL = srv.URL + "/token"
	s.searchURL = srv.URL + "/search"

	if got := s.Fetch(context.Background(), model.Brand{Keywords: []string{"acme"}}); got != nil {
		t.Errorf("Fetch against failing server = %v, want nil", got)
	}
}
