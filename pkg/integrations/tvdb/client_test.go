package tvdb

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/tvdb/pkg/cache"
	"github.com/matzehuels/tvdb/pkg/integrations"
	"github.com/matzehuels/tvdb/pkg/languages"
)

func TestNewClientDefaults(t *testing.T) {
	c := NewClient(cache.NewNullCache(), Options{})
	if c.Client == nil {
		t.Fatal("expected client to be initialized")
	}
	if c.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %q, want %q", c.baseURL, DefaultBaseURL)
	}
	if c.language != DefaultLanguage {
		t.Errorf("language = %q, want %q", c.language, DefaultLanguage)
	}
}

func TestClient_FetchAll(t *testing.T) {
	var gotAuth, gotLang, gotReqID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/languages" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		gotAuth = r.Header.Get("Authorization")
		gotLang = r.Header.Get("Accept-Language")
		gotReqID = r.Header.Get("X-Request-ID")
		w.Write([]byte(`{"data":[{"id":7,"abbreviation":"en","englishName":"English"},{"id":27,"abbreviation":"zh","englishName":"Chinese"}]}`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, cache.NewNullCache())

	var got []languages.Record
	if err := c.Fetch(context.Background(), languages.PathAll, &got); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[1].EnglishName() != "Chinese" {
		t.Errorf("EnglishName() = %q, want Chinese", got[1].EnglishName())
	}
	if gotAuth != "Bearer secret" {
		t.Errorf("Authorization = %q, want %q", gotAuth, "Bearer secret")
	}
	if gotLang != "en" {
		t.Errorf("Accept-Language = %q, want en", gotLang)
	}
	if _, err := uuid.Parse(gotReqID); err != nil {
		t.Errorf("X-Request-ID %q is not a UUID: %v", gotReqID, err)
	}
}

func TestClient_FetchOne(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/languages/7":
			w.Write([]byte(`{"data":{"id":7,"englishName":"English","name":"English"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	c := testClient(t, server.URL, cache.NewNullCache())

	var got languages.Record
	if err := c.Fetch(context.Background(), languages.Path(7), &got); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if id, _ := got.ID(); id != 7 {
		t.Errorf("ID() = %d, want 7", id)
	}

	err := c.Fetch(context.Background(), languages.Path(99), &got)
	if !errors.Is(err, integrations.ErrNotFound) {
		t.Errorf("Fetch(/99) error = %v, want ErrNotFound", err)
	}
}

func TestClient_FetchErrors(t *testing.T) {
	tests := []struct {
		name string
		code int
		body string
		want error
	}{
		{"unauthorized", http.StatusUnauthorized, `{"Error":"Not authorized"}`, integrations.ErrUnauthorized},
		{"no data", http.StatusOK, `{"links":{}}`, ErrNoData},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			c := testClient(t, server.URL, cache.NewNullCache())

			var got languages.Record
			if err := c.Fetch(context.Background(), languages.Path(1), &got); !errors.Is(err, tt.want) {
				t.Errorf("Fetch() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestClient_FetchMalformed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":`))
	}))
	defer server.Close()

	c := testClient(t, server.URL, cache.NewNullCache())

	var got []languages.Record
	if err := c.Fetch(context.Background(), languages.PathAll, &got); err == nil {
		t.Error("expected error for truncated body")
	}
}

func TestClient_ResponseCache(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"data":{"id":7,"englishName":"English"}}`))
	}))
	defer server.Close()

	backend, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	// Two separate clients share the backend, as two CLI runs would.
	for range 2 {
		c := testClient(t, server.URL, backend)
		var got languages.Record
		if err := c.Fetch(context.Background(), languages.Path(7), &got); err != nil {
			t.Fatalf("Fetch() error: %v", err)
		}
		if got.EnglishName() != "English" {
			t.Errorf("EnglishName() = %q", got.EnglishName())
		}
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}

	refreshing := NewClient(backend, Options{BaseURL: server.URL, Refresh: true})
	var got languages.Record
	if err := refreshing.Fetch(context.Background(), languages.Path(7), &got); err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("server hits = %d, want 2 after refresh", hits.Load())
	}
}

func TestClient_WithCatalog(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"data":[{"id":7,"englishName":"English"},{"id":9,"englishName":"Chinese"}]}`))
	}))
	defer server.Close()

	catalog := languages.New(testClient(t, server.URL, cache.NewNullCache()))
	ctx := context.Background()

	if _, err := catalog.All(ctx); err != nil {
		t.Fatalf("All() error: %v", err)
	}
	zh, err := catalog.Language(ctx, 9)
	if err != nil {
		t.Fatalf("Language(9) error: %v", err)
	}
	if zh.EnglishName() != "Chinese" {
		t.Errorf("EnglishName() = %q", zh.EnglishName())
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}
}

func testClient(t *testing.T, serverURL string, backend cache.Cache) *Client {
	t.Helper()
	return NewClient(backend, Options{
		BaseURL:  serverURL + "/",
		Token:    "secret",
		CacheTTL: time.Hour,
	})
}
