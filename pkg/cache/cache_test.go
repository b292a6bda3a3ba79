package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

var errBoom = errors.New("boom")

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache_GetSet(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error: %v", err)
	}

	tests := []struct {
		name string
		key  string
		data string
	}{
		{"all languages", "tvdb:en:", `[{"id":7}]`},
		{"single language", "tvdb:en:/7", `{"id":7}`},
		{"empty payload", "tvdb:en:/0", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := c.Set(ctx, tt.key, []byte(tt.data), time.Hour); err != nil {
				t.Fatalf("Set() failed: %v", err)
			}
			got, ok, err := c.Get(ctx, tt.key)
			if err != nil || !ok {
				t.Fatalf("Get() = %v, %v; want hit", ok, err)
			}
			if string(got) != tt.data {
				t.Errorf("Get() = %q, want %q", got, tt.data)
			}
		})
	}
}

func TestFileCache_Miss(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	data, ok, err := c.Get(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok || data != nil {
		t.Error("Get() returned a hit for missing key")
	}
}

func TestFileCache_Expiration(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "key", []byte("value"), 10*time.Millisecond); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); !ok {
		t.Fatal("Get() missed a fresh entry")
	}

	time.Sleep(20 * time.Millisecond)

	if _, ok, err := c.Get(ctx, "key"); ok || err != nil {
		t.Errorf("Get() = %v, %v; want miss after expiry", ok, err)
	}
	if _, err := os.Stat(c.path("key")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	p := c.path("bad")
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(p, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := c.Get(ctx, "bad"); ok || err != nil {
		t.Errorf("Get() = %v, %v; corrupt entry should be a miss", ok, err)
	}
}

func TestFileCache_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	for _, k := range []string{"a", "b", "c"} {
		if err := c.Set(ctx, k, []byte(k), 0); err != nil {
			t.Fatal(err)
		}
	}

	if err := c.Delete(ctx, "a"); err != nil {
		t.Fatalf("Delete() error: %v", err)
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Errorf("Delete() of missing key should not fail: %v", err)
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() error: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear() removed %d entries, want 2", n)
	}
	if _, ok, _ := c.Get(ctx, "b"); ok {
		t.Error("entry survived Clear()")
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Errorf("Clear() should keep the cache dir: %v", err)
	}
}

func TestFileCache_PathStability(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	if c.path("test") != c.path("test") {
		t.Error("path should be deterministic")
	}
	if c.path("test") == c.path("other") {
		t.Error("different keys should produce different paths")
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(errBoom)
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, errBoom) {
		t.Error("wrapped error should unwrap to the cause")
	}
	if err.Error() != errBoom.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}
	if IsRetryable(errBoom) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestRetry(t *testing.T) {
	ctx := context.Background()

	calls := 0
	err := Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		return errBoom
	})
	if err != errBoom || calls != 1 {
		t.Errorf("non-retryable: err=%v calls=%d; want errBoom, 1", err, calls)
	}

	calls = 0
	err = Retry(ctx, 3, time.Millisecond, func() error {
		calls++
		if calls < 3 {
			return Retryable(errBoom)
		}
		return nil
	})
	if err != nil || calls != 3 {
		t.Errorf("retryable: err=%v calls=%d; want nil, 3", err, calls)
	}

	calls = 0
	err = Retry(ctx, 2, time.Millisecond, func() error {
		calls++
		return Retryable(errBoom)
	})
	if !errors.Is(err, errBoom) || calls != 2 {
		t.Errorf("exhausted: err=%v calls=%d; want errBoom, 2", err, calls)
	}
}

func TestRetryContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Retry(ctx, 3, time.Second, func() error {
		return Retryable(errBoom)
	})
	if err != context.Canceled {
		t.Errorf("Should return context error: %v", err)
	}
}

func TestRedisCache_DefaultPrefix(t *testing.T) {
	c := newRedisCache(redis.NewClient(&redis.Options{Addr: "localhost:0"}), "")
	defer c.Close()
	if c.prefix != "tvdb:" {
		t.Errorf("prefix = %q, want %q", c.prefix, "tvdb:")
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("TVDB_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("TVDB_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()

	c, err := NewRedisCache(ctx, RedisConfig{Addr: addr, Prefix: "tvdb-test:"})
	if err != nil {
		t.Fatalf("NewRedisCache() error: %v", err)
	}
	defer c.Close()

	if _, ok, err := c.Get(ctx, "missing"); ok || err != nil {
		t.Errorf("Get(missing) = %v, %v; want miss", ok, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error: %v", err)
	}
	got, ok, err := c.Get(ctx, "k")
	if err != nil || !ok || string(got) != "v" {
		t.Errorf("Get(k) = %q, %v, %v; want v, true, nil", got, ok, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete() error: %v", err)
	}
}
