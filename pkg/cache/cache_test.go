package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

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

	_, hit, _ = c.Get(ctx, "key")
	if hit {
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
		t.Fatalf("NewFileCache: %v", err)
	}

	tests := []struct {
		name string
		key  string
		data string
	}{
		{"json object", "http:github::user:octocat", `{"followers":10}`},
		{"empty", "empty", ``},
		{"binary-ish", "bin", "\x00\x01\x02"},
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

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	if err := c.Set(ctx, "key", []byte("value"), time.Minute); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "key"); !ok {
		t.Fatal("fresh entry should hit")
	}

	now = now.Add(2 * time.Minute)
	if _, ok, err := c.Get(ctx, "key"); ok || err != nil {
		t.Errorf("Get() = %v, %v; want miss after expiry", ok, err)
	}
	if _, err := os.Stat(c.path("key")); !os.IsNotExist(err) {
		t.Error("expired entry should be removed from disk")
	}
}

func TestFileCache_NoExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }
	_ = c.Set(ctx, "key", []byte("value"), 0)

	now = now.AddDate(10, 0, 0)
	if _, ok, _ := c.Get(ctx, "key"); !ok {
		t.Error("entry with zero TTL should never expire")
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	path := c.path("key")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := c.Get(ctx, "key"); ok || err != nil {
		t.Errorf("Get() = %v, %v; want silent miss", ok, err)
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
		t.Fatalf("Delete() failed: %v", err)
	}
	if err := c.Delete(ctx, "a"); err != nil {
		t.Errorf("deleting a missing key should not fail: %v", err)
	}

	n, err := c.Clear()
	if err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Clear() removed %d entries, want 2", n)
	}
	if _, ok, _ := c.Get(ctx, "b"); ok {
		t.Error("entry should be gone after Clear")
	}
	if _, err := os.Stat(c.Dir()); err != nil {
		t.Errorf("root directory should survive Clear: %v", err)
	}
}

func TestFilePathLayout(t *testing.T) {
	c, _ := NewFileCache(t.TempDir())
	p1 := c.path("test")
	if p1 != c.path("test") {
		t.Error("path should be deterministic")
	}
	if p1 == c.path("other") {
		t.Error("different keys should produce different paths")
	}
	rel, _ := filepath.Rel(c.Dir(), p1)
	if parts := strings.Split(rel, string(filepath.Separator)); len(parts) != 2 || len(parts[0]) != 2 {
		t.Errorf("unexpected layout: %s", rel)
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

func TestTokenScope(t *testing.T) {
	if got := TokenScope(""); got != "anon:" {
		t.Errorf("TokenScope(\"\") = %q, want anon:", got)
	}
	s1 := TokenScope("ghp_one")
	if strings.Contains(s1, "ghp_one") {
		t.Error("scope must not embed the token")
	}
	if s1 == TokenScope("ghp_two") {
		t.Error("different tokens should produce different scopes")
	}
}

func TestKeyers(t *testing.T) {
	k := NewDefaultKeyer()
	if got := k.HTTPKey("github", "user:octocat"); got != "http:github:user:octocat" {
		t.Errorf("HTTPKey unexpected: %s", got)
	}

	scoped := NewScopedKeyer(k, "token:abc:")
	if got := scoped.HTTPKey("github", "user:octocat"); got != "token:abc:http:github:user:octocat" {
		t.Errorf("ScopedKeyer HTTPKey unexpected: %s", got)
	}

	nilInner := NewScopedKeyer(nil, "p:")
	if got := nilInner.HTTPKey("ns", "k"); got != "p:http:ns:k" {
		t.Errorf("Unexpected key with nil inner: %s", got)
	}
}

func TestNewRedisCache_InvalidURL(t *testing.T) {
	if _, err := NewRedisCache(context.Background(), "not-a-redis-url", "ghstats:"); err == nil {
		t.Error("NewRedisCache should reject an invalid URL")
	}
}
