package cache

import (
	"context"
	"errors"
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

	// Get always returns miss
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

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Errorf("Get(missing) = hit %v, err %v", hit, err)
	}

	if err := c.Set(ctx, "layout:1", []byte("pages"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "layout:1")
	if err != nil || !hit || string(data) != "pages" {
		t.Errorf("Get() = %q, %v, %v; want pages", data, hit, err)
	}

	if err := c.Delete(ctx, "layout:1"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "layout:1"); hit {
		t.Error("Get after Delete should miss")
	}
	if err := c.Delete(ctx, "layout:1"); err != nil {
		t.Errorf("Delete of missing key error: %v", err)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())

	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	if err := c.Set(ctx, "forever", []byte("y"), 0); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	st, err := c.Stats()
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if st.Entries != 2 || st.Expired != 1 || st.Bytes == 0 {
		t.Errorf("Stats() = %+v, want 2 entries, 1 expired", st)
	}

	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}
	if _, hit, _ := c.Get(ctx, "forever"); !hit {
		t.Error("entry without ttl should hit")
	}
}

func TestFileCacheCorruptEntry(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	_ = c.Set(ctx, "k", []byte("v"), 0)

	path := c.path("k")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("Get(corrupt) = hit %v, err %v; want clean miss", hit, err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("corrupt entry should be removed")
	}
}

func TestFileCacheClear(t *testing.T) {
	ctx := context.Background()
	c, _ := NewFileCache(t.TempDir())
	for _, k := range []string{"a", "b", "c"} {
		_ = c.Set(ctx, k, []byte(k), 0)
	}

	n, err := c.Clear()
	if err != nil || n != 3 {
		t.Errorf("Clear() = %d, %v; want 3", n, err)
	}
	st, _ := c.Stats()
	if st.Entries != 0 {
		t.Errorf("Stats() after Clear = %+v", st)
	}
}

func TestDefaultDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg")
	dir, err := DefaultDir()
	if err != nil || dir != filepath.Join("/tmp/xdg", "stackbox") {
		t.Errorf("DefaultDir() = %q, %v", dir, err)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// SHA-256 produces 64 hex chars
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	lk1 := k.LayoutKey("doc123", LayoutKeyOpts{Width: 595, Height: 842})
	lk2 := k.LayoutKey("doc123", LayoutKeyOpts{Width: 612, Height: 792})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(lk1, "layout:") {
		t.Errorf("LayoutKey unexpected: %s", lk1)
	}
	if lk1 != k.LayoutKey("doc123", LayoutKeyOpts{Width: 595, Height: 842}) {
		t.Error("LayoutKey should be deterministic")
	}

	ak1 := k.ArtifactKey("layout123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("layout123", ArtifactKeyOpts{Format: "png", Scale: 2})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
	if !strings.HasPrefix(ak1, "artifact:") {
		t.Errorf("ArtifactKey unexpected: %s", ak1)
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "staging:")

	got := scoped.LayoutKey("doc", LayoutKeyOpts{})
	if want := "staging:" + inner.LayoutKey("doc", LayoutKeyOpts{}); got != want {
		t.Errorf("ScopedKeyer LayoutKey = %s, want %s", got, want)
	}

	art := scoped.ArtifactKey("l", ArtifactKeyOpts{Format: "svg"})
	if !strings.HasPrefix(art, "staging:artifact:") {
		t.Errorf("ScopedKeyer ArtifactKey should be prefixed: %s", art)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	key := scoped.LayoutKey("doc", LayoutKeyOpts{})
	if !strings.HasPrefix(key, "prefix:layout:") {
		t.Errorf("Unexpected key with nil inner: %s", key)
	}
}

func TestRetryableError(t *testing.T) {
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	err := Retryable(ErrBackend)
	if err == nil {
		t.Fatal("Retryable should return wrapped error")
	}
	if !IsRetryable(err) {
		t.Error("IsRetryable should return true for wrapped error")
	}
	if !errors.Is(err, ErrBackend) {
		t.Error("Retryable should keep the wrapped error in the chain")
	}
	if err.Error() != ErrBackend.Error() {
		t.Errorf("Error message should be preserved: %s", err.Error())
	}

	if IsRetryable(ErrBackend) {
		t.Error("IsRetryable should return false for unwrapped error")
	}
}

func TestBackoff(t *testing.T) {
	ctx := context.Background()
	b := Backoff{Attempts: 3, Delay: time.Millisecond, Max: 2 * time.Millisecond}
	plain := errors.New("bad request")

	tests := []struct {
		name      string
		failures  int
		err       error
		wantCalls int
		wantErr   error
	}{
		{"success", 0, nil, 1, nil},
		{"non-retryable stops", 5, plain, 1, plain},
		{"retry then succeed", 1, Retryable(ErrBackend), 2, nil},
		{"gives up", 5, Retryable(ErrBackend), 3, ErrBackend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			err := b.Do(ctx, func() error {
				calls++
				if calls <= tt.failures {
					return tt.err
				}
				return nil
			})
			if !errors.Is(err, tt.wantErr) || (tt.wantErr == nil && err != nil) {
				t.Errorf("Do() = %v, want %v", err, tt.wantErr)
			}
			if calls != tt.wantCalls {
				t.Errorf("Do() made %d calls, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestBackoffContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := DefaultBackoff.Do(ctx, func() error {
		return Retryable(ErrBackend)
	})
	if err != context.Canceled {
		t.Errorf("Do() = %v, want context.Canceled", err)
	}
}

func TestBackoffZeroAttempts(t *testing.T) {
	calls := 0
	_ = Backoff{}.Do(context.Background(), func() error {
		calls++
		return Retryable(ErrBackend)
	})
	if calls != 1 {
		t.Errorf("Backoff{}.Do() made %d calls, want 1", calls)
	}
}

func TestRedisCache(t *testing.T) {
	addr := os.Getenv("STACKBOX_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STACKBOX_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	c, err := NewRedisCache(ctx, addr, WithRedisPrefix("stackbox-test:"))
	if err != nil {
		t.Fatalf("NewRedisCache error: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Errorf("Get(missing) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "k")
	if err != nil || !hit || string(data) != "v" {
		t.Errorf("Get() = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	// Port 1 is reserved and refuses connections.
	_, err := NewRedisCache(ctx, "127.0.0.1:1")
	if !errors.Is(err, ErrBackend) {
		t.Errorf("NewRedisCache(unreachable) error = %v, want ErrBackend", err)
	}
}
