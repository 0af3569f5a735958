package umbf

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTargetFetchToCacheCopiesFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "source.bin")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	target := &Target{URL: "source.bin"}
	cachePath := filepath.Join(dir, "cache.bin")
	if err := target.FetchToCache(dir, cachePath, false); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	got, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	if string(got) != "payload" {
		t.Fatalf("cache contents = %q, want %q", got, "payload")
	}
}

func TestTargetFetchToCacheSkipsExisting(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	src := filepath.Join(dir, "source.bin")
	if err := os.WriteFile(src, []byte("new"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	cachePath := filepath.Join(dir, "cache.bin")
	if err := os.WriteFile(cachePath, []byte("old"), 0o644); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	target := &Target{URL: "source.bin"}
	if err := target.FetchToCache(dir, cachePath, true); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	got, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("read cache: %v", err)
	}
	if string(got) != "old" {
		t.Fatalf("cache contents = %q, want unchanged %q", got, "old")
	}
}
