package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestAllowed(t *testing.T) {
	exts := map[string]struct{}{"txt": {}, "png": {}}
	cases := []struct {
		path string
		want bool
	}{
		{"/in/notes.txt", true},
		{"/in/NOTES.TXT", true},
		{"/in/photo.png", true},
		{"/in/archive.zip", false},
		{"/in/noext", false},
	}
	for _, tc := range cases {
		if got := allowed(tc.path, exts); got != tc.want {
			t.Errorf("allowed(%q) = %v, want %v", tc.path, got, tc.want)
		}
	}
}

func TestStartRejectsEmptyDir(t *testing.T) {
	if _, _, err := Start(context.Background(), Config{}, nil); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestStartRejectsMissingDir(t *testing.T) {
	cfg := Config{Dir: filepath.Join(t.TempDir(), "nope")}
	if _, _, err := Start(context.Background(), cfg, nil); err == nil {
		t.Fatal("expected error for missing dir")
	}
}

func TestStartEmitsCreateEvents(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := Start(ctx, Config{Dir: dir}, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	// an unsupported extension must never reach the channel
	if err := os.WriteFile(filepath.Join(dir, "ignored.zip"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(want, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case got := <-evCh:
		if got != want {
			t.Fatalf("expected %s, got %s", want, got)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for create event")
	}
}

func TestStartClosesChannelsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	evCh, _, err := Start(ctx, Config{Dir: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	cancel()

	select {
	case _, ok := <-evCh:
		if ok {
			t.Fatal("expected closed channel after cancel")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for channel close")
	}
}
