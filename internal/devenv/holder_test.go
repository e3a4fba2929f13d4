// SPDX-License-Identifier: MIT
package devenv

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.uber.org/goleak"
)

const minimalDescriptor = `
packages:
  - just
git-hooks:
  hooks:
    lint:
      enable: true
      entry: staticcheck -fail all ./...
      stages: [pre-commit]
`

const updatedDescriptor = `
packages:
  - just
  - watchexec
git-hooks:
  hooks:
    lint:
      enable: true
      entry: staticcheck -fail all ./...
      stages: [pre-commit]
    test:
      enable: true
      entry: go test ./...
      stages: [pre-push]
`

func writeDescriptor(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
}

func TestHolderReloadSwapsOnValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devenv.yaml")
	writeDescriptor(t, path, minimalDescriptor)

	initial, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	h := NewHolder(initial, path)

	writeDescriptor(t, path, updatedDescriptor)
	if err := h.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() failed: %v", err)
	}

	if got := len(h.Plan().Packages); got != 2 {
		t.Errorf("expected 2 packages after reload, got %d", got)
	}
	if got := len(h.Plan().RegisteredAt(StagePrePush)); got != 1 {
		t.Errorf("expected test hook at pre-push after reload, got %d", got)
	}
}

func TestHolderReloadKeepsOldOnInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devenv.yaml")
	writeDescriptor(t, path, minimalDescriptor)

	initial, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	h := NewHolder(initial, path)

	// Unknown stage fails validation; the holder must keep the old plan.
	writeDescriptor(t, path, `
git-hooks:
  hooks:
    lint:
      enable: true
      stages: [pre-merge]
`)
	if err := h.Reload(context.Background()); err == nil {
		t.Fatal("expected reload failure for invalid descriptor")
	}

	if got := len(h.Plan().Packages); got != 1 {
		t.Errorf("old plan must survive failed reload, got %d packages", got)
	}
	if got := h.Descriptor().GitHooks.Hooks["lint"].Stages; len(got) != 1 || got[0] != StagePreCommit {
		t.Errorf("old descriptor must survive failed reload, got stages %v", got)
	}
}

func TestHolderNotifiesListeners(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devenv.yaml")
	writeDescriptor(t, path, minimalDescriptor)

	initial, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	h := NewHolder(initial, path)

	ch := make(chan Resolved, 1)
	h.RegisterListener(ch)

	writeDescriptor(t, path, updatedDescriptor)
	if err := h.Reload(context.Background()); err != nil {
		t.Fatalf("Reload() failed: %v", err)
	}

	select {
	case plan := <-ch:
		if len(plan.Packages) != 2 {
			t.Errorf("listener received stale plan: %v", plan.Packages)
		}
	default:
		t.Error("listener was not notified")
	}
}

func TestHolderWatcherReloadsOnWrite(t *testing.T) {
	defer goleak.VerifyNone(t)

	path := filepath.Join(t.TempDir(), "devenv.yaml")
	writeDescriptor(t, path, minimalDescriptor)

	initial, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	h := NewHolder(initial, path)

	ctx, cancel := context.WithCancel(context.Background())
	if err := h.StartWatcher(ctx); err != nil {
		t.Fatalf("StartWatcher() failed: %v", err)
	}

	writeDescriptor(t, path, updatedDescriptor)

	deadline := time.After(5 * time.Second)
	for len(h.Plan().Packages) != 2 {
		select {
		case <-deadline:
			cancel()
			t.Fatal("watcher did not pick up descriptor change")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	// Give the watch loop a moment to drain before goleak runs.
	time.Sleep(100 * time.Millisecond)
}
