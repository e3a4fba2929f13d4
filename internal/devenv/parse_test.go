// SPDX-License-Identifier: MIT
package devenv

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestParseFullDescriptor(t *testing.T) {
	d, err := Load(filepath.Join("testdata", "devenv.yaml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if !d.Dotenv.Enable {
		t.Error("expected dotenv.enable=true")
	}
	if len(d.Packages) != 3 {
		t.Errorf("expected 3 packages, got %d", len(d.Packages))
	}
	lang, ok := d.Languages["go"]
	if !ok {
		t.Fatal("expected go language entry")
	}
	if !lang.Enable || lang.Channel != "stable" {
		t.Errorf("expected go enabled at stable, got %+v", lang)
	}
	if len(d.GitHooks.Hooks) != 3 {
		t.Errorf("expected 3 hooks, got %d", len(d.GitHooks.Hooks))
	}

	lint, ok := d.GitHooks.Hooks["lint"]
	if !ok {
		t.Fatal("expected lint hook")
	}
	if lint.PassFilenames == nil || *lint.PassFilenames {
		t.Error("expected lint pass_filenames=false")
	}
	if got := lint.Stages; len(got) != 1 || got[0] != StagePreCommit {
		t.Errorf("expected lint staged at pre-commit, got %v", got)
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	payload := []byte("dotenv:\n  enable: true\n  autoload: true\n")

	_, err := Parse(payload)
	if err == nil {
		t.Fatal("expected error for unknown field")
	}
	if !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestParseRejectsDuplicateHookKeys(t *testing.T) {
	payload := []byte(`
git-hooks:
  hooks:
    lint:
      enable: true
    lint:
      enable: false
`)

	if _, err := Parse(payload); err == nil {
		t.Fatal("expected error for duplicate hook key")
	}
}

func TestParseEmptyPayload(t *testing.T) {
	_, err := Parse([]byte("   \n"))
	if !errors.Is(err, ErrEmptyDescriptor) {
		t.Errorf("expected ErrEmptyDescriptor, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}
