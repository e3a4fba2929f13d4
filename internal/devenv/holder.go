// SPDX-License-Identifier: MIT

package devenv

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	xlog "github.com/motif-audio/motif/internal/log"
	"github.com/motif-audio/motif/internal/metrics"
)

// Holder holds the current descriptor with atomic reloading. The descriptor
// is authored once and re-read on edit; Holder gives long-running consumers
// (the TUI, the renderer) a consistent view across edits.
type Holder struct {
	mu      sync.RWMutex
	current Descriptor
	plan    Resolved

	path    string
	watcher *fsnotify.Watcher
	logger  zerolog.Logger

	reloadMu        sync.RWMutex
	reloadListeners []chan<- Resolved
}

// NewHolder creates a holder seeded with an already-validated descriptor.
func NewHolder(initial Descriptor, path string) *Holder {
	return &Holder{
		current: initial,
		plan:    Resolve(initial),
		path:    path,
		logger:  xlog.WithComponent("devenv"),
	}
}

// Descriptor returns the current descriptor (thread-safe read).
func (h *Holder) Descriptor() Descriptor {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Plan returns the current resolved provisioning plan (thread-safe read).
func (h *Holder) Plan() Resolved {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.plan
}

// Reload re-reads the descriptor file and validates it. If loading or
// validation fails the old descriptor is kept, so consumers never observe a
// partially-applied environment.
func (h *Holder) Reload(_ context.Context) error {
	h.logger.Info().Str(xlog.FieldEvent, "devenv.reload_start").Msg("reloading descriptor")

	next, err := Load(h.path)
	if err != nil {
		metrics.DescriptorReloadFailed()
		h.logger.Error().Err(err).
			Str(xlog.FieldEvent, "devenv.reload_failed").
			Msg("failed to load descriptor")
		return fmt.Errorf("load descriptor: %w", err)
	}

	if err := Validate(next); err != nil {
		metrics.DescriptorValidationFailed()
		h.logger.Error().Err(err).
			Str(xlog.FieldEvent, "devenv.validation_failed").
			Msg("new descriptor failed validation")
		return fmt.Errorf("validate descriptor: %w", err)
	}

	plan := Resolve(next)

	h.mu.Lock()
	old := h.current
	h.current = next
	h.plan = plan
	h.mu.Unlock()

	h.notifyListeners(plan)
	h.logChanges(old, next)
	metrics.DescriptorReloaded()

	h.logger.Info().
		Str(xlog.FieldEvent, "devenv.reload_success").
		Msg("descriptor reloaded")
	return nil
}

// StartWatcher starts watching the descriptor file for changes. If path is
// empty this is a no-op.
func (h *Holder) StartWatcher(ctx context.Context) error {
	if h.path == "" {
		h.logger.Info().
			Str(xlog.FieldEvent, "devenv.watcher_disabled").
			Msg("descriptor watcher disabled")
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	h.watcher = watcher

	if err := watcher.Add(h.path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("watch descriptor file: %w", err)
	}

	h.logger.Info().
		Str(xlog.FieldEvent, "devenv.watcher_started").
		Str(xlog.FieldPath, h.path).
		Msg("watching descriptor file for changes")

	go h.watchLoop(ctx)
	return nil
}

func (h *Holder) watchLoop(ctx context.Context) {
	// Debounce so editor write+rename sequences trigger one reload.
	var debounce *time.Timer
	const debounceDelay = 500 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			h.logger.Info().Str(xlog.FieldEvent, "devenv.watcher_stopped").Msg("descriptor watcher stopped")
			if h.watcher != nil {
				_ = h.watcher.Close()
			}
			return

		case event, ok := <-h.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				h.logger.Debug().
					Str(xlog.FieldEvent, "devenv.file_changed").
					Str("op", event.Op.String()).
					Msg("descriptor file changed")

				if debounce != nil {
					debounce.Stop()
				}
				debounce = time.AfterFunc(debounceDelay, func() {
					if err := h.Reload(ctx); err != nil {
						h.logger.Error().Err(err).
							Str(xlog.FieldEvent, "devenv.auto_reload_failed").
							Msg("automatic descriptor reload failed")
					}
				})
			}

		case err, ok := <-h.watcher.Errors:
			if !ok {
				return
			}
			h.logger.Error().Err(err).
				Str(xlog.FieldEvent, "devenv.watcher_error").
				Msg("descriptor watcher error")
		}
	}
}

// Stop stops the descriptor watcher (if running).
func (h *Holder) Stop() {
	if h.watcher != nil {
		_ = h.watcher.Close()
	}
}

// RegisterListener registers a channel to receive the resolved plan whenever
// a reload succeeds. The caller owns the channel.
func (h *Holder) RegisterListener(ch chan<- Resolved) {
	h.reloadMu.Lock()
	defer h.reloadMu.Unlock()
	h.reloadListeners = append(h.reloadListeners, ch)
}

func (h *Holder) notifyListeners(plan Resolved) {
	h.reloadMu.RLock()
	defer h.reloadMu.RUnlock()

	for _, ch := range h.reloadListeners {
		select {
		case ch <- plan:
		default:
			h.logger.Warn().
				Str(xlog.FieldEvent, "devenv.listener_skip").
				Msg("skipped notifying listener (channel full)")
		}
	}
}

// logChanges logs field-level differences between descriptors.
func (h *Holder) logChanges(old, next Descriptor) {
	if old.Dotenv.Enable != next.Dotenv.Enable {
		h.logger.Info().
			Bool("old", old.Dotenv.Enable).
			Bool("new", next.Dotenv.Enable).
			Msg("descriptor changed: dotenv.enable")
	}
	if len(old.Packages) != len(next.Packages) {
		h.logger.Info().
			Int("old", len(old.Packages)).
			Int("new", len(next.Packages)).
			Msg("descriptor changed: packages")
	}
	if len(old.GitHooks.Hooks) != len(next.GitHooks.Hooks) {
		h.logger.Info().
			Int("old", len(old.GitHooks.Hooks)).
			Int("new", len(next.GitHooks.Hooks)).
			Msg("descriptor changed: git-hooks.hooks")
	}
}
