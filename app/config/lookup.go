package config

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-pkgz/expirable-cache/v3"
	"github.com/go-pkgz/fileutils"

	"github.com/umputun/tg-moderator/app/storage"
)

//go:generate moq --out mocks/override_store.go --pkg mocks --with-resets --skip-ensure . OverrideStore

// OverrideStore keeps per-chat overrides, implemented by storage.ChatConfigs
type OverrideStore interface {
	Get(ctx context.Context, chatID int64, obj *WarningSystem) error
	Set(ctx context.Context, chatID int64, obj *WarningSystem) error
	Delete(ctx context.Context, chatID int64) error
}

// Lookup returns effective per-chat warning policy: chat override if set, defaults otherwise
type Lookup struct {
	store OverrideStore
	cache cache.Cache[int64, WarningSystem]
	ttl   time.Duration

	mu       sync.RWMutex
	defaults Defaults
}

// NewLookup makes a Lookup with the given defaults and cache ttl
func NewLookup(store OverrideStore, defaults Defaults, ttl time.Duration) *Lookup {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Lookup{
		store:    store,
		defaults: defaults,
		ttl:      ttl,
		cache:    cache.NewCache[int64, WarningSystem]().WithMaxKeys(1000).WithTTL(ttl),
	}
}

// GetEffective returns the warning policy for the chat, chatID 0 returns defaults
func (l *Lookup) GetEffective(ctx context.Context, chatID int64) (WarningSystem, error) {
	if chatID == 0 || l.store == nil {
		return l.Defaults().Warnings, nil
	}
	if v, ok := l.cache.Get(chatID); ok {
		return v, nil
	}

	var res WarningSystem
	err := l.store.Get(ctx, chatID, &res)
	switch {
	case errors.Is(err, storage.ErrNotFound):
		res = l.Defaults().Warnings
	case err != nil:
		return WarningSystem{}, fmt.Errorf("failed to get warnings config for chat %d: %w", chatID, err)
	}
	l.cache.Set(chatID, res, l.ttl)
	return res, nil
}

// SetOverride stores the chat policy
func (l *Lookup) SetOverride(ctx context.Context, chatID int64, ws WarningSystem) error {
	if err := ws.Validate(); err != nil {
		return err
	}
	if err := l.store.Set(ctx, chatID, &ws); err != nil {
		return fmt.Errorf("failed to set warnings config for chat %d: %w", chatID, err)
	}
	l.cache.Invalidate(chatID)
	return nil
}

// DeleteOverride returns the chat to defaults
func (l *Lookup) DeleteOverride(ctx context.Context, chatID int64) error {
	if err := l.store.Delete(ctx, chatID); err != nil {
		return fmt.Errorf("failed to delete warnings config for chat %d: %w", chatID, err)
	}
	l.cache.Invalidate(chatID)
	return nil
}

// Defaults returns current defaults
func (l *Lookup) Defaults() Defaults {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.defaults
}

// SetDefaults replaces defaults and drops cached values
func (l *Lookup) SetDefaults(d Defaults) {
	l.mu.Lock()
	l.defaults = d
	l.mu.Unlock()
	l.cache.Purge()
}

// LoadDefaultsFile reads defaults from yaml file and applies them
func (l *Lookup) LoadDefaultsFile(path string) error {
	if !fileutils.IsFile(path) {
		return fmt.Errorf("defaults file %s not found", path)
	}
	fh, err := os.Open(path) //nolint:gosec // path from cli options
	if err != nil {
		return fmt.Errorf("failed to open defaults file %s: %w", path, err)
	}
	defer fh.Close()

	d, err := ParseDefaults(fh)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	l.SetDefaults(d)
	log.Printf("[INFO] warning defaults loaded from %s: %+v", path, d.Warnings)
	return nil
}

// WatchDefaults reloads defaults on file change until context is canceled.
// A broken file keeps the previous defaults.
func (l *Lookup) WatchDefaults(ctx context.Context, path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err = watcher.Add(path); err != nil {
		return fmt.Errorf("failed to add %s to watcher: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			log.Printf("[INFO] stopping watcher for %s, %v", path, ctx.Err())
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if e := l.LoadDefaultsFile(path); e != nil {
				log.Printf("[WARN] failed to reload defaults, keep previous: %v", e)
			}
		case e, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("[WARN] watcher error: %v", e)
		}
	}
}
