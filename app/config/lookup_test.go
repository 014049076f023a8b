package config_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-moderator/app/config"
	"github.com/umputun/tg-moderator/app/config/mocks"
	"github.com/umputun/tg-moderator/app/storage"
)

func TestLookup_GetEffective(t *testing.T) {
	store := &mocks.OverrideStoreMock{
		GetFunc: func(_ context.Context, chatID int64, obj *config.WarningSystem) error {
			switch chatID {
			case -100:
				*obj = config.WarningSystem{AutoBanEnabled: false, AutoBanThreshold: 10}
				return nil
			case -200:
				return errors.New("db is down")
			}
			return fmt.Errorf("chat %d: %w", chatID, storage.ErrNotFound)
		},
	}
	l := config.NewLookup(store, config.NewDefaults(), time.Minute)
	ctx := context.Background()

	ws, err := l.GetEffective(ctx, -100)
	require.NoError(t, err)
	assert.Equal(t, config.WarningSystem{AutoBanEnabled: false, AutoBanThreshold: 10}, ws)

	ws, err = l.GetEffective(ctx, -100)
	require.NoError(t, err)
	assert.Equal(t, 10, ws.AutoBanThreshold)
	assert.Len(t, store.GetCalls(), 1, "second call served from cache")

	ws, err = l.GetEffective(ctx, -300)
	require.NoError(t, err)
	assert.Equal(t, config.NewDefaults().Warnings, ws, "no override means defaults")

	_, err = l.GetEffective(ctx, -200)
	require.Error(t, err)

	ws, err = l.GetEffective(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, config.NewDefaults().Warnings, ws)
	assert.Len(t, store.GetCalls(), 3, "global lookup doesn't hit the store")
}

func TestLookup_Overrides(t *testing.T) {
	var saved *config.WarningSystem
	store := &mocks.OverrideStoreMock{
		GetFunc: func(_ context.Context, chatID int64, obj *config.WarningSystem) error {
			if saved == nil {
				return storage.ErrNotFound
			}
			*obj = *saved
			return nil
		},
		SetFunc: func(_ context.Context, chatID int64, obj *config.WarningSystem) error {
			saved = obj
			return nil
		},
		DeleteFunc: func(context.Context, int64) error {
			saved = nil
			return nil
		},
	}
	l := config.NewLookup(store, config.NewDefaults(), time.Minute)
	ctx := context.Background()

	ws, err := l.GetEffective(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, 3, ws.AutoBanThreshold)

	require.NoError(t, l.SetOverride(ctx, -1, config.WarningSystem{AutoBanEnabled: true, AutoBanThreshold: 2}))
	ws, err = l.GetEffective(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, 2, ws.AutoBanThreshold, "cache invalidated on set")

	assert.Error(t, l.SetOverride(ctx, -1, config.WarningSystem{AutoBanThreshold: -1}))

	require.NoError(t, l.DeleteOverride(ctx, -1))
	ws, err = l.GetEffective(ctx, -1)
	require.NoError(t, err)
	assert.Equal(t, 3, ws.AutoBanThreshold)
}

func TestLookup_DefaultsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "defaults.yml")
	l := config.NewLookup(nil, config.NewDefaults(), time.Minute)

	assert.Error(t, l.LoadDefaultsFile(path), "missing file")

	require.NoError(t, os.WriteFile(path, []byte("warnings:\n  auto_ban_threshold: 4\n"), 0o600))
	require.NoError(t, l.LoadDefaultsFile(path))
	ws, err := l.GetEffective(context.Background(), -1)
	require.NoError(t, err)
	assert.Equal(t, 4, ws.AutoBanThreshold)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.WatchDefaults(ctx, path) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("warnings:\n  auto_ban_threshold: 6\n"), 0o600))
	assert.Eventually(t, func() bool { return l.Defaults().Warnings.AutoBanThreshold == 6 },
		2*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("warnings: ["), 0o600))
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, 6, l.Defaults().Warnings.AutoBanThreshold, "broken file keeps previous")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher didn't stop")
	}
}
