package crosschat

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-moderator/app/crosschat/mocks"
	"github.com/umputun/tg-moderator/app/storage"
	"github.com/umputun/tg-moderator/app/storage/engine"
)

func TestHealthGate_FilterHealthy(t *testing.T) {
	src := &mocks.HealthSourceMock{HealthStatusesFunc: func(context.Context, []int64) (map[int64]storage.ChatHealth, error) {
		return map[int64]storage.ChatHealth{
			1: {ChatID: 1, HealthStatus: storage.HealthHealthy, BotCanRestrict: true},
			2: {ChatID: 2, HealthStatus: storage.HealthError, BotCanRestrict: true},
			3: {ChatID: 3, HealthStatus: storage.HealthWarning, BotCanRestrict: true},
			4: {ChatID: 4, HealthStatus: storage.HealthHealthy, BotCanRestrict: false},
		}, nil
	}}
	gate := NewHealthGate(src, time.Minute)
	assert.Equal(t, []int64{1, 3, 5}, gate.FilterHealthy(context.Background(), []int64{1, 2, 3, 4, 5}),
		"unknown chat 5 is allowed")

	gate.MarkUnhealthy(3, "bot was kicked")
	assert.Equal(t, []int64{1, 5}, gate.FilterHealthy(context.Background(), []int64{1, 2, 3, 4, 5}))
}

func TestHealthGate_MarkExpires(t *testing.T) {
	src := &mocks.HealthSourceMock{HealthStatusesFunc: func(context.Context, []int64) (map[int64]storage.ChatHealth, error) {
		return map[int64]storage.ChatHealth{}, nil
	}}
	gate := NewHealthGate(src, 50*time.Millisecond)
	gate.MarkUnhealthy(1, "not enough rights")
	assert.Equal(t, []int64{2}, gate.FilterHealthy(context.Background(), []int64{1, 2}))
	assert.Eventually(t, func() bool {
		return len(gate.FilterHealthy(context.Background(), []int64{1, 2})) == 2
	}, time.Second, 20*time.Millisecond)
}

func TestHealthGate_SourceError(t *testing.T) {
	src := &mocks.HealthSourceMock{HealthStatusesFunc: func(context.Context, []int64) (map[int64]storage.ChatHealth, error) {
		return nil, errors.New("db down")
	}}
	gate := NewHealthGate(src, time.Minute)
	gate.MarkUnhealthy(2, "chat not found")
	assert.Equal(t, []int64{1, 3}, gate.FilterHealthy(context.Background(), []int64{1, 2, 3}))
}

func TestHealthGate_WithManagedChats(t *testing.T) {
	ctx := context.Background()
	db, err := engine.NewSqlite(":memory:", "gr1")
	require.NoError(t, err)
	defer db.Close()
	chats, err := storage.NewManagedChats(ctx, db)
	require.NoError(t, err)

	for _, id := range []int64{-100, -200, -300} {
		require.NoError(t, chats.Upsert(ctx, id, "chat"))
	}
	require.NoError(t, chats.UpdateHealth(ctx, -200, storage.HealthError, true, true))
	require.NoError(t, chats.SetActive(ctx, -300, false))

	health := NewHealthGate(chats, time.Minute)
	e := NewExecutor(chats, health, 2, nil)
	visited := []int64{}
	res, err := e.ExecuteAcrossChats(ctx, "ban", func(_ context.Context, chatID int64) error {
		visited = append(visited, chatID)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, Result{Success: 1, Skipped: 2}, res)
	assert.Equal(t, []int64{-100}, visited)
}
