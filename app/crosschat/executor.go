// Package crosschat applies one action to every healthy managed chat with bounded concurrency
// and reports how many chats succeeded, failed or were skipped.
package crosschat

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/umputun/tg-moderator/app/storage"
)

//go:generate moq --out mocks/chat_source.go --pkg mocks --with-resets --skip-ensure . ChatSource
//go:generate moq --out mocks/health_filter.go --pkg mocks --with-resets --skip-ensure . HealthFilter
//go:generate moq --out mocks/health_source.go --pkg mocks --with-resets --skip-ensure . HealthSource

// DefaultConcurrency is the number of chats processed in parallel if not set
const DefaultConcurrency = 5

// ChatSource lists managed chats
type ChatSource interface {
	GetAllChats(ctx context.Context) ([]storage.ManagedChat, error)
}

// HealthFilter selects chats able to take part in a fan-out
type HealthFilter interface {
	FilterHealthy(ctx context.Context, ids []int64) []int64
	MarkUnhealthy(chatID int64, reason string)
}

// Action is applied to a single chat
type Action func(ctx context.Context, chatID int64) error

// Result is an aggregated fan-out outcome
type Result struct {
	Success int
	Failed  int
	Skipped int
}

func (r Result) String() string {
	return fmt.Sprintf("success: %d, failed: %d, skipped: %d", r.Success, r.Failed, r.Skipped)
}

// Executor runs an action across all active and healthy managed chats.
// A failure in one chat never stops the others.
type Executor struct {
	chats       ChatSource
	health      HealthFilter
	concurrency int
	metrics     *Metrics
}

// NewExecutor makes an Executor. Concurrency below 1 means DefaultConcurrency, metrics can be nil.
func NewExecutor(chats ChatSource, health HealthFilter, concurrency int, metrics *Metrics) *Executor {
	if concurrency < 1 {
		concurrency = DefaultConcurrency
	}
	return &Executor{chats: chats, health: health, concurrency: concurrency, metrics: metrics}
}

// ExecuteAcrossChats runs action for each healthy chat. Inactive, deleted and unhealthy chats are skipped.
// No healthy chats gives zero result. Error returned only if managed chats can't be loaded.
func (e *Executor) ExecuteAcrossChats(ctx context.Context, actionName string, action Action) (Result, error) {
	started := time.Now()
	chats, err := e.chats.GetAllChats(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to load managed chats for %s: %w", actionName, err)
	}

	ids := make([]int64, 0, len(chats))
	for _, c := range chats {
		if c.IsActive && !c.IsDeleted {
			ids = append(ids, c.ChatID)
		}
	}
	healthy := e.health.FilterHealthy(ctx, ids)
	if len(healthy) == 0 {
		log.Printf("[INFO] %s: no healthy chats out of %d", actionName, len(chats))
		return Result{}, nil
	}

	res := Result{Skipped: len(chats) - len(healthy)}
	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(e.concurrency)
	for _, chatID := range healthy {
		g.Go(func() error {
			err := e.run(ctx, chatID, action)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				res.Failed++
				log.Printf("[WARN] %s failed in chat %d: %v", actionName, chatID, err)
				if reason, ok := permanentFailure(err); ok {
					e.health.MarkUnhealthy(chatID, reason)
				}
				return nil
			}
			res.Success++
			return nil
		})
	}
	_ = g.Wait() // goroutines never return errors, failures are counted

	log.Printf("[INFO] %s across chats, %s", actionName, res)
	e.metrics.observe(actionName, res, started)
	return res, nil
}

// run calls action for a single chat, panic is converted to error
func (e *Executor) run(ctx context.Context, chatID int64, action Action) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in chat %d: %v", chatID, r)
		}
	}()
	if err := ctx.Err(); err != nil {
		return err
	}
	return action(ctx, chatID)
}

// platform errors meaning the bot can't act in the chat anymore
var permanentErrors = []string{"chat not found", "bot was kicked", "not enough rights", "bot is not a member",
	"have no rights"}

func permanentFailure(err error) (string, bool) {
	msg := strings.ToLower(err.Error())
	for _, p := range permanentErrors {
		if strings.Contains(msg, p) {
			return p, true
		}
	}
	return "", false
}
