package crosschat

import (
	"context"
	"log"
	"time"

	cache "github.com/go-pkgz/expirable-cache/v3"

	"github.com/umputun/tg-moderator/app/storage"
)

// HealthSource returns stored health of chats, ids without record are missing from the result
type HealthSource interface {
	HealthStatuses(ctx context.Context, ids []int64) (map[int64]storage.ChatHealth, error)
}

// HealthGate decides which chats can take part in a fan-out. Excludes chats with error health,
// chats where the bot can't restrict members and chats marked unhealthy at runtime.
type HealthGate struct {
	src       HealthSource
	unhealthy cache.Cache[int64, string]
	ttl       time.Duration
}

// NewHealthGate makes HealthGate, runtime marks expire after ttl
func NewHealthGate(src HealthSource, ttl time.Duration) *HealthGate {
	return &HealthGate{
		src:       src,
		ttl:       ttl,
		unhealthy: cache.NewCache[int64, string]().WithMaxKeys(10000).WithTTL(ttl),
	}
}

// FilterHealthy returns healthy subset of ids, order preserved.
// If stored health can't be read, only runtime marks are applied.
func (h *HealthGate) FilterHealthy(ctx context.Context, ids []int64) []int64 {
	statuses, err := h.src.HealthStatuses(ctx, ids)
	if err != nil {
		log.Printf("[WARN] can't get chats health, using runtime state only: %v", err)
		statuses = map[int64]storage.ChatHealth{}
	}

	res := make([]int64, 0, len(ids))
	for _, id := range ids {
		if reason, marked := h.unhealthy.Get(id); marked {
			log.Printf("[DEBUG] chat %d skipped, marked unhealthy: %s", id, reason)
			continue
		}
		if st, ok := statuses[id]; ok && (st.HealthStatus == storage.HealthError || !st.BotCanRestrict) {
			log.Printf("[DEBUG] chat %d skipped, health %s, can restrict %v", id, st.HealthStatus, st.BotCanRestrict)
			continue
		}
		res = append(res, id)
	}
	return res
}

// MarkUnhealthy excludes chat from fan-outs until the mark expires
func (h *HealthGate) MarkUnhealthy(chatID int64, reason string) {
	log.Printf("[INFO] chat %d marked unhealthy for %v: %s", chatID, h.ttl, reason)
	h.unhealthy.Set(chatID, reason, h.ttl)
}
