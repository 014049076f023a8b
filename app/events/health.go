package events

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tbapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/hashicorp/go-multierror"

	"github.com/umputun/tg-moderator/app/storage"
)

//go:generate moq --out mocks/member_api.go --pkg mocks --with-resets --skip-ensure . MemberAPI
//go:generate moq --out mocks/health_store.go --pkg mocks --with-resets --skip-ensure . HealthStore

// MemberAPI returns chat membership, implemented by TelegramActions
type MemberAPI interface {
	ChatMember(ctx context.Context, chatID, userID int64) (tbapi.ChatMember, error)
}

// HealthStore keeps health of managed chats, implemented by storage.ManagedChats
type HealthStore interface {
	GetAllChats(ctx context.Context) ([]storage.ManagedChat, error)
	UpdateHealth(ctx context.Context, chatID int64, status storage.HealthStatus, canRestrict, canDelete bool) error
	MarkHealthUnknown(ctx context.Context, chatID int64) error
	MarkDeleted(ctx context.Context, chatID int64) error
}

// HealthChecker periodically checks bot's rights in every managed chat and stores the result
type HealthChecker struct {
	API      MemberAPI
	Store    HealthStore
	BotID    int64
	Interval time.Duration
}

// Run checks chats on start and every Interval until context is canceled
func (h *HealthChecker) Run(ctx context.Context) {
	interval := h.Interval
	if interval <= 0 {
		interval = 30 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if err := h.CheckAll(ctx); err != nil {
			log.Printf("[WARN] chat health check: %v", err)
		}
		select {
		case <-ctx.Done():
			log.Printf("[DEBUG] chat health checker stopped")
			return
		case <-ticker.C:
		}
	}
}

// CheckAll checks every known chat, failure of a single chat doesn't stop others
func (h *HealthChecker) CheckAll(ctx context.Context) error {
	chats, err := h.Store.GetAllChats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get managed chats: %w", err)
	}
	errs := new(multierror.Error)
	for _, chat := range chats {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := h.check(ctx, chat.ChatID); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs.ErrorOrNil()
}

func (h *HealthChecker) check(ctx context.Context, chatID int64) error {
	member, err := h.API.ChatMember(ctx, chatID, h.BotID)
	if err != nil {
		if chatGone(err) {
			log.Printf("[INFO] chat %d is gone: %v", chatID, err)
			return h.Store.MarkDeleted(ctx, chatID)
		}
		log.Printf("[DEBUG] can't check chat %d, keep last known rights: %v", chatID, err)
		return h.Store.MarkHealthUnknown(ctx, chatID)
	}

	status, canRestrict, canDelete := healthOf(member)
	if status != storage.HealthHealthy {
		log.Printf("[WARN] chat %d health is %s, bot status %q, restrict %v, delete %v",
			chatID, status, member.Status, canRestrict, canDelete)
	}
	return h.Store.UpdateHealth(ctx, chatID, status, canRestrict, canDelete)
}

// healthOf maps bot's membership to chat health. Bot must be an admin able to restrict members,
// missing delete right is a warning only.
func healthOf(member tbapi.ChatMember) (status storage.HealthStatus, canRestrict, canDelete bool) {
	switch member.Status {
	case "creator":
		return storage.HealthHealthy, true, true
	case "administrator":
		canRestrict, canDelete = member.CanRestrictMembers, member.CanDeleteMessages
		switch {
		case !canRestrict:
			return storage.HealthError, canRestrict, canDelete
		case !canDelete:
			return storage.HealthWarning, canRestrict, canDelete
		}
		return storage.HealthHealthy, canRestrict, canDelete
	case "left", "kicked":
		return storage.HealthError, false, false
	}
	return storage.HealthWarning, false, false
}

func chatGone(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "chat not found") || strings.Contains(msg, "bot was kicked")
}
