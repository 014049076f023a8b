package handlers

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"github.com/umputun/tg-moderator/app/moderation"
)

//go:generate moq --out mocks/direct_sender.go --pkg mocks --with-resets --skip-ensure . DirectSender

// DirectSender sends a text message to a chat, private chat id is the user id
type DirectSender interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyTo int) (int, error)
}

// failureLogInterval limits warnings about failed deliveries
const failureLogInterval = time.Minute

// Notifications delivers messages to users directly and to the admin chat
type Notifications struct {
	sender      DirectSender
	adminChatID int64
	lastWarn    atomic.Int64 // unix nano of the last logged delivery failure
	now         func() time.Time
}

// NewNotifications makes Notifications, zero adminChatID disables admin notifications
func NewNotifications(sender DirectSender, adminChatID int64) *Notifications {
	return &Notifications{sender: sender, adminChatID: adminChatID, now: time.Now}
}

// NotifyUser sends a direct message to the user. Users who never started the bot can't be reached.
func (n *Notifications) NotifyUser(ctx context.Context, user moderation.UserIdentity, chat *moderation.ChatIdentity, text string) error {
	if chat != nil {
		text = fmt.Sprintf("%s\n\nchat: %s", text, chat.Title)
	}
	if _, err := n.sender.SendMessage(ctx, user.ID, text, 0); err != nil {
		n.logFailure(fmt.Sprintf("user %s", user), err)
		return fmt.Errorf("failed to notify %s: %w", user, err)
	}
	return nil
}

// NotifyAdmins sends message to the admin chat
func (n *Notifications) NotifyAdmins(ctx context.Context, chat *moderation.ChatIdentity, text string) error {
	if n.adminChatID == 0 {
		log.Printf("[DEBUG] admin chat not set, notification dropped: %s", text)
		return nil
	}
	if chat != nil && chat.Title != "" {
		text = fmt.Sprintf("[%s] %s", chat.Title, text)
	}
	if _, err := n.sender.SendMessage(ctx, n.adminChatID, text, 0); err != nil {
		n.logFailure("admins", err)
		return fmt.Errorf("failed to notify admins: %w", err)
	}
	return nil
}

// logFailure logs at most one warning per interval, the rest goes to debug
func (n *Notifications) logFailure(target string, err error) {
	now := n.now().UnixNano()
	last := n.lastWarn.Load()
	if now-last >= int64(failureLogInterval) && n.lastWarn.CompareAndSwap(last, now) {
		log.Printf("[WARN] notification to %s failed: %v", target, err)
		return
	}
	log.Printf("[DEBUG] notification to %s failed: %v", target, err)
}
