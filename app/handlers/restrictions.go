package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/tg-moderator/app/moderation"
)

// Restrictions switches chat members to read-only and back
type Restrictions struct {
	client ChatActions
	fanout FanoutExecutor
}

// NewRestrictions makes Restrictions handler
func NewRestrictions(client ChatActions, fanout FanoutExecutor) *Restrictions {
	return &Restrictions{client: client, fanout: fanout}
}

// Restrict makes user read-only for duration d, nil chat means all managed chats
func (r *Restrictions) Restrict(ctx context.Context, user moderation.UserIdentity, chat *moderation.ChatIdentity,
	d time.Duration) (moderation.Fanout, time.Time, error) {
	until := time.Now().Add(d)
	fan, err := perChat(ctx, r.fanout, chat, fmt.Sprintf("restrict %d", user.ID), func(ctx context.Context, chatID int64) error {
		return r.client.RestrictChatMember(ctx, chatID, user.ID, true, until)
	})
	return fan, until, err
}

// RestorePermissions gives back default member permissions in the chat
func (r *Restrictions) RestorePermissions(ctx context.Context, user moderation.UserIdentity, chat moderation.ChatIdentity) error {
	if err := r.client.RestrictChatMember(ctx, chat.ID, user.ID, false, time.Time{}); err != nil {
		return fmt.Errorf("failed to restore permissions of %s in %s: %w", user, chat, err)
	}
	return nil
}
