package handlers

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/tg-moderator/app/moderation"
)

// Bans applies and lifts bans in one chat or across all managed chats
type Bans struct {
	client ChatActions
	fanout FanoutExecutor
}

// NewBans makes Bans handler
func NewBans(client ChatActions, fanout FanoutExecutor) *Bans {
	return &Bans{client: client, fanout: fanout}
}

// Ban bans user permanently, nil chat means all managed chats
func (b *Bans) Ban(ctx context.Context, user moderation.UserIdentity, chat *moderation.ChatIdentity) (moderation.Fanout, error) {
	return perChat(ctx, b.fanout, chat, fmt.Sprintf("ban %d", user.ID), func(ctx context.Context, chatID int64) error {
		return b.client.BanChatMember(ctx, chatID, user.ID, time.Time{})
	})
}

// TempBan bans user for duration d, returns expiration time
func (b *Bans) TempBan(ctx context.Context, user moderation.UserIdentity, chat *moderation.ChatIdentity,
	d time.Duration) (moderation.Fanout, time.Time, error) {
	until := time.Now().Add(d)
	fan, err := perChat(ctx, b.fanout, chat, fmt.Sprintf("temp-ban %d", user.ID), func(ctx context.Context, chatID int64) error {
		return b.client.BanChatMember(ctx, chatID, user.ID, until)
	})
	return fan, until, err
}

// Unban lifts a ban, nil chat means all managed chats
func (b *Bans) Unban(ctx context.Context, user moderation.UserIdentity, chat *moderation.ChatIdentity) (moderation.Fanout, error) {
	return perChat(ctx, b.fanout, chat, fmt.Sprintf("unban %d", user.ID), func(ctx context.Context, chatID int64) error {
		return b.client.UnbanChatMember(ctx, chatID, user.ID)
	})
}

// Kick removes user from the chat, ban followed by unban so the user can join again
func (b *Bans) Kick(ctx context.Context, user moderation.UserIdentity, chat moderation.ChatIdentity) error {
	if err := b.client.BanChatMember(ctx, chat.ID, user.ID, time.Time{}); err != nil {
		return fmt.Errorf("failed to kick %s from %s: %w", user, chat, err)
	}
	if err := b.client.UnbanChatMember(ctx, chat.ID, user.ID); err != nil {
		return fmt.Errorf("kicked %s from %s but failed to unban: %w", user, chat, err)
	}
	log.Printf("[INFO] %s kicked from %s", user, chat)
	return nil
}
