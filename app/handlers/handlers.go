// Package handlers provides capability handlers used by the moderation orchestrator.
// Each handler wraps one messenger or storage capability and applies no business rules.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/umputun/tg-moderator/app/crosschat"
	"github.com/umputun/tg-moderator/app/moderation"
)

//go:generate moq --out mocks/chat_actions.go --pkg mocks --with-resets --skip-ensure . ChatActions
//go:generate moq --out mocks/fanout_executor.go --pkg mocks --with-resets --skip-ensure . FanoutExecutor

// ErrAlreadyDeleted returned by ChatActions.DeleteMessage if the message is gone already
var ErrAlreadyDeleted = errors.New("message already deleted")

// ChatActions is a messenger client able to moderate chat members and send messages.
// Zero until means permanent.
type ChatActions interface {
	BanChatMember(ctx context.Context, chatID, userID int64, until time.Time) error
	UnbanChatMember(ctx context.Context, chatID, userID int64) error
	RestrictChatMember(ctx context.Context, chatID, userID int64, readOnly bool, until time.Time) error
	DeleteMessage(ctx context.Context, chatID int64, msgID int) error
	SendMessage(ctx context.Context, chatID int64, text string, replyTo int) (int, error)
}

// FanoutExecutor runs an action in all healthy managed chats
type FanoutExecutor interface {
	ExecuteAcrossChats(ctx context.Context, actionName string, action crosschat.Action) (crosschat.Result, error)
}

// perChat runs fn in a single chat or across all chats if chat is nil.
// Global action fails only if no chat succeeded and some failed, zero chats is a success.
func perChat(ctx context.Context, fanout FanoutExecutor, chat *moderation.ChatIdentity, name string,
	fn func(ctx context.Context, chatID int64) error) (moderation.Fanout, error) {
	if chat != nil {
		if err := fn(ctx, chat.ID); err != nil {
			return moderation.Fanout{ChatsFailed: 1}, fmt.Errorf("failed to %s in %s: %w", name, chat, err)
		}
		return moderation.Fanout{ChatsAffected: 1}, nil
	}

	res, err := fanout.ExecuteAcrossChats(ctx, name, fn)
	if err != nil {
		return moderation.Fanout{}, fmt.Errorf("failed to %s across chats: %w", name, err)
	}
	fan := moderation.Fanout{ChatsAffected: res.Success, ChatsFailed: res.Failed}
	if res.Success == 0 && res.Failed > 0 {
		return fan, fmt.Errorf("failed to %s in all %d chats", name, res.Failed)
	}
	return fan, nil
}

func chatIDOf(chat *moderation.ChatIdentity) int64 {
	if chat == nil {
		return 0
	}
	return chat.ID
}
