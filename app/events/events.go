// Package events provides the telegram side of the moderator: the chat-action client with retries and rate
// limit, the update listener with /report and admin reply commands, lazy propagation of global bans, and the
// admin review flow driven by inline keyboard callbacks.
package events

import (
	"context"
	"strings"

	tbapi "github.com/OvyFlash/telegram-bot-api"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
)

//go:generate moq --out mocks/tb_api.go --pkg mocks --with-resets --skip-ensure . TbAPI
//go:generate moq --out mocks/moderator.go --pkg mocks --with-resets --skip-ensure . Moderator
//go:generate moq --out mocks/report_store.go --pkg mocks --with-resets --skip-ensure . ReportStore
//go:generate moq --out mocks/callback_store.go --pkg mocks --with-resets --skip-ensure . CallbackStore
//go:generate moq --out mocks/messenger.go --pkg mocks --with-resets --skip-ensure . Messenger

// TbAPI is an interface for telegram bot API, only subset of methods used
type TbAPI interface {
	GetUpdatesChan(config tbapi.UpdateConfig) tbapi.UpdatesChannel
	Send(c tbapi.Chattable) (tbapi.Message, error)
	Request(c tbapi.Chattable) (*tbapi.APIResponse, error)
}

// Moderator runs moderation workflows, implemented by moderation.Orchestrator
type Moderator interface {
	IsSystemAccount(userID int64) bool
	BanUser(ctx context.Context, in moderation.BanIntent) moderation.BanResult
	WarnUser(ctx context.Context, in moderation.WarnIntent) moderation.WarnResult
	MarkAsSpamAndBan(ctx context.Context, in moderation.SpamBanIntent) moderation.SpamBanResult
	RestoreUserPermissions(ctx context.Context, in moderation.RestorePermissionsIntent) moderation.ActionResult
	KickUserFromChat(ctx context.Context, in moderation.KickIntent) moderation.ActionResult
	SyncBanToChat(ctx context.Context, in moderation.SyncBanIntent) moderation.BanResult
	TrustUser(ctx context.Context, in moderation.TrustIntent) moderation.ActionResult
}

// ReportStore provides reports and their atomic status transition
type ReportStore interface {
	Add(ctx context.Context, rep storage.Report) (int64, error)
	GetByID(ctx context.Context, id int64) (storage.Report, error)
	TryUpdateStatus(ctx context.Context, id int64, from storage.ReportStatus, reviewer, action, notes string) (bool, error)
}

// CallbackStore keeps callback contexts of admin review messages
type CallbackStore interface {
	Add(ctx context.Context, cc storage.CallbackContext) (int64, error)
	GetByID(ctx context.Context, id int64) (storage.CallbackContext, error)
	Delete(ctx context.Context, id int64) error
}

// Messenger sends and edits bot messages, implemented by TelegramActions
type Messenger interface {
	SendMessage(ctx context.Context, chatID int64, text string, replyTo int) (int, error)
	SendKeyboard(ctx context.Context, chatID int64, text string, keyboard tbapi.InlineKeyboardMarkup) (int, error)
	EditText(ctx context.Context, chatID int64, msgID int, text string) error
	EditCaption(ctx context.Context, chatID int64, msgID int, caption string) error
	DeleteMessage(ctx context.Context, chatID int64, msgID int) error
}

// hasMedia checks if the message carries photo or video, such messages have caption instead of text
func hasMedia(msg *tbapi.Message) bool {
	return msg != nil && (len(msg.Photo) > 0 || msg.Video != nil)
}

// messageText returns text or caption of the message
func messageText(msg *tbapi.Message) string {
	if msg == nil {
		return ""
	}
	if msg.Text != "" {
		return msg.Text
	}
	return msg.Caption
}

func userOf(u *tbapi.User) moderation.UserIdentity {
	if u == nil {
		return moderation.UserIdentity{}
	}
	name := u.UserName
	if name == "" {
		name = strings.TrimSpace(u.FirstName + " " + u.LastName)
	}
	return moderation.UserIdentity{ID: u.ID, Name: name}
}

func chatOf(c tbapi.Chat) moderation.ChatIdentity {
	return moderation.ChatIdentity{ID: c.ID, Title: c.Title}
}

func truncateString(s string, maxLen int, suffix string) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + suffix
}
