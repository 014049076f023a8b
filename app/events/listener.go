package events

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	tbapi "github.com/OvyFlash/telegram-bot-api"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
)

//go:generate moq --out mocks/chat_registry.go --pkg mocks --with-resets --skip-ensure . ChatRegistry
//go:generate moq --out mocks/message_log.go --pkg mocks --with-resets --skip-ensure . MessageLog
//go:generate moq --out mocks/ban_lookup.go --pkg mocks --with-resets --skip-ensure . BanLookup
//go:generate moq --out mocks/publisher.go --pkg mocks --with-resets --skip-ensure . Publisher

// ChatRegistry keeps the list of managed chats
type ChatRegistry interface {
	Upsert(ctx context.Context, chatID int64, title string) error
	SetActive(ctx context.Context, chatID int64, active bool) error
}

// MessageLog stores messages seen in managed chats
type MessageLog interface {
	Save(ctx context.Context, msg storage.Message) error
}

// BanLookup tells if the user is banned globally
type BanLookup interface {
	IsGloballyBanned(ctx context.Context, userID int64) (bool, error)
}

// Publisher shows reports to admins
type Publisher interface {
	Publish(ctx context.Context, rep storage.Report) error
}

// TelegramListener listens to tg updates: registers managed chats, stores messages, propagates global bans
// to chats where a banned user shows up, accepts /report and admin commands and routes review callbacks.
// Not thread safe.
type TelegramListener struct {
	TbAPI       TbAPI
	Messenger   Messenger
	Moderator   Moderator
	Callbacks   *ReportCallbackService
	Chats       ChatRegistry
	Messages    MessageLog
	Bans        BanLookup
	Reports     ReportStore
	Publisher   Publisher
	SuperUsers  SuperUsers
	AdminChatID int64

	admin *adminCommands
}

// Do process all events, blocked call
func (l *TelegramListener) Do(ctx context.Context) error {
	log.Printf("[INFO] start telegram listener, admin chat %d", l.AdminChatID)
	l.admin = &adminCommands{moderator: l.Moderator, messenger: l.Messenger, superUsers: l.SuperUsers}

	u := tbapi.NewUpdate(0)
	u.Timeout = 60
	u.AllowedUpdates = []string{"message", "callback_query", "my_chat_member"}
	updates := l.TbAPI.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				return fmt.Errorf("telegram update chan closed")
			}
			if err := l.procUpdate(ctx, update); err != nil {
				log.Printf("[WARN] failed to process update %d: %v", update.UpdateID, err)
			}
		}
	}
}

func (l *TelegramListener) procUpdate(ctx context.Context, update tbapi.Update) error {
	switch {
	case update.CallbackQuery != nil:
		return l.procCallback(ctx, update.CallbackQuery)
	case update.MyChatMember != nil:
		return l.procMembership(ctx, update.MyChatMember)
	case update.Message != nil:
		return l.procMessage(ctx, update.Message)
	}
	return nil
}

func (l *TelegramListener) procCallback(ctx context.Context, query *tbapi.CallbackQuery) error {
	if _, err := l.TbAPI.Request(tbapi.NewCallback(query.ID, "accepted")); err != nil {
		log.Printf("[DEBUG] failed to answer callback %s: %v", query.ID, err)
	}
	if l.Callbacks == nil || !l.Callbacks.CanHandle(query.Data) {
		log.Printf("[DEBUG] ignore callback %q", query.Data)
		return nil
	}
	if err := l.Callbacks.Handle(ctx, query); err != nil {
		return fmt.Errorf("failed to handle review callback %q: %w", query.Data, err)
	}
	return nil
}

// procMembership tracks bot membership in chats, removed bot makes the chat inactive
func (l *TelegramListener) procMembership(ctx context.Context, upd *tbapi.ChatMemberUpdated) error {
	chat := upd.Chat
	if !isGroup(chat) {
		return nil
	}
	switch upd.NewChatMember.Status {
	case "left", "kicked":
		log.Printf("[INFO] bot removed from chat %q (%d)", chat.Title, chat.ID)
		if err := l.Chats.SetActive(ctx, chat.ID, false); err != nil {
			return fmt.Errorf("failed to deactivate chat %d: %w", chat.ID, err)
		}
	default:
		log.Printf("[INFO] bot is %s in chat %q (%d)", upd.NewChatMember.Status, chat.Title, chat.ID)
		if err := l.Chats.Upsert(ctx, chat.ID, chat.Title); err != nil {
			return fmt.Errorf("failed to register chat %d: %w", chat.ID, err)
		}
		if err := l.Chats.SetActive(ctx, chat.ID, true); err != nil {
			return fmt.Errorf("failed to activate chat %d: %w", chat.ID, err)
		}
	}
	return nil
}

func (l *TelegramListener) procMessage(ctx context.Context, msg *tbapi.Message) error {
	if !isGroup(msg.Chat) || msg.Chat.ID == l.AdminChatID || msg.From == nil {
		return nil
	}
	if err := l.Chats.Upsert(ctx, msg.Chat.ID, msg.Chat.Title); err != nil {
		log.Printf("[WARN] failed to register chat %d: %v", msg.Chat.ID, err)
	}

	if l.admin.isCommand(msg) {
		return l.admin.handle(ctx, msg)
	}
	if commandOf(msg.Text) == "/report" {
		return l.procReport(ctx, msg)
	}

	if l.Moderator.IsSystemAccount(msg.From.ID) {
		return nil
	}
	if synced, err := l.syncBan(ctx, msg); err != nil || synced {
		return err
	}

	rec := storage.Message{
		ChatID:    msg.Chat.ID,
		MsgID:     msg.MessageID,
		UserID:    msg.From.ID,
		UserName:  userOf(msg.From).Name,
		Text:      messageText(msg),
		HasMedia:  hasMedia(msg),
		CreatedAt: time.Unix(int64(msg.Date), 0),
	}
	if err := l.Messages.Save(ctx, rec); err != nil {
		return fmt.Errorf("failed to save message %d: %w", msg.MessageID, err)
	}
	return nil
}

// syncBan applies existing global ban to the chat where the banned user just posted and removes the message
func (l *TelegramListener) syncBan(ctx context.Context, msg *tbapi.Message) (bool, error) {
	banned, err := l.Bans.IsGloballyBanned(ctx, msg.From.ID)
	if err != nil {
		return false, fmt.Errorf("failed to check ban of %d: %w", msg.From.ID, err)
	}
	if !banned {
		return false, nil
	}
	user, chat := userOf(msg.From), chatOf(msg.Chat)
	log.Printf("[INFO] globally banned %s posted in %s, sync ban", user, chat)
	res := l.Moderator.SyncBanToChat(ctx, moderation.SyncBanIntent{User: user, Executor: moderation.AutoDetection,
		Reason: "global ban", Chat: chat})
	if !res.Success {
		return true, fmt.Errorf("failed to sync ban of %s to %s: %s", user, chat, res.ErrorMessage)
	}
	if err := l.Messenger.DeleteMessage(ctx, chat.ID, msg.MessageID); err != nil {
		log.Printf("[WARN] failed to delete message %d of banned %s: %v", msg.MessageID, user, err)
	}
	return true, nil
}

// procReport stores a content report for the replied message and publishes it for review
func (l *TelegramListener) procReport(ctx context.Context, msg *tbapi.Message) error {
	target := msg.ReplyToMessage
	if target == nil || target.From == nil {
		log.Printf("[DEBUG] /report without reply from %d", msg.From.ID)
		return nil
	}
	if target.From.ID == msg.From.ID || l.Moderator.IsSystemAccount(target.From.ID) {
		log.Printf("[DEBUG] ignore /report from %d on %d", msg.From.ID, target.From.ID)
		return nil
	}

	reporter := moderation.FromTelegramUser(msg.From.ID, msg.From.UserName)
	subject := userOf(target.From)
	rep := storage.Report{
		Type:            storage.ReportContent,
		ChatID:          msg.Chat.ID,
		ChatTitle:       msg.Chat.Title,
		SubjectUserID:   subject.ID,
		SubjectUserName: subject.Name,
		MessageID:       target.MessageID,
		CommandMsgID:    msg.MessageID,
		ReporterID:      msg.From.ID,
		ReporterName:    reporter.DisplayName(),
		Text:            strings.TrimSpace(messageText(target)),
		Status:          storage.ReportPending,
	}
	id, err := l.Reports.Add(ctx, rep)
	if err != nil {
		return fmt.Errorf("failed to add report on %s: %w", subject, err)
	}
	rep.ID = id
	log.Printf("[INFO] report %d on %s by %s in %q", id, subject, reporter, msg.Chat.Title)
	if err := l.Publisher.Publish(ctx, rep); err != nil {
		return fmt.Errorf("failed to publish report %d: %w", id, err)
	}
	return nil
}

func isGroup(chat tbapi.Chat) bool {
	return chat.IsGroup() || chat.IsSuperGroup()
}
