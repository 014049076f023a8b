package events

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	tbapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/hashicorp/go-multierror"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
)

// ReviewPublisher shows reports to admins. Each published report gets a callback context
// referenced by its inline buttons.
type ReviewPublisher struct {
	contexts    CallbackStore
	messenger   Messenger
	adminChatID int64
}

// NewReviewPublisher makes ReviewPublisher posting to the admin chat
func NewReviewPublisher(contexts CallbackStore, messenger Messenger, adminChatID int64) *ReviewPublisher {
	return &ReviewPublisher{contexts: contexts, messenger: messenger, adminChatID: adminChatID}
}

// Publish sends review message with one button per valid action of the report type
func (p *ReviewPublisher) Publish(ctx context.Context, rep storage.Report) error {
	if p.adminChatID == 0 {
		return errors.New("admin chat not set")
	}
	labels := actionsOf(rep.Type)
	if len(labels) == 0 {
		return fmt.Errorf("no review actions for report type %q", rep.Type)
	}

	ccID, err := p.contexts.Add(ctx, storage.CallbackContext{
		ReportID:   rep.ID,
		ReportType: rep.Type,
		ChatID:     rep.ChatID,
		ChatTitle:  rep.ChatTitle,
		UserID:     rep.SubjectUserID,
		UserName:   rep.SubjectUserName,
	})
	if err != nil {
		return fmt.Errorf("failed to add callback context for report %d: %w", rep.ID, err)
	}

	buttons := make([]tbapi.InlineKeyboardButton, 0, len(labels))
	for i, label := range labels {
		buttons = append(buttons, tbapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s%d:%d", callbackPrefix, ccID, i)))
	}
	keyboard := tbapi.NewInlineKeyboardMarkup(tbapi.NewInlineKeyboardRow(buttons...))

	if _, err := p.messenger.SendKeyboard(ctx, p.adminChatID, reviewText(rep), keyboard); err != nil {
		errs := new(multierror.Error)
		errs = multierror.Append(errs, fmt.Errorf("failed to send review of report %d: %w", rep.ID, err))
		if err := p.contexts.Delete(ctx, ccID); err != nil {
			errs = multierror.Append(errs, err)
		}
		return errs.ErrorOrNil()
	}
	log.Printf("[INFO] report %d (%s) published for review, context %d", rep.ID, rep.Type, ccID)
	return nil
}

func reviewText(rep storage.Report) string {
	var sb strings.Builder
	switch rep.Type {
	case storage.ReportExamFailure:
		sb.WriteString("🎓 exam failed")
	default:
		sb.WriteString("🚩 content report")
	}
	user := rep.SubjectUserName
	if user == "" {
		user = "user"
	}
	fmt.Fprintf(&sb, "\nuser: %s (%d)", user, rep.SubjectUserID)
	if rep.ChatTitle != "" {
		fmt.Fprintf(&sb, "\nchat: %s", rep.ChatTitle)
	}
	if rep.ReporterName != "" {
		fmt.Fprintf(&sb, "\nreported by: %s", rep.ReporterName)
	}
	if rep.Reason != "" {
		fmt.Fprintf(&sb, "\nreason: %s", truncateString(rep.Reason, 512, "..."))
	}
	if rep.Text != "" {
		fmt.Fprintf(&sb, "\n\n%s", truncateString(rep.Text, 1024, "..."))
	}
	return sb.String()
}

// adminCommands handles moderation commands superusers send as replies in managed chats
type adminCommands struct {
	moderator  Moderator
	messenger  Messenger
	superUsers SuperUsers
}

// command names, sent as a reply to the offending message
const (
	cmdSpam  = "/spam"
	cmdBan   = "/ban"
	cmdWarn  = "/warn"
	cmdTrust = "/trust"
)

// isCommand checks if the message is an admin command reply from a superuser
func (a *adminCommands) isCommand(msg *tbapi.Message) bool {
	if msg == nil || msg.From == nil || msg.ReplyToMessage == nil || msg.ReplyToMessage.From == nil {
		return false
	}
	switch commandOf(msg.Text) {
	case cmdSpam, cmdBan, cmdWarn, cmdTrust:
		return a.superUsers.IsSuper(msg.From.UserName, msg.From.ID)
	}
	return false
}

// handle runs the command against the author of the replied message and removes the command message
func (a *adminCommands) handle(ctx context.Context, msg *tbapi.Message) error {
	target := msg.ReplyToMessage
	user := userOf(target.From)
	chat := chatOf(msg.Chat)
	executor := moderation.FromTelegramUser(msg.From.ID, msg.From.UserName)
	cmd := commandOf(msg.Text)
	reason := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(msg.Text), cmd))
	if reason == "" {
		reason = "admin command " + cmd
	}

	if err := a.messenger.DeleteMessage(ctx, chat.ID, msg.MessageID); err != nil {
		log.Printf("[DEBUG] failed to delete command message %d: %v", msg.MessageID, err)
	}

	var outcome moderation.Outcome
	switch cmd {
	case cmdSpam:
		res := a.moderator.MarkAsSpamAndBan(ctx, moderation.SpamBanIntent{User: user, Executor: executor, Reason: reason,
			Chat: chat, MessageID: target.MessageID, Text: messageText(target), HasMedia: hasMedia(target)})
		outcome = res.Outcome
	case cmdBan:
		res := a.moderator.BanUser(ctx, moderation.BanIntent{User: user, Executor: executor, Reason: reason})
		outcome = res.Outcome
	case cmdWarn:
		res := a.moderator.WarnUser(ctx, moderation.WarnIntent{User: user, Executor: executor, Reason: reason,
			Chat: &chat, MessageID: target.MessageID})
		outcome = res.Outcome
	case cmdTrust:
		res := a.moderator.TrustUser(ctx, moderation.TrustIntent{User: user, Executor: executor, Reason: reason})
		outcome = res.Outcome
	}
	if !outcome.Success {
		return fmt.Errorf("%s on %s failed: %s", cmd, user, outcome.ErrorMessage)
	}
	log.Printf("[INFO] %s applied to %s by %s in %s", cmd, user, executor, chat)
	return nil
}

// commandOf returns the command part of the text without bot mention
func commandOf(text string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], "/") {
		return ""
	}
	cmd, _, _ := strings.Cut(fields[0], "@")
	return strings.ToLower(cmd)
}
