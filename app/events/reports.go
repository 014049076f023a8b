package events

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	tbapi "github.com/OvyFlash/telegram-bot-api"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
)

// callbackPrefix marks inline buttons of review messages, data is rpt:<context id>:<action id>
const callbackPrefix = "rpt:"

// ReviewAction is an action admin can take on a report, valid ids depend on the report type
type ReviewAction int

// content report actions
const (
	ActionSpam ReviewAction = iota
	ActionBan
	ActionWarn
	ActionDismiss
)

// exam failure actions
const (
	ActionApprove ReviewAction = iota
	ActionDeny
	ActionDenyAndBan
)

// reviewAction runs moderation for a pending report and returns notes for the review record
type reviewAction struct {
	label string
	run   func(ctx context.Context, m Moderator, rep storage.Report, reviewer moderation.Actor) (string, error)
}

// reviewActions is a table of valid actions per report type, index is the action id
var reviewActions = map[storage.ReportType][]reviewAction{
	storage.ReportContent: {
		ActionSpam:    {label: "spam", run: markSpam},
		ActionBan:     {label: "ban", run: banEverywhere},
		ActionWarn:    {label: "warn", run: warnInChat},
		ActionDismiss: {label: "dismiss", run: func(context.Context, Moderator, storage.Report, moderation.Actor) (string, error) {
			return "no action taken", nil
		}},
	},
	storage.ReportExamFailure: {
		ActionApprove:    {label: "approve", run: approveInChat},
		ActionDeny:       {label: "deny", run: kickFromChat},
		ActionDenyAndBan: {label: "deny and ban", run: banEverywhere},
	},
}

// actionsOf returns labels of valid actions for the report type, index is the action id
func actionsOf(t storage.ReportType) []string {
	res := make([]string, 0, len(reviewActions[t]))
	for _, a := range reviewActions[t] {
		res = append(res, a.label)
	}
	return res
}

// ReportCallbackService handles inline buttons of review messages. Each press moves a pending report to reviewed
// at most once, the callback context is consumed on every terminal path.
type ReportCallbackService struct {
	reports   ReportStore
	contexts  CallbackStore
	moderator Moderator
	messenger Messenger
}

// NewReportCallbackService makes ReportCallbackService
func NewReportCallbackService(reports ReportStore, contexts CallbackStore, moderator Moderator, messenger Messenger) *ReportCallbackService {
	return &ReportCallbackService{reports: reports, contexts: contexts, moderator: moderator, messenger: messenger}
}

// CanHandle checks if callback data belongs to review messages
func (s *ReportCallbackService) CanHandle(data string) bool {
	return strings.HasPrefix(data, callbackPrefix)
}

// Handle processes the review button press. Errors are returned for storage faults only,
// outcomes visible to admins are reported by editing the review message.
func (s *ReportCallbackService) Handle(ctx context.Context, query *tbapi.CallbackQuery) error {
	if query == nil {
		return nil
	}
	ctxID, actionID, ok := parseCallbackData(query.Data)
	if !ok {
		log.Printf("[DEBUG] ignore malformed review callback %q", query.Data)
		return nil
	}

	cc, err := s.contexts.GetByID(ctx, ctxID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.edit(ctx, query.Message, "⌛ review expired")
			return nil
		}
		return fmt.Errorf("failed to get callback context %d: %w", ctxID, err)
	}

	rep, err := s.reports.GetByID(ctx, cc.ReportID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.edit(ctx, query.Message, fmt.Sprintf("report %d not found", cc.ReportID))
			s.dropContext(ctx, cc.ID)
			return nil
		}
		return fmt.Errorf("failed to get report %d: %w", cc.ReportID, err)
	}

	if rep.Status != storage.ReportPending {
		s.edit(ctx, query.Message, handledText(rep))
		s.dropContext(ctx, cc.ID)
		return nil
	}

	actions := reviewActions[rep.Type]
	if actionID < 0 || actionID >= len(actions) {
		log.Printf("[WARN] invalid action %d for %s report %d", actionID, rep.Type, rep.ID)
		s.edit(ctx, query.Message, fmt.Sprintf("❌ invalid action %d", actionID))
		s.dropContext(ctx, cc.ID)
		return nil
	}
	action := actions[actionID]

	reviewer := moderation.FromSystem("unknown admin")
	if query.From != nil {
		reviewer = moderation.FromTelegramUser(query.From.ID, query.From.UserName)
	}
	notes, err := action.run(ctx, s.moderator, rep, reviewer)
	if err != nil {
		log.Printf("[WARN] review action %q on report %d failed: %v", action.label, rep.ID, err)
		s.edit(ctx, query.Message, fmt.Sprintf("❌ %s failed: %v", action.label, err))
		s.dropContext(ctx, cc.ID)
		return nil
	}

	updated, err := s.reports.TryUpdateStatus(ctx, rep.ID, storage.ReportPending, reviewer.DisplayName(), action.label, notes)
	if err != nil {
		// action already applied, buttons must not run it again
		s.edit(ctx, query.Message, fmt.Sprintf("⚠️ %s applied by %s, report status not saved", action.label, reviewer.DisplayName()))
		s.dropContext(ctx, cc.ID)
		return fmt.Errorf("failed to update status of report %d: %w", rep.ID, err)
	}
	if !updated {
		// resolved concurrently, the action above is not undone
		if fresh, err := s.reports.GetByID(ctx, rep.ID); err == nil {
			rep = fresh
		}
		log.Printf("[INFO] report %d already handled by %s", rep.ID, rep.ReviewedBy)
		s.edit(ctx, query.Message, handledText(rep))
		s.dropContext(ctx, cc.ID)
		return nil
	}

	log.Printf("[INFO] report %d reviewed by %s, action: %s", rep.ID, reviewer, action.label)
	s.dropContext(ctx, cc.ID)
	if rep.CommandMsgID != 0 {
		if err := s.messenger.DeleteMessage(ctx, rep.ChatID, rep.CommandMsgID); err != nil {
			log.Printf("[DEBUG] failed to delete report command message %d: %v", rep.CommandMsgID, err)
		}
	}
	s.edit(ctx, query.Message, fmt.Sprintf("✅ %s by %s", action.label, reviewer.DisplayName()))
	if rep.Type == storage.ReportContent && ReviewAction(actionID) == ActionDismiss && rep.MessageID != 0 {
		if _, err := s.messenger.SendMessage(ctx, rep.ChatID, "reviewed by admins, no action taken", rep.MessageID); err != nil {
			log.Printf("[WARN] failed to reply on dismissed report %d: %v", rep.ID, err)
		}
	}
	return nil
}

// edit appends status line to the review message. Media messages get caption edit.
func (s *ReportCallbackService) edit(ctx context.Context, msg *tbapi.Message, status string) {
	if msg == nil {
		return
	}
	text := status
	if orig := messageText(msg); orig != "" {
		text = orig + "\n\n" + status
	}
	var err error
	if hasMedia(msg) {
		err = s.messenger.EditCaption(ctx, msg.Chat.ID, msg.MessageID, text)
	} else {
		err = s.messenger.EditText(ctx, msg.Chat.ID, msg.MessageID, text)
	}
	if err != nil {
		log.Printf("[WARN] failed to edit review message %d: %v", msg.MessageID, err)
	}
}

func (s *ReportCallbackService) dropContext(ctx context.Context, id int64) {
	if err := s.contexts.Delete(ctx, id); err != nil {
		log.Printf("[WARN] failed to delete callback context %d: %v", id, err)
	}
}

// parseCallbackData extracts context and action ids from rpt:<context id>:<action id>
func parseCallbackData(data string) (ctxID int64, actionID int, ok bool) {
	if !strings.HasPrefix(data, callbackPrefix) {
		return 0, 0, false
	}
	parts := strings.SplitN(strings.TrimPrefix(data, callbackPrefix), ":", 2)
	if len(parts) < 2 {
		return 0, 0, false
	}
	ctxID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, false
	}
	actionID, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return ctxID, actionID, true
}

func handledText(rep storage.Report) string {
	if rep.ReviewedBy == "" {
		return "ℹ️ report already handled"
	}
	return fmt.Sprintf("ℹ️ already handled by %s, action: %s", rep.ReviewedBy, rep.ActionTaken)
}

func subjectOf(rep storage.Report) moderation.UserIdentity {
	return moderation.UserIdentity{ID: rep.SubjectUserID, Name: rep.SubjectUserName}
}

func chatOfReport(rep storage.Report) moderation.ChatIdentity {
	return moderation.ChatIdentity{ID: rep.ChatID, Title: rep.ChatTitle}
}

func reviewReason(rep storage.Report) string {
	return fmt.Sprintf("report %d reviewed", rep.ID)
}

func markSpam(ctx context.Context, m Moderator, rep storage.Report, reviewer moderation.Actor) (string, error) {
	res := m.MarkAsSpamAndBan(ctx, moderation.SpamBanIntent{User: subjectOf(rep), Executor: reviewer,
		Reason: reviewReason(rep), Chat: chatOfReport(rep), MessageID: rep.MessageID, Text: rep.Text})
	if !res.Success {
		return "", errors.New(res.ErrorMessage)
	}
	return fmt.Sprintf("banned in %d chats, message deleted: %v", res.ChatsAffected, res.MessageDeleted), nil
}

func banEverywhere(ctx context.Context, m Moderator, rep storage.Report, reviewer moderation.Actor) (string, error) {
	res := m.BanUser(ctx, moderation.BanIntent{User: subjectOf(rep), Executor: reviewer, Reason: reviewReason(rep)})
	if !res.Success {
		return "", errors.New(res.ErrorMessage)
	}
	return fmt.Sprintf("banned in %d chats, failed in %d", res.ChatsAffected, res.ChatsFailed), nil
}

func warnInChat(ctx context.Context, m Moderator, rep storage.Report, reviewer moderation.Actor) (string, error) {
	chat := chatOfReport(rep)
	res := m.WarnUser(ctx, moderation.WarnIntent{User: subjectOf(rep), Executor: reviewer,
		Reason: reviewReason(rep), Chat: &chat, MessageID: rep.MessageID})
	if !res.Success {
		return "", errors.New(res.ErrorMessage)
	}
	if res.AutoBanTriggered {
		return fmt.Sprintf("warning %d, auto-banned", res.WarningCount), nil
	}
	return fmt.Sprintf("warning %d", res.WarningCount), nil
}

func approveInChat(ctx context.Context, m Moderator, rep storage.Report, reviewer moderation.Actor) (string, error) {
	res := m.RestoreUserPermissions(ctx, moderation.RestorePermissionsIntent{User: subjectOf(rep), Executor: reviewer,
		Reason: reviewReason(rep), Chat: chatOfReport(rep)})
	if !res.Success {
		return "", errors.New(res.ErrorMessage)
	}
	return "permissions restored", nil
}

func kickFromChat(ctx context.Context, m Moderator, rep storage.Report, reviewer moderation.Actor) (string, error) {
	res := m.KickUserFromChat(ctx, moderation.KickIntent{User: subjectOf(rep), Executor: reviewer,
		Reason: reviewReason(rep), Chat: chatOfReport(rep)})
	if !res.Success {
		return "", errors.New(res.ErrorMessage)
	}
	return "kicked", nil
}
