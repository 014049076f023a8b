package moderation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hashicorp/go-multierror"
)

// system accounts of the messenger, never moderated
const (
	serviceNotificationsID int64 = 777000     // service notifications, forwards from linked channel
	anonymousAdminBotID    int64 = 1087968824 // GroupAnonymousBot, posts of anonymous admins
	channelBotID           int64 = 136817688  // Channel_Bot, posts on behalf of channels
)

// Deps holds collaborators of the Orchestrator, all are required
type Deps struct {
	Bans         BanHandler
	Restrictions RestrictHandler
	Warnings     WarnHandler
	Trust        TrustHandler
	Messages     MessageHandler
	Audit        Auditor
	Notify       Notifier
	Training     Trainer
	Reports      ReportOpener
	Config       WarningConfig
	BotID        int64 // bot's own user id, protected like system accounts
}

// Orchestrator composes handlers into moderation workflows and owns the business rules.
// Entry points never return errors, the outcome is in the result.
type Orchestrator struct {
	Deps
	systemIDs map[int64]bool
}

// NewOrchestrator makes an Orchestrator, fails if any collaborator is missing
func NewOrchestrator(deps Deps) (*Orchestrator, error) {
	var errs *multierror.Error
	check := func(ok bool, name string) {
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("%s handler is required", name))
		}
	}
	check(deps.Bans != nil, "ban")
	check(deps.Restrictions != nil, "restrict")
	check(deps.Warnings != nil, "warn")
	check(deps.Trust != nil, "trust")
	check(deps.Messages != nil, "message")
	check(deps.Audit != nil, "audit")
	check(deps.Notify != nil, "notification")
	check(deps.Training != nil, "training")
	check(deps.Reports != nil, "report")
	check(deps.Config != nil, "warning config")
	if err := errs.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("can't make orchestrator: %w", err)
	}

	res := &Orchestrator{Deps: deps, systemIDs: map[int64]bool{
		serviceNotificationsID: true,
		anonymousAdminBotID:    true,
		channelBotID:           true,
	}}
	if deps.BotID != 0 {
		res.systemIDs[deps.BotID] = true
	}
	return res, nil
}

// IsSystemAccount checks if user id belongs to a protected system account
func (o *Orchestrator) IsSystemAccount(userID int64) bool {
	return o.systemIDs[userID]
}

// BanUser bans user in a chat or everywhere. A successful ban always revokes trust.
func (o *Orchestrator) BanUser(ctx context.Context, in BanIntent) BanResult {
	if o.IsSystemAccount(in.User.ID) {
		return BanResult{Outcome: o.rejectSystem("ban", in.User)}
	}

	fan, err := o.Bans.Ban(ctx, in.User, in.Chat)
	if err != nil {
		log.Printf("[WARN] failed to ban %s in %s: %v", in.User, scope(in.Chat), err)
		return BanResult{Outcome: failed("ban failed: %v", err), Fanout: fan}
	}
	log.Printf("[INFO] %s banned in %s by %s, affected %d, failed %d",
		in.User, scope(in.Chat), in.Executor.DisplayName(), fan.ChatsAffected, fan.ChatsFailed)

	res := BanResult{Outcome: succeeded(), Fanout: fan}
	res.TrustRemoved = o.revokeTrust(ctx, in.User, in.Executor, "banned: "+in.Reason)
	o.safeAudit(ctx, AuditEntry{Action: AuditBan, User: in.User, Chat: in.Chat, Actor: in.Executor, Reason: in.Reason,
		Details: fmt.Sprintf("chats affected: %d, failed: %d", fan.ChatsAffected, fan.ChatsFailed)})
	o.safeNotify("admins", func() error {
		return o.Notify.NotifyAdmins(ctx, in.Chat, fmt.Sprintf("%s banned in %s by %s: %s",
			in.User, scope(in.Chat), in.Executor.DisplayName(), in.Reason))
	})
	return res
}

// WarnUser warns user and bans automatically once the chat's warning threshold is reached
func (o *Orchestrator) WarnUser(ctx context.Context, in WarnIntent) WarnResult {
	if o.IsSystemAccount(in.User.ID) {
		return WarnResult{Outcome: o.rejectSystem("warn", in.User)}
	}

	count, err := o.Warnings.Warn(ctx, in.User, in.Chat, in.Executor, in.Reason, in.MessageID)
	if err != nil {
		log.Printf("[WARN] failed to warn %s: %v", in.User, err)
		return WarnResult{Outcome: failed("warn failed: %v", err)}
	}
	res := WarnResult{Outcome: succeeded(), WarningCount: count}

	cfg, err := o.Config.GetEffective(ctx, chatID(in.Chat))
	if err != nil {
		log.Printf("[WARN] can't get warning config for %s, auto-ban skipped: %v", scope(in.Chat), err)
	}
	if err == nil && cfg.AutoBanEnabled && count >= cfg.AutoBanThreshold {
		ban := o.BanUser(ctx, BanIntent{User: in.User, Executor: AutoBan, Chat: in.Chat,
			Reason: fmt.Sprintf("warning threshold reached (%d/%d), last warning: %s", count, cfg.AutoBanThreshold, in.Reason)})
		res.AutoBanTriggered = ban.Success
		if !ban.Success {
			log.Printf("[WARN] auto-ban of %s failed: %s", in.User, ban.ErrorMessage)
		}
	}

	text := fmt.Sprintf("You have been warned (%d): %s", count, in.Reason)
	if res.AutoBanTriggered {
		text += "\nWarning limit reached, you are banned."
	}
	res.UserNotified = o.safeNotify("user", func() error { return o.Notify.NotifyUser(ctx, in.User, in.Chat, text) })
	o.safeAudit(ctx, AuditEntry{Action: AuditWarn, User: in.User, Chat: in.Chat, Actor: in.Executor, Reason: in.Reason,
		Details: fmt.Sprintf("count: %d, auto-ban: %v", count, res.AutoBanTriggered)})
	return res
}

// TempBanUser bans user for the given duration
func (o *Orchestrator) TempBanUser(ctx context.Context, in TempBanIntent) TempBanResult {
	if o.IsSystemAccount(in.User.ID) {
		return TempBanResult{Outcome: o.rejectSystem("temp-ban", in.User)}
	}

	fan, expires, err := o.Bans.TempBan(ctx, in.User, in.Chat, in.Duration)
	if err != nil {
		log.Printf("[WARN] failed to temp-ban %s in %s: %v", in.User, scope(in.Chat), err)
		return TempBanResult{Outcome: failed("temporary ban failed: %v", err), Fanout: fan}
	}

	res := TempBanResult{Outcome: succeeded(), Fanout: fan, ExpiresAt: expires}
	res.UserNotified = o.safeNotify("user", func() error {
		return o.Notify.NotifyUser(ctx, in.User, in.Chat, fmt.Sprintf("You are banned for %s, until %s: %s",
			in.Duration, expires.UTC().Format(time.RFC1123), in.Reason))
	})
	o.safeAudit(ctx, AuditEntry{Action: AuditTempBan, User: in.User, Chat: in.Chat, Actor: in.Executor, Reason: in.Reason,
		Details: fmt.Sprintf("duration: %s, expires: %s", in.Duration, expires.UTC().Format(time.RFC3339))})
	return res
}

// RestrictUser makes user read-only for the given duration
func (o *Orchestrator) RestrictUser(ctx context.Context, in RestrictIntent) RestrictResult {
	if o.IsSystemAccount(in.User.ID) {
		return RestrictResult{Outcome: o.rejectSystem("restrict", in.User)}
	}

	fan, expires, err := o.Restrictions.Restrict(ctx, in.User, in.Chat, in.Duration)
	if err != nil {
		log.Printf("[WARN] failed to restrict %s in %s: %v", in.User, scope(in.Chat), err)
		return RestrictResult{Outcome: failed("restriction failed: %v", err), Fanout: fan}
	}

	res := RestrictResult{Outcome: succeeded(), Fanout: fan, ExpiresAt: expires}
	res.UserNotified = o.safeNotify("user", func() error {
		return o.Notify.NotifyUser(ctx, in.User, in.Chat, fmt.Sprintf("You are muted for %s, until %s: %s",
			in.Duration, expires.UTC().Format(time.RFC1123), in.Reason))
	})
	o.safeAudit(ctx, AuditEntry{Action: AuditRestrict, User: in.User, Chat: in.Chat, Actor: in.Executor, Reason: in.Reason,
		Details: fmt.Sprintf("duration: %s, expires: %s", in.Duration, expires.UTC().Format(time.RFC3339))})
	return res
}

// MarkAsSpamAndBan removes a spam message and bans its author everywhere.
// Message removal is soft, the ban is critical.
func (o *Orchestrator) MarkAsSpamAndBan(ctx context.Context, in SpamBanIntent) SpamBanResult {
	if o.IsSystemAccount(in.User.ID) {
		return SpamBanResult{Outcome: o.rejectSystem("spam-ban", in.User)}
	}

	if err := o.Messages.EnsureExists(ctx, in.Chat, in.MessageID, in.User, in.Text, in.HasMedia); err != nil {
		log.Printf("[WARN] failed to backfill message %d in %s: %v", in.MessageID, in.Chat, err)
	}

	res := SpamBanResult{}
	if err := o.Messages.Delete(ctx, in.Chat, in.MessageID); err != nil {
		log.Printf("[WARN] failed to delete spam message %d in %s, continue with ban: %v", in.MessageID, in.Chat, err)
	} else {
		res.MessageDeleted = true
	}

	fan, err := o.Bans.Ban(ctx, in.User, nil)
	res.Fanout = fan
	if err != nil {
		log.Printf("[WARN] failed to ban spammer %s: %v", in.User, err)
		res.Outcome = failed("ban failed: %v", err)
		return res
	}
	res.Outcome = succeeded()
	log.Printf("[INFO] spammer %s banned by %s, affected %d chats", in.User, in.Executor.DisplayName(), fan.ChatsAffected)

	res.TrustRemoved = o.revokeTrust(ctx, in.User, in.Executor, "spam: "+in.Reason)
	if in.Text != "" {
		if err := o.Training.AddSpamSample(ctx, in.User, in.Chat, in.Text, in.Executor); err != nil {
			log.Printf("[WARN] failed to add spam sample from %s: %v", in.User, err)
		} else {
			res.TrainingSampleAdded = true
		}
	}
	chat := in.Chat
	o.safeAudit(ctx, AuditEntry{Action: AuditSpamBan, User: in.User, Chat: &chat, Actor: in.Executor, Reason: in.Reason,
		Details: fmt.Sprintf("message: %d, deleted: %v, chats affected: %d", in.MessageID, res.MessageDeleted, fan.ChatsAffected)})
	return res
}

// DeleteMessage removes a message, already deleted message counts as removed
func (o *Orchestrator) DeleteMessage(ctx context.Context, in DeleteMessageIntent) DeleteResult {
	if err := o.Messages.Delete(ctx, in.Chat, in.MessageID); err != nil {
		log.Printf("[WARN] failed to delete message %d in %s: %v", in.MessageID, in.Chat, err)
		return DeleteResult{Outcome: failed("delete failed: %v", err)}
	}
	o.auditDelete(ctx, in.User, in.Chat, in.Executor, in.Reason, in.MessageID)
	return DeleteResult{Outcome: succeeded(), MessageDeleted: true}
}

// HandleMalwareViolation removes a message flagged by the scanner, opens a report and alerts admins.
// Never warns or bans the author, flagged content can be benign.
func (o *Orchestrator) HandleMalwareViolation(ctx context.Context, in MalwareViolationIntent) ViolationResult {
	res := ViolationResult{Outcome: succeeded()}
	if err := o.Messages.Delete(ctx, in.Chat, in.MessageID); err != nil {
		log.Printf("[WARN] failed to delete malware message %d in %s: %v", in.MessageID, in.Chat, err)
		res.Outcome = failed("delete failed: %v", err)
	} else {
		res.MessageDeleted = true
		o.auditDelete(ctx, in.User, in.Chat, in.Executor, in.Reason, in.MessageID)
	}

	reportID, err := o.Reports.OpenReport(ctx, ReportRequest{User: in.User, Chat: in.Chat, MessageID: in.MessageID,
		Reporter: in.Executor, Text: in.Text, Reason: in.Reason, Violations: in.Violations})
	if err != nil {
		log.Printf("[WARN] failed to open malware report for %s: %v", in.User, err)
	} else {
		res.ReportCreated = true
		chat := in.Chat
		o.safeAudit(ctx, AuditEntry{Action: AuditReport, User: in.User, Chat: &chat, Actor: in.Executor,
			Reason: in.Reason, Details: fmt.Sprintf("report: %d, violations: %s", reportID, strings.Join(in.Violations, ", "))})
	}

	chat := in.Chat
	res.AdminsNotified = o.safeNotify("admins", func() error {
		return o.Notify.NotifyAdmins(ctx, &chat, fmt.Sprintf("malware from %s in %s, message deleted: %v\n%s",
			in.User, in.Chat, res.MessageDeleted, strings.Join(in.Violations, "\n")))
	})
	return res
}

// HandleCriticalViolation removes a critical message and tells the author why.
// Never warns or bans the author.
func (o *Orchestrator) HandleCriticalViolation(ctx context.Context, in CriticalViolationIntent) ViolationResult {
	if err := o.Messages.Delete(ctx, in.Chat, in.MessageID); err != nil {
		log.Printf("[WARN] failed to delete critical message %d in %s: %v", in.MessageID, in.Chat, err)
		return ViolationResult{Outcome: failed("delete failed: %v", err)}
	}
	res := ViolationResult{Outcome: succeeded(), MessageDeleted: true}
	o.auditDelete(ctx, in.User, in.Chat, in.Executor, in.Reason, in.MessageID)

	chat := in.Chat
	res.UserNotified = o.safeNotify("user", func() error {
		return o.Notify.NotifyUser(ctx, in.User, &chat, fmt.Sprintf("Your message was removed: %s\n%s",
			in.Reason, strings.Join(in.Violations, "\n")))
	})
	return res
}

// SyncBanToChat applies a global ban to a chat where the banned user just showed up
func (o *Orchestrator) SyncBanToChat(ctx context.Context, in SyncBanIntent) BanResult {
	if o.IsSystemAccount(in.User.ID) {
		return BanResult{Outcome: o.rejectSystem("sync ban", in.User)}
	}
	chat := in.Chat
	fan, err := o.Bans.Ban(ctx, in.User, &chat)
	if err != nil {
		log.Printf("[WARN] failed to sync ban of %s to %s: %v", in.User, in.Chat, err)
		return BanResult{Outcome: failed("sync ban failed: %v", err), Fanout: fan}
	}
	o.safeAudit(ctx, AuditEntry{Action: AuditSyncBan, User: in.User, Chat: &chat, Actor: in.Executor, Reason: in.Reason})
	return BanResult{Outcome: succeeded(), Fanout: fan}
}

// TrustUser exempts user from automatic moderation
func (o *Orchestrator) TrustUser(ctx context.Context, in TrustIntent) ActionResult {
	if err := o.Trust.Trust(ctx, in.User, in.Executor, in.Reason); err != nil {
		log.Printf("[WARN] failed to trust %s: %v", in.User, err)
		return ActionResult{Outcome: failed("trust failed: %v", err)}
	}
	o.safeAudit(ctx, AuditEntry{Action: AuditTrust, User: in.User, Actor: in.Executor, Reason: in.Reason})
	return ActionResult{Outcome: succeeded()}
}

// UnbanUser lifts a ban, trust restoration failure doesn't fail the unban
func (o *Orchestrator) UnbanUser(ctx context.Context, in UnbanIntent) UnbanResult {
	fan, err := o.Bans.Unban(ctx, in.User, in.Chat)
	if err != nil {
		log.Printf("[WARN] failed to unban %s in %s: %v", in.User, scope(in.Chat), err)
		return UnbanResult{Outcome: failed("unban failed: %v", err), Fanout: fan}
	}
	res := UnbanResult{Outcome: succeeded(), Fanout: fan}
	o.safeAudit(ctx, AuditEntry{Action: AuditUnban, User: in.User, Chat: in.Chat, Actor: in.Executor, Reason: in.Reason,
		Details: fmt.Sprintf("chats affected: %d, failed: %d", fan.ChatsAffected, fan.ChatsFailed)})

	if in.RestoreTrust {
		if err := o.Trust.Trust(ctx, in.User, in.Executor, "unbanned: "+in.Reason); err != nil {
			log.Printf("[WARN] failed to restore trust of %s: %v", in.User, err)
		} else {
			res.TrustRestored = true
			o.safeAudit(ctx, AuditEntry{Action: AuditTrust, User: in.User, Actor: in.Executor, Reason: "trust restored on unban"})
		}
	}
	return res
}

// RestoreUserPermissions gives back default permissions in a chat
func (o *Orchestrator) RestoreUserPermissions(ctx context.Context, in RestorePermissionsIntent) ActionResult {
	if err := o.Restrictions.RestorePermissions(ctx, in.User, in.Chat); err != nil {
		log.Printf("[WARN] failed to restore permissions of %s in %s: %v", in.User, in.Chat, err)
		return ActionResult{Outcome: failed("restore permissions failed: %v", err)}
	}
	chat := in.Chat
	o.safeAudit(ctx, AuditEntry{Action: AuditRestorePermissions, User: in.User, Chat: &chat, Actor: in.Executor, Reason: in.Reason})
	return ActionResult{Outcome: succeeded()}
}

// KickUserFromChat removes user from a chat, the user can join again
func (o *Orchestrator) KickUserFromChat(ctx context.Context, in KickIntent) ActionResult {
	if o.IsSystemAccount(in.User.ID) {
		return ActionResult{Outcome: o.rejectSystem("kick", in.User)}
	}
	if err := o.Bans.Kick(ctx, in.User, in.Chat); err != nil {
		log.Printf("[WARN] failed to kick %s from %s: %v", in.User, in.Chat, err)
		return ActionResult{Outcome: failed("kick failed: %v", err)}
	}
	chat := in.Chat
	o.safeAudit(ctx, AuditEntry{Action: AuditKick, User: in.User, Chat: &chat, Actor: in.Executor, Reason: in.Reason})
	return ActionResult{Outcome: succeeded()}
}

func (o *Orchestrator) rejectSystem(op string, user UserIdentity) Outcome {
	log.Printf("[WARN] refused to %s %s, system account", op, user)
	return failed("can't %s system account %d", op, user.ID)
}

// revokeTrust removes user from trusted, returns true on success. Audited only if the user was trusted.
func (o *Orchestrator) revokeTrust(ctx context.Context, user UserIdentity, executor Actor, reason string) bool {
	wasTrusted, err := o.Trust.Untrust(ctx, user)
	if err != nil {
		log.Printf("[WARN] failed to revoke trust of %s: %v", user, err)
		return false
	}
	if wasTrusted {
		o.safeAudit(ctx, AuditEntry{Action: AuditUntrust, User: user, Actor: executor, Reason: reason})
	}
	return true
}

func (o *Orchestrator) auditDelete(ctx context.Context, user UserIdentity, chat ChatIdentity, executor Actor, reason string, msgID int) {
	o.safeAudit(ctx, AuditEntry{Action: AuditDelete, User: user, Chat: &chat, Actor: executor, Reason: reason,
		Details: fmt.Sprintf("message: %d", msgID)})
}

// safeAudit writes audit record, failures are logged and dropped
func (o *Orchestrator) safeAudit(ctx context.Context, entry AuditEntry) {
	if err := o.Audit.Record(ctx, entry); err != nil {
		log.Printf("[WARN] failed to audit %s of %s by %s: %v", entry.Action, entry.User, entry.Actor, err)
	}
}

// safeNotify runs notification, failures are logged and reported as false
func (o *Orchestrator) safeNotify(target string, fn func() error) bool {
	if err := fn(); err != nil {
		log.Printf("[WARN] failed to notify %s: %v", target, err)
		return false
	}
	return true
}
