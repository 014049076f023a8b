package moderation

import (
	"context"
	"time"

	"github.com/umputun/tg-moderator/app/config"
)

//go:generate moq --out mocks/ban_handler.go --pkg mocks --with-resets --skip-ensure . BanHandler
//go:generate moq --out mocks/restrict_handler.go --pkg mocks --with-resets --skip-ensure . RestrictHandler
//go:generate moq --out mocks/warn_handler.go --pkg mocks --with-resets --skip-ensure . WarnHandler
//go:generate moq --out mocks/trust_handler.go --pkg mocks --with-resets --skip-ensure . TrustHandler
//go:generate moq --out mocks/message_handler.go --pkg mocks --with-resets --skip-ensure . MessageHandler
//go:generate moq --out mocks/auditor.go --pkg mocks --with-resets --skip-ensure . Auditor
//go:generate moq --out mocks/notifier.go --pkg mocks --with-resets --skip-ensure . Notifier
//go:generate moq --out mocks/trainer.go --pkg mocks --with-resets --skip-ensure . Trainer
//go:generate moq --out mocks/report_opener.go --pkg mocks --with-resets --skip-ensure . ReportOpener
//go:generate moq --out mocks/warning_config.go --pkg mocks --with-resets --skip-ensure . WarningConfig

// BanHandler applies and lifts bans. Nil chat means all managed chats.
// For global actions the returned Fanout is filled even with an error.
type BanHandler interface {
	Ban(ctx context.Context, user UserIdentity, chat *ChatIdentity) (Fanout, error)
	TempBan(ctx context.Context, user UserIdentity, chat *ChatIdentity, d time.Duration) (Fanout, time.Time, error)
	Unban(ctx context.Context, user UserIdentity, chat *ChatIdentity) (Fanout, error)
	Kick(ctx context.Context, user UserIdentity, chat ChatIdentity) error
}

// RestrictHandler switches members to read-only and back
type RestrictHandler interface {
	Restrict(ctx context.Context, user UserIdentity, chat *ChatIdentity, d time.Duration) (Fanout, time.Time, error)
	RestorePermissions(ctx context.Context, user UserIdentity, chat ChatIdentity) error
}

// WarnHandler records a warning and returns the user's warning count after it
type WarnHandler interface {
	Warn(ctx context.Context, user UserIdentity, chat *ChatIdentity, executor Actor, reason string, msgID int) (int, error)
}

// TrustHandler manages users exempt from automatic moderation
type TrustHandler interface {
	Trust(ctx context.Context, user UserIdentity, executor Actor, reason string) error
	Untrust(ctx context.Context, user UserIdentity) (wasTrusted bool, err error)
}

// MessageHandler manages chat messages. Delete treats an already deleted message as success.
type MessageHandler interface {
	EnsureExists(ctx context.Context, chat ChatIdentity, msgID int, user UserIdentity, text string, hasMedia bool) error
	Delete(ctx context.Context, chat ChatIdentity, msgID int) error
}

// Auditor writes audit records
type Auditor interface {
	Record(ctx context.Context, entry AuditEntry) error
}

// Notifier delivers notifications to a user or to chat admins. Nil chat means the global admin chat.
type Notifier interface {
	NotifyUser(ctx context.Context, user UserIdentity, chat *ChatIdentity, text string) error
	NotifyAdmins(ctx context.Context, chat *ChatIdentity, text string) error
}

// Trainer feeds the spam detection subsystem
type Trainer interface {
	AddSpamSample(ctx context.Context, user UserIdentity, chat ChatIdentity, text string, executor Actor) error
}

// ReportOpener opens a review report for admins, returns report id
type ReportOpener interface {
	OpenReport(ctx context.Context, req ReportRequest) (int64, error)
}

// WarningConfig returns effective per-chat warning policy, chatID 0 for global
type WarningConfig interface {
	GetEffective(ctx context.Context, chatID int64) (config.WarningSystem, error)
}

// AuditAction is the kind of audited action
type AuditAction string

// enum of audit actions
const (
	AuditBan                AuditAction = "ban"
	AuditTempBan            AuditAction = "tempban"
	AuditUnban              AuditAction = "unban"
	AuditWarn               AuditAction = "warn"
	AuditRestrict           AuditAction = "restrict"
	AuditRestorePermissions AuditAction = "restore_permissions"
	AuditKick               AuditAction = "kick"
	AuditTrust              AuditAction = "trust"
	AuditUntrust            AuditAction = "untrust"
	AuditDelete             AuditAction = "delete"
	AuditSpamBan            AuditAction = "spam_ban"
	AuditSyncBan            AuditAction = "sync_ban"
	AuditReport             AuditAction = "report"
)

// AuditEntry is a single audit record
type AuditEntry struct {
	Action  AuditAction
	User    UserIdentity
	Chat    *ChatIdentity
	Actor   Actor
	Reason  string
	Details string
}

// ReportRequest describes a report opened on behalf of an automatic detector.
// Text is the reported message as is, Reason and Violations explain the verdict.
type ReportRequest struct {
	User       UserIdentity
	Chat       ChatIdentity
	MessageID  int
	Reporter   Actor
	Text       string
	Reason     string
	Violations []string
}
