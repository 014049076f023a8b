package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// AuditLog is a storage for moderation audit records
type AuditLog struct {
	*engine.SQL
	engine.RWLocker
}

// AuditAction is a kind of audited moderation action
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

// AuditRecord is a single audit entry, ChatID 0 means global action
type AuditRecord struct {
	ID        string      `db:"id" json:"id"`
	GID       string      `db:"gid" json:"-"`
	Action    AuditAction `db:"action" json:"action"`
	UserID    int64       `db:"user_id" json:"user_id"`
	UserName  string      `db:"user_name" json:"user_name,omitempty"`
	ChatID    int64       `db:"chat_id" json:"chat_id,omitempty"`
	Actor     string      `db:"actor" json:"actor"`
	ActorKind string      `db:"actor_kind" json:"actor_kind"`
	Reason    string      `db:"reason" json:"reason,omitempty"`
	Details   string      `db:"details" json:"details,omitempty"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}

// audit command constants
const (
	CmdCreateAuditTable engine.DBCmd = iota + 800
	CmdCreateAuditIndexes
	CmdAddAudit
	CmdListAuditByUser
	CmdLastGlobalBanState
)

var auditQueries = engine.NewQueryMap().
	Add(CmdCreateAuditTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS audit_log (
            id TEXT PRIMARY KEY,
            gid TEXT NOT NULL DEFAULT '',
            action TEXT NOT NULL,
            user_id INTEGER NOT NULL,
            user_name TEXT NOT NULL DEFAULT '',
            chat_id INTEGER NOT NULL DEFAULT 0,
            actor TEXT NOT NULL,
            actor_kind TEXT NOT NULL,
            reason TEXT NOT NULL DEFAULT '',
            details TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS audit_log (
            id TEXT PRIMARY KEY,
            gid TEXT NOT NULL DEFAULT '',
            action TEXT NOT NULL,
            user_id BIGINT NOT NULL,
            user_name TEXT NOT NULL DEFAULT '',
            chat_id BIGINT NOT NULL DEFAULT 0,
            actor TEXT NOT NULL,
            actor_kind TEXT NOT NULL,
            reason TEXT NOT NULL DEFAULT '',
            details TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
	}).
	AddSame(CmdCreateAuditIndexes, `
        CREATE INDEX IF NOT EXISTS idx_audit_user_time ON audit_log(gid, user_id, created_at DESC);
        CREATE INDEX IF NOT EXISTS idx_audit_action ON audit_log(gid, action)
    `).
	AddSame(CmdAddAudit, `INSERT INTO audit_log (id, gid, action, user_id, user_name, chat_id, actor, actor_kind,
            reason, details, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`).
	AddSame(CmdListAuditByUser, "SELECT * FROM audit_log WHERE gid = ? AND user_id = ? ORDER BY created_at DESC LIMIT ?").
	AddSame(CmdLastGlobalBanState, `SELECT action FROM audit_log WHERE gid = ? AND user_id = ? AND chat_id = 0
            AND action IN ('ban', 'spam_ban', 'unban') ORDER BY created_at DESC LIMIT 1`)

// NewAuditLog creates a new AuditLog storage
func NewAuditLog(ctx context.Context, db *engine.SQL) (*AuditLog, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &AuditLog{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{
		Name:          "audit_log",
		CreateTable:   CmdCreateAuditTable,
		CreateIndexes: CmdCreateAuditIndexes,
		MigrateFunc:   noMigration,
		QueriesMap:    auditQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init audit storage: %w", err)
	}
	return res, nil
}

// Add stores audit record, sets id and time if not set. Returns the stored record.
func (a *AuditLog) Add(ctx context.Context, rec AuditRecord) (AuditRecord, error) {
	a.Lock()
	defer a.Unlock()

	query, err := pick(a.SQL, auditQueries, CmdAddAudit)
	if err != nil {
		return AuditRecord{}, err
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}
	rec.GID = a.GID()
	if _, err := a.ExecContext(ctx, query, rec.ID, rec.GID, rec.Action, rec.UserID, rec.UserName, rec.ChatID,
		rec.Actor, rec.ActorKind, rec.Reason, rec.Details, rec.CreatedAt); err != nil {
		return AuditRecord{}, fmt.Errorf("failed to insert audit record: %w", err)
	}
	return rec, nil
}

// ListByUser returns latest audit records for the user, newest first
func (a *AuditLog) ListByUser(ctx context.Context, userID int64, limit int) ([]AuditRecord, error) {
	a.RLock()
	defer a.RUnlock()

	query, err := pick(a.SQL, auditQueries, CmdListAuditByUser)
	if err != nil {
		return nil, err
	}
	res := []AuditRecord{}
	if err := a.SelectContext(ctx, &res, query, a.GID(), userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list audit for user %d: %w", userID, err)
	}
	return res, nil
}

// IsGloballyBanned reports whether the latest global ban-related record of the user is a ban
func (a *AuditLog) IsGloballyBanned(ctx context.Context, userID int64) (bool, error) {
	a.RLock()
	defer a.RUnlock()

	query, err := pick(a.SQL, auditQueries, CmdLastGlobalBanState)
	if err != nil {
		return false, err
	}
	var actions []AuditAction
	if err := a.SelectContext(ctx, &actions, query, a.GID(), userID); err != nil {
		return false, fmt.Errorf("failed to get ban state for user %d: %w", userID, err)
	}
	if len(actions) == 0 {
		return false, nil
	}
	return actions[0] == AuditBan || actions[0] == AuditSpamBan, nil
}
