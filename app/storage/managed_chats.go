package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// ManagedChats is a storage for chats administered by the bot
type ManagedChats struct {
	*engine.SQL
	engine.RWLocker
}

// HealthStatus is the last known health of a managed chat
type HealthStatus string

// enum of health statuses
const (
	HealthUnknown HealthStatus = "unknown"
	HealthHealthy HealthStatus = "healthy"
	HealthWarning HealthStatus = "warning"
	HealthError   HealthStatus = "error"
)

// ManagedChat is a per-chat administrative record
type ManagedChat struct {
	ChatID          int64        `db:"chat_id"`
	GID             string       `db:"gid"`
	Title           string       `db:"title"`
	IsActive        bool         `db:"is_active"`
	IsDeleted       bool         `db:"is_deleted"`
	HealthStatus    HealthStatus `db:"health_status"`
	LastHealthCheck sql.NullTime `db:"last_health_check"`
	BotCanRestrict  bool         `db:"bot_can_restrict"`
	BotCanDelete    bool         `db:"bot_can_delete"`
	AddedAt         time.Time    `db:"added_at"`
}

// ChatHealth is a health summary used to decide if chat can take part in fan-out
type ChatHealth struct {
	ChatID         int64        `db:"chat_id"`
	HealthStatus   HealthStatus `db:"health_status"`
	BotCanRestrict bool         `db:"bot_can_restrict"`
}

// managed chats command constants
const (
	CmdCreateManagedChatsTable engine.DBCmd = iota + 700
	CmdCreateManagedChatsIndexes
	CmdUpsertManagedChat
	CmdListManagedChats
	CmdGetManagedChat
	CmdSetManagedChatActive
	CmdMarkManagedChatDeleted
	CmdUpdateManagedChatHealth
	CmdManagedChatsHealth
	CmdMarkManagedChatHealthUnknown
)

var managedChatsQueries = engine.NewQueryMap().
	Add(CmdCreateManagedChatsTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS managed_chats (
            chat_id INTEGER NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            title TEXT NOT NULL DEFAULT '',
            is_active BOOLEAN NOT NULL DEFAULT 1,
            is_deleted BOOLEAN NOT NULL DEFAULT 0,
            health_status TEXT NOT NULL DEFAULT 'unknown',
            last_health_check TIMESTAMP NULL,
            bot_can_restrict BOOLEAN NOT NULL DEFAULT 1,
            bot_can_delete BOOLEAN NOT NULL DEFAULT 1,
            added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (gid, chat_id)
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS managed_chats (
            chat_id BIGINT NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            title TEXT NOT NULL DEFAULT '',
            is_active BOOLEAN NOT NULL DEFAULT true,
            is_deleted BOOLEAN NOT NULL DEFAULT false,
            health_status TEXT NOT NULL DEFAULT 'unknown',
            last_health_check TIMESTAMP NULL,
            bot_can_restrict BOOLEAN NOT NULL DEFAULT true,
            bot_can_delete BOOLEAN NOT NULL DEFAULT true,
            added_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (gid, chat_id)
        )`,
	}).
	AddSame(CmdCreateManagedChatsIndexes, `
        CREATE INDEX IF NOT EXISTS idx_managed_chats_active ON managed_chats(gid, is_active, is_deleted)
    `).
	AddSame(CmdUpsertManagedChat, `INSERT INTO managed_chats (chat_id, gid, title, is_active, is_deleted, added_at)
        VALUES (?, ?, ?, true, false, ?)
        ON CONFLICT (gid, chat_id) DO UPDATE SET title = excluded.title, is_active = true, is_deleted = false`).
	AddSame(CmdListManagedChats, "SELECT * FROM managed_chats WHERE gid = ? ORDER BY chat_id").
	AddSame(CmdGetManagedChat, "SELECT * FROM managed_chats WHERE gid = ? AND chat_id = ?").
	AddSame(CmdSetManagedChatActive, "UPDATE managed_chats SET is_active = ? WHERE gid = ? AND chat_id = ?").
	AddSame(CmdMarkManagedChatDeleted, "UPDATE managed_chats SET is_deleted = true, is_active = false WHERE gid = ? AND chat_id = ?").
	AddSame(CmdUpdateManagedChatHealth, `UPDATE managed_chats SET health_status = ?, bot_can_restrict = ?, bot_can_delete = ?,
        last_health_check = ? WHERE gid = ? AND chat_id = ?`).
	AddSame(CmdMarkManagedChatHealthUnknown, `UPDATE managed_chats SET health_status = 'unknown', last_health_check = ?
        WHERE gid = ? AND chat_id = ?`).
	AddSame(CmdManagedChatsHealth, "SELECT chat_id, health_status, bot_can_restrict FROM managed_chats WHERE gid = ? AND chat_id IN (?)")

// NewManagedChats creates a new ManagedChats storage
func NewManagedChats(ctx context.Context, db *engine.SQL) (*ManagedChats, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &ManagedChats{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{
		Name:          "managed_chats",
		CreateTable:   CmdCreateManagedChatsTable,
		CreateIndexes: CmdCreateManagedChatsIndexes,
		MigrateFunc:   noMigration,
		QueriesMap:    managedChatsQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init managed chats storage: %w", err)
	}
	return res, nil
}

// Upsert adds a chat or refreshes its title, re-activates a chat seen again after removal
func (m *ManagedChats) Upsert(ctx context.Context, chatID int64, title string) error {
	m.Lock()
	defer m.Unlock()

	query, err := pick(m.SQL, managedChatsQueries, CmdUpsertManagedChat)
	if err != nil {
		return err
	}
	if _, err := m.ExecContext(ctx, query, chatID, m.GID(), title, time.Now()); err != nil {
		return fmt.Errorf("failed to upsert managed chat %d: %w", chatID, err)
	}
	return nil
}

// GetAllChats returns all chats of the group, including inactive and deleted
func (m *ManagedChats) GetAllChats(ctx context.Context) ([]ManagedChat, error) {
	m.RLock()
	defer m.RUnlock()

	query, err := pick(m.SQL, managedChatsQueries, CmdListManagedChats)
	if err != nil {
		return nil, err
	}
	var res []ManagedChat
	if err := m.SelectContext(ctx, &res, query, m.GID()); err != nil {
		return nil, fmt.Errorf("failed to list managed chats: %w", err)
	}
	return res, nil
}

// Get returns a single chat, ErrNotFound if missing
func (m *ManagedChats) Get(ctx context.Context, chatID int64) (ManagedChat, error) {
	m.RLock()
	defer m.RUnlock()

	query, err := pick(m.SQL, managedChatsQueries, CmdGetManagedChat)
	if err != nil {
		return ManagedChat{}, err
	}
	var res ManagedChat
	if err := m.GetContext(ctx, &res, query, m.GID(), chatID); err != nil {
		return ManagedChat{}, notFound(err, fmt.Sprintf("managed chat %d", chatID))
	}
	return res, nil
}

// SetActive enables or disables chat participation in global actions
func (m *ManagedChats) SetActive(ctx context.Context, chatID int64, active bool) error {
	return m.exec(ctx, CmdSetManagedChatActive, "set active", active, m.GID(), chatID)
}

// MarkDeleted marks chat as deleted, the bot was removed or chat is gone
func (m *ManagedChats) MarkDeleted(ctx context.Context, chatID int64) error {
	log.Printf("[INFO] managed chat %d marked as deleted", chatID)
	return m.exec(ctx, CmdMarkManagedChatDeleted, "mark deleted", m.GID(), chatID)
}

// UpdateHealth stores the result of a health check
func (m *ManagedChats) UpdateHealth(ctx context.Context, chatID int64, status HealthStatus, canRestrict, canDelete bool) error {
	return m.exec(ctx, CmdUpdateManagedChatHealth, "update health", status, canRestrict, canDelete, time.Now(), m.GID(), chatID)
}

// MarkHealthUnknown records a failed health check, bot rights from the last successful check are kept
func (m *ManagedChats) MarkHealthUnknown(ctx context.Context, chatID int64) error {
	return m.exec(ctx, CmdMarkManagedChatHealthUnknown, "mark health unknown", time.Now(), m.GID(), chatID)
}

// HealthStatuses returns health summary for the given chat ids, ids without record are not in the result
func (m *ManagedChats) HealthStatuses(ctx context.Context, ids []int64) (map[int64]ChatHealth, error) {
	res := make(map[int64]ChatHealth, len(ids))
	if len(ids) == 0 {
		return res, nil
	}

	m.RLock()
	defer m.RUnlock()

	raw, err := managedChatsQueries.Pick(m.Type(), CmdManagedChatsHealth)
	if err != nil {
		return nil, fmt.Errorf("failed to get query: %w", err)
	}
	query, args, err := sqlx.In(raw, m.GID(), ids)
	if err != nil {
		return nil, fmt.Errorf("failed to expand health query: %w", err)
	}
	var recs []ChatHealth
	if err := m.SelectContext(ctx, &recs, m.Adopt(query), args...); err != nil {
		return nil, fmt.Errorf("failed to get chats health: %w", err)
	}
	for _, r := range recs {
		res[r.ChatID] = r
	}
	return res, nil
}

func (m *ManagedChats) exec(ctx context.Context, cmd engine.DBCmd, op string, args ...any) error {
	m.Lock()
	defer m.Unlock()

	query, err := pick(m.SQL, managedChatsQueries, cmd)
	if err != nil {
		return err
	}
	if _, err := m.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to %s managed chat: %w", op, err)
	}
	return nil
}
