package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// Warnings is a storage for user warnings
type Warnings struct {
	*engine.SQL
	engine.RWLocker
}

// Warning is a single warning issued to a user, ChatID 0 means a global warning
type Warning struct {
	ID        int64     `db:"id"`
	GID       string    `db:"gid"`
	UserID    int64     `db:"user_id"`
	ChatID    int64     `db:"chat_id"`
	Actor     string    `db:"actor"`
	Reason    string    `db:"reason"`
	MessageID int       `db:"message_id"`
	CreatedAt time.Time `db:"created_at"`
}

// warnings command constants
const (
	CmdCreateWarningsTable engine.DBCmd = iota + 900
	CmdCreateWarningsIndexes
	CmdAddWarning
	CmdCountWarningsInChat
	CmdCountWarningsAll
	CmdClearWarnings
)

var warningsQueries = engine.NewQueryMap().
	Add(CmdCreateWarningsTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS warnings (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            gid TEXT NOT NULL DEFAULT '',
            user_id INTEGER NOT NULL,
            chat_id INTEGER NOT NULL DEFAULT 0,
            actor TEXT NOT NULL DEFAULT '',
            reason TEXT NOT NULL DEFAULT '',
            message_id INTEGER NOT NULL DEFAULT 0,
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS warnings (
            id SERIAL PRIMARY KEY,
            gid TEXT NOT NULL DEFAULT '',
            user_id BIGINT NOT NULL,
            chat_id BIGINT NOT NULL DEFAULT 0,
            actor TEXT NOT NULL DEFAULT '',
            reason TEXT NOT NULL DEFAULT '',
            message_id INTEGER NOT NULL DEFAULT 0,
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
	}).
	AddSame(CmdCreateWarningsIndexes, `
        CREATE INDEX IF NOT EXISTS idx_warnings_user_chat ON warnings(gid, user_id, chat_id)
    `).
	AddSame(CmdAddWarning, `INSERT INTO warnings (gid, user_id, chat_id, actor, reason, message_id, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?)`).
	AddSame(CmdCountWarningsInChat, "SELECT COUNT(*) FROM warnings WHERE gid = ? AND user_id = ? AND chat_id = ?").
	AddSame(CmdCountWarningsAll, "SELECT COUNT(*) FROM warnings WHERE gid = ? AND user_id = ?").
	AddSame(CmdClearWarnings, "DELETE FROM warnings WHERE gid = ? AND user_id = ?")

// NewWarnings creates a new Warnings storage
func NewWarnings(ctx context.Context, db *engine.SQL) (*Warnings, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &Warnings{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{
		Name:          "warnings",
		CreateTable:   CmdCreateWarningsTable,
		CreateIndexes: CmdCreateWarningsIndexes,
		MigrateFunc:   noMigration,
		QueriesMap:    warningsQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init warnings storage: %w", err)
	}
	return res, nil
}

// Warn stores a warning and returns the count of user's warnings after the insert.
// The count is per chat for chat warnings and across all chats for global ones.
func (w *Warnings) Warn(ctx context.Context, warn Warning) (int, error) {
	w.Lock()
	defer w.Unlock()

	tx, err := w.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

	insQuery, err := pick(w.SQL, warningsQueries, CmdAddWarning)
	if err != nil {
		return 0, err
	}
	if warn.CreatedAt.IsZero() {
		warn.CreatedAt = time.Now()
	}
	if _, err = tx.ExecContext(ctx, insQuery, w.GID(), warn.UserID, warn.ChatID, warn.Actor, warn.Reason,
		warn.MessageID, warn.CreatedAt); err != nil {
		return 0, fmt.Errorf("failed to insert warning: %w", err)
	}

	countCmd, args := CmdCountWarningsAll, []any{w.GID(), warn.UserID}
	if warn.ChatID != 0 {
		countCmd, args = CmdCountWarningsInChat, append(args, warn.ChatID)
	}
	countQuery, err := pick(w.SQL, warningsQueries, countCmd)
	if err != nil {
		return 0, err
	}
	var count int
	if err = tx.GetContext(ctx, &count, countQuery, args...); err != nil {
		return 0, fmt.Errorf("failed to count warnings: %w", err)
	}
	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit warning: %w", err)
	}
	log.Printf("[DEBUG] user %d warned in chat %d, count %d", warn.UserID, warn.ChatID, count)
	return count, nil
}

// Count returns number of user's warnings, in the chat if chatID is set, across all chats otherwise
func (w *Warnings) Count(ctx context.Context, userID, chatID int64) (int, error) {
	w.RLock()
	defer w.RUnlock()

	cmd, args := CmdCountWarningsAll, []any{w.GID(), userID}
	if chatID != 0 {
		cmd, args = CmdCountWarningsInChat, append(args, chatID)
	}
	query, err := pick(w.SQL, warningsQueries, cmd)
	if err != nil {
		return 0, err
	}
	var count int
	if err := w.GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count warnings: %w", err)
	}
	return count, nil
}

// Clear removes all warnings of the user
func (w *Warnings) Clear(ctx context.Context, userID int64) error {
	w.Lock()
	defer w.Unlock()

	query, err := pick(w.SQL, warningsQueries, CmdClearWarnings)
	if err != nil {
		return err
	}
	if _, err := w.ExecContext(ctx, query, w.GID(), userID); err != nil {
		return fmt.Errorf("failed to clear warnings for %d: %w", userID, err)
	}
	return nil
}
