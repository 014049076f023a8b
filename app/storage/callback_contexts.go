package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// CallbackContexts is a storage for short-lived correlation records between admin buttons and reports.
// A context is consumed and deleted once the button press is handled, absence means expired.
type CallbackContexts struct {
	*engine.SQL
	engine.RWLocker
}

// CallbackContext links an inline keyboard of the admin message to the report it was rendered for
type CallbackContext struct {
	ID         int64      `db:"id"`
	GID        string     `db:"gid"`
	ReportID   int64      `db:"report_id"`
	ReportType ReportType `db:"report_type"`
	ChatID     int64      `db:"chat_id"`
	ChatTitle  string     `db:"chat_title"`
	UserID     int64      `db:"user_id"`
	UserName   string     `db:"user_name"`
	CreatedAt  time.Time  `db:"created_at"`
}

// callback contexts command constants
const (
	CmdCreateCallbackContextsTable engine.DBCmd = iota + 600
	CmdCreateCallbackContextsIndexes
	CmdAddCallbackContext
	CmdGetCallbackContext
	CmdDeleteCallbackContext
	CmdDeleteCallbackContextsBefore
)

var callbackContextsQueries = engine.NewQueryMap().
	Add(CmdCreateCallbackContextsTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS callback_contexts (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            gid TEXT NOT NULL DEFAULT '',
            report_id INTEGER NOT NULL,
            report_type TEXT NOT NULL,
            chat_id INTEGER NOT NULL,
            chat_title TEXT NOT NULL DEFAULT '',
            user_id INTEGER NOT NULL,
            user_name TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS callback_contexts (
            id SERIAL PRIMARY KEY,
            gid TEXT NOT NULL DEFAULT '',
            report_id BIGINT NOT NULL,
            report_type TEXT NOT NULL,
            chat_id BIGINT NOT NULL,
            chat_title TEXT NOT NULL DEFAULT '',
            user_id BIGINT NOT NULL,
            user_name TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
	}).
	AddSame(CmdCreateCallbackContextsIndexes, `
        CREATE INDEX IF NOT EXISTS idx_callback_contexts_gid_time ON callback_contexts(gid, created_at)
    `).
	AddSame(CmdAddCallbackContext, `INSERT INTO callback_contexts (gid, report_id, report_type, chat_id, chat_title,
            user_id, user_name, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`).
	AddSame(CmdGetCallbackContext, "SELECT * FROM callback_contexts WHERE gid = ? AND id = ?").
	AddSame(CmdDeleteCallbackContext, "DELETE FROM callback_contexts WHERE gid = ? AND id = ?").
	AddSame(CmdDeleteCallbackContextsBefore, "DELETE FROM callback_contexts WHERE gid = ? AND created_at < ?")

// NewCallbackContexts creates a new CallbackContexts storage
func NewCallbackContexts(ctx context.Context, db *engine.SQL) (*CallbackContexts, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &CallbackContexts{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{
		Name:          "callback_contexts",
		CreateTable:   CmdCreateCallbackContextsTable,
		CreateIndexes: CmdCreateCallbackContextsIndexes,
		MigrateFunc:   noMigration,
		QueriesMap:    callbackContextsQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init callback contexts storage: %w", err)
	}
	return res, nil
}

// Add stores a new context and returns its id, the id goes into callback payload
func (c *CallbackContexts) Add(ctx context.Context, cc CallbackContext) (int64, error) {
	c.Lock()
	defer c.Unlock()

	query, err := pick(c.SQL, callbackContextsQueries, CmdAddCallbackContext)
	if err != nil {
		return 0, err
	}
	if cc.CreatedAt.IsZero() {
		cc.CreatedAt = time.Now()
	}
	var id int64
	if err := c.GetContext(ctx, &id, query, c.GID(), cc.ReportID, cc.ReportType, cc.ChatID, cc.ChatTitle,
		cc.UserID, cc.UserName, cc.CreatedAt); err != nil {
		return 0, fmt.Errorf("failed to insert callback context: %w", err)
	}
	return id, nil
}

// GetByID returns context by id, ErrNotFound if missing
func (c *CallbackContexts) GetByID(ctx context.Context, id int64) (CallbackContext, error) {
	c.RLock()
	defer c.RUnlock()

	query, err := pick(c.SQL, callbackContextsQueries, CmdGetCallbackContext)
	if err != nil {
		return CallbackContext{}, err
	}
	var res CallbackContext
	if err := c.GetContext(ctx, &res, query, c.GID(), id); err != nil {
		return CallbackContext{}, notFound(err, fmt.Sprintf("callback context %d", id))
	}
	return res, nil
}

// Delete removes context by id, missing context is not an error
func (c *CallbackContexts) Delete(ctx context.Context, id int64) error {
	c.Lock()
	defer c.Unlock()

	query, err := pick(c.SQL, callbackContextsQueries, CmdDeleteCallbackContext)
	if err != nil {
		return err
	}
	if _, err := c.ExecContext(ctx, query, c.GID(), id); err != nil {
		return fmt.Errorf("failed to delete callback context %d: %w", id, err)
	}
	return nil
}

// Cleanup removes contexts created before the cutoff, returns number of removed records
func (c *CallbackContexts) Cleanup(ctx context.Context, before time.Time) (int64, error) {
	c.Lock()
	defer c.Unlock()

	query, err := pick(c.SQL, callbackContextsQueries, CmdDeleteCallbackContextsBefore)
	if err != nil {
		return 0, err
	}
	res, err := c.ExecContext(ctx, query, c.GID(), before)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup callback contexts: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	if n > 0 {
		log.Printf("[DEBUG] removed %d expired callback contexts", n)
	}
	return n, nil
}
