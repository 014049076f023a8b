package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// ChatConfigs provides access to per-chat configuration overrides stored as json
type ChatConfigs[T any] struct {
	*engine.SQL
	engine.RWLocker
	section string
}

// ChatConfigRecord represents a configuration entry of a chat
type ChatConfigRecord struct {
	GID       string    `db:"gid"`
	ChatID    int64     `db:"chat_id"`
	Section   string    `db:"section"`
	Data      string    `db:"data"`
	UpdatedAt time.Time `db:"updated_at"`
}

// chat config queries
const (
	CmdCreateChatConfigsTable engine.DBCmd = iota + 200
	CmdCreateChatConfigsIndexes
	CmdSetChatConfig
	CmdGetChatConfig
	CmdDeleteChatConfig
)

var chatConfigQueries = engine.NewQueryMap().
	Add(CmdCreateChatConfigsTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS chat_configs (
			gid TEXT NOT NULL,
			chat_id INTEGER NOT NULL,
			section TEXT NOT NULL,
			data TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (gid, chat_id, section)
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS chat_configs (
			gid TEXT NOT NULL,
			chat_id BIGINT NOT NULL,
			section TEXT NOT NULL,
			data TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (gid, chat_id, section)
		)`,
	}).
	AddSame(CmdCreateChatConfigsIndexes, `CREATE INDEX IF NOT EXISTS idx_chat_configs_section ON chat_configs(gid, section)`).
	AddSame(CmdSetChatConfig, `INSERT INTO chat_configs (gid, chat_id, section, data, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (gid, chat_id, section) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`).
	AddSame(CmdGetChatConfig, "SELECT data FROM chat_configs WHERE gid = ? AND chat_id = ? AND section = ?").
	AddSame(CmdDeleteChatConfig, "DELETE FROM chat_configs WHERE gid = ? AND chat_id = ? AND section = ?")

// NewChatConfigs creates a new ChatConfigs storage for the config section, e.g. "warnings"
func NewChatConfigs[T any](ctx context.Context, db *engine.SQL, section string) (*ChatConfigs[T], error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &ChatConfigs[T]{SQL: db, RWLocker: db.MakeLock(), section: section}
	cfg := engine.TableConfig{
		Name:          "chat_configs",
		CreateTable:   CmdCreateChatConfigsTable,
		CreateIndexes: CmdCreateChatConfigsIndexes,
		MigrateFunc:   noMigration,
		QueriesMap:    chatConfigQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init chat configs storage: %w", err)
	}
	return res, nil
}

// Get loads chat override into obj, ErrNotFound if the chat has no override
func (c *ChatConfigs[T]) Get(ctx context.Context, chatID int64, obj *T) error {
	c.RLock()
	defer c.RUnlock()

	query, err := pick(c.SQL, chatConfigQueries, CmdGetChatConfig)
	if err != nil {
		return err
	}
	var data string
	if err := c.GetContext(ctx, &data, query, c.GID(), chatID, c.section); err != nil {
		return notFound(err, fmt.Sprintf("%s config for chat %d", c.section, chatID))
	}
	if err := json.Unmarshal([]byte(data), obj); err != nil {
		return fmt.Errorf("failed to unmarshal %s config for chat %d: %w", c.section, chatID, err)
	}
	return nil
}

// Set stores chat override
func (c *ChatConfigs[T]) Set(ctx context.Context, chatID int64, obj *T) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return fmt.Errorf("failed to marshal %s config: %w", c.section, err)
	}

	c.Lock()
	defer c.Unlock()

	query, err := pick(c.SQL, chatConfigQueries, CmdSetChatConfig)
	if err != nil {
		return err
	}
	if _, err := c.ExecContext(ctx, query, c.GID(), chatID, c.section, string(data), time.Now()); err != nil {
		return fmt.Errorf("failed to set %s config for chat %d: %w", c.section, chatID, err)
	}
	return nil
}

// Delete removes chat override, chat goes back to defaults
func (c *ChatConfigs[T]) Delete(ctx context.Context, chatID int64) error {
	c.Lock()
	defer c.Unlock()

	query, err := pick(c.SQL, chatConfigQueries, CmdDeleteChatConfig)
	if err != nil {
		return err
	}
	if _, err := c.ExecContext(ctx, query, c.GID(), chatID, c.section); err != nil {
		return fmt.Errorf("failed to delete %s config for chat %d: %w", c.section, chatID, err)
	}
	return nil
}
