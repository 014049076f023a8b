package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// Messages is a local store of chat messages seen by the bot
type Messages struct {
	*engine.SQL
	engine.RWLocker
}

// Message is a locally stored chat message
type Message struct {
	ChatID     int64     `db:"chat_id"`
	MsgID      int       `db:"msg_id"`
	GID        string    `db:"gid"`
	UserID     int64     `db:"user_id"`
	UserName   string    `db:"user_name"`
	Text       string    `db:"text"`
	HasMedia   bool      `db:"has_media"`
	Backfilled bool      `db:"backfilled"`
	Deleted    bool      `db:"deleted"`
	CreatedAt  time.Time `db:"created_at"`
}

// BackfillResult tells what Backfill did, both values are successful outcomes
type BackfillResult string

// enum of backfill results
const (
	BackfillAlreadyExists BackfillResult = "already exists"
	BackfillInserted      BackfillResult = "backfilled"
)

// messages command constants
const (
	CmdCreateMessagesTable engine.DBCmd = iota + 1200
	CmdCreateMessagesIndexes
	CmdInsertMessage
	CmdGetMessage
	CmdMarkMessageDeleted
)

var messagesQueries = engine.NewQueryMap().
	Add(CmdCreateMessagesTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS messages (
            chat_id INTEGER NOT NULL,
            msg_id INTEGER NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            user_id INTEGER NOT NULL DEFAULT 0,
            user_name TEXT NOT NULL DEFAULT '',
            text TEXT NOT NULL DEFAULT '',
            has_media BOOLEAN NOT NULL DEFAULT 0,
            backfilled BOOLEAN NOT NULL DEFAULT 0,
            deleted BOOLEAN NOT NULL DEFAULT 0,
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (gid, chat_id, msg_id)
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS messages (
            chat_id BIGINT NOT NULL,
            msg_id INTEGER NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            user_id BIGINT NOT NULL DEFAULT 0,
            user_name TEXT NOT NULL DEFAULT '',
            text TEXT NOT NULL DEFAULT '',
            has_media BOOLEAN NOT NULL DEFAULT false,
            backfilled BOOLEAN NOT NULL DEFAULT false,
            deleted BOOLEAN NOT NULL DEFAULT false,
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (gid, chat_id, msg_id)
        )`,
	}).
	AddSame(CmdCreateMessagesIndexes, `
        CREATE INDEX IF NOT EXISTS idx_messages_user ON messages(gid, user_id, created_at DESC)
    `).
	AddSame(CmdInsertMessage, `INSERT INTO messages (chat_id, msg_id, gid, user_id, user_name, text, has_media,
            backfilled, deleted, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, false, ?)
        ON CONFLICT (gid, chat_id, msg_id) DO NOTHING`).
	AddSame(CmdGetMessage, "SELECT * FROM messages WHERE gid = ? AND chat_id = ? AND msg_id = ?").
	AddSame(CmdMarkMessageDeleted, "UPDATE messages SET deleted = true WHERE gid = ? AND chat_id = ? AND msg_id = ?")

// NewMessages creates a new Messages storage
func NewMessages(ctx context.Context, db *engine.SQL) (*Messages, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &Messages{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{
		Name:          "messages",
		CreateTable:   CmdCreateMessagesTable,
		CreateIndexes: CmdCreateMessagesIndexes,
		MigrateFunc:   noMigration,
		QueriesMap:    messagesQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init messages storage: %w", err)
	}
	return res, nil
}

// Save stores a message seen in a chat, duplicates are ignored
func (m *Messages) Save(ctx context.Context, msg Message) error {
	msg.Backfilled = false
	_, err := m.insert(ctx, msg)
	return err
}

// Backfill stores a message that was not seen before, marking it as backfilled.
// Idempotent, an existing message is left as is and reported as BackfillAlreadyExists.
func (m *Messages) Backfill(ctx context.Context, msg Message) (BackfillResult, error) {
	msg.Backfilled = true
	inserted, err := m.insert(ctx, msg)
	if err != nil {
		return "", err
	}
	if !inserted {
		return BackfillAlreadyExists, nil
	}
	return BackfillInserted, nil
}

// Get returns a message, ErrNotFound if missing
func (m *Messages) Get(ctx context.Context, chatID int64, msgID int) (Message, error) {
	m.RLock()
	defer m.RUnlock()

	query, err := pick(m.SQL, messagesQueries, CmdGetMessage)
	if err != nil {
		return Message{}, err
	}
	var res Message
	if err := m.GetContext(ctx, &res, query, m.GID(), chatID, msgID); err != nil {
		return Message{}, notFound(err, fmt.Sprintf("message %d in chat %d", msgID, chatID))
	}
	return res, nil
}

// MarkDeleted flags message as deleted, missing message is ignored
func (m *Messages) MarkDeleted(ctx context.Context, chatID int64, msgID int) error {
	m.Lock()
	defer m.Unlock()

	query, err := pick(m.SQL, messagesQueries, CmdMarkMessageDeleted)
	if err != nil {
		return err
	}
	if _, err := m.ExecContext(ctx, query, m.GID(), chatID, msgID); err != nil {
		return fmt.Errorf("failed to mark message %d deleted: %w", msgID, err)
	}
	return nil
}

func (m *Messages) insert(ctx context.Context, msg Message) (bool, error) {
	m.Lock()
	defer m.Unlock()

	query, err := pick(m.SQL, messagesQueries, CmdInsertMessage)
	if err != nil {
		return false, err
	}
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = time.Now()
	}
	res, err := m.ExecContext(ctx, query, msg.ChatID, msg.MsgID, m.GID(), msg.UserID, msg.UserName, msg.Text,
		msg.HasMedia, msg.Backfilled, msg.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to insert message %d: %w", msg.MsgID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}
