package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// TrustedUsers is a storage for users exempt from automatic moderation
type TrustedUsers struct {
	*engine.SQL
	engine.RWLocker
}

// TrustedUser is a trusted user record
type TrustedUser struct {
	UserID    int64     `db:"user_id" json:"user_id"`
	GID       string    `db:"gid" json:"-"`
	UserName  string    `db:"user_name" json:"user_name"`
	Actor     string    `db:"actor" json:"actor"`
	Reason    string    `db:"reason" json:"reason"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// trusted users command constants
const (
	CmdCreateTrustedUsersTable engine.DBCmd = iota + 1000
	CmdCreateTrustedUsersIndexes
	CmdTrustUser
	CmdUntrustUser
	CmdIsTrusted
	CmdListTrusted
)

var trustedUsersQueries = engine.NewQueryMap().
	Add(CmdCreateTrustedUsersTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS trusted_users (
            user_id INTEGER NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            user_name TEXT NOT NULL DEFAULT '',
            actor TEXT NOT NULL DEFAULT '',
            reason TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (gid, user_id)
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS trusted_users (
            user_id BIGINT NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            user_name TEXT NOT NULL DEFAULT '',
            actor TEXT NOT NULL DEFAULT '',
            reason TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (gid, user_id)
        )`,
	}).
	AddSame(CmdCreateTrustedUsersIndexes, `
        CREATE INDEX IF NOT EXISTS idx_trusted_users_time ON trusted_users(gid, created_at DESC)
    `).
	AddSame(CmdTrustUser, `INSERT INTO trusted_users (user_id, gid, user_name, actor, reason, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
        ON CONFLICT (gid, user_id) DO UPDATE SET user_name = excluded.user_name, actor = excluded.actor,
        reason = excluded.reason`).
	AddSame(CmdUntrustUser, "DELETE FROM trusted_users WHERE gid = ? AND user_id = ?").
	AddSame(CmdIsTrusted, "SELECT COUNT(*) FROM trusted_users WHERE gid = ? AND user_id = ?").
	AddSame(CmdListTrusted, "SELECT * FROM trusted_users WHERE gid = ? ORDER BY created_at DESC")

// NewTrustedUsers creates a new TrustedUsers storage
func NewTrustedUsers(ctx context.Context, db *engine.SQL) (*TrustedUsers, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &TrustedUsers{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{
		Name:          "trusted_users",
		CreateTable:   CmdCreateTrustedUsersTable,
		CreateIndexes: CmdCreateTrustedUsersIndexes,
		MigrateFunc:   noMigration,
		QueriesMap:    trustedUsersQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init trusted users storage: %w", err)
	}
	return res, nil
}

// Trust adds user to trusted, updates the record if already trusted
func (t *TrustedUsers) Trust(ctx context.Context, u TrustedUser) error {
	t.Lock()
	defer t.Unlock()

	query, err := pick(t.SQL, trustedUsersQueries, CmdTrustUser)
	if err != nil {
		return err
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	if _, err := t.ExecContext(ctx, query, u.UserID, t.GID(), u.UserName, u.Actor, u.Reason, u.CreatedAt); err != nil {
		return fmt.Errorf("failed to trust user %d: %w", u.UserID, err)
	}
	log.Printf("[INFO] user %d (%s) trusted by %s", u.UserID, u.UserName, u.Actor)
	return nil
}

// Untrust removes user from trusted, returns true if the user was trusted before
func (t *TrustedUsers) Untrust(ctx context.Context, userID int64) (bool, error) {
	t.Lock()
	defer t.Unlock()

	query, err := pick(t.SQL, trustedUsersQueries, CmdUntrustUser)
	if err != nil {
		return false, err
	}
	res, err := t.ExecContext(ctx, query, t.GID(), userID)
	if err != nil {
		return false, fmt.Errorf("failed to untrust user %d: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return n > 0, nil
}

// IsTrusted checks if user is trusted
func (t *TrustedUsers) IsTrusted(ctx context.Context, userID int64) (bool, error) {
	t.RLock()
	defer t.RUnlock()

	query, err := pick(t.SQL, trustedUsersQueries, CmdIsTrusted)
	if err != nil {
		return false, err
	}
	var count int
	if err := t.GetContext(ctx, &count, query, t.GID(), userID); err != nil {
		return false, fmt.Errorf("failed to check trusted user %d: %w", userID, err)
	}
	return count > 0, nil
}

// List returns all trusted users, newest first
func (t *TrustedUsers) List(ctx context.Context) ([]TrustedUser, error) {
	t.RLock()
	defer t.RUnlock()

	query, err := pick(t.SQL, trustedUsersQueries, CmdListTrusted)
	if err != nil {
		return nil, err
	}
	res := []TrustedUser{}
	if err := t.SelectContext(ctx, &res, query, t.GID()); err != nil {
		return nil, fmt.Errorf("failed to list trusted users: %w", err)
	}
	return res, nil
}
