// Package storage provides repositories for moderation data on top of storage/engine.
// Each table is represented by a struct embedding *engine.SQL and engine.RWLocker, with methods implementing
// the business operations for this data type. All rows are scoped by the group id (gid) of the engine.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// ErrNotFound returned by repositories when requested row doesn't exist
var ErrNotFound = errors.New("not found")

// noMigration is a migrate func for tables without schema history
func noMigration(context.Context, *sqlx.Tx, string) error { return nil }

// pick returns adopted query for the engine type
func pick(db *engine.SQL, qm *engine.QueryMap, cmd engine.DBCmd) (string, error) {
	query, err := qm.Pick(db.Type(), cmd)
	if err != nil {
		return "", fmt.Errorf("failed to get query: %w", err)
	}
	return db.Adopt(query), nil
}

// notFound converts sql.ErrNoRows to ErrNotFound, keeps other errors as is
func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return fmt.Errorf("failed to get %s: %w", what, err)
}
