package engine

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-pkgz/testutils/containers"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tmp := t.TempDir()
	tbl := []struct {
		name    string
		url     string
		want    Type
		wantErr string
	}{
		{name: "memory", url: ":memory:", want: Sqlite},
		{name: "file scheme", url: "file://" + filepath.Join(tmp, "a.db"), want: Sqlite},
		{name: "file prefix", url: "file:" + filepath.Join(tmp, "b.db"), want: Sqlite},
		{name: "sqlite scheme", url: "sqlite://" + filepath.Join(tmp, "c.db"), want: Sqlite},
		{name: "sqlite suffix", url: filepath.Join(tmp, "d.sqlite"), want: Sqlite},
		{name: "db suffix", url: filepath.Join(tmp, "e.db"), want: Sqlite},
		{name: "postgres unreachable", url: "postgres://u:p@127.0.0.1:1/mod?sslmode=disable&connect_timeout=1",
			wantErr: "failed to connect to postgres"},
		{name: "empty", url: "", wantErr: "connection URL is empty"},
		{name: "unknown scheme", url: "mysql://localhost/db", wantErr: "unsupported database type"},
	}

	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			db, err := New(context.Background(), tt.url, "chat-group")
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			defer db.Close()
			assert.Equal(t, tt.want, db.Type())
			assert.Equal(t, "chat-group", db.GID())
		})
	}
}

func TestSQL_Adopt(t *testing.T) {
	tbl := []struct {
		name   string
		dbType Type
		in     string
		out    string
	}{
		{"sqlite untouched", Sqlite, "SELECT * FROM reports WHERE id = ? AND gid = ?",
			"SELECT * FROM reports WHERE id = ? AND gid = ?"},
		{"unknown untouched", Unknown, "DELETE FROM warnings WHERE user_id = ?", "DELETE FROM warnings WHERE user_id = ?"},
		{"postgres numbered", Postgres, "UPDATE reports SET status = ? WHERE id = ? AND status = ?",
			"UPDATE reports SET status = $1 WHERE id = $2 AND status = $3"},
		{"postgres literal kept", Postgres, "SELECT '?' AS q, reason FROM audit_log WHERE actor = ?",
			"SELECT '?' AS q, reason FROM audit_log WHERE actor = $1"},
		{"postgres no params", Postgres, "SELECT 1", "SELECT 1"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			e := &SQL{dbType: tt.dbType}
			assert.Equal(t, tt.out, e.Adopt(tt.in))
		})
	}
}

func TestSQL_MakeLock(t *testing.T) {
	sq := &SQL{dbType: Sqlite}
	_, isMutex := sq.MakeLock().(*sync.RWMutex)
	assert.True(t, isMutex)

	pg := &SQL{dbType: Postgres}
	l := pg.MakeLock()
	_, isFree := l.(freeLock)
	assert.True(t, isFree)
	l.Lock() // never blocks, even when nested
	l.Lock()
	l.RLock()
	l.RUnlock()
	l.Unlock()
	l.Unlock()
}

const (
	cmdCreateThings DBCmd = iota + 1000
	cmdCreateThingsIndexes
	cmdMissing
)

func thingsQueries() *QueryMap {
	return NewQueryMap().
		Add(cmdCreateThings, Query{
			Sqlite:   `CREATE TABLE IF NOT EXISTS things (id INTEGER PRIMARY KEY AUTOINCREMENT, gid TEXT, name TEXT)`,
			Postgres: `CREATE TABLE IF NOT EXISTS things (id SERIAL PRIMARY KEY, gid TEXT, name TEXT)`,
		}).
		AddSame(cmdCreateThingsIndexes, `CREATE INDEX IF NOT EXISTS idx_things_gid ON things(gid);
			CREATE INDEX IF NOT EXISTS idx_things_name ON things(name)`)
}

func TestQueryMap_Pick(t *testing.T) {
	qm := thingsQueries()

	q, err := qm.Pick(Postgres, cmdCreateThings)
	require.NoError(t, err)
	assert.Contains(t, q, "SERIAL")

	q, err = qm.Pick(Sqlite, cmdCreateThings)
	require.NoError(t, err)
	assert.Contains(t, q, "AUTOINCREMENT")

	sqIdx, err := qm.Pick(Sqlite, cmdCreateThingsIndexes)
	require.NoError(t, err)
	pgIdx, err := qm.Pick(Postgres, cmdCreateThingsIndexes)
	require.NoError(t, err)
	assert.Equal(t, sqIdx, pgIdx)

	_, err = qm.Pick(Sqlite, cmdMissing)
	assert.ErrorContains(t, err, "no query for command")

	_, err = qm.Pick(Unknown, cmdCreateThings)
	assert.ErrorContains(t, err, "no query for database type")
}

func TestInitTable(t *testing.T) {
	ctx := context.Background()

	t.Run("nil db", func(t *testing.T) {
		err := InitTable(ctx, nil, TableConfig{Name: "things", QueriesMap: thingsQueries()})
		assert.ErrorContains(t, err, "db connection is nil")
	})

	t.Run("missing create query", func(t *testing.T) {
		db, err := NewSqlite(":memory:", "g1")
		require.NoError(t, err)
		defer db.Close()
		err = InitTable(ctx, db, TableConfig{Name: "things", CreateTable: cmdMissing,
			CreateIndexes: cmdCreateThingsIndexes, QueriesMap: thingsQueries()})
		assert.ErrorContains(t, err, "failed to get create table query")
	})

	t.Run("creates table, indexes and migrates", func(t *testing.T) {
		db, err := NewSqlite(":memory:", "g1")
		require.NoError(t, err)
		defer db.Close()

		var migratedGID string
		err = InitTable(ctx, db, TableConfig{Name: "things", CreateTable: cmdCreateThings,
			CreateIndexes: cmdCreateThingsIndexes, QueriesMap: thingsQueries(),
			MigrateFunc: func(ctx context.Context, tx *sqlx.Tx, gid string) error {
				migratedGID = gid
				_, err := tx.ExecContext(ctx, "INSERT INTO things (gid, name) VALUES (?, 'seed')", gid)
				return err
			}})
		require.NoError(t, err)
		assert.Equal(t, "g1", migratedGID)

		var count int
		require.NoError(t, db.Get(&count, "SELECT COUNT(*) FROM things WHERE gid = ?", "g1"))
		assert.Equal(t, 1, count)

		var idx int
		require.NoError(t, db.Get(&idx, "SELECT COUNT(*) FROM sqlite_master WHERE type='index' AND name LIKE 'idx_things_%'"))
		assert.Equal(t, 2, idx)

		// second run is a no-op for schema
		err = InitTable(ctx, db, TableConfig{Name: "things", CreateTable: cmdCreateThings,
			CreateIndexes: cmdCreateThingsIndexes, QueriesMap: thingsQueries()})
		require.NoError(t, err)
	})

	t.Run("migration failure rolls back", func(t *testing.T) {
		db, err := NewSqlite(":memory:", "g1")
		require.NoError(t, err)
		defer db.Close()

		errBoom := errors.New("boom")
		err = InitTable(ctx, db, TableConfig{Name: "things", CreateTable: cmdCreateThings,
			CreateIndexes: cmdCreateThingsIndexes, QueriesMap: thingsQueries(),
			MigrateFunc: func(context.Context, *sqlx.Tx, string) error { return errBoom }})
		require.ErrorIs(t, err, errBoom)

		var exists int
		require.NoError(t, db.Get(&exists, "SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='things'"))
		assert.Equal(t, 0, exists)
	})
}

func TestNewPostgres(t *testing.T) {
	ctx := context.Background()

	t.Run("bad url", func(t *testing.T) {
		_, err := NewPostgres(ctx, "postgres://u:p@host:bad port/x", "g")
		assert.ErrorContains(t, err, "invalid postgres connection url")
	})

	t.Run("no database name", func(t *testing.T) {
		_, err := NewPostgres(ctx, "postgres://u:p@localhost:5432", "g")
		assert.ErrorContains(t, err, "database name not specified")
	})

	t.Run("container", func(t *testing.T) {
		if testing.Short() {
			t.Skip("skip postgres container in short mode")
		}
		pg := containers.NewPostgresTestContainer(ctx, t)
		defer func() { _ = pg.Close(ctx) }()

		db, err := NewPostgres(ctx, pg.ConnectionString(), "g")
		require.NoError(t, err)
		defer db.Close()
		assert.Equal(t, Postgres, db.Type())

		err = InitTable(ctx, db, TableConfig{Name: "things", CreateTable: cmdCreateThings,
			CreateIndexes: cmdCreateThingsIndexes, QueriesMap: thingsQueries()})
		require.NoError(t, err)
		_, err = db.Exec(db.Adopt("INSERT INTO things (gid, name) VALUES (?, ?)"), "g", "x")
		require.NoError(t, err)
	})
}
