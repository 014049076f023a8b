package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// Samples keeps training samples collected by moderation, e.g. messages admins marked as spam.
// Detection itself lives elsewhere and reads them through List.
type Samples struct {
	*engine.SQL
	engine.RWLocker
}

// SampleType is a class of the sample
type SampleType string

// enum of sample classes
const (
	SampleTypeHam  SampleType = "ham"
	SampleTypeSpam SampleType = "spam"
)

// SampleOrigin tells where the sample came from
type SampleOrigin string

// enum of sample origins
const (
	SampleOriginPreset SampleOrigin = "preset" // imported
	SampleOriginUser   SampleOrigin = "user"   // marked by a moderator
)

// Sample is a message with its class and the moderator who classified it
type Sample struct {
	Type      SampleType   `db:"type" json:"type"`
	Origin    SampleOrigin `db:"origin" json:"origin"`
	Message   string       `db:"message" json:"message"`
	UserID    int64        `db:"user_id" json:"user_id"` // author, 0 if unknown
	ChatID    int64        `db:"chat_id" json:"chat_id"`
	Actor     string       `db:"actor" json:"actor"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}

func (s Sample) validate() error {
	if s.Type != SampleTypeHam && s.Type != SampleTypeSpam {
		return fmt.Errorf("invalid sample type %q", s.Type)
	}
	if s.Origin != SampleOriginPreset && s.Origin != SampleOriginUser {
		return fmt.Errorf("invalid sample origin %q", s.Origin)
	}
	if s.Message == "" {
		return errors.New("empty sample message")
	}
	return nil
}

// samples command constants
const (
	CmdCreateSamplesTable engine.DBCmd = iota + 1100
	CmdCreateSamplesIndexes
	CmdUpsertSample
	CmdListSamples
)

var samplesQueries = engine.NewQueryMap().
	Add(CmdCreateSamplesTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS samples (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			gid TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL CHECK (type IN ('ham', 'spam')),
			origin TEXT NOT NULL CHECK (origin IN ('preset', 'user')),
			message TEXT NOT NULL,
			user_id INTEGER NOT NULL DEFAULT 0,
			chat_id INTEGER NOT NULL DEFAULT 0,
			actor TEXT NOT NULL DEFAULT '',
			created_at DATETIME NOT NULL,
			UNIQUE(gid, message)
		)`,
		Postgres: `CREATE TABLE IF NOT EXISTS samples (
			id SERIAL PRIMARY KEY,
			gid TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL CHECK (type IN ('ham', 'spam')),
			origin TEXT NOT NULL CHECK (origin IN ('preset', 'user')),
			message TEXT NOT NULL,
			user_id BIGINT NOT NULL DEFAULT 0,
			chat_id BIGINT NOT NULL DEFAULT 0,
			actor TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMP NOT NULL,
			UNIQUE(gid, message)
		)`,
	}).
	AddSame(CmdCreateSamplesIndexes, `CREATE INDEX IF NOT EXISTS idx_samples_type ON samples(gid, type, created_at)`).
	AddSame(CmdUpsertSample, `INSERT INTO samples (gid, type, origin, message, user_id, chat_id, actor, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (gid, message) DO UPDATE SET type = excluded.type, origin = excluded.origin,
		actor = excluded.actor, created_at = excluded.created_at`).
	AddSame(CmdListSamples, `SELECT type, origin, message, user_id, chat_id, actor, created_at FROM samples
		WHERE gid = ? AND type = ? ORDER BY created_at DESC, id DESC LIMIT ?`)

// NewSamples creates Samples storage
func NewSamples(ctx context.Context, db *engine.SQL) (*Samples, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	cfg := engine.TableConfig{
		Name:          "samples",
		CreateTable:   CmdCreateSamplesTable,
		CreateIndexes: CmdCreateSamplesIndexes,
		MigrateFunc:   noMigration,
		QueriesMap:    samplesQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init samples storage: %w", err)
	}
	return &Samples{SQL: db, RWLocker: db.MakeLock()}, nil
}

// Add stores the sample, the same message added again is re-classified
func (s *Samples) Add(ctx context.Context, smpl Sample) error {
	if err := smpl.validate(); err != nil {
		return err
	}
	if smpl.CreatedAt.IsZero() {
		smpl.CreatedAt = time.Now()
	}

	s.Lock()
	defer s.Unlock()

	query, err := pick(s.SQL, samplesQueries, CmdUpsertSample)
	if err != nil {
		return err
	}
	if _, err = s.ExecContext(ctx, query, s.GID(), smpl.Type, smpl.Origin, smpl.Message, smpl.UserID,
		smpl.ChatID, smpl.Actor, smpl.CreatedAt); err != nil {
		return fmt.Errorf("failed to add sample: %w", err)
	}
	log.Printf("[DEBUG] %s sample added by %s, %d chars", smpl.Type, smpl.Actor, len([]rune(smpl.Message)))
	return nil
}

// List returns up to limit samples of the type, newest first
func (s *Samples) List(ctx context.Context, t SampleType, limit int) ([]Sample, error) {
	if limit <= 0 {
		limit = 100
	}

	s.RLock()
	defer s.RUnlock()

	query, err := pick(s.SQL, samplesQueries, CmdListSamples)
	if err != nil {
		return nil, err
	}
	res := []Sample{}
	if err = s.SelectContext(ctx, &res, query, s.GID(), t, limit); err != nil {
		return nil, fmt.Errorf("failed to list %s samples: %w", t, err)
	}
	return res, nil
}
