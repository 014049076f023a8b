package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

// Reports is a storage for review records, content reports and exam failures
type Reports struct {
	*engine.SQL
	engine.RWLocker
}

// ReportType defines the kind of review, each kind has its own set of admin actions
type ReportType string

// enum of report types
const (
	ReportContent     ReportType = "content"
	ReportExamFailure ReportType = "exam_failure"
)

// ReportStatus is a review status, pending goes to reviewed exactly once
type ReportStatus string

// enum of report statuses
const (
	ReportPending  ReportStatus = "pending"
	ReportReviewed ReportStatus = "reviewed"
)

// Report represents a persisted review record
type Report struct {
	ID              int64        `db:"id" json:"id"`
	GID             string       `db:"gid" json:"-"`
	Type            ReportType   `db:"type" json:"type"`
	ChatID          int64        `db:"chat_id" json:"chat_id"`
	ChatTitle       string       `db:"chat_title" json:"chat_title"`
	SubjectUserID   int64        `db:"subject_user_id" json:"subject_user_id"`
	SubjectUserName string       `db:"subject_user_name" json:"subject_user_name"`
	MessageID       int          `db:"message_id" json:"message_id"`         // reported message, 0 if none
	CommandMsgID    int          `db:"command_msg_id" json:"command_msg_id"` // message with /report command, 0 if none
	ReporterID      int64        `db:"reporter_id" json:"reporter_id"`
	ReporterName    string       `db:"reporter_name" json:"reporter_name"`
	Text            string       `db:"text" json:"text"`     // reported message text
	Reason          string       `db:"reason" json:"reason"` // why the report was opened, detector verdict
	Status          ReportStatus `db:"status" json:"status"`
	ReviewedBy      string       `db:"reviewed_by" json:"reviewed_by"`
	ActionTaken     string       `db:"action_taken" json:"action_taken"`
	ReviewedAt      sql.NullTime `db:"reviewed_at" json:"reviewed_at"`
	AdminNotes      string       `db:"admin_notes" json:"admin_notes"`
	CreatedAt       time.Time    `db:"created_at" json:"created_at"`
}

// reports-related command constants
const (
	CmdCreateReportsTable engine.DBCmd = iota + 500
	CmdCreateReportsIndexes
	CmdAddReport
	CmdGetReport
	CmdTryUpdateReportStatus
	CmdListPendingReports
)

var reportsQueries = engine.NewQueryMap().
	Add(CmdCreateReportsTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS reports (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            gid TEXT NOT NULL DEFAULT '',
            type TEXT NOT NULL CHECK (type IN ('content', 'exam_failure')),
            chat_id INTEGER NOT NULL,
            chat_title TEXT NOT NULL DEFAULT '',
            subject_user_id INTEGER NOT NULL,
            subject_user_name TEXT NOT NULL DEFAULT '',
            message_id INTEGER NOT NULL DEFAULT 0,
            command_msg_id INTEGER NOT NULL DEFAULT 0,
            reporter_id INTEGER NOT NULL DEFAULT 0,
            reporter_name TEXT NOT NULL DEFAULT '',
            text TEXT NOT NULL DEFAULT '',
            reason TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            reviewed_by TEXT NOT NULL DEFAULT '',
            action_taken TEXT NOT NULL DEFAULT '',
            reviewed_at TIMESTAMP NULL,
            admin_notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS reports (
            id SERIAL PRIMARY KEY,
            gid TEXT NOT NULL DEFAULT '',
            type TEXT NOT NULL CHECK (type IN ('content', 'exam_failure')),
            chat_id BIGINT NOT NULL,
            chat_title TEXT NOT NULL DEFAULT '',
            subject_user_id BIGINT NOT NULL,
            subject_user_name TEXT NOT NULL DEFAULT '',
            message_id INTEGER NOT NULL DEFAULT 0,
            command_msg_id INTEGER NOT NULL DEFAULT 0,
            reporter_id BIGINT NOT NULL DEFAULT 0,
            reporter_name TEXT NOT NULL DEFAULT '',
            text TEXT NOT NULL DEFAULT '',
            reason TEXT NOT NULL DEFAULT '',
            status TEXT NOT NULL DEFAULT 'pending',
            reviewed_by TEXT NOT NULL DEFAULT '',
            action_taken TEXT NOT NULL DEFAULT '',
            reviewed_at TIMESTAMP NULL,
            admin_notes TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`,
	}).
	AddSame(CmdCreateReportsIndexes, `
        CREATE INDEX IF NOT EXISTS idx_reports_gid_status ON reports(gid, status);
        CREATE INDEX IF NOT EXISTS idx_reports_subject ON reports(gid, subject_user_id)
    `).
	AddSame(CmdAddReport, `INSERT INTO reports (gid, type, chat_id, chat_title, subject_user_id, subject_user_name,
            message_id, command_msg_id, reporter_id, reporter_name, text, reason, status, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', ?) RETURNING id`).
	AddSame(CmdGetReport, "SELECT * FROM reports WHERE gid = ? AND id = ?").
	AddSame(CmdTryUpdateReportStatus, `UPDATE reports SET status = ?, reviewed_by = ?, action_taken = ?,
            admin_notes = ?, reviewed_at = ? WHERE gid = ? AND id = ? AND status = ?`).
	AddSame(CmdListPendingReports, "SELECT * FROM reports WHERE gid = ? AND status = 'pending' ORDER BY created_at DESC LIMIT ?")

// NewReports creates a new Reports storage
func NewReports(ctx context.Context, db *engine.SQL) (*Reports, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	res := &Reports{SQL: db, RWLocker: db.MakeLock()}
	cfg := engine.TableConfig{
		Name:          "reports",
		CreateTable:   CmdCreateReportsTable,
		CreateIndexes: CmdCreateReportsIndexes,
		MigrateFunc:   noMigration,
		QueriesMap:    reportsQueries,
	}
	if err := engine.InitTable(ctx, db, cfg); err != nil {
		return nil, fmt.Errorf("failed to init reports storage: %w", err)
	}
	return res, nil
}

// Add stores a new pending report and returns its id
func (r *Reports) Add(ctx context.Context, rep Report) (int64, error) {
	r.Lock()
	defer r.Unlock()

	query, err := pick(r.SQL, reportsQueries, CmdAddReport)
	if err != nil {
		return 0, err
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now()
	}

	var id int64
	err = r.GetContext(ctx, &id, query, r.GID(), rep.Type, rep.ChatID, rep.ChatTitle, rep.SubjectUserID,
		rep.SubjectUserName, rep.MessageID, rep.CommandMsgID, rep.ReporterID, rep.ReporterName, rep.Text, rep.Reason,
		rep.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to insert report: %w", err)
	}
	log.Printf("[INFO] report %d added, type:%s, chat:%d, subject:%d", id, rep.Type, rep.ChatID, rep.SubjectUserID)
	return id, nil
}

// GetByID returns report by id, ErrNotFound if missing
func (r *Reports) GetByID(ctx context.Context, id int64) (Report, error) {
	r.RLock()
	defer r.RUnlock()

	query, err := pick(r.SQL, reportsQueries, CmdGetReport)
	if err != nil {
		return Report{}, err
	}
	var rep Report
	if err := r.GetContext(ctx, &rep, query, r.GID(), id); err != nil {
		return Report{}, notFound(err, fmt.Sprintf("report %d", id))
	}
	return rep, nil
}

// TryUpdateStatus moves report from the given status to reviewed in a single conditional update.
// Returns false if the report is not in the expected status anymore, i.e. someone else resolved it first.
func (r *Reports) TryUpdateStatus(ctx context.Context, id int64, from ReportStatus, reviewer, action, notes string) (bool, error) {
	r.Lock()
	defer r.Unlock()

	query, err := pick(r.SQL, reportsQueries, CmdTryUpdateReportStatus)
	if err != nil {
		return false, err
	}
	res, err := r.ExecContext(ctx, query, ReportReviewed, reviewer, action, notes, time.Now(), r.GID(), id, from)
	if err != nil {
		return false, fmt.Errorf("failed to update report %d status: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows for report %d: %w", id, err)
	}
	if n == 0 {
		log.Printf("[DEBUG] report %d not in %q status, update skipped", id, from)
	}
	return n > 0, nil
}

// ListPending returns up to limit pending reports, newest first
func (r *Reports) ListPending(ctx context.Context, limit int) ([]Report, error) {
	r.RLock()
	defer r.RUnlock()

	query, err := pick(r.SQL, reportsQueries, CmdListPendingReports)
	if err != nil {
		return nil, err
	}
	var res []Report
	if err := r.SelectContext(ctx, &res, query, r.GID(), limit); err != nil {
		return nil, fmt.Errorf("failed to list pending reports: %w", err)
	}
	return res, nil
}
