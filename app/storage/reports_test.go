package storage

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

func (s *StorageTestSuite) TestReports_AddGet() {
	ctx := context.Background()
	s.forEachDB("reports", func(db *engine.SQL) {
		reports, err := NewReports(ctx, db)
		s.Require().NoError(err)

		id, err := reports.Add(ctx, Report{Type: ReportContent, ChatID: -100123, ChatTitle: "group",
			SubjectUserID: 42, SubjectUserName: "spammer", MessageID: 77, CommandMsgID: 78,
			ReporterID: 5, ReporterName: "reporter", Text: "buy now", Reason: "malware detected\neicar"})
		s.Require().NoError(err)
		s.Positive(id)

		rep, err := reports.GetByID(ctx, id)
		s.Require().NoError(err)
		s.Equal(ReportPending, rep.Status)
		s.Equal(ReportContent, rep.Type)
		s.Equal(int64(42), rep.SubjectUserID)
		s.Equal(77, rep.MessageID)
		s.Equal(78, rep.CommandMsgID)
		s.Equal("buy now", rep.Text)
		s.Equal("malware detected\neicar", rep.Reason)
		s.Equal("gr1", rep.GID)
		s.False(rep.ReviewedAt.Valid)

		_, err = reports.GetByID(ctx, id+100)
		s.ErrorIs(err, ErrNotFound)

		pending, err := reports.ListPending(ctx, 10)
		s.Require().NoError(err)
		s.Len(pending, 1)
	})
}

func (s *StorageTestSuite) TestReports_TryUpdateStatus() {
	ctx := context.Background()
	s.forEachDB("reports", func(db *engine.SQL) {
		reports, err := NewReports(ctx, db)
		s.Require().NoError(err)
		id, err := reports.Add(ctx, Report{Type: ReportExamFailure, ChatID: 1, SubjectUserID: 2})
		s.Require().NoError(err)

		ok, err := reports.TryUpdateStatus(ctx, id, ReportPending, "admin1", "Ban", "notes")
		s.Require().NoError(err)
		s.True(ok)

		ok, err = reports.TryUpdateStatus(ctx, id, ReportPending, "admin2", "Dismiss", "")
		s.Require().NoError(err)
		s.False(ok, "second transition must lose")

		rep, err := reports.GetByID(ctx, id)
		s.Require().NoError(err)
		s.Equal(ReportReviewed, rep.Status)
		s.Equal("admin1", rep.ReviewedBy)
		s.Equal("Ban", rep.ActionTaken)
		s.Equal("notes", rep.AdminNotes)
		s.True(rep.ReviewedAt.Valid)

		ok, err = reports.TryUpdateStatus(ctx, id+100, ReportPending, "admin1", "Ban", "")
		s.Require().NoError(err)
		s.False(ok)
	})
}

func (s *StorageTestSuite) TestReports_TryUpdateStatusConcurrent() {
	ctx := context.Background()
	s.forEachDB("reports", func(db *engine.SQL) {
		reports, err := NewReports(ctx, db)
		s.Require().NoError(err)
		id, err := reports.Add(ctx, Report{Type: ReportContent, ChatID: 1, SubjectUserID: 2})
		s.Require().NoError(err)

		var wins atomic.Int32
		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				ok, err := reports.TryUpdateStatus(ctx, id, ReportPending, "admin", "Spam", "")
				s.NoError(err)
				if ok {
					wins.Add(1)
				}
			}()
		}
		wg.Wait()
		s.Equal(int32(1), wins.Load())
	})
}
