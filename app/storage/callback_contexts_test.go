package storage

import (
	"context"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

func (s *StorageTestSuite) TestCallbackContexts() {
	ctx := context.Background()
	s.forEachDB("callback_contexts", func(db *engine.SQL) {
		cc, err := NewCallbackContexts(ctx, db)
		s.Require().NoError(err)

		id, err := cc.Add(ctx, CallbackContext{ReportID: 10, ReportType: ReportContent, ChatID: -1001,
			ChatTitle: "group", UserID: 42, UserName: "bob"})
		s.Require().NoError(err)

		got, err := cc.GetByID(ctx, id)
		s.Require().NoError(err)
		s.Equal(int64(10), got.ReportID)
		s.Equal(ReportContent, got.ReportType)
		s.Equal(int64(42), got.UserID)

		s.Require().NoError(cc.Delete(ctx, id))
		_, err = cc.GetByID(ctx, id)
		s.ErrorIs(err, ErrNotFound)
		s.NoError(cc.Delete(ctx, id), "delete of missing context is not an error")

		_, err = cc.Add(ctx, CallbackContext{ReportID: 11, ReportType: ReportExamFailure,
			CreatedAt: time.Now().Add(-48 * time.Hour)})
		s.Require().NoError(err)
		freshID, err := cc.Add(ctx, CallbackContext{ReportID: 12, ReportType: ReportContent})
		s.Require().NoError(err)

		n, err := cc.Cleanup(ctx, time.Now().Add(-24*time.Hour))
		s.Require().NoError(err)
		s.Equal(int64(1), n)
		_, err = cc.GetByID(ctx, freshID)
		s.NoError(err)
	})
}
