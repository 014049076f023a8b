package storage

import (
	"context"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

func (s *StorageTestSuite) TestWarnings() {
	ctx := context.Background()
	s.forEachDB("warnings", func(db *engine.SQL) {
		w, err := NewWarnings(ctx, db)
		s.Require().NoError(err)

		count, err := w.Warn(ctx, Warning{UserID: 42, ChatID: -1, Actor: "admin", Reason: "r1"})
		s.Require().NoError(err)
		s.Equal(1, count)

		count, err = w.Warn(ctx, Warning{UserID: 42, ChatID: -1, Actor: "admin", Reason: "r2"})
		s.Require().NoError(err)
		s.Equal(2, count)

		count, err = w.Warn(ctx, Warning{UserID: 42, ChatID: -2, Actor: "admin", Reason: "r3"})
		s.Require().NoError(err)
		s.Equal(1, count, "per chat count")

		count, err = w.Warn(ctx, Warning{UserID: 42, Actor: "admin", Reason: "global"})
		s.Require().NoError(err)
		s.Equal(4, count, "global count covers all chats")

		count, err = w.Count(ctx, 42, -1)
		s.Require().NoError(err)
		s.Equal(2, count)

		s.Require().NoError(w.Clear(ctx, 42))
		count, err = w.Count(ctx, 42, 0)
		s.Require().NoError(err)
		s.Zero(count)
	})
}
