package storage

import (
	"context"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

func (s *StorageTestSuite) TestMessages() {
	ctx := context.Background()
	s.forEachDB("messages", func(db *engine.SQL) {
		m, err := NewMessages(ctx, db)
		s.Require().NoError(err)

		s.Require().NoError(m.Save(ctx, Message{ChatID: -1, MsgID: 10, UserID: 42, Text: "hello"}))
		s.Require().NoError(m.Save(ctx, Message{ChatID: -1, MsgID: 10, UserID: 42, Text: "dup"}))

		msg, err := m.Get(ctx, -1, 10)
		s.Require().NoError(err)
		s.Equal("hello", msg.Text)
		s.False(msg.Backfilled)

		res, err := m.Backfill(ctx, Message{ChatID: -1, MsgID: 10, UserID: 42})
		s.Require().NoError(err)
		s.Equal(BackfillAlreadyExists, res)

		res, err = m.Backfill(ctx, Message{ChatID: -1, MsgID: 11, UserID: 42, Text: "spam", HasMedia: true})
		s.Require().NoError(err)
		s.Equal(BackfillInserted, res)
		res, err = m.Backfill(ctx, Message{ChatID: -1, MsgID: 11, UserID: 42})
		s.Require().NoError(err)
		s.Equal(BackfillAlreadyExists, res)

		msg, err = m.Get(ctx, -1, 11)
		s.Require().NoError(err)
		s.True(msg.Backfilled)
		s.True(msg.HasMedia)

		s.Require().NoError(m.MarkDeleted(ctx, -1, 11))
		msg, err = m.Get(ctx, -1, 11)
		s.Require().NoError(err)
		s.True(msg.Deleted)

		_, err = m.Get(ctx, -1, 99)
		s.ErrorIs(err, ErrNotFound)
	})
}
