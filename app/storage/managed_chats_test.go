package storage

import (
	"context"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

func (s *StorageTestSuite) TestManagedChats() {
	ctx := context.Background()
	s.forEachDB("managed_chats", func(db *engine.SQL) {
		mc, err := NewManagedChats(ctx, db)
		s.Require().NoError(err)

		s.Require().NoError(mc.Upsert(ctx, -1001, "first"))
		s.Require().NoError(mc.Upsert(ctx, -1002, "second"))
		s.Require().NoError(mc.Upsert(ctx, -1001, "first renamed"))

		chats, err := mc.GetAllChats(ctx)
		s.Require().NoError(err)
		s.Require().Len(chats, 2)

		c, err := mc.Get(ctx, -1001)
		s.Require().NoError(err)
		s.Equal("first renamed", c.Title)
		s.True(c.IsActive)
		s.False(c.IsDeleted)
		s.Equal(HealthUnknown, c.HealthStatus)

		s.Require().NoError(mc.SetActive(ctx, -1002, false))
		c, err = mc.Get(ctx, -1002)
		s.Require().NoError(err)
		s.False(c.IsActive)

		s.Require().NoError(mc.MarkDeleted(ctx, -1001))
		c, err = mc.Get(ctx, -1001)
		s.Require().NoError(err)
		s.True(c.IsDeleted)

		s.Require().NoError(mc.Upsert(ctx, -1001, "back"))
		c, err = mc.Get(ctx, -1001)
		s.Require().NoError(err)
		s.False(c.IsDeleted, "seen again means re-activated")
		s.True(c.IsActive)

		_, err = mc.Get(ctx, -9)
		s.ErrorIs(err, ErrNotFound)
	})
}

func (s *StorageTestSuite) TestManagedChats_Health() {
	ctx := context.Background()
	s.forEachDB("managed_chats", func(db *engine.SQL) {
		mc, err := NewManagedChats(ctx, db)
		s.Require().NoError(err)
		s.Require().NoError(mc.Upsert(ctx, 1, "a"))
		s.Require().NoError(mc.Upsert(ctx, 2, "b"))
		s.Require().NoError(mc.UpdateHealth(ctx, 2, HealthError, false, true))

		h, err := mc.HealthStatuses(ctx, []int64{1, 2, 3})
		s.Require().NoError(err)
		s.Len(h, 2)
		s.Equal(HealthUnknown, h[1].HealthStatus)
		s.True(h[1].BotCanRestrict)
		s.Equal(HealthError, h[2].HealthStatus)
		s.False(h[2].BotCanRestrict)

		h, err = mc.HealthStatuses(ctx, nil)
		s.Require().NoError(err)
		s.Empty(h)

		c, err := mc.Get(ctx, 2)
		s.Require().NoError(err)
		s.True(c.LastHealthCheck.Valid)

		// failed check keeps rights known from the previous one
		s.Require().NoError(mc.UpdateHealth(ctx, 1, HealthHealthy, true, true))
		s.Require().NoError(mc.MarkHealthUnknown(ctx, 1))
		s.Require().NoError(mc.MarkHealthUnknown(ctx, 2))
		h, err = mc.HealthStatuses(ctx, []int64{1, 2})
		s.Require().NoError(err)
		s.Equal(HealthUnknown, h[1].HealthStatus)
		s.True(h[1].BotCanRestrict)
		s.Equal(HealthUnknown, h[2].HealthStatus)
		s.False(h[2].BotCanRestrict)
		c, err = mc.Get(ctx, 1)
		s.Require().NoError(err)
		s.True(c.BotCanDelete)
	})
}
