package storage

import (
	"context"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

func (s *StorageTestSuite) TestAuditLog() {
	ctx := context.Background()
	s.forEachDB("audit_log", func(db *engine.SQL) {
		al, err := NewAuditLog(ctx, db)
		s.Require().NoError(err)

		now := time.Now()
		rec, err := al.Add(ctx, AuditRecord{Action: AuditWarn, UserID: 42, ChatID: -1001, Actor: "telegram:1:admin",
			ActorKind: "telegram_user", Reason: "flood", CreatedAt: now.Add(-2 * time.Minute)})
		s.Require().NoError(err)
		s.NotEmpty(rec.ID)
		s.Equal("gr1", rec.GID)

		_, err = al.Add(ctx, AuditRecord{Action: AuditBan, UserID: 42, Actor: "system:auto-ban", ActorKind: "system",
			CreatedAt: now.Add(-time.Minute)})
		s.Require().NoError(err)
		_, err = al.Add(ctx, AuditRecord{Action: AuditBan, UserID: 43, Actor: "x", ActorKind: "system"})
		s.Require().NoError(err)

		recs, err := al.ListByUser(ctx, 42, 10)
		s.Require().NoError(err)
		s.Require().Len(recs, 2)
		s.Equal(AuditBan, recs[0].Action, "newest first")
		s.Equal(AuditWarn, recs[1].Action)

		recs, err = al.ListByUser(ctx, 42, 1)
		s.Require().NoError(err)
		s.Len(recs, 1)

		recs, err = al.ListByUser(ctx, 99, 10)
		s.Require().NoError(err)
		s.Empty(recs)
	})
}

func (s *StorageTestSuite) TestAuditLog_IsGloballyBanned() {
	ctx := context.Background()
	s.forEachDB("audit_log", func(db *engine.SQL) {
		al, err := NewAuditLog(ctx, db)
		s.Require().NoError(err)
		now := time.Now()

		banned, err := al.IsGloballyBanned(ctx, 42)
		s.Require().NoError(err)
		s.False(banned)

		_, err = al.Add(ctx, AuditRecord{Action: AuditBan, UserID: 42, ChatID: -5, Actor: "a", ActorKind: "system",
			CreatedAt: now.Add(-3 * time.Minute)})
		s.Require().NoError(err)
		banned, err = al.IsGloballyBanned(ctx, 42)
		s.Require().NoError(err)
		s.False(banned, "chat ban is not global")

		_, err = al.Add(ctx, AuditRecord{Action: AuditSpamBan, UserID: 42, Actor: "a", ActorKind: "system",
			CreatedAt: now.Add(-2 * time.Minute)})
		s.Require().NoError(err)
		banned, err = al.IsGloballyBanned(ctx, 42)
		s.Require().NoError(err)
		s.True(banned)

		_, err = al.Add(ctx, AuditRecord{Action: AuditUnban, UserID: 42, Actor: "a", ActorKind: "system",
			CreatedAt: now.Add(-time.Minute)})
		s.Require().NoError(err)
		banned, err = al.IsGloballyBanned(ctx, 42)
		s.Require().NoError(err)
		s.False(banned, "unbanned after the ban")
	})
}
