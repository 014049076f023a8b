package storage

import (
	"context"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

func (s *StorageTestSuite) TestTrustedUsers() {
	ctx := context.Background()
	s.forEachDB("trusted_users", func(db *engine.SQL) {
		tu, err := NewTrustedUsers(ctx, db)
		s.Require().NoError(err)

		trusted, err := tu.IsTrusted(ctx, 42)
		s.Require().NoError(err)
		s.False(trusted)

		s.Require().NoError(tu.Trust(ctx, TrustedUser{UserID: 42, UserName: "bob", Actor: "admin", Reason: "known"}))
		s.Require().NoError(tu.Trust(ctx, TrustedUser{UserID: 42, UserName: "bob2", Actor: "admin2"}))
		trusted, err = tu.IsTrusted(ctx, 42)
		s.Require().NoError(err)
		s.True(trusted)

		list, err := tu.List(ctx)
		s.Require().NoError(err)
		s.Require().Len(list, 1)
		s.Equal("bob2", list[0].UserName)

		removed, err := tu.Untrust(ctx, 42)
		s.Require().NoError(err)
		s.True(removed)
		removed, err = tu.Untrust(ctx, 42)
		s.Require().NoError(err)
		s.False(removed, "untrust is idempotent")
	})
}
