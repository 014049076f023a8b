package storage

import (
	"context"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

type testWarnCfg struct {
	Enabled   bool `json:"enabled"`
	Threshold int  `json:"threshold"`
}

func (s *StorageTestSuite) TestChatConfigs() {
	ctx := context.Background()
	s.forEachDB("chat_configs", func(db *engine.SQL) {
		cfgs, err := NewChatConfigs[testWarnCfg](ctx, db, "warnings")
		s.Require().NoError(err)
		other, err := NewChatConfigs[testWarnCfg](ctx, db, "other")
		s.Require().NoError(err)

		var c testWarnCfg
		s.ErrorIs(cfgs.Get(ctx, -1, &c), ErrNotFound)

		s.Require().NoError(cfgs.Set(ctx, -1, &testWarnCfg{Enabled: true, Threshold: 5}))
		s.Require().NoError(cfgs.Set(ctx, -1, &testWarnCfg{Enabled: false, Threshold: 7}))
		s.Require().NoError(cfgs.Get(ctx, -1, &c))
		s.Equal(testWarnCfg{Enabled: false, Threshold: 7}, c)

		s.ErrorIs(other.Get(ctx, -1, &c), ErrNotFound, "sections are separate")

		s.Require().NoError(cfgs.Delete(ctx, -1))
		s.ErrorIs(cfgs.Get(ctx, -1, &c), ErrNotFound)
	})
}
