package storage

import (
	"context"
	"time"

	"github.com/umputun/tg-moderator/app/storage/engine"
)

func (s *StorageTestSuite) TestSamples() {
	ctx := context.Background()
	s.forEachDB("samples", func(db *engine.SQL) {
		smp, err := NewSamples(ctx, db)
		s.Require().NoError(err)

		ts := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
		s.Require().NoError(smp.Add(ctx, Sample{Type: SampleTypeSpam, Origin: SampleOriginUser, Message: "win prize",
			UserID: 42, ChatID: -1, Actor: "admin", CreatedAt: ts}))
		s.Require().NoError(smp.Add(ctx, Sample{Type: SampleTypeHam, Origin: SampleOriginPreset, Message: "hi all",
			CreatedAt: ts}))
		s.Require().NoError(smp.Add(ctx, Sample{Type: SampleTypeSpam, Origin: SampleOriginUser, Message: "cheap pills",
			CreatedAt: ts.Add(time.Minute)}))

		spam, err := smp.List(ctx, SampleTypeSpam, 10)
		s.Require().NoError(err)
		s.Require().Len(spam, 2)
		s.Equal("cheap pills", spam[0].Message, "newest first")
		s.Equal("win prize", spam[1].Message)
		s.Equal(int64(42), spam[1].UserID)
		s.Equal("admin", spam[1].Actor)

		limited, err := smp.List(ctx, SampleTypeSpam, 1)
		s.Require().NoError(err)
		s.Len(limited, 1)

		// same message re-classified
		s.Require().NoError(smp.Add(ctx, Sample{Type: SampleTypeHam, Origin: SampleOriginUser, Message: "win prize",
			Actor: "other admin", CreatedAt: ts.Add(2 * time.Minute)}))
		ham, err := smp.List(ctx, SampleTypeHam, 0)
		s.Require().NoError(err)
		s.Require().Len(ham, 2)
		s.Equal("win prize", ham[0].Message)
		s.Equal("other admin", ham[0].Actor)

		spam, err = smp.List(ctx, SampleTypeSpam, 10)
		s.Require().NoError(err)
		s.Len(spam, 1)
	})
}

func (s *StorageTestSuite) TestSamples_Validation() {
	ctx := context.Background()
	s.forEachDB("samples", func(db *engine.SQL) {
		smp, err := NewSamples(ctx, db)
		s.Require().NoError(err)

		s.ErrorContains(smp.Add(ctx, Sample{Type: "bad", Origin: SampleOriginUser, Message: "x"}), "invalid sample type")
		s.ErrorContains(smp.Add(ctx, Sample{Type: SampleTypeSpam, Origin: "any", Message: "x"}), "invalid sample origin")
		s.ErrorContains(smp.Add(ctx, Sample{Type: SampleTypeSpam, Origin: SampleOriginUser}), "empty sample message")
	})
}
