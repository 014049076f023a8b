package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/go-pkgz/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-moderator/app/crosschat"
	"github.com/umputun/tg-moderator/app/handlers/mocks"
	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
	"github.com/umputun/tg-moderator/app/storage/engine"
)

// fanoutOver makes executor mock running action sequentially over given chats
func fanoutOver(ids ...int64) *mocks.FanoutExecutorMock {
	return &mocks.FanoutExecutorMock{
		ExecuteAcrossChatsFunc: func(ctx context.Context, _ string, action crosschat.Action) (crosschat.Result, error) {
			res := crosschat.Result{}
			for _, id := range ids {
				if err := action(ctx, id); err != nil {
					res.Failed++
					continue
				}
				res.Success++
			}
			return res, nil
		},
	}
}

var (
	user = moderation.UserIdentity{ID: 42, Name: "user42"}
	chat = moderation.ChatIdentity{ID: -100, Title: "group"}
)

func TestBans_Ban(t *testing.T) {
	ctx := context.Background()

	t.Run("single chat", func(t *testing.T) {
		client := &mocks.ChatActionsMock{BanChatMemberFunc: func(context.Context, int64, int64, time.Time) error { return nil }}
		fanout := fanoutOver()
		fan, err := NewBans(client, fanout).Ban(ctx, user, &chat)
		require.NoError(t, err)
		assert.Equal(t, moderation.Fanout{ChatsAffected: 1}, fan)
		require.Len(t, client.BanChatMemberCalls(), 1)
		assert.Equal(t, int64(-100), client.BanChatMemberCalls()[0].ChatID)
		assert.Equal(t, int64(42), client.BanChatMemberCalls()[0].UserID)
		assert.True(t, client.BanChatMemberCalls()[0].Until.IsZero(), "permanent")
		assert.Empty(t, fanout.ExecuteAcrossChatsCalls())
	})

	t.Run("single chat failure", func(t *testing.T) {
		client := &mocks.ChatActionsMock{BanChatMemberFunc: func(context.Context, int64, int64, time.Time) error {
			return errors.New("not enough rights")
		}}
		fan, err := NewBans(client, fanoutOver()).Ban(ctx, user, &chat)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not enough rights")
		assert.Equal(t, moderation.Fanout{ChatsFailed: 1}, fan)
	})

	t.Run("global partial failure is success", func(t *testing.T) {
		client := &mocks.ChatActionsMock{BanChatMemberFunc: func(_ context.Context, chatID, _ int64, _ time.Time) error {
			if chatID == 2 {
				return errors.New("chat not found")
			}
			return nil
		}}
		fan, err := NewBans(client, fanoutOver(1, 2, 3)).Ban(ctx, user, nil)
		require.NoError(t, err)
		assert.Equal(t, moderation.Fanout{ChatsAffected: 2, ChatsFailed: 1}, fan)
		assert.Len(t, client.BanChatMemberCalls(), 3)
	})

	t.Run("global all failed", func(t *testing.T) {
		client := &mocks.ChatActionsMock{BanChatMemberFunc: func(context.Context, int64, int64, time.Time) error {
			return errors.New("flood")
		}}
		fan, err := NewBans(client, fanoutOver(1, 2)).Ban(ctx, user, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "all 2 chats")
		assert.Equal(t, moderation.Fanout{ChatsFailed: 2}, fan)
	})

	t.Run("global without chats", func(t *testing.T) {
		client := &mocks.ChatActionsMock{}
		fan, err := NewBans(client, fanoutOver()).Ban(ctx, user, nil)
		require.NoError(t, err)
		assert.Equal(t, moderation.Fanout{}, fan)
	})

	t.Run("fanout error", func(t *testing.T) {
		fanout := &mocks.FanoutExecutorMock{ExecuteAcrossChatsFunc: func(context.Context, string, crosschat.Action) (crosschat.Result, error) {
			return crosschat.Result{}, errors.New("db down")
		}}
		_, err := NewBans(&mocks.ChatActionsMock{}, fanout).Ban(ctx, user, nil)
		require.Error(t, err)
	})
}

func TestBans_TempBanUnbanKick(t *testing.T) {
	ctx := context.Background()
	client := &mocks.ChatActionsMock{
		BanChatMemberFunc:   func(context.Context, int64, int64, time.Time) error { return nil },
		UnbanChatMemberFunc: func(context.Context, int64, int64) error { return nil },
	}
	b := NewBans(client, fanoutOver(1, 2))

	fan, until, err := b.TempBan(ctx, user, nil, time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 2, fan.ChatsAffected)
	assert.WithinDuration(t, time.Now().Add(time.Hour), until, time.Minute)
	for _, c := range client.BanChatMemberCalls() {
		assert.Equal(t, until, c.Until)
	}

	fan, err = b.Unban(ctx, user, &chat)
	require.NoError(t, err)
	assert.Equal(t, 1, fan.ChatsAffected)

	client.ResetCalls()
	require.NoError(t, b.Kick(ctx, user, chat))
	assert.Len(t, client.BanChatMemberCalls(), 1)
	assert.Len(t, client.UnbanChatMemberCalls(), 1)

	client.UnbanChatMemberFunc = func(context.Context, int64, int64) error { return errors.New("failed") }
	err = b.Kick(ctx, user, chat)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unban")
}

func TestRestrictions(t *testing.T) {
	ctx := context.Background()
	client := &mocks.ChatActionsMock{RestrictChatMemberFunc: func(context.Context, int64, int64, bool, time.Time) error { return nil }}
	r := NewRestrictions(client, fanoutOver(1, 2, 3))

	fan, until, err := r.Restrict(ctx, user, nil, 10*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 3, fan.ChatsAffected)
	assert.WithinDuration(t, time.Now().Add(10*time.Minute), until, time.Minute)
	assert.True(t, client.RestrictChatMemberCalls()[0].ReadOnly)

	client.ResetCalls()
	require.NoError(t, r.RestorePermissions(ctx, user, chat))
	require.Len(t, client.RestrictChatMemberCalls(), 1)
	assert.False(t, client.RestrictChatMemberCalls()[0].ReadOnly)
	assert.True(t, client.RestrictChatMemberCalls()[0].Until.IsZero())
}

func TestMessages_Delete(t *testing.T) {
	ctx := context.Background()
	store := &mocks.MessageStoreMock{MarkDeletedFunc: func(context.Context, int64, int) error { return nil }}

	tbl := []struct {
		name     string
		err      error
		wantErr  bool
		wantMark int
	}{
		{"deleted", nil, false, 1},
		{"already deleted", fmt.Errorf("api: %w", ErrAlreadyDeleted), false, 1},
		{"no rights", errors.New("message can't be deleted"), true, 0},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			store.ResetCalls()
			client := &mocks.ChatActionsMock{DeleteMessageFunc: func(context.Context, int64, int) error { return tt.err }}
			err := NewMessages(client, store).Delete(ctx, chat, 5)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			assert.Len(t, store.MarkDeletedCalls(), tt.wantMark)
		})
	}

	t.Run("store failure ignored", func(t *testing.T) {
		client := &mocks.ChatActionsMock{DeleteMessageFunc: func(context.Context, int64, int) error { return nil }}
		failing := &mocks.MessageStoreMock{MarkDeletedFunc: func(context.Context, int64, int) error { return errors.New("db") }}
		assert.NoError(t, NewMessages(client, failing).Delete(ctx, chat, 5))
	})
}

func TestMessages_EnsureExists(t *testing.T) {
	ctx := context.Background()
	db, err := engine.NewSqlite(":memory:", "gr1")
	require.NoError(t, err)
	defer db.Close()
	store, err := storage.NewMessages(ctx, db)
	require.NoError(t, err)

	m := NewMessages(&mocks.ChatActionsMock{}, store)
	require.NoError(t, m.EnsureExists(ctx, chat, 10, user, "spam text", true))
	require.NoError(t, m.EnsureExists(ctx, chat, 10, user, "spam text", true), "second call is a no-op")

	msg, err := store.Get(ctx, chat.ID, 10)
	require.NoError(t, err)
	assert.Equal(t, "spam text", msg.Text)
	assert.True(t, msg.HasMedia)
	assert.True(t, msg.Backfilled)

	failing := &mocks.MessageStoreMock{BackfillFunc: func(context.Context, storage.Message) (storage.BackfillResult, error) {
		return "", errors.New("db down")
	}}
	assert.Error(t, NewMessages(&mocks.ChatActionsMock{}, failing).EnsureExists(ctx, chat, 10, user, "", false))
}

func TestWarningsTrustTraining(t *testing.T) {
	ctx := context.Background()
	admin := moderation.FromTelegramUser(1, "admin")

	ws := &mocks.WarnStoreMock{WarnFunc: func(context.Context, storage.Warning) (int, error) { return 2, nil }}
	count, err := NewWarnings(ws).Warn(ctx, user, nil, admin, "rude", 7)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, storage.Warning{UserID: 42, ChatID: 0, Actor: "telegram:1:admin", Reason: "rude", MessageID: 7},
		ws.WarnCalls()[0].Warn)

	ts := &mocks.TrustStoreMock{
		TrustFunc:   func(context.Context, storage.TrustedUser) error { return nil },
		UntrustFunc: func(context.Context, int64) (bool, error) { return true, nil },
	}
	tr := NewTrust(ts)
	require.NoError(t, tr.Trust(ctx, user, admin, "known"))
	assert.Equal(t, "user42", ts.TrustCalls()[0].U.UserName)
	was, err := tr.Untrust(ctx, user)
	require.NoError(t, err)
	assert.True(t, was)

	ss := &mocks.SampleStoreMock{AddFunc: func(context.Context, storage.Sample) error { return nil }}
	require.NoError(t, NewTraining(ss).AddSpamSample(ctx, user, chat, "buy now", admin))
	assert.Equal(t, storage.Sample{Type: storage.SampleTypeSpam, Origin: storage.SampleOriginUser, Message: "buy now",
		UserID: 42, ChatID: -100, Actor: "telegram:1:admin"}, ss.AddCalls()[0].Smpl)
}

func TestAudit_Record(t *testing.T) {
	ctx := context.Background()
	db, err := engine.NewSqlite(":memory:", "gr1")
	require.NoError(t, err)
	defer db.Close()
	store, err := storage.NewAuditLog(ctx, db)
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	a := NewAudit(store, buf)
	require.NoError(t, a.Record(ctx, moderation.AuditEntry{Action: moderation.AuditBan, User: user, Chat: &chat,
		Actor: moderation.AutoBan, Reason: "threshold"}))
	require.NoError(t, a.Record(ctx, moderation.AuditEntry{Action: moderation.AuditTrust, User: user,
		Actor: moderation.FromWebUser("w1", "a@example.com")}))

	recs, err := store.ListByUser(ctx, 42, 10)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	var rec storage.AuditRecord
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
	assert.Equal(t, storage.AuditBan, rec.Action)
	assert.Equal(t, int64(-100), rec.ChatID)
	assert.Equal(t, "system:auto-ban", rec.Actor)
	assert.Equal(t, "system", rec.ActorKind)
	assert.NotEmpty(t, rec.ID)

	require.NoError(t, json.Unmarshal([]byte(lines[1]), &rec))
	assert.Equal(t, int64(0), rec.ChatID)
	assert.Equal(t, "web_user", rec.ActorKind)
}

func TestAudit_StoreFailure(t *testing.T) {
	store := &mocks.AuditStoreMock{AddFunc: func(context.Context, storage.AuditRecord) (storage.AuditRecord, error) {
		return storage.AuditRecord{}, errors.New("db down")
	}}
	buf := &bytes.Buffer{}
	err := NewAudit(store, buf).Record(context.Background(), moderation.AuditEntry{Action: moderation.AuditWarn, User: user,
		Actor: moderation.AutoDetection})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db down")
	assert.Contains(t, buf.String(), `"action":"warn"`, "file still written")

	assert.NoError(t, NewAudit(&mocks.AuditStoreMock{AddFunc: func(_ context.Context, r storage.AuditRecord) (storage.AuditRecord, error) {
		return r, nil
	}}, nil).Record(context.Background(), moderation.AuditEntry{Action: moderation.AuditWarn, User: user}))
}

func TestNotifications(t *testing.T) {
	ctx := context.Background()

	t.Run("user and admins", func(t *testing.T) {
		sender := &mocks.DirectSenderMock{SendMessageFunc: func(context.Context, int64, string, int) (int, error) { return 1, nil }}
		n := NewNotifications(sender, -999)
		require.NoError(t, n.NotifyUser(ctx, user, &chat, "you are warned"))
		require.NoError(t, n.NotifyAdmins(ctx, &chat, "user banned"))
		require.Len(t, sender.SendMessageCalls(), 2)
		assert.Equal(t, int64(42), sender.SendMessageCalls()[0].ChatID)
		assert.Contains(t, sender.SendMessageCalls()[0].Text, "group")
		assert.Equal(t, int64(-999), sender.SendMessageCalls()[1].ChatID)
		assert.Equal(t, "[group] user banned", sender.SendMessageCalls()[1].Text)
	})

	t.Run("no admin chat", func(t *testing.T) {
		sender := &mocks.DirectSenderMock{}
		require.NoError(t, NewNotifications(sender, 0).NotifyAdmins(ctx, nil, "hi"))
		assert.Empty(t, sender.SendMessageCalls())
	})

	t.Run("failure warnings throttled", func(t *testing.T) {
		sender := &mocks.DirectSenderMock{SendMessageFunc: func(context.Context, int64, string, int) (int, error) {
			return 0, errors.New("bot was blocked by the user")
		}}
		n := NewNotifications(sender, -999)
		now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		n.now = func() time.Time { return now }

		out := testutils.CaptureStderr(t, func() {
			log.SetOutput(os.Stderr)
			require.Error(t, n.NotifyUser(ctx, user, nil, "hi"))
			first := n.lastWarn.Load()
			assert.Equal(t, now.UnixNano(), first)

			now = now.Add(30 * time.Second)
			require.Error(t, n.NotifyUser(ctx, user, nil, "hi"))
			assert.Equal(t, first, n.lastWarn.Load(), "within interval, not updated")

			now = now.Add(31 * time.Second)
			require.Error(t, n.NotifyAdmins(ctx, nil, "hi"))
			assert.Equal(t, now.UnixNano(), n.lastWarn.Load())
		})
		log.SetOutput(os.Stderr)
		assert.Equal(t, 2, strings.Count(out, "[WARN] notification to"))
		assert.Equal(t, 1, strings.Count(out, "[DEBUG] notification to user user42"))
	})
}

func TestReportOpener(t *testing.T) {
	ctx := context.Background()
	store := &mocks.ReportStoreMock{AddFunc: func(context.Context, storage.Report) (int64, error) { return 17, nil }}
	pub := &mocks.ReviewPublisherMock{PublishFunc: func(context.Context, storage.Report) error { return nil }}

	id, err := NewReportOpener(store, pub).OpenReport(ctx, moderation.ReportRequest{User: user, Chat: chat, MessageID: 3,
		Reporter: moderation.FileScanner, Text: "see attached", Reason: "malware", Violations: []string{"a.exe", "b.scr"}})
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
	rep := pub.PublishCalls()[0].Rep
	assert.Equal(t, int64(17), rep.ID)
	assert.Equal(t, storage.ReportContent, rep.Type)
	assert.Equal(t, storage.ReportPending, rep.Status)
	assert.Equal(t, "file-scanner", rep.ReporterName)
	assert.Equal(t, "see attached", rep.Text)
	assert.Equal(t, "malware\na.exe\nb.scr", rep.Reason)

	pub.PublishFunc = func(context.Context, storage.Report) error { return errors.New("tg down") }
	id, err = NewReportOpener(store, pub).OpenReport(ctx, moderation.ReportRequest{User: user, Chat: chat})
	require.NoError(t, err, "publication failure is not fatal")
	assert.Equal(t, int64(17), id)

	pub.PublishFunc = func(context.Context, storage.Report) error { return nil }
	id, err = NewReportOpener(store, pub).OpenExamFailure(ctx, moderation.ReportRequest{User: user, Chat: chat,
		Reporter: moderation.FromSystem("exam"), Reason: "wrong answer"})
	require.NoError(t, err)
	assert.Equal(t, int64(17), id)
	rep = pub.PublishCalls()[2].Rep
	assert.Equal(t, storage.ReportExamFailure, rep.Type)
	assert.Equal(t, "wrong answer", rep.Reason)
	assert.Empty(t, rep.Text)
	assert.Equal(t, "exam", rep.ReporterName)

	store.AddFunc = func(context.Context, storage.Report) (int64, error) { return 0, errors.New("db down") }
	_, err = NewReportOpener(store, pub).OpenReport(ctx, moderation.ReportRequest{User: user, Chat: chat})
	require.Error(t, err)
}
