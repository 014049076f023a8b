package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	tbapi "github.com/OvyFlash/telegram-bot-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-moderator/app/events/mocks"
	"github.com/umputun/tg-moderator/app/handlers"
	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
	"github.com/umputun/tg-moderator/app/storage/engine"
)

type reviewFixture struct {
	reports   *mocks.ReportStoreMock
	contexts  *mocks.CallbackStoreMock
	moderator *mocks.ModeratorMock
	messenger *mocks.MessengerMock
	svc       *ReportCallbackService
}

func newReviewFixture(rep storage.Report) *reviewFixture {
	f := &reviewFixture{
		reports: &mocks.ReportStoreMock{
			GetByIDFunc: func(ctx context.Context, id int64) (storage.Report, error) { return rep, nil },
			TryUpdateStatusFunc: func(ctx context.Context, id int64, from storage.ReportStatus, reviewer, action, notes string) (bool, error) {
				return true, nil
			},
		},
		contexts: &mocks.CallbackStoreMock{
			GetByIDFunc: func(ctx context.Context, id int64) (storage.CallbackContext, error) {
				return storage.CallbackContext{ID: id, ReportID: rep.ID, ReportType: rep.Type, ChatID: rep.ChatID}, nil
			},
			DeleteFunc: func(ctx context.Context, id int64) error { return nil },
		},
		moderator: &mocks.ModeratorMock{
			BanUserFunc: func(ctx context.Context, in moderation.BanIntent) moderation.BanResult {
				return moderation.BanResult{Outcome: moderation.Outcome{Success: true}, Fanout: moderation.Fanout{ChatsAffected: 2}}
			},
			WarnUserFunc: func(ctx context.Context, in moderation.WarnIntent) moderation.WarnResult {
				return moderation.WarnResult{Outcome: moderation.Outcome{Success: true}, WarningCount: 1}
			},
			MarkAsSpamAndBanFunc: func(ctx context.Context, in moderation.SpamBanIntent) moderation.SpamBanResult {
				return moderation.SpamBanResult{Outcome: moderation.Outcome{Success: true}, MessageDeleted: true}
			},
			RestoreUserPermissionsFunc: func(ctx context.Context, in moderation.RestorePermissionsIntent) moderation.ActionResult {
				return moderation.ActionResult{Outcome: moderation.Outcome{Success: true}}
			},
			KickUserFromChatFunc: func(ctx context.Context, in moderation.KickIntent) moderation.ActionResult {
				return moderation.ActionResult{Outcome: moderation.Outcome{Success: true}}
			},
		},
		messenger: okMessenger(),
	}
	f.svc = NewReportCallbackService(f.reports, f.contexts, f.moderator, f.messenger)
	return f
}

func okMessenger() *mocks.MessengerMock {
	return &mocks.MessengerMock{
		SendMessageFunc: func(ctx context.Context, chatID int64, text string, replyTo int) (int, error) { return 1, nil },
		SendKeyboardFunc: func(ctx context.Context, chatID int64, text string, keyboard tbapi.InlineKeyboardMarkup) (int, error) {
			return 1, nil
		},
		EditTextFunc:      func(ctx context.Context, chatID int64, msgID int, text string) error { return nil },
		EditCaptionFunc:   func(ctx context.Context, chatID int64, msgID int, caption string) error { return nil },
		DeleteMessageFunc: func(ctx context.Context, chatID int64, msgID int) error { return nil },
	}
}

func callback(data string) *tbapi.CallbackQuery {
	return &tbapi.CallbackQuery{
		ID:      "q1",
		From:    &tbapi.User{ID: 10, UserName: "admin"},
		Message: &tbapi.Message{MessageID: 500, Chat: tbapi.Chat{ID: -999}, Text: "🚩 content report"},
		Data:    data,
	}
}

func pendingReport(typ storage.ReportType) storage.Report {
	return storage.Report{ID: 7, Type: typ, ChatID: -100, ChatTitle: "chat", SubjectUserID: 1, SubjectUserName: "spammer",
		MessageID: 33, CommandMsgID: 34, Text: "buy now", Status: storage.ReportPending}
}

func TestParseCallbackData(t *testing.T) {
	tbl := []struct {
		data   string
		ctxID  int64
		action int
		ok     bool
	}{
		{"rpt:12:3", 12, 3, true},
		{"rpt:1:0", 1, 0, true},
		{"rpt:abc:0", 0, 0, false},
		{"rpt:123", 0, 0, false},
		{"rpt:", 0, 0, false},
		{"rpt:1:x", 0, 0, false},
		{"rpt:1:2:3", 0, 0, false},
		{"", 0, 0, false},
		{"R+123:45", 0, 0, false},
	}
	for _, tt := range tbl {
		t.Run(tt.data, func(t *testing.T) {
			ctxID, action, ok := parseCallbackData(tt.data)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.ctxID, ctxID)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestReportCallbackService_CanHandle(t *testing.T) {
	svc := NewReportCallbackService(nil, nil, nil, nil)
	assert.True(t, svc.CanHandle("rpt:1:2"))
	assert.True(t, svc.CanHandle("rpt:"))
	assert.False(t, svc.CanHandle("rpt"))
	assert.False(t, svc.CanHandle("R+1:2"))
	assert.False(t, svc.CanHandle(""))
}

func TestReportCallbackService_MalformedPayload(t *testing.T) {
	for _, data := range []string{"", "rpt:", "rpt:123", "rpt:abc:0", "rpt:1:x"} {
		t.Run(data, func(t *testing.T) {
			f := newReviewFixture(pendingReport(storage.ReportContent))
			require.NoError(t, f.svc.Handle(context.Background(), callback(data)))
			assert.Empty(t, f.contexts.GetByIDCalls(), "no context lookup")
			assert.Empty(t, f.reports.GetByIDCalls(), "no report lookup")
			assert.Empty(t, f.messenger.EditTextCalls())
		})
	}
}

func TestReportCallbackService_Expired(t *testing.T) {
	f := newReviewFixture(pendingReport(storage.ReportContent))
	f.contexts.GetByIDFunc = func(ctx context.Context, id int64) (storage.CallbackContext, error) {
		return storage.CallbackContext{}, fmt.Errorf("callback context %d: %w", id, storage.ErrNotFound)
	}

	require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:1")))
	assert.Empty(t, f.reports.GetByIDCalls())
	assert.Empty(t, f.contexts.DeleteCalls())
	require.Len(t, f.messenger.EditTextCalls(), 1)
	assert.Contains(t, f.messenger.EditTextCalls()[0].Text, "expired")
	assert.Equal(t, int64(-999), f.messenger.EditTextCalls()[0].ChatID)
	assert.Equal(t, 500, f.messenger.EditTextCalls()[0].MsgID)
}

func TestReportCallbackService_StorageFaults(t *testing.T) {
	t.Run("context lookup", func(t *testing.T) {
		f := newReviewFixture(pendingReport(storage.ReportContent))
		f.contexts.GetByIDFunc = func(ctx context.Context, id int64) (storage.CallbackContext, error) {
			return storage.CallbackContext{}, errors.New("db is locked")
		}
		err := f.svc.Handle(context.Background(), callback("rpt:5:1"))
		require.Error(t, err)
		assert.Empty(t, f.messenger.EditTextCalls())
	})

	t.Run("report lookup", func(t *testing.T) {
		f := newReviewFixture(pendingReport(storage.ReportContent))
		f.reports.GetByIDFunc = func(ctx context.Context, id int64) (storage.Report, error) {
			return storage.Report{}, errors.New("db is locked")
		}
		require.Error(t, f.svc.Handle(context.Background(), callback("rpt:5:1")))
		assert.Empty(t, f.contexts.DeleteCalls(), "context kept for retry")
	})
}

func TestReportCallbackService_ReportNotFound(t *testing.T) {
	f := newReviewFixture(pendingReport(storage.ReportContent))
	f.reports.GetByIDFunc = func(ctx context.Context, id int64) (storage.Report, error) {
		return storage.Report{}, fmt.Errorf("report %d: %w", id, storage.ErrNotFound)
	}

	require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:1")))
	require.Len(t, f.messenger.EditTextCalls(), 1)
	assert.Contains(t, f.messenger.EditTextCalls()[0].Text, "not found")
	require.Len(t, f.contexts.DeleteCalls(), 1)
	assert.Equal(t, int64(5), f.contexts.DeleteCalls()[0].Id)
	assert.Empty(t, f.moderator.BanUserCalls())
}

func TestReportCallbackService_AlreadyReviewed(t *testing.T) {
	rep := pendingReport(storage.ReportContent)
	rep.Status = storage.ReportReviewed
	rep.ReviewedBy = "@bob"
	rep.ActionTaken = "warn"
	f := newReviewFixture(rep)

	require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:1")))
	require.Len(t, f.messenger.EditTextCalls(), 1)
	text := f.messenger.EditTextCalls()[0].Text
	assert.Contains(t, text, "@bob")
	assert.Contains(t, text, "warn")
	assert.Len(t, f.contexts.DeleteCalls(), 1)
	assert.Empty(t, f.moderator.BanUserCalls())
	assert.Empty(t, f.moderator.WarnUserCalls())
	assert.Empty(t, f.reports.TryUpdateStatusCalls())
}

func TestReportCallbackService_InvalidAction(t *testing.T) {
	tbl := []struct {
		typ  storage.ReportType
		data string
	}{
		{storage.ReportContent, "rpt:5:4"},
		{storage.ReportContent, "rpt:5:-1"},
		{storage.ReportExamFailure, "rpt:5:3"},
	}
	for _, tt := range tbl {
		t.Run(string(tt.typ)+" "+tt.data, func(t *testing.T) {
			f := newReviewFixture(pendingReport(tt.typ))
			require.NoError(t, f.svc.Handle(context.Background(), callback(tt.data)))
			require.Len(t, f.messenger.EditTextCalls(), 1)
			assert.Contains(t, f.messenger.EditTextCalls()[0].Text, "invalid action")
			assert.Len(t, f.contexts.DeleteCalls(), 1)
			assert.Empty(t, f.reports.TryUpdateStatusCalls())
			assert.Empty(t, f.moderator.BanUserCalls())
			assert.Empty(t, f.moderator.KickUserFromChatCalls())
		})
	}
}

func TestReportCallbackService_ActionFailed(t *testing.T) {
	f := newReviewFixture(pendingReport(storage.ReportContent))
	f.moderator.BanUserFunc = func(ctx context.Context, in moderation.BanIntent) moderation.BanResult {
		return moderation.BanResult{Outcome: moderation.Outcome{ErrorMessage: "failed to ban in all 3 chats"}}
	}

	require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:1")))
	require.Len(t, f.messenger.EditTextCalls(), 1)
	assert.Contains(t, f.messenger.EditTextCalls()[0].Text, "failed to ban in all 3 chats")
	assert.Len(t, f.contexts.DeleteCalls(), 1)
	assert.Empty(t, f.reports.TryUpdateStatusCalls(), "status not changed")
	assert.Empty(t, f.messenger.DeleteMessageCalls())
}

func TestReportCallbackService_ContentActions(t *testing.T) {
	t.Run("ban", func(t *testing.T) {
		f := newReviewFixture(pendingReport(storage.ReportContent))
		require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:1")))

		require.Len(t, f.moderator.BanUserCalls(), 1)
		in := f.moderator.BanUserCalls()[0].In
		assert.Equal(t, int64(1), in.User.ID)
		assert.Nil(t, in.Chat, "global ban")
		assert.Equal(t, moderation.FromTelegramUser(10, "admin"), in.Executor)

		require.Len(t, f.reports.TryUpdateStatusCalls(), 1)
		upd := f.reports.TryUpdateStatusCalls()[0]
		assert.Equal(t, storage.ReportPending, upd.From)
		assert.Equal(t, "@admin", upd.Reviewer)
		assert.Equal(t, "ban", upd.Action)
		assert.Contains(t, upd.Notes, "banned in 2 chats")

		assert.Len(t, f.contexts.DeleteCalls(), 1)
		require.Len(t, f.messenger.DeleteMessageCalls(), 1)
		assert.Equal(t, 34, f.messenger.DeleteMessageCalls()[0].MsgID, "command message removed")
		require.Len(t, f.messenger.EditTextCalls(), 1)
		assert.Contains(t, f.messenger.EditTextCalls()[0].Text, "ban by @admin")
		assert.True(t, strings.HasPrefix(f.messenger.EditTextCalls()[0].Text, "🚩 content report"))
		assert.Empty(t, f.messenger.SendMessageCalls(), "no reply for non-dismiss actions")
	})

	t.Run("spam", func(t *testing.T) {
		f := newReviewFixture(pendingReport(storage.ReportContent))
		require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:0")))
		require.Len(t, f.moderator.MarkAsSpamAndBanCalls(), 1)
		in := f.moderator.MarkAsSpamAndBanCalls()[0].In
		assert.Equal(t, 33, in.MessageID)
		assert.Equal(t, int64(-100), in.Chat.ID)
		assert.Equal(t, "buy now", in.Text)
		assert.Equal(t, "spam", f.reports.TryUpdateStatusCalls()[0].Action)
	})

	t.Run("warn", func(t *testing.T) {
		f := newReviewFixture(pendingReport(storage.ReportContent))
		require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:2")))
		require.Len(t, f.moderator.WarnUserCalls(), 1)
		in := f.moderator.WarnUserCalls()[0].In
		require.NotNil(t, in.Chat)
		assert.Equal(t, int64(-100), in.Chat.ID)
		assert.Equal(t, 33, in.MessageID)
	})

	t.Run("dismiss", func(t *testing.T) {
		f := newReviewFixture(pendingReport(storage.ReportContent))
		require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:3")))
		assert.Empty(t, f.moderator.BanUserCalls())
		assert.Empty(t, f.moderator.WarnUserCalls())
		assert.Empty(t, f.moderator.MarkAsSpamAndBanCalls())
		assert.Equal(t, "dismiss", f.reports.TryUpdateStatusCalls()[0].Action)
		require.Len(t, f.messenger.SendMessageCalls(), 1)
		reply := f.messenger.SendMessageCalls()[0]
		assert.Equal(t, int64(-100), reply.ChatID)
		assert.Equal(t, 33, reply.ReplyTo)
		assert.Contains(t, reply.Text, "no action")
	})
}

func TestReportCallbackService_ExamActions(t *testing.T) {
	t.Run("approve", func(t *testing.T) {
		f := newReviewFixture(pendingReport(storage.ReportExamFailure))
		require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:0")))
		require.Len(t, f.moderator.RestoreUserPermissionsCalls(), 1)
		assert.Equal(t, int64(-100), f.moderator.RestoreUserPermissionsCalls()[0].In.Chat.ID)
		assert.Equal(t, "approve", f.reports.TryUpdateStatusCalls()[0].Action)
	})

	t.Run("deny", func(t *testing.T) {
		f := newReviewFixture(pendingReport(storage.ReportExamFailure))
		require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:1")))
		require.Len(t, f.moderator.KickUserFromChatCalls(), 1)
		assert.Empty(t, f.moderator.BanUserCalls())
	})

	t.Run("deny and ban", func(t *testing.T) {
		f := newReviewFixture(pendingReport(storage.ReportExamFailure))
		require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:2")))
		require.Len(t, f.moderator.BanUserCalls(), 1)
		assert.Nil(t, f.moderator.BanUserCalls()[0].In.Chat)
		assert.Empty(t, f.messenger.SendMessageCalls())
	})
}

func TestReportCallbackService_MediaMessage(t *testing.T) {
	f := newReviewFixture(pendingReport(storage.ReportContent))
	q := callback("rpt:5:1")
	q.Message.Text = ""
	q.Message.Caption = "🚩 content report"
	q.Message.Photo = []tbapi.PhotoSize{{FileID: "p1"}}

	require.NoError(t, f.svc.Handle(context.Background(), q))
	assert.Empty(t, f.messenger.EditTextCalls())
	require.Len(t, f.messenger.EditCaptionCalls(), 1)
	assert.Contains(t, f.messenger.EditCaptionCalls()[0].Caption, "ban by @admin")
}

func TestReportCallbackService_LostRace(t *testing.T) {
	rep := pendingReport(storage.ReportContent)
	f := newReviewFixture(rep)
	calls := 0
	f.reports.GetByIDFunc = func(ctx context.Context, id int64) (storage.Report, error) {
		calls++
		if calls == 1 {
			return rep, nil
		}
		resolved := rep
		resolved.Status, resolved.ReviewedBy, resolved.ActionTaken = storage.ReportReviewed, "@other", "spam"
		return resolved, nil
	}
	f.reports.TryUpdateStatusFunc = func(ctx context.Context, id int64, from storage.ReportStatus, reviewer, action, notes string) (bool, error) {
		return false, nil
	}

	require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:1")))
	assert.Len(t, f.moderator.BanUserCalls(), 1, "action executed, not undone")
	assert.Len(t, f.reports.GetByIDCalls(), 2, "report re-fetched")
	require.Len(t, f.messenger.EditTextCalls(), 1)
	assert.Contains(t, f.messenger.EditTextCalls()[0].Text, "already handled by @other")
	assert.Len(t, f.contexts.DeleteCalls(), 1)
	assert.Empty(t, f.messenger.DeleteMessageCalls())
}

func TestReportCallbackService_StatusNotSaved(t *testing.T) {
	f := newReviewFixture(pendingReport(storage.ReportContent))
	f.reports.TryUpdateStatusFunc = func(ctx context.Context, id int64, from storage.ReportStatus, reviewer, action, notes string) (bool, error) {
		return false, errors.New("database is locked")
	}

	err := f.svc.Handle(context.Background(), callback("rpt:5:1"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database is locked")
	assert.Len(t, f.moderator.BanUserCalls(), 1)
	require.Len(t, f.messenger.EditTextCalls(), 1, "buttons replaced even if status not saved")
	assert.Contains(t, f.messenger.EditTextCalls()[0].Text, "ban applied by @admin, report status not saved")
	require.Len(t, f.contexts.DeleteCalls(), 1)
	assert.Equal(t, int64(5), f.contexts.DeleteCalls()[0].Id)

	// second press finds no context and doesn't repeat the ban
	f.contexts.GetByIDFunc = func(ctx context.Context, id int64) (storage.CallbackContext, error) {
		return storage.CallbackContext{}, storage.ErrNotFound
	}
	require.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:1")))
	assert.Len(t, f.moderator.BanUserCalls(), 1)
}

func TestReportCallbackService_BestEffortCleanup(t *testing.T) {
	f := newReviewFixture(pendingReport(storage.ReportContent))
	f.contexts.DeleteFunc = func(ctx context.Context, id int64) error { return errors.New("delete failed") }
	f.messenger.DeleteMessageFunc = func(ctx context.Context, chatID int64, msgID int) error { return errors.New("gone") }
	f.messenger.EditTextFunc = func(ctx context.Context, chatID int64, msgID int, text string) error {
		return errors.New("message is not modified")
	}
	f.messenger.SendMessageFunc = func(ctx context.Context, chatID int64, text string, replyTo int) (int, error) {
		return 0, errors.New("blocked")
	}

	assert.NoError(t, f.svc.Handle(context.Background(), callback("rpt:5:3")))
	assert.Len(t, f.reports.TryUpdateStatusCalls(), 1)
	assert.Len(t, f.messenger.SendMessageCalls(), 1)
}

func TestReportCallbackService_ConcurrentReview(t *testing.T) {
	ctx := context.Background()
	db, err := engine.NewSqlite(":memory:", "gr1")
	require.NoError(t, err)
	defer db.Close()
	reports, err := storage.NewReports(ctx, db)
	require.NoError(t, err)
	contexts, err := storage.NewCallbackContexts(ctx, db)
	require.NoError(t, err)

	repID, err := reports.Add(ctx, pendingReport(storage.ReportContent))
	require.NoError(t, err)
	ccID, err := contexts.Add(ctx, storage.CallbackContext{ReportID: repID, ReportType: storage.ReportContent, ChatID: -100})
	require.NoError(t, err)

	moderator := &mocks.ModeratorMock{BanUserFunc: func(ctx context.Context, in moderation.BanIntent) moderation.BanResult {
		return moderation.BanResult{Outcome: moderation.Outcome{Success: true}}
	}}
	messenger := okMessenger()
	svc := NewReportCallbackService(reports, contexts, moderator, messenger)

	var wg sync.WaitGroup
	for i, admin := range []string{"alice", "bob"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			q := callback(fmt.Sprintf("rpt:%d:1", ccID))
			q.From = &tbapi.User{ID: int64(100 + i), UserName: admin}
			assert.NoError(t, svc.Handle(ctx, q))
		}()
	}
	wg.Wait()

	rep, err := reports.GetByID(ctx, repID)
	require.NoError(t, err)
	assert.Equal(t, storage.ReportReviewed, rep.Status)
	assert.Contains(t, []string{"@alice", "@bob"}, rep.ReviewedBy)
	assert.Equal(t, "ban", rep.ActionTaken)

	resolved := 0
	for _, c := range messenger.EditTextCalls() {
		if strings.Contains(c.Text, "✅") {
			resolved++
		}
	}
	assert.Equal(t, 1, resolved, "report resolved exactly once")
	assert.GreaterOrEqual(t, len(moderator.BanUserCalls()), 1)
	assert.LessOrEqual(t, len(moderator.BanUserCalls()), 2)

	_, err = contexts.GetByID(ctx, ccID)
	assert.ErrorIs(t, err, storage.ErrNotFound, "context consumed")
}

func TestReportCallbackService_ScannerReportConfirmedAsSpam(t *testing.T) {
	ctx := context.Background()
	db, err := engine.NewSqlite(":memory:", "gr1")
	require.NoError(t, err)
	defer db.Close()
	reports, err := storage.NewReports(ctx, db)
	require.NoError(t, err)
	contexts, err := storage.NewCallbackContexts(ctx, db)
	require.NoError(t, err)

	messenger := okMessenger()
	opener := handlers.NewReportOpener(reports, NewReviewPublisher(contexts, messenger, -999))
	repID, err := opener.OpenReport(ctx, moderation.ReportRequest{
		User: moderation.UserIdentity{ID: 1, Name: "spammer"}, Chat: moderation.ChatIdentity{ID: -100, Title: "chat"},
		MessageID: 33, Reporter: moderation.FileScanner, Text: "free crypto, open the attachment",
		Reason: "malware detected", Violations: []string{"eicar"}})
	require.NoError(t, err)

	rep, err := reports.GetByID(ctx, repID)
	require.NoError(t, err)
	assert.Equal(t, "free crypto, open the attachment", rep.Text)
	assert.Equal(t, "malware detected\neicar", rep.Reason)

	require.Len(t, messenger.SendKeyboardCalls(), 1)
	buttons := messenger.SendKeyboardCalls()[0].Keyboard.InlineKeyboard[0]
	require.Equal(t, "spam", buttons[ActionSpam].Text)

	moderator := &mocks.ModeratorMock{MarkAsSpamAndBanFunc: func(ctx context.Context, in moderation.SpamBanIntent) moderation.SpamBanResult {
		return moderation.SpamBanResult{Outcome: moderation.Outcome{Success: true}}
	}}
	svc := NewReportCallbackService(reports, contexts, moderator, messenger)
	require.NoError(t, svc.Handle(ctx, callback(*buttons[ActionSpam].CallbackData)))

	require.Len(t, moderator.MarkAsSpamAndBanCalls(), 1)
	in := moderator.MarkAsSpamAndBanCalls()[0].In
	assert.Equal(t, "free crypto, open the attachment", in.Text, "sample is the message, not the verdict")
	assert.Equal(t, 33, in.MessageID)

	rep, err = reports.GetByID(ctx, repID)
	require.NoError(t, err)
	assert.Equal(t, storage.ReportReviewed, rep.Status)
}
