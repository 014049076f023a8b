package webapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/webapi/mocks"
)

func TestServer_DeleteMessage(t *testing.T) {
	md := okModerator()
	md.DeleteMessageFunc = func(ctx context.Context, in moderation.DeleteMessageIntent) moderation.DeleteResult {
		if in.MessageID == 13 {
			return moderation.DeleteResult{Outcome: moderation.Outcome{ErrorMessage: "delete failed: not enough rights"}}
		}
		return moderation.DeleteResult{Outcome: moderation.Outcome{Success: true}, MessageDeleted: true}
	}
	ts := httptest.NewServer(NewServer(Config{Moderator: md}).routes())
	defer ts.Close()

	code, res := post(t, ts.URL+"/api/delete", `{"user_id":42,"chat_id":-100,"message_id":7,"reason":"off-topic"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, res["message_deleted"])
	require.Len(t, md.DeleteMessageCalls(), 1)
	in := md.DeleteMessageCalls()[0].In
	assert.Equal(t, int64(-100), in.Chat.ID)
	assert.Equal(t, 7, in.MessageID)
	assert.Equal(t, "off-topic", in.Reason)
	assert.Equal(t, moderation.ActorWebUser, in.Executor.Kind())

	code, res = post(t, ts.URL+"/api/delete", `{"user_id":42,"chat_id":-100,"message_id":13}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "delete failed: not enough rights", res["error"])

	code, _ = post(t, ts.URL+"/api/delete", `{"user_id":42,"chat_id":-100}`)
	assert.Equal(t, http.StatusBadRequest, code, "message id required")
	code, _ = post(t, ts.URL+"/api/delete", `{"user_id":42,"message_id":7}`)
	assert.Equal(t, http.StatusBadRequest, code, "chat id required")
	assert.Len(t, md.DeleteMessageCalls(), 2)
}

func TestServer_Violations(t *testing.T) {
	md := okModerator()
	md.HandleMalwareViolationFunc = func(ctx context.Context, in moderation.MalwareViolationIntent) moderation.ViolationResult {
		return moderation.ViolationResult{Outcome: moderation.Outcome{Success: true}, MessageDeleted: true, ReportCreated: true,
			AdminsNotified: true}
	}
	md.HandleCriticalViolationFunc = func(ctx context.Context, in moderation.CriticalViolationIntent) moderation.ViolationResult {
		return moderation.ViolationResult{Outcome: moderation.Outcome{Success: true}, MessageDeleted: true, UserNotified: true}
	}
	ts := httptest.NewServer(NewServer(Config{Moderator: md}).routes())
	defer ts.Close()

	t.Run("malware", func(t *testing.T) {
		code, res := post(t, ts.URL+"/api/violations/malware", `{"user_id":42,"chat_id":-100,"message_id":7,
			"text":"invoice attached","reason":"malware detected","violations":["eicar"]}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, res["report_created"])
		assert.Equal(t, true, res["admins_notified"])
		require.Len(t, md.HandleMalwareViolationCalls(), 1)
		in := md.HandleMalwareViolationCalls()[0].In
		assert.Equal(t, moderation.FileScanner, in.Executor)
		assert.Equal(t, "invoice attached", in.Text)
		assert.Equal(t, "malware detected", in.Reason)
		assert.Equal(t, []string{"eicar"}, in.Violations)
		assert.Equal(t, 7, in.MessageID)
	})

	t.Run("critical", func(t *testing.T) {
		code, res := post(t, ts.URL+"/api/violations/critical", `{"user_id":42,"chat_id":-100,"message_id":8,
			"reason":"doxxing","violations":["phone number"]}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, res["user_notified"])
		require.Len(t, md.HandleCriticalViolationCalls(), 1)
		in := md.HandleCriticalViolationCalls()[0].In
		assert.Equal(t, moderation.AutoDetection, in.Executor)
		assert.Equal(t, "doxxing", in.Reason)
		assert.Equal(t, int64(-100), in.Chat.ID)
	})

	t.Run("message required", func(t *testing.T) {
		code, _ := post(t, ts.URL+"/api/violations/critical", `{"user_id":42,"chat_id":-100}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Len(t, md.HandleCriticalViolationCalls(), 1)
	})
}

func TestServer_ExamFailure(t *testing.T) {
	exams := &mocks.ExamReportsMock{OpenExamFailureFunc: func(ctx context.Context, req moderation.ReportRequest) (int64, error) {
		if req.User.ID == 13 {
			return 0, errors.New("db is down")
		}
		return 21, nil
	}}
	ts := httptest.NewServer(NewServer(Config{Moderator: okModerator(), Exams: exams}).routes())
	defer ts.Close()

	code, res := post(t, ts.URL+"/api/reports/exam-failure",
		`{"user_id":42,"user_name":"newbie","chat_id":-100,"chat_title":"group","reason":"wrong answer 2 of 3"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.InDelta(t, 21, res["report_id"], 0)
	require.Len(t, exams.OpenExamFailureCalls(), 1)
	req := exams.OpenExamFailureCalls()[0].Req
	assert.Equal(t, moderation.EntryExam, req.Reporter)
	assert.Equal(t, moderation.UserIdentity{ID: 42, Name: "newbie"}, req.User)
	assert.Equal(t, moderation.ChatIdentity{ID: -100, Title: "group"}, req.Chat)
	assert.Equal(t, "wrong answer 2 of 3", req.Reason)

	code, _ = post(t, ts.URL+"/api/reports/exam-failure", `{"user_id":42}`)
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = post(t, ts.URL+"/api/reports/exam-failure", `{"user_id":13,"chat_id":-100}`)
	assert.Equal(t, http.StatusInternalServerError, code)

	ts2 := httptest.NewServer(NewServer(Config{Moderator: okModerator()}).routes())
	defer ts2.Close()
	resp, err := http.Post(ts2.URL+"/api/reports/exam-failure", "application/json", http.NoBody)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, "exam reviews disabled")
}
