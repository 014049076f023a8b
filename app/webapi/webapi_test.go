package webapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-moderator/app/moderation"
	"github.com/umputun/tg-moderator/app/storage"
	"github.com/umputun/tg-moderator/app/webapi/mocks"
)

func okModerator() *mocks.ModeratorMock {
	ok := moderation.Outcome{Success: true}
	return &mocks.ModeratorMock{
		BanUserFunc: func(ctx context.Context, in moderation.BanIntent) moderation.BanResult {
			return moderation.BanResult{Outcome: ok, Fanout: moderation.Fanout{ChatsAffected: 3, ChatsFailed: 1}, TrustRemoved: true}
		},
		UnbanUserFunc: func(ctx context.Context, in moderation.UnbanIntent) moderation.UnbanResult {
			return moderation.UnbanResult{Outcome: ok, Fanout: moderation.Fanout{ChatsAffected: 4}, TrustRestored: in.RestoreTrust}
		},
		WarnUserFunc: func(ctx context.Context, in moderation.WarnIntent) moderation.WarnResult {
			return moderation.WarnResult{Outcome: ok, WarningCount: 2}
		},
		TempBanUserFunc: func(ctx context.Context, in moderation.TempBanIntent) moderation.TempBanResult {
			return moderation.TempBanResult{Outcome: ok, ExpiresAt: time.Now().Add(in.Duration)}
		},
		RestrictUserFunc: func(ctx context.Context, in moderation.RestrictIntent) moderation.RestrictResult {
			return moderation.RestrictResult{Outcome: ok, ExpiresAt: time.Now().Add(in.Duration)}
		},
		TrustUserFunc: func(ctx context.Context, in moderation.TrustIntent) moderation.ActionResult {
			return moderation.ActionResult{Outcome: ok}
		},
	}
}

func post(t *testing.T, url, body string) (int, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
	require.NoError(t, err)
	req.SetBasicAuth(authUser, "secret")
	return do(t, req)
}

func do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	res := map[string]any{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return resp.StatusCode, res
}

func TestServer_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := NewServer(Config{ListenAddr: ":9876", Version: "dev", Moderator: okModerator(), Audit: &mocks.AuditReaderMock{}})
	done := make(chan struct{})
	go func() {
		err := srv.Run(ctx)
		assert.NoError(t, err)
		close(done)
	}()
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get("http://localhost:9876/ping")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))
	assert.Contains(t, resp.Header.Get("App-Name"), "tg-moderator")
	assert.Contains(t, resp.Header.Get("App-Version"), "dev")

	cancel()
	<-done
}

func TestServer_Auth(t *testing.T) {
	srv := NewServer(Config{Moderator: okModerator(), AuthPasswd: "secret"})
	ts := httptest.NewServer(srv.routes())
	defer ts.Close()

	t.Run("ping without auth", func(t *testing.T) {
		resp, err := http.Get(ts.URL + "/ping")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("no credentials", func(t *testing.T) {
		resp, err := http.Post(ts.URL+"/api/ban", "application/json", bytes.NewBufferString(`{"user_id":1}`))
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("wrong password", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/ban", bytes.NewBufferString(`{"user_id":1}`))
		require.NoError(t, err)
		req.SetBasicAuth(authUser, "bad")
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("authorized", func(t *testing.T) {
		code, _ := post(t, ts.URL+"/api/ban", `{"user_id":1}`)
		assert.Equal(t, http.StatusOK, code)
	})
}

func TestServer_Ban(t *testing.T) {
	m := okModerator()
	ts := httptest.NewServer(NewServer(Config{Moderator: m, AuthPasswd: "secret"}).routes())
	defer ts.Close()

	t.Run("global", func(t *testing.T) {
		code, res := post(t, ts.URL+"/api/ban", `{"user_id":42,"user_name":"spammer","reason":"flood"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, res["success"])
		assert.InDelta(t, 3, res["chats_affected"], 0)
		assert.InDelta(t, 1, res["chats_failed"], 0)
		assert.Equal(t, true, res["trust_removed"])

		require.Len(t, m.BanUserCalls(), 1)
		in := m.BanUserCalls()[0].In
		assert.Equal(t, moderation.UserIdentity{ID: 42, Name: "spammer"}, in.User)
		assert.Nil(t, in.Chat)
		assert.Equal(t, "flood", in.Reason)
		assert.Equal(t, moderation.FromWebUser(authUser, ""), in.Executor)
	})

	t.Run("single chat", func(t *testing.T) {
		m.ResetBanUserCalls()
		code, _ := post(t, ts.URL+"/api/ban", `{"user_id":42,"chat_id":-100,"chat_title":"chat"}`)
		assert.Equal(t, http.StatusOK, code)
		in := m.BanUserCalls()[0].In
		require.NotNil(t, in.Chat)
		assert.Equal(t, int64(-100), in.Chat.ID)
		assert.Equal(t, "web admin action", in.Reason)
	})

	t.Run("failed", func(t *testing.T) {
		m.BanUserFunc = func(ctx context.Context, in moderation.BanIntent) moderation.BanResult {
			return moderation.BanResult{Outcome: moderation.Outcome{ErrorMessage: "cannot ban system account 777000"}}
		}
		code, res := post(t, ts.URL+"/api/ban", `{"user_id":777000}`)
		assert.Equal(t, http.StatusUnprocessableEntity, code)
		assert.Equal(t, false, res["success"])
		assert.Contains(t, res["error"], "system account")
	})

	t.Run("bad requests", func(t *testing.T) {
		code, res := post(t, ts.URL+"/api/ban", `{bad json`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "can't decode request", res["error"])

		code, res = post(t, ts.URL+"/api/ban", `{"user_name":"no id"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Contains(t, res["details"], "user_id")
	})
}

func TestServer_Actions(t *testing.T) {
	m := okModerator()
	ts := httptest.NewServer(NewServer(Config{Moderator: m}).routes())
	defer ts.Close()

	t.Run("unban", func(t *testing.T) {
		code, res := post(t, ts.URL+"/api/unban", `{"user_id":42,"restore_trust":true}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, res["trust_restored"])
		require.Len(t, m.UnbanUserCalls(), 1)
		assert.True(t, m.UnbanUserCalls()[0].In.RestoreTrust)
		assert.Equal(t, moderation.FromWebUser("anonymous", ""), m.UnbanUserCalls()[0].In.Executor)
	})

	t.Run("warn requires chat", func(t *testing.T) {
		code, _ := post(t, ts.URL+"/api/warn", `{"user_id":42}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Empty(t, m.WarnUserCalls())

		code, res := post(t, ts.URL+"/api/warn", `{"user_id":42,"chat_id":-100}`)
		assert.Equal(t, http.StatusOK, code)
		assert.InDelta(t, 2, res["warning_count"], 0)
		require.Len(t, m.WarnUserCalls(), 1)
		assert.Equal(t, int64(-100), m.WarnUserCalls()[0].In.Chat.ID)
	})

	t.Run("tempban", func(t *testing.T) {
		code, res := post(t, ts.URL+"/api/tempban", `{"user_id":42,"duration":"90m"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.NotEmpty(t, res["expires_at"])
		require.Len(t, m.TempBanUserCalls(), 1)
		assert.Equal(t, 90*time.Minute, m.TempBanUserCalls()[0].In.Duration)

		code, _ = post(t, ts.URL+"/api/tempban", `{"user_id":42,"duration":"soon"}`)
		assert.Equal(t, http.StatusBadRequest, code)
		code, _ = post(t, ts.URL+"/api/tempban", `{"user_id":42}`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Len(t, m.TempBanUserCalls(), 1)
	})

	t.Run("restrict", func(t *testing.T) {
		code, _ := post(t, ts.URL+"/api/restrict", `{"user_id":42,"chat_id":-100,"duration":"1h"}`)
		assert.Equal(t, http.StatusOK, code)
		require.Len(t, m.RestrictUserCalls(), 1)
		assert.Equal(t, time.Hour, m.RestrictUserCalls()[0].In.Duration)
	})

	t.Run("trust", func(t *testing.T) {
		code, res := post(t, ts.URL+"/api/trust", `{"user_id":42,"reason":"known member"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, res["success"])
		require.Len(t, m.TrustUserCalls(), 1)
		assert.Equal(t, "known member", m.TrustUserCalls()[0].In.Reason)
	})
}

func TestServer_Audit(t *testing.T) {
	audit := &mocks.AuditReaderMock{ListByUserFunc: func(ctx context.Context, userID int64, limit int) ([]storage.AuditRecord, error) {
		if userID == 13 {
			return nil, errors.New("db is down")
		}
		return []storage.AuditRecord{{ID: "a1", Action: storage.AuditBan, UserID: userID, Actor: "system:auto-ban"}}, nil
	}}
	ts := httptest.NewServer(NewServer(Config{Moderator: okModerator(), Audit: audit}).routes())
	defer ts.Close()

	get := func(path string) (int, map[string]any) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+path, http.NoBody)
		require.NoError(t, err)
		return do(t, req)
	}

	code, res := get("/api/audit/42?limit=5")
	assert.Equal(t, http.StatusOK, code)
	recs, ok := res["records"].([]any)
	require.True(t, ok)
	require.Len(t, recs, 1)
	assert.Equal(t, "ban", recs[0].(map[string]any)["action"])
	require.Len(t, audit.ListByUserCalls(), 1)
	assert.Equal(t, 5, audit.ListByUserCalls()[0].Limit)

	_, _ = get("/api/audit/42")
	assert.Equal(t, 100, audit.ListByUserCalls()[1].Limit, "default limit")

	code, _ = get("/api/audit/abc")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get("/api/audit/42?limit=-1")
	assert.Equal(t, http.StatusBadRequest, code)
	code, res = get("/api/audit/13")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "db is down", res["details"])
}

func TestServer_Metrics(t *testing.T) {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("# metrics")) })
	ts := httptest.NewServer(NewServer(Config{Moderator: okModerator(), Metrics: metrics}).routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "# metrics", string(body))
}
