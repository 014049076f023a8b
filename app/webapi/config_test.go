package webapi

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-moderator/app/config"
	"github.com/umputun/tg-moderator/app/webapi/mocks"
)

func TestServer_ChatConfig(t *testing.T) {
	settings := &mocks.ChatSettingsMock{
		GetEffectiveFunc: func(ctx context.Context, chatID int64) (config.WarningSystem, error) {
			if chatID == -13 {
				return config.WarningSystem{}, errors.New("db is down")
			}
			return config.WarningSystem{AutoBanEnabled: true, AutoBanThreshold: 3}, nil
		},
		SetOverrideFunc:    func(ctx context.Context, chatID int64, ws config.WarningSystem) error { return nil },
		DeleteOverrideFunc: func(ctx context.Context, chatID int64) error { return nil },
	}
	ts := httptest.NewServer(NewServer(Config{Moderator: okModerator(), Settings: settings}).routes())
	defer ts.Close()

	request := func(method, path, body string) (int, map[string]any) {
		req, err := http.NewRequest(method, ts.URL+path, bytes.NewBufferString(body))
		require.NoError(t, err)
		return do(t, req)
	}

	t.Run("get", func(t *testing.T) {
		code, res := request(http.MethodGet, "/api/config/-100", "")
		assert.Equal(t, http.StatusOK, code)
		ws, ok := res["warnings"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, ws["auto_ban_enabled"])
		assert.InDelta(t, 3, ws["auto_ban_threshold"], 0)

		code, _ = request(http.MethodGet, "/api/config/-13", "")
		assert.Equal(t, http.StatusInternalServerError, code)
		code, _ = request(http.MethodGet, "/api/config/xyz", "")
		assert.Equal(t, http.StatusBadRequest, code)
		code, _ = request(http.MethodGet, "/api/config/0", "")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("set", func(t *testing.T) {
		code, res := request(http.MethodPut, "/api/config/-100", `{"auto_ban_enabled":false,"auto_ban_threshold":5}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, res["updated"])
		require.Len(t, settings.SetOverrideCalls(), 1)
		assert.Equal(t, int64(-100), settings.SetOverrideCalls()[0].ChatID)
		assert.Equal(t, config.WarningSystem{AutoBanEnabled: false, AutoBanThreshold: 5}, settings.SetOverrideCalls()[0].Ws)

		code, _ = request(http.MethodPut, "/api/config/-100", `{"auto_ban_enabled":true,"auto_ban_threshold":0}`)
		assert.Equal(t, http.StatusBadRequest, code, "threshold must be positive")
		code, _ = request(http.MethodPut, "/api/config/-100", `not json`)
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Len(t, settings.SetOverrideCalls(), 1)
	})

	t.Run("delete", func(t *testing.T) {
		code, res := request(http.MethodDelete, "/api/config/-100", "")
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, true, res["deleted"])
		require.Len(t, settings.DeleteOverrideCalls(), 1)

		settings.DeleteOverrideFunc = func(ctx context.Context, chatID int64) error { return errors.New("locked") }
		code, _ = request(http.MethodDelete, "/api/config/-100", "")
		assert.Equal(t, http.StatusInternalServerError, code)
	})
}

func TestServer_ChatConfigDisabled(t *testing.T) {
	ts := httptest.NewServer(NewServer(Config{Moderator: okModerator()}).routes())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/api/config/-100")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
