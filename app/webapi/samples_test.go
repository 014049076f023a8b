package webapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/tg-moderator/app/storage"
	"github.com/umputun/tg-moderator/app/webapi/mocks"
)

func TestServer_Samples(t *testing.T) {
	samples := &mocks.SampleReaderMock{ListFunc: func(ctx context.Context, st storage.SampleType, limit int) ([]storage.Sample, error) {
		if limit == 13 {
			return nil, errors.New("db is down")
		}
		return []storage.Sample{{Type: st, Origin: storage.SampleOriginUser, Message: "win prize", Actor: "admin"}}, nil
	}}
	ts := httptest.NewServer(NewServer(Config{Moderator: okModerator(), Samples: samples}).routes())
	defer ts.Close()

	get := func(path string) (int, map[string]any) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+path, http.NoBody)
		require.NoError(t, err)
		return do(t, req)
	}

	code, res := get("/api/samples/spam?limit=5")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "spam", res["type"])
	list, ok := res["samples"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, "win prize", list[0].(map[string]any)["message"])
	require.Len(t, samples.ListCalls(), 1)
	assert.Equal(t, 5, samples.ListCalls()[0].Limit)

	code, _ = get("/api/samples/ham")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 100, samples.ListCalls()[1].Limit)

	code, _ = get("/api/samples/eggs")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get("/api/samples/spam?limit=-1")
	assert.Equal(t, http.StatusBadRequest, code)
	code, _ = get("/api/samples/spam?limit=13")
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Len(t, samples.ListCalls(), 3)
}

func TestServer_PendingReports(t *testing.T) {
	reports := &mocks.PendingReportsMock{ListPendingFunc: func(ctx context.Context, limit int) ([]storage.Report, error) {
		if limit == 13 {
			return nil, errors.New("db is down")
		}
		return []storage.Report{{ID: 7, Type: storage.ReportContent, ChatID: -100, SubjectUserID: 42,
			Status: storage.ReportPending}}, nil
	}}
	ts := httptest.NewServer(NewServer(Config{Moderator: okModerator(), Reports: reports}).routes())
	defer ts.Close()

	get := func(path string) (int, map[string]any) {
		req, err := http.NewRequest(http.MethodGet, ts.URL+path, http.NoBody)
		require.NoError(t, err)
		return do(t, req)
	}

	code, res := get("/api/reports?limit=10")
	assert.Equal(t, http.StatusOK, code)
	assert.InDelta(t, 1, res["count"], 0)
	list, ok := res["reports"].([]any)
	require.True(t, ok)
	rep := list[0].(map[string]any)
	assert.InDelta(t, 7, rep["id"], 0)
	assert.Equal(t, "pending", rep["status"])
	assert.NotContains(t, rep, "GID")
	assert.Equal(t, 10, reports.ListPendingCalls()[0].Limit)

	code, _ = get("/api/reports?limit=13")
	assert.Equal(t, http.StatusInternalServerError, code)
	code, _ = get("/api/reports?limit=abc")
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestServer_OptionalRoutesDisabled(t *testing.T) {
	ts := httptest.NewServer(NewServer(Config{Moderator: okModerator()}).routes())
	defer ts.Close()

	for _, path := range []string{"/api/reports", "/api/samples/spam"} {
		resp, err := http.Get(ts.URL + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}
}
