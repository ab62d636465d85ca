package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, ingestBase, presentonBase string, timeoutSeconds int) *Client {
	t.Helper()
	return New(ingestBase, presentonBase, "test-key", timeoutSeconds, zap.NewNop())
}

func TestSubmitIngestJobSuccess(t *testing.T) {
	var gotSourceURL, gotDoSummary, gotSessionID string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/transcribe", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		gotSourceURL = r.FormValue("source_url")
		gotDoSummary = r.FormValue("do_summary")
		gotSessionID = r.FormValue("session_id")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"text":"T","summary":"S"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL, 5)
	defer c.Close()

	res, err := c.SubmitIngestJob(context.Background(), "https://example.com/a.mp3", "42_10")
	require.NoError(t, err)

	assert.Equal(t, "T", res.Text)
	assert.Equal(t, "S", res.Summary)
	assert.Equal(t, "https://example.com/a.mp3", gotSourceURL)
	assert.Equal(t, "true", gotDoSummary)
	assert.Equal(t, "42_10", gotSessionID)
}

func TestSubmitIngestJobRemoteError(t *testing.T) {
	// Тело длиннее лимита - в ошибке должен остаться только префикс
	longBody := strings.Repeat("x", maxErrBody+200)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(longBody))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL, 5)
	defer c.Close()

	_, err := c.SubmitIngestJob(context.Background(), "https://example.com/a.mp3", "42_10")
	require.Error(t, err)

	var remoteErr *RemoteServiceError
	require.ErrorAs(t, err, &remoteErr)
	assert.Equal(t, http.StatusBadGateway, remoteErr.Status)
	assert.Equal(t, "ingest", remoteErr.Service)
	assert.Len(t, remoteErr.Body, maxErrBody)
}

func TestSubmitIngestJobTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, srv.URL, 1)
	defer c.Close()

	_, err := c.SubmitIngestJob(context.Background(), "https://example.com/a.mp3", "42_10")
	require.Error(t, err)

	var timeoutErr *TimeoutError
	assert.ErrorAs(t, err, &timeoutErr)
}

func TestSubmitIngestJobTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // сервер уже закрыт - чистая ошибка соединения

	c := newTestClient(t, srv.URL, srv.URL, 5)
	defer c.Close()

	_, err := c.SubmitIngestJob(context.Background(), "https://example.com/a.mp3", "42_10")
	require.Error(t, err)

	var transportErr *TransportError
	assert.ErrorAs(t, err, &transportErr)
}
