package amb

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/tracker"
)

const (
	testTxHash    = "0x3F3C5A1E7D8B9C0A1B2C3D4E5F60718293A4B5C6D7E8F90A1B2C3D4E5F607182"
	testMessageID = "0x000500004ac82b41bd819dd871590b510316f2385cb196fb0000000000002a1f"
)

func newGraphServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req graphRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Contains(t, req.Query, "txHash_contains")
		require.Equal(t, "0x3f3c5a1e7d8b9c0a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f607182", req.Variables["txHash"])

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGraphClient_LookupMessage(t *testing.T) {
	srv := newGraphServer(t, http.StatusOK, `{"data":{"requests":[{"txHash":"0x3f3c","message":{
		"msgId":"`+testMessageID+`","msgData":"0xdead","signatures":["0x01","0x02"]}}]}}`)
	g := NewGraphClient(map[int64]string{100: srv.URL}, srv.Client(), zap.NewNop())

	msg, err := g.LookupMessage(t.Context(), 100, testTxHash)
	require.NoError(t, err)
	require.Equal(t, testMessageID, msg.ID)
	require.Equal(t, "0xdead", msg.Data)
	require.True(t, msg.HasSignatures())
	require.Len(t, msg.Signatures, 2)
}

func TestGraphClient_LookupMessageNotIndexed(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "no requests", body: `{"data":{"requests":[]}}`},
		{name: "request without message", body: `{"data":{"requests":[{"txHash":"0x3f3c","message":null}]}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newGraphServer(t, http.StatusOK, tt.body)
			g := NewGraphClient(map[int64]string{1: srv.URL}, srv.Client(), zap.NewNop())

			_, err := g.LookupMessage(t.Context(), 1, testTxHash)
			require.ErrorIs(t, err, tracker.ErrMessageNotFound)
		})
	}
}

func TestGraphClient_LookupMessageErrors(t *testing.T) {
	t.Run("server error is a network error", func(t *testing.T) {
		srv := newGraphServer(t, http.StatusBadGateway, `bad gateway`)
		g := NewGraphClient(map[int64]string{1: srv.URL}, srv.Client(), zap.NewNop())

		_, err := g.LookupMessage(t.Context(), 1, testTxHash)
		require.ErrorIs(t, err, tracker.ErrNetwork)
	})

	t.Run("graphql errors", func(t *testing.T) {
		srv := newGraphServer(t, http.StatusOK, `{"errors":[{"message":"indexing error"}]}`)
		g := NewGraphClient(map[int64]string{1: srv.URL}, srv.Client(), zap.NewNop())

		_, err := g.LookupMessage(t.Context(), 1, testTxHash)
		require.ErrorContains(t, err, "indexing error")
		require.NotErrorIs(t, err, tracker.ErrNetwork)
		require.NotErrorIs(t, err, tracker.ErrMessageNotFound)
	})

	t.Run("unreachable endpoint", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		url := srv.URL
		srv.Close()
		g := NewGraphClient(map[int64]string{1: url}, nil, zap.NewNop())

		_, err := g.LookupMessage(t.Context(), 1, testTxHash)
		require.ErrorIs(t, err, tracker.ErrNetwork)
	})

	t.Run("unknown chain", func(t *testing.T) {
		g := NewGraphClient(map[int64]string{}, nil, zap.NewNop())
		_, err := g.LookupMessage(t.Context(), 5, testTxHash)
		require.Error(t, err)
	})
}
