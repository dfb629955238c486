package trackerd

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/chainsafe/bridge-tracker/pkg/config"
	"github.com/chainsafe/bridge-tracker/pkg/tracker"
	"github.com/chainsafe/bridge-tracker/pkg/transfer"
	"github.com/chainsafe/bridge-tracker/pkg/transfer/service/mocks"
)

func testConfig() *config.Config {
	return &config.Config{
		Server:     config.ServerConfig{MiddlewareTimeout: time.Second},
		Monitoring: config.MonitoringConfig{MetricsPath: "/metrics"},
	}
}

func serve(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestRun_NilConfig(t *testing.T) {
	require.Error(t, NewServer(nil).Run())
}

func TestRouter_Health(t *testing.T) {
	h := NewServer(testConfig()).newRouter(mocks.NewService(t), zap.NewNop())

	rec := serve(h, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "OK", rec.Body.String())
}

func TestRouter_Metrics(t *testing.T) {
	cfg := testConfig()
	h := NewServer(cfg).newRouter(mocks.NewService(t), zap.NewNop())
	require.Equal(t, http.StatusOK, serve(h, http.MethodGet, "/metrics").Code)

	cfg.Monitoring.Disabled = true
	h = NewServer(cfg).newRouter(mocks.NewService(t), zap.NewNop())
	require.Equal(t, http.StatusNotFound, serve(h, http.MethodGet, "/metrics").Code)
}

func TestRouter_TransferRoutes(t *testing.T) {
	const account = "0x00000000000000000000000000000000000000aa"

	svc := mocks.NewService(t)
	svc.EXPECT().
		Status(mock.Anything, account).
		Return(&transfer.Status{Phase: tracker.PhaseIdle, Label: ""}, nil).
		Once()
	h := NewServer(testConfig()).newRouter(svc, zap.NewNop())

	rec := serve(h, http.MethodGet, "/api/v1/transfers/"+account)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"phase":"idle"`)
	require.NotEmpty(t, rec.Header().Get("Content-Type"))
}
