package server

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/contentcycle/contentcycle/pkg/domain"
	"github.com/contentcycle/contentcycle/pkg/pipeline"
	"github.com/contentcycle/contentcycle/pkg/session"
	"github.com/contentcycle/contentcycle/server/mocks"
)

func testConfig() *mocks.ConfigProviderMock {
	return &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":8080", 30 * time.Second
		},
	}
}

func testProcessor() *mocks.ProcessorMock {
	return &mocks.ProcessorMock{
		ConfiguredFunc: func() bool { return true },
		ProcessFunc: func(_ context.Context, req pipeline.Request) (*domain.ProcessedResult, error) {
			return &domain.ProcessedResult{
				Themes:        []domain.Theme{{ThemeID: "t1", Title: "Theme"}},
				Ranked:        []domain.RankedPost{},
				WordCount:     42,
				ProcessedAt:   time.Now().UTC(),
				OriginalInput: req.CombinedText,
				Settings:      req.Settings,
			}, nil
		},
	}
}

func TestServer_New(t *testing.T) {
	srv := New(testConfig(), testProcessor(), &mocks.EditorMock{}, &mocks.URLExtractorMock{},
		session.NewMemoryStore(), "1.0.0", false)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.False(t, srv.debug)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	err = listener.Close()
	require.NoError(t, err)

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}

	srv := New(cfg, testProcessor(), &mocks.EditorMock{}, &mocks.URLExtractorMock{},
		session.NewMemoryStore(), "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = srv.Run(ctx)
	}()

	// wait for server to start
	time.Sleep(100 * time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/ping", port))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "pong", string(body))

	cancel()
	time.Sleep(100 * time.Millisecond)
}

func TestServer_CORS(t *testing.T) {
	srv := New(testConfig(), testProcessor(), &mocks.EditorMock{}, &mocks.URLExtractorMock{},
		session.NewMemoryStore(), "1.0.0", false)

	// preflight is answered directly with permissive headers
	req := httptest.NewRequest(http.MethodOptions, "/process", http.NoBody)
	w := httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "Content-Type")

	// regular requests carry the headers too
	req = httptest.NewRequest(http.MethodGet, "/api/v1/status", http.NoBody)
	w = httptest.NewRecorder()
	srv.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestServer_statusHandler(t *testing.T) {
	srv := New(testConfig(), testProcessor(), &mocks.EditorMock{}, &mocks.URLExtractorMock{},
		session.NewMemoryStore(), "1.2.3", false)

	req := httptest.NewRequest(http.MethodGet, "/status", http.NoBody)
	w := httptest.NewRecorder()
	srv.statusHandler(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var status map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &status)
	require.NoError(t, err)

	assert.Equal(t, "ok", status["status"])
	assert.Equal(t, "1.2.3", status["version"])
	assert.NotEmpty(t, status["time"])
}

func TestServer_resultHandlers(t *testing.T) {
	store := session.NewMemoryStore()
	srv := New(testConfig(), testProcessor(), &mocks.EditorMock{}, &mocks.URLExtractorMock{},
		store, "1.0.0", false)

	// empty store yields 404
	req := httptest.NewRequest(http.MethodGet, "/api/v1/result", http.NoBody)
	w := httptest.NewRecorder()
	srv.resultHandler(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// stored result is returned as-is
	store.Set(&domain.ProcessedResult{WordCount: 42})
	w = httptest.NewRecorder()
	srv.resultHandler(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var result domain.ProcessedResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 42, result.WordCount)

	// delete clears the slot
	req = httptest.NewRequest(http.MethodDelete, "/api/v1/result", http.NoBody)
	w = httptest.NewRecorder()
	srv.clearResultHandler(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)

	_, ok := store.Get()
	assert.False(t, ok)
}
