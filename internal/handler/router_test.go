package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harborchat/backend/internal/handler/ws"
	"github.com/harborchat/backend/internal/service/history"
	"github.com/harborchat/backend/internal/service/session"
)

func newRouterForTest(broadcastEnabled bool) http.Handler {
	registry := session.NewMemoryRegistry()
	store := history.NewMemoryStore()
	pool := ws.NewPool()
	return NewRouter(registry, store, pool, ws.Options{}, broadcastEnabled)
}

func TestHealthEndpoint(t *testing.T) {
	r := newRouterForTest(true)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
}

func TestBroadcastRequiresMessage(t *testing.T) {
	r := newRouterForTest(true)

	req := httptest.NewRequest(http.MethodPost, "/api/broadcast", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestBroadcastWithNoConnections(t *testing.T) {
	r := newRouterForTest(true)

	req := httptest.NewRequest(http.MethodPost, "/api/broadcast", bytes.NewReader([]byte(`{"message":{"type":"notice"}}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", resp.Code)
	}
}

func TestBroadcastDisabled(t *testing.T) {
	r := newRouterForTest(false)

	req := httptest.NewRequest(http.MethodPost, "/api/broadcast", bytes.NewReader([]byte(`{"message":{"type":"notice"}}`)))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code == http.StatusAccepted {
		t.Fatalf("broadcast endpoint should not be mounted when disabled")
	}
}
