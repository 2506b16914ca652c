package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qasyoun/qasyounextra/internal/app/repositories"
	"github.com/qasyoun/qasyounextra/internal/app/repositories/memory"
	"github.com/qasyoun/qasyounextra/internal/config"
)

type closeTracker struct {
	*memory.Repository
	closed int
}

func (c *closeTracker) Close() { c.closed++ }

var _ repositories.Storage = (*closeTracker)(nil)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.Port = "0"
	cfg.Server.ShutdownTimeout = "1s"
	cfg.JWT.Secret = "server-test-secret"
	cfg.JWT.AccessTokenExpiration = "1h"
	return cfg
}

func TestHandlerServesPing(t *testing.T) {
	srv := New(testConfig(), memory.New(), zerolog.Nop())

	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestShutdownClosesStorage(t *testing.T) {
	store := &closeTracker{Repository: memory.New()}
	srv := New(testConfig(), store, zerolog.Nop())

	require.NoError(t, srv.Shutdown(context.Background()))
	assert.Equal(t, 1, store.closed)
}
