package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinehub-rest-api/internal/cache"
	"cinehub-rest-api/internal/middleware"
	"cinehub-rest-api/internal/model"
	"cinehub-rest-api/internal/service"
)

func newSessionToken(t *testing.T) (func(http.Handler) http.Handler, string) {
	t.Helper()

	c := cache.NewMemoryCache()
	t.Cleanup(func() { _ = c.Close() })

	sessions := service.NewSessionService(c)
	token, err := sessions.Generate(context.Background(), &model.User{ID: 1, Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	return middleware.NewAuthMiddleware(sessions), token
}

func TestAuthMiddleware_TokenSources(t *testing.T) {
	authMW, token := newSessionToken(t)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotNil(t, middleware.GetSession(r.Context()))
		w.WriteHeader(http.StatusOK)
	})
	handler := authMW(next)

	do := func(target string, header http.Header) int {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		for k, vs := range header {
			for _, v := range vs {
				req.Header.Add(k, v)
			}
		}
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	t.Run("X-Token header", func(t *testing.T) {
		code := do("/api/v1/me", http.Header{"X-Token": {token}})
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("Authorization bearer", func(t *testing.T) {
		code := do("/api/v1/me", http.Header{"Authorization": {"Bearer " + token}})
		assert.Equal(t, http.StatusOK, code)
	})

	t.Run("query token only on the stream endpoint", func(t *testing.T) {
		code := do("/api/v1/notifications/stream?token="+token, nil)
		assert.Equal(t, http.StatusOK, code)

		// Everywhere else the query parameter is ignored, keeping tokens
		// out of request logs.
		code = do("/api/v1/me?token="+token, nil)
		assert.Equal(t, http.StatusUnauthorized, code)
	})

	t.Run("missing or invalid token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, do("/api/v1/me", nil))
		assert.Equal(t, http.StatusUnauthorized, do("/api/v1/me", http.Header{"X-Token": {"chb_bogus"}}))
	})
}
