package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-task-board/internal/service"
	"github.com/MKhiriev/go-task-board/internal/utils"
	"github.com/MKhiriev/go-task-board/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validToken = "valid.jwt.token"

// parseTokenStub accepts validToken for user 7 and rejects anything else.
func parseTokenStub(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString == validToken {
		return models.Token{UserID: 7, SignedString: tokenString}, nil
	}
	return models.Token{}, service.ErrTokenIsExpiredOrInvalid
}

// capturingNext records whether it ran and what identity it saw.
type capturingNext struct {
	called bool
	userID int64
	hasID  bool
}

func (c *capturingNext) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.called = true
		c.userID, c.hasID = utils.GetUserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func newAuthTestHandler(t *testing.T) *Handler {
	t.Helper()
	return newHandlerWithServices(t, &mockAuthService{parseTokenFn: parseTokenStub}, nil)
}

// ─────────────────────────────────────────────
// getSessionToken
// ─────────────────────────────────────────────

func TestGetSessionToken_CookieWins(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "from-cookie"})
	req.Header.Set("Authorization", "Bearer from-header")

	token, err := getSessionToken(req)
	require.NoError(t, err)
	assert.Equal(t, "from-cookie", token)
}

func TestGetSessionToken_BearerFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer from-header")

	token, err := getSessionToken(req)
	require.NoError(t, err)
	assert.Equal(t, "from-header", token)
}

func TestGetSessionToken_Errors(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*http.Request)
		wantErr error
	}{
		{"nothing present", func(*http.Request) {}, ErrNoSessionToken},
		{"empty cookie", func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: sessionCookieName, Value: ""})
		}, ErrEmptyToken},
		{"header without token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer")
		}, ErrInvalidAuthorizationHeader},
		{"header with empty token", func(r *http.Request) {
			r.Header.Set("Authorization", "Bearer ")
		}, ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)

			_, err := getSessionToken(req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// ─────────────────────────────────────────────
// auth (strict)
// ─────────────────────────────────────────────

func TestAuth_ValidCookie(t *testing.T) {
	h := newAuthTestHandler(t)
	next := &capturingNext{}

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: validToken})
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	require.True(t, next.hasID)
	assert.Equal(t, int64(7), next.userID)
}

func TestAuth_ValidBearerHeader(t *testing.T) {
	h := newAuthTestHandler(t)
	next := &capturingNext{}

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), next.userID)
}

func TestAuth_MissingToken(t *testing.T) {
	h := newAuthTestHandler(t)
	next := &capturingNext{}

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

func TestAuth_InvalidToken(t *testing.T) {
	h := newAuthTestHandler(t)
	next := &capturingNext{}

	req := httptest.NewRequest(http.MethodPost, "/api/tasks", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired.or.garbage"})
	rec := httptest.NewRecorder()

	h.auth(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, next.called)
}

// ─────────────────────────────────────────────
// identify (tolerant)
// ─────────────────────────────────────────────

func TestIdentify_NoToken_ProceedsAnonymous(t *testing.T) {
	h := newAuthTestHandler(t)
	next := &capturingNext{}

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	rec := httptest.NewRecorder()

	h.identify(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	assert.False(t, next.hasID, "anonymous request must carry no user ID")
}

func TestIdentify_StaleToken_ProceedsAnonymous(t *testing.T) {
	h := newAuthTestHandler(t)
	next := &capturingNext{}

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "expired.or.garbage"})
	rec := httptest.NewRecorder()

	h.identify(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.called)
	assert.False(t, next.hasID)
}

func TestIdentify_ValidToken_ResolvesUser(t *testing.T) {
	h := newAuthTestHandler(t)
	next := &capturingNext{}

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: validToken})
	rec := httptest.NewRecorder()

	h.identify(next.handler()).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, next.hasID)
	assert.Equal(t, int64(7), next.userID)
}
