package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-task-board/models"
)

// sessionCookieName is the cookie the browser flow uses to carry the JWT
// between requests. API clients may instead send the same token in the
// "Authorization: Bearer <token>" header.
const sessionCookieName = "session"

// setSessionCookie attaches the signed session token to the response. The
// cookie expiry tracks the token's "exp" claim so both invalidate together.
func setSessionCookie(w http.ResponseWriter, token models.Token) {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	http.SetCookie(w, cookie)
}

// clearSessionCookie overwrites the session cookie with an expired empty
// value, ending the browser session.
func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}

// getSessionToken extracts the raw session token string from the request.
// The session cookie takes precedence; the "Authorization" header is the
// fallback for non-browser clients.
//
// It returns the following sentinel errors:
//   - [ErrNoSessionToken] — neither the cookie nor the header is present.
//   - [ErrInvalidAuthorizationHeader] — the header contains fewer than two
//     space-separated parts (i.e. the token is missing entirely).
//   - [ErrEmptyToken] — the cookie or header token value is an empty string.
func getSessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if cookie.Value == "" {
			return "", ErrEmptyToken
		}
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", ErrNoSessionToken
	}

	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form:
//
//	Authorization: <scheme> <token>
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
