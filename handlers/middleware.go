package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
)

type contextKey string

// SessionKey holds the authenticated admin session in the request
// context, when there is one.
const SessionKey contextKey = "adminSession"

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "admin_session"

// GetSession extracts the admin session from the request context.
// The zero session means unauthenticated.
func GetSession(r *http.Request) (services.Session, bool) {
	if val, ok := r.Context().Value(SessionKey).(services.Session); ok {
		return val, true
	}
	return services.Session{}, false
}

// SessionMiddleware resolves the session cookie against the store and
// puts the session into the request context. A missing, expired or
// corrupted cookie is cleared and the request continues as
// unauthenticated; the middleware never rejects.
func SessionMiddleware(store *services.SessionStore) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		cookie, err := e.Request.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			return e.Next()
		}

		session, ok := store.Get(cookie.Value, time.Now())
		if !ok {
			clearSessionCookie(e)
			return e.Next()
		}

		ctx := context.WithValue(e.Request.Context(), SessionKey, session)
		e.Request = e.Request.WithContext(ctx)
		return e.Next()
	}
}

// RequireAdmin wraps a handler so only an authenticated admin reaches
// it. Everyone else is redirected to the login page.
func RequireAdmin(next func(*core.RequestEvent) error) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if _, ok := GetSession(e.Request); !ok {
			return e.Redirect(http.StatusFound, "/login")
		}
		return next(e)
	}
}

func setSessionCookie(e *core.RequestEvent, session services.Session) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(e *core.RequestEvent) {
	http.SetCookie(e.Response, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
