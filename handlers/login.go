package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
	"ramstone/templates"
)

func loginSite(e *core.RequestEvent) templates.Site {
	return siteFor(e, "Admin Login — Ramstone Creative Solutions", "", "/login")
}

// HandleLoginPage renders the login form. An already authenticated
// admin is sent straight to the dashboard.
func HandleLoginPage(e *core.RequestEvent) error {
	if _, ok := GetSession(e.Request); ok {
		return e.Redirect(http.StatusFound, "/admin")
	}
	return templates.Login(loginSite(e), templates.LoginData{}).Render(e.Request.Context(), e.Response)
}

// HandleLogin verifies the submitted credentials and issues a session.
// A failed attempt re-renders the form with a generic error, never
// hinting which of the two inputs was wrong.
func HandleLogin(verifier services.CredentialVerifier, store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if err := e.Request.ParseForm(); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Invalid form data")
		}

		username := strings.TrimSpace(e.Request.FormValue("username"))
		password := e.Request.FormValue("password")

		if !verifier.Verify(username, password) {
			data := templates.LoginData{Username: username, Error: "Invalid username or password"}
			return templates.Login(loginSite(e), data).Render(e.Request.Context(), e.Response)
		}

		session := store.Create(username, time.Now())
		setSessionCookie(e, session)
		return e.Redirect(http.StatusFound, "/admin")
	}
}

// HandleLogout drops the session and clears the cookie.
func HandleLogout(store *services.SessionStore) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		if cookie, err := e.Request.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			store.Delete(cookie.Value)
		}
		clearSessionCookie(e)
		return e.Redirect(http.StatusFound, "/")
	}
}
