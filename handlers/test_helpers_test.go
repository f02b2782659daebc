package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"ramstone/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// withAdminSession puts a valid admin session into the request context,
// the way SessionMiddleware would for a logged-in request.
func withAdminSession(req *http.Request) *http.Request {
	session := services.Session{
		Token:     "test-token",
		Username:  "admin",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	return req.WithContext(context.WithValue(req.Context(), SessionKey, session))
}
