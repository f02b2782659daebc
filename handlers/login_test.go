package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"ramstone/services"
	"ramstone/testhelpers"
)

func loginForm(username, password string) *http.Request {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleLoginPage_RendersForm(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLoginPage(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), `name="username"`)
	testhelpers.AssertHTMLContains(t, rec.Body.String(), `name="password"`)
}

func TestHandleLoginPage_RedirectsAuthenticated(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := withAdminSession(httptest.NewRequest(http.MethodGet, "/login", nil))
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLoginPage(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("expected redirect to /admin, got %q", loc)
	}
}

func TestHandleLogin_Success(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	verifier := services.StaticCredentials{Username: "admin", Password: "secret"}

	handler := HandleLogin(verifier, store)

	req := loginForm("admin", "secret")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/admin" {
		t.Errorf("expected redirect to /admin, got %q", loc)
	}

	var cookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			cookie = c
		}
	}
	if cookie == nil || cookie.Value == "" {
		t.Fatal("expected a session cookie to be set")
	}
	if _, ok := store.Get(cookie.Value, time.Now()); !ok {
		t.Error("expected the cookie token to resolve in the store")
	}
}

func TestHandleLogin_TrimsUsername(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	verifier := services.StaticCredentials{Username: "admin", Password: "secret"}

	req := loginForm("  admin  ", "secret")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLogin(verifier, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302 for padded username, got %d", rec.Code)
	}
}

func TestHandleLogin_WrongPassword(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	verifier := services.StaticCredentials{Username: "admin", Password: "secret"}

	req := loginForm("admin", "wrong")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLogin(verifier, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	// Failed logins re-render the form with a generic error
	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Invalid username or password")

	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie && c.Value != "" {
			t.Error("expected no session cookie on a failed login")
		}
	}
}

func TestHandleLogin_WrongUsernameSameError(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	verifier := services.StaticCredentials{Username: "admin", Password: "secret"}

	req := loginForm("nobody", "secret")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLogin(verifier, store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	testhelpers.AssertHTMLContains(t, rec.Body.String(), "Invalid username or password")
}

func TestHandleLogout(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	store := services.NewSessionStore()
	session := store.Create("admin", time.Now())

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: session.Token})
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := HandleLogout(store)(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if rec.Code != http.StatusFound {
		t.Errorf("expected status 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
	if _, ok := store.Get(session.Token, time.Now()); ok {
		t.Error("expected the session to be removed from the store")
	}

	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("expected the session cookie to be cleared")
	}
}
