package services

import (
	"os"
	"sync"
	"time"

	"github.com/pocketbase/pocketbase/tools/security"
)

// SessionTTL is how long an admin login stays valid.
const SessionTTL = 24 * time.Hour

// CredentialVerifier checks a username/password pair. The static
// implementation below is a placeholder that can be swapped for a real
// identity provider without touching any handler.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// StaticCredentials verifies against a single fixed admin account.
type StaticCredentials struct {
	Username string
	Password string
}

// Verify implements CredentialVerifier with a constant-time compare.
func (c StaticCredentials) Verify(username, password string) bool {
	return security.Equal(username, c.Username) && security.Equal(password, c.Password)
}

// CredentialsFromEnv builds the admin account from ADMIN_USERNAME and
// ADMIN_PASSWORD, falling back to the development defaults.
func CredentialsFromEnv() StaticCredentials {
	creds := StaticCredentials{Username: "admin", Password: "ramstone2024!"}
	if v := os.Getenv("ADMIN_USERNAME"); v != "" {
		creds.Username = v
	}
	if v := os.Getenv("ADMIN_PASSWORD"); v != "" {
		creds.Password = v
	}
	return creds
}

// Session is an explicit session-state value with its own expiry,
// checked on every protected-route access.
type Session struct {
	Token     string
	Username  string
	ExpiresAt time.Time
}

// Valid reports whether the session is still usable at the given time.
func (s Session) Valid(now time.Time) bool {
	return s.Token != "" && now.Before(s.ExpiresAt)
}

// SessionStore keeps active admin sessions in memory. There is exactly
// one interactive admin, so a map behind a mutex is all the
// coordination this needs; restarting the server simply logs the admin
// out.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]Session
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]Session)}
}

// Create issues a new session for the given username.
func (st *SessionStore) Create(username string, now time.Time) Session {
	session := Session{
		Token:     security.RandomString(32),
		Username:  username,
		ExpiresAt: now.Add(SessionTTL),
	}
	st.mu.Lock()
	st.sessions[session.Token] = session
	st.mu.Unlock()
	return session
}

// Get looks up a session by token. Expired or unknown tokens are
// discarded and reported as absent, resetting the caller to the
// unauthenticated default.
func (st *SessionStore) Get(token string, now time.Time) (Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[token]
	if !ok {
		return Session{}, false
	}
	if !session.Valid(now) {
		delete(st.sessions, token)
		return Session{}, false
	}
	return session, true
}

// Delete removes a session, if present.
func (st *SessionStore) Delete(token string) {
	st.mu.Lock()
	delete(st.sessions, token)
	st.mu.Unlock()
}
