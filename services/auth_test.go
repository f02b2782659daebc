package services

import (
	"testing"
	"time"
)

func TestStaticCredentialsVerify(t *testing.T) {
	creds := StaticCredentials{Username: "admin", Password: "secret"}

	tests := []struct {
		name     string
		username string
		password string
		expect   bool
	}{
		{"correct pair", "admin", "secret", true},
		{"wrong password", "admin", "nope", false},
		{"wrong username", "root", "secret", false},
		{"both wrong", "root", "nope", false},
		{"empty", "", "", false},
		{"case sensitive", "Admin", "secret", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := creds.Verify(tt.username, tt.password); got != tt.expect {
				t.Errorf("Verify(%q, %q) = %v, want %v", tt.username, tt.password, got, tt.expect)
			}
		})
	}
}

func TestCredentialsFromEnv(t *testing.T) {
	t.Setenv("ADMIN_USERNAME", "")
	t.Setenv("ADMIN_PASSWORD", "")
	creds := CredentialsFromEnv()
	if creds.Username != "admin" {
		t.Errorf("default username = %q, want admin", creds.Username)
	}

	t.Setenv("ADMIN_USERNAME", "boss")
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	creds = CredentialsFromEnv()
	if creds.Username != "boss" || creds.Password != "hunter2" {
		t.Errorf("env credentials not picked up: %+v", creds)
	}
}

func TestSessionStore_CreateAndGet(t *testing.T) {
	store := NewSessionStore()
	now := time.Now()

	session := store.Create("admin", now)
	if session.Token == "" {
		t.Fatal("expected a non-empty token")
	}
	if !session.ExpiresAt.Equal(now.Add(SessionTTL)) {
		t.Errorf("ExpiresAt = %v, want %v", session.ExpiresAt, now.Add(SessionTTL))
	}

	got, ok := store.Get(session.Token, now)
	if !ok {
		t.Fatal("expected to find the session")
	}
	if got.Username != "admin" {
		t.Errorf("Username = %q, want admin", got.Username)
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store := NewSessionStore()
	now := time.Now()
	session := store.Create("admin", now)

	// still valid just before the TTL
	if _, ok := store.Get(session.Token, now.Add(SessionTTL-time.Minute)); !ok {
		t.Error("session should still be valid before expiry")
	}

	// expired sessions are discarded and reported absent
	if _, ok := store.Get(session.Token, now.Add(SessionTTL+time.Minute)); ok {
		t.Error("expired session should be reported absent")
	}

	// and stay gone even for an earlier clock
	if _, ok := store.Get(session.Token, now); ok {
		t.Error("discarded session should not come back")
	}
}

func TestSessionStore_UnknownToken(t *testing.T) {
	store := NewSessionStore()
	if _, ok := store.Get("nope", time.Now()); ok {
		t.Error("unknown token should be reported absent")
	}
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	session := store.Create("admin", time.Now())

	store.Delete(session.Token)
	if _, ok := store.Get(session.Token, time.Now()); ok {
		t.Error("deleted session should be gone")
	}

	// deleting twice is fine
	store.Delete(session.Token)
}

func TestSessionValid(t *testing.T) {
	now := time.Now()
	session := Session{Token: "t", ExpiresAt: now.Add(time.Hour)}

	if !session.Valid(now) {
		t.Error("session with future expiry should be valid")
	}
	if session.Valid(now.Add(2 * time.Hour)) {
		t.Error("session past expiry should be invalid")
	}
	if (Session{}).Valid(now) {
		t.Error("zero session should be invalid")
	}
}
