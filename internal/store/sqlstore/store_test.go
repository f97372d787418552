package sqlstore

import (
	"errors"
	"testing"

	"github.com/kwatson/inkwell/internal/models"
	"github.com/kwatson/inkwell/internal/store"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	s, err := New("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateUser(&models.User{Username: "Admin", PasswordHash: "hash", Phone: "555-0100"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	user, err := s.GetUser("ADMIN")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("username = %q, want case-folded %q", user.Username, "admin")
	}
	if user.PasswordHash != "hash" || user.Phone != "555-0100" {
		t.Error("stored fields do not round-trip")
	}
	if user.Email != "" || user.Nickname != "" {
		t.Error("absent optional fields should scan as empty")
	}

	if _, err := s.GetUser("nobody"); !errors.Is(err, store.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	s := newTestStore(t)

	if err := s.CreateUser(&models.User{Username: "admin", PasswordHash: "h"}); err != nil {
		t.Fatal(err)
	}
	err := s.CreateUser(&models.User{Username: "Admin", PasswordHash: "h"})
	if !errors.Is(err, store.ErrUserExists) {
		t.Errorf("expected ErrUserExists for case-folded duplicate, got %v", err)
	}
}

func TestSignupCode(t *testing.T) {
	s := newTestStore(t)

	code, err := s.SignupCode()
	if err != nil {
		t.Fatal(err)
	}
	if code != "" {
		t.Errorf("unset code = %q, want empty", code)
	}

	if err := s.SetSignupCode("1234"); err != nil {
		t.Fatal(err)
	}
	if err := s.SetSignupCode("5678"); err != nil {
		t.Fatal(err)
	}
	code, err = s.SignupCode()
	if err != nil {
		t.Fatal(err)
	}
	if code != "5678" {
		t.Errorf("code = %q, want 5678", code)
	}
}
