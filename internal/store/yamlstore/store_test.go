package yamlstore

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kwatson/inkwell/internal/models"
	"github.com/kwatson/inkwell/internal/store"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "users.yml"))
}

func TestCreateAndGetUser(t *testing.T) {
	s := newTestStore(t)

	err := s.CreateUser(&models.User{Username: "Admin", PasswordHash: "hash", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	// Lookup and storage key are case-folded.
	user, err := s.GetUser("ADMIN")
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.Username != "admin" {
		t.Errorf("username = %q, want case-folded %q", user.Username, "admin")
	}
	if user.PasswordHash != "hash" || user.Email != "a@example.com" {
		t.Error("stored fields do not round-trip")
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
	err := s.CreateUser(&models.User{Username: "ADMIN", PasswordHash: "h"})
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
		t.Errorf("fresh store code = %q, want empty", code)
	}

	if err := s.SetSignupCode("4242"); err != nil {
		t.Fatal(err)
	}
	code, err = s.SignupCode()
	if err != nil {
		t.Fatal(err)
	}
	if code != "4242" {
		t.Errorf("code = %q, want 4242", code)
	}
}

func TestEmptyOptionalFieldsOmitted(t *testing.T) {
	s := newTestStore(t)

	if err := s.CreateUser(&models.User{Username: "admin", PasswordHash: "h", Nickname: "boss"}); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "phone") {
		t.Errorf("absent phone serialized:\n%s", raw)
	}
	if !strings.Contains(string(raw), "nickname: boss") {
		t.Errorf("present nickname missing:\n%s", raw)
	}
}
