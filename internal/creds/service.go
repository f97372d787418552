// Package creds implements credential validation and signup.
//
// Signup validation deliberately aggregates every applicable error
// (allErrors), unlike document-name validation which stops at the first
// failing check.
package creds

import (
	"errors"
	"strings"

	"github.com/kwatson/inkwell/internal/models"
	"github.com/kwatson/inkwell/internal/store"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUsernameTaken     = errors.New("username is already taken")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrInvalidSignupCode = errors.New("invalid signup code")
)

type Service struct {
	users store.UserStore
}

func NewService(users store.UserStore) *Service {
	return &Service{users: users}
}

// Validate reports whether password matches the stored hash for username.
// An unknown username yields false for any password, never an error.
func (s *Service) Validate(username, password string) bool {
	user, err := s.users.GetUser(username)
	if err != nil {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) == nil
}

// User returns the stored record for username.
func (s *Service) User(username string) (*models.User, error) {
	return s.users.GetUser(username)
}

// ValidateSignup checks a signup candidate and returns every applicable
// error, in check order: username taken, password mismatch, signup code
// mismatch. An empty slice means the candidate is acceptable.
func (s *Service) ValidateSignup(username, password, confirmPassword, signupCode string) []error {
	var errs []error
	if _, err := s.users.GetUser(username); err == nil {
		errs = append(errs, ErrUsernameTaken)
	}
	if password != confirmPassword {
		errs = append(errs, ErrPasswordMismatch)
	}
	code, err := s.users.SignupCode()
	if err != nil || signupCode != code {
		errs = append(errs, ErrInvalidSignupCode)
	}
	return errs
}

// Register hashes the password and persists a new user. Optional fields are
// trimmed and stored as absent when empty. Callers must have run
// ValidateSignup first.
func (s *Service) Register(username, password, phone, email, nickname string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := &models.User{
		Username:     username,
		PasswordHash: string(hash),
		Phone:        strings.TrimSpace(phone),
		Email:        strings.TrimSpace(email),
		Nickname:     strings.TrimSpace(nickname),
	}
	return s.users.CreateUser(user)
}
