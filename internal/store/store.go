package store

import (
	"errors"

	"github.com/kwatson/inkwell/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// UserStore persists user records keyed by case-folded username, plus the
// process-wide signup code kept alongside them.
type UserStore interface {
	CreateUser(user *models.User) error
	GetUser(username string) (*models.User, error)
	SignupCode() (string, error)
}
