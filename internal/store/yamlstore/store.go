// Package yamlstore implements the user store against a single YAML file:
// one record per user keyed by case-folded username, with the signup code
// stored alongside them.
package yamlstore

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/kwatson/inkwell/internal/models"
	"github.com/kwatson/inkwell/internal/store"
	"gopkg.in/yaml.v3"
)

type userRecord struct {
	PasswordHash string `yaml:"password_hash"`
	Phone        string `yaml:"phone,omitempty"`
	Email        string `yaml:"email,omitempty"`
	Nickname     string `yaml:"nickname,omitempty"`
}

type fileData struct {
	SignupCode string                `yaml:"signup_code,omitempty"`
	Users      map[string]userRecord `yaml:"users"`
}

type Store struct {
	path string
	mu   sync.Mutex
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) GetUser(username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return nil, err
	}

	key := strings.ToLower(username)
	rec, ok := data.Users[key]
	if !ok {
		return nil, fmt.Errorf("%s: %w", key, store.ErrUserNotFound)
	}
	return &models.User{
		Username:     key,
		PasswordHash: rec.PasswordHash,
		Phone:        rec.Phone,
		Email:        rec.Email,
		Nickname:     rec.Nickname,
	}, nil
}

func (s *Store) CreateUser(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}

	key := strings.ToLower(user.Username)
	if _, ok := data.Users[key]; ok {
		return fmt.Errorf("%s: %w", key, store.ErrUserExists)
	}
	data.Users[key] = userRecord{
		PasswordHash: user.PasswordHash,
		Phone:        user.Phone,
		Email:        user.Email,
		Nickname:     user.Nickname,
	}
	return s.save(data)
}

func (s *Store) SignupCode() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return "", err
	}
	return data.SignupCode, nil
}

func (s *Store) SetSignupCode(code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	data.SignupCode = code
	return s.save(data)
}

func (s *Store) load() (*fileData, error) {
	data := &fileData{Users: make(map[string]userRecord)}

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(raw, data); err != nil {
		return nil, err
	}
	if data.Users == nil {
		data.Users = make(map[string]userRecord)
	}
	return data, nil
}

func (s *Store) save(data *fileData) error {
	raw, err := yaml.Marshal(data)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, raw, 0644)
}
