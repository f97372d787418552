package sqlstore

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/kwatson/inkwell/internal/models"
	"github.com/kwatson/inkwell/internal/store"
	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

type SQLStore struct {
	db *sql.DB
}

func New(driverName, dataSourceName string) (*SQLStore, error) {
	db, err := sql.Open(driverName, dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLStore{db: db}
	if err := s.createTables(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) createTables() error {
	// Simplified for brevity, ideally use migrations
	query := `
	CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password_hash TEXT NOT NULL,
		phone TEXT,
		email TEXT,
		nickname TEXT
	);

	CREATE TABLE IF NOT EXISTS settings (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`

	_, err := s.db.Exec(query)
	return err
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) CreateUser(user *models.User) error {
	key := strings.ToLower(user.Username)
	_, err := s.db.Exec(
		"INSERT INTO users (username, password_hash, phone, email, nickname) VALUES (?, ?, ?, ?, ?)",
		key, user.PasswordHash, nullIf(user.Phone), nullIf(user.Email), nullIf(user.Nickname))
	if err != nil {
		// The primary key rejects duplicate case-folded usernames.
		return fmt.Errorf("%s: %w", key, store.ErrUserExists)
	}
	return nil
}

func (s *SQLStore) GetUser(username string) (*models.User, error) {
	key := strings.ToLower(username)
	var user models.User
	err := s.db.QueryRow(
		"SELECT username, password_hash, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(nickname, '') FROM users WHERE username = ?",
		key).Scan(&user.Username, &user.PasswordHash, &user.Phone, &user.Email, &user.Nickname)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", key, store.ErrUserNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *SQLStore) SignupCode() (string, error) {
	var code string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = 'signup_code'").Scan(&code)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return code, nil
}

func (s *SQLStore) SetSignupCode(code string) error {
	_, err := s.db.Exec("INSERT OR REPLACE INTO settings (key, value) VALUES ('signup_code', ?)", code)
	return err
}

// Empty optional fields are stored as NULL, never as an empty string.
func nullIf(v string) any {
	if v == "" {
		return nil
	}
	return v
}
