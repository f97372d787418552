// Package docs implements the document repository: a flat directory of files
// named by their full filename, with extension-whitelisted name validation.
//
// Name validation stops at the first failing check (firstError), unlike
// signup validation which aggregates.
package docs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

var (
	ErrNotFound         = errors.New("document does not exist")
	ErrEmptyName        = errors.New("a name is required")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrAlreadyExists    = errors.New("document already exists")
)

// ValidExtensions is the closed set of permitted document extensions.
var ValidExtensions = []string{".txt", ".md", ".jpg"}

// Repository manages documents under a single directory. A repository-level
// mutex serializes mutating operations within this process; concurrent
// writers in separate processes race last-writer-wins.
type Repository struct {
	dir string
	mu  sync.Mutex
}

func NewRepository(dir string) (*Repository, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &Repository{dir: dir}, nil
}

// List returns the names of all documents in the order the directory
// reports them.
func (r *Repository) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// Read returns the content of the named document. The name is resolved to
// its basename first so a crafted name cannot escape the directory.
func (r *Repository) Read(name string) ([]byte, error) {
	name = filepath.Base(name)
	path := filepath.Join(r.dir, name)

	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return os.ReadFile(path)
}

// ValidateName checks a candidate document name. Checks run in order and
// only the first failure is reported: empty name, extension outside the
// whitelist, name already in use.
func (r *Repository) ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if !slices.Contains(ValidExtensions, strings.ToLower(filepath.Ext(name))) {
		return fmt.Errorf("%s: %w", name, ErrInvalidExtension)
	}
	if _, err := os.Stat(filepath.Join(r.dir, filepath.Base(name))); err == nil {
		return fmt.Errorf("%s: %w", name, ErrAlreadyExists)
	}
	return nil
}

// Create validates the name and writes a new document with the given
// content, which may be empty.
func (r *Repository) Create(name string, content []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.ValidateName(name); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(r.dir, filepath.Base(name)), content, 0644)
}

// Update replaces the content of the named document. The name is not
// re-validated: updates target an existing, already-valid document.
func (r *Repository) Update(name string, content []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return os.WriteFile(filepath.Join(r.dir, filepath.Base(name)), content, 0644)
}

// Copy duplicates the named document under its derived copy name and
// returns that name. The derived name goes through the same validation as
// Create; on any failure nothing is written.
func (r *Repository) Copy(sourceName string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sourceName = filepath.Base(sourceName)
	content, err := os.ReadFile(filepath.Join(r.dir, sourceName))
	if err != nil {
		return "", fmt.Errorf("%s: %w", sourceName, ErrNotFound)
	}

	newName := CopyName(sourceName)
	if err := r.ValidateName(newName); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(r.dir, newName), content, 0644); err != nil {
		return "", err
	}
	return newName, nil
}

// Delete removes the named document. Deleting an absent document reports
// ErrNotFound and leaves the directory untouched.
func (r *Repository) Delete(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name = filepath.Base(name)
	err := os.Remove(filepath.Join(r.dir, name))
	if os.IsNotExist(err) {
		return fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return err
}

// CopyName derives the copy name by inserting " copy" immediately before
// the last dot: "report.txt" becomes "report copy.txt".
func CopyName(sourceName string) string {
	idx := strings.LastIndex(sourceName, ".")
	if idx < 0 {
		return sourceName + " copy"
	}
	return sourceName[:idx] + " copy" + sourceName[idx:]
}
