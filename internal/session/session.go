package session

import (
	"sync"

	"github.com/google/uuid"
)

// Flash categories.
const (
	FlashError   = "error"
	FlashSuccess = "success"
)

// Session holds the per-client state: the signed-in identity, a profile
// snapshot taken at sign-in time, and at most one pending flash per category.
type Session struct {
	Token    string
	Username string
	Phone    string
	Email    string
	Nickname string

	mu      sync.Mutex
	flashes map[string][]string
}

// SignedIn reports whether the session has a current identity.
func (s *Session) SignedIn() bool {
	return s.Username != ""
}

// SignIn sets the current identity and profile snapshot. The snapshot is not
// re-read from the user store on later requests.
func (s *Session) SignIn(username, phone, email, nickname string) {
	s.Username = username
	s.Phone = phone
	s.Email = email
	s.Nickname = nickname
}

// SignOut clears the identity and profile fields. Pending flashes are
// independent of identity and survive sign-out.
func (s *Session) SignOut() {
	s.Username = ""
	s.Phone = ""
	s.Email = ""
	s.Nickname = ""
}

// SetFlash stores a single message under category, replacing any pending one.
func (s *Session) SetFlash(category, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[category] = []string{message}
}

// SetFlashes stores a whole list under category. Used for aggregated
// validation errors; the list is consumed and cleared as a unit.
func (s *Session) SetFlashes(category string, messages []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flashes[category] = messages
}

// ConsumeFlash returns and clears the messages stored under category.
// It returns nil when nothing is pending.
func (s *Session) ConsumeFlash(category string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	messages := s.flashes[category]
	delete(s.flashes, category)
	return messages
}

// Store keeps sessions in memory, keyed by an opaque token carried in a
// signed client cookie.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

// New creates a session with a fresh random token.
func (st *Store) New() *Session {
	s := &Session{
		Token:   uuid.NewString(),
		flashes: make(map[string][]string),
	}
	st.mu.Lock()
	st.sessions[s.Token] = s
	st.mu.Unlock()
	return s
}

// Get returns the session for token, or nil if the token is unknown.
func (st *Store) Get(token string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[token]
}
