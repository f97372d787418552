package middleware

import (
	"context"
	"net/http"

	"github.com/kwatson/inkwell/internal/auth"
	"github.com/kwatson/inkwell/internal/session"
)

type contextKey string

const SessionKey contextKey = "session"

const CookieName = "inkwell_session"

// SessionLoader resolves the client's signed session cookie to a server-side
// session record, creating one (and setting the cookie) when the client has
// none. The session is placed in the request context for handlers.
type SessionLoader struct {
	Store  *session.Store
	Signer *auth.Signer
}

func (l *SessionLoader) Load(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := l.lookup(r)
		if sess == nil {
			sess = l.Store.New()
			http.SetCookie(w, &http.Cookie{
				Name:     CookieName,
				Value:    l.Signer.Sign(sess.Token),
				Path:     "/",
				HttpOnly: true,
			})
		}

		ctx := context.WithValue(r.Context(), SessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (l *SessionLoader) lookup(r *http.Request) *session.Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	token, err := l.Signer.Verify(cookie.Value)
	if err != nil {
		return nil
	}
	return l.Store.Get(token)
}

// SessionFrom returns the session placed in the request context by Load,
// or nil outside of it.
func SessionFrom(r *http.Request) *session.Session {
	sess, _ := r.Context().Value(SessionKey).(*session.Session)
	return sess
}
