package middleware

import (
	"net/http"

	"github.com/kwatson/inkwell/internal/session"
)

// SignedInMessage is flashed when an anonymous client hits a gated route.
const SignedInMessage = "You must be signed in to do that."

// RequireUser gates mutating routes. Anonymous requests are redirected to
// the index with an error flash; no gated handler runs without an identity.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := SessionFrom(r)
		if sess == nil || !sess.SignedIn() {
			if sess != nil {
				sess.SetFlash(session.FlashError, SignedInMessage)
			}
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}
