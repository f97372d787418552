package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kwatson/inkwell/internal/auth"
	"github.com/kwatson/inkwell/internal/session"
)

func newTestLoader() *SessionLoader {
	return &SessionLoader{
		Store:  session.NewStore(),
		Signer: auth.NewSigner("test-secret"),
	}
}

func TestLoadCreatesSession(t *testing.T) {
	loader := newTestLoader()

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if SessionFrom(r) == nil {
			t.Error("Expected session in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()
	loader.Load(nextHandler).ServeHTTP(rr, req)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName {
		t.Fatalf("expected a %s cookie, got %v", CookieName, cookies)
	}

	token, err := loader.Signer.Verify(cookies[0].Value)
	if err != nil {
		t.Fatalf("cookie not verifiable: %v", err)
	}
	if loader.Store.Get(token) == nil {
		t.Error("cookie token does not resolve to a stored session")
	}
}

func TestLoadResolvesExistingSession(t *testing.T) {
	loader := newTestLoader()
	sess := loader.Store.New()
	sess.SignIn("admin", "", "", "")

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := SessionFrom(r)
		if got != sess {
			t.Error("Expected the existing session in context")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: loader.Signer.Sign(sess.Token)})
	rr := httptest.NewRecorder()
	loader.Load(nextHandler).ServeHTTP(rr, req)

	if len(rr.Result().Cookies()) != 0 {
		t.Error("expected no new cookie for a resolved session")
	}
}

func TestLoadRejectsForgedCookie(t *testing.T) {
	loader := newTestLoader()
	sess := loader.Store.New()

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := SessionFrom(r); got == sess {
			t.Error("forged cookie resolved to an existing session")
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: sess.Token + "|forged"})
	rr := httptest.NewRecorder()
	loader.Load(nextHandler).ServeHTTP(rr, req)

	if len(rr.Result().Cookies()) != 1 {
		t.Error("expected a replacement cookie for the forged one")
	}
}

func TestRequireUser(t *testing.T) {
	loader := newTestLoader()

	signedIn := loader.Store.New()
	signedIn.SignIn("admin", "", "", "")
	anonymous := loader.Store.New()

	nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name           string
		sess           *session.Session
		expectedStatus int
	}{
		{"Signed In", signedIn, http.StatusOK},
		{"Anonymous", anonymous, http.StatusFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/create", nil)
			req.AddCookie(&http.Cookie{Name: CookieName, Value: loader.Signer.Sign(tt.sess.Token)})
			rr := httptest.NewRecorder()

			loader.Load(RequireUser(nextHandler)).ServeHTTP(rr, req)

			if rr.Code != tt.expectedStatus {
				t.Errorf("handler returned wrong status code: got %v want %v",
					rr.Code, tt.expectedStatus)
			}
		})
	}

	if got := anonymous.ConsumeFlash(session.FlashError); len(got) != 1 || got[0] != SignedInMessage {
		t.Errorf("anonymous flash = %v, want [%s]", got, SignedInMessage)
	}
	if got := signedIn.ConsumeFlash(session.FlashError); got != nil {
		t.Errorf("signed-in flash = %v, want none", got)
	}
}
