package handlers

import (
	"errors"
	"net/http"

	"github.com/kwatson/inkwell/internal/creds"
	"github.com/kwatson/inkwell/internal/middleware"
	"github.com/kwatson/inkwell/internal/session"
)

type AuthHandler struct {
	Creds *creds.Service
	Pages *Pages
}

type signinForm struct {
	Username string
}

type signupForm struct {
	Username string
	Phone    string
	Email    string
	Nickname string
}

func (h *AuthHandler) SigninForm(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, "signin", http.StatusOK, signinForm{})
}

func (h *AuthHandler) Signin(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	sess := middleware.SessionFrom(r)

	if !h.Creds.Validate(username, password) {
		sess.SetFlash(session.FlashError, "Invalid credentials")
		h.Pages.Render(w, r, "signin", http.StatusUnprocessableEntity, signinForm{Username: username})
		return
	}

	user, err := h.Creds.User(username)
	if err != nil {
		sess.SetFlash(session.FlashError, "Invalid credentials")
		h.Pages.Render(w, r, "signin", http.StatusUnprocessableEntity, signinForm{Username: username})
		return
	}

	sess.SignIn(user.Username, user.Phone, user.Email, user.Nickname)
	sess.SetFlash(session.FlashSuccess, "Welcome!")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) Signout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFrom(r)
	sess.SignOut()
	sess.SetFlash(session.FlashSuccess, "You have been signed out.")
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, "signup", http.StatusOK, signupForm{})
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirmPassword")
	code := r.PostFormValue("signupCode")
	phone := r.PostFormValue("phone")
	email := r.PostFormValue("email")
	nickname := r.PostFormValue("nickname")
	sess := middleware.SessionFrom(r)

	form := signupForm{Username: username, Phone: phone, Email: email, Nickname: nickname}

	if errs := h.Creds.ValidateSignup(username, password, confirm, code); len(errs) > 0 {
		sess.SetFlashes(session.FlashError, signupErrorMessages(errs))
		h.Pages.Render(w, r, "signup", http.StatusUnprocessableEntity, form)
		return
	}

	if err := h.Creds.Register(username, password, phone, email, nickname); err != nil {
		sess.SetFlash(session.FlashError, "Could not create the account.")
		h.Pages.Render(w, r, "signup", http.StatusUnprocessableEntity, form)
		return
	}

	user, err := h.Creds.User(username)
	if err != nil {
		http.Redirect(w, r, "/users/signin", http.StatusFound)
		return
	}

	sess.SignIn(user.Username, user.Phone, user.Email, user.Nickname)
	sess.SetFlash(session.FlashSuccess, "Welcome!")
	http.Redirect(w, r, "/", http.StatusFound)
}

func signupErrorMessages(errs []error) []string {
	messages := make([]string, 0, len(errs))
	for _, err := range errs {
		switch {
		case errors.Is(err, creds.ErrUsernameTaken):
			messages = append(messages, "Username is already taken.")
		case errors.Is(err, creds.ErrPasswordMismatch):
			messages = append(messages, "Passwords do not match.")
		case errors.Is(err, creds.ErrInvalidSignupCode):
			messages = append(messages, "Invalid signup code.")
		default:
			messages = append(messages, err.Error())
		}
	}
	return messages
}
