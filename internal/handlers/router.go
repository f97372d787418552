package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kwatson/inkwell/internal/middleware"
)

// NewRouter wires the full route table. Mutating document routes and the
// create/edit forms sit behind RequireUser; everything else is public.
func NewRouter(docHandler *DocHandler, authHandler *AuthHandler, sessions *middleware.SessionLoader) http.Handler {
	r := mux.NewRouter()
	r.Use(sessions.Load)

	r.HandleFunc("/", docHandler.Index).Methods("GET")

	r.HandleFunc("/users/signin", authHandler.SigninForm).Methods("GET")
	r.HandleFunc("/users/signin", authHandler.Signin).Methods("POST")
	r.HandleFunc("/users/signout", authHandler.Signout).Methods("POST")
	r.HandleFunc("/users/signup", authHandler.SignupForm).Methods("GET")
	r.HandleFunc("/users/signup", authHandler.Signup).Methods("POST")

	r.Handle("/new", middleware.RequireUser(http.HandlerFunc(docHandler.NewForm))).Methods("GET")
	r.Handle("/create", middleware.RequireUser(http.HandlerFunc(docHandler.Create))).Methods("POST")

	r.HandleFunc("/{fileName}", docHandler.View).Methods("GET")
	r.Handle("/{fileName}/edit", middleware.RequireUser(http.HandlerFunc(docHandler.EditForm))).Methods("GET")
	r.Handle("/{fileName}", middleware.RequireUser(http.HandlerFunc(docHandler.Update))).Methods("POST")
	r.Handle("/{fileName}/copy", middleware.RequireUser(http.HandlerFunc(docHandler.Copy))).Methods("POST")
	r.Handle("/{fileName}/delete", middleware.RequireUser(http.HandlerFunc(docHandler.Delete))).Methods("POST")

	return middleware.LoggingMiddleware(r)
}
