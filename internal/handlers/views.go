package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"

	"github.com/kwatson/inkwell/internal/middleware"
	"github.com/kwatson/inkwell/internal/session"
)

//go:embed templates/*.gohtml
var templateFS embed.FS

// Pages renders HTML views. Every render consumes the session's pending
// flash messages, so a flash survives exactly one response.
type Pages struct {
	templates map[string]*template.Template
}

type viewData struct {
	Username  string
	Phone     string
	Email     string
	Nickname  string
	Errors    []string
	Successes []string
	Yield     any
}

func NewPages() *Pages {
	cache := map[string]*template.Template{}
	for _, name := range []string{"index", "signin", "signup", "new", "edit"} {
		cache[name] = template.Must(template.ParseFS(templateFS,
			"templates/layout.gohtml", "templates/"+name+".gohtml"))
	}
	return &Pages{templates: cache}
}

func (p *Pages) Render(w http.ResponseWriter, r *http.Request, name string, status int, yield any) {
	ts, ok := p.templates[name]
	if !ok {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := viewData{Yield: yield}
	if sess := middleware.SessionFrom(r); sess != nil {
		data.Username = sess.Username
		data.Phone = sess.Phone
		data.Email = sess.Email
		data.Nickname = sess.Nickname
		data.Errors = sess.ConsumeFlash(session.FlashError)
		data.Successes = sess.ConsumeFlash(session.FlashSuccess)
	}

	var buf bytes.Buffer
	if err := ts.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("render %s: %v", name, err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
