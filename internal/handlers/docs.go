package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/kwatson/inkwell/internal/docs"
	"github.com/kwatson/inkwell/internal/middleware"
	"github.com/kwatson/inkwell/internal/render"
	"github.com/kwatson/inkwell/internal/session"
)

type DocHandler struct {
	Repo     *docs.Repository
	Renderer *render.Renderer
	Pages    *Pages
}

type indexView struct {
	Files []string
}

type newView struct {
	Name string
}

type editView struct {
	Name    string
	Content string
}

func (h *DocHandler) Index(w http.ResponseWriter, r *http.Request) {
	files, err := h.Repo.List()
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.Pages.Render(w, r, "index", http.StatusOK, indexView{Files: files})
}

func (h *DocHandler) View(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["fileName"]
	sess := middleware.SessionFrom(r)

	content, err := h.Repo.Read(name)
	if err != nil {
		sess.SetFlash(session.FlashError, fmt.Sprintf("%s does not exist.", name))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	body, contentType, err := h.Renderer.Render(name, content)
	if err != nil {
		sess.SetFlash(session.FlashError, fmt.Sprintf("%s cannot be displayed.", name))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Write(body)
}

func (h *DocHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.Pages.Render(w, r, "new", http.StatusOK, newView{})
}

func (h *DocHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := r.PostFormValue("fileName")
	sess := middleware.SessionFrom(r)

	if err := h.Repo.Create(name, nil); err != nil {
		sess.SetFlash(session.FlashError, nameErrorMessage(name, err))
		h.Pages.Render(w, r, "new", http.StatusUnprocessableEntity, newView{Name: name})
		return
	}

	sess.SetFlash(session.FlashSuccess, fmt.Sprintf("%s was created.", name))
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *DocHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["fileName"]
	sess := middleware.SessionFrom(r)

	content, err := h.Repo.Read(name)
	if err != nil {
		sess.SetFlash(session.FlashError, fmt.Sprintf("%s does not exist.", name))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.Pages.Render(w, r, "edit", http.StatusOK, editView{Name: name, Content: string(content)})
}

func (h *DocHandler) Update(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["fileName"]
	sess := middleware.SessionFrom(r)

	if err := h.Repo.Update(name, []byte(r.PostFormValue("content"))); err != nil {
		sess.SetFlash(session.FlashError, fmt.Sprintf("%s could not be updated.", name))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	sess.SetFlash(session.FlashSuccess, fmt.Sprintf("%s has been updated.", name))
	http.Redirect(w, r, "/", http.StatusFound)
}

// Copy failures redirect with an error flash rather than re-rendering a
// form; there is no copy form to return to.
func (h *DocHandler) Copy(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["fileName"]
	sess := middleware.SessionFrom(r)

	newName, err := h.Repo.Copy(name)
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) {
			sess.SetFlash(session.FlashError, fmt.Sprintf("%s does not exist.", name))
		} else {
			sess.SetFlash(session.FlashError, nameErrorMessage(docs.CopyName(name), err))
		}
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	sess.SetFlash(session.FlashSuccess, fmt.Sprintf("%s was created.", newName))
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *DocHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["fileName"]
	sess := middleware.SessionFrom(r)

	if err := h.Repo.Delete(name); err != nil {
		sess.SetFlash(session.FlashError, fmt.Sprintf("%s does not exist.", name))
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	sess.SetFlash(session.FlashSuccess, fmt.Sprintf("%s has been deleted.", name))
	http.Redirect(w, r, "/", http.StatusFound)
}

func nameErrorMessage(name string, err error) string {
	switch {
	case errors.Is(err, docs.ErrEmptyName):
		return "A name is required."
	case errors.Is(err, docs.ErrInvalidExtension):
		return fmt.Sprintf("Invalid file extension. Supported extensions are %s",
			strings.Join(docs.ValidExtensions, ", "))
	case errors.Is(err, docs.ErrAlreadyExists):
		return fmt.Sprintf("%s already exists.", name)
	}
	return err.Error()
}
