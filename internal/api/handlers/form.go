package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"

	"milk-route-service/internal/api/view"
	"milk-route-service/internal/domain"
	"milk-route-service/internal/platform/obs"
)

//go:embed templates/form.html.tmpl
var templateFS embed.FS

// FormHandler serves the milk supply form and processes its submissions.
// The handler only decodes form fields and writes the rendered template;
// validation and computation live behind view.BuildPage.
type FormHandler struct {
	tmpl *template.Template
}

func NewFormHandler() *FormHandler {
	return &FormHandler{
		tmpl: template.Must(template.ParseFS(templateFS, "templates/form.html.tmpl")),
	}
}

func (h *FormHandler) Form(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.render(w, r, view.EmptyPage())
	case http.MethodPost:
		h.submit(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *FormHandler) submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid form body")
		return
	}

	in := domain.FormInput{
		Villages:  r.PostFormValue("villages"),
		MilkData:  r.PostFormValue("milk_data"),
		Distances: r.PostFormValue("distances"),
		Capacity:  r.PostFormValue("capacity"),
	}

	stop := obs.Time(r.Context(), "form.process")
	page := view.BuildPage(in)
	stop(nil)

	h.render(w, r, page)
}

// render buffers the template output so a mid-render failure never leaves
// a half-written 200 on the wire.
func (h *FormHandler) render(w http.ResponseWriter, r *http.Request, page view.Page) {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, page); err != nil {
		log.Printf("render failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("write failed: method=%s path=%s err=%v", r.Method, r.URL.Path, err)
	}
}
