package pages

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/core/services/form"
	"gitlab.com/webrequest.net/internal/core/services/submission"
	"gitlab.com/webrequest.net/internal/core/services/validator"
	"gitlab.com/webrequest.net/internal/domain"
	"gitlab.com/webrequest.net/internal/handlers"
	"gitlab.com/webrequest.net/internal/render"
	"gitlab.com/webrequest.net/internal/static/errs"
)

// PageHandler serves the server-rendered form, success and list views
type PageHandler struct {
	session   form.IFormSession
	validator validator.IValidator
	store     submission.ISubmissionStore
	renderer  *render.Renderer
	logger    primary.Logger
}

// NewPageHandler creates a new page handler
func NewPageHandler(session form.IFormSession, v validator.IValidator, store submission.ISubmissionStore, renderer *render.Renderer, logger primary.Logger) *PageHandler {
	return &PageHandler{
		session:   session,
		validator: v,
		store:     store,
		renderer:  renderer,
		logger:    logger,
	}
}

// RegisterRoutes registers the page routes for PageHandler
func (h *PageHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/", h.Index).Methods("GET")
	router.HandleFunc("/form", h.Form).Methods("GET")
	router.HandleFunc("/form/submit", h.Submit).Methods("POST")
	router.HandleFunc("/submissions", h.Submissions).Methods("GET")
}

// Index renders the current view
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK)
}

// Form returns to the form view
func (h *PageHandler) Form(w http.ResponseWriter, r *http.Request) {
	h.session.Back()
	h.render(w, r, http.StatusOK)
}

// Submissions switches to the list view
func (h *PageHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Show(domain.ViewList); err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}
	h.render(w, r, http.StatusOK)
}

// Submit takes a posted HTML form through the submit flow. Success redirects
// to the success view; a blocked or failed submit re-renders the form.
func (h *PageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		handlers.ResponseError(w, "Invalid form", http.StatusBadRequest)
		return
	}

	values := make(map[string]string, len(r.PostForm))
	for name := range r.PostForm {
		values[name] = r.PostForm.Get(name)
	}

	if h.session.Snapshot().Submitting {
		h.render(w, r, http.StatusConflict)
		return
	}

	h.session.Fill(domain.FieldsFromValues(values))
	_, err := h.session.Submit(r.Context())

	var formErr *domain.FormValidationError
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.As(err, &formErr):
		h.render(w, r, http.StatusUnprocessableEntity)
	case errors.Is(err, errs.ErrSubmitInProgress):
		h.render(w, r, http.StatusConflict)
	default:
		h.render(w, r, http.StatusInternalServerError)
	}
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int) {
	snap := h.session.Snapshot()

	var records []domain.SubmissionRecord
	if snap.View == domain.ViewList {
		var err error
		records, err = h.store.ListAll(r.Context())
		if err != nil {
			h.logger.Error("Failed to load submissions", "error", err)
			handlers.ResponseDomainError(w, err)
			return
		}
	}

	var buf bytes.Buffer
	page := h.renderer.NewPage(snap, h.validator.Rules(), records)
	if err := h.renderer.Page(&buf, page); err != nil {
		h.logger.Error("Failed to render page", "error", err)
		handlers.ResponseError(w, "Internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
