package submissions

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"gitlab.com/webrequest.net/internal/core/ports/primary"
	"gitlab.com/webrequest.net/internal/core/services/form"
	"gitlab.com/webrequest.net/internal/core/services/submission"
	"gitlab.com/webrequest.net/internal/domain"
	"gitlab.com/webrequest.net/internal/handlers"
	"gitlab.com/webrequest.net/internal/render"
	"gitlab.com/webrequest.net/internal/static/errs"
)

// SubmissionHandler handles the website request API
type SubmissionHandler struct {
	store   submission.ISubmissionStore
	session form.IFormSession
	loc     *time.Location
	logger  primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(store submission.ISubmissionStore, session form.IFormSession, loc *time.Location, logger primary.Logger) *SubmissionHandler {
	return &SubmissionHandler{
		store:   store,
		session: session,
		loc:     loc,
		logger:  logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/submissions", h.Submit).Methods("POST")
	router.HandleFunc("/api/submissions", h.List).Methods("GET")
	router.HandleFunc("/api/submissions", h.Clear).Methods("DELETE")
	router.HandleFunc("/api/submissions/count", h.Count).Methods("GET")
	router.HandleFunc("/api/submissions/export", h.Export).Methods("GET")
	router.HandleFunc("/api/submissions/{id}/email", h.Email).Methods("GET")
}

// Submit fills the form with the request body and submits it
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req domain.RawFormFields
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if h.session.Snapshot().Submitting {
		handlers.ResponseDomainError(w, errs.ErrSubmitInProgress)
		return
	}

	h.session.Fill(req)
	record, err := h.session.Submit(r.Context())
	if err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}

	handlers.ResponseWithJson(w, http.StatusCreated, record)
}

// List returns every stored record, newest first
func (h *SubmissionHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.ListAll(r.Context())
	if err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, ListSubmissionsResponse{
		Submissions: records,
		Count:       len(records),
	})
}

// Count returns the number of stored records
func (h *SubmissionHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.store.Count(r.Context())
	if err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, CountResponse{Count: n})
}

// Export downloads the whole collection as a dated JSON file
func (h *SubmissionHandler) Export(w http.ResponseWriter, r *http.Request) {
	export, err := h.store.ExportAll(r.Context())
	if err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(export.Data)
}

// Clear destroys the whole collection
func (h *SubmissionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Clear(r.Context()); err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Email renders the notification email body for one record
func (h *SubmissionHandler) Email(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	record, err := h.store.Get(r.Context(), id)
	if err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(render.EmailContent(record, h.loc)))
}
