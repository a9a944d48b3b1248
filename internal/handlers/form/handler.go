package form

import (
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/webrequest.net/internal/core/ports/primary"
	formservice "gitlab.com/webrequest.net/internal/core/services/form"
	"gitlab.com/webrequest.net/internal/core/services/submission"
	"gitlab.com/webrequest.net/internal/core/services/validator"
	"gitlab.com/webrequest.net/internal/domain"
	"gitlab.com/webrequest.net/internal/handlers"
)

const viewBack = "back"

// FormHandler handles field-level interaction with the form session
type FormHandler struct {
	session   formservice.IFormSession
	validator validator.IValidator
	drafts    submission.IDraftStore
	logger    primary.Logger
}

// NewFormHandler creates a new form handler
func NewFormHandler(session formservice.IFormSession, v validator.IValidator, drafts submission.IDraftStore, logger primary.Logger) *FormHandler {
	return &FormHandler{
		session:   session,
		validator: v,
		drafts:    drafts,
		logger:    logger,
	}
}

// RegisterRoutes registers the API routes for FormHandler
func (h *FormHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/rules", h.Rules).Methods("GET")
	router.HandleFunc("/api/fields/{field}/blur", h.Blur).Methods("POST")
	router.HandleFunc("/api/fields/{field}/input", h.Input).Methods("POST")
	router.HandleFunc("/api/session", h.Session).Methods("GET")
	router.HandleFunc("/api/session/view", h.View).Methods("POST")
	router.HandleFunc("/api/draft", h.LoadDraft).Methods("GET")
	router.HandleFunc("/api/draft", h.SaveDraft).Methods("PUT")
	router.HandleFunc("/api/draft", h.ClearDraft).Methods("DELETE")
}

// Rules returns the rule set in declaration order
func (h *FormHandler) Rules(w http.ResponseWriter, r *http.Request) {
	rules := h.validator.Rules().Rules()
	resp := make([]RuleResponse, 0, len(rules))
	for _, rule := range rules {
		resp = append(resp, newRuleResponse(rule))
	}
	handlers.ResponseWithJson(w, http.StatusOK, resp)
}

// Blur stores the value when one is sent, then validates the field
func (h *FormHandler) Blur(w http.ResponseWriter, r *http.Request) {
	field := mux.Vars(r)["field"]

	var req FieldValueRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.Value != nil {
		if err := h.session.Input(field, *req.Value); err != nil {
			handlers.ResponseDomainError(w, err)
			return
		}
	}

	fieldErr, err := h.session.Blur(field)
	if err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, FieldResultResponse{
		Field: field,
		Valid: fieldErr == nil,
		Error: fieldErr,
	})
}

// Input stores a field value and clears its visible error
func (h *FormHandler) Input(w http.ResponseWriter, r *http.Request) {
	field := mux.Vars(r)["field"]

	var req FieldValueRequest
	if err := handlers.DecodeJSON(w, r, &req); err != nil || req.Value == nil {
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if err := h.session.Input(field, *req.Value); err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session returns the current session state
func (h *FormHandler) Session(w http.ResponseWriter, r *http.Request) {
	handlers.ResponseWithJson(w, http.StatusOK, h.session.Snapshot())
}

// View switches the visible view
func (h *FormHandler) View(w http.ResponseWriter, r *http.Request) {
	var req ViewRequest
	if err := handlers.DecodeAndValidate(w, r, &req); err != nil {
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	if req.View == viewBack {
		h.session.Back()
	} else if err := h.session.Show(domain.ViewState(req.View)); err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, h.session.Snapshot())
}

// LoadDraft returns the saved draft
func (h *FormHandler) LoadDraft(w http.ResponseWriter, r *http.Request) {
	draft, err := h.drafts.LoadDraft(r.Context())
	if err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, DraftResponse{Values: draft})
}

// SaveDraft saves the posted values, or the session's values when none are posted
func (h *FormHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	var req DraftRequest
	if err := handlers.DecodeAndValidate(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		handlers.ResponseError(w, "Invalid request", http.StatusBadRequest)
		return
	}

	values := req.Values
	if values == nil {
		values = h.session.Snapshot().Values.Values()
	}

	if err := h.drafts.SaveDraft(r.Context(), values); err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearDraft removes the saved draft
func (h *FormHandler) ClearDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.drafts.ClearDraft(r.Context()); err != nil {
		handlers.ResponseDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
