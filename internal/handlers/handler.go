package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"gitlab.com/webrequest.net/internal/domain"
	"gitlab.com/webrequest.net/internal/handlers/response"
	"gitlab.com/webrequest.net/internal/static/errs"
)

func ResponseWithJson(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

func ResponseError(w http.ResponseWriter, message string, code int) {
	response.WriteError(w, response.ErrorMessage{
		Message:    message,
		StatusCode: code,
	})
}

// ValidationErrorResponse is returned when a submit is blocked by field rules
type ValidationErrorResponse struct {
	Message           string                         `json:"message"`
	FirstInvalidField string                         `json:"firstInvalidField"`
	Errors            []*domain.FieldValidationError `json:"errors"`
}

// ResponseDomainError maps service errors to status codes
func ResponseDomainError(w http.ResponseWriter, err error) {
	var formErr *domain.FormValidationError
	if errors.As(err, &formErr) {
		ResponseWithJson(w, http.StatusUnprocessableEntity, ValidationErrorResponse{
			Message:           "Please correct the highlighted fields",
			FirstInvalidField: formErr.First().Field,
			Errors:            formErr.Fields,
		})
		return
	}

	var perr *domain.PersistenceError
	switch {
	case errors.Is(err, errs.ErrSubmitInProgress):
		ResponseError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, errs.ErrUnknownField), errors.Is(err, errs.ErrInvalidView):
		ResponseError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, errs.ErrRecordNotFound), errors.Is(err, errs.ErrDraftDisabled):
		ResponseError(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &perr):
		ResponseError(w, "Storage is unavailable, please try again", http.StatusInternalServerError)
	default:
		ResponseError(w, "Internal error", http.StatusInternalServerError)
	}
}

var validate = validator.New()

// DecodeJSON reads a JSON request body into dst
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	decoder.DisallowUnknownFields()
	return decoder.Decode(dst)
}

// DecodeAndValidate reads a JSON request body into dst and checks its
// `validate` struct tags
func DecodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := DecodeJSON(w, r, dst); err != nil {
		return err
	}
	return validate.Struct(dst)
}
