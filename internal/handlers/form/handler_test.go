package form

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/webrequest.net/internal/adapter/logging"
	"gitlab.com/webrequest.net/internal/adapter/memory/kvstore"
	formservice "gitlab.com/webrequest.net/internal/core/services/form"
	"gitlab.com/webrequest.net/internal/core/services/submission"
	"gitlab.com/webrequest.net/internal/core/services/validator"
	"gitlab.com/webrequest.net/internal/domain"
)

type fixture struct {
	router  *mux.Router
	session *formservice.Session
	store   *submission.SubmissionStore
}

func newFixture(t *testing.T, drafts bool) *fixture {
	t.Helper()
	logger := logging.NewNopLogger()
	v := validator.NewValidator(validator.DefaultRules(), logger)
	store := submission.NewSubmissionStore(kvstore.New(), logger, submission.WithDrafts(drafts))
	session := formservice.NewSession(v, store, logger,
		formservice.WithLatency(0),
		formservice.WithSleep(func(time.Duration) {}))

	router := mux.NewRouter()
	NewFormHandler(session, v, store, logger).RegisterRoutes(router)
	return &fixture{router: router, session: session, store: store}
}

func (f *fixture) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRules(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodGet, "/api/rules", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rules []RuleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rules))
	require.Len(t, rules, 5)
	assert.Equal(t, domain.FieldStudentName, rules[0].Field)
	assert.Equal(t, 2, rules[0].MinLength)
	assert.Equal(t, "studentnameError", rules[0].ErrorSlot)
	assert.Equal(t, domain.FieldEmail, rules[2].Field)
	assert.NotEmpty(t, rules[2].Pattern)
}

func TestBlurAndInput(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodPost, "/api/fields/email/blur", `{"value":"abc"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var result FieldResultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Valid)
	require.NotNil(t, result.Error)
	assert.Equal(t, "emailError", result.Error.Slot)
	assert.Equal(t, "Please enter a valid email address", f.session.Snapshot().Errors["emailError"])

	rec = f.do(http.MethodPost, "/api/fields/email/input", `{"value":"abcd"}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotContains(t, f.session.Snapshot().Errors, "emailError")
	assert.Equal(t, "abcd", f.session.Snapshot().Values.Email)

	// blur without a value checks what was typed
	rec = f.do(http.MethodPost, "/api/fields/email/blur", `{}`)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Valid)
}

func TestBlurOptionalFieldAlwaysPasses(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodPost, "/api/fields/timeline/blur", `{"value":""}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var result FieldResultResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Valid)
}

func TestUnknownField(t *testing.T) {
	f := newFixture(t, false)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/fields/nickname/input", `{"value":"x"}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/fields/nickname/blur", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/fields/email/input", `{}`).Code)
}

func TestViewSwitching(t *testing.T) {
	f := newFixture(t, false)

	rec := f.do(http.MethodPost, "/api/session/view", `{"view":"list"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var snap domain.SessionSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, domain.ViewList, snap.View)

	rec = f.do(http.MethodPost, "/api/session/view", `{"view":"back"}`)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, domain.ViewForm, snap.View)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/session/view", `{"view":"success"}`).Code)

	rec = f.do(http.MethodGet, "/api/session", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestDraftDisabled(t *testing.T) {
	f := newFixture(t, false)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodGet, "/api/draft", "").Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodPut, "/api/draft", `{"values":{"email":"a@b.co"}}`).Code)
	assert.Equal(t, http.StatusNotFound, f.do(http.MethodDelete, "/api/draft", "").Code)
}

func TestDraftRoundTrip(t *testing.T) {
	f := newFixture(t, true)

	rec := f.do(http.MethodPut, "/api/draft", `{"values":{"email":"a@b.co","budget":"  "}}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = f.do(http.MethodGet, "/api/draft", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var draft DraftResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &draft))
	assert.Equal(t, domain.Draft{"email": "a@b.co"}, draft.Values)

	// no body saves what the session holds
	require.NoError(t, f.session.Input(domain.FieldStudentName, "Jo"))
	require.Equal(t, http.StatusNoContent, f.do(http.MethodPut, "/api/draft", "").Code)
	saved, err := f.store.LoadDraft(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.Draft{"studentName": "Jo"}, saved)

	require.Equal(t, http.StatusNoContent, f.do(http.MethodDelete, "/api/draft", "").Code)
	saved, err = f.store.LoadDraft(context.Background())
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestRequestShapeIsValidated(t *testing.T) {
	f := newFixture(t, true)

	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/session/view", `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/api/session/view", `{"view":"home"}`).Code)

	long := strings.Repeat("x", 2001)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPut, "/api/draft", `{"values":{"instructions":"`+long+`"}}`).Code)
}
