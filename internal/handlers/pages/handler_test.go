package pages

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/webrequest.net/internal/adapter/logging"
	"gitlab.com/webrequest.net/internal/adapter/memory/kvstore"
	"gitlab.com/webrequest.net/internal/core/services/form"
	"gitlab.com/webrequest.net/internal/core/services/submission"
	"gitlab.com/webrequest.net/internal/core/services/validator"
	"gitlab.com/webrequest.net/internal/domain"
	"gitlab.com/webrequest.net/internal/render"
)

type fixture struct {
	router  *mux.Router
	session *form.Session
	store   *submission.SubmissionStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := logging.NewNopLogger()
	v := validator.NewValidator(validator.DefaultRules(), logger)
	store := submission.NewSubmissionStore(kvstore.New(), logger)
	session := form.NewSession(v, store, logger,
		form.WithLatency(0),
		form.WithSleep(func(time.Duration) {}))
	renderer, err := render.NewRenderer(time.UTC)
	require.NoError(t, err)

	router := mux.NewRouter()
	NewPageHandler(session, v, store, renderer, logger).RegisterRoutes(router)
	return &fixture{router: router, session: session, store: store}
}

func (f *fixture) get(path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func (f *fixture) post(values url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/form/submit", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"studentName": {"Jo"},
		"courseYear":  {"BSIT-3"},
		"email":       {"jo@x.com"},
		"websiteType": {"portfolio"},
		"budget":      {"1000-5000"},
		"timeline":    {""},
	}
}

func TestIndexRendersForm(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `id="requestForm"`)
}

func TestSubmitSuccessRedirectsToSuccessView(t *testing.T) {
	f := newFixture(t)

	rec := f.post(validForm())
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	page := f.get("/")
	assert.Contains(t, page.Body.String(), "Request Submitted!")

	n, err := f.store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	page = f.get("/form")
	assert.Contains(t, page.Body.String(), `id="requestForm"`)
	assert.Equal(t, domain.ViewForm, f.session.Snapshot().View)
}

func TestSubmitInvalidRerendersErrors(t *testing.T) {
	f := newFixture(t)
	values := validForm()
	values.Set("email", "a@b")

	rec := f.post(values)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Please enter a valid email address")
	assert.Contains(t, body, `value="Jo"`)

	n, err := f.store.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubmissionsView(t *testing.T) {
	f := newFixture(t)

	rec := f.get("/submissions")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No submissions yet")

	require.Equal(t, http.StatusSeeOther, f.post(validForm()).Code)

	rec = f.get("/submissions")
	body := rec.Body.String()
	assert.Contains(t, body, "Portfolio")
	assert.Contains(t, body, "1000 - ₱5000")
	assert.Contains(t, body, "Pending Review")
	assert.NotContains(t, body, "No submissions yet")
}
