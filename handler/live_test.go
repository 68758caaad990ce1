package handler_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/handler"
	"github.com/dmitrymomot/formkit/rules"
)

// newNewsletterForm wires the conditional contact email: required only while
// the newsletter checkbox is ticked, with the conditional errors namespaced
// away from the field's other error kinds.
func newNewsletterForm() *formkit.Group {
	newsletter := formkit.NewField("newsletter", false)
	contactEmail := formkit.NewField("contactEmail", "",
		formkit.WithValidators(
			formkit.When(
				formkit.Truthy(newsletter),
				rules.NonEmpty(),
				formkit.WithNamespace("illuminatiError"),
			),
		),
	)
	g := formkit.MustGroup(newsletter, contactEmail)
	if err := g.RevalidateOn("newsletter", "contactEmail"); err != nil {
		panic(err)
	}
	return g
}

func signalsRequest(body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/signup/validate", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Accept", "text/event-stream")
	return r
}

func TestLiveValidate(t *testing.T) {
	t.Parallel()

	t.Run("checked newsletter with empty email patches the conditional error", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := signalsRequest(`{"newsletter":true,"contactEmail":""}`)

		handler.LiveValidate(newNewsletterForm)(w, r)

		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, `"valid":false`)
		assert.Contains(t, body, "illuminatiError")
		assert.Contains(t, body, "required")
	})

	t.Run("unchecked newsletter clears the conditional error", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := signalsRequest(`{"newsletter":false,"contactEmail":""}`)

		handler.LiveValidate(newNewsletterForm)(w, r)

		body := w.Body.String()
		assert.Contains(t, body, `"valid":true`)
		assert.Contains(t, body, `"errors":{}`)
		assert.NotContains(t, body, "illuminatiError")
	})

	t.Run("filled email satisfies the conditional rule", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := signalsRequest(`{"newsletter":true,"contactEmail":"ada@example.com"}`)

		handler.LiveValidate(newNewsletterForm)(w, r)

		assert.Contains(t, w.Body.String(), `"valid":true`)
	})

	t.Run("malformed signals return 400", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := signalsRequest(`{"newsletter":`)

		handler.LiveValidate(newNewsletterForm)(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-DataStar form post gets a JSON envelope", func(t *testing.T) {
		t.Parallel()
		body := url.Values{"newsletter": {"true"}, "contactEmail": {""}}
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/signup/validate", strings.NewReader(body.Encode()))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		handler.LiveValidate(newNewsletterForm)(w, r)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "illuminatiError")
		assert.Contains(t, w.Body.String(), `"valid":false`)
	})

	t.Run("custom presenter shapes the signals", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := signalsRequest(`{"newsletter":true,"contactEmail":""}`)

		presenter := func(_ *http.Request, errs formkit.FormErrors) map[string]any {
			fields := make([]string, 0, len(errs))
			for name := range errs {
				fields = append(fields, name)
			}
			return map[string]any{"failedFields": fields}
		}

		handler.LiveValidate(newNewsletterForm, handler.WithLivePresenter(presenter))(w, r)

		body := w.Body.String()
		assert.Contains(t, body, "failedFields")
		assert.Contains(t, body, "contactEmail")
	})
}
