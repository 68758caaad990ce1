package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/handler"
)

func TestHTML(t *testing.T) {
	t.Parallel()

	t.Run("regular request gets plain HTML", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/signup", nil)

		resp := handler.HTML(`<form id="signup-form"></form>`)
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `<form id="signup-form"></form>`, w.Body.String())
	})

	t.Run("DataStar request gets element patch", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/signup", nil)
		r.Header.Set("Accept", "text/event-stream")

		resp := handler.HTML(`<span class="error">required</span>`,
			handler.WithTarget("#contact-email"),
			handler.WithPatchMode(handler.PatchInner),
		)
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "required")
		assert.Contains(t, body, "#contact-email")
	})
}

func TestHTMLPartial(t *testing.T) {
	t.Parallel()

	t.Run("DataStar request gets only the fragment", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/signup", nil)
		r.Header.Set("Accept", "text/event-stream")

		resp := handler.HTMLPartial(
			`<form id="signup-form">fragment</form>`,
			`<html><body>full page</body></html>`,
			handler.WithTarget("#signup-form"),
		)
		err := resp.Render(w, r)
		require.NoError(t, err)

		body := w.Body.String()
		assert.Contains(t, body, "fragment")
		assert.NotContains(t, body, "full page")
	})

	t.Run("regular request gets the full page", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/signup", nil)

		resp := handler.HTMLPartial(
			`<form id="signup-form">fragment</form>`,
			`<html><body>full page</body></html>`,
		)
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, `<html><body>full page</body></html>`, w.Body.String())
	})
}
