package handler_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit"
	"github.com/dmitrymomot/formkit/binder"
	"github.com/dmitrymomot/formkit/handler"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("simple data", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		resp := handler.JSON(map[string]string{"id": "123", "name": "test"})
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.JSONEq(t, `{"data":{"id":"123","name":"test"}}`, w.Body.String())
	})

	t.Run("with meta", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		resp := handler.JSON(
			map[string]string{"id": "123"},
			handler.WithJSONMeta(map[string]any{"version": "1.0"}),
		)
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"data":{"id":"123"},"meta":{"version":"1.0"}}`, w.Body.String())
	})

	t.Run("minimal response", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		resp := handler.JSON(nil)
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})

	t.Run("with custom status", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		resp := handler.JSON(
			map[string]string{"id": "456"},
			handler.WithJSONStatus(http.StatusCreated),
		)
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.JSONEq(t, `{"data":{"id":"456"}}`, w.Body.String())
	})

	t.Run("error value becomes error response", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		resp := handler.JSON(errors.New("boom"))
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"code":"internal_error","message":"boom"}}`, w.Body.String())
	})
}

func TestJSONError(t *testing.T) {
	t.Parallel()

	t.Run("generic error", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)

		resp := handler.JSONError(errors.New("database unavailable"))
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"error":{"code":"internal_error","message":"database unavailable"}}`, w.Body.String())
	})

	t.Run("http error uses its status and key", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		resp := handler.JSONError(handler.ErrNotFound)
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":{"code":"not_found","message":"Not Found"}}`, w.Body.String())
	})

	t.Run("wrapped http error", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		resp := handler.JSONError(fmt.Errorf("lookup draft: %w", handler.ErrGone))
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusGone, w.Code)

		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.NotNil(t, got.Error)
		assert.Equal(t, "gone", got.Error.Code)
	})

	t.Run("validation errors map to 422 with field details", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)

		formErrs := formkit.FormErrors{
			"contactEmail": formkit.Errors{
				"illuminatiError": {Nested: formkit.Errors{
					"required": {Message: "%{field} is required", Params: map[string]any{"field": "contactEmail"}},
				}},
			},
			"name": formkit.Errors{
				"required": {Message: "%{field} is required", Params: map[string]any{"field": "name"}},
			},
		}

		resp := handler.JSONError(formErrs)
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.JSONEq(t, `{
			"error": {
				"code": "validation_error",
				"message": "validation failed for fields: contactEmail, name",
				"fields": {
					"contactEmail": {
						"illuminatiError": {
							"required": {"message": "%{field} is required", "params": {"field": "contactEmail"}}
						}
					},
					"name": {
						"required": {"message": "%{field} is required", "params": {"field": "name"}}
					}
				}
			}
		}`, w.Body.String())
	})

	t.Run("unsupported media type maps to 415", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)

		resp := handler.JSONError(fmt.Errorf("%w: text/csv", binder.ErrUnsupportedMediaType))
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.NotNil(t, got.Error)
		assert.Equal(t, "unsupported_media_type", got.Error.Code)
	})

	t.Run("invalid form data maps to 400", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", nil)

		resp := handler.JSONError(fmt.Errorf("%w: field age", binder.ErrInvalidForm))
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var got handler.JSONResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.NotNil(t, got.Error)
		assert.Equal(t, "invalid_request", got.Error.Code)
	})

	t.Run("status override option wins", func(t *testing.T) {
		t.Parallel()
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		resp := handler.JSONError(errors.New("boom"), handler.WithJSONStatus(http.StatusBadGateway))
		err := resp.Render(w, r)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}
