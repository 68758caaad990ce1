package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/handler"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		headers  map[string]string
		query    string
		expected bool
	}{
		{
			name:     "SSE Accept header",
			headers:  map[string]string{"Accept": "text/event-stream"},
			expected: true,
		},
		{
			name:     "SSE Accept header with other values",
			headers:  map[string]string{"Accept": "text/html, text/event-stream, */*"},
			expected: true,
		},
		{
			name:     "DataStar query parameter",
			query:    "?datastar={\"newsletter\":true}",
			expected: true,
		},
		{
			name:     "DataStar content type",
			headers:  map[string]string{"Content-Type": "application/x-datastar"},
			expected: true,
		},
		{
			name:     "Regular request",
			headers:  map[string]string{"Accept": "text/html"},
			expected: false,
		},
		{
			name:     "No headers",
			headers:  map[string]string{},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/test"+tt.query, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			result := handler.IsDataStar(req)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestReadSignals(t *testing.T) {
	t.Parallel()

	t.Run("reads signals from POST body", func(t *testing.T) {
		t.Parallel()
		body := strings.NewReader(`{"newsletter":true,"contactEmail":""}`)
		req := httptest.NewRequest(http.MethodPost, "/validate", body)
		req.Header.Set("Content-Type", "application/json")

		var signals map[string]any
		err := handler.ReadSignals(req, &signals)
		require.NoError(t, err)
		assert.Equal(t, true, signals["newsletter"])
		assert.Equal(t, "", signals["contactEmail"])
	})

	t.Run("reads signals from GET query", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, `/validate?datastar={"plan":"pro"}`, nil)

		var signals map[string]any
		err := handler.ReadSignals(req, &signals)
		require.NoError(t, err)
		assert.Equal(t, "pro", signals["plan"])
	})
}
