package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/handler"
)

func TestSSE(t *testing.T) {
	t.Run("requires DataStar request", func(t *testing.T) {
		h := handler.SSE(func(stream handler.StreamContext) error {
			return nil
		})

		// Regular request without DataStar headers
		req := httptest.NewRequest("GET", "/events", nil)
		rec := httptest.NewRecorder()

		err := h.Render(rec, req)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "SSE endpoint requires DataStar connection")
	})

	t.Run("accepts DataStar SSE request", func(t *testing.T) {
		executed := false
		h := handler.SSE(func(stream handler.StreamContext) error {
			executed = true
			return nil
		})

		req := httptest.NewRequest("GET", "/events", nil)
		req.Header.Set("Accept", "text/event-stream")
		rec := httptest.NewRecorder()

		err := h.Render(rec, req)
		assert.NoError(t, err)
		assert.True(t, executed)
	})

	t.Run("context cancellation stops handler", func(t *testing.T) {
		started := make(chan struct{})
		stopped := make(chan struct{})

		h := handler.SSE(func(stream handler.StreamContext) error {
			close(started)
			<-stream.Done()
			close(stopped)
			return nil
		})

		req := httptest.NewRequest("GET", "/events", nil)
		req.Header.Set("Accept", "text/event-stream")

		ctx, cancel := context.WithCancel(context.Background())
		req = req.WithContext(ctx)

		rec := httptest.NewRecorder()

		done := make(chan error)
		go func() {
			done <- h.Render(rec, req)
		}()

		<-started
		cancel()

		select {
		case <-stopped:
		case <-time.After(time.Second):
			t.Fatal("handler did not stop after context cancellation")
		}
		require.NoError(t, <-done)
	})

	t.Run("streams signal patches", func(t *testing.T) {
		h := handler.SSE(func(stream handler.StreamContext) error {
			if err := stream.SendSignal("submitting", false); err != nil {
				return err
			}
			return stream.SendSignals(map[string]any{
				"valid":  true,
				"errors": map[string]any{},
			})
		})

		req := httptest.NewRequest("GET", "/events", nil)
		req.Header.Set("Accept", "text/event-stream")
		rec := httptest.NewRecorder()

		err := h.Render(rec, req)
		require.NoError(t, err)

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-signals")
		assert.Contains(t, body, "submitting")
		assert.Contains(t, body, `"valid":true`)
	})

	t.Run("streams element patches", func(t *testing.T) {
		h := handler.SSE(func(stream handler.StreamContext) error {
			return stream.SendElements(`<li id="sub-1">new submission</li>`,
				handler.WithTarget("#submissions"),
				handler.WithPatchMode(handler.PatchAppend),
			)
		})

		req := httptest.NewRequest("GET", "/events", nil)
		req.Header.Set("Accept", "text/event-stream")
		rec := httptest.NewRecorder()

		err := h.Render(rec, req)
		require.NoError(t, err)

		body := rec.Body.String()
		assert.Contains(t, body, "datastar-patch-elements")
		assert.Contains(t, body, "new submission")
		assert.Contains(t, body, "#submissions")
	})
}
