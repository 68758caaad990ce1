package handler

import (
	"net/http"
)

// SSEHandler is a function that handles Server-Sent Events streaming.
// It receives a StreamContext with methods for sending markup patches and
// signal updates.
//
// The handler runs for the lifetime of the SSE connection. The connection is
// closed when the handler returns or the client disconnects.
//
// Example:
//
//	handler.SSE(func(stream handler.StreamContext) error {
//		for {
//			select {
//			case <-stream.Done():
//				return nil
//			case sub := <-submissions:
//				err := stream.SendElements(renderRow(sub),
//					handler.WithTarget("#submissions"),
//					handler.WithPatchMode(handler.PatchAppend),
//				)
//				if err != nil {
//					return err
//				}
//			}
//		}
//	})
type SSEHandler func(ctx StreamContext) error

// sseResponse implements Response for Server-Sent Events.
type sseResponse struct {
	handler SSEHandler
}

// Render validates DataStar connection and executes the SSE handler.
func (s sseResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if !IsDataStar(r) {
		return NewHTTPError(http.StatusBadRequest, "SSE endpoint requires DataStar connection")
	}

	// Create base context with SSE already initialized
	base := NewContext(w, r)
	if base.SSE() == nil {
		return ErrSSENotInitialized
	}

	ctx := &streamContext{
		Context: base,
		sse:     base.SSE(),
	}

	return s.handler(ctx)
}

// SSE creates a new SSE response that runs the given handler.
// The handler receives a StreamContext for pushing real-time updates to the
// client over the DataStar connection established by the page.
//
// Example usage in a handler:
//
//	handler.HandlerFunc[handler.Context](
//		func(ctx handler.Context) handler.Response {
//			return handler.SSE(func(stream handler.StreamContext) error {
//				events := bus.Subscribe("submissions")
//				defer bus.Unsubscribe(events)
//
//				for event := range events {
//					if err := stream.SendSignals(event.Signals()); err != nil {
//						return err
//					}
//				}
//				return nil
//			})
//		},
//	)
func SSE(handler SSEHandler) Response {
	return sseResponse{handler: handler}
}
