package handler

import "net/http"

// emptyResponse represents an empty HTTP response with only a status code
type emptyResponse struct {
	status int
}

// Render writes the status code without any body content
func (e emptyResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.WriteHeader(e.status)
	return nil
}

// Empty creates an empty response with status 204 (No Content).
// Useful for operations that succeed without returning data, such as deleting
// a draft or acknowledging a webhook.
//
// Example:
//
//	h := handler.HandlerFunc[handler.Context](
//		func(ctx handler.Context) handler.Response {
//			drafts.Delete(ctx, token)
//			return handler.Empty()
//		},
//	)
func Empty() Response {
	return emptyResponse{
		status: http.StatusNoContent,
	}
}

// EmptyWithStatus creates an empty response with a custom status code.
//
// Example:
//
//	// Return 202 Accepted for async submission processing
//	return handler.EmptyWithStatus(http.StatusAccepted)
func EmptyWithStatus(status int) Response {
	return emptyResponse{
		status: status,
	}
}
