package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

// ElementOption is an alias for datastar's PatchElementOption
type ElementOption = datastar.PatchElementOption

// WithTarget sets the selector for where the markup should be patched
func WithTarget(selector string) ElementOption {
	return datastar.WithSelector(selector)
}

// WithPatchMode sets how the markup should be merged into the DOM
func WithPatchMode(mode datastar.ElementPatchMode) ElementOption {
	return datastar.WithMode(mode)
}

// htmlResponse wraps rendered markup to implement Response
type htmlResponse struct {
	markup  string
	options []datastar.PatchElementOption
}

// Render outputs the markup via SSE patch for DataStar or plain HTML otherwise
func (h htmlResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := NewSSE(w, r)
		return sse.PatchElements(h.markup, h.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write([]byte(h.markup))
	return err
}

// HTML creates a response from pre-rendered markup.
// For DataStar requests, the markup is sent as an SSE element patch with
// optional target and patch mode. For regular requests, it is written as the
// response body. The markup must already be escaped; pair this with
// html/template rendering, never with raw user input.
//
// Full page:
//
//	return handler.HTML(page.String())
//
// Patching one fragment:
//
//	return handler.HTML(fieldMarkup,
//		handler.WithTarget("#contact-email"),
//		handler.WithPatchMode(handler.PatchOuter),
//	)
func HTML(markup string, opts ...ElementOption) Response {
	return htmlResponse{
		markup:  markup,
		options: opts,
	}
}

// htmlPartialResponse renders a fragment for DataStar and a full page otherwise
type htmlPartialResponse struct {
	fragment string
	full     string
	options  []datastar.PatchElementOption
}

// Render outputs the fragment as an SSE patch or the full page as HTML
func (h htmlPartialResponse) Render(w http.ResponseWriter, r *http.Request) error {
	if IsDataStar(r) {
		sse := NewSSE(w, r)
		return sse.PatchElements(h.fragment, h.options...)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := w.Write([]byte(h.full))
	return err
}

// HTMLPartial creates a response that renders differently per request type.
// DataStar requests receive only the fragment as a targeted patch; regular
// requests receive the full page. This lets one endpoint serve both the
// initial page load and in-place form updates.
//
// Example:
//
//	return handler.HTMLPartial(formMarkup, pageMarkup,
//		handler.WithTarget("#signup-form"))
func HTMLPartial(fragment, full string, opts ...ElementOption) Response {
	return htmlPartialResponse{
		fragment: fragment,
		full:     full,
		options:  opts,
	}
}
