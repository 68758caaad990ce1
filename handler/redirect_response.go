package handler

import (
	"net/http"
	"net/url"
)

// redirectResponse implements Response for HTTP redirects
type redirectResponse struct {
	url  string
	code int
}

// Render performs the redirect. DataStar requests receive a client-side
// redirect over SSE because a Location header does not reach the browser
// through an event stream.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		sse := NewSSE(w, req)
		return sse.Redirect(r.url)
	}

	http.Redirect(w, req, r.url, r.code)
	return nil
}

// Redirect creates a redirect response with status 303 (See Other).
// 303 is the right default after form submissions: the browser re-requests
// the target with GET, so a refresh cannot resubmit the form.
//
// Example:
//
//	return handler.Redirect("/signup/thanks")
func Redirect(url string) Response {
	return redirectResponse{
		url:  url,
		code: http.StatusSeeOther,
	}
}

// RedirectWithCode creates a redirect response with a custom status code.
//
// Example:
//
//	return handler.RedirectWithCode("/new-form-url", http.StatusMovedPermanently)
func RedirectWithCode(url string, code int) Response {
	return redirectResponse{
		url:  url,
		code: code,
	}
}

// redirectBackResponse redirects to the request referer with a fallback
type redirectBackResponse struct {
	fallback string
	code     int
}

// Render redirects to the Referer header value when it points at the same
// host, otherwise to the fallback URL.
func (r redirectBackResponse) Render(w http.ResponseWriter, req *http.Request) error {
	target := req.Header.Get("Referer")
	if target == "" || !isValidRedirectURL(req, target) {
		target = r.fallback
	}

	if IsDataStar(req) {
		sse := NewSSE(w, req)
		return sse.Redirect(target)
	}

	http.Redirect(w, req, target, r.code)
	return nil
}

// RedirectBack redirects to the referring page, or to fallback when the
// referer is absent or points off-site.
//
// Example:
//
//	return handler.RedirectBack("/")
func RedirectBack(fallback string) Response {
	return redirectBackResponse{
		fallback: fallback,
		code:     http.StatusSeeOther,
	}
}

// RedirectBackWithCode is RedirectBack with a custom status code.
func RedirectBackWithCode(fallback string, code int) Response {
	return redirectBackResponse{
		fallback: fallback,
		code:     code,
	}
}

// isValidRedirectURL rejects absolute URLs pointing at another host so a
// forged Referer cannot turn the redirect into an open redirect.
func isValidRedirectURL(r *http.Request, redirectURL string) bool {
	parsed, err := url.Parse(redirectURL)
	if err != nil {
		return false
	}
	return parsed.Host == "" || parsed.Host == r.Host
}
