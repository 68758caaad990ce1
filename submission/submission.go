package submission

import (
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Submission is an accepted form, recorded after validation passed.
type Submission struct {
	ID         uuid.UUID      `json:"id"`
	Form       string         `json:"form"`
	Values     map[string]any `json:"values"`
	Meta       Meta           `json:"meta"`
	ReceivedAt time.Time      `json:"received_at"`
}

// Meta captures request context worth keeping alongside the values.
type Meta struct {
	ClientIP  string `json:"client_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
	Referer   string `json:"referer,omitempty"`
	Locale    string `json:"locale,omitempty"`
}

// New creates a submission stamped with a fresh ID and the current time.
func New(form string, values map[string]any, meta Meta) *Submission {
	return &Submission{
		ID:         uuid.New(),
		Form:       form,
		Values:     values,
		Meta:       meta,
		ReceivedAt: time.Now(),
	}
}

// MetaFromRequest extracts submission metadata from an HTTP request.
func MetaFromRequest(r *http.Request) Meta {
	return Meta{
		ClientIP:  clientIP(r),
		UserAgent: r.UserAgent(),
		Referer:   r.Referer(),
	}
}

// clientIP resolves the client address behind common reverse-proxy headers,
// falling back to the connection's remote address.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for ip := range strings.SplitSeq(forwarded, ",") {
			if parsed := parseIP(ip); parsed != "" {
				return parsed
			}
		}
	}

	if ip := r.Header.Get("X-Real-IP"); ip != "" {
		if parsed := parseIP(ip); parsed != "" {
			return parsed
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string.
func parseIP(ipStr string) string {
	ipStr = strings.TrimSpace(ipStr)
	if ipStr == "" {
		return ""
	}
	ip := net.ParseIP(ipStr)
	if ip == nil {
		return ""
	}
	return ip.String()
}
