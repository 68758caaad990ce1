package handler

import (
	"encoding/json"

	"github.com/starfederation/datastar-go/datastar"
)

// StreamContext extends Context with SSE streaming capabilities.
// It provides methods to push markup patches and signal updates through an
// established SSE connection.
type StreamContext interface {
	Context

	// SendElements patches pre-rendered markup into the page.
	//
	// Example:
	//
	//	err := stream.SendElements(rowMarkup,
	//		handler.WithTarget("#submissions"),
	//		handler.WithPatchMode(handler.PatchAppend),
	//	)
	SendElements(markup string, opts ...ElementOption) error

	// SendSignal updates a single frontend signal/state value.
	// Signals drive reactive UI updates without replacing DOM elements.
	//
	// Example:
	//
	//	err := stream.SendSignal("submitting", false)
	SendSignal(name string, value any) error

	// SendSignals updates multiple frontend signals at once.
	// More efficient than calling SendSignal per value.
	//
	// Example:
	//
	//	err := stream.SendSignals(map[string]any{
	//		"valid":  false,
	//		"errors": fieldErrors,
	//	})
	SendSignals(signals map[string]any) error
}

// streamContext implements StreamContext by wrapping a base Context
// with SSE streaming capabilities.
type streamContext struct {
	Context
	sse *datastar.ServerSentEventGenerator
}

// SendElements patches markup through SSE.
func (c *streamContext) SendElements(markup string, opts ...ElementOption) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	return c.sse.PatchElements(markup, opts...)
}

// SendSignal updates a single signal value.
func (c *streamContext) SendSignal(name string, value any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(map[string]any{name: value})
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}

// SendSignals updates multiple signals at once.
func (c *streamContext) SendSignals(signals map[string]any) error {
	if c.sse == nil {
		return ErrSSENotInitialized
	}
	data, err := json.Marshal(signals)
	if err != nil {
		return err
	}
	return c.sse.PatchSignals(data)
}
