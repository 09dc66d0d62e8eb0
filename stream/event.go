// Package stream normalizes server-sent assistant events and accumulates
// their text deltas into a message buffer that is re-parsed into blocks on
// demand.
//
// The upstream wire format is one JSON payload per SSE data line:
//
//	data: {"type": "text_delta", "delta": "Hello"}
//	data: {"type": "tool_call", "name": "query_metrics", "args": "..."}
//	data: [DONE]
//
// Normalization maps underscore wire types to dotted event types and fills in
// defaults, so downstream code switches on a small closed set.
package stream

import (
	"log"
	"os"
)

// EventType identifies a normalized stream event.
type EventType string

const (
	// EventTextDelta carries the next token of the response text.
	EventTextDelta EventType = "text.delta"
	// EventToolCall signals that the assistant started a tool invocation.
	EventToolCall EventType = "tool.call"
	// EventToolOutput carries a completed tool invocation's output.
	EventToolOutput EventType = "tool.output"
	// EventError carries a fatal upstream error message.
	EventError EventType = "error"
)

// Event is one normalized stream event. Only the fields relevant to its Type
// are populated.
type Event struct {
	Type    EventType `json:"type"`
	Delta   string    `json:"delta,omitempty"`
	Name    string    `json:"name,omitempty"`
	Args    string    `json:"args,omitempty"`
	Output  string    `json:"output,omitempty"`
	Message string    `json:"message,omitempty"`
}

// Logger is the package-level logger for skipped or unknown events.
var Logger = log.New(os.Stderr, "[stream] ", log.LstdFlags)

// SetLogger replaces the package-level logger.
func SetLogger(logger *log.Logger) {
	Logger = logger
}
