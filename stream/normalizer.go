package stream

import (
	"context"
	"encoding/json"
	"strings"
)

const (
	dataPrefix = "data:"
	doneMarker = "[DONE]"

	defaultToolName     = "unknown_tool"
	defaultErrorMessage = "Unknown error"
)

// wireEvent is the raw JSON payload of one SSE data line.
type wireEvent struct {
	Type    string `json:"type"`
	Delta   string `json:"delta"`
	Name    string `json:"name"`
	Args    string `json:"args"`
	Output  string `json:"output"`
	Message string `json:"message"`
}

// ParseEventLine normalizes a single raw SSE line. The second return value is
// false for lines that produce no event: blanks, ":" comments, lines without
// a data prefix, the [DONE] marker, and payloads that fail to decode.
// Unknown event types pass through with a logged warning rather than being
// dropped.
func ParseEventLine(line string) (Event, bool) {
	line = strings.TrimSpace(line)

	if line == "" || strings.HasPrefix(line, ":") {
		return Event{}, false
	}
	if !strings.HasPrefix(line, dataPrefix) {
		return Event{}, false
	}

	payload := strings.TrimSpace(line[len(dataPrefix):])
	if payload == doneMarker {
		return Event{}, false
	}

	var raw wireEvent
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		Logger.Printf("skipping malformed event line: %v", err)
		return Event{}, false
	}

	switch raw.Type {
	case "text_delta":
		return Event{Type: EventTextDelta, Delta: raw.Delta}, true

	case "tool_call":
		if raw.Name == "" {
			raw.Name = defaultToolName
		}
		return Event{Type: EventToolCall, Name: raw.Name, Args: raw.Args}, true

	case "tool_output":
		if raw.Name == "" {
			raw.Name = defaultToolName
		}
		return Event{Type: EventToolOutput, Name: raw.Name, Output: raw.Output}, true

	case "error":
		if raw.Message == "" {
			raw.Message = defaultErrorMessage
		}
		return Event{Type: EventError, Message: raw.Message}, true

	default:
		Logger.Printf("unknown event type: %q", raw.Type)
		return Event{
			Type:    EventType(raw.Type),
			Delta:   raw.Delta,
			Name:    raw.Name,
			Args:    raw.Args,
			Output:  raw.Output,
			Message: raw.Message,
		}, true
	}
}

// Normalize converts a channel of raw SSE lines into a channel of normalized
// events. The output channel closes when the input closes or the context is
// cancelled.
func Normalize(ctx context.Context, lines <-chan string) <-chan Event {
	out := make(chan Event)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case line, ok := <-lines:
				if !ok {
					return
				}
				event, ok := ParseEventLine(line)
				if !ok {
					continue
				}
				select {
				case out <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out
}
