package stream

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/oklog/ulid/v2"

	blockify "github.com/alexjfall/blockify-go"
)

// Accumulator owns the growing text buffer of one streamed message and
// re-derives its blocks from the full buffer on every read. There is no
// incremental patching: reads after partial markdown (say, half a table) are
// self-correcting once the rest arrives.
//
// An Accumulator is safe for concurrent use.
type Accumulator struct {
	mu        sync.Mutex
	messageID string
	buf       strings.Builder
	opts      []blockify.Option
}

// NewAccumulator creates an accumulator for one message. An empty messageID
// gets a generated "msg-" ULID, so block IDs stay unique across concurrent
// streams. Parse options are applied to every re-parse.
func NewAccumulator(messageID string, opts ...blockify.Option) *Accumulator {
	if messageID == "" {
		messageID = "msg-" + ulid.Make().String()
	}
	return &Accumulator{messageID: messageID, opts: opts}
}

// MessageID returns the message ID used in block IDs.
func (a *Accumulator) MessageID() string {
	return a.messageID
}

// Append adds the next text delta to the buffer.
func (a *Accumulator) Append(delta string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.buf.WriteString(delta)
}

// Apply routes an event into the accumulator. Only text deltas mutate the
// buffer; everything else is ignored. Reports whether the buffer changed.
func (a *Accumulator) Apply(event Event) bool {
	if event.Type != EventTextDelta {
		return false
	}
	a.Append(event.Delta)
	return true
}

// Content returns the accumulated text so far.
func (a *Accumulator) Content() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buf.String()
}

// Blocks re-parses the full buffer and returns the current blocks.
func (a *Accumulator) Blocks() []blockify.Block {
	return blockify.UpdateBlocksFromContent(a.Content(), a.messageID, a.opts...)
}

// Result re-parses the full buffer and returns blocks plus citations.
func (a *Accumulator) Result() *blockify.ParseResult {
	return blockify.ParseMessageBlocks(a.Content(), a.messageID, a.opts...)
}

// Consume drains events into the accumulator until the channel closes, the
// context ends, or an error event arrives, then returns the final parse
// result. The partial result accumulated before a failure is returned
// alongside the error.
func (a *Accumulator) Consume(ctx context.Context, events <-chan Event) (*blockify.ParseResult, error) {
	for {
		select {
		case <-ctx.Done():
			return a.Result(), ctx.Err()
		case event, ok := <-events:
			if !ok {
				return a.Result(), nil
			}
			if event.Type == EventError {
				return a.Result(), fmt.Errorf("stream error: %s", event.Message)
			}
			a.Apply(event)
		}
	}
}
