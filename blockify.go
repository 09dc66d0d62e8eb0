// Package blockify turns raw assistant replies (markdown-ish text) into an
// ordered sequence of typed, renderable content blocks.
//
// The package sits between a streaming LLM backend and a chat UI: the backend
// produces a growing markdown buffer, the UI needs discrete blocks (text,
// table, citation) it can dispatch on. blockify does the segmentation and
// extraction; rendering is the caller's concern.
//
// Core functionality:
//   - Split a message into text and table blocks, preserving reading order
//   - Parse GFM-style pipe tables into columns/rows, degrading malformed
//     tables back to plain text instead of failing
//   - Extract PDF citations (title, url, page, snippet) from markdown links
//   - Re-derive blocks from a growing streaming buffer (see the stream
//     subpackage)
//
// Main API:
//   - ParseMessageBlocks(): full parse, returns blocks + citations
//   - UpdateBlocksFromContent(): re-parse helper for streaming callers
//   - ExtractCitations(): citation extraction only
//
// Example:
//
//	result := blockify.ParseMessageBlocks(reply, messageID)
//	for _, block := range result.Blocks {
//	    switch b := block.(type) {
//	    case *blockify.TextBlock:
//	        // render markdown
//	    case *blockify.TableBlock:
//	        // render data table
//	    }
//	}
//	for _, c := range result.Citations {
//	    // render citation chips
//	}
//
// Every entry point is a pure function over its inputs: no shared state, no
// errors raised, identical input yields identical output. Malformed input
// degrades to less-structured blocks rather than failing.
package blockify

// ParseMessageBlocks parses one message's full text into typed content blocks
// and extracts its PDF citations.
//
// Citations are extracted from the untouched content before segmentation, so
// a link that becomes a CitationBlock still appears verbatim inside whatever
// TextBlock contains it; renderers decide how to reconcile the two.
//
// Whitespace-only content yields an empty result. Any other content yields at
// least one block: if segmentation produces nothing, a single fallback
// TextBlock carrying the full original content is emitted.
func ParseMessageBlocks(content, messageID string, opts ...Option) *ParseResult {
	return parseMessage(content, messageID, applyOptions(opts...))
}

// UpdateBlocksFromContent re-parses the complete accumulated text of a
// streaming message and returns only the blocks.
//
// There is no incremental state: every call is a full re-derivation from the
// whole buffer, so calling it once per streamed chunk is idempotent and safe.
// Callers that also need citations should use ParseMessageBlocks.
func UpdateBlocksFromContent(content, messageID string, opts ...Option) []Block {
	return ParseMessageBlocks(content, messageID, opts...).Blocks
}

// ExtractCitations scans text for markdown links pointing to PDF documents
// and returns them as citation blocks in match order.
//
// Only links whose URL contains ".pdf" (case-insensitive) are citations;
// everything else is ignored. Matched links are not removed from the text.
// Zero matches is a valid outcome and returns an empty slice.
func ExtractCitations(text, messageID string, opts ...Option) []*CitationBlock {
	return extractCitations(text, messageID, applyOptions(opts...))
}
