package blockify

import "encoding/json"

// BlockType represents the kind of a content block.
type BlockType int

const (
	// BlockTypeText represents a markdown text block.
	BlockTypeText BlockType = iota
	// BlockTypeTable represents a parsed data table.
	BlockTypeTable
	// BlockTypeCitation represents a citation reference.
	BlockTypeCitation
	// BlockTypeChart represents a chart widget. Chart blocks are produced by
	// collaborators (e.g. a query layer), never by this parser; the tag exists
	// so renderers can dispatch over the full block union.
	BlockTypeChart
	// BlockTypeImage represents an image. Like charts, image blocks come from
	// collaborators only.
	BlockTypeImage
)

// String returns the string representation of BlockType.
func (bt BlockType) String() string {
	switch bt {
	case BlockTypeText:
		return "text"
	case BlockTypeTable:
		return "table"
	case BlockTypeCitation:
		return "citation"
	case BlockTypeChart:
		return "chart"
	case BlockTypeImage:
		return "image"
	default:
		return "unknown"
	}
}

// Block represents one unit of renderable content extracted from a message.
type Block interface {
	GetBlockType() BlockType
	GetBlockID() string
}

// ParseResult is the output of a full message parse. Blocks preserves the
// top-to-bottom reading order of the source text; Citations preserves
// first-occurrence order of matched links, independent of block boundaries.
type ParseResult struct {
	Blocks    []Block          `json:"blocks"`
	Citations []*CitationBlock `json:"citations"`
}

// TextBlock is a run of markdown text.
type TextBlock struct {
	ID       string `json:"id"`
	Markdown string `json:"markdown"`
}

// GetBlockType returns BlockTypeText.
func (b *TextBlock) GetBlockType() BlockType {
	return BlockTypeText
}

// GetBlockID returns the block ID.
func (b *TextBlock) GetBlockID() string {
	return b.ID
}

// TableMeta carries display metadata for a table block.
type TableMeta struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// TableBlock is a parsed pipe table. Every row has exactly len(Columns) cells.
type TableBlock struct {
	ID      string     `json:"id"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Meta    TableMeta  `json:"meta"`
}

// GetBlockType returns BlockTypeTable.
func (b *TableBlock) GetBlockType() BlockType {
	return BlockTypeTable
}

// GetBlockID returns the block ID.
func (b *TableBlock) GetBlockID() string {
	return b.ID
}

// CitationBlock is a structured reference to a source document, extracted
// from a markdown link pointing to a PDF.
//
// Index is a 1-based footnote counter assigned in match order; it is strictly
// increasing and gap-free within one extraction. Page is 0 when no page
// number could be determined. Snippet is the markdown-stripped line of text
// surrounding the link, or empty when snippet extraction is disabled.
type CitationBlock struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Page    int    `json:"page,omitempty"`
	Snippet string `json:"snippet,omitempty"`
	Index   int    `json:"index"`
}

// GetBlockType returns BlockTypeCitation.
func (b *CitationBlock) GetBlockType() BlockType {
	return BlockTypeCitation
}

// GetBlockID returns the block ID.
func (b *CitationBlock) GetBlockID() string {
	return b.ID
}

// MarshalJSON adds the "type" discriminator renderers dispatch on.
func (b *TextBlock) MarshalJSON() ([]byte, error) {
	type alias TextBlock
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{b.GetBlockType().String(), (*alias)(b)})
}

// MarshalJSON adds the "type" discriminator renderers dispatch on.
func (b *TableBlock) MarshalJSON() ([]byte, error) {
	type alias TableBlock
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{b.GetBlockType().String(), (*alias)(b)})
}

// MarshalJSON adds the "type" discriminator renderers dispatch on.
func (b *CitationBlock) MarshalJSON() ([]byte, error) {
	type alias CitationBlock
	return json.Marshal(struct {
		Type string `json:"type"`
		*alias
	}{b.GetBlockType().String(), (*alias)(b)})
}
