package blockify

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

// TestBlockType_String checks the renderer-facing type tags.
func TestBlockType_String(t *testing.T) {
	tests := []struct {
		bt   BlockType
		want string
	}{
		{BlockTypeText, "text"},
		{BlockTypeTable, "table"},
		{BlockTypeCitation, "citation"},
		{BlockTypeChart, "chart"},
		{BlockTypeImage, "image"},
		{BlockType(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.bt.String(); got != tt.want {
			t.Errorf("BlockType(%d).String() = %q, want %q", tt.bt, got, tt.want)
		}
	}
}

// TestParseMessageBlocks_Idempotent checks that identical inputs produce
// deep-equal results across calls.
func TestParseMessageBlocks_Idempotent(t *testing.T) {
	content := "Intro with [Doc, p. 5](d.pdf)\n| A | B |\n|---|---|\n| 1 | 2 |\nOutro"

	first := ParseMessageBlocks(content, "m1")
	second := ParseMessageBlocks(content, "m1")

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parse differs:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

// TestUpdateBlocksFromContent checks the streaming wrapper against the full
// parse, including re-parses of a growing buffer.
func TestUpdateBlocksFromContent(t *testing.T) {
	content := "Intro\n| A |\n|---|\n| 1 |"

	blocks := UpdateBlocksFromContent(content, "m1")
	full := ParseMessageBlocks(content, "m1")
	if !reflect.DeepEqual(blocks, full.Blocks) {
		t.Errorf("UpdateBlocksFromContent diverges from ParseMessageBlocks")
	}

	// Simulate streaming: a partial table degrades, then firms up once the
	// remaining lines arrive.
	partial := UpdateBlocksFromContent("Intro\n| A |\n|---|", "m1")
	if len(partial) != 2 {
		t.Fatalf("partial parse returned %d blocks, want 2", len(partial))
	}
	if _, ok := partial[1].(*TextBlock); !ok {
		t.Errorf("partial[1] is %T, want *TextBlock (incomplete table degrades)", partial[1])
	}
	complete := UpdateBlocksFromContent(content, "m1")
	if len(complete) != 2 {
		t.Fatalf("complete parse returned %d blocks, want 2", len(complete))
	}
	if _, ok := complete[1].(*TableBlock); !ok {
		t.Errorf("complete[1] is %T, want *TableBlock", complete[1])
	}
}

// TestBlock_JSON checks the type discriminator every renderer dispatches on.
func TestBlock_JSON(t *testing.T) {
	tests := []struct {
		name  string
		block Block
		want  []string
	}{
		{
			"text",
			&TextBlock{ID: "m-text-0", Markdown: "hi"},
			[]string{`"type":"text"`, `"id":"m-text-0"`, `"markdown":"hi"`},
		},
		{
			"table",
			&TableBlock{
				ID:      "m-table-1",
				Columns: []string{"A"},
				Rows:    [][]string{{"1"}},
				Meta:    TableMeta{Title: "Data Table", Subtitle: "1 rows"},
			},
			[]string{`"type":"table"`, `"columns":["A"]`, `"rows":[["1"]]`, `"subtitle":"1 rows"`},
		},
		{
			"citation",
			&CitationBlock{ID: "m-citation-1", Title: "Doc", URL: "d.pdf", Page: 3, Index: 1},
			[]string{`"type":"citation"`, `"page":3`, `"index":1`},
		},
		{
			"citation without page",
			&CitationBlock{ID: "m-citation-1", Title: "Doc", URL: "d.pdf", Index: 1},
			[]string{`"type":"citation"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.block)
			if err != nil {
				t.Fatalf("Marshal() error: %v", err)
			}
			for _, want := range tt.want {
				if !strings.Contains(string(data), want) {
					t.Errorf("JSON %s missing %s", data, want)
				}
			}
		})
	}

	// Page 0 means "no page" and must not serialize.
	data, _ := json.Marshal(&CitationBlock{ID: "c", Title: "Doc", URL: "d.pdf", Index: 1})
	if strings.Contains(string(data), `"page"`) {
		t.Errorf("zero page serialized: %s", data)
	}
}

// TestParseResult_JSON checks that a whole result round-trips through the
// discriminated wire shape.
func TestParseResult_JSON(t *testing.T) {
	result := ParseMessageBlocks("Intro\n| A |\n|---|\n| 1 |\nSee [Doc](d.pdf).", "m1")

	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	var decoded struct {
		Blocks []struct {
			Type string `json:"type"`
			ID   string `json:"id"`
		} `json:"blocks"`
		Citations []struct {
			Type  string `json:"type"`
			Index int    `json:"index"`
		} `json:"citations"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if len(decoded.Blocks) != len(result.Blocks) {
		t.Fatalf("decoded %d blocks, want %d", len(decoded.Blocks), len(result.Blocks))
	}
	for i, b := range decoded.Blocks {
		if b.Type != result.Blocks[i].GetBlockType().String() {
			t.Errorf("blocks[%d].type = %q, want %q", i, b.Type, result.Blocks[i].GetBlockType().String())
		}
		if b.ID != result.Blocks[i].GetBlockID() {
			t.Errorf("blocks[%d].id = %q, want %q", i, b.ID, result.Blocks[i].GetBlockID())
		}
	}
	for i, c := range decoded.Citations {
		if c.Type != "citation" {
			t.Errorf("citations[%d].type = %q, want citation", i, c.Type)
		}
	}
}

// TestParseMessageBlocks_OrderPreservation walks a compound document and
// checks every non-blank line landed in a block in original order.
func TestParseMessageBlocks_OrderPreservation(t *testing.T) {
	content := "First paragraph.\nSecond line.\n\n| A | B |\n|---|---|\n| 1 | 2 |\n\nClosing paragraph.\n| broken |\ntail"
	result := ParseMessageBlocks(content, "m1")

	// Flatten the emitted blocks back into a searchable stream.
	var flat strings.Builder
	for _, block := range result.Blocks {
		switch b := block.(type) {
		case *TextBlock:
			flat.WriteString(b.Markdown)
			flat.WriteByte('\n')
		case *TableBlock:
			flat.WriteString(strings.Join(b.Columns, " "))
			flat.WriteByte('\n')
			for _, row := range b.Rows {
				flat.WriteString(strings.Join(row, " "))
				flat.WriteByte('\n')
			}
		}
	}
	stream := flat.String()

	cursor := 0
	for _, probe := range []string{"First paragraph.", "Second line.", "A B", "1 2", "Closing paragraph.", "| broken |", "tail"} {
		idx := strings.Index(stream[cursor:], probe)
		if idx < 0 {
			t.Fatalf("probe %q not found after offset %d in %q", probe, cursor, stream)
		}
		cursor += idx + len(probe)
	}
}
