package blockify

import (
	"fmt"
	"strings"
)

// parseMessage runs the full parse: citations first over the untouched
// content, then line-by-line segmentation into text and table blocks.
//
// The segmenter is a two-state machine: it accumulates text lines until it
// hits a table line, flushes the pending text, accumulates table lines until
// a non-table line appears, then flushes the table and resumes text
// accumulation. Table buffers that fail to parse degrade back into the text
// accumulation, so no line is ever dropped.
func parseMessage(content, messageID string, opts *ParseOptions) *ParseResult {
	result := &ParseResult{
		Blocks:    []Block{},
		Citations: []*CitationBlock{},
	}
	if strings.TrimSpace(content) == "" {
		return result
	}

	result.Citations = extractCitations(content, messageID, opts)

	var (
		textBuf      []string
		tableBuf     []string
		inTable      bool
		blockCounter int
	)

	flushText := func() {
		markdown := strings.TrimSpace(strings.Join(textBuf, "\n"))
		textBuf = nil
		if markdown == "" {
			return
		}
		result.Blocks = append(result.Blocks, &TextBlock{
			ID:       fmt.Sprintf("%s-text-%d", messageID, blockCounter),
			Markdown: markdown,
		})
		blockCounter++
	}

	flushTable := func() {
		lines := tableBuf
		tableBuf = nil
		if len(lines) == 0 {
			return
		}
		var table *TableBlock
		if len(lines) >= 2 {
			table = safeParseTable(lines, fmt.Sprintf("%s-table-%d", messageID, blockCounter), opts.Config)
		}
		if table == nil {
			// Degrade-to-text recovery: the candidate lines rejoin the text
			// accumulation verbatim.
			textBuf = append(textBuf, lines...)
			return
		}
		result.Blocks = append(result.Blocks, table)
		blockCounter++
	}

	for _, line := range strings.Split(content, "\n") {
		if isTableLine(line) {
			if !inTable {
				flushText()
				inTable = true
			}
			tableBuf = append(tableBuf, line)
			continue
		}
		if inTable {
			flushTable()
			inTable = false
		}
		textBuf = append(textBuf, line)
	}

	flushTable()
	flushText()

	if len(result.Blocks) == 0 {
		// Segmentation produced nothing from non-empty input; fall back to a
		// single text block carrying the full original content.
		result.Blocks = append(result.Blocks, &TextBlock{
			ID:       fmt.Sprintf("%s-text-0", messageID),
			Markdown: content,
		})
	}

	return result
}

// isTableLine reports whether a line belongs to a pipe table: its trimmed
// form starts and ends with "|".
func isTableLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// safeParseTable wraps parseMarkdownTable with panic recovery. A fault while
// parsing a candidate table must never escape to the caller; the buffered
// lines degrade to text instead.
func safeParseTable(lines []string, blockID string, config *RenderConfig) (table *TableBlock) {
	defer func() {
		if r := recover(); r != nil {
			Logger.Printf("table parse failed, degrading to text: %v", r)
			table = nil
		}
	}()
	return parseMarkdownTable(lines, blockID, config)
}

// parseMarkdownTable parses buffered table lines into a TableBlock.
//
// The first line is the header, the second is the separator (consumed without
// validating its dashes), everything after is data. Data rows are kept only
// when their cell count matches the header exactly; mismatched rows are
// silently dropped. Returns nil when no valid table can be produced, in which
// case the caller degrades the lines to text.
func parseMarkdownTable(lines []string, blockID string, config *RenderConfig) *TableBlock {
	if len(lines) < 2 {
		return nil
	}

	columns := splitHeaderRow(lines[0])
	if len(columns) == 0 {
		return nil
	}

	var rows [][]string
	for _, line := range lines[2:] {
		cells := splitDataRow(line)
		if len(cells) == len(columns) {
			rows = append(rows, cells)
		}
	}
	if len(rows) == 0 {
		return nil
	}

	return &TableBlock{
		ID:      blockID,
		Columns: columns,
		Rows:    rows,
		Meta: TableMeta{
			Title:    config.TableTitle,
			Subtitle: fmt.Sprintf("%d rows", len(rows)),
		},
	}
}

// splitHeaderRow splits a header line into trimmed, non-empty column names.
func splitHeaderRow(line string) []string {
	segments := splitPipeRow(line)
	columns := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			columns = append(columns, s)
		}
	}
	return columns
}

// splitDataRow splits a data line into trimmed cells, empty cells included.
func splitDataRow(line string) []string {
	return splitPipeRow(line)
}

// splitPipeRow splits on "|", dropping the first and last segments (artifacts
// of the leading and trailing pipe) and trimming the rest.
func splitPipeRow(line string) []string {
	parts := strings.Split(line, "|")
	if len(parts) <= 2 {
		return nil
	}
	parts = parts[1 : len(parts)-1]
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
