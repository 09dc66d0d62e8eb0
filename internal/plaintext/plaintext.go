// Package plaintext reduces markdown to its visible text by walking the
// goldmark AST and collecting text nodes, discarding all formatting.
package plaintext

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// StandardOptions mirrors the extension set used for assistant output
// elsewhere: GFM covers tables, strikethrough and autolinks.
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
}

// Render returns the visible text of the given markdown with runs of
// whitespace collapsed to single spaces. Formatting marks, link URLs and
// heading markers are dropped; link text, code content and table cells are
// kept.
func Render(markdown string) string {
	md := goldmark.New(StandardOptions...)

	source := []byte(markdown)
	reader := text.NewReader(source)
	node := md.Parser().Parse(reader)

	var sb strings.Builder
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			if n.Type() == ast.TypeBlock {
				sb.WriteByte('\n')
			}
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(t.Value)
		case *ast.AutoLink:
			sb.Write(t.URL(source))
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock:
			writeRawLines(&sb, source, t)
		case *ast.CodeBlock:
			writeRawLines(&sb, source, t)
		}
		return ast.WalkContinue, nil
	})

	return strings.Join(strings.Fields(sb.String()), " ")
}

// writeRawLines copies a raw block's source lines into the builder.
func writeRawLines(sb *strings.Builder, source []byte, n ast.Node) {
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
}
