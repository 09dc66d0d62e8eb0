package blockify

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/alexjfall/blockify-go/internal/plaintext"
)

var (
	// Markdown links whose URL contains ".pdf", optionally followed by more
	// path/query characters. Leftmost non-overlapping matches only.
	pdfLinkPattern = regexp.MustCompile(`(?i)\[([^\]]*)\]\(([^)\s]*\.pdf[^)\s]*)\)`)

	// Page references inside link text: "p. 42", "p42", "page 42".
	pageRefPattern = regexp.MustCompile(`(?i)\b(?:p\.?\s*|page\s+)(\d+)`)

	// Page number carried as a URL query parameter.
	urlPagePattern = regexp.MustCompile(`(?i)[?&]page=(\d+)`)

	// A trailing comma-prefixed page fragment to strip off a title.
	pageSuffixPattern = regexp.MustCompile(`(?i),\s*(?:p\.?\s*|page\s+)\d+\s*$`)

	// Link text that is nothing but a page reference.
	pageOnlyPattern = regexp.MustCompile(`(?i)^\s*(?:p\.?\s*|page\s+)\d+\s*$`)
)

func extractCitations(text, messageID string, opts *ParseOptions) []*CitationBlock {
	matches := pdfLinkPattern.FindAllStringSubmatchIndex(text, -1)
	citations := make([]*CitationBlock, 0, len(matches))

	for i, m := range matches {
		linkText := text[m[2]:m[3]]
		url := text[m[4]:m[5]]
		index := i + 1

		citation := &CitationBlock{
			ID:    fmt.Sprintf("%s-citation-%d", messageID, index),
			Title: citationTitle(linkText, opts.Config.CitationFallbackTitle),
			URL:   url,
			Page:  citationPage(linkText, url),
			Index: index,
		}
		if opts.CitationSnippets {
			citation.Snippet = lineSnippet(text, m[0])
		}
		citations = append(citations, citation)
	}

	return citations
}

// citationPage pulls a page number out of the link text, falling back to a
// page= query parameter in the URL. Returns 0 when neither carries one.
func citationPage(linkText, url string) int {
	if m := pageRefPattern.FindStringSubmatch(linkText); m != nil {
		page, _ := strconv.Atoi(m[1])
		return page
	}
	if m := urlPagePattern.FindStringSubmatch(url); m != nil {
		page, _ := strconv.Atoi(m[1])
		return page
	}
	return 0
}

// citationTitle derives a document title from link text by stripping any
// trailing page fragment. Text that is entirely a page reference (e.g.
// "p. 3") has no title and gets the fallback.
func citationTitle(linkText, fallback string) string {
	title := strings.TrimSpace(pageSuffixPattern.ReplaceAllString(linkText, ""))
	if title == "" || pageOnlyPattern.MatchString(title) {
		return fallback
	}
	return title
}

// lineSnippet extracts the line of text containing byte offset pos, stripped
// of markdown formatting.
func lineSnippet(text string, pos int) string {
	start := strings.LastIndexByte(text[:pos], '\n') + 1
	end := strings.IndexByte(text[pos:], '\n')
	if end < 0 {
		end = len(text)
	} else {
		end += pos
	}
	return plaintext.Render(text[start:end])
}
