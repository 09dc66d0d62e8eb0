package types

// RenderConfig controls the presentational defaults baked into parsed blocks.
type RenderConfig struct {
	// TableTitle is the meta title assigned to every parsed table block.
	TableTitle string
	// CitationFallbackTitle is used when a citation link's text carries no
	// usable title (e.g. the text is nothing but a page reference).
	CitationFallbackTitle string
}

// DefaultRenderConfig returns the default render configuration.
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		TableTitle:            "Data Table",
		CitationFallbackTitle: "Document",
	}
}
