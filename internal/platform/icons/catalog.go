package icons

import "strings"

// ID identifies a site glyph.
type ID string

// IDRelay is the relay/handoff mark shown on documentation pages.
const IDRelay ID = "relay"

// Definition describes a site glyph entry.
type Definition struct {
	ID          ID
	Name        string
	Description string
}

var catalog = []Definition{
	{
		ID:          IDRelay,
		Name:        "Relay",
		Description: "Three diagonal link segments suggesting request forwarding.",
	},
}

// Catalog returns a copy of the glyph catalog definitions.
func Catalog() []Definition {
	result := make([]Definition, len(catalog))
	copy(result, catalog)
	return result
}

// SVG returns the markup for a glyph when the ID is known.
func SVG(id ID) (string, bool) {
	if id == IDRelay {
		return relaySVG, true
	}
	return "", false
}

// CatalogMarkdown renders the glyph catalog as markdown.
func CatalogMarkdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("Generated by `go run ./internal/tools/icondocgen`.\n\n")
	builder.WriteString("| ID | Name | Description |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, def := range catalog {
		builder.WriteString("| ")
		builder.WriteString(string(def.ID))
		builder.WriteString(" | ")
		builder.WriteString(def.Name)
		builder.WriteString(" | ")
		builder.WriteString(def.Description)
		builder.WriteString(" |\n")
	}
	return builder.String()
}
