// Package site hosts the documentation website: the page catalog, the raw
// MDX sources, the relay glyph asset, and the page-feedback endpoints.
package site
