// Package content holds the documentation corpus served by the site.
//
// Pages are authored as MDX and embedded as-is; this package owns the page
// catalog (slug, title, chain, summary) and raw source access, not rendering.
package content
