// Package static embeds the site's stylesheet assets for HTTP serving.
package static

import "embed"

// FS exposes site static assets.
//
//go:embed *.css
var FS embed.FS
