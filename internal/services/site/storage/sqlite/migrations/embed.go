// Package migrations embeds the feedback store schema.
package migrations

import "embed"

// FS exposes the SQL migrations for the feedback store.
//
//go:embed *.sql
var FS embed.FS
