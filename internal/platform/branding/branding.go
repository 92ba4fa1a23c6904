// Package branding centralizes product naming used across surfaces.
package branding

// AppName is the public product name shown in page titles and layouts.
const AppName = "OracleDocs"
