// Package icons holds the site's vector glyphs and their catalog.
//
// Glyph geometry is defined as literal path data so rendering is a pure
// lookup: no inputs, no I/O, and byte-identical output on every call.
package icons
