package icons

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// RelayFill is the single fill color of the relay glyph.
const RelayFill = "#E6DAFE"

const relayViewBox = "0 0 48 48"

// relayPathData traces three diagonal link segments with rounded ends,
// suggesting a request being handed from node to node. One closed outline,
// three subpaths.
const relayPathData = "M8.12 20.12L20.12 8.12C21.29 6.95 21.29 5.05 20.12 3.88C18.95 2.71 17.05 2.71 15.88 3.88L3.88 15.88C2.71 17.05 2.71 18.95 3.88 20.12C5.05 21.29 6.95 21.29 8.12 20.12Z" +
	"M20.12 32.12L32.12 20.12C33.29 18.95 33.29 17.05 32.12 15.88C30.95 14.71 29.05 14.71 27.88 15.88L15.88 27.88C14.71 29.05 14.71 30.95 15.88 32.12C17.05 33.29 18.95 33.29 20.12 32.12Z" +
	"M32.12 44.12L44.12 32.12C45.29 30.95 45.29 29.05 44.12 27.88C42.95 26.71 41.05 26.71 39.88 27.88L27.88 39.88C26.71 41.05 26.71 42.95 27.88 44.12C29.05 45.29 30.95 45.29 32.12 44.12Z"

const relaySVG = `<svg xmlns="http://www.w3.org/2000/svg" width="48" height="48" viewBox="` + relayViewBox + `"><path d="` + relayPathData + `" fill="` + RelayFill + `"></path></svg>`

// RelaySVG returns the relay glyph as literal SVG markup.
//
// The markup is a constant: a 48x48 viewport with exactly one filled path
// and no stroke. Repeated calls return byte-identical output.
func RelaySVG() string {
	return relaySVG
}

// Relay returns the relay glyph as a component for page composition.
func Relay() templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, relaySVG)
		return err
	})
}
