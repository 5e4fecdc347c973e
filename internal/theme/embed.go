// Package theme provides the glyphs and colours used to draw the board.
package theme

import "embed"

// dataFS embeds the built-in theme files at build time.
//
//go:embed *.json
var dataFS embed.FS
