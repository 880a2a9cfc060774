/*
Package png implements a minimal PNG encoder for 8-bit images.

Only the subset of the format needed for data visualization is supported:
truecolor (RGB, no alpha) images written one row at a time without buffering
the whole image, and 8-bit paletted images written in one call. Output is
always non-interlaced with a single tEXt metadata chunk carrying the image
title.
*/
package png

const (
	bitDepth = 8

	colorTypeRGB     = 2
	colorTypePalette = 3

	// Buffered compressed bytes are flushed as an IDAT chunk once they
	// exceed this size.
	idatFlushSize = 1 << 15

	maxPaletteColors = 256

	titleKeyword = "Title"
)

var signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
