/*
Package palette implements the byte-to-color mapping schemes used to
visualize binary data.

Each palette consumes a fixed number of raw input bytes per sample, between
one and four, and maps them to a single 8-bit RGB pixel. The mapping is
deterministic; the only state crossing sample boundaries is the previous
input byte, which is threaded through every Map call by the caller for the
benefit of the differential palette and ignored by all others.
*/
package palette

import "fmt"

// Pixel is one 8-bit per channel RGB color sample.
type Pixel struct {
	R, G, B uint8
}

// A Palette maps raw input bytes to pixel colors. BytesPerPixel reports how
// many bytes one sample consumes; Map is always called with a slice of
// exactly that length. last is the first byte of the previously consumed
// sample, or zero at the start of a run.
type Palette interface {
	BytesPerPixel() int
	Map(unit []byte, last byte) Pixel
}

// Names lists every palette name accepted by New, in the order they are
// documented.
func Names() []string {
	return []string{
		"gray", "gray16b", "gray16l", "gray32b", "gray32l",
		"hues", "hues6", "fhues",
		"color", "color16", "color32",
		"rgb", "dvi", "x86",
	}
}

// New returns the palette registered under the given name.
func New(name string) (Palette, error) {
	switch name {
	case "gray":
		return Gray{}, nil
	case "gray16b":
		return Gray16{}, nil
	case "gray16l":
		return Gray16{Little: true}, nil
	case "gray32b":
		return Gray32{}, nil
	case "gray32l":
		return Gray32{Little: true}, nil
	case "hues":
		return Hues{}, nil
	case "hues6":
		return Hues6{}, nil
	case "fhues":
		return FullHues{}, nil
	case "color":
		return Color{}, nil
	case "color16":
		return Color16{}, nil
	case "color32":
		return Color32{}, nil
	case "rgb":
		return RGB{}, nil
	case "dvi":
		return DVI{}, nil
	case "x86":
		return X86{}, nil
	}
	return nil, fmt.Errorf("palette: unknown palette %q", name)
}
