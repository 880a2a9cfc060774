package palette

// Hues maps each byte onto three contiguous hue ramps: low values ramp
// through red, middle values through green, high values through blue. The
// three bands tile the value space without wrapping, so averaging adjacent
// bytes under zoom stays within sensible colors.
type Hues struct{}

func (Hues) BytesPerPixel() int { return 1 }

func (Hues) Map(unit []byte, _ byte) Pixel {
	v := int(unit[0]) * 3
	switch {
	case v < 256:
		return Pixel{uint8(v), 0, 0}
	case v < 512:
		return Pixel{0, uint8(v % 256), 0}
	default:
		return Pixel{0, 0, uint8(v % 256)}
	}
}

// Hues6 maps each byte onto six hue ramps: red, green, blue, cyan, magenta,
// yellow. Adjacent bands are not perceptually continuous, so this palette is
// not safe under zoom averaging; bytes straddling a band boundary average to
// misleading colors. This is a documented property of the palette, kept for
// its distinctive visual signature.
type Hues6 struct{}

func (Hues6) BytesPerPixel() int { return 1 }

func (Hues6) Map(unit []byte, _ byte) Pixel {
	v := int(unit[0]) * 6
	m := uint8(v % 256)
	switch {
	case v < 256:
		return Pixel{m, 0, 0}
	case v < 256*2:
		return Pixel{0, m, 0}
	case v < 256*3:
		return Pixel{0, 0, m}
	case v < 256*4:
		return Pixel{0, m, m}
	case v < 256*5:
		return Pixel{m, 0, m}
	default:
		return Pixel{m, m, 0}
	}
}

// FullHues maps each byte onto six bands that ramp red, white-tinted red,
// green, white-tinted green, blue, white-tinted blue. Values within a band
// vary smoothly, so the palette remains well behaved under zoom averaging
// despite using all six bands.
type FullHues struct{}

func (FullHues) BytesPerPixel() int { return 1 }

func (FullHues) Map(unit []byte, _ byte) Pixel {
	v := int(unit[0]) * 6
	m := uint8(v % 256)
	switch {
	case v < 256:
		return Pixel{m, 0, 0}
	case v < 256*2:
		return Pixel{255, m, m}
	case v < 256*3:
		return Pixel{0, m, 0}
	case v < 256*4:
		return Pixel{m, 255, m}
	case v < 256*5:
		return Pixel{0, 0, m}
	default:
		return Pixel{m, m, 255}
	}
}
