package palette

// Gray maps each byte to its grayscale intensity.
type Gray struct{}

func (Gray) BytesPerPixel() int { return 1 }

func (Gray) Map(unit []byte, _ byte) Pixel {
	v := unit[0]
	return Pixel{v, v, v}
}

// Gray16 maps each 16-bit word to the grayscale intensity of its most
// significant byte. The other byte is consumed and discarded.
type Gray16 struct {
	// Little selects little-endian word order.
	Little bool
}

func (Gray16) BytesPerPixel() int { return 2 }

func (p Gray16) Map(unit []byte, _ byte) Pixel {
	v := unit[0]
	if p.Little {
		v = unit[1]
	}
	return Pixel{v, v, v}
}

// Gray32 maps each 32-bit word to the grayscale intensity of its most
// significant byte. The other three bytes are consumed and discarded.
type Gray32 struct {
	// Little selects little-endian word order.
	Little bool
}

func (Gray32) BytesPerPixel() int { return 4 }

func (p Gray32) Map(unit []byte, _ byte) Pixel {
	v := unit[0]
	if p.Little {
		v = unit[3]
	}
	return Pixel{v, v, v}
}
