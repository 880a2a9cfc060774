package palette

// RGB consumes three sequential bytes directly as the red, green and blue
// channels. Useful when the input is already packed RGB data.
type RGB struct{}

func (RGB) BytesPerPixel() int { return 3 }

func (RGB) Map(unit []byte, _ byte) Pixel {
	return Pixel{unit[0], unit[1], unit[2]}
}
