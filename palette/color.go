package palette

// Color slices each byte into bit fields by position: the top three bits
// become red, the next three green and the bottom two blue, each shifted
// into the high bits of its channel. The color follows bit layout rather
// than numeric magnitude.
type Color struct{}

func (Color) BytesPerPixel() int { return 1 }

func (Color) Map(unit []byte, _ byte) Pixel {
	b := unit[0]
	return Pixel{
		b & 0xe0,
		(b & 0x1c) << 3,
		(b & 0x03) << 6,
	}
}

// Color16 applies the same bit slicing to a little-endian 16-bit word,
// extracting 6/4/5-bit fields for red, green and blue.
type Color16 struct{}

func (Color16) BytesPerPixel() int { return 2 }

func (Color16) Map(unit []byte, _ byte) Pixel {
	v := uint16(unit[0]) | uint16(unit[1])<<8
	return Pixel{
		uint8((v & 0xfc00) >> 8),
		uint8((v & 0x03c0) >> 2),
		uint8((v & 0x001f) << 3),
	}
}

// Color32 applies bit slicing to a little-endian 32-bit word, extracting an
// 8-bit field per channel with gaps between the fields.
type Color32 struct{}

func (Color32) BytesPerPixel() int { return 4 }

func (Color32) Map(unit []byte, _ byte) Pixel {
	v := uint32(unit[0]) | uint32(unit[1])<<8 | uint32(unit[2])<<16 | uint32(unit[3])<<24
	return Pixel{
		uint8((v & 0xff000000) >> 24),
		uint8((v & 0x001fe000) >> 13),
		uint8((v & 0x000001fe) >> 1),
	}
}
