package palette

// DVI conveys differential, value and integral per byte: red is the absolute
// difference from the previous byte, green is the byte itself, and blue is
// the average of the two. The previous byte is supplied by the caller and is
// zero at the start of a run.
type DVI struct{}

func (DVI) BytesPerPixel() int { return 1 }

func (DVI) Map(unit []byte, last byte) Pixel {
	cur := unit[0]
	d := int(cur) - int(last)
	if d < 0 {
		d = -d
	}
	return Pixel{
		uint8(d),
		cur,
		uint8((int(cur) + int(last)) / 2),
	}
}
