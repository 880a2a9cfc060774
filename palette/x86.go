package palette

// X86 highlights bytes that commonly appear in x86 machine code and text.
// Three indicator sets light up one channel each: red for frequent x86
// opcodes (movl, call, testl), green for common English letters and blue for
// small binary integers. Anything else falls back to plain grayscale so the
// image is never black for unremarkable data.
type X86 struct{}

func (X86) BytesPerPixel() int { return 1 }

func (X86) Map(unit []byte, _ byte) Pixel {
	b := unit[0]
	p := Pixel{
		R: opcodeValue(b),
		G: englishValue(b),
		B: binaryValue(b),
	}
	if p.R == 0 && p.G == 0 && p.B == 0 {
		return Pixel{b, b, b}
	}
	return p
}

func opcodeValue(b byte) uint8 {
	switch b {
	case 0x8b: // movl
		return 0xff
	case 0xe8: // call
		return 0xcf
	case 0x85: // testl
		return 0xaf
	}
	return 0
}

func englishValue(b byte) uint8 {
	switch b {
	case 'e':
		return 0xff
	case 't':
		return 0xcf
	case 'a':
		return 0xaf
	}
	return 0
}

func binaryValue(b byte) uint8 {
	switch b {
	case 0x01:
		return 0xff
	case 0x02:
		return 0xcf
	case 0x03:
		return 0xaf
	}
	return 0
}
