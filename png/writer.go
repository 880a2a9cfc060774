package png

import (
	"bytes"
	"encoding/binary"
	"errors"
	"hash/crc32"
	"image"
	"io"

	"github.com/klauspost/compress/zlib"
)

var (
	errBadSize    = errors.New("png: width and height must be positive")
	errRowLength  = errors.New("png: wrong row length")
	errRowCount   = errors.New("png: wrong number of rows")
	errBigPalette = errors.New("png: palette has more than 256 colors")
)

// Encoder streams a truecolor image to w row by row. Rows are compressed as
// they arrive so only a bounded amount of the image is held in memory.
type Encoder struct {
	w      io.Writer
	width  int
	height int
	rows   int

	zw  *zlib.Writer
	buf bytes.Buffer
}

// NewEncoder writes the image header for a width by height truecolor image
// to w, with title embedded as tEXt metadata, and returns an Encoder ready
// to accept rows.
func NewEncoder(w io.Writer, width, height int, title string) (*Encoder, error) {
	if width <= 0 || height <= 0 {
		return nil, errBadSize
	}

	e := &Encoder{
		w:      w,
		width:  width,
		height: height,
	}
	e.zw = zlib.NewWriter(&e.buf)

	if _, err := w.Write(signature); err != nil {
		return nil, err
	}
	if err := e.writeHeader(colorTypeRGB); err != nil {
		return nil, err
	}
	if err := e.writeTitle(title); err != nil {
		return nil, err
	}

	return e, nil
}

// WriteRow appends one row of width RGB pixels, packed as three bytes per
// pixel.
func (e *Encoder) WriteRow(row []byte) error {
	if len(row) != e.width*3 {
		return errRowLength
	}
	if e.rows >= e.height {
		return errRowCount
	}
	e.rows++

	// Filter type None precedes every scanline.
	if _, err := e.zw.Write([]byte{0}); err != nil {
		return err
	}
	if _, err := e.zw.Write(row); err != nil {
		return err
	}

	if e.buf.Len() >= idatFlushSize {
		return e.flushData()
	}
	return nil
}

// Close flushes any remaining compressed data and writes the image trailer.
// The Encoder cannot be used afterwards.
func (e *Encoder) Close() error {
	if e.rows != e.height {
		return errRowCount
	}
	if err := e.zw.Close(); err != nil {
		return err
	}
	if err := e.flushData(); err != nil {
		return err
	}
	return e.writeChunk("IEND", nil)
}

func (e *Encoder) writeHeader(colorType byte) error {
	var ihdr [13]byte
	binary.BigEndian.PutUint32(ihdr[0:4], uint32(e.width))
	binary.BigEndian.PutUint32(ihdr[4:8], uint32(e.height))
	ihdr[8] = bitDepth
	ihdr[9] = colorType
	// Compression, filter and interlace methods are all zero.
	return e.writeChunk("IHDR", ihdr[:])
}

func (e *Encoder) writeTitle(title string) error {
	if title == "" {
		return nil
	}
	data := make([]byte, 0, len(titleKeyword)+1+len(title))
	data = append(data, titleKeyword...)
	data = append(data, 0)
	data = append(data, title...)
	return e.writeChunk("tEXt", data)
}

func (e *Encoder) flushData() error {
	if e.buf.Len() == 0 {
		return nil
	}
	err := e.writeChunk("IDAT", e.buf.Bytes())
	e.buf.Reset()
	return err
}

func (e *Encoder) writeChunk(typ string, data []byte) error {
	var tmp [8]byte
	binary.BigEndian.PutUint32(tmp[0:4], uint32(len(data)))
	copy(tmp[4:8], typ)
	if _, err := e.w.Write(tmp[:]); err != nil {
		return err
	}
	if _, err := e.w.Write(data); err != nil {
		return err
	}

	crc := crc32.NewIEEE()
	crc.Write(tmp[4:8])
	crc.Write(data)
	binary.BigEndian.PutUint32(tmp[0:4], crc.Sum32())
	_, err := e.w.Write(tmp[0:4])
	return err
}

// EncodePaletted writes m to w as an 8-bit paletted image with title
// embedded as tEXt metadata.
func EncodePaletted(w io.Writer, m *image.Paletted, title string) error {
	if len(m.Palette) > maxPaletteColors {
		return errBigPalette
	}

	b := m.Bounds()
	e := &Encoder{
		w:      w,
		width:  b.Dx(),
		height: b.Dy(),
	}
	if e.width <= 0 || e.height <= 0 {
		return errBadSize
	}
	e.zw = zlib.NewWriter(&e.buf)

	if _, err := w.Write(signature); err != nil {
		return err
	}
	if err := e.writeHeader(colorTypePalette); err != nil {
		return err
	}
	if err := e.writeTitle(title); err != nil {
		return err
	}

	plte := make([]byte, 0, len(m.Palette)*3)
	for _, c := range m.Palette {
		r, g, bl, _ := c.RGBA()
		plte = append(plte, byte(r>>8), byte(g>>8), byte(bl>>8))
	}
	if err := e.writeChunk("PLTE", plte); err != nil {
		return err
	}

	for y := 0; y < e.height; y++ {
		if _, err := e.zw.Write([]byte{0}); err != nil {
			return err
		}
		row := m.Pix[y*m.Stride : y*m.Stride+e.width]
		if _, err := e.zw.Write(row); err != nil {
			return err
		}
	}
	if err := e.zw.Close(); err != nil {
		return err
	}
	if err := e.flushData(); err != nil {
		return err
	}
	return e.writeChunk("IEND", nil)
}
