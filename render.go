package dump2png

import (
	"io"

	"github.com/bodgit/dump2png/palette"
	"github.com/bodgit/dump2png/png"
)

// byteMask clears the least significant channel bit so the image cannot be
// losslessly reversed into the input bytes.
const byteMask = 0xfe

// Render reads raw bytes from in and writes the finished image to out. The
// input is consumed in a single sequential pass; running out of input is not
// an error, the remainder of the image is simply black.
func (r *Renderer) Render(in io.Reader, out io.Writer) error {
	if r.cfg.Colors > 0 {
		return r.renderPaletted(in, out)
	}

	enc, err := png.NewEncoder(out, r.cfg.Width, r.cfg.Height, Title)
	if err != nil {
		return err
	}

	chunk := make([]byte, r.rowBytes())
	row := make([]byte, r.cfg.Width*3)
	var last byte

	for y := 0; y < r.cfg.Height; y++ {
		n, err := readChunk(in, chunk)
		if err != nil {
			return err
		}
		r.assembleRow(chunk[:n], row, &last)
		if err := enc.WriteRow(row); err != nil {
			return err
		}
	}

	return enc.Close()
}

// rowBytes is the raw input consumed per output row.
func (r *Renderer) rowBytes() int {
	return r.cfg.Width * r.pal.BytesPerPixel() * r.cfg.Skip * r.cfg.Zoom
}

// readChunk fills b as far as the input allows. A short read signals end of
// input and is not an error.
func readChunk(in io.Reader, b []byte) (int, error) {
	n, err := io.ReadFull(in, b)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	return n, err
}

// assembleRow converts one row's worth of raw input into packed RGB pixels.
// in may be shorter than a full row; every pixel from the first one that
// cannot be fully sampled onwards is black. last carries the previously
// consumed byte across rows for the differential palette.
func (r *Renderer) assembleRow(in, row []byte, last *byte) {
	chrs := r.pal.BytesPerPixel()
	// Samples discarded between pixels when downsampling.
	stride := chrs * r.cfg.Zoom * (r.cfg.Skip - 1)

	xx := 0
	for x := 0; x < r.cfg.Width; x++ {
		var sum [3]int

		for z := 0; z < r.cfg.Zoom; z++ {
			if xx+chrs > len(in) {
				for i := x * 3; i < len(row); i++ {
					row[i] = 0
				}
				return
			}
			unit := in[xx : xx+chrs]
			p := r.pal.Map(unit, *last)
			sum[0] += int(p.R)
			sum[1] += int(p.G)
			sum[2] += int(p.B)
			*last = unit[0]
			xx += chrs
		}
		xx += stride

		p := palette.Pixel{
			R: uint8(sum[0] / r.cfg.Zoom),
			G: uint8(sum[1] / r.cfg.Zoom),
			B: uint8(sum[2] / r.cfg.Zoom),
		}
		if r.cfg.Mask {
			p.R &= byteMask
			p.G &= byteMask
			p.B &= byteMask
		}

		row[x*3+0] = p.R
		row[x*3+1] = p.G
		row[x*3+2] = p.B
	}
}
