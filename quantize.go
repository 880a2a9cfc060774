package dump2png

import (
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/bodgit/dump2png/png"
	"github.com/ericpauley/go-quantize/quantize"
)

// renderPaletted renders the whole image into memory, reduces it to at most
// Colors colors with a median cut quantizer and writes it out as a paletted
// image. Quantization needs the complete image, so this path cannot stream
// rows the way Render does.
func (r *Renderer) renderPaletted(in io.Reader, out io.Writer) error {
	m := image.NewRGBA(image.Rect(0, 0, r.cfg.Width, r.cfg.Height))

	chunk := make([]byte, r.rowBytes())
	row := make([]byte, r.cfg.Width*3)
	var last byte

	for y := 0; y < r.cfg.Height; y++ {
		n, err := readChunk(in, chunk)
		if err != nil {
			return err
		}
		r.assembleRow(chunk[:n], row, &last)
		for x := 0; x < r.cfg.Width; x++ {
			m.SetRGBA(x, y, color.RGBA{row[x*3], row[x*3+1], row[x*3+2], 0xff})
		}
	}

	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(m.Bounds(), q.Quantize(make(color.Palette, 0, r.cfg.Colors), m))
	draw.Draw(pm, m.Bounds(), m, image.Point{}, draw.Src)

	return png.EncodePaletted(out, pm, Title)
}
