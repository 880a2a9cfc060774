package png

import (
	"bytes"
	"image"
	"image/color"
	stdpng "image/png"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncoderRoundTrip(t *testing.T) {
	rows := [][]byte{
		{255, 0, 0, 0, 255, 0, 0, 0, 255},
		{1, 2, 3, 4, 5, 6, 7, 8, 9},
	}

	var buf bytes.Buffer
	e, err := NewEncoder(&buf, 3, 2, "dump2png")
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, e.WriteRow(row))
	}
	require.NoError(t, e.Close())

	// The title is carried as a tEXt chunk.
	assert.True(t, bytes.Contains(buf.Bytes(), []byte("tEXtTitle\x00dump2png")))

	m, err := stdpng.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 3, 2), m.Bounds())

	for y, row := range rows {
		for x := 0; x < 3; x++ {
			r, g, b, a := m.At(x, y).RGBA()
			assert.Equal(t, uint32(row[x*3+0]), r>>8)
			assert.Equal(t, uint32(row[x*3+1]), g>>8)
			assert.Equal(t, uint32(row[x*3+2]), b>>8)
			assert.Equal(t, uint32(0xff), a>>8)
		}
	}
}

func TestEncoderNoTitle(t *testing.T) {
	var buf bytes.Buffer
	e, err := NewEncoder(&buf, 1, 1, "")
	require.NoError(t, err)
	require.NoError(t, e.WriteRow([]byte{0, 0, 0}))
	require.NoError(t, e.Close())

	assert.False(t, bytes.Contains(buf.Bytes(), []byte("tEXt")))

	_, err = stdpng.Decode(&buf)
	assert.NoError(t, err)
}

func TestEncoderErrors(t *testing.T) {
	var buf bytes.Buffer

	_, err := NewEncoder(&buf, 0, 1, "")
	assert.Equal(t, errBadSize, err)

	e, err := NewEncoder(&buf, 2, 1, "")
	require.NoError(t, err)

	assert.Equal(t, errRowLength, e.WriteRow([]byte{1, 2, 3}))
	assert.Equal(t, errRowCount, e.Close()) // no rows written yet

	require.NoError(t, e.WriteRow(make([]byte, 6)))
	assert.Equal(t, errRowCount, e.WriteRow(make([]byte, 6)))
}

func TestEncoderManyRows(t *testing.T) {
	// Incompressible input large enough to split the data stream over
	// several chunks.
	const width, height = 256, 200

	rnd := rand.New(rand.NewSource(1))
	rows := make([][]byte, height)
	for y := range rows {
		rows[y] = make([]byte, width*3)
		rnd.Read(rows[y])
	}

	var buf bytes.Buffer
	e, err := NewEncoder(&buf, width, height, "dump2png")
	require.NoError(t, err)
	for _, row := range rows {
		require.NoError(t, e.WriteRow(row))
	}
	require.NoError(t, e.Close())

	assert.Greater(t, bytes.Count(buf.Bytes(), []byte("IDAT")), 1)

	m, err := stdpng.Decode(&buf)
	require.NoError(t, err)

	for _, y := range []int{0, height / 2, height - 1} {
		for _, x := range []int{0, width / 2, width - 1} {
			r, g, b, _ := m.At(x, y).RGBA()
			assert.Equal(t, uint32(rows[y][x*3+0]), r>>8)
			assert.Equal(t, uint32(rows[y][x*3+1]), g>>8)
			assert.Equal(t, uint32(rows[y][x*3+2]), b>>8)
		}
	}
}

func TestEncodePaletted(t *testing.T) {
	pal := color.Palette{
		color.RGBA{0, 0, 0, 255},
		color.RGBA{255, 0, 0, 255},
		color.RGBA{0, 255, 0, 255},
		color.RGBA{0, 0, 255, 255},
	}
	pm := image.NewPaletted(image.Rect(0, 0, 4, 2), pal)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			pm.SetColorIndex(x, y, uint8((x+y)%len(pal)))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, EncodePaletted(&buf, pm, "dump2png"))

	assert.True(t, bytes.Contains(buf.Bytes(), []byte("PLTE")))
	assert.True(t, bytes.Contains(buf.Bytes(), []byte("tEXtTitle\x00dump2png")))

	m, err := stdpng.Decode(&buf)
	require.NoError(t, err)

	got, ok := m.(*image.Paletted)
	require.True(t, ok)
	require.Equal(t, pm.Bounds(), got.Bounds())

	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, pm.At(x, y), color.RGBAModel.Convert(got.At(x, y)))
		}
	}
}

func TestEncodePalettedTooManyColors(t *testing.T) {
	pal := make(color.Palette, maxPaletteColors+1)
	for i := range pal {
		pal[i] = color.RGBA{uint8(i), uint8(i), uint8(i), 255}
	}
	pm := image.NewPaletted(image.Rect(0, 0, 1, 1), pal)

	var buf bytes.Buffer
	assert.Equal(t, errBigPalette, EncodePaletted(&buf, pm, ""))
}
