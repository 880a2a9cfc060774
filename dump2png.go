/*
Package dump2png renders arbitrary binary data as a PNG image, one colored
pixel per byte (or small group of bytes), for exploratory visualization of
data layout in files such as memory dumps.

It does not parse or interpret the input in any way. By default the least
significant bit of every output channel is masked off so the image cannot be
converted back into the input bytes, as a safeguard against inadvertently
publishing embedded sensitive data.
*/
package dump2png

import (
	"errors"
	"io"
	"log"

	"github.com/bodgit/dump2png/palette"
)

// Title is embedded in every output image as its tEXt metadata title.
const Title = "dump2png"

// Defaults match the command line tool.
const (
	DefaultWidth   = 1024
	DefaultHeight  = 1024 * 10
	DefaultPalette = "x86"
)

var (
	errBadDimensions = errors.New("dump2png: width, height, zoom and skip must be positive")
	errBadColors     = errors.New("dump2png: a paletted image can have at most 256 colors")
)

// Config holds the parameters of one render. All values are fixed for the
// duration of the render.
type Config struct {
	// Width is the number of pixels per row.
	Width int
	// Height is the number of rows.
	Height int
	// Zoom is the number of consecutive samples averaged into one pixel.
	Zoom int
	// Skip is the sample stride; 3 means show 1 out of every 3 samples.
	Skip int
	// Seek is the byte offset of the input at which to begin reading.
	Seek int64
	// Mask clears the least significant bit of every output channel.
	Mask bool
	// Colors, if positive, quantizes the output to at most this many
	// colors and writes a paletted image instead of truecolor.
	Colors int
	// Palette names the byte-to-color scheme, one of palette.Names.
	Palette string
}

// Renderer converts a byte stream into a PNG image according to a Config.
type Renderer struct {
	cfg    Config
	pal    palette.Palette
	logger *log.Logger
}

// New returns a Renderer for the given configuration.
func New(cfg Config, logger *log.Logger) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.Zoom < 1 || cfg.Skip < 1 {
		return nil, errBadDimensions
	}
	if cfg.Colors > 256 {
		return nil, errBadColors
	}

	pal, err := palette.New(cfg.Palette)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Renderer{
		cfg:    cfg,
		pal:    pal,
		logger: logger,
	}, nil
}

// AutoHeight returns the number of rows needed to display size bytes of
// input at the given width, zoom factor, skip factor and palette bytes per
// pixel. The result is never less than one row.
func AutoHeight(size int64, width, zoom, skip, bytesPerPixel int) int {
	samples := size / int64(zoom*skip*bytesPerPixel)
	rows := (samples + int64(width) - 1) / int64(width)
	if rows < 1 {
		rows = 1
	}
	return int(rows)
}
