package dump2png

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
)

// Compressed reports whether the file at path will be transparently
// decompressed when opened for rendering. Memory dumps are routinely stored
// gzip or zstd compressed.
func Compressed(path string) bool {
	switch filepath.Ext(path) {
	case ".gz", ".zst":
		return true
	}
	return false
}

type decompressor struct {
	io.Reader
	close func() error
}

func (d *decompressor) Close() error {
	return d.close()
}

// openInput opens path for reading, decompressing gzip and zstd inputs by
// file extension, positioned seek bytes in. A compressed stream is not
// seekable, so the offset is discarded from the decompressed data instead.
func openInput(path string, seek int64) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var rc io.ReadCloser

	switch filepath.Ext(path) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		rc = &decompressor{
			Reader: zr,
			close: func() error {
				err := zr.Close()
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				return err
			},
		}
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		rc = &decompressor{
			Reader: zr,
			close: func() error {
				zr.Close()
				return f.Close()
			},
		}
	default:
		if seek > 0 {
			if _, err := f.Seek(seek, io.SeekStart); err != nil {
				f.Close()
				return nil, err
			}
		}
		return f, nil
	}

	if seek > 0 {
		// Seeking past end of input is fine, the image is just black.
		if _, err := io.CopyN(io.Discard, rc, seek); err != nil && err != io.EOF {
			rc.Close()
			return nil, err
		}
	}

	return rc, nil
}

// RenderFile renders the file at infile into a new image at outfile.
func (r *Renderer) RenderFile(infile, outfile string) error {
	in, err := openInput(infile, r.cfg.Seek)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(outfile)
	if err != nil {
		return err
	}

	if err := r.Render(in, out); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
