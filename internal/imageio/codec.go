// Package imageio serializes pixel buffers to image files and loads them
// back.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"softfb/internal/raster"
)

// Format names an output encoding.
type Format string

const (
	FormatPPM  Format = "ppm"
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
	FormatBMP  Format = "bmp"
	FormatTIFF Format = "tiff"
)

// Formats lists every supported output format.
var Formats = []Format{FormatPPM, FormatPNG, FormatWebP, FormatTGA, FormatBMP, FormatTIFF}

// ErrUnknownFormat is returned for formats and extensions with no encoder.
var ErrUnknownFormat = errors.New("imageio: unknown format")

// ParseFormat validates a format name, case-insensitively. "tif" is
// accepted for tiff.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	if f == "tif" {
		return FormatTIFF, nil
	}
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath picks the format matching the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Ext returns the file extension for f, including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Encode writes buf to w in format f.
func Encode(w io.Writer, buf *raster.Gray, f Format) error {
	var err error
	switch f {
	case FormatPPM:
		return WritePPM(w, buf)
	case FormatPNG:
		err = png.Encode(w, buf.ToNRGBA())
	case FormatWebP:
		err = nativewebp.Encode(w, buf.ToNRGBA(), nil)
	case FormatTGA:
		err = tga.Encode(w, buf.ToNRGBA())
	case FormatBMP:
		err = bmp.Encode(w, buf.ToNRGBA())
	case FormatTIFF:
		err = tiff.Encode(w, buf.ToNRGBA(), &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return fmt.Errorf("imageio: encode %s: %w", f, err)
	}
	return nil
}

// Save encodes buf into path, choosing the format from the extension and
// creating parent directories as needed.
func Save(path string, buf *raster.Gray) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("imageio: mkdir %s: %w", filepath.Dir(path), err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: create %s: %w", path, err)
	}
	if err := Encode(out, buf, f); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("imageio: close %s: %w", path, err)
	}
	return nil
}

// Load reads any supported image file into a new buffer.
func Load(path string) (*raster.Gray, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(raw))
}

// Decode sniffs the stream's magic bytes and decodes ppm, png, jpeg, gif,
// bmp, tiff or webp. Streams matching none of them are tried as tga, which
// has no signature.
func Decode(r io.ReadSeeker) (*raster.Gray, error) {
	var magic [12]byte
	n, err := io.ReadFull(r, magic[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	head := magic[:n]

	if bytes.HasPrefix(head, []byte("P6")) {
		return ReadPPM(r)
	}

	var decode func(io.Reader) (image.Image, error)
	switch {
	case bytes.HasPrefix(head, []byte("\x89PNG")):
		decode = png.Decode
	case bytes.HasPrefix(head, []byte("\xff\xd8")):
		decode = jpeg.Decode
	case bytes.HasPrefix(head, []byte("GIF8")):
		decode = gif.Decode
	case bytes.HasPrefix(head, []byte("BM")):
		decode = bmp.Decode
	case bytes.HasPrefix(head, []byte("II*\x00")), bytes.HasPrefix(head, []byte("MM\x00*")):
		decode = tiff.Decode
	case bytes.HasPrefix(head, []byte("RIFF")) && len(head) >= 12 && string(head[8:12]) == "WEBP":
		decode = nativewebp.Decode
	default:
		decode = tga.Decode
	}

	img, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode: %w", err)
	}
	return raster.FromImage(img), nil
}
