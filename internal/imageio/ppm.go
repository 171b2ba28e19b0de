package imageio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"softfb/internal/raster"
)

// ErrBadPPM reports a malformed or unsupported PPM stream.
var ErrBadPPM = errors.New("imageio: bad ppm")

// WritePPM writes buf as a binary (P6) pixel map. Alpha is dropped.
func WritePPM(w io.Writer, buf raster.PixelBuffer) error {
	width, height := buf.Width(), buf.Height()
	if width > math.MaxUint16+1 || height > math.MaxUint16+1 {
		return fmt.Errorf("imageio: ppm %dx%d exceeds coordinate range", width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("imageio: ppm header: %w", err)
	}

	row := make([]byte, int(width)*3)
	for y := 0; y < int(height); y++ {
		for x := 0; x < int(width); x++ {
			p, _ := buf.GetPixel(uint16(x), uint16(y))
			row[x*3] = p.R
			row[x*3+1] = p.G
			row[x*3+2] = p.B
		}
		if _, err := bw.Write(row); err != nil {
			return fmt.Errorf("imageio: ppm row %d: %w", y, err)
		}
	}
	return bw.Flush()
}

// ReadPPM reads a binary (P6) pixel map with maxval 255. Pixels come back
// fully opaque.
func ReadPPM(r io.Reader) (*raster.Gray, error) {
	br := bufio.NewReader(r)

	magic, err := ppmToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P6" {
		return nil, fmt.Errorf("%w: magic %q", ErrBadPPM, magic)
	}

	var dims [3]int
	for i := range dims {
		tok, err := ppmToken(br)
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: header field %q", ErrBadPPM, tok)
		}
		dims[i] = v
	}
	width, height, maxval := dims[0], dims[1], dims[2]
	if maxval != 255 {
		return nil, fmt.Errorf("%w: maxval %d", ErrBadPPM, maxval)
	}
	if width > math.MaxUint16+1 || height > math.MaxUint16+1 {
		return nil, fmt.Errorf("%w: %dx%d exceeds coordinate range", ErrBadPPM, width, height)
	}

	// The header is untrusted, so the raster is sized from the bytes that
	// actually arrive rather than from the declared dimensions.
	need := int64(width) * int64(height) * 3
	data, err := io.ReadAll(io.LimitReader(br, need))
	if err != nil {
		return nil, fmt.Errorf("%w: data: %v", ErrBadPPM, err)
	}
	if int64(len(data)) < need {
		return nil, fmt.Errorf("%w: row %d: %v", ErrBadPPM, len(data)/(width*3), io.ErrUnexpectedEOF)
	}

	g := raster.NewGray(uint32(width), uint32(height))
	pix := g.Pix()
	for i := range pix {
		pix[i] = raster.Pixel{R: data[i*3], G: data[i*3+1], B: data[i*3+2], A: 255}
	}
	return g, nil
}

// ppmToken reads one whitespace-delimited header token, skipping comments.
// It consumes exactly one whitespace byte after the token.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", fmt.Errorf("%w: header: %v", ErrBadPPM, err)
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil {
				return "", fmt.Errorf("%w: comment: %v", ErrBadPPM, err)
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}
