package loaders

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
)

// ErrUnsupportedPPM is returned for PPM variants other than P3 and P6
var ErrUnsupportedPPM = errors.New("unsupported PPM format")

// LoadPPM reads a PPM image from disk
func LoadPPM(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PPM file: %w", err)
	}
	defer file.Close()

	data, err := ReadPPM(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filename, err)
	}
	return data, nil
}

// ReadPPM decodes an ASCII (P3) or binary (P6) PPM image. Header fields may
// be separated by comments starting with '#'. Samples are scaled by the
// header's maximum value into [0,1].
func ReadPPM(r io.Reader) (*ImageData, error) {
	br := bufio.NewReader(r)

	magic, err := ppmToken(br)
	if err != nil {
		return nil, fmt.Errorf("reading magic number: %w", err)
	}
	if magic != "P3" && magic != "P6" {
		return nil, fmt.Errorf("magic number %q: %w", magic, ErrUnsupportedPPM)
	}

	var header [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		tok, err := ppmToken(br)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		header[i], err = strconv.Atoi(tok)
		if err != nil || header[i] <= 0 {
			return nil, fmt.Errorf("invalid %s %q", name, tok)
		}
	}
	width, height, maxval := header[0], header[1], header[2]
	if maxval > 65535 {
		return nil, fmt.Errorf("maxval %d: %w", maxval, ErrUnsupportedPPM)
	}

	samples := make([]int, width*height*3)
	if magic == "P3" {
		for i := range samples {
			tok, err := ppmToken(br)
			if err != nil {
				return nil, fmt.Errorf("reading sample %d: %w", i, err)
			}
			if samples[i], err = strconv.Atoi(tok); err != nil {
				return nil, fmt.Errorf("invalid sample %q", tok)
			}
		}
	} else {
		// A single whitespace byte separates the header from the raster,
		// and was consumed by ppmToken
		bytesPerSample := 1
		if maxval > 255 {
			bytesPerSample = 2
		}
		raster := make([]byte, len(samples)*bytesPerSample)
		if _, err := io.ReadFull(br, raster); err != nil {
			return nil, fmt.Errorf("reading raster: %w", err)
		}
		for i := range samples {
			if bytesPerSample == 1 {
				samples[i] = int(raster[i])
			} else {
				samples[i] = int(raster[2*i])<<8 | int(raster[2*i+1])
			}
		}
	}

	scale := 1.0 / float64(maxval)
	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		pixels[i] = core.NewVec3(
			float64(samples[3*i])*scale,
			float64(samples[3*i+1])*scale,
			float64(samples[3*i+2])*scale,
		)
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// ppmToken returns the next whitespace-delimited header token, skipping
// comments. The single whitespace byte that ends the token is consumed.
func ppmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	for {
		c, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			if err == io.EOF {
				return "", io.ErrUnexpectedEOF
			}
			return "", err
		}

		switch {
		case c == '#' && len(tok) == 0:
			if _, err := br.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, c)
		}
	}
}

// WritePPM encodes row-major 8-bit RGB pixels as an ASCII (P3) PPM image,
// one image row per line
func WritePPM(w io.Writer, width, height int, pix []uint8) error {
	if len(pix) != width*height*3 {
		return fmt.Errorf("pixel buffer has %d bytes, want %d", len(pix), width*height*3)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height)

	line := make([]byte, 0, width*12)
	for y := 0; y < height; y++ {
		line = line[:0]
		for i, v := range pix[y*width*3 : (y+1)*width*3] {
			if i > 0 {
				line = append(line, ' ')
			}
			line = strconv.AppendInt(line, int64(v), 10)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}
