// Package imageio opens, encodes and inspects image files. Decoding and
// encoding are delegated to imaging and the registered image/* and
// golang.org/x/image codecs.
package imageio

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// EncodeOptions controls the encoder selected by FormatFor.
type EncodeOptions struct {
	Quality     int                  // JPEG quality (1-100)
	Compression png.CompressionLevel // PNG compression level
}

// DefaultEncodeOptions matches imaging's defaults.
var DefaultEncodeOptions = EncodeOptions{
	Quality:     95,
	Compression: png.DefaultCompression,
}

// Open decodes the image at path. EXIF orientation is not applied so pixel
// coordinates match the stored raster.
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(false))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// FormatFor picks the output encoding from the file extension of path.
func FormatFor(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, fmt.Errorf("output %s: %w", path, err)
	}
	return f, nil
}

// SupportsAlpha reports whether format can store a per-pixel alpha channel.
func SupportsAlpha(f imaging.Format) bool {
	switch f {
	case imaging.JPEG:
		return false
	case imaging.GIF:
		// Palette transparency only.
		return false
	}
	return true
}

// Encode serializes img in the given format.
func Encode(img image.Image, f imaging.Format, opts EncodeOptions) ([]byte, error) {
	if f == imaging.JPEG {
		if err := ValidateQuality(opts.Quality); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	err := imaging.Encode(&buf, img, f,
		imaging.JPEGQuality(opts.Quality),
		imaging.PNGCompressionLevel(opts.Compression),
	)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", f, err)
	}
	return buf.Bytes(), nil
}

// ValidateQuality checks a JPEG quality value.
func ValidateQuality(q int) error {
	if q < 1 || q > 100 {
		return fmt.Errorf("JPEG quality %d out of range 1-100", q)
	}
	return nil
}

// ParseCompression converts a compression name to a png.CompressionLevel.
func ParseCompression(s string) (png.CompressionLevel, error) {
	switch s {
	case "default":
		return png.DefaultCompression, nil
	case "none":
		return png.NoCompression, nil
	case "fast":
		return png.BestSpeed, nil
	case "best":
		return png.BestCompression, nil
	default:
		return 0, fmt.Errorf("unknown PNG compression: %q", s)
	}
}
