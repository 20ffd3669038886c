package pipeline

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/davesmith10/combine3n1/internal/combine"
	"github.com/davesmith10/combine3n1/internal/imageio"
	"github.com/disintegration/imaging"
)

// Options controls encoding of the combined image.
type Options struct {
	Encode imageio.EncodeOptions // zero Quality selects the default
	Logger *slog.Logger // optional; discards when nil
}

// Result holds the output of a pipeline run.
type Result struct {
	Data   []byte // encoded RGBA image
	Format imaging.Format
	Width  int
	Height int
}

// Run executes the full pipeline: open both inputs → combine → encode.
// The output format is taken from outPath, but nothing is written there;
// the caller persists Result.Data only after Run succeeds.
func Run(colorPath, maskPath, outPath string, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Encode.Quality == 0 {
		opts.Encode.Quality = imageio.DefaultEncodeOptions.Quality
	}

	// Resolve the encoder before any decoding work.
	format, err := imageio.FormatFor(outPath)
	if err != nil {
		return nil, err
	}
	if !imageio.SupportsAlpha(format) {
		log.Warn("output format cannot store alpha; mask will be lost", "format", format.String(), "path", outPath)
	}

	colorImg, err := imageio.Open(colorPath)
	if err != nil {
		return nil, fmt.Errorf("opening color image: %w", err)
	}
	log.Debug("opened color image", "path", colorPath, "bounds", colorImg.Bounds().String(), "type", fmt.Sprintf("%T", colorImg))

	maskImg, err := imageio.Open(maskPath)
	if err != nil {
		return nil, fmt.Errorf("opening mask image: %w", err)
	}
	log.Debug("opened mask image", "path", maskPath, "bounds", maskImg.Bounds().String(), "type", fmt.Sprintf("%T", maskImg))

	combined, err := combine.Combine(colorImg, maskImg)
	if err != nil {
		return nil, err
	}

	data, err := imageio.Encode(combined, format, opts.Encode)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	log.Debug("encoded output", "format", format.String(), "bytes", len(data))

	b := combined.Bounds()
	return &Result{
		Data:   data,
		Format: format,
		Width:  b.Dx(),
		Height: b.Dy(),
	}, nil
}
