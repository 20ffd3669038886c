package imageio

import (
	"fmt"
	"image"
	"image/color"
	"os"
)

// Info describes an image file without decoding its pixels.
type Info struct {
	Width      int
	Height     int
	Format     string // registered decoder name: "png", "jpeg", ...
	ColorModel string
	Channels   int // channels of the decoded color model
}

// Inspect reads the header of the image at path.
func Inspect(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	name, channels := modelInfo(cfg.ColorModel)
	return &Info{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Format:     format,
		ColorModel: name,
		Channels:   channels,
	}, nil
}

func modelInfo(m color.Model) (string, int) {
	if _, ok := m.(color.Palette); ok {
		return "Paletted", 1
	}
	switch m {
	case color.GrayModel:
		return "Gray", 1
	case color.Gray16Model:
		return "Gray16", 1
	case color.AlphaModel:
		return "Alpha", 1
	case color.Alpha16Model:
		return "Alpha16", 1
	case color.YCbCrModel:
		return "YCbCr", 3
	case color.NYCbCrAModel:
		return "NYCbCrA", 4
	case color.CMYKModel:
		return "CMYK", 4
	case color.RGBAModel:
		return "RGBA", 4
	case color.RGBA64Model:
		return "RGBA64", 4
	case color.NRGBAModel:
		return "NRGBA", 4
	case color.NRGBA64Model:
		return "NRGBA64", 4
	default:
		return "Unknown", 0
	}
}
