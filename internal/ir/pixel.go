package ir

import (
	"image"
	"image/color"
)

// RGB is the color part of a pixel taken from the three-channel source.
// Any channel past the third (alpha of an NRGBA source) is not carried.
type RGB struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// RGBA builds the combined output pixel from a color sample and a mask value.
func (p RGB) RGBA(mask uint8) color.NRGBA {
	return color.NRGBA{R: p.Red, G: p.Green, B: p.Blue, A: mask}
}

// ColorAt returns the first three channels of img at (x, y), where x and y
// are offsets from img.Bounds().Min. Stored values are read as they are;
// alpha never scales them. 16-bit samples keep their high byte.
func ColorAt(img image.Image, x, y int) RGB {
	b := img.Bounds()
	px, py := b.Min.X+x, b.Min.Y+y

	switch m := img.(type) {
	case *image.NRGBA:
		i := m.PixOffset(px, py)
		return RGB{Red: m.Pix[i], Green: m.Pix[i+1], Blue: m.Pix[i+2]}
	case *image.RGBA:
		i := m.PixOffset(px, py)
		return RGB{Red: m.Pix[i], Green: m.Pix[i+1], Blue: m.Pix[i+2]}
	case *image.NRGBA64:
		i := m.PixOffset(px, py)
		return RGB{Red: m.Pix[i], Green: m.Pix[i+2], Blue: m.Pix[i+4]}
	case *image.RGBA64:
		i := m.PixOffset(px, py)
		return RGB{Red: m.Pix[i], Green: m.Pix[i+2], Blue: m.Pix[i+4]}
	case *image.Gray:
		v := m.Pix[m.PixOffset(px, py)]
		return RGB{Red: v, Green: v, Blue: v}
	case *image.Gray16:
		v := m.Pix[m.PixOffset(px, py)]
		return RGB{Red: v, Green: v, Blue: v}
	case *image.NYCbCrA:
		return ycbcrAt(&m.YCbCr, px, py)
	case *image.YCbCr:
		return ycbcrAt(m, px, py)
	}

	// Premultiplied, but never divided back by alpha.
	r, g, bl, _ := img.At(px, py).RGBA()
	return RGB{Red: uint8(r >> 8), Green: uint8(g >> 8), Blue: uint8(bl >> 8)}
}

func ycbcrAt(m *image.YCbCr, px, py int) RGB {
	yi, ci := m.YOffset(px, py), m.COffset(px, py)
	r, g, b := color.YCbCrToRGB(m.Y[yi], m.Cb[ci], m.Cr[ci])
	return RGB{Red: r, Green: g, Blue: b}
}

// MaskAt returns the first channel of img at (x, y), where x and y are
// offsets from img.Bounds().Min. 16-bit samples keep their high byte.
func MaskAt(img image.Image, x, y int) uint8 {
	b := img.Bounds()
	px, py := b.Min.X+x, b.Min.Y+y

	switch m := img.(type) {
	case *image.Gray:
		return m.Pix[m.PixOffset(px, py)]
	case *image.Gray16:
		return m.Pix[m.PixOffset(px, py)]
	case *image.Alpha:
		return m.Pix[m.PixOffset(px, py)]
	case *image.Alpha16:
		return m.Pix[m.PixOffset(px, py)]
	case *image.NRGBA:
		return m.Pix[m.PixOffset(px, py)]
	case *image.RGBA:
		return m.Pix[m.PixOffset(px, py)]
	case *image.NRGBA64:
		return m.Pix[m.PixOffset(px, py)]
	case *image.RGBA64:
		return m.Pix[m.PixOffset(px, py)]
	case *image.NYCbCrA:
		return ycbcrAt(&m.YCbCr, px, py).Red
	case *image.YCbCr:
		return ycbcrAt(m, px, py).Red
	}

	r, _, _, _ := img.At(px, py).RGBA()
	return uint8(r >> 8)
}
