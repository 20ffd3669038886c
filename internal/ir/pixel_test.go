package ir

import (
	"image"
	"image/color"
	"testing"
)

func TestColorAt(t *testing.T) {
	nrgba := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	nrgba.SetNRGBA(1, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	rgba := image.NewRGBA(image.Rect(0, 0, 1, 1))
	rgba.SetRGBA(0, 0, color.RGBA{R: 1, G: 2, B: 3, A: 255})

	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 77})

	// Non-zero origin: (0, 0) addresses the top-left pixel at (5, 7).
	offset := image.NewNRGBA(image.Rect(5, 7, 6, 8))
	offset.SetNRGBA(5, 7, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	cmyk := image.NewCMYK(image.Rect(0, 0, 1, 1))
	cmyk.SetCMYK(0, 0, color.CMYK{C: 0, M: 0, Y: 0, K: 0})

	nrgba64 := image.NewNRGBA64(image.Rect(0, 0, 2, 1))
	nrgba64.SetNRGBA64(0, 0, color.NRGBA64{R: 0xC800, G: 0x6400, B: 0x3200, A: 0})
	nrgba64.SetNRGBA64(1, 0, color.NRGBA64{R: 0xC800, G: 0x6400, B: 0x3200, A: 0x0100})

	rgba64 := image.NewRGBA64(image.Rect(0, 0, 1, 1))
	rgba64.SetRGBA64(0, 0, color.RGBA64{R: 0x1234, G: 0x5678, B: 0x9ABC, A: 0xFFFF})

	gray16 := image.NewGray16(image.Rect(0, 0, 1, 1))
	gray16.SetGray16(0, 0, color.Gray16{Y: 0x40FF})

	ycbcr := image.NewYCbCr(image.Rect(0, 0, 1, 1), image.YCbCrSubsampleRatio444)
	ycbcr.Y[0], ycbcr.Cb[0], ycbcr.Cr[0] = 128, 128, 128

	nycbcra := image.NewNYCbCrA(image.Rect(0, 0, 1, 1), image.YCbCrSubsampleRatio444)
	nycbcra.Y[0], nycbcra.Cb[0], nycbcra.Cr[0], nycbcra.A[0] = 200, 128, 128, 0

	nrgba.SetNRGBA(0, 0, color.NRGBA{R: 11, G: 22, B: 33, A: 0})

	tests := []struct {
		name string
		img  image.Image
		x, y int
		want RGB
	}{
		{"nrgba alpha ignored", nrgba, 1, 0, RGB{Red: 10, Green: 20, Blue: 30}},
		{"rgba", rgba, 0, 0, RGB{Red: 1, Green: 2, Blue: 3}},
		{"gray replicated", gray, 0, 0, RGB{Red: 77, Green: 77, Blue: 77}},
		{"offset bounds", offset, 0, 0, RGB{Red: 9, Green: 8, Blue: 7}},
		{"generic model", cmyk, 0, 0, RGB{Red: 255, Green: 255, Blue: 255}},
		{"nrgba transparent", nrgba, 0, 0, RGB{Red: 11, Green: 22, Blue: 33}},
		{"nrgba64 transparent", nrgba64, 0, 0, RGB{Red: 200, Green: 100, Blue: 50}},
		{"nrgba64 nearly transparent", nrgba64, 1, 0, RGB{Red: 200, Green: 100, Blue: 50}},
		{"rgba64 high byte", rgba64, 0, 0, RGB{Red: 0x12, Green: 0x56, Blue: 0x9A}},
		{"gray16 high byte", gray16, 0, 0, RGB{Red: 0x40, Green: 0x40, Blue: 0x40}},
		{"ycbcr neutral", ycbcr, 0, 0, RGB{Red: 128, Green: 128, Blue: 128}},
		{"nycbcra transparent", nycbcra, 0, 0, RGB{Red: 200, Green: 200, Blue: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorAt(tt.img, tt.x, tt.y); got != tt.want {
				t.Errorf("ColorAt(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMaskAt(t *testing.T) {
	gray := image.NewGray(image.Rect(0, 0, 1, 1))
	gray.SetGray(0, 0, color.Gray{Y: 3})

	gray16 := image.NewGray16(image.Rect(0, 0, 1, 1))
	gray16.SetGray16(0, 0, color.Gray16{Y: 0xAB12})

	alpha := image.NewAlpha(image.Rect(0, 0, 1, 1))
	alpha.SetAlpha(0, 0, color.Alpha{A: 200})

	nrgba := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	nrgba.SetNRGBA(0, 0, color.NRGBA{R: 42, G: 1, B: 1, A: 1})

	alpha16 := image.NewAlpha16(image.Rect(0, 0, 1, 1))
	alpha16.SetAlpha16(0, 0, color.Alpha16{A: 0x4000})

	nrgba64 := image.NewNRGBA64(image.Rect(0, 0, 1, 1))
	nrgba64.SetNRGBA64(0, 0, color.NRGBA64{R: 0x8000, G: 0x8000, B: 0x8000, A: 0})

	rgba64 := image.NewRGBA64(image.Rect(0, 0, 1, 1))
	rgba64.SetRGBA64(0, 0, color.RGBA64{R: 0x21FF, A: 0xFFFF})

	transparent := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	transparent.SetNRGBA(0, 0, color.NRGBA{R: 90, A: 0})

	paletted := image.NewPaletted(image.Rect(0, 0, 1, 1), color.Palette{
		color.Black,
		color.NRGBA{R: 128, G: 0, B: 0, A: 255},
	})
	paletted.SetColorIndex(0, 0, 1)

	tests := []struct {
		name string
		img  image.Image
		want uint8
	}{
		{"gray", gray, 3},
		{"gray16 high byte", gray16, 0xAB},
		{"alpha", alpha, 200},
		{"nrgba red", nrgba, 42},
		{"paletted", paletted, 128},
		{"alpha16 high byte", alpha16, 0x40},
		{"nrgba64 transparent", nrgba64, 0x80},
		{"rgba64 high byte", rgba64, 0x21},
		{"nrgba transparent", transparent, 90},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaskAt(tt.img, 0, 0); got != tt.want {
				t.Errorf("MaskAt = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRGBA(t *testing.T) {
	got := RGB{Red: 255, Green: 0, Blue: 128}.RGBA(255)
	want := color.NRGBA{R: 255, G: 0, B: 128, A: 255}
	if got != want {
		t.Errorf("RGBA = %+v, want %+v", got, want)
	}
}
