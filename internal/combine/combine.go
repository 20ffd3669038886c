// Package combine merges a three-channel color image and a one-channel mask
// into a single RGBA image.
package combine

import (
	"errors"
	"fmt"
	"image"

	"github.com/davesmith10/combine3n1/internal/ir"
)

// ErrDimensionMismatch is matched by every *DimensionError.
var ErrDimensionMismatch = errors.New("image dimensions differ")

// DimensionError reports a color image and mask whose sizes differ.
type DimensionError struct {
	ColorWidth  int
	ColorHeight int
	MaskWidth   int
	MaskHeight  int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%v: color image is %dx%d, mask is %dx%d",
		ErrDimensionMismatch, e.ColorWidth, e.ColorHeight, e.MaskWidth, e.MaskHeight)
}

func (e *DimensionError) Is(target error) bool {
	return target == ErrDimensionMismatch
}

// CheckDimensions returns a *DimensionError unless both images have the same
// width and height. Bounds origins are not compared.
func CheckDimensions(colorImg, maskImg image.Image) error {
	cb, mb := colorImg.Bounds(), maskImg.Bounds()
	if cb.Dx() != mb.Dx() || cb.Dy() != mb.Dy() {
		return &DimensionError{
			ColorWidth:  cb.Dx(),
			ColorHeight: cb.Dy(),
			MaskWidth:   mb.Dx(),
			MaskHeight:  mb.Dy(),
		}
	}
	return nil
}

// Combine builds a new image whose red, green and blue channels come from
// colorImg and whose alpha channel is the first channel of maskImg.
// Neither input is modified and the result shares no memory with them.
func Combine(colorImg, maskImg image.Image) (*image.NRGBA, error) {
	if err := CheckDimensions(colorImg, maskImg); err != nil {
		return nil, err
	}

	b := colorImg.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rgb := ir.ColorAt(colorImg, x, y)
			dst.SetNRGBA(x, y, rgb.RGBA(ir.MaskAt(maskImg, x, y)))
		}
	}

	return dst, nil
}
