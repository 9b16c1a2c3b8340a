package pcarve

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// FromImage converts any decoded image to an Image. Alpha is dropped.
func FromImage(src image.Image) (*Image, error) {
	nrgba := imgToNRGBA(src)
	width, height := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	if err := checkDimensions(width, height); err != nil {
		return nil, errors.Wrap(err, "unsupported image size")
	}

	img := NewImage(width, height)
	for row := 0; row < height; row++ {
		i := nrgba.PixOffset(0, row)
		for col := 0; col < width; col++ {
			img.SetPixel(row, col, Pixel{
				R: int(nrgba.Pix[i+0]),
				G: int(nrgba.Pix[i+1]),
				B: int(nrgba.Pix[i+2]),
			})
			i += 4
		}
	}
	return img, nil
}

// NRGBA converts the image to an opaque *image.NRGBA.
// Channel values outside of [0, 255] are clamped.
func (img *Image) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, img.width, img.height))
	for row := 0; row < img.height; row++ {
		i := dst.PixOffset(0, row)
		for col := 0; col < img.width; col++ {
			px := img.Pixel(row, col)
			dst.Pix[i+0] = clampUint8(px.R)
			dst.Pix[i+1] = clampUint8(px.G)
			dst.Pix[i+2] = clampUint8(px.B)
			dst.Pix[i+3] = 0xff
			i += 4
		}
	}
	return dst
}

func clampUint8(v int) uint8 {
	switch {
	case v < 0:
		return 0
	case v > 0xff:
		return 0xff
	}
	return uint8(v)
}

// imgToNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
func imgToNRGBA(img image.Image) *image.NRGBA {
	srcBounds := img.Bounds()
	if srcBounds.Min.X == 0 && srcBounds.Min.Y == 0 {
		if src0, ok := img.(*image.NRGBA); ok {
			return src0
		}
	}
	srcMinX := srcBounds.Min.X
	srcMinY := srcBounds.Min.Y

	dstBounds := srcBounds.Sub(srcBounds.Min)
	dstW := dstBounds.Dx()
	dstH := dstBounds.Dy()
	dst := image.NewNRGBA(dstBounds)

	switch src := img.(type) {
	case *image.NRGBA:
		rowSize := srcBounds.Dx() * 4
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			si := src.PixOffset(srcMinX, srcMinY+dstY)
			copy(dst.Pix[di:di+rowSize], src.Pix[si:si+rowSize])
		}
	case *image.YCbCr:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				srcX := srcMinX + dstX
				srcY := srcMinY + dstY
				siy := src.YOffset(srcX, srcY)
				sic := src.COffset(srcX, srcY)
				r, g, b := color.YCbCrToRGB(src.Y[siy], src.Cb[sic], src.Cr[sic])
				dst.Pix[di+0] = r
				dst.Pix[di+1] = g
				dst.Pix[di+2] = b
				dst.Pix[di+3] = 0xff
				di += 4
			}
		}
	default:
		for dstY := 0; dstY < dstH; dstY++ {
			di := dst.PixOffset(0, dstY)
			for dstX := 0; dstX < dstW; dstX++ {
				c := color.NRGBAModel.Convert(img.At(srcMinX+dstX, srcMinY+dstY)).(color.NRGBA)
				dst.Pix[di+0] = c.R
				dst.Pix[di+1] = c.G
				dst.Pix[di+2] = c.B
				dst.Pix[di+3] = c.A
				di += 4
			}
		}
	}

	return dst
}
