package pcarve

import (
	"bufio"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// ppmMagic identifies the plain (ASCII) RGB variant of the netpbm format.
const ppmMagic = "P3"

// ppmMaxValue is the largest max value allowed by the netpbm format.
const ppmMaxValue = 65535

func init() {
	image.RegisterFormat("ppm", ppmMagic, decodePPMImage, decodePPMConfig)
}

// DecodePPM reads a plain PPM image: the P3 magic, the width, the height,
// the maximum channel value, then one RGB triple per pixel in row-major order.
// Comments are not supported.
func DecodePPM(r io.Reader) (*Image, error) {
	sc := newTokenScanner(r)
	width, height, maxVal, err := readPPMHeader(sc)
	if err != nil {
		return nil, err
	}

	img := NewImage(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			var px Pixel
			for _, ch := range []*int{&px.R, &px.G, &px.B} {
				if *ch, err = sc.int("channel"); err != nil {
					return nil, errors.Wrapf(err, "ppm: pixel (%d, %d)", row, col)
				}
				if *ch < 0 || *ch > maxVal {
					return nil, errors.Errorf("ppm: channel %d out of range [0, %d] at pixel (%d, %d)",
						*ch, maxVal, row, col)
				}
			}
			img.SetPixel(row, col, px)
		}
	}
	return img, nil
}

func readPPMHeader(sc *tokenScanner) (width, height, maxVal int, err error) {
	magic, err := sc.token("magic")
	if err != nil {
		return 0, 0, 0, errors.Wrap(err, "ppm")
	}
	if magic != ppmMagic {
		return 0, 0, 0, errors.Errorf("ppm: unsupported magic %q", magic)
	}
	if width, err = sc.int("width"); err != nil {
		return 0, 0, 0, errors.Wrap(err, "ppm")
	}
	if height, err = sc.int("height"); err != nil {
		return 0, 0, 0, errors.Wrap(err, "ppm")
	}
	if err = checkDimensions(width, height); err != nil {
		return 0, 0, 0, errors.Wrap(err, "ppm")
	}
	if maxVal, err = sc.int("max value"); err != nil {
		return 0, 0, 0, errors.Wrap(err, "ppm")
	}
	if maxVal <= 0 || maxVal > ppmMaxValue {
		return 0, 0, 0, errors.Errorf("ppm: invalid max value %d", maxVal)
	}
	return width, height, maxVal, nil
}

// EncodePPM writes img as a plain PPM image with a maximum value of 255.
// Every row is written on its own line and every value is followed by a space.
func EncodePPM(w io.Writer, img *Image) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(ppmMagic + "\n")
	bw.WriteString(strconv.Itoa(img.Width()) + " " + strconv.Itoa(img.Height()) + "\n")
	bw.WriteString("255\n")
	for row := 0; row < img.Height(); row++ {
		for col := 0; col < img.Width(); col++ {
			px := img.Pixel(row, col)
			for _, v := range [...]int{px.R, px.G, px.B} {
				bw.WriteString(strconv.Itoa(v))
				bw.WriteByte(' ')
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "ppm")
}

// decodePPMImage adapts DecodePPM to the image package decoder signature.
func decodePPMImage(r io.Reader) (image.Image, error) {
	img, err := DecodePPM(r)
	if err != nil {
		return nil, err
	}
	return img.NRGBA(), nil
}

func decodePPMConfig(r io.Reader) (image.Config, error) {
	width, height, _, err := readPPMHeader(newTokenScanner(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      width,
		Height:     height,
	}, nil
}
