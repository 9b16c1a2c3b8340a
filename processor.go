package pcarve

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pcarve/pcarve/utils"
	"golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Processor options
type Processor struct {
	// NewWidth and NewHeight are the target dimensions. Zero keeps the original size.
	NewWidth  int
	NewHeight int
	// Scale first downsizes the image proportionally when both dimensions
	// are reduced, so that seam carving only removes the remaining pixels.
	Scale bool
	// FaceDetect protects the faces found by the cascade classifier stored at Classifier.
	FaceDetect bool
	Classifier string
	FaceAngle  float64
	Debug      bool

	FaceDetector FaceDetector
	Spinner      *utils.Spinner
}

// Resize validates the target dimensions and carves img down to them.
func (p *Processor) Resize(img *Image) (*Image, error) {
	width, height, err := p.targetSize(img)
	if err != nil {
		return nil, err
	}

	if p.Scale && width < img.Width() && height < img.Height() {
		img, err = p.calculateFitness(img, width, height)
		if err != nil {
			return nil, err
		}
	}

	c := &Carver{}
	if p.FaceDetector != nil {
		c.Guard = &FaceGuard{Detector: p.FaceDetector}
	}
	if p.Debug {
		c.OnSeam = func(img *Image, seam Seam) {
			log.Printf("removing seam ending at column %d of %dx%d image",
				seam[len(seam)-1], img.Width(), img.Height())
		}
	}
	return c.Shrink(img, width, height), nil
}

// targetSize resolves the zero values of NewWidth and NewHeight and
// checks that the image is only shrunk.
func (p *Processor) targetSize(img *Image) (width, height int, err error) {
	width, height = p.NewWidth, p.NewHeight
	if width < 0 || height < 0 {
		return 0, 0, fmt.Errorf("invalid target size %dx%d", width, height)
	}
	if width == 0 {
		width = img.Width()
	}
	if height == 0 {
		height = img.Height()
	}
	if width > img.Width() {
		return 0, 0, errors.New("new width should be less than or equal to the image width")
	}
	if height > img.Height() {
		return 0, 0, errors.New("new height should be less than or equal to the image height")
	}
	return width, height, nil
}

// calculateFitness downsizes the image by preserving its aspect ratio, so that one
// dimension matches its target and the other one is still larger or equal to it.
func (p *Processor) calculateFitness(img *Image, width, height int) (*Image, error) {
	var (
		w  = float64(img.Width())
		h  = float64(img.Height())
		nw = float64(width)
		nh = float64(height)
	)
	ratio := math.Max(nw/w, nh/h)
	sw := utils.Max(int(math.Round(w*ratio)), width)
	sh := utils.Max(int(math.Round(h*ratio)), height)

	resized := imaging.Resize(img.NRGBA(), sw, sh, imaging.Lanczos)
	return FromImage(resized)
}

// Process decodes the image from r, carves it and encodes the result into w.
// The output format is derived from the destination file extension. For
// writers other than files the input format is kept.
func (p *Processor) Process(r io.Reader, w io.Writer) error {
	if p.FaceDetect && p.FaceDetector == nil {
		cascade, err := os.ReadFile(p.Classifier)
		if err != nil {
			return fmt.Errorf("could not read the cascade file: %w", err)
		}
		if p.FaceDetector, err = NewPigoDetector(cascade, p.FaceAngle); err != nil {
			return err
		}
	}

	img, format, err := Decode(r)
	if err != nil {
		return err
	}
	res, err := p.Resize(img)
	if err != nil {
		return err
	}
	return Encode(w, res, format)
}

// Decode reads an image and returns it together with its format name.
// Plain PPM images are read straight into an Image to keep the exact
// channel values. Any other format goes through the image package registry.
func Decode(r io.Reader) (*Image, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", fmt.Errorf("could not read the source image: %w", err)
	}
	if bytes.HasPrefix(bytes.TrimLeft(data, " \t\r\n"), []byte(ppmMagic)) {
		img, err := DecodePPM(bytes.NewReader(data))
		return img, "ppm", err
	}

	src, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("could not decode the source image: %w", err)
	}
	img, err := FromImage(src)
	return img, format, err
}

// Encode writes the image to w in a format chosen from the destination file
// extension, falling back to the given format name.
func Encode(w io.Writer, img *Image, format string) error {
	ext := "." + format
	if f, ok := w.(*os.File); ok && filepath.Ext(f.Name()) != "" {
		ext = strings.ToLower(filepath.Ext(f.Name()))
	}

	switch ext {
	case ".ppm":
		return EncodePPM(w, img)
	case ".bmp":
		return bmp.Encode(w, img.NRGBA())
	case ".webp":
		// There is no webp encoder, use a lossless format instead.
		return imaging.Encode(w, img.NRGBA(), imaging.PNG)
	}

	f, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("unsupported image format %q", ext)
	}
	return imaging.Encode(w, img.NRGBA(), f, imaging.JPEGQuality(100))
}
