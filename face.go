package pcarve

import (
	"fmt"
	"image"

	pigo "github.com/esimov/pigo/core"
	"github.com/pcarve/pcarve/utils"
)

// minFaceScore is the detection quality below which a face is ignored.
const minFaceScore = 5.0

// FaceDetector finds the faces of an image.
type FaceDetector interface {
	Detect(img *Image) []image.Rectangle
}

// FaceGuard prevents seams from crossing faces by raising the energy
// of every detected face region to the highest energy of the map.
type FaceGuard struct {
	Detector FaceDetector
}

var _ EnergyGuard = (*FaceGuard)(nil)

// Protect implements EnergyGuard.
func (g *FaceGuard) Protect(img *Image, energy *Grid) {
	faces := g.Detector.Detect(img)
	if len(faces) == 0 {
		return
	}
	max := energy.Max()
	bounds := image.Rect(0, 0, energy.Width(), energy.Height())
	for _, face := range faces {
		rect := face.Intersect(bounds)
		for row := rect.Min.Y; row < rect.Max.Y; row++ {
			for col := rect.Min.X; col < rect.Max.X; col++ {
				energy.Set(row, col, max)
			}
		}
	}
}

// PigoDetector detects faces with the pigo cascade classifier.
type PigoDetector struct {
	classifier *pigo.Pigo
	angle      float64
}

// NewPigoDetector unpacks a pigo cascade file. The angle is the
// in-plane rotation of the searched faces, in the [0, 1] range.
func NewPigoDetector(cascade []byte, angle float64) (det *PigoDetector, err error) {
	// Unpack indexes into the cascade without checking its length.
	defer func() {
		if r := recover(); r != nil {
			det, err = nil, fmt.Errorf("error unpacking the cascade file: malformed cascade: %v", r)
		}
	}()

	classifier, err := pigo.NewPigo().Unpack(cascade)
	if err != nil {
		return nil, fmt.Errorf("error unpacking the cascade file: %w", err)
	}
	return &PigoDetector{classifier: classifier, angle: angle}, nil
}

// Detect implements FaceDetector.
func (d *PigoDetector) Detect(img *Image) []image.Rectangle {
	width, height := img.Width(), img.Height()

	cParams := pigo.CascadeParams{
		MinSize:     20,
		MaxSize:     utils.Max(width, height),
		ShiftFactor: 0.1,
		ScaleFactor: 1.1,
		ImageParams: pigo.ImageParams{
			Pixels: img.Grayscale(),
			Rows:   height,
			Cols:   width,
			Dim:    width,
		},
	}

	// Run the classifier over the obtained leaf nodes and return the detection results.
	// The result contains quadruplets representing the row, column, scale and detection score.
	dets := d.classifier.RunCascade(cParams, d.angle)
	dets = d.classifier.ClusterDetections(dets, 0.2)

	var faces []image.Rectangle
	for _, det := range dets {
		if det.Q < minFaceScore {
			continue
		}
		faces = append(faces, image.Rect(
			det.Col-det.Scale/2,
			det.Row-det.Scale/2,
			det.Col+det.Scale/2,
			det.Row+det.Scale/2,
		))
	}
	return faces
}
