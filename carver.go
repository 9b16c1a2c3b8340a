package pcarve

import "fmt"

// EnergyGuard adjusts an energy map before the seam search,
// e.g. to make some image regions more expensive to carve.
type EnergyGuard interface {
	Protect(img *Image, energy *Grid)
}

// Carver shrinks images by repeatedly removing their cheapest seam.
// The zero value is ready to use.
type Carver struct {
	// Guard, when set, is applied to every energy map.
	Guard EnergyGuard
	// OnSeam, when set, is called with every seam right before it gets removed.
	// Seams found while reducing the height are reported in rotated coordinates.
	OnSeam func(img *Image, seam Seam)
}

// ShrinkWidth reduces img to the target width using the default Carver.
func ShrinkWidth(img *Image, width int) *Image {
	return (&Carver{}).ShrinkWidth(img, width)
}

// ShrinkHeight reduces img to the target height using the default Carver.
func ShrinkHeight(img *Image, height int) *Image {
	return (&Carver{}).ShrinkHeight(img, height)
}

// Shrink reduces img to the target width and height using the default Carver.
func Shrink(img *Image, width, height int) *Image {
	return (&Carver{}).Shrink(img, width, height)
}

// ShrinkWidth removes vertical seams until the image is width pixels wide.
// Energy and cost are recomputed from scratch after every removed seam.
// It panics unless 0 < width <= img.Width().
func (c *Carver) ShrinkWidth(img *Image, width int) *Image {
	if width <= 0 || width > img.Width() {
		panic(fmt.Sprintf("pcarve: target width %d out of range (0, %d]", width, img.Width()))
	}
	for img.Width() > width {
		img = c.shrink(img)
	}
	return img
}

// ShrinkHeight removes horizontal seams until the image is height pixels high.
// The image is rotated so that the rows become columns, carved horizontally,
// then rotated back. It panics unless 0 < height <= img.Height().
func (c *Carver) ShrinkHeight(img *Image, height int) *Image {
	if height <= 0 || height > img.Height() {
		panic(fmt.Sprintf("pcarve: target height %d out of range (0, %d]", height, img.Height()))
	}
	img = RotateLeft(img)
	img = c.ShrinkWidth(img, height)
	return RotateRight(img)
}

// Shrink reduces the width first, then the height of the narrowed image.
// Both targets are validated against the original dimensions.
func (c *Carver) Shrink(img *Image, width, height int) *Image {
	if width <= 0 || width > img.Width() || height <= 0 || height > img.Height() {
		panic(fmt.Sprintf("pcarve: target size %dx%d out of range (0, %d]x(0, %d]",
			width, height, img.Width(), img.Height()))
	}
	img = c.ShrinkWidth(img, width)
	return c.ShrinkHeight(img, height)
}

// shrink removes a single vertical seam.
func (c *Carver) shrink(img *Image) *Image {
	energy := ComputeEnergy(img)
	if c.Guard != nil {
		c.Guard.Protect(img, energy)
	}
	cost := ComputeVerticalCost(energy)
	seam := FindMinimalVerticalSeam(cost)
	if c.OnSeam != nil {
		c.OnSeam(img, seam)
	}
	return RemoveVerticalSeam(img, seam)
}
