package pcarve

import "fmt"

// Pixel is an RGB triple. It is a value read from or written to an Image,
// never stored on its own.
type Pixel struct {
	R, G, B int
}

// Image is made of three equally sized channel grids.
type Image struct {
	width  int
	height int
	red    *Grid
	green  *Grid
	blue   *Grid
}

// NewImage returns a black image of the given size.
func NewImage(width, height int) *Image {
	return &Image{
		width:  width,
		height: height,
		red:    NewGrid(width, height),
		green:  NewGrid(width, height),
		blue:   NewGrid(width, height),
	}
}

// NewImageFromPixels builds an image from row-major pixel triples.
// It panics if the number of pixels does not match the dimensions.
func NewImageFromPixels(width, height int, pixels []Pixel) *Image {
	img := NewImage(width, height)
	if len(pixels) != width*height {
		panic(fmt.Sprintf("pcarve: got %d pixels for a %dx%d image", len(pixels), width, height))
	}
	for i, px := range pixels {
		row, col := img.red.Position(i)
		img.SetPixel(row, col, px)
	}
	return img
}

// Width returns the number of columns.
func (img *Image) Width() int { return img.width }

// Height returns the number of rows.
func (img *Image) Height() int { return img.height }

// Red returns the red channel. Changes to the grid are visible in the image.
func (img *Image) Red() *Grid { return img.red }

// Green returns the green channel.
func (img *Image) Green() *Grid { return img.green }

// Blue returns the blue channel.
func (img *Image) Blue() *Grid { return img.blue }

// Pixel returns the color at (row, col).
func (img *Image) Pixel(row, col int) Pixel {
	return Pixel{
		R: img.red.At(row, col),
		G: img.green.At(row, col),
		B: img.blue.At(row, col),
	}
}

// SetPixel sets the color at (row, col).
func (img *Image) SetPixel(row, col int, px Pixel) {
	img.red.Set(row, col, px.R)
	img.green.Set(row, col, px.G)
	img.blue.Set(row, col, px.B)
}

// Fill paints the whole image with a single color.
func (img *Image) Fill(px Pixel) {
	img.red.Fill(px.R)
	img.green.Fill(px.G)
	img.blue.Fill(px.B)
}

// Equal reports whether both images have the same size and pixels.
func (img *Image) Equal(other *Image) bool {
	if img.width != other.width || img.height != other.height {
		return false
	}
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			if img.Pixel(row, col) != other.Pixel(row, col) {
				return false
			}
		}
	}
	return true
}
