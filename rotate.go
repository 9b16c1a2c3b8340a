package pcarve

// RotateLeft rotates the image by 90 degrees counter clockwise.
func RotateLeft(src *Image) *Image {
	width, height := src.Width(), src.Height()
	dst := NewImage(height, width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			dst.SetPixel(width-1-col, row, src.Pixel(row, col))
		}
	}
	return dst
}

// RotateRight rotates the image by 90 degrees clockwise.
func RotateRight(src *Image) *Image {
	width, height := src.Width(), src.Height()
	dst := NewImage(height, width)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			dst.SetPixel(col, height-1-row, src.Pixel(row, col))
		}
	}
	return dst
}
