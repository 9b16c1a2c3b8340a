package pcarve

// Grayscale returns the luminance of every pixel as a row-major byte slice.
func (img *Image) Grayscale() []uint8 {
	gray := make([]uint8, img.width*img.height)
	for row := 0; row < img.height; row++ {
		for col := 0; col < img.width; col++ {
			px := img.Pixel(row, col)
			lum := 0.299*float64(clampUint8(px.R)) +
				0.587*float64(clampUint8(px.G)) +
				0.114*float64(clampUint8(px.B))
			gray[row*img.width+col] = uint8(lum)
		}
	}
	return gray
}
