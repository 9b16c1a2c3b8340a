package pcarve

import "fmt"

// Seam holds one column index per image row, top to bottom.
// Indices of adjacent rows differ by at most one.
type Seam []int

// FindMinimalVerticalSeam traces the cheapest top to bottom path of a cost grid.
//
// The path is anchored on the leftmost minimum of the bottom row and then walks
// upwards, always moving to the cheapest of the up to three cells adjacent to
// the current column. Ties go to the leftmost cell.
func FindMinimalVerticalSeam(cost *Grid) Seam {
	width, height := cost.Width(), cost.Height()
	seam := make(Seam, height)

	col := cost.MinColumnInRow(height-1, 0, width)
	for row := height - 1; row >= 0; row-- {
		// On the bottom row this window always contains the global
		// minimum found above, so the anchor does not move.
		start, end := window(col, width)
		col = cost.MinColumnInRow(row, start, end)
		seam[row] = col
	}
	return seam
}

// RemoveVerticalSeam returns a copy of img without the pixels of the seam.
// The new image is one column narrower.
func RemoveVerticalSeam(img *Image, seam Seam) *Image {
	width, height := img.Width(), img.Height()
	if width < 2 {
		panic("pcarve: cannot remove a seam from a one pixel wide image")
	}
	if len(seam) != height {
		panic(fmt.Sprintf("pcarve: seam length %d does not match image height %d", len(seam), height))
	}

	dst := NewImage(width-1, height)
	for row, seamCol := range seam {
		if seamCol < 0 || seamCol >= width {
			panic(fmt.Sprintf("pcarve: seam column %d out of range on row %d", seamCol, row))
		}
		for col := 0; col < width-1; col++ {
			src := col
			if col >= seamCol {
				src++
			}
			dst.SetPixel(row, col, img.Pixel(row, src))
		}
	}
	return dst
}
