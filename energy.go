package pcarve

// ComputeEnergy scores the importance of every pixel from the color gradient
// between its vertical and horizontal neighbors.
//
// Border pixels have no complete neighborhood, so they receive the largest
// interior energy. This keeps seams away from the image edges.
// Images less than three pixels wide or high have an all-zero energy map.
func ComputeEnergy(img *Image) *Grid {
	energy := NewGrid(img.Width(), img.Height())

	var max int
	for row := 1; row < img.Height()-1; row++ {
		for col := 1; col < img.Width()-1; col++ {
			north := img.Pixel(row-1, col)
			south := img.Pixel(row+1, col)
			west := img.Pixel(row, col-1)
			east := img.Pixel(row, col+1)

			e := squaredDistance(north, south) + squaredDistance(west, east)
			energy.Set(row, col, e)
			if e > max {
				max = e
			}
		}
	}
	energy.FillBorder(max)

	return energy
}

// squaredDistance returns the squared euclidean distance between two colors.
// The result is divided by 100 to keep the accumulated seam costs small.
func squaredDistance(p, q Pixel) int {
	dr := q.R - p.R
	dg := q.G - p.G
	db := q.B - p.B
	return (dr*dr + dg*dg + db*db) / 100
}
