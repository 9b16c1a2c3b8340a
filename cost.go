package pcarve

import (
	"fmt"

	"github.com/pcarve/pcarve/utils"
)

// ComputeVerticalCost accumulates the energy map from top to bottom.
// Every cell holds the cost of the cheapest connected path ending on it:
// its own energy plus the minimum of the up to three cells above it.
func ComputeVerticalCost(energy *Grid) *Grid {
	cost := NewGrid(energy.Width(), energy.Height())
	computeVerticalCost(energy, cost)
	return cost
}

// computeVerticalCost writes the cumulative cost of energy into cost.
// The two grids must be distinct and of the same size.
func computeVerticalCost(energy, cost *Grid) {
	if energy == cost {
		panic("pcarve: energy and cost must be distinct grids")
	}
	if energy.Width() != cost.Width() || energy.Height() != cost.Height() {
		panic(fmt.Sprintf("pcarve: cost grid %dx%d does not match energy grid %dx%d",
			cost.Width(), cost.Height(), energy.Width(), energy.Height()))
	}

	width := energy.Width()
	for col := 0; col < width; col++ {
		cost.Set(0, col, energy.At(0, col))
	}
	for row := 1; row < energy.Height(); row++ {
		for col := 0; col < width; col++ {
			start, end := window(col, width)
			cost.Set(row, col, energy.At(row, col)+cost.MinInRow(row-1, start, end))
		}
	}
}

// window returns the half-open column range {col-1, col, col+1} clipped to [0, width).
func window(col, width int) (start, end int) {
	return utils.Max(col-1, 0), utils.Min(col+2, width)
}
