package pcarve

import (
	"testing"
)

func Benchmark_Carver(b *testing.B) {
	img := newRandomImage(256, 128, 1)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		energy := ComputeEnergy(img)
		cost := ComputeVerticalCost(energy)
		seam := FindMinimalVerticalSeam(cost)
		img = RemoveVerticalSeam(img, seam)
		if img.Width() == 1 {
			b.StopTimer()
			img = newRandomImage(256, 128, int64(i))
			b.StartTimer()
		}
	}
}

func Benchmark_ShrinkWidth(b *testing.B) {
	img := newRandomImage(128, 64, 2)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ShrinkWidth(img, 96)
	}
}
