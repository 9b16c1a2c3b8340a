package pcarve

import (
	"image"
	"image/color"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// newRandomImage returns an image filled with reproducible random colors.
func newRandomImage(width, height int, seed int64) *Image {
	rnd := rand.New(rand.NewSource(seed))
	img := NewImage(width, height)
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			img.SetPixel(row, col, Pixel{R: rnd.Intn(256), G: rnd.Intn(256), B: rnd.Intn(256)})
		}
	}
	return img
}

func TestImage_Init(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(4, 3)
	assert.Equal(4, img.Width())
	assert.Equal(3, img.Height())
	for _, ch := range []*Grid{img.Red(), img.Green(), img.Blue()} {
		assert.Equal(4, ch.Width())
		assert.Equal(3, ch.Height())
		assert.Zero(ch.Max())
	}

	assert.Panics(func() { NewImage(0, 1) })
	assert.Panics(func() { NewImage(1, MaxDimension+1) })
}

func TestImage_SetPixel(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(3, 2)
	px := Pixel{R: 10, G: 20, B: 30}
	img.SetPixel(1, 2, px)

	assert.Equal(px, img.Pixel(1, 2))
	assert.Equal(10, img.Red().At(1, 2))
	assert.Equal(20, img.Green().At(1, 2))
	assert.Equal(30, img.Blue().At(1, 2))
	assert.Equal(Pixel{}, img.Pixel(0, 0))

	assert.Panics(func() { img.Pixel(2, 0) })
	assert.Panics(func() { img.SetPixel(0, 3, px) })
}

func TestImage_Fill(t *testing.T) {
	img := NewImage(3, 4)
	px := Pixel{R: 255, G: 0, B: 128}
	img.Fill(px)
	for row := 0; row < img.Height(); row++ {
		for col := 0; col < img.Width(); col++ {
			assert.Equal(t, px, img.Pixel(row, col))
		}
	}
}

func TestImage_FromPixels(t *testing.T) {
	assert := assert.New(t)

	pixels := []Pixel{
		{1, 2, 3}, {4, 5, 6}, {7, 8, 9},
		{10, 11, 12}, {13, 14, 15}, {16, 17, 18},
	}
	img := NewImageFromPixels(3, 2, pixels)
	assert.Equal(Pixel{4, 5, 6}, img.Pixel(0, 1))
	assert.Equal(Pixel{10, 11, 12}, img.Pixel(1, 0))
	assert.Equal(Pixel{16, 17, 18}, img.Pixel(1, 2))

	assert.Panics(func() { NewImageFromPixels(2, 2, pixels) })
}

func TestImage_Equal(t *testing.T) {
	assert := assert.New(t)

	a := newRandomImage(5, 4, 1)
	b := newRandomImage(5, 4, 1)
	assert.True(a.Equal(b))

	b.SetPixel(3, 4, Pixel{R: -1})
	assert.False(a.Equal(b))
	assert.False(a.Equal(NewImage(4, 5)))
}

func TestImage_FromImage(t *testing.T) {
	assert := assert.New(t)

	src := image.NewNRGBA(image.Rect(-1, -1, 2, 1))
	src.Set(-1, -1, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	src.Set(1, 0, color.NRGBA{R: 250, G: 100, B: 50, A: 255})

	img, err := FromImage(src)
	assert.NoError(err)
	assert.Equal(3, img.Width())
	assert.Equal(2, img.Height())
	assert.Equal(Pixel{1, 2, 3}, img.Pixel(0, 0))
	assert.Equal(Pixel{250, 100, 50}, img.Pixel(1, 2))

	gray := image.NewGray(image.Rect(0, 0, 2, 2))
	gray.SetGray(1, 1, color.Gray{Y: 77})
	img, err = FromImage(gray)
	assert.NoError(err)
	assert.Equal(Pixel{77, 77, 77}, img.Pixel(1, 1))

	_, err = FromImage(image.NewNRGBA(image.Rect(0, 0, MaxDimension+1, 1)))
	assert.Error(err)
}

func TestImage_NRGBA(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(2, 1)
	img.SetPixel(0, 0, Pixel{R: 300, G: -5, B: 17})
	img.SetPixel(0, 1, Pixel{R: 0, G: 128, B: 255})

	dst := img.NRGBA()
	assert.Equal(image.Rect(0, 0, 2, 1), dst.Bounds())
	assert.Equal(color.NRGBA{R: 255, G: 0, B: 17, A: 255}, dst.NRGBAAt(0, 0))
	assert.Equal(color.NRGBA{R: 0, G: 128, B: 255, A: 255}, dst.NRGBAAt(1, 0))

	back, err := FromImage(dst)
	assert.NoError(err)
	assert.Equal(Pixel{0, 128, 255}, back.Pixel(0, 1))
}

func TestImage_ChannelsAreShared(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(3, 2)
	img.Red().Set(1, 2, 7)
	img.Green().Set(1, 2, 8)
	img.Blue().Set(1, 2, 9)
	assert.Equal(Pixel{R: 7, G: 8, B: 9}, img.Pixel(1, 2))
	assert.Equal(3, img.Width())
	assert.Equal(2, img.Height())
}
