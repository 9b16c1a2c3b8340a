package pcarve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const (
	ImgWidth  = 10
	ImgHeight = 10
)

func TestGrayscale(t *testing.T) {
	assert := assert.New(t)

	img := NewImage(ImgWidth, ImgHeight)
	img.Fill(Pixel{R: 177, G: 177, B: 177})

	gray := img.Grayscale()
	assert.Len(gray, ImgWidth*ImgHeight)
	for i := range gray {
		assert.Equal(gray[0], gray[i])
	}

	img.SetPixel(0, 1, Pixel{R: 100})
	img.SetPixel(1, 0, Pixel{})
	gray = img.Grayscale()
	assert.Equal(uint8(29), gray[1])
	assert.Equal(uint8(0), gray[ImgWidth])
}
