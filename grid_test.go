package pcarve

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrid_Init(t *testing.T) {
	assert := assert.New(t)

	g := NewGrid(4, 3)
	assert.Equal(4, g.Width())
	assert.Equal(3, g.Height())
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			assert.Zero(g.At(row, col))
		}
	}

	assert.NotPanics(func() { NewGrid(MaxDimension, 1) })
	assert.Panics(func() { NewGrid(0, 3) })
	assert.Panics(func() { NewGrid(3, -1) })
	assert.Panics(func() { NewGrid(MaxDimension+1, 1) })
	assert.Panics(func() { NewGrid(1, MaxDimension+1) })
}

func TestGrid_AtAndSet(t *testing.T) {
	assert := assert.New(t)

	g := NewGrid(4, 3)
	g.Set(2, 3, 7)
	g.Set(0, 1, -4)
	assert.Equal(7, g.At(2, 3))
	assert.Equal(-4, g.At(0, 1))
	assert.Equal(7, g.cells[2*4+3])

	assert.Panics(func() { g.At(3, 0) })
	assert.Panics(func() { g.At(0, 4) })
	assert.Panics(func() { g.At(-1, 0) })
	assert.Panics(func() { g.Set(0, -1, 1) })
}

func TestGrid_Position(t *testing.T) {
	assert := assert.New(t)

	g := NewGrid(4, 3)
	row, col := g.Position(7)
	assert.Equal(1, row)
	assert.Equal(3, col)

	row, col = g.Position(0)
	assert.Equal(0, row)
	assert.Equal(0, col)

	assert.Panics(func() { g.Position(12) })
	assert.Panics(func() { g.Position(-1) })
}

func TestGrid_Fill(t *testing.T) {
	g := NewGrid(3, 5)
	g.Fill(9)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			assert.Equal(t, 9, g.At(row, col))
		}
	}
}

func TestGrid_FillBorder(t *testing.T) {
	assert := assert.New(t)

	g := NewGrid(4, 3)
	g.FillBorder(5)
	expected := [][]int{
		{5, 5, 5, 5},
		{5, 0, 0, 5},
		{5, 5, 5, 5},
	}
	for row := range expected {
		for col := range expected[row] {
			assert.Equal(expected[row][col], g.At(row, col), "cell (%d, %d)", row, col)
		}
	}

	// Every cell of a single row grid is on the border.
	g = NewGrid(3, 1)
	g.FillBorder(2)
	for col := 0; col < 3; col++ {
		assert.Equal(2, g.At(0, col))
	}
}

func TestGrid_Max(t *testing.T) {
	assert := assert.New(t)

	g := NewGrid(3, 2)
	assert.Zero(g.Max())

	g.Set(1, 2, 17)
	g.Set(0, 0, 3)
	assert.Equal(17, g.Max())

	g.Fill(-3)
	assert.Zero(g.Max())
}

func TestGrid_MinInRow(t *testing.T) {
	assert := assert.New(t)

	g := NewGrid(5, 2)
	for col, v := range []int{3, 1, 1, 2, 0} {
		g.Set(1, col, v)
	}

	assert.Equal(0, g.MinInRow(1, 0, 5))
	assert.Equal(4, g.MinColumnInRow(1, 0, 5))

	// Ties resolve to the leftmost column.
	assert.Equal(1, g.MinInRow(1, 0, 4))
	assert.Equal(1, g.MinColumnInRow(1, 0, 4))
	assert.Equal(2, g.MinColumnInRow(1, 2, 4))
	assert.Equal(0, g.MinColumnInRow(1, 0, 1))

	assert.Panics(func() { g.MinInRow(1, 2, 2) })
	assert.Panics(func() { g.MinInRow(1, -1, 2) })
	assert.Panics(func() { g.MinColumnInRow(1, 0, 6) })
	assert.Panics(func() { g.MinColumnInRow(2, 0, 1) })
}

func TestGrid_PrintAndRead(t *testing.T) {
	assert := assert.New(t)

	g := NewGrid(1, 1)
	g.Fill(42)

	var buf bytes.Buffer
	assert.NoError(g.Print(&buf))
	assert.Equal("1 1\n42 \n", buf.String())

	res, err := ReadGrid(&buf)
	assert.NoError(err)
	assert.Equal(42, res.MinInRow(0, 0, 1))
	assert.Equal(0, res.MinColumnInRow(0, 0, 1))

	g = NewGrid(3, 2)
	for i := range g.cells {
		g.cells[i] = i * 10
	}
	buf.Reset()
	assert.NoError(g.Print(&buf))
	assert.Equal("3 2\n0 10 20 \n30 40 50 \n", buf.String())

	res, err = ReadGrid(&buf)
	assert.NoError(err)
	assert.Equal(g, res)
}

func TestGrid_ReadMalformed(t *testing.T) {
	for name, input := range map[string]string{
		"empty":         "",
		"no height":     "3",
		"zero width":    "0 2\n",
		"too large":     "5000 1\n",
		"truncated":     "2 2\n1 2 3\n",
		"not a number":  "2 1\n1 x\n",
		"bad dimension": "two 1\n1 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ReadGrid(strings.NewReader(input))
			assert.Error(t, err)
		})
	}
}
