package pcarve

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// MaxDimension is the largest width or height a Grid (and therefore an Image) can have.
const MaxDimension = 4096

// Grid is a fixed size, row-major matrix of integers.
// It stores both the image color channels and the energy and cost maps.
type Grid struct {
	width  int
	height int
	cells  []int
}

// NewGrid allocates a zeroed grid. It panics if width or height is
// not in the (0, MaxDimension] range.
func NewGrid(width, height int) *Grid {
	if width <= 0 || width > MaxDimension || height <= 0 || height > MaxDimension {
		panic(fmt.Sprintf("pcarve: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]int, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// At returns the value stored at (row, col).
func (g *Grid) At(row, col int) int {
	return g.cells[g.index(row, col)]
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col, v int) {
	g.cells[g.index(row, col)] = v
}

// Position converts a row-major index back to its (row, col) coordinates.
func (g *Grid) Position(index int) (row, col int) {
	if index < 0 || index >= len(g.cells) {
		panic(fmt.Sprintf("pcarve: grid index %d out of range [0, %d)", index, len(g.cells)))
	}
	return index / g.width, index % g.width
}

func (g *Grid) index(row, col int) int {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("pcarve: grid position (%d, %d) out of bounds %dx%d", row, col, g.width, g.height))
	}
	return row*g.width + col
}

// Fill sets every cell to v.
func (g *Grid) Fill(v int) {
	for i := range g.cells {
		g.cells[i] = v
	}
}

// FillBorder sets the cells of the first and last rows and columns to v.
func (g *Grid) FillBorder(v int) {
	for col := 0; col < g.width; col++ {
		g.Set(0, col, v)
		g.Set(g.height-1, col, v)
	}
	for row := 1; row < g.height-1; row++ {
		g.Set(row, 0, v)
		g.Set(row, g.width-1, v)
	}
}

// Max returns the largest value of the grid.
// The search starts from zero, so a grid holding only negative values reports 0.
func (g *Grid) Max() int {
	max := 0
	for _, v := range g.cells {
		if v > max {
			max = v
		}
	}
	return max
}

// MinInRow returns the smallest value of row in the [colStart, colEnd) column range.
func (g *Grid) MinInRow(row, colStart, colEnd int) int {
	return g.At(row, g.MinColumnInRow(row, colStart, colEnd))
}

// MinColumnInRow returns the column holding the smallest value of row
// in the [colStart, colEnd) range. Ties resolve to the leftmost column.
func (g *Grid) MinColumnInRow(row, colStart, colEnd int) int {
	if colStart < 0 || colEnd > g.width || colStart >= colEnd {
		panic(fmt.Sprintf("pcarve: invalid column range [%d, %d) for width %d", colStart, colEnd, g.width))
	}
	minCol := colStart
	minVal := g.At(row, colStart)
	for col := colStart + 1; col < colEnd; col++ {
		if v := g.At(row, col); v < minVal {
			minVal, minCol = v, col
		}
	}
	return minCol
}

// Print writes the grid dimensions on the first line followed by one line per row.
// Every value is followed by a single space.
func (g *Grid) Print(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.width, g.height)
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			bw.WriteString(strconv.Itoa(g.At(row, col)))
			bw.WriteByte(' ')
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadGrid parses a grid in the format produced by Print.
func ReadGrid(r io.Reader) (*Grid, error) {
	sc := newTokenScanner(r)

	width, err := sc.int("width")
	if err != nil {
		return nil, err
	}
	height, err := sc.int("height")
	if err != nil {
		return nil, err
	}
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}

	g := NewGrid(width, height)
	for i := range g.cells {
		if g.cells[i], err = sc.int("cell"); err != nil {
			row, col := g.Position(i)
			return nil, errors.Wrapf(err, "grid cell (%d, %d)", row, col)
		}
	}
	return g, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return errors.Errorf("non-positive dimensions %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return errors.Errorf("dimensions %dx%d exceed the %d pixels limit", width, height, MaxDimension)
	}
	return nil
}

// tokenScanner reads whitespace separated integers.
type tokenScanner struct {
	sc *bufio.Scanner
}

func newTokenScanner(r io.Reader) *tokenScanner {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	return &tokenScanner{sc: sc}
}

func (t *tokenScanner) token(what string) (string, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return "", errors.Wrapf(err, "reading %s", what)
		}
		return "", errors.Wrapf(io.ErrUnexpectedEOF, "reading %s", what)
	}
	return t.sc.Text(), nil
}

func (t *tokenScanner) int(what string) (int, error) {
	tok, err := t.token(what)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, errors.Errorf("malformed %s %q", what, tok)
	}
	return v, nil
}
